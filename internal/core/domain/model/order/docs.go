// Package order provides the domain model for the marketplace order
// lifecycle. It implements the Order aggregate root together with its value
// objects: the status state machine, the human-shareable order number,
// immutable material snapshots, the tracking log, the payment status, and the
// post-delivery rating.
//
// Key business rules:
//   - Orders are placed by a vendor against a distinct supplier with at least
//     one material snapshot and a delivery address
//   - Status follows pending -> confirmed -> preparing -> out_for_delivery ->
//     delivered, with cancellation (vendor) and rejection (supplier) possible
//     while pending or confirmed; delivered/cancelled/rejected are terminal
//   - Each reached status produces exactly one tracking step with fixed,
//     externally visible text
//   - totalAmount always equals the sum of item subtotals and finalAmount
//     always equals totalAmount plus deliveryCharges
//   - Items may only change while pending; ratings only after delivery
//
// The aggregate uses private fields and validated constructors so records
// that bypassed construction are detectable, following the constructor-guard
// convention used across the codebase.
package order

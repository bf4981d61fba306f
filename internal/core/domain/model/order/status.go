package order

import (
	"fmt"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the marketplace workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> out_for_delivery ──> delivered
//	   │            │
//	   ├────────────┼──> cancelled
//	   └────────────┴──> rejected
//
// delivered, cancelled, and rejected are terminal: no outgoing transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order has been placed and is
	// waiting for the supplier to confirm it.
	Pending

	// Confirmed means the supplier has accepted the order.
	Confirmed

	// Preparing means the supplier is packing the items.
	Preparing

	// OutForDelivery means the order has left the supplier.
	OutForDelivery

	// Delivered is the terminal happy-path status. Only delivered orders
	// can be rated.
	Delivered

	// Cancelled is the terminal status for vendor-initiated cancellation,
	// possible while the order is pending or confirmed.
	Cancelled

	// Rejected is the terminal status for supplier-initiated rejection,
	// possible while the order is pending or confirmed.
	Rejected
)

// getStatusStrings maps Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
		Rejected:       "rejected",
	}
}

// getStatusTransitions defines the allowed transition graph. Statuses absent
// from the map are terminal.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled, Rejected},
		Confirmed:      {Preparing, Cancelled, Rejected},
		Preparing:      {OutForDelivery},
		OutForDelivery: {Delivered},
	}
}

// getTransitionDrivers maps each reachable target status to the role allowed
// to drive the transition. Suppliers move orders forward and reject them;
// vendors may only cancel.
func getTransitionDrivers() map[Status]actor.Role {
	return map[Status]actor.Role{
		Confirmed:      actor.RoleSupplier,
		Preparing:      actor.RoleSupplier,
		OutForDelivery: actor.RoleSupplier,
		Delivered:      actor.RoleSupplier,
		Rejected:       actor.RoleSupplier,
		Cancelled:      actor.RoleVendor,
	}
}

// StatusFromString parses a wire-format status name, e.g. "out_for_delivery".
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// String returns the wire-format status name, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s < Pending || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	if err := s.Validate(); err != nil {
		return false
	}
	_, hasOutgoing := getStatusTransitions()[s]
	return !hasOutgoing
}

// CanTransitionTo reports whether the transition graph permits moving from
// the current status to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a status transition. It returns the
// new status on success, or a TransitionError when next is not reachable
// from the current status (including any transition out of a terminal state
// and re-requesting the already-reached status).
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, NewTransitionError(s, next)
	}
	return next, nil
}

// DriverRole returns the role permitted to drive a transition into the given
// status. Pending is never a transition target, so it has no driver.
func (s Status) DriverRole() (actor.Role, error) {
	role, ok := getTransitionDrivers()[s]
	if !ok {
		return actor.RoleUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a transition target", s))
	}
	return role, nil
}

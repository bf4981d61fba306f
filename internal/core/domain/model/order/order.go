package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method or restored through RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the marketplace order lifecycle. It owns the
// status state machine, the tracking log, and the derived totals, and it
// enforces who may change what.
//
// Invariants maintained by the aggregate:
//   - finalAmount == totalAmount + deliveryCharges at all times
//   - totalAmount == Σ(quantity × unitPrice) over the item snapshots
//   - at most one tracking step per status; steps are consistent with the
//     path taken from pending to the current status
//   - vendor, supplier, number, and createdAt never change after creation
//   - updatedAt is bumped and version incremented on every successful
//     mutation, and only on successful mutations
type Order struct {
	// id is the internal storage key, never exposed to callers.
	id kernel.UUID

	// number is the external, human-shareable order identifier.
	number Number

	vendorID   kernel.UUID
	supplierID kernel.UUID

	// items are immutable material snapshots taken at placement (or at a
	// pre-confirmation item update).
	items []Item

	totalAmount     kernel.Money
	deliveryCharges kernel.Money
	finalAmount     kernel.Money

	status        Status
	paymentStatus PaymentStatus
	trackingSteps []TrackingStep
	rating        *Rating

	deliveryAddress      string
	deliveryInstructions string

	createdAt time.Time
	updatedAt time.Time

	// version supports optimistic concurrency in the store: two
	// simultaneous mutations of the same order cannot both apply.
	version int64

	isConstructed bool
}

// NewOrder places a new order: validates the parties and items, computes the
// derived totals, and seeds the tracking log with the "Order Placed" step.
// The order starts in pending status with payment pending.
func NewOrder(
	id kernel.UUID,
	number Number,
	vendorID kernel.UUID,
	supplierID kernel.UUID,
	items []Item,
	deliveryAddress string,
	deliveryInstructions string,
	deliveryCharges kernel.Money,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setParties(vendorID, supplierID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	o.deliveryInstructions = deliveryInstructions
	o.deliveryCharges = deliveryCharges
	o.recomputeTotals()

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now
	o.version = 1

	placed, err := NewTrackingStep(Pending, now)
	if err != nil {
		return nil, err
	}
	o.trackingSteps = []TrackingStep{placed}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Totals are recomputed
// from the stored items and charges so the derived-total invariant holds even
// if the record was written by an older build.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	vendorID kernel.UUID,
	supplierID kernel.UUID,
	items []Item,
	deliveryAddress string,
	deliveryInstructions string,
	deliveryCharges kernel.Money,
	status Status,
	paymentStatus PaymentStatus,
	trackingSteps []TrackingStep,
	rating *Rating,
	createdAt time.Time,
	updatedAt time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		status:        status,
		paymentStatus: paymentStatus,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setParties(vendorID, supplierID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.deliveryInstructions = deliveryInstructions
	o.deliveryCharges = deliveryCharges
	o.recomputeTotals()
	o.trackingSteps = append([]TrackingStep(nil), trackingSteps...)
	o.rating = rating
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	o.version = version

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their internal identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the internal storage key.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the external order identifier.
func (o *Order) Number() Number {
	return o.number
}

// VendorID returns the buying vendor's identifier.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// SupplierID returns the fulfilling supplier's identifier.
func (o *Order) SupplierID() kernel.UUID {
	return o.supplierID
}

// Items returns a copy of the line-item snapshots.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// TotalAmount returns the sum of the item subtotals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// DeliveryCharges returns the supplier's delivery charges.
func (o *Order) DeliveryCharges() kernel.Money {
	return o.deliveryCharges
}

// FinalAmount returns totalAmount plus deliveryCharges.
func (o *Order) FinalAmount() kernel.Money {
	return o.finalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// TrackingSteps returns a copy of the tracking log, in the order the steps
// were first reached.
func (o *Order) TrackingSteps() []TrackingStep {
	return append([]TrackingStep(nil), o.trackingSteps...)
}

// Rating returns the vendor's rating, or nil if the order has not been rated.
func (o *Order) Rating() *Rating {
	if o.rating == nil {
		return nil
	}
	r := *o.rating
	return &r
}

// DeliveryAddress returns the delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryInstructions returns the optional delivery instructions.
func (o *Order) DeliveryInstructions() string {
	return o.deliveryInstructions
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last successful mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency version.
func (o *Order) Version() int64 {
	return o.version
}

// ChangeStatus moves the order to next on behalf of the acting party.
//
// The transition graph is checked first: an unreachable target (including any
// move out of a terminal state and re-requesting the current status) fails
// with a TransitionError and leaves the order untouched. Then the actor is
// checked against the role that drives the transition and against the order's
// own parties, failing with errs.NotAuthorizedError.
//
// On success the status changes, the tracking log gains (or refreshes) the
// step for the new status, and updatedAt/version are bumped. This is the only
// path that mutates the tracking log after creation.
func (o *Order) ChangeStatus(next Status, by actor.Actor) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	driver, err := next.DriverRole()
	if err != nil {
		return err
	}
	if by.Role() != driver {
		return errs.NewNotAuthorizedError(by.Role().String(), "set status "+next.String())
	}
	if err = o.authorizeParty(by, "set status "+next.String()); err != nil {
		return err
	}

	now := time.Now().UTC()
	step, err := NewTrackingStep(newStatus, now)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.upsertTrackingStep(step)
	o.touch(now)
	return nil
}

// UpdateItems replaces the item snapshots. Only the order's vendor may do
// this, and only while the order is still pending; afterwards the snapshots
// are locked. Totals are recomputed in the same mutation, so no state with
// stale totals is ever observable.
func (o *Order) UpdateItems(items []Item, by actor.Actor) error {
	if by.Role() != actor.RoleVendor {
		return errs.NewNotAuthorizedError(by.Role().String(), "update order items")
	}
	if err := o.authorizeParty(by, "update order items"); err != nil {
		return err
	}
	if o.status != Pending {
		return NewStateLockedError("update items", "order is "+o.status.String())
	}
	if err := o.setItems(items); err != nil {
		return err
	}

	o.recomputeTotals()
	o.touch(time.Now().UTC())
	return nil
}

// SetDeliveryCharges sets the supplier's delivery charges. Permitted only
// before the order starts being prepared (pending or confirmed). The final
// amount is recomputed in the same mutation.
func (o *Order) SetDeliveryCharges(charges kernel.Money, by actor.Actor) error {
	if by.Role() != actor.RoleSupplier {
		return errs.NewNotAuthorizedError(by.Role().String(), "set delivery charges")
	}
	if err := o.authorizeParty(by, "set delivery charges"); err != nil {
		return err
	}
	if o.status != Pending && o.status != Confirmed {
		return NewStateLockedError("set delivery charges", "order is "+o.status.String())
	}

	o.deliveryCharges = charges
	o.recomputeTotals()
	o.touch(time.Now().UTC())
	return nil
}

// MarkPayment moves the payment status along its own lifecycle. Suppliers
// record payment outcomes; the payment graph (pending -> paid|failed,
// failed -> paid, paid -> refunded) rejects everything else.
func (o *Order) MarkPayment(next PaymentStatus, by actor.Actor) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if by.Role() != actor.RoleSupplier {
		return errs.NewNotAuthorizedError(by.Role().String(), "mark payment "+next.String())
	}
	if err := o.authorizeParty(by, "mark payment "+next.String()); err != nil {
		return err
	}
	if !o.paymentStatus.CanTransitionTo(next) {
		return NewStateLockedError("mark payment "+next.String(), "payment is "+o.paymentStatus.String())
	}

	o.paymentStatus = next
	o.touch(time.Now().UTC())
	return nil
}

// SetRating attaches the vendor's rating. Only valid once the order is
// delivered, and only once.
func (o *Order) SetRating(rating Rating, by actor.Actor) error {
	if err := rating.Validate(); err != nil {
		return err
	}
	if by.Role() != actor.RoleVendor {
		return errs.NewNotAuthorizedError(by.Role().String(), "rate the order")
	}
	if err := o.authorizeParty(by, "rate the order"); err != nil {
		return err
	}
	if o.status != Delivered {
		return NewStateLockedError("rate the order", "order is "+o.status.String())
	}
	if o.rating != nil {
		return NewStateLockedError("rate the order again", "order is already rated")
	}

	o.rating = &rating
	o.touch(time.Now().UTC())
	return nil
}

// InvolvesActor reports whether the actor is one of the order's parties.
// Used by the read side to scope order visibility.
func (o *Order) InvolvesActor(by actor.Actor) bool {
	switch by.Role() {
	case actor.RoleVendor:
		return by.ID().IsEqual(o.vendorID)
	case actor.RoleSupplier:
		return by.ID().IsEqual(o.supplierID)
	default:
		return false
	}
}

// authorizeParty rejects actors whose identity does not match the order's
// own vendor or supplier, regardless of their role being the right one.
func (o *Order) authorizeParty(by actor.Actor, action string) error {
	if !o.InvolvesActor(by) {
		return errs.NewNotAuthorizedError(by.Role().String(), action+" of another party's order")
	}
	return nil
}

// upsertTrackingStep appends the step, or refreshes the existing entry when
// the status was already reached once. The log never holds duplicates.
func (o *Order) upsertTrackingStep(step TrackingStep) {
	for i := range o.trackingSteps {
		if o.trackingSteps[i].status == step.status {
			o.trackingSteps[i] = step
			return
		}
	}
	o.trackingSteps = append(o.trackingSteps, step)
}

// recomputeTotals rederives totalAmount and finalAmount from the items and
// delivery charges. Every mutation of either input runs through here.
func (o *Order) recomputeTotals() {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.totalAmount = total
	o.finalAmount = total.Add(o.deliveryCharges)
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
	o.version++
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setParties(vendorID, supplierID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendor id", err)
	}
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplier id", err)
	}
	if vendorID.IsEqual(supplierID) {
		return errs.NewValueIsInvalidError("vendor and supplier must be different parties")
	}
	o.vendorID = vendorID
	o.supplierID = supplierID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

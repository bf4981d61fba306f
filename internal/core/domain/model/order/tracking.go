package order

import (
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
)

// trackingDetail holds the fixed, externally visible text for a tracking
// step. Clients render these verbatim, so the table must not change.
type trackingDetail struct {
	title       string
	description string
}

// getTrackingDetails maps each status to its tracking-step title and
// description. Every lifecycle status has exactly one entry.
func getTrackingDetails() map[Status]trackingDetail {
	return map[Status]trackingDetail{
		Pending:        {"Order Placed", "Order has been placed and waiting for supplier confirmation"},
		Confirmed:      {"Order Confirmed", "Order confirmed by supplier and being prepared"},
		Preparing:      {"Preparing Order", "Items are being packed and prepared for delivery"},
		OutForDelivery: {"Out for Delivery", "Order is on the way to your location"},
		Delivered:      {"Delivered", "Order has been successfully delivered"},
		Cancelled:      {"Cancelled", "Order has been cancelled"},
		Rejected:       {"Rejected", "Order has been rejected by supplier"},
	}
}

// TrackingStep is one entry in an order's status log: a milestone recording
// when a status was reached. The log holds at most one step per status;
// re-entering a status refreshes its timestamp instead of duplicating it.
type TrackingStep struct {
	status      Status
	title       string
	description string
	timestamp   time.Time
	completed   bool
}

// NewTrackingStep creates the tracking step for a reached status, stamped
// with the time the status was reached.
func NewTrackingStep(status Status, timestamp time.Time) (TrackingStep, error) {
	detail, ok := getTrackingDetails()[status]
	if !ok {
		return TrackingStep{}, errs.NewValueIsInvalidErrorWithCause("tracking status",
			fmt.Errorf("%d has no tracking step", status))
	}
	if timestamp.IsZero() {
		return TrackingStep{}, errs.NewValueIsRequiredError("tracking timestamp")
	}

	return TrackingStep{
		status:      status,
		title:       detail.title,
		description: detail.description,
		timestamp:   timestamp,
		completed:   true,
	}, nil
}

// RestoreTrackingStep reconstructs a step from persistence without rewriting
// its text, preserving whatever the record carried.
func RestoreTrackingStep(status Status, title, description string, timestamp time.Time, completed bool) TrackingStep {
	return TrackingStep{
		status:      status,
		title:       title,
		description: description,
		timestamp:   timestamp,
		completed:   completed,
	}
}

// Status returns the lifecycle status this step records.
func (t TrackingStep) Status() Status {
	return t.status
}

// Title returns the fixed step label, e.g. "Order Placed".
func (t TrackingStep) Title() string {
	return t.title
}

// Description returns the fixed step description.
func (t TrackingStep) Description() string {
	return t.description
}

// Timestamp returns when the status was (last) reached.
func (t TrackingStep) Timestamp() time.Time {
	return t.timestamp
}

// Completed reports whether the milestone has been reached.
func (t TrackingStep) Completed() bool {
	return t.completed
}

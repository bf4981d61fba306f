package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentStatus tracks the payment lifecycle independently of the order
// status: a delivered order can still be unpaid, and a cancelled one may
// already have been refunded.
//
// Transitions: pending -> paid | failed, failed -> paid (retried payment),
// paid -> refunded.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status.
	PaymentPending

	// PaymentPaid means payment has been received.
	PaymentPaid

	// PaymentFailed means a payment attempt did not go through. Payment can
	// be retried.
	PaymentFailed

	// PaymentRefunded means a received payment has been returned.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

func getPaymentTransitions() map[PaymentStatus][]PaymentStatus {
	return map[PaymentStatus][]PaymentStatus{
		PaymentPending: {PaymentPaid, PaymentFailed},
		PaymentFailed:  {PaymentPaid},
		PaymentPaid:    {PaymentRefunded},
	}
}

// PaymentStatusFromString parses a wire-format payment status name.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s && status != PaymentUnknown {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// String returns the wire-format payment status name.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects PaymentUnknown and out-of-range values.
func (p PaymentStatus) Validate() error {
	if p < PaymentPending || p > PaymentRefunded {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// CanTransitionTo reports whether the payment graph permits moving to next.
func (p PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range getPaymentTransitions()[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

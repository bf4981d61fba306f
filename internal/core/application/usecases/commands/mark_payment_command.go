package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrMarkPaymentCommandIsNotConstructed = errors.New(
	"MarkPaymentCommand must be created via NewMarkPaymentCommand constructor",
)

// MarkPaymentCommand represents a supplier recording a payment outcome.
// The payment lifecycle is independent of the order status.
type MarkPaymentCommand struct {
	number        order.Number
	paymentStatus order.PaymentStatus
	by            actor.Actor

	guard guard.ConstructorGuard
}

// NewMarkPaymentCommand creates a payment status command.
func NewMarkPaymentCommand(
	number order.Number,
	paymentStatus order.PaymentStatus,
	by actor.Actor,
) (MarkPaymentCommand, error) {
	if err := errors.Join(
		number.Validate(),
		paymentStatus.Validate(),
		by.Role().Validate(),
	); err != nil {
		return MarkPaymentCommand{}, err
	}

	return MarkPaymentCommand{
		number:        number,
		paymentStatus: paymentStatus,
		by:            by,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPaymentCommand) Validate() error {
	return c.guard.Validate(ErrMarkPaymentCommandIsNotConstructed)
}

// Number returns the target order's number.
func (c MarkPaymentCommand) Number() order.Number {
	return c.number
}

// PaymentStatus returns the payment outcome to record.
func (c MarkPaymentCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

// By returns the acting party.
func (c MarkPaymentCommand) By() actor.Actor {
	return c.by
}

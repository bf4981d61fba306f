package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Money is a monetary amount in the currency's minor units (e.g. paise,
// cents). Keeping amounts integral avoids floating-point rounding in derived
// totals: a sum of line subtotals is exact by construction.
//
// Money is a value object; arithmetic returns new values and never mutates.
type Money struct {
	amount int64
}

// NewMoney creates a non-negative monetary amount. Prices, charges, and
// derived totals in this domain are never negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns the zero amount. Unlike UUID, the zero value of Money is
// meaningful and valid.
func ZeroMoney() Money {
	return Money{}
}

// Amount returns the value in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// MultiplyBy returns the amount scaled by a non-negative integer factor,
// e.g. a unit price times an ordered quantity.
func (m Money) MultiplyBy(factor int) Money {
	return Money{amount: m.amount * int64(factor)}
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String renders the amount in minor units, for logs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}

package order

import (
	"crypto/rand"
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

const (
	numberPrefix       = "ORD-"
	numberSuffixLength = 10

	// numberAlphabet omits characters that are easy to misread over the
	// phone (0/O, 1/I/L), since order numbers are shared between vendors
	// and suppliers.
	numberAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"
)

// ErrNumberIsNotConstructed indicates a zero-value OrderNumber.
var ErrNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via GenerateNumber or NumberFromString")

// Number is the human-shareable order identifier, e.g. "ORD-7GK2MQ94XW".
// It is generated at creation, immutable, and distinct from the internal
// storage key. Generation is probabilistic, so callers collision-check
// against the store and regenerate rather than fail.
type Number struct {
	value string
}

// GenerateNumber creates a new random order number.
func GenerateNumber() (Number, error) {
	buf := make([]byte, numberSuffixLength)
	if _, err := rand.Read(buf); err != nil {
		return Number{}, fmt.Errorf("generating order number: %w", err)
	}

	var b strings.Builder
	b.WriteString(numberPrefix)
	for _, c := range buf {
		b.WriteByte(numberAlphabet[int(c)%len(numberAlphabet)])
	}
	return Number{value: b.String()}, nil
}

// NumberFromString parses an order number supplied by a caller or restored
// from persistence, rejecting malformed values.
func NumberFromString(s string) (Number, error) {
	if len(s) != len(numberPrefix)+numberSuffixLength || !strings.HasPrefix(s, numberPrefix) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q does not match the ORD- format", s))
	}
	for _, c := range s[len(numberPrefix):] {
		if !strings.ContainsRune(numberAlphabet, c) {
			return Number{}, errs.NewValueIsInvalidErrorWithCause("order number",
				fmt.Errorf("%q contains an invalid character", s))
		}
	}
	return Number{value: s}, nil
}

// String returns the full "ORD-..." form.
func (n Number) String() string {
	return n.value
}

// IsEqual reports whether two order numbers are the same.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}

// Validate rejects the zero value.
func (n Number) Validate() error {
	if n.value == "" {
		return ErrNumberIsNotConstructed
	}
	return nil
}

package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification with errors.Is. The HTTP adapter maps
// them to response codes: invalid transitions and state locks are conflicts,
// never retried automatically.
var (
	// ErrInvalidTransition indicates a status change not permitted by the
	// transition graph.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrOrderStateLocked indicates an operation that the order's current
	// state does not allow, e.g. editing items after confirmation or rating
	// before delivery.
	ErrOrderStateLocked = errors.New("order state does not allow this operation")
)

// TransitionError reports a status change rejected by the transition graph.
// The order is left untouched when it is returned.
type TransitionError struct {
	From Status
	To   Status
}

// NewTransitionError creates a TransitionError for the rejected pair.
func NewTransitionError(from, to Status) *TransitionError {
	return &TransitionError{From: from, To: to}
}

func (e *TransitionError) Error() string {
	if e.From.IsTerminal() {
		return fmt.Sprintf("%s: %s is terminal", ErrInvalidTransition, e.From)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// StateLockedError reports an operation rejected because of the order's
// current state rather than its input. State is the offending status in wire
// form; it may be an order status or a payment status.
type StateLockedError struct {
	Operation string
	State     string
}

// NewStateLockedError creates a StateLockedError for the rejected operation.
func NewStateLockedError(operation, state string) *StateLockedError {
	return &StateLockedError{Operation: operation, State: state}
}

func (e *StateLockedError) Error() string {
	return fmt.Sprintf("%s: cannot %s while %s", ErrOrderStateLocked, e.Operation, e.State)
}

func (e *StateLockedError) Unwrap() error {
	return ErrOrderStateLocked
}

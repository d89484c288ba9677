package commands

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderCreationFailed classifies any failure of the order creation
	// workflow after input validation passed.
	ErrOrderCreationFailed = errors.New("order creation failed")

	// ErrInvalidCredentials is returned on sign-in with a wrong email or
	// password, and on refresh with a bad token. The message is deliberately
	// the same for both cases.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidResetCode is returned when a password reset code does not
	// match the pending one.
	ErrInvalidResetCode = errors.New("invalid reset code")
)

// OrderCreationError wraps the cause of a failed order creation so callers
// can classify the failure with errors.Is while keeping the root cause.
type OrderCreationError struct {
	Cause error
}

// NewOrderCreationError wraps a workflow failure cause.
func NewOrderCreationError(cause error) *OrderCreationError {
	return &OrderCreationError{Cause: cause}
}

func (e *OrderCreationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOrderCreationFailed, e.Cause)
}

func (e *OrderCreationError) Unwrap() []error {
	return []error{ErrOrderCreationFailed, e.Cause}
}

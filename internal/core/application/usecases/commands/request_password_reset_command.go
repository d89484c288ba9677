package commands

import (
	"errors"

	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/pkg/guard"
)

var ErrRequestPasswordResetCommandIsNotConstructed = errors.New(
	"RequestPasswordResetCommand must be created via NewRequestPasswordResetCommand constructor",
)

// RequestPasswordResetCommand represents a request for a password reset code.
type RequestPasswordResetCommand struct { //nolint:recvcheck //using for validation
	email kernel.Email

	guard guard.ConstructorGuard
}

// NewRequestPasswordResetCommand creates a reset request command.
func NewRequestPasswordResetCommand(email kernel.Email) (RequestPasswordResetCommand, error) {
	cmd := RequestPasswordResetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := email.Validate(); err != nil {
		return RequestPasswordResetCommand{}, err
	}

	cmd.email = email
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPasswordResetCommand) Validate() error {
	return c.guard.Validate(ErrRequestPasswordResetCommandIsNotConstructed)
}

// Email returns the account email the reset is requested for.
func (c RequestPasswordResetCommand) Email() kernel.Email { return c.email }

package commands

import (
	"errors"

	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var ErrResetPasswordCommandIsNotConstructed = errors.New(
	"ResetPasswordCommand must be created via NewResetPasswordCommand constructor",
)

// ResetPasswordCommand represents a password change authorized by a pending
// reset code.
type ResetPasswordCommand struct { //nolint:recvcheck //using for validation
	email       kernel.Email
	resetCode   string
	newPassword string

	guard guard.ConstructorGuard
}

// NewResetPasswordCommand creates a password reset command.
func NewResetPasswordCommand(email kernel.Email, resetCode, newPassword string) (ResetPasswordCommand, error) {
	cmd := ResetPasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := email.Validate(); err != nil {
		return ResetPasswordCommand{}, err
	}
	if resetCode == "" {
		return ResetPasswordCommand{}, errs.NewValueIsRequiredError("resetCode")
	}
	if newPassword == "" {
		return ResetPasswordCommand{}, errs.NewValueIsRequiredError("newPassword")
	}

	cmd.email = email
	cmd.resetCode = resetCode
	cmd.newPassword = newPassword
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetPasswordCommand) Validate() error {
	return c.guard.Validate(ErrResetPasswordCommandIsNotConstructed)
}

// Email returns the account email.
func (c ResetPasswordCommand) Email() kernel.Email { return c.email }

// ResetCode returns the presented reset code.
func (c ResetPasswordCommand) ResetCode() string { return c.resetCode }

// NewPassword returns the plaintext replacement password.
func (c ResetPasswordCommand) NewPassword() string { return c.newPassword }

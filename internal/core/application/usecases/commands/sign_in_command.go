package commands

import (
	"errors"

	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var ErrSignInCommandIsNotConstructed = errors.New(
	"SignInCommand must be created via NewSignInCommand constructor",
)

// SignInCommand represents a credential check that mints a token pair.
type SignInCommand struct { //nolint:recvcheck //using for validation
	email    kernel.Email
	password string

	guard guard.ConstructorGuard
}

// NewSignInCommand creates a sign-in command.
func NewSignInCommand(email kernel.Email, password string) (SignInCommand, error) {
	cmd := SignInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := email.Validate(); err != nil {
		return SignInCommand{}, err
	}
	if password == "" {
		return SignInCommand{}, errs.NewValueIsRequiredError("password")
	}

	cmd.email = email
	cmd.password = password
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignInCommand) Validate() error {
	return c.guard.Validate(ErrSignInCommandIsNotConstructed)
}

// Email returns the login email.
func (c SignInCommand) Email() kernel.Email { return c.email }

// Password returns the plaintext password to verify.
func (c SignInCommand) Password() string { return c.password }

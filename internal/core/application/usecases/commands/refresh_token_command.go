package commands

import (
	"errors"

	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var ErrRefreshTokenCommandIsNotConstructed = errors.New(
	"RefreshTokenCommand must be created via NewRefreshTokenCommand constructor",
)

// RefreshTokenCommand represents a request to trade a refresh token for a
// fresh access/refresh pair.
type RefreshTokenCommand struct { //nolint:recvcheck //using for validation
	refreshToken string

	guard guard.ConstructorGuard
}

// NewRefreshTokenCommand creates a refresh command.
func NewRefreshTokenCommand(refreshToken string) (RefreshTokenCommand, error) {
	cmd := RefreshTokenCommand{
		guard: guard.NewConstructorGuard(),
	}

	if refreshToken == "" {
		return RefreshTokenCommand{}, errs.NewValueIsRequiredError("refreshToken")
	}

	cmd.refreshToken = refreshToken
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshTokenCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTokenCommandIsNotConstructed)
}

// RefreshToken returns the presented refresh token.
func (c RefreshTokenCommand) RefreshToken() string { return c.refreshToken }

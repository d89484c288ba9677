package commands

import (
	"context"
	"errors"

	"ecom/internal/core/ports"
	"ecom/internal/pkg/errs"
)

// SignInCommandHandler verifies credentials and issues a token pair.
// A wrong email and a wrong password both map to ErrInvalidCredentials so
// the response does not leak which accounts exist.
type SignInCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
}

// NewSignInCommandHandler creates a handler for sign-in.
func NewSignInCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
) SignInCommandHandler {
	return SignInCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle processes the sign-in command.
func (h *SignInCommandHandler) Handle(ctx context.Context, cmd SignInCommand) (ports.TokenPair, error) {
	if err := cmd.Validate(); err != nil {
		return ports.TokenPair{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.TokenPair{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	acc, err := uow.AccountRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ports.TokenPair{}, ErrInvalidCredentials
		}
		return ports.TokenPair{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.TokenPair{}, err
	}

	if !acc.IsActive() {
		return ports.TokenPair{}, ErrInvalidCredentials
	}
	if err = h.hasher.Compare(acc.HashedPassword(), cmd.Password()); err != nil {
		return ports.TokenPair{}, ErrInvalidCredentials
	}

	return h.tokens.IssuePair(acc.ID(), acc.Email().String())
}

package commands

import (
	"context"
	"errors"

	"ecom/internal/core/ports"
	"ecom/internal/pkg/errs"
)

// RefreshTokenCommandHandler verifies a refresh token and issues a new pair.
type RefreshTokenCommandHandler struct {
	uowFactory AccountUoWFactory
	tokens     ports.TokenService
}

// NewRefreshTokenCommandHandler creates a handler for token refresh.
func NewRefreshTokenCommandHandler(
	uowFactory AccountUoWFactory,
	tokens ports.TokenService,
) RefreshTokenCommandHandler {
	return RefreshTokenCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
	}
}

// Handle processes the refresh command. Any verification failure, including
// a deactivated or deleted account, maps to ErrInvalidCredentials.
func (h *RefreshTokenCommandHandler) Handle(ctx context.Context, cmd RefreshTokenCommand) (ports.TokenPair, error) {
	if err := cmd.Validate(); err != nil {
		return ports.TokenPair{}, err
	}

	accountID, err := h.tokens.VerifyRefresh(cmd.RefreshToken())
	if err != nil {
		return ports.TokenPair{}, ErrInvalidCredentials
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ports.TokenPair{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	acc, err := uow.AccountRepository().GetByID(ctx, accountID)
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

	return h.tokens.IssuePair(acc.ID(), acc.Email().String())
}

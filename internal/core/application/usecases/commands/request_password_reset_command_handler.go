package commands

import (
	"context"

	"github.com/google/uuid"
)

// RequestPasswordResetCommandHandler stores a fresh single-use reset code on
// the account. Delivery of the code (mail) is outside the handler; the code
// is returned to the caller.
type RequestPasswordResetCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRequestPasswordResetCommandHandler creates a handler for reset requests.
func NewRequestPasswordResetCommandHandler(uowFactory AccountUoWFactory) RequestPasswordResetCommandHandler {
	return RequestPasswordResetCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reset request. An unknown email is reported as
// errs.ErrObjectNotFound; the HTTP layer hides it behind a generic reply.
func (h *RequestPasswordResetCommandHandler) Handle(ctx context.Context, cmd RequestPasswordResetCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AccountRepository()

	acc, err := repo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		return "", err
	}

	code := uuid.NewString()
	if err = acc.SetResetCode(code); err != nil {
		return "", err
	}

	if err = repo.Update(ctx, acc); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}
	return code, nil
}

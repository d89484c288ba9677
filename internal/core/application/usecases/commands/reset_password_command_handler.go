package commands

import (
	"context"

	"ecom/internal/core/ports"
)

// ResetPasswordCommandHandler verifies a pending reset code and replaces the
// account password. A successful reset clears the code.
type ResetPasswordCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

// NewResetPasswordCommandHandler creates a handler for password resets.
func NewResetPasswordCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
) ResetPasswordCommandHandler {
	return ResetPasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the password reset command.
func (h *ResetPasswordCommandHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AccountRepository()

	acc, err := repo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		return err
	}

	if !acc.ResetCodeMatches(cmd.ResetCode()) {
		return ErrInvalidResetCode
	}

	hashed, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}

	if err = acc.ChangePassword(hashed); err != nil {
		return err
	}

	if err = repo.Update(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

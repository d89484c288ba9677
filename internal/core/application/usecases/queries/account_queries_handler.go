package queries

import (
	"context"
	"database/sql"
	"errors"

	"ecom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAccountQueryHandler loads one staff account profile.
type GetAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountQueryHandler creates a handler for account profile lookups.
func NewGetAccountQueryHandler(db *gorm.DB) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound for unknown ids.
func (h GetAccountQueryHandler) Handle(
	ctx context.Context,
	query GetAccountQuery,
) (AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return AccountResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, email, name, is_active
		FROM accounts
		WHERE id = ?
	`, query.AccountID()).Row()

	var account AccountResponse
	err := row.Scan(&account.ID, &account.Email, &account.Name, &account.IsActive)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return AccountResponse{}, errs.NewObjectNotFoundError("accountId", query.AccountID())
	}
	if err != nil {
		return AccountResponse{}, err
	}

	return account, nil
}

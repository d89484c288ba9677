package ports

import (
	"context"

	"ecom/internal/core/domain/model/account"
	"ecom/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for backend accounts.
type AccountRepository interface {
	// Add persists a new account and returns the stored entity.
	Add(ctx context.Context, a *account.Account) (*account.Account, error)

	// Update persists changes to an existing account.
	Update(ctx context.Context, a *account.Account) error

	// GetByID retrieves an account by its identifier.
	GetByID(ctx context.Context, id int64) (*account.Account, error)

	// GetByEmail retrieves an account by its normalized email.
	GetByEmail(ctx context.Context, email kernel.Email) (*account.Account, error)
}

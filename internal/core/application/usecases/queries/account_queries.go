package queries

import (
	"errors"
	"fmt"

	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var ErrGetAccountQueryIsNotConstructed = errors.New(
	"GetAccountQuery must be created via NewGetAccountQuery constructor",
)

// GetAccountQuery represents a request for one staff account profile.
type GetAccountQuery struct { //nolint:recvcheck //using for validation
	accountID int64

	guard guard.ConstructorGuard
}

// NewGetAccountQuery creates a query for the account with the given id.
func NewGetAccountQuery(accountID int64) (GetAccountQuery, error) {
	if accountID <= 0 {
		return GetAccountQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"accountId",
			fmt.Errorf("%d is not a valid account id", accountID),
		)
	}

	return GetAccountQuery{
		accountID: accountID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

// AccountID returns the requested account id.
func (q GetAccountQuery) AccountID() int64 {
	return q.accountID
}

// AccountResponse is the account profile without credential material.
type AccountResponse struct {
	ID       int64
	Email    string
	Name     string
	IsActive bool
}

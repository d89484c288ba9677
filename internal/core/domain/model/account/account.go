// Package account contains the backend user account used for authentication.
// Accounts are operators of the backend, distinct from customers.
package account

import (
	"errors"

	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/pkg/errs"
)

var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account is a backend user with credentials. The password is stored only as
// a hash; reset codes are single-use and cleared after a successful reset.
type Account struct {
	id             int64
	email          kernel.Email
	name           string
	hashedPassword string
	isActive       bool
	resetCode      *string
	isConstructed  bool
}

// NewAccount creates an active account with an already-hashed password.
func NewAccount(email kernel.Email, name, hashedPassword string) (*Account, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if hashedPassword == "" {
		return nil, errs.NewValueIsRequiredError("hashedPassword")
	}

	return &Account{
		email:          email,
		name:           name,
		hashedPassword: hashedPassword,
		isActive:       true,
		isConstructed:  true,
	}, nil
}

// RestoreAccount rebuilds an account from persistence.
func RestoreAccount(id int64, email kernel.Email, name, hashedPassword string, isActive bool, resetCode *string) (*Account, error) {
	a, err := NewAccount(email, name, hashedPassword)
	if err != nil {
		return nil, err
	}

	a.id = id
	a.isActive = isActive
	a.resetCode = resetCode
	return a, nil
}

// Validate ensures the account was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// SetResetCode stores a pending password-reset code.
func (a *Account) SetResetCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("resetCode")
	}
	a.resetCode = &code
	return nil
}

// ResetCodeMatches reports whether a pending reset code equals the given one.
func (a *Account) ResetCodeMatches(code string) bool {
	return a.resetCode != nil && code != "" && *a.resetCode == code
}

// ChangePassword replaces the stored hash and clears any pending reset code.
func (a *Account) ChangePassword(hashedPassword string) error {
	if hashedPassword == "" {
		return errs.NewValueIsRequiredError("hashedPassword")
	}
	a.hashedPassword = hashedPassword
	a.resetCode = nil
	return nil
}

// ID returns the persistence identifier, zero until stored.
func (a *Account) ID() int64 { return a.id }

// Email returns the account's login email.
func (a *Account) Email() kernel.Email { return a.email }

// Name returns the display name.
func (a *Account) Name() string { return a.name }

// HashedPassword returns the stored password hash.
func (a *Account) HashedPassword() string { return a.hashedPassword }

// IsActive reports whether the account may sign in.
func (a *Account) IsActive() bool { return a.isActive }

// ResetCode returns the pending reset code, nil when none is pending.
func (a *Account) ResetCode() *string { return a.resetCode }

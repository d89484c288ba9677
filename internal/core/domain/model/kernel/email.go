package kernel

import (
	"regexp"
	"strings"

	"ecom/internal/pkg/errs"
)

// emailPattern is intentionally permissive; it rejects obvious garbage while
// leaving strict verification to the mail transport.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is a validated, lower-cased email address. It is the identity key
// for customers and accounts.
type Email struct {
	value string
}

// NewEmail validates and normalizes an email address.
func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(value) {
		return Email{}, errs.NewValueIsInvalidError("email")
	}

	return Email{value: value}, nil
}

// Validate reports whether the email was created via NewEmail.
func (e Email) Validate() error {
	if e.value == "" {
		return errs.NewValueIsRequiredError("email")
	}
	return nil
}

// IsEqual compares two emails by normalized value.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// String returns the normalized address.
func (e Email) String() string {
	return e.value
}

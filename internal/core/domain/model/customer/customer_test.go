package customer_test

import (
	"testing"

	"ecom/internal/core/domain/model/customer"
	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	email, err := kernel.NewEmail("a@b.com")
	require.NoError(t, err)

	t.Run("valid_customer", func(t *testing.T) {
		c, err := customer.NewCustomer("Jane", "Doe", email, "+1", "5550100")
		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Jane", c.FirstName())
		assert.Equal(t, "Doe", c.LastName())
		assert.Equal(t, "a@b.com", c.Email().String())
		assert.Zero(t, c.ID())
	})

	t.Run("required_fields", func(t *testing.T) {
		_, err := customer.NewCustomer("", "Doe", email, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = customer.NewCustomer("Jane", "", email, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = customer.NewCustomer("Jane", "Doe", kernel.Email{}, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var c customer.Customer
		require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})
}

func TestCustomer_Updates(t *testing.T) {
	email, err := kernel.NewEmail("a@b.com")
	require.NoError(t, err)
	c, err := customer.RestoreCustomer(5, "Jane", "Doe", email, "+1", "5550100")
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.ID())

	require.NoError(t, c.Rename("Janet", "Doe"))
	assert.Equal(t, "Janet", c.FirstName())

	require.Error(t, c.Rename("", "Doe"))
	assert.Equal(t, "Janet", c.FirstName())

	c.ChangePhone("+44", "2079460000")
	assert.Equal(t, "+44", c.PhoneCountryCode())
	assert.Equal(t, "2079460000", c.PhoneNumber())
}

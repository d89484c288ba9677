package kernel_test

import (
	"testing"

	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("valid_address", func(t *testing.T) {
		e, err := kernel.NewEmail("a@b.com")
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", e.String())
		require.NoError(t, e.Validate())
	})

	t.Run("normalizes_case_and_whitespace", func(t *testing.T) {
		e, err := kernel.NewEmail("  John.Doe@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "john.doe@example.com", e.String())
	})

	t.Run("empty_is_required_error", func(t *testing.T) {
		_, err := kernel.NewEmail("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed_addresses_rejected", func(t *testing.T) {
		for _, value := range []string{"not-an-email", "a@b", "@b.com", "a b@c.com"} {
			_, err := kernel.NewEmail(value)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "value %q", value)
		}
	})
}

func TestEmail_IsEqual(t *testing.T) {
	a, err := kernel.NewEmail("a@b.com")
	require.NoError(t, err)
	b, err := kernel.NewEmail("A@B.com")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))

	var zero kernel.Email
	assert.False(t, a.IsEqual(zero))
	require.Error(t, zero.Validate())
}

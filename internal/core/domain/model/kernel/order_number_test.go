package kernel_test

import (
	"testing"

	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	tests := []struct {
		name     string
		sequence int64
		want     string
		wantErr  bool
	}{
		{name: "first_order", sequence: 1, want: "ORD-00001"},
		{name: "padded_to_five_digits", sequence: 42, want: "ORD-00042"},
		{name: "five_digit_sequence", sequence: 99999, want: "ORD-99999"},
		{name: "sequence_wider_than_padding", sequence: 123456, want: "ORD-123456"},
		{name: "zero_is_invalid", sequence: 0, wantErr: true},
		{name: "negative_is_invalid", sequence: -5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := kernel.NewOrderNumber(tt.sequence)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())
			assert.Equal(t, tt.sequence, n.Sequence())
			require.NoError(t, n.Validate())
		})
	}
}

func TestOrderNumberFromString(t *testing.T) {
	t.Run("valid_value_round_trips", func(t *testing.T) {
		n, err := kernel.OrderNumberFromString("ORD-00123")
		require.NoError(t, err)
		assert.Equal(t, "ORD-00123", n.String())
		assert.Equal(t, int64(123), n.Sequence())
	})

	t.Run("empty_value_is_required_error", func(t *testing.T) {
		_, err := kernel.OrderNumberFromString("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed_values_are_rejected", func(t *testing.T) {
		for _, value := range []string{"ORD-1", "ORD-abcde", "00001", "INV-00001", "ORD-00001x"} {
			_, err := kernel.OrderNumberFromString(value)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "value %q", value)
		}
	})
}

func TestOrderNumber_IsEqual(t *testing.T) {
	a, err := kernel.NewOrderNumber(7)
	require.NoError(t, err)
	b, err := kernel.OrderNumberFromString("ORD-00007")
	require.NoError(t, err)
	c, err := kernel.NewOrderNumber(8)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestOrderNumber_ZeroValueFailsValidation(t *testing.T) {
	var n kernel.OrderNumber
	require.Error(t, n.Validate())
}

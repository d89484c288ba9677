package guard_test

import (
	"errors"
	"testing"

	"ecom/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	require.NoError(t, g.Validate(errors.New("not constructed")))
	require.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		copied := g

		require.NoError(t, g.Validate(nil))
		require.NoError(t, copied.Validate(nil))
	})
}

// TestConstructorGuardUsage demonstrates the intended embedding pattern.
func TestConstructorGuardUsage(t *testing.T) {
	type orderNumber struct {
		value string
		guard guard.ConstructorGuard
	}

	errNotConstructed := errors.New("OrderNumber must be created via its constructor")

	newOrderNumber := func(value string) (orderNumber, error) {
		if value == "" {
			return orderNumber{}, errors.New("value is required")
		}
		return orderNumber{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_validates", func(t *testing.T) {
		n, err := newOrderNumber("ORD-00001")
		require.NoError(t, err)
		require.NoError(t, n.guard.Validate(errNotConstructed))
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var n orderNumber
		err := n.guard.Validate(errNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}

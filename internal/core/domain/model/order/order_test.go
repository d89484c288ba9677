package order_test

import (
	"testing"
	"time"

	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/core/domain/model/order"
	"ecom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrderNumber(t *testing.T, seq int64) kernel.OrderNumber {
	t.Helper()
	n, err := kernel.NewOrderNumber(seq)
	require.NoError(t, err)
	return n
}

func mustAddress(t *testing.T) order.Address {
	t.Helper()
	a, err := order.NewAddress("B1", "12", "7", "Main St", "Springfield", "US")
	require.NoError(t, err)
	return a
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order_with_zero_amount", func(t *testing.T) {
		o, err := order.NewOrder(mustOrderNumber(t, 1), 10, 1, time.Now(), "card", mustAddress(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Zero(t, o.Amount())
		assert.Empty(t, o.Lines())
		assert.Equal(t, "ORD-00001", o.Number().String())
		assert.Equal(t, int64(10), o.CustomerID())
		assert.Equal(t, int64(1), o.UserID())
		assert.Equal(t, "card", o.PaymentMethod())
	})

	t.Run("rejects_invalid_inputs", func(t *testing.T) {
		number := mustOrderNumber(t, 1)
		address := mustAddress(t)
		now := time.Now()

		_, err := order.NewOrder(kernel.OrderNumber{}, 10, 1, now, "card", address)
		require.Error(t, err)

		_, err = order.NewOrder(number, 0, 1, now, "card", address)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewOrder(number, 10, 0, now, "card", address)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewOrder(number, 10, 1, time.Time{}, "card", address)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(number, 10, 1, now, "", address)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(number, 10, 1, now, "card", order.Address{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_order_fails_validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AddLine(t *testing.T) {
	t.Run("amount_is_sum_of_line_subtotals", func(t *testing.T) {
		o, err := order.NewOrder(mustOrderNumber(t, 2), 10, 1, time.Now(), "card", mustAddress(t))
		require.NoError(t, err)

		first, err := order.NewLine(1, 2, 30, 170)
		require.NoError(t, err)
		second, err := order.NewLine(2, 1, 0, 50)
		require.NoError(t, err)

		require.NoError(t, o.AddLine(first))
		require.NoError(t, o.AddLine(second))

		assert.InDelta(t, 220.0, o.Amount(), 1e-9)
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("lines_accessor_returns_copy", func(t *testing.T) {
		o, err := order.NewOrder(mustOrderNumber(t, 3), 10, 1, time.Now(), "card", mustAddress(t))
		require.NoError(t, err)

		line, err := order.NewLine(1, 1, 0, 50)
		require.NoError(t, err)
		require.NoError(t, o.AddLine(line))

		lines := o.Lines()
		lines[0] = order.Line{}
		assert.Equal(t, int64(1), o.Lines()[0].ProductID())
	})
}

func TestNewLine(t *testing.T) {
	t.Run("valid_line", func(t *testing.T) {
		line, err := order.NewLine(5, 2, 30, 170)
		require.NoError(t, err)
		assert.Equal(t, int64(5), line.ProductID())
		assert.Equal(t, 2, line.Quantity())
		assert.InDelta(t, 30.0, line.Discount(), 1e-9)
		assert.InDelta(t, 170.0, line.Subtotal(), 1e-9)
	})

	t.Run("invariants", func(t *testing.T) {
		_, err := order.NewLine(0, 1, 0, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewLine(5, 0, 0, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewLine(5, 1, -1, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewLine(5, 1, 0, -0.01)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(mustOrderNumber(t, 4), 10, 1, time.Now(), "card", mustAddress(t))
		require.NoError(t, err)
		return o
	}

	t.Run("pending_to_processing_to_delivered", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Processing))
		require.NoError(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("terminal_status_rejects_changes", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled))
		require.Error(t, o.ChangeStatus(order.Processing))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("invalid_transition_keeps_status", func(t *testing.T) {
		o := newOrder(t)
		require.Error(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	address, err := order.RestoreAddress(3, "", "", "", "Main St", "Springfield", "US")
	require.NoError(t, err)
	line, err := order.RestoreLine(7, 1, 3, 0, 150)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		42, mustOrderNumber(t, 42), 10, 1,
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), "card",
		order.Processing, 150, address, []order.Line{line},
	)

	require.NoError(t, err)
	assert.Equal(t, int64(42), o.ID())
	assert.Equal(t, order.Processing, o.Status())
	assert.InDelta(t, 150.0, o.Amount(), 1e-9)
	assert.Equal(t, int64(3), o.Address().ID())
	require.Len(t, o.Lines(), 1)
	assert.Equal(t, int64(7), o.Lines()[0].ID())
}

func TestOrder_IsEqual(t *testing.T) {
	a, err := order.NewOrder(mustOrderNumber(t, 9), 10, 1, time.Now(), "card", mustAddress(t))
	require.NoError(t, err)
	b, err := order.NewOrder(mustOrderNumber(t, 9), 11, 2, time.Now(), "cash", mustAddress(t))
	require.NoError(t, err)
	c, err := order.NewOrder(mustOrderNumber(t, 10), 10, 1, time.Now(), "card", mustAddress(t))
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}

package services_test

import (
	"testing"

	"ecom/internal/core/domain/model/product"
	"ecom/internal/core/domain/services"
	"ecom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreProduct(t *testing.T, id int64, regular float64, sale *float64) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(
		id, "Widget", "widget", "", "", "",
		regular, sale, 0, 10, "In Stock", 0, false, "Published", false,
	)
	require.NoError(t, err)
	return p
}

func TestLinePricer_Price(t *testing.T) {
	pricer := services.NewLinePricer()

	t.Run("regular_price_times_quantity_minus_discount", func(t *testing.T) {
		p := restoreProduct(t, 1, 100, nil)

		line, err := pricer.Price(p, 2, 30)

		require.NoError(t, err)
		assert.InDelta(t, 170.0, line.Subtotal(), 1e-9)
		assert.Equal(t, int64(1), line.ProductID())
		assert.Equal(t, 2, line.Quantity())
		assert.InDelta(t, 30.0, line.Discount(), 1e-9)
	})

	t.Run("subtotal_floors_at_zero", func(t *testing.T) {
		p := restoreProduct(t, 1, 100, nil)

		line, err := pricer.Price(p, 1, 250)

		require.NoError(t, err)
		assert.Zero(t, line.Subtotal())
	})

	t.Run("sale_price_wins_when_set", func(t *testing.T) {
		sale := 80.0
		p := restoreProduct(t, 1, 100, &sale)

		line, err := pricer.Price(p, 2, 0)

		require.NoError(t, err)
		assert.InDelta(t, 160.0, line.Subtotal(), 1e-9)
	})

	t.Run("regular_price_no_sale_quantity_three", func(t *testing.T) {
		p := restoreProduct(t, 1, 50, nil)

		line, err := pricer.Price(p, 3, 0)

		require.NoError(t, err)
		assert.InDelta(t, 150.0, line.Subtotal(), 1e-9)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		p := restoreProduct(t, 1, 100, nil)

		_, err := pricer.Price(p, 0, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = pricer.Price(p, -1, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_discount", func(t *testing.T) {
		p := restoreProduct(t, 1, 100, nil)

		_, err := pricer.Price(p, 1, -0.5)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_unconstructed_product", func(t *testing.T) {
		var p product.Product
		_, err := pricer.Price(&p, 1, 0)
		require.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})
}

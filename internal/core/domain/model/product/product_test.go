package product_test

import (
	"testing"

	"ecom/internal/core/domain/model/product"
	"ecom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("valid_product_with_defaults", func(t *testing.T) {
		p, err := product.NewProduct("Widget", "widget", 50)
		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "In Stock", p.StockStatus())
		assert.Equal(t, "Draft", p.ProductStatus())
		assert.Nil(t, p.SalePrice())
	})

	t.Run("required_and_invalid_inputs", func(t *testing.T) {
		_, err := product.NewProduct("", "widget", 50)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = product.NewProduct("Widget", "", 50)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = product.NewProduct("Widget", "widget", -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_EffectivePrice(t *testing.T) {
	p, err := product.NewProduct("Widget", "widget", 100)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, p.EffectivePrice(), 1e-9)

	sale := 80.0
	require.NoError(t, p.SetSalePrice(&sale))
	assert.InDelta(t, 80.0, p.EffectivePrice(), 1e-9)

	require.NoError(t, p.SetSalePrice(nil))
	assert.InDelta(t, 100.0, p.EffectivePrice(), 1e-9)

	negative := -5.0
	require.ErrorIs(t, p.SetSalePrice(&negative), errs.ErrValueIsInvalid)
}

func TestProduct_Setters(t *testing.T) {
	p, err := product.NewProduct("Widget", "widget", 100)
	require.NoError(t, err)

	require.NoError(t, p.SetRegularPrice(120))
	assert.InDelta(t, 120.0, p.RegularPrice(), 1e-9)
	require.ErrorIs(t, p.SetRegularPrice(-1), errs.ErrValueIsInvalid)

	require.NoError(t, p.SetStock(10, "In Stock", 2, true))
	assert.Equal(t, 10, p.StockQuantity())
	assert.True(t, p.AllowBackorder())
	require.ErrorIs(t, p.SetStock(-1, "", 0, false), errs.ErrValueIsInvalid)

	require.NoError(t, p.Rename("Gadget"))
	require.ErrorIs(t, p.Rename(""), errs.ErrValueIsRequired)

	p.SetProductStatus("Published")
	assert.Equal(t, "Published", p.ProductStatus())
}

func TestRestoreProduct(t *testing.T) {
	sale := 80.0
	p, err := product.RestoreProduct(
		7, "Widget", "widget", "A widget.", "W-1", "Acme",
		100, &sale, 0.2, 5, "In Stock", 1, false, "Published", true,
	)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID())
	assert.InDelta(t, 80.0, p.EffectivePrice(), 1e-9)
	assert.Equal(t, "Acme", p.Brand())
	assert.True(t, p.IsFeatured())
}

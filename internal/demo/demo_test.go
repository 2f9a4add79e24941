package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-search/internal/models"
	"product-search/internal/normalize"
)

func TestProductsFixed(t *testing.T) {
	a := Products()
	b := Products()
	require.Len(t, a, 15)
	assert.Equal(t, a, b)
}

func TestProductsCopy(t *testing.T) {
	a := Products()
	a[0].Name = "modificado"
	a[1].Price = 0

	b := Products()
	assert.Equal(t, "Laptop HP Pavilion 15", b[0].Name)
	assert.Equal(t, 35.0, b[1].Price)
}

func TestProductsCanonical(t *testing.T) {
	ids := map[int]bool{}
	skus := map[string]bool{}
	for _, p := range Products() {
		assert.True(t, models.IsCategory(string(p.Category)), p.Name)
		assert.Equal(t, p.Category, normalize.Category(string(p.Category)))
		assert.Equal(t, p.Condition, normalize.Condition(string(p.Condition)))
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.False(t, ids[p.ProductID], "duplicated id %d", p.ProductID)
		assert.False(t, skus[p.SKU], "duplicated sku %s", p.SKU)
		ids[p.ProductID] = true
		skus[p.SKU] = true
	}
}

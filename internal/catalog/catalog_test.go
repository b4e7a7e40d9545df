package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrapshop/internal/catalog"
)

func TestProducts(t *testing.T) {
	products := catalog.Products()

	require.Len(t, products, 5)
	assert.Equal(t, "Mod", products[0].Name)
	for _, p := range products {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.Greater(t, p.Price, 0.0)
	}
}

func TestProducts_ReturnsCopy(t *testing.T) {
	products := catalog.Products()
	products[0].Price = 999

	assert.Equal(t, 3.0, catalog.Products()[0].Price)
}

func TestFind(t *testing.T) {
	p, ok := catalog.Find("Hardcore VIP Perma")
	require.True(t, ok)
	assert.Equal(t, 30.0, p.Price)

	_, ok = catalog.Find("Unknown Item")
	assert.False(t, ok)
}

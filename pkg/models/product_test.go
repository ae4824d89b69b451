package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductRequestToProduct(t *testing.T) {
	t.Parallel()

	req := CreateProductRequest{
		Title:       "Sunset Oil",
		Description: "Oil on canvas",
		Image:       "https://cdn.example.com/sunset.jpg",
		Price:       1500,
		Category:    "Landscape",
		ArtType:     "Oil",
	}

	product := req.ToProduct()
	require.False(t, product.ID.IsZero())
	assert.Equal(t, "Sunset Oil", product.Title)
	assert.Equal(t, 1500.0, product.Price)
	assert.Zero(t, product.Rating)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestProductApplyUpdate(t *testing.T) {
	t.Parallel()

	product := Product{
		Title:    "Sunset Oil",
		Price:    1500,
		Category: "Landscape",
		ArtType:  "Oil",
	}

	product.ApplyUpdate(&UpdateProductRequest{Price: 1800, Category: "Seascape"})
	assert.Equal(t, 1800.0, product.Price)
	assert.Equal(t, "Seascape", product.Category)

	// Zero-valued fields keep the stored values.
	assert.Equal(t, "Sunset Oil", product.Title)
	assert.Equal(t, "Oil", product.ArtType)

	product.ApplyUpdate(&UpdateProductRequest{})
	assert.Equal(t, 1800.0, product.Price)
	assert.Equal(t, "Sunset Oil", product.Title)
}

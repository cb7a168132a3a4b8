package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_HasStockFor(t *testing.T) {
	p := Product{ID: 1, Stock: 10}

	assert.True(t, p.HasStockFor(10))
	assert.True(t, p.HasStockFor(0))
	assert.False(t, p.HasStockFor(11))
}

func TestProduct_BelowMinStock(t *testing.T) {
	assert.True(t, Product{Stock: 2, MinStock: 5}.BelowMinStock())
	assert.False(t, Product{Stock: 5, MinStock: 5}.BelowMinStock())
}

func TestProductPatch_Apply_OnlyPresentFields(t *testing.T) {
	product := Product{
		ID:          1,
		Description: "Arroz 5kg",
		Category:    "mercearia",
		SalePrice:   decimal.RequireFromString("25.90"),
		Stock:       10,
		Unit:        DefaultUnit,
		Active:      true,
	}

	description := "Arroz Tipo 1 5kg"
	price := decimal.RequireFromString("27.50")
	inactive := false
	ProductPatch{
		Description: &description,
		SalePrice:   &price,
		Active:      &inactive,
	}.Apply(&product)

	assert.Equal(t, "Arroz Tipo 1 5kg", product.Description)
	assert.True(t, price.Equal(product.SalePrice))
	assert.False(t, product.Active)
	assert.Equal(t, "mercearia", product.Category)
	assert.Equal(t, 10, product.Stock)
	assert.Equal(t, DefaultUnit, product.Unit)
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
		want int
	}{
		{name: "empty collection", ids: nil, want: 1},
		{name: "contiguous ids", ids: []int{1, 2, 3}, want: 4},
		{name: "gap left by deletion", ids: []int{1, 2, 5}, want: 6},
		{name: "unordered", ids: []int{5, 1, 2}, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextID(tt.ids...))
		})
	}
}

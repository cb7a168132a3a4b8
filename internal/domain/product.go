package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultUnit = "un"

type Product struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	SKU         string          `json:"sku"`
	Barcode     string          `json:"barcode"`
	CostPrice   decimal.Decimal `json:"costPrice"`
	SalePrice   decimal.Decimal `json:"salePrice"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	Unit        string          `json:"unit"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// HasStockFor reports whether quantity units can be taken from the current stock.
func (p Product) HasStockFor(quantity int) bool {
	return quantity <= p.Stock
}

// BelowMinStock is advisory only; sales never consult it.
func (p Product) BelowMinStock() bool {
	return p.Stock < p.MinStock
}

// ProductPatch carries the fields of a partial product update. Nil fields
// are left untouched.
type ProductPatch struct {
	Description *string
	Category    *string
	Brand       *string
	SKU         *string
	Barcode     *string
	CostPrice   *decimal.Decimal
	SalePrice   *decimal.Decimal
	Stock       *int
	MinStock    *int
	Unit        *string
	Active      *bool
}

func (p ProductPatch) Apply(product *Product) {
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Brand != nil {
		product.Brand = *p.Brand
	}
	if p.SKU != nil {
		product.SKU = *p.SKU
	}
	if p.Barcode != nil {
		product.Barcode = *p.Barcode
	}
	if p.CostPrice != nil {
		product.CostPrice = *p.CostPrice
	}
	if p.SalePrice != nil {
		product.SalePrice = *p.SalePrice
	}
	if p.Stock != nil {
		product.Stock = *p.Stock
	}
	if p.MinStock != nil {
		product.MinStock = *p.MinStock
	}
	if p.Unit != nil {
		product.Unit = *p.Unit
	}
	if p.Active != nil {
		product.Active = *p.Active
	}
}

// ProductLookup is a read-only view of the catalog.
type ProductLookup interface {
	Product(id int) (Product, bool)
}

// StockView is the catalog as seen from inside an exclusive catalog
// transaction: reads see every decrement already applied in the same
// transaction.
type StockView interface {
	ProductLookup
	DecrementStock(id int, quantity int) error
}

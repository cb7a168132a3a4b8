package dto

import (
	"github.com/shopspring/decimal"

	"pdv/internal/domain"
)

// CreateProductRequest accepts prices as JSON numbers or numeric strings.
type CreateProductRequest struct {
	Description string           `json:"description" validate:"required,max=255"`
	Category    string           `json:"category" validate:"max=100"`
	Brand       string           `json:"brand" validate:"max=100"`
	SKU         string           `json:"sku" validate:"max=64"`
	Barcode     string           `json:"barcode" validate:"max=64"`
	CostPrice   *decimal.Decimal `json:"costPrice"`
	SalePrice   *decimal.Decimal `json:"salePrice" validate:"required"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	MinStock    *int             `json:"minStock" validate:"omitempty,min=0"`
	Unit        string           `json:"unit" validate:"max=16"`
	Active      *bool            `json:"active"`
}

func (r CreateProductRequest) ToDomain() domain.Product {
	p := domain.Product{
		Description: r.Description,
		Category:    r.Category,
		Brand:       r.Brand,
		SKU:         r.SKU,
		Barcode:     r.Barcode,
		Unit:        r.Unit,
		Active:      true,
	}
	if r.CostPrice != nil {
		p.CostPrice = *r.CostPrice
	}
	if r.SalePrice != nil {
		p.SalePrice = *r.SalePrice
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if r.MinStock != nil {
		p.MinStock = *r.MinStock
	}
	if p.Unit == "" {
		p.Unit = domain.DefaultUnit
	}
	if r.Active != nil {
		p.Active = *r.Active
	}
	return p
}

// UpdateProductRequest overwrites only the fields present in the body.
// description and salePrice are required on every update.
type UpdateProductRequest struct {
	Description *string          `json:"description" validate:"required,max=255"`
	Category    *string          `json:"category" validate:"omitempty,max=100"`
	Brand       *string          `json:"brand" validate:"omitempty,max=100"`
	SKU         *string          `json:"sku" validate:"omitempty,max=64"`
	Barcode     *string          `json:"barcode" validate:"omitempty,max=64"`
	CostPrice   *decimal.Decimal `json:"costPrice"`
	SalePrice   *decimal.Decimal `json:"salePrice" validate:"required"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	MinStock    *int             `json:"minStock" validate:"omitempty,min=0"`
	Unit        *string          `json:"unit" validate:"omitempty,max=16"`
	Active      *bool            `json:"active"`
}

func (r UpdateProductRequest) ToPatch() domain.ProductPatch {
	return domain.ProductPatch{
		Description: r.Description,
		Category:    r.Category,
		Brand:       r.Brand,
		SKU:         r.SKU,
		Barcode:     r.Barcode,
		CostPrice:   r.CostPrice,
		SalePrice:   r.SalePrice,
		Stock:       r.Stock,
		MinStock:    r.MinStock,
		Unit:        r.Unit,
		Active:      r.Active,
	}
}

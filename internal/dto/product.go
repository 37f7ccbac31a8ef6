package dto

import (
	"github.com/shopspring/decimal"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
)

// CreateProductRequest defines the data needed to register a new product.
type CreateProductRequest struct {
	ManufacturerID string             `json:"manufacturerID"`
	ProductName    string             `json:"productName"`
	ProductType    domain.ProductType `json:"productType"`
	Price          decimal.Decimal    `json:"price"`
}

// UpdateProductRequest carries the full replacement attributes for a product.
type UpdateProductRequest struct {
	ManufacturerID string             `json:"manufacturerID"`
	ProductName    string             `json:"productName"`
	ProductType    domain.ProductType `json:"productType"`
	Price          decimal.Decimal    `json:"price"`
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
)

// SaleItemRequest is one line item of a new sale. Price is the unit price
// snapshot taken by the register at sale time.
type SaleItemRequest struct {
	ProductID string          `json:"productID"`
	Count     int             `json:"count"`
	Price     decimal.Decimal `json:"price"`
}

// CreateSaleRequest defines the data needed to record a sale. Sum, discount
// and the cancel flag are derived server-side and never accepted as input.
type CreateSaleRequest struct {
	WorkerID     string              `json:"workerID"`
	BuyerID      *string             `json:"buyerID"`
	DiscountType domain.DiscountType `json:"discountType"`
	Products     []SaleItemRequest   `json:"products"`
}

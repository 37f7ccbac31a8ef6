package dto

import "github.com/shopspring/decimal"

// CreateBuyerRequest defines the data needed to register a buyer.
type CreateBuyerRequest struct {
	FullName     string          `json:"fullName"`
	PhoneNumber  string          `json:"phoneNumber"`
	DiscountSize decimal.Decimal `json:"discountSize"`
}

// UpdateBuyerRequest carries the full replacement attributes for a buyer.
type UpdateBuyerRequest struct {
	FullName     string          `json:"fullName"`
	PhoneNumber  string          `json:"phoneNumber"`
	DiscountSize decimal.Decimal `json:"discountSize"`
}

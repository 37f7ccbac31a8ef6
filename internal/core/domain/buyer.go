package domain

import "github.com/shopspring/decimal"

// Buyer is a registered customer. PhoneNumber is unique across buyers.
type Buyer struct {
	ID           string          `json:"id" validate:"required,uuid"`
	FullName     string          `json:"fullName" validate:"required"`
	PhoneNumber  string          `json:"phoneNumber" validate:"required,e164"`
	DiscountSize decimal.Decimal `json:"discountSize"`
}

func (b Buyer) Validate() error {
	return runValidation(b)
}

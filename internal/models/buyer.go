package models

import "github.com/shopspring/decimal"

// Buyer is a row of the buyers table. PhoneNumber carries a unique constraint.
type Buyer struct {
	ID           string          `db:"id"`
	FullName     string          `db:"full_name"`
	PhoneNumber  string          `db:"phone_number"`
	DiscountSize decimal.Decimal `db:"discount_size"`
}

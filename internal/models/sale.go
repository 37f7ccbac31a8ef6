package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a row of the sales table. Line items live in sale_products.
type Sale struct {
	ID           string          `db:"id"`
	WorkerID     string          `db:"worker_id"`
	BuyerID      *string         `db:"buyer_id"`
	SaleDate     time.Time       `db:"sale_date"`
	Sum          decimal.Decimal `db:"sum"`
	DiscountType uint            `db:"discount_type"`
	Discount     decimal.Decimal `db:"discount"`
	IsCancel     bool            `db:"is_cancel"`
}

// SaleProduct is a row of the sale_products table; the price is the snapshot
// taken at sale time.
type SaleProduct struct {
	SaleID    string          `db:"sale_id"`
	ProductID string          `db:"product_id"`
	Count     int             `db:"count"`
	Price     decimal.Decimal `db:"price"`
}

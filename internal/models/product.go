package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a row of the products table. Soft delete only; no row versioning.
type Product struct {
	ID             string          `db:"id"`
	ManufacturerID string          `db:"manufacturer_id"`
	ProductName    string          `db:"product_name"`
	ProductType    string          `db:"product_type"`
	Price          decimal.Decimal `db:"price"`
	IsDeleted      bool            `db:"is_deleted"`
}

// ProductHistory is an append-only row capturing a product's price before a
// change.
type ProductHistory struct {
	ID         string          `db:"id"`
	ProductID  string          `db:"product_id"`
	OldPrice   decimal.Decimal `db:"old_price"`
	ChangeDate time.Time       `db:"change_date"`
}

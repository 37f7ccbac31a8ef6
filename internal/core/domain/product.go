package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType enumerates the jewelry categories in the catalog.
type ProductType string

const (
	ProductTypeNone     ProductType = ""
	ProductTypeRing     ProductType = "RING"
	ProductTypeNecklace ProductType = "NECKLACE"
	ProductTypeEarrings ProductType = "EARRINGS"
	ProductTypeBracelet ProductType = "BRACELET"
	ProductTypeWatch    ProductType = "WATCH"
)

// Product is a catalog item. Unlike Post it keeps a single storage row; price
// changes are recorded as append-only ProductHistory entries instead of row
// versions. Deletion is a soft flag with no restore operation.
type Product struct {
	ID             string          `json:"id" validate:"required,uuid"`
	ManufacturerID string          `json:"manufacturerID" validate:"required,uuid"`
	ProductName    string          `json:"productName" validate:"required"`
	ProductType    ProductType     `json:"productType" validate:"required,oneof=RING NECKLACE EARRINGS BRACELET WATCH"`
	Price          decimal.Decimal `json:"price" validate:"gt=0"`
	IsDeleted      bool            `json:"isDeleted"`
}

func (p Product) Validate() error {
	return runValidation(p)
}

// ProductHistory records the price a product had before a change. Rows are
// append-only and never mutated or deleted.
type ProductHistory struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"productID"`
	OldPrice   decimal.Decimal `json:"oldPrice"`
	ChangeDate time.Time       `json:"changeDate"`
}

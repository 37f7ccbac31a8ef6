package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType is a bit-flag set of independently combinable discount
// reasons. Each set flag contributes an additive percentage; combinations are
// uncapped (RegularCustomer|Certificate yields 80%).
type DiscountType uint

const (
	DiscountNone            DiscountType = 0
	DiscountOnSale          DiscountType = 1 << 0
	DiscountRegularCustomer DiscountType = 1 << 1
	DiscountCertificate     DiscountType = 1 << 2
)

var discountPercents = []struct {
	flag    DiscountType
	percent decimal.Decimal
}{
	{DiscountOnSale, decimal.NewFromFloat(0.1)},
	{DiscountRegularCustomer, decimal.NewFromFloat(0.5)},
	{DiscountCertificate, decimal.NewFromFloat(0.3)},
}

// Percent returns the accumulated discount fraction implied by the set flags.
func (d DiscountType) Percent() decimal.Decimal {
	percent := decimal.Zero
	for _, dp := range discountPercents {
		if d&dp.flag != 0 {
			percent = percent.Add(dp.percent)
		}
	}
	return percent
}

// SaleProduct is one line item of a sale. Price is a snapshot of the product
// price at sale time and never tracks later catalog changes.
type SaleProduct struct {
	SaleID    string          `json:"saleID" validate:"required,uuid"`
	ProductID string          `json:"productID" validate:"required,uuid"`
	Count     int             `json:"count" validate:"gt=0"`
	Price     decimal.Decimal `json:"price" validate:"gt=0"`
}

func (sp SaleProduct) Validate() error {
	return runValidation(sp)
}

// Sale is a completed register transaction. Sum and Discount are derived from
// the line items at construction time and are never settable independently.
// IsCancel is a one-way flag; a cancelled sale is never un-cancelled.
type Sale struct {
	ID           string          `json:"id" validate:"required,uuid"`
	WorkerID     string          `json:"workerID" validate:"required,uuid"`
	BuyerID      *string         `json:"buyerID" validate:"omitempty,uuid"`
	SaleDate     time.Time       `json:"saleDate"`
	Sum          decimal.Decimal `json:"sum" validate:"gt=0"`
	DiscountType DiscountType    `json:"discountType"`
	Discount     decimal.Decimal `json:"discount"`
	IsCancel     bool            `json:"isCancel"`
	Products     []SaleProduct   `json:"products" validate:"required,min=1,dive"`
}

// NewSale assembles a sale and computes Sum and Discount from the line items.
// The computation is deterministic and order-independent: Sum is the sum of
// price*count over the items, Discount is Sum times the accumulated
// percentage of the set discount flags.
func NewSale(id, workerID string, buyerID *string, discountType DiscountType, isCancel bool, products []SaleProduct) Sale {
	sum := decimal.Zero
	for _, p := range products {
		sum = sum.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Count))))
	}
	return Sale{
		ID:           id,
		WorkerID:     workerID,
		BuyerID:      buyerID,
		SaleDate:     time.Now().UTC(),
		Sum:          sum,
		DiscountType: discountType,
		Discount:     sum.Mul(discountType.Percent()),
		IsCancel:     isCancel,
		Products:     products,
	}
}

func (s Sale) Validate() error {
	return runValidation(s)
}

// SaleFilter narrows sale listings. All filters are optional and conjunctive.
// The date range applies only when both bounds are set and is inclusive of
// From, exclusive of To.
type SaleFilter struct {
	FromDate  *time.Time
	ToDate    *time.Time
	WorkerID  *string
	BuyerID   *string
	ProductID *string
}

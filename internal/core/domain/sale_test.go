package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topaz-jewels/backoffice_app/internal/apperrors"
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
)

func saleItem(saleID string, count int, price float64) domain.SaleProduct {
	return domain.SaleProduct{
		SaleID:    saleID,
		ProductID: uuid.NewString(),
		Count:     count,
		Price:     decimal.NewFromFloat(price),
	}
}

func TestNewSale_SumIsPriceTimesCount(t *testing.T) {
	saleID := uuid.NewString()
	sale := domain.NewSale(saleID, uuid.NewString(), nil, domain.DiscountNone, false, []domain.SaleProduct{
		saleItem(saleID, 2, 100.50),
		saleItem(saleID, 1, 799.00),
	})

	assert.True(t, sale.Sum.Equal(decimal.NewFromFloat(1000.00)), "sum = %s", sale.Sum)
	assert.True(t, sale.Discount.IsZero())
	assert.False(t, sale.IsCancel)
}

func TestNewSale_SumIsOrderIndependent(t *testing.T) {
	saleID := uuid.NewString()
	items := []domain.SaleProduct{
		saleItem(saleID, 3, 19.99),
		saleItem(saleID, 1, 450.00),
		saleItem(saleID, 2, 75.25),
	}
	reversed := []domain.SaleProduct{items[2], items[1], items[0]}

	a := domain.NewSale(saleID, uuid.NewString(), nil, domain.DiscountCertificate, false, items)
	b := domain.NewSale(saleID, uuid.NewString(), nil, domain.DiscountCertificate, false, reversed)

	assert.True(t, a.Sum.Equal(b.Sum))
	assert.True(t, a.Discount.Equal(b.Discount))
}

func TestDiscountType_Percent(t *testing.T) {
	tests := []struct {
		name     string
		flags    domain.DiscountType
		expected string
	}{
		{"none", domain.DiscountNone, "0"},
		{"on sale", domain.DiscountOnSale, "0.1"},
		{"regular customer", domain.DiscountRegularCustomer, "0.5"},
		{"certificate", domain.DiscountCertificate, "0.3"},
		{"regular customer and certificate", domain.DiscountRegularCustomer | domain.DiscountCertificate, "0.8"},
		{"all flags", domain.DiscountOnSale | domain.DiscountRegularCustomer | domain.DiscountCertificate, "0.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := decimal.RequireFromString(tt.expected)
			assert.True(t, tt.flags.Percent().Equal(expected), "got %s", tt.flags.Percent())
		})
	}
}

func TestNewSale_DiscountAppliesAccumulatedPercent(t *testing.T) {
	saleID := uuid.NewString()
	sale := domain.NewSale(saleID, uuid.NewString(), nil,
		domain.DiscountRegularCustomer|domain.DiscountCertificate, false,
		[]domain.SaleProduct{saleItem(saleID, 1, 1000)})

	// 50% + 30% stack to an uncapped 80%.
	assert.True(t, sale.Discount.Equal(decimal.NewFromInt(800)), "discount = %s", sale.Discount)
}

func TestSale_Validate(t *testing.T) {
	saleID := uuid.NewString()
	valid := domain.NewSale(saleID, uuid.NewString(), nil, domain.DiscountNone, false,
		[]domain.SaleProduct{saleItem(saleID, 1, 250)})
	require.NoError(t, valid.Validate())

	t.Run("no line items", func(t *testing.T) {
		sale := domain.NewSale(uuid.NewString(), uuid.NewString(), nil, domain.DiscountNone, false, nil)
		err := sale.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("worker id not a uuid", func(t *testing.T) {
		sale := domain.NewSale(saleID, "worker-7", nil, domain.DiscountNone, false,
			[]domain.SaleProduct{saleItem(saleID, 1, 250)})
		err := sale.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "The value in the field WorkerID is not a unique identifier")
	})

	t.Run("zero count line item", func(t *testing.T) {
		sale := domain.NewSale(saleID, uuid.NewString(), nil, domain.DiscountNone, false,
			[]domain.SaleProduct{saleItem(saleID, 0, 250)})
		err := sale.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("buyer is optional", func(t *testing.T) {
		buyerID := uuid.NewString()
		sale := domain.NewSale(saleID, uuid.NewString(), &buyerID, domain.DiscountNone, false,
			[]domain.SaleProduct{saleItem(saleID, 1, 250)})
		assert.NoError(t, sale.Validate())
	})
}

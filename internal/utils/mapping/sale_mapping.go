package mapping

import (
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/models"
)

// ToModelSale converts a domain Sale to its table row. Line items are mapped
// separately because they live in their own table.
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		ID:           d.ID,
		WorkerID:     d.WorkerID,
		BuyerID:      d.BuyerID,
		SaleDate:     d.SaleDate,
		Sum:          d.Sum,
		DiscountType: uint(d.DiscountType),
		Discount:     d.Discount,
		IsCancel:     d.IsCancel,
	}
}

// ToModelSaleProduct converts a domain line item to its table row.
func ToModelSaleProduct(d domain.SaleProduct) models.SaleProduct {
	return models.SaleProduct{
		SaleID:    d.SaleID,
		ProductID: d.ProductID,
		Count:     d.Count,
		Price:     d.Price,
	}
}

// ToDomainSale rebuilds a domain Sale from its row and line-item rows. The
// stored Sum and Discount are kept as persisted rather than recomputed.
func ToDomainSale(m models.Sale, items []models.SaleProduct) domain.Sale {
	products := make([]domain.SaleProduct, len(items))
	for i, it := range items {
		products[i] = domain.SaleProduct{
			SaleID:    it.SaleID,
			ProductID: it.ProductID,
			Count:     it.Count,
			Price:     it.Price,
		}
	}
	return domain.Sale{
		ID:           m.ID,
		WorkerID:     m.WorkerID,
		BuyerID:      m.BuyerID,
		SaleDate:     m.SaleDate,
		Sum:          m.Sum,
		DiscountType: domain.DiscountType(m.DiscountType),
		Discount:     m.Discount,
		IsCancel:     m.IsCancel,
		Products:     products,
	}
}

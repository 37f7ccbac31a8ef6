package mapping

import (
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/models"
)

// ToModelProduct converts a domain Product to its table row.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ID:             d.ID,
		ManufacturerID: d.ManufacturerID,
		ProductName:    d.ProductName,
		ProductType:    string(d.ProductType),
		Price:          d.Price,
		IsDeleted:      d.IsDeleted,
	}
}

// ToDomainProduct converts a product row to the domain representation.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ID:             m.ID,
		ManufacturerID: m.ManufacturerID,
		ProductName:    m.ProductName,
		ProductType:    domain.ProductType(m.ProductType),
		Price:          m.Price,
		IsDeleted:      m.IsDeleted,
	}
}

// ToDomainProductSlice converts a slice of product rows.
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}

// ToDomainProductHistory converts a price-history row.
func ToDomainProductHistory(m models.ProductHistory) domain.ProductHistory {
	return domain.ProductHistory{
		ID:         m.ID,
		ProductID:  m.ProductID,
		OldPrice:   m.OldPrice,
		ChangeDate: m.ChangeDate,
	}
}

// ToDomainProductHistorySlice converts a slice of price-history rows.
func ToDomainProductHistorySlice(ms []models.ProductHistory) []domain.ProductHistory {
	ds := make([]domain.ProductHistory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProductHistory(m)
	}
	return ds
}

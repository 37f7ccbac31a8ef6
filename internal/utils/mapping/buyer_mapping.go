package mapping

import (
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/models"
)

// ToModelBuyer converts a domain Buyer to its table row.
func ToModelBuyer(d domain.Buyer) models.Buyer {
	return models.Buyer{
		ID:           d.ID,
		FullName:     d.FullName,
		PhoneNumber:  d.PhoneNumber,
		DiscountSize: d.DiscountSize,
	}
}

// ToDomainBuyer converts a buyer row to the domain representation.
func ToDomainBuyer(m models.Buyer) domain.Buyer {
	return domain.Buyer{
		ID:           m.ID,
		FullName:     m.FullName,
		PhoneNumber:  m.PhoneNumber,
		DiscountSize: m.DiscountSize,
	}
}

// ToDomainBuyerSlice converts a slice of buyer rows.
func ToDomainBuyerSlice(ms []models.Buyer) []domain.Buyer {
	ds := make([]domain.Buyer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBuyer(m)
	}
	return ds
}

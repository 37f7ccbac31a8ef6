package mapping

import (
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/models"
)

// ToModelManufacturer flattens the rename ring into the two history columns.
func ToModelManufacturer(d domain.Manufacturer) models.Manufacturer {
	return models.Manufacturer{
		ID:               d.ID,
		ManufacturerName: d.ManufacturerName,
		PrevName:         d.PrevNames[0],
		PrevPrevName:     d.PrevNames[1],
	}
}

// ToDomainManufacturer rebuilds the rename ring from the history columns.
func ToDomainManufacturer(m models.Manufacturer) domain.Manufacturer {
	return domain.Manufacturer{
		ID:               m.ID,
		ManufacturerName: m.ManufacturerName,
		PrevNames:        [2]*string{m.PrevName, m.PrevPrevName},
	}
}

// ToDomainManufacturerSlice converts a slice of manufacturer rows.
func ToDomainManufacturerSlice(ms []models.Manufacturer) []domain.Manufacturer {
	ds := make([]domain.Manufacturer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainManufacturer(m)
	}
	return ds
}

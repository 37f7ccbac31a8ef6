package services

import (
	"context"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/dto"
)

// ManufacturerSvcFacade defines the business operations for manufacturers.
type ManufacturerSvcFacade interface {
	// GetAllManufacturers lists all manufacturers.
	GetAllManufacturers(ctx context.Context) ([]domain.Manufacturer, error)

	// GetManufacturerByData resolves a manufacturer by id when data is a
	// uuid, otherwise by current name and then by previous names.
	GetManufacturerByData(ctx context.Context, data string) (*domain.Manufacturer, error)

	// CreateManufacturer registers a new manufacturer.
	CreateManufacturer(ctx context.Context, req dto.CreateManufacturerRequest) (*domain.Manufacturer, error)

	// UpdateManufacturer renames a manufacturer, shifting the rename ring.
	UpdateManufacturer(ctx context.Context, id string, req dto.UpdateManufacturerRequest) (*domain.Manufacturer, error)

	// DeleteManufacturer removes a manufacturer.
	DeleteManufacturer(ctx context.Context, id string) error
}

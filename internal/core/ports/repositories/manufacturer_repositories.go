package repositories

import (
	"context"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
)

// ManufacturerReader defines read operations for manufacturers.
type ManufacturerReader interface {
	// ListManufacturers retrieves all manufacturers.
	ListManufacturers(ctx context.Context) ([]domain.Manufacturer, error)

	// FindManufacturerByID retrieves a manufacturer, or nil when absent.
	FindManufacturerByID(ctx context.Context, id string) (*domain.Manufacturer, error)

	// FindManufacturerByName retrieves a manufacturer by current name, or nil.
	FindManufacturerByName(ctx context.Context, name string) (*domain.Manufacturer, error)

	// FindManufacturerByOldName retrieves a manufacturer whose rename ring
	// contains the given name, or nil.
	FindManufacturerByOldName(ctx context.Context, name string) (*domain.Manufacturer, error)
}

// ManufacturerWriter defines write operations for manufacturers.
type ManufacturerWriter interface {
	// SaveManufacturer persists a new manufacturer.
	SaveManufacturer(ctx context.Context, manufacturer domain.Manufacturer) error

	// UpdateManufacturer persists the manufacturer including its rename ring;
	// the ring shift itself is applied by the caller.
	UpdateManufacturer(ctx context.Context, manufacturer domain.Manufacturer) error

	// DeleteManufacturer removes a manufacturer.
	DeleteManufacturer(ctx context.Context, id string) error
}

// ManufacturerRepositoryFacade combines all manufacturer repository interfaces.
type ManufacturerRepositoryFacade interface {
	ManufacturerReader
	ManufacturerWriter
}

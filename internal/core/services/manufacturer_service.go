package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/topaz-jewels/backoffice_app/internal/apperrors"
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	portsrepo "github.com/topaz-jewels/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/topaz-jewels/backoffice_app/internal/core/ports/services"
	"github.com/topaz-jewels/backoffice_app/internal/dto"
	"github.com/topaz-jewels/backoffice_app/internal/platform/logging"
)

// ManufacturerService implements the business operations for manufacturers,
// including the rename ring that keeps the two most recent previous names
// resolvable.
type ManufacturerService struct {
	manufacturerRepo portsrepo.ManufacturerRepositoryFacade
}

func NewManufacturerService(manufacturerRepo portsrepo.ManufacturerRepositoryFacade) *ManufacturerService {
	return &ManufacturerService{manufacturerRepo: manufacturerRepo}
}

var _ portssvc.ManufacturerSvcFacade = (*ManufacturerService)(nil)

func (s *ManufacturerService) GetAllManufacturers(ctx context.Context) ([]domain.Manufacturer, error) {
	logger := logging.FromContext(ctx)
	manufacturers, err := s.manufacturerRepo.ListManufacturers(ctx)
	if err != nil {
		logger.Error("Failed to list manufacturers from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if manufacturers == nil {
		return nil, apperrors.NewUnavailableError("manufacturer list")
	}
	return manufacturers, nil
}

func (s *ManufacturerService) GetManufacturerByData(ctx context.Context, data string) (*domain.Manufacturer, error) {
	logger := logging.FromContext(ctx)
	if data == "" {
		return nil, apperrors.NewValidationError("Field data is empty")
	}

	var (
		manufacturer *domain.Manufacturer
		err          error
	)
	if isUUID(data) {
		manufacturer, err = s.manufacturerRepo.FindManufacturerByID(ctx, data)
	} else {
		manufacturer, err = s.manufacturerRepo.FindManufacturerByName(ctx, data)
		if err == nil && manufacturer == nil {
			// The caller may be holding a name from before a rename.
			manufacturer, err = s.manufacturerRepo.FindManufacturerByOldName(ctx, data)
		}
	}
	if err != nil {
		logger.Error("Failed to find manufacturer in repository", slog.String("error", err.Error()), slog.String("data", data))
		return nil, err
	}
	if manufacturer == nil {
		return nil, apperrors.NewNotFoundError(data)
	}
	return manufacturer, nil
}

func (s *ManufacturerService) CreateManufacturer(ctx context.Context, req dto.CreateManufacturerRequest) (*domain.Manufacturer, error) {
	logger := logging.FromContext(ctx)

	manufacturer := domain.Manufacturer{
		ID:               uuid.NewString(),
		ManufacturerName: req.ManufacturerName,
	}
	if err := manufacturer.Validate(); err != nil {
		return nil, err
	}

	if err := s.manufacturerRepo.SaveManufacturer(ctx, manufacturer); err != nil {
		logger.Error("Failed to save manufacturer in repository", slog.String("error", err.Error()), slog.String("manufacturer_id", manufacturer.ID))
		return nil, err
	}

	logger.Info("Manufacturer created", slog.String("manufacturer_id", manufacturer.ID), slog.String("manufacturer_name", manufacturer.ManufacturerName))
	return &manufacturer, nil
}

func (s *ManufacturerService) UpdateManufacturer(ctx context.Context, id string, req dto.UpdateManufacturerRequest) (*domain.Manufacturer, error) {
	logger := logging.FromContext(ctx)
	if err := requireUUID("ManufacturerID", id); err != nil {
		return nil, err
	}
	if req.ManufacturerName == "" {
		return nil, apperrors.NewValidationError("Field ManufacturerName is empty")
	}

	manufacturer, err := s.manufacturerRepo.FindManufacturerByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find manufacturer in repository", slog.String("error", err.Error()), slog.String("manufacturer_id", id))
		return nil, err
	}
	if manufacturer == nil {
		return nil, apperrors.NewNotFoundError(id)
	}

	manufacturer.RecordRename(req.ManufacturerName)
	if err := manufacturer.Validate(); err != nil {
		return nil, err
	}

	if err := s.manufacturerRepo.UpdateManufacturer(ctx, *manufacturer); err != nil {
		logger.Error("Failed to update manufacturer in repository", slog.String("error", err.Error()), slog.String("manufacturer_id", id))
		return nil, err
	}

	logger.Info("Manufacturer renamed", slog.String("manufacturer_id", id), slog.String("manufacturer_name", manufacturer.ManufacturerName))
	return manufacturer, nil
}

func (s *ManufacturerService) DeleteManufacturer(ctx context.Context, id string) error {
	logger := logging.FromContext(ctx)
	if err := requireUUID("ManufacturerID", id); err != nil {
		return err
	}
	if err := s.manufacturerRepo.DeleteManufacturer(ctx, id); err != nil {
		logger.Error("Failed to delete manufacturer in repository", slog.String("error", err.Error()), slog.String("manufacturer_id", id))
		return err
	}
	logger.Info("Manufacturer deleted", slog.String("manufacturer_id", id))
	return nil
}

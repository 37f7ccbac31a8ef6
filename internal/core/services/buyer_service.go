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

// BuyerService implements the business operations for buyers.
type BuyerService struct {
	buyerRepo portsrepo.BuyerRepositoryFacade
}

func NewBuyerService(buyerRepo portsrepo.BuyerRepositoryFacade) *BuyerService {
	return &BuyerService{buyerRepo: buyerRepo}
}

var _ portssvc.BuyerSvcFacade = (*BuyerService)(nil)

func (s *BuyerService) GetAllBuyers(ctx context.Context) ([]domain.Buyer, error) {
	logger := logging.FromContext(ctx)
	buyers, err := s.buyerRepo.ListBuyers(ctx)
	if err != nil {
		logger.Error("Failed to list buyers from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if buyers == nil {
		return nil, apperrors.NewUnavailableError("buyer list")
	}
	return buyers, nil
}

func (s *BuyerService) GetBuyerByData(ctx context.Context, data string) (*domain.Buyer, error) {
	logger := logging.FromContext(ctx)
	if data == "" {
		return nil, apperrors.NewValidationError("Field data is empty")
	}

	var (
		buyer *domain.Buyer
		err   error
	)
	if isUUID(data) {
		buyer, err = s.buyerRepo.FindBuyerByID(ctx, data)
	} else {
		buyer, err = s.buyerRepo.FindBuyerByPhone(ctx, data)
	}
	if err != nil {
		logger.Error("Failed to find buyer in repository", slog.String("error", err.Error()), slog.String("data", data))
		return nil, err
	}
	if buyer == nil {
		return nil, apperrors.NewNotFoundError(data)
	}
	return buyer, nil
}

func (s *BuyerService) CreateBuyer(ctx context.Context, req dto.CreateBuyerRequest) (*domain.Buyer, error) {
	logger := logging.FromContext(ctx)

	buyer := domain.Buyer{
		ID:           uuid.NewString(),
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		DiscountSize: req.DiscountSize,
	}
	if err := buyer.Validate(); err != nil {
		return nil, err
	}

	if err := s.buyerRepo.SaveBuyer(ctx, buyer); err != nil {
		logger.Error("Failed to save buyer in repository", slog.String("error", err.Error()), slog.String("buyer_id", buyer.ID))
		return nil, err
	}

	logger.Info("Buyer created", slog.String("buyer_id", buyer.ID))
	return &buyer, nil
}

func (s *BuyerService) UpdateBuyer(ctx context.Context, buyerID string, req dto.UpdateBuyerRequest) (*domain.Buyer, error) {
	logger := logging.FromContext(ctx)
	if err := requireUUID("BuyerID", buyerID); err != nil {
		return nil, err
	}

	buyer := domain.Buyer{
		ID:           buyerID,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		DiscountSize: req.DiscountSize,
	}
	if err := buyer.Validate(); err != nil {
		return nil, err
	}

	if err := s.buyerRepo.UpdateBuyer(ctx, buyer); err != nil {
		logger.Error("Failed to update buyer in repository", slog.String("error", err.Error()), slog.String("buyer_id", buyerID))
		return nil, err
	}

	logger.Info("Buyer updated", slog.String("buyer_id", buyerID))
	return &buyer, nil
}

func (s *BuyerService) DeleteBuyer(ctx context.Context, buyerID string) error {
	logger := logging.FromContext(ctx)
	if err := requireUUID("BuyerID", buyerID); err != nil {
		return err
	}
	if err := s.buyerRepo.DeleteBuyer(ctx, buyerID); err != nil {
		logger.Error("Failed to delete buyer in repository", slog.String("error", err.Error()), slog.String("buyer_id", buyerID))
		return err
	}
	logger.Info("Buyer deleted", slog.String("buyer_id", buyerID))
	return nil
}

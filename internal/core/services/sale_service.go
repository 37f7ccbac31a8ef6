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

// SaleService implements the business operations over the sales ledger. Sum
// and discount are always derived from the line items at creation; a sale is
// never created cancelled, and cancellation is one-way.
type SaleService struct {
	saleRepo   portsrepo.SaleRepositoryFacade
	workerRepo portsrepo.WorkerReader
}

func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, workerRepo portsrepo.WorkerReader) *SaleService {
	return &SaleService{saleRepo: saleRepo, workerRepo: workerRepo}
}

var _ portssvc.SaleSvcFacade = (*SaleService)(nil)

func (s *SaleService) GetAllSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	logger := logging.FromContext(ctx)
	if filter.FromDate != nil && filter.ToDate != nil && !filter.FromDate.Before(*filter.ToDate) {
		return nil, apperrors.NewValidationError("The end date must be later than the start date")
	}
	for field, id := range map[string]*string{
		"WorkerID":  filter.WorkerID,
		"BuyerID":   filter.BuyerID,
		"ProductID": filter.ProductID,
	} {
		if id != nil {
			if err := requireUUID(field, *id); err != nil {
				return nil, err
			}
		}
	}

	sales, err := s.saleRepo.ListSales(ctx, filter)
	if err != nil {
		logger.Error("Failed to list sales from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if sales == nil {
		return nil, apperrors.NewUnavailableError("sale list")
	}
	return sales, nil
}

func (s *SaleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	logger := logging.FromContext(ctx)
	if err := requireUUID("SaleID", saleID); err != nil {
		return nil, err
	}
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		logger.Error("Failed to find sale in repository", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		return nil, err
	}
	if sale == nil {
		return nil, apperrors.NewNotFoundError(saleID)
	}
	return sale, nil
}

func (s *SaleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
	logger := logging.FromContext(ctx)

	saleID := uuid.NewString()
	products := make([]domain.SaleProduct, len(req.Products))
	for i, item := range req.Products {
		products[i] = domain.SaleProduct{
			SaleID:    saleID,
			ProductID: item.ProductID,
			Count:     item.Count,
			Price:     item.Price,
		}
	}

	sale := domain.NewSale(saleID, req.WorkerID, req.BuyerID, req.DiscountType, false, products)
	if err := sale.Validate(); err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.FindWorkerByID(ctx, sale.WorkerID)
	if err != nil {
		logger.Error("Failed to find worker in repository", slog.String("error", err.Error()), slog.String("worker_id", sale.WorkerID))
		return nil, err
	}
	if worker == nil {
		return nil, apperrors.NewNotFoundError(sale.WorkerID)
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		logger.Error("Failed to save sale in repository", slog.String("error", err.Error()), slog.String("sale_id", sale.ID))
		return nil, err
	}

	logger.Info("Sale created", slog.String("sale_id", sale.ID), slog.String("worker_id", sale.WorkerID), slog.String("sum", sale.Sum.String()))
	return &sale, nil
}

func (s *SaleService) CancelSale(ctx context.Context, saleID string) error {
	logger := logging.FromContext(ctx)
	if err := requireUUID("SaleID", saleID); err != nil {
		return err
	}
	if err := s.saleRepo.CancelSale(ctx, saleID); err != nil {
		logger.Error("Failed to cancel sale in repository", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		return err
	}
	logger.Info("Sale cancelled", slog.String("sale_id", saleID))
	return nil
}

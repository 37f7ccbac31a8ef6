package services

import (
	"context"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/dto"
)

// SaleSvcFacade defines the business operations for the sales ledger.
type SaleSvcFacade interface {
	// GetAllSales lists sales narrowed by the optional filter fields.
	GetAllSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error)

	// GetSaleByID returns the sale with its line items; a missing sale is a
	// not-found error.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// CreateSale persists a sale with its line items; sum and discount are
	// computed, never accepted from the request.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)

	// CancelSale irreversibly cancels a sale.
	CancelSale(ctx context.Context, saleID string) error
}

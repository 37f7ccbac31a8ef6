package repositories

import (
	"context"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
)

// SaleReader defines read operations over the sales ledger. Cancelled sales
// are not filtered out by any of these queries.
type SaleReader interface {
	// ListSales retrieves sales with their line items, narrowed by the
	// optional, conjunctive filter fields.
	ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error)

	// FindSaleByID retrieves a sale with its line items, or nil when absent.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)
}

// SaleWriter defines write operations over the sales ledger.
type SaleWriter interface {
	// SaveSale persists the sale and its line items in one transaction. The
	// cancel flag is forced false regardless of input.
	SaveSale(ctx context.Context, sale domain.Sale) error

	// CancelSale marks a sale cancelled. Cancelling an absent sale fails with
	// not-found; cancelling twice fails with already-deleted. There is no
	// un-cancel operation.
	CancelSale(ctx context.Context, saleID string) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

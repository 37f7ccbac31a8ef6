package repositories

import (
	"context"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
)

// ProductReader defines read operations for catalog products.
type ProductReader interface {
	// ListProducts retrieves products, excluding soft-deleted ones when
	// onlyActive is set, optionally narrowed to one manufacturer.
	ListProducts(ctx context.Context, onlyActive bool, manufacturerID *string) ([]domain.Product, error)

	// FindProductByID retrieves a non-deleted product, or nil when absent.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductByName retrieves a non-deleted product by name, or nil.
	FindProductByName(ctx context.Context, name string) (*domain.Product, error)

	// ListProductHistory retrieves all price-change records for a product,
	// most recent change first.
	ListProductHistory(ctx context.Context, productID string) ([]domain.ProductHistory, error)
}

// ProductWriter defines write operations for catalog products.
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct applies the update and, when the price changed, records a
	// ProductHistory row with the old price in the same transaction.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct soft-deletes a product. There is no restore operation.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}

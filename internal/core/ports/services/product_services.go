package services

import (
	"context"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/dto"
)

// ProductSvcFacade defines the business operations for catalog products.
type ProductSvcFacade interface {
	// GetAllProducts lists products, optionally including soft-deleted ones
	// and optionally narrowed to a manufacturer.
	GetAllProducts(ctx context.Context, onlyActive bool, manufacturerID *string) ([]domain.Product, error)

	// GetProductHistory returns the product's price-change records, most
	// recent first.
	GetProductHistory(ctx context.Context, productID string) ([]domain.ProductHistory, error)

	// GetProductByData resolves a product by id when data is a uuid,
	// otherwise by name.
	GetProductByData(ctx context.Context, data string) (*domain.Product, error)

	// CreateProduct registers a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// UpdateProduct replaces a product's attributes, recording price history
	// when the price changes.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)

	// DeleteProduct soft-deletes a product. Products cannot be restored.
	DeleteProduct(ctx context.Context, productID string) error
}

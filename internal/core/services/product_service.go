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

// ProductService implements the business operations for catalog products.
// Price-history recording is the repository's concern; the service only
// hands it the replacement attributes.
type ProductService struct {
	productRepo      portsrepo.ProductRepositoryFacade
	manufacturerRepo portsrepo.ManufacturerReader
}

func NewProductService(productRepo portsrepo.ProductRepositoryFacade, manufacturerRepo portsrepo.ManufacturerReader) *ProductService {
	return &ProductService{productRepo: productRepo, manufacturerRepo: manufacturerRepo}
}

var _ portssvc.ProductSvcFacade = (*ProductService)(nil)

func (s *ProductService) GetAllProducts(ctx context.Context, onlyActive bool, manufacturerID *string) ([]domain.Product, error) {
	logger := logging.FromContext(ctx)
	if manufacturerID != nil {
		if err := requireUUID("ManufacturerID", *manufacturerID); err != nil {
			return nil, err
		}
	}
	products, err := s.productRepo.ListProducts(ctx, onlyActive, manufacturerID)
	if err != nil {
		logger.Error("Failed to list products from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if products == nil {
		return nil, apperrors.NewUnavailableError("product list")
	}
	return products, nil
}

func (s *ProductService) GetProductHistory(ctx context.Context, productID string) ([]domain.ProductHistory, error) {
	logger := logging.FromContext(ctx)
	if err := requireUUID("ProductID", productID); err != nil {
		return nil, err
	}
	history, err := s.productRepo.ListProductHistory(ctx, productID)
	if err != nil {
		logger.Error("Failed to list product history from repository", slog.String("error", err.Error()), slog.String("product_id", productID))
		return nil, err
	}
	if history == nil {
		return nil, apperrors.NewUnavailableError("product history")
	}
	return history, nil
}

func (s *ProductService) GetProductByData(ctx context.Context, data string) (*domain.Product, error) {
	logger := logging.FromContext(ctx)
	if data == "" {
		return nil, apperrors.NewValidationError("Field data is empty")
	}

	var (
		product *domain.Product
		err     error
	)
	if isUUID(data) {
		product, err = s.productRepo.FindProductByID(ctx, data)
	} else {
		product, err = s.productRepo.FindProductByName(ctx, data)
	}
	if err != nil {
		logger.Error("Failed to find product in repository", slog.String("error", err.Error()), slog.String("data", data))
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NewNotFoundError(data)
	}
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	logger := logging.FromContext(ctx)

	product := domain.Product{
		ID:             uuid.NewString(),
		ManufacturerID: req.ManufacturerID,
		ProductName:    req.ProductName,
		ProductType:    req.ProductType,
		Price:          req.Price,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	manufacturer, err := s.manufacturerRepo.FindManufacturerByID(ctx, product.ManufacturerID)
	if err != nil {
		logger.Error("Failed to find manufacturer in repository", slog.String("error", err.Error()), slog.String("manufacturer_id", product.ManufacturerID))
		return nil, err
	}
	if manufacturer == nil {
		return nil, apperrors.NewNotFoundError(product.ManufacturerID)
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("Failed to save product in repository", slog.String("error", err.Error()), slog.String("product_id", product.ID))
		return nil, err
	}

	logger.Info("Product created", slog.String("product_id", product.ID), slog.String("product_name", product.ProductName))
	return &product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	logger := logging.FromContext(ctx)
	if err := requireUUID("ProductID", productID); err != nil {
		return nil, err
	}

	product := domain.Product{
		ID:             productID,
		ManufacturerID: req.ManufacturerID,
		ProductName:    req.ProductName,
		ProductType:    req.ProductType,
		Price:          req.Price,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		logger.Error("Failed to update product in repository", slog.String("error", err.Error()), slog.String("product_id", productID))
		return nil, err
	}

	logger.Info("Product updated", slog.String("product_id", productID))
	return &product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	logger := logging.FromContext(ctx)
	if err := requireUUID("ProductID", productID); err != nil {
		return err
	}
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		logger.Error("Failed to delete product in repository", slog.String("error", err.Error()), slog.String("product_id", productID))
		return err
	}
	logger.Info("Product deleted", slog.String("product_id", productID))
	return nil
}

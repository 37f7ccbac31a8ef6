package services

import (
	"context"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/dto"
)

// BuyerSvcFacade defines the business operations for buyers.
type BuyerSvcFacade interface {
	// GetAllBuyers lists all buyers.
	GetAllBuyers(ctx context.Context) ([]domain.Buyer, error)

	// GetBuyerByData resolves a buyer by id when data is a uuid, otherwise by
	// phone number.
	GetBuyerByData(ctx context.Context, data string) (*domain.Buyer, error)

	// CreateBuyer registers a new buyer.
	CreateBuyer(ctx context.Context, req dto.CreateBuyerRequest) (*domain.Buyer, error)

	// UpdateBuyer replaces a buyer's attributes.
	UpdateBuyer(ctx context.Context, buyerID string, req dto.UpdateBuyerRequest) (*domain.Buyer, error)

	// DeleteBuyer removes a buyer.
	DeleteBuyer(ctx context.Context, buyerID string) error
}

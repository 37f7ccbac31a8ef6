package repositories

import (
	"context"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
)

// BuyerReader defines read operations for buyers.
type BuyerReader interface {
	// ListBuyers retrieves all buyers.
	ListBuyers(ctx context.Context) ([]domain.Buyer, error)

	// FindBuyerByID retrieves a buyer, or nil when absent.
	FindBuyerByID(ctx context.Context, buyerID string) (*domain.Buyer, error)

	// FindBuyerByPhone retrieves a buyer by phone number, or nil.
	FindBuyerByPhone(ctx context.Context, phoneNumber string) (*domain.Buyer, error)
}

// BuyerWriter defines write operations for buyers.
type BuyerWriter interface {
	// SaveBuyer persists a new buyer.
	SaveBuyer(ctx context.Context, buyer domain.Buyer) error

	// UpdateBuyer updates an existing buyer's details.
	UpdateBuyer(ctx context.Context, buyer domain.Buyer) error

	// DeleteBuyer removes a buyer.
	DeleteBuyer(ctx context.Context, buyerID string) error
}

// BuyerRepositoryFacade combines all buyer-related repository interfaces.
type BuyerRepositoryFacade interface {
	BuyerReader
	BuyerWriter
}

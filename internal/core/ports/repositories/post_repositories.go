package repositories

import (
	"context"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
)

// PostReader defines read operations over the versioned posts store. All
// lookups except ListWithHistory consider only rows flagged current.
type PostReader interface {
	// ListPosts retrieves the current version of every post.
	ListPosts(ctx context.Context) ([]domain.Post, error)

	// ListPostWithHistory retrieves every stored version for a business key.
	ListPostWithHistory(ctx context.Context, postID string) ([]domain.PostVersion, error)

	// FindCurrentPostByID retrieves the current version for a business key,
	// or nil when no current row exists.
	FindCurrentPostByID(ctx context.Context, postID string) (*domain.Post, error)

	// FindCurrentPostByName retrieves the current version carrying the given
	// name, or nil when none does.
	FindCurrentPostByName(ctx context.Context, name string) (*domain.Post, error)
}

// PostWriter defines write operations over the versioned posts store.
type PostWriter interface {
	// SavePost inserts a brand-new current row for a new business key.
	SavePost(ctx context.Context, post domain.Post) error

	// UpdatePost performs the temporal swap: atomically flips the current row
	// for the post's business key to non-current and inserts a new current
	// row with the updated attributes. Either both writes persist or neither.
	UpdatePost(ctx context.Context, post domain.Post) error

	// DeletePost soft-deletes a business key by clearing the current flag on
	// its active row. Reversible via RestorePost.
	DeletePost(ctx context.Context, postID string) error

	// RestorePost re-flags the most recent row for a business key as current,
	// regardless of its prior state. Uniqueness over current rows is enforced
	// by storage constraints only.
	RestorePost(ctx context.Context, postID string) error
}

// PostRepositoryFacade combines all post-related repository interfaces.
type PostRepositoryFacade interface {
	PostReader
	PostWriter
}

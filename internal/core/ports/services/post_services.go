package services

import (
	"context"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/dto"
)

// PostSvcFacade defines the business operations for versioned job posts.
type PostSvcFacade interface {
	// GetAllPosts returns the current version of every post.
	GetAllPosts(ctx context.Context) ([]domain.Post, error)

	// GetPostHistory returns every stored version for a business key.
	GetPostHistory(ctx context.Context, postID string) ([]domain.PostVersion, error)

	// GetPostByData resolves a post by business key when data is a uuid,
	// otherwise by name.
	GetPostByData(ctx context.Context, data string) (*domain.Post, error)

	// CreatePost registers a new post under a fresh business key.
	CreatePost(ctx context.Context, req dto.CreatePostRequest) (*domain.Post, error)

	// UpdatePost replaces a post's attributes via the temporal swap.
	UpdatePost(ctx context.Context, postID string, req dto.UpdatePostRequest) (*domain.Post, error)

	// DeletePost soft-deletes a post business key.
	DeletePost(ctx context.Context, postID string) error

	// RestorePost reactivates a soft-deleted post business key.
	RestorePost(ctx context.Context, postID string) error
}

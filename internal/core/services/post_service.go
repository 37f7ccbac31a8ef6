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

// PostService implements the business operations over the versioned posts
// store. Version bookkeeping lives entirely in the repository; the service
// only decides which attributes each new version carries.
type PostService struct {
	postRepo portsrepo.PostRepositoryFacade
}

func NewPostService(postRepo portsrepo.PostRepositoryFacade) *PostService {
	return &PostService{postRepo: postRepo}
}

var _ portssvc.PostSvcFacade = (*PostService)(nil)

func (s *PostService) GetAllPosts(ctx context.Context) ([]domain.Post, error) {
	logger := logging.FromContext(ctx)
	posts, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		logger.Error("Failed to list posts from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if posts == nil {
		return nil, apperrors.NewUnavailableError("post list")
	}
	return posts, nil
}

func (s *PostService) GetPostHistory(ctx context.Context, postID string) ([]domain.PostVersion, error) {
	logger := logging.FromContext(ctx)
	if err := requireUUID("PostID", postID); err != nil {
		return nil, err
	}
	versions, err := s.postRepo.ListPostWithHistory(ctx, postID)
	if err != nil {
		logger.Error("Failed to list post history from repository", slog.String("error", err.Error()), slog.String("post_id", postID))
		return nil, err
	}
	if versions == nil {
		return nil, apperrors.NewUnavailableError("post history")
	}
	return versions, nil
}

func (s *PostService) GetPostByData(ctx context.Context, data string) (*domain.Post, error) {
	logger := logging.FromContext(ctx)
	if data == "" {
		return nil, apperrors.NewValidationError("Field data is empty")
	}

	var (
		post *domain.Post
		err  error
	)
	if isUUID(data) {
		post, err = s.postRepo.FindCurrentPostByID(ctx, data)
	} else {
		post, err = s.postRepo.FindCurrentPostByName(ctx, data)
	}
	if err != nil {
		logger.Error("Failed to find post in repository", slog.String("error", err.Error()), slog.String("data", data))
		return nil, err
	}
	if post == nil {
		return nil, apperrors.NewNotFoundError(data)
	}
	return post, nil
}

func (s *PostService) CreatePost(ctx context.Context, req dto.CreatePostRequest) (*domain.Post, error) {
	logger := logging.FromContext(ctx)

	post := domain.Post{
		PostID:   uuid.NewString(),
		PostName: req.PostName,
		PostType: req.PostType,
		Salary:   req.Salary,
	}
	if err := post.Validate(); err != nil {
		return nil, err
	}

	if err := s.postRepo.SavePost(ctx, post); err != nil {
		logger.Error("Failed to save post in repository", slog.String("error", err.Error()), slog.String("post_id", post.PostID))
		return nil, err
	}

	logger.Info("Post created", slog.String("post_id", post.PostID), slog.String("post_name", post.PostName))
	return &post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, postID string, req dto.UpdatePostRequest) (*domain.Post, error) {
	logger := logging.FromContext(ctx)
	if err := requireUUID("PostID", postID); err != nil {
		return nil, err
	}

	post := domain.Post{
		PostID:   postID,
		PostName: req.PostName,
		PostType: req.PostType,
		Salary:   req.Salary,
	}
	if err := post.Validate(); err != nil {
		return nil, err
	}

	if err := s.postRepo.UpdatePost(ctx, post); err != nil {
		logger.Error("Failed to update post in repository", slog.String("error", err.Error()), slog.String("post_id", postID))
		return nil, err
	}

	logger.Info("Post updated", slog.String("post_id", postID))
	return &post, nil
}

func (s *PostService) DeletePost(ctx context.Context, postID string) error {
	logger := logging.FromContext(ctx)
	if err := requireUUID("PostID", postID); err != nil {
		return err
	}
	if err := s.postRepo.DeletePost(ctx, postID); err != nil {
		logger.Error("Failed to delete post in repository", slog.String("error", err.Error()), slog.String("post_id", postID))
		return err
	}
	logger.Info("Post deleted", slog.String("post_id", postID))
	return nil
}

func (s *PostService) RestorePost(ctx context.Context, postID string) error {
	logger := logging.FromContext(ctx)
	if err := requireUUID("PostID", postID); err != nil {
		return err
	}
	if err := s.postRepo.RestorePost(ctx, postID); err != nil {
		logger.Error("Failed to restore post in repository", slog.String("error", err.Error()), slog.String("post_id", postID))
		return err
	}
	logger.Info("Post restored", slog.String("post_id", postID))
	return nil
}

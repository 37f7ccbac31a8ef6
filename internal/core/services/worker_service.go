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

// WorkerService implements the business operations for workers. Every worker
// must reference a post that currently exists in the versioned store.
type WorkerService struct {
	workerRepo portsrepo.WorkerRepositoryFacade
	postRepo   portsrepo.PostReader
}

func NewWorkerService(workerRepo portsrepo.WorkerRepositoryFacade, postRepo portsrepo.PostReader) *WorkerService {
	return &WorkerService{workerRepo: workerRepo, postRepo: postRepo}
}

var _ portssvc.WorkerSvcFacade = (*WorkerService)(nil)

func (s *WorkerService) GetAllWorkers(ctx context.Context, onlyActive bool, filter domain.WorkerFilter) ([]domain.Worker, error) {
	logger := logging.FromContext(ctx)
	if filter.PostID != nil {
		if err := requireUUID("PostID", *filter.PostID); err != nil {
			return nil, err
		}
	}
	workers, err := s.workerRepo.ListWorkers(ctx, onlyActive, filter)
	if err != nil {
		logger.Error("Failed to list workers from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if workers == nil {
		return nil, apperrors.NewUnavailableError("worker list")
	}
	return workers, nil
}

func (s *WorkerService) GetWorkerByData(ctx context.Context, data string) (*domain.Worker, error) {
	logger := logging.FromContext(ctx)
	if data == "" {
		return nil, apperrors.NewValidationError("Field data is empty")
	}

	var (
		worker *domain.Worker
		err    error
	)
	if isUUID(data) {
		worker, err = s.workerRepo.FindWorkerByID(ctx, data)
	} else {
		worker, err = s.workerRepo.FindWorkerByFullName(ctx, data)
	}
	if err != nil {
		logger.Error("Failed to find worker in repository", slog.String("error", err.Error()), slog.String("data", data))
		return nil, err
	}
	if worker == nil {
		return nil, apperrors.NewNotFoundError(data)
	}
	return worker, nil
}

func (s *WorkerService) CreateWorker(ctx context.Context, req dto.CreateWorkerRequest) (*domain.Worker, error) {
	logger := logging.FromContext(ctx)

	worker := domain.Worker{
		ID:             uuid.NewString(),
		FullName:       req.FullName,
		PostID:         req.PostID,
		BirthDate:      req.BirthDate,
		EmploymentDate: req.EmploymentDate,
	}
	if err := worker.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkPostExists(ctx, worker.PostID); err != nil {
		return nil, err
	}

	if err := s.workerRepo.SaveWorker(ctx, worker); err != nil {
		logger.Error("Failed to save worker in repository", slog.String("error", err.Error()), slog.String("worker_id", worker.ID))
		return nil, err
	}

	logger.Info("Worker created", slog.String("worker_id", worker.ID), slog.String("full_name", worker.FullName))
	return &worker, nil
}

func (s *WorkerService) UpdateWorker(ctx context.Context, workerID string, req dto.UpdateWorkerRequest) (*domain.Worker, error) {
	logger := logging.FromContext(ctx)
	if err := requireUUID("WorkerID", workerID); err != nil {
		return nil, err
	}

	worker := domain.Worker{
		ID:             workerID,
		FullName:       req.FullName,
		PostID:         req.PostID,
		BirthDate:      req.BirthDate,
		EmploymentDate: req.EmploymentDate,
	}
	if err := worker.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkPostExists(ctx, worker.PostID); err != nil {
		return nil, err
	}

	if err := s.workerRepo.UpdateWorker(ctx, worker); err != nil {
		logger.Error("Failed to update worker in repository", slog.String("error", err.Error()), slog.String("worker_id", workerID))
		return nil, err
	}

	logger.Info("Worker updated", slog.String("worker_id", workerID))
	return &worker, nil
}

func (s *WorkerService) DeleteWorker(ctx context.Context, workerID string) error {
	logger := logging.FromContext(ctx)
	if err := requireUUID("WorkerID", workerID); err != nil {
		return err
	}
	if err := s.workerRepo.DeleteWorker(ctx, workerID); err != nil {
		logger.Error("Failed to delete worker in repository", slog.String("error", err.Error()), slog.String("worker_id", workerID))
		return err
	}
	logger.Info("Worker deleted", slog.String("worker_id", workerID))
	return nil
}

func (s *WorkerService) checkPostExists(ctx context.Context, postID string) error {
	post, err := s.postRepo.FindCurrentPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return apperrors.NewNotFoundError(postID)
	}
	return nil
}

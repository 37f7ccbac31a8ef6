package services

import (
	"context"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/dto"
)

// WorkerSvcFacade defines the business operations for workers.
type WorkerSvcFacade interface {
	// GetAllWorkers lists workers, optionally including soft-deleted ones,
	// narrowed by the optional filter.
	GetAllWorkers(ctx context.Context, onlyActive bool, filter domain.WorkerFilter) ([]domain.Worker, error)

	// GetWorkerByData resolves a worker by id when data is a uuid, otherwise
	// by full name.
	GetWorkerByData(ctx context.Context, data string) (*domain.Worker, error)

	// CreateWorker registers a new worker.
	CreateWorker(ctx context.Context, req dto.CreateWorkerRequest) (*domain.Worker, error)

	// UpdateWorker replaces a worker's attributes.
	UpdateWorker(ctx context.Context, workerID string, req dto.UpdateWorkerRequest) (*domain.Worker, error)

	// DeleteWorker soft-deletes a worker.
	DeleteWorker(ctx context.Context, workerID string) error
}

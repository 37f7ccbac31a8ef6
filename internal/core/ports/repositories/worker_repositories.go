package repositories

import (
	"context"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
)

// WorkerReader defines read operations for workers.
type WorkerReader interface {
	// ListWorkers retrieves workers, excluding soft-deleted ones when
	// onlyActive is set, narrowed by the optional filter fields.
	ListWorkers(ctx context.Context, onlyActive bool, filter domain.WorkerFilter) ([]domain.Worker, error)

	// FindWorkerByID retrieves a worker, or nil when absent.
	FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)

	// FindWorkerByFullName retrieves a worker by full name, or nil.
	FindWorkerByFullName(ctx context.Context, fullName string) (*domain.Worker, error)
}

// WorkerWriter defines write operations for workers.
type WorkerWriter interface {
	// SaveWorker persists a new worker.
	SaveWorker(ctx context.Context, worker domain.Worker) error

	// UpdateWorker updates an existing worker's details.
	UpdateWorker(ctx context.Context, worker domain.Worker) error

	// DeleteWorker soft-deletes a worker.
	DeleteWorker(ctx context.Context, workerID string) error
}

// WorkerRepositoryFacade combines all worker-related repository interfaces.
type WorkerRepositoryFacade interface {
	WorkerReader
	WorkerWriter
}

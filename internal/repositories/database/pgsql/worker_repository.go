package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/topaz-jewels/backoffice_app/internal/apperrors"
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	portsrepo "github.com/topaz-jewels/backoffice_app/internal/core/ports/repositories"
	"github.com/topaz-jewels/backoffice_app/internal/models"
	"github.com/topaz-jewels/backoffice_app/internal/utils/mapping"
)

// PgxWorkerRepository persists workers. Deletion is a soft flag so payroll
// history stays attributable.
type PgxWorkerRepository struct {
	BaseRepository
}

func newPgxWorkerRepository(pool *pgxpool.Pool) portsrepo.WorkerRepositoryFacade {
	return &PgxWorkerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkerRepositoryFacade = (*PgxWorkerRepository)(nil)

const workerColumns = `id, full_name, post_id, birth_date, employment_date, is_deleted`

func scanWorker(row pgx.Row) (models.Worker, error) {
	var m models.Worker
	err := row.Scan(&m.ID, &m.FullName, &m.PostID, &m.BirthDate, &m.EmploymentDate, &m.IsDeleted)
	return m, err
}

func (r *PgxWorkerRepository) ListWorkers(ctx context.Context, onlyActive bool, filter domain.WorkerFilter) ([]domain.Worker, error) {
	// Each date range applies only when both of its bounds are set.
	query := `SELECT ` + workerColumns + ` FROM workers
		WHERE (NOT $1 OR NOT is_deleted)
		  AND ($2::uuid IS NULL OR post_id = $2)
		  AND ($3::timestamptz IS NULL OR $4::timestamptz IS NULL OR (birth_date >= $3 AND birth_date < $4))
		  AND ($5::timestamptz IS NULL OR $6::timestamptz IS NULL OR (employment_date >= $5 AND employment_date < $6))
		ORDER BY full_name;`
	rows, err := r.Pool.Query(ctx, query,
		onlyActive,
		filter.PostID,
		filter.FromBirthDate, filter.ToBirthDate,
		filter.FromEmploymentDate, filter.ToEmploymentDate,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list workers", err)
	}
	defer rows.Close()

	var ms []models.Worker
	for rows.Next() {
		m, err := scanWorker(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan worker", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read workers", err)
	}
	return mapping.ToDomainWorkerSlice(ms), nil
}

func (r *PgxWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1 AND NOT is_deleted;`
	m, err := scanWorker(r.Pool.QueryRow(ctx, query, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find worker by id", err)
	}
	d := mapping.ToDomainWorker(m)
	return &d, nil
}

func (r *PgxWorkerRepository) FindWorkerByFullName(ctx context.Context, fullName string) (*domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE full_name = $1 AND NOT is_deleted LIMIT 1;`
	m, err := scanWorker(r.Pool.QueryRow(ctx, query, fullName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find worker by name", err)
	}
	d := mapping.ToDomainWorker(m)
	return &d, nil
}

func (r *PgxWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) error {
	m := mapping.ToModelWorker(worker)
	query := `
		INSERT INTO workers (id, full_name, post_id, birth_date, employment_date, is_deleted)
		VALUES ($1, $2, $3, $4, $5, FALSE);
	`
	_, err := r.Pool.Exec(ctx, query, m.ID, m.FullName, m.PostID, m.BirthDate, m.EmploymentDate)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return apperrors.NewExistsError("ID", worker.ID)
		}
		return apperrors.NewAppError(500, "failed to save worker", err)
	}
	return nil
}

func (r *PgxWorkerRepository) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if err := lockWorkerRow(ctx, tx, worker.ID); err != nil {
		return err
	}

	m := mapping.ToModelWorker(worker)
	query := `
		UPDATE workers SET full_name = $2, post_id = $3, birth_date = $4, employment_date = $5
		WHERE id = $1;
	`
	if _, err := tx.Exec(ctx, query, m.ID, m.FullName, m.PostID, m.BirthDate, m.EmploymentDate); err != nil {
		return apperrors.NewAppError(500, "failed to update worker", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxWorkerRepository) DeleteWorker(ctx context.Context, workerID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if err := lockWorkerRow(ctx, tx, workerID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE workers SET is_deleted = TRUE WHERE id = $1;`, workerID); err != nil {
		return apperrors.NewAppError(500, "failed to delete worker", err)
	}

	return r.Commit(ctx, tx)
}

// lockWorkerRow fetches a worker FOR UPDATE, distinguishing a soft-deleted
// worker from a missing one.
func lockWorkerRow(ctx context.Context, tx pgx.Tx, workerID string) error {
	var isDeleted bool
	err := tx.QueryRow(ctx, `SELECT is_deleted FROM workers WHERE id = $1 FOR UPDATE;`, workerID).Scan(&isDeleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError(workerID)
		}
		return apperrors.NewAppError(500, "failed to lock worker", err)
	}
	if isDeleted {
		return apperrors.NewDeletedError(workerID)
	}
	return nil
}

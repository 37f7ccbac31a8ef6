package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/topaz-jewels/backoffice_app/internal/apperrors"
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	portsrepo "github.com/topaz-jewels/backoffice_app/internal/core/ports/repositories"
	"github.com/topaz-jewels/backoffice_app/internal/models"
	"github.com/topaz-jewels/backoffice_app/internal/utils/mapping"
)

// PgxSalaryRepository persists payroll rows. The table is append-only; the
// only write is the insert done by the payroll run.
type PgxSalaryRepository struct {
	BaseRepository
}

func newPgxSalaryRepository(pool *pgxpool.Pool) portsrepo.SalaryRepositoryFacade {
	return &PgxSalaryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SalaryRepositoryFacade = (*PgxSalaryRepository)(nil)

// ListSalaries returns rows with salary_date in [from, to]. Unlike the sales
// date filter, the upper bound is inclusive.
func (r *PgxSalaryRepository) ListSalaries(ctx context.Context, from, to time.Time, workerID *string) ([]domain.Salary, error) {
	query := `SELECT id, worker_id, salary_date, worker_salary FROM salaries
		WHERE salary_date >= $1 AND salary_date <= $2
		  AND ($3::uuid IS NULL OR worker_id = $3)
		ORDER BY salary_date;`
	rows, err := r.Pool.Query(ctx, query, from, to, workerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list salaries", err)
	}
	defer rows.Close()

	var ms []models.Salary
	for rows.Next() {
		var m models.Salary
		if err := rows.Scan(&m.ID, &m.WorkerID, &m.SalaryDate, &m.WorkerSalary); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan salary", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read salaries", err)
	}
	return mapping.ToDomainSalarySlice(ms), nil
}

func (r *PgxSalaryRepository) SaveSalary(ctx context.Context, salary domain.Salary) error {
	m := mapping.ToModelSalary(salary)
	query := `
		INSERT INTO salaries (id, worker_id, salary_date, worker_salary)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, m.ID, m.WorkerID, m.SalaryDate, m.WorkerSalary)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return apperrors.NewExistsError("ID", salary.ID)
		}
		return apperrors.NewAppError(500, "failed to save salary", err)
	}
	return nil
}

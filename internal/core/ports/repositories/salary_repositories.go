package repositories

import (
	"context"
	"time"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
)

// SalaryReader defines read operations over payroll results.
type SalaryReader interface {
	// ListSalaries retrieves salary rows with salary_date within [from, to]
	// (inclusive upper bound), optionally narrowed to one worker.
	ListSalaries(ctx context.Context, from, to time.Time, workerID *string) ([]domain.Salary, error)
}

// SalaryWriter defines write operations over payroll results. The store is
// append-only: no update or delete exists.
type SalaryWriter interface {
	// SaveSalary appends one payroll row.
	SaveSalary(ctx context.Context, salary domain.Salary) error
}

// SalaryRepositoryFacade combines all salary-related repository interfaces.
type SalaryRepositoryFacade interface {
	SalaryReader
	SalaryWriter
}

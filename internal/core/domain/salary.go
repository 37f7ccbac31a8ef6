package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary is one payroll result for one worker and one pay period. Rows are
// append-only: the payroll engine creates them and nothing updates or deletes
// them.
type Salary struct {
	ID           string          `json:"id" validate:"required,uuid"`
	WorkerID     string          `json:"workerID" validate:"required,uuid"`
	SalaryDate   time.Time       `json:"salaryDate" validate:"required"`
	WorkerSalary decimal.Decimal `json:"workerSalary" validate:"gt=0"`
}

func (s Salary) Validate() error {
	return runValidation(s)
}

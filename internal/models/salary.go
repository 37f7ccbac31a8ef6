package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary is an append-only row of the salaries table.
type Salary struct {
	ID           string          `db:"id"`
	WorkerID     string          `db:"worker_id"`
	SalaryDate   time.Time       `db:"salary_date"`
	WorkerSalary decimal.Decimal `db:"worker_salary"`
}

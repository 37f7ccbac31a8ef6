package services

import (
	"context"
	"time"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
)

// PayrollSvcFacade defines payroll queries and the monthly calculation batch.
type PayrollSvcFacade interface {
	// GetAllSalariesByPeriod lists payroll rows within [from, to]. The start
	// date must precede the end date.
	GetAllSalariesByPeriod(ctx context.Context, from, to time.Time) ([]domain.Salary, error)

	// GetAllSalariesByPeriodByWorker lists one worker's payroll rows within
	// [from, to].
	GetAllSalariesByPeriodByWorker(ctx context.Context, from, to time.Time, workerID string) ([]domain.Salary, error)

	// CalculateMonthlySalaries runs payroll for the calendar month containing
	// date, writing one Salary row per active worker.
	CalculateMonthlySalaries(ctx context.Context, date time.Time) error
}

package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/topaz-jewels/backoffice_app/internal/apperrors"
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	portsrepo "github.com/topaz-jewels/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/topaz-jewels/backoffice_app/internal/core/ports/services"
	"github.com/topaz-jewels/backoffice_app/internal/platform/logging"
)

// commissionRate is the fraction of pre-discount gross sales paid on top of
// the post's base salary.
var commissionRate = decimal.NewFromFloat(0.1)

// PayrollService implements payroll queries and the monthly calculation
// batch. The batch is not transactional across workers: each computed row is
// written as soon as it is ready, and a failure aborts the run leaving the
// rows already written in place.
type PayrollService struct {
	salaryRepo portsrepo.SalaryRepositoryFacade
	workerRepo portsrepo.WorkerReader
	postRepo   portsrepo.PostReader
	saleRepo   portsrepo.SaleReader
}

func NewPayrollService(
	salaryRepo portsrepo.SalaryRepositoryFacade,
	workerRepo portsrepo.WorkerReader,
	postRepo portsrepo.PostReader,
	saleRepo portsrepo.SaleReader,
) *PayrollService {
	return &PayrollService{
		salaryRepo: salaryRepo,
		workerRepo: workerRepo,
		postRepo:   postRepo,
		saleRepo:   saleRepo,
	}
}

var _ portssvc.PayrollSvcFacade = (*PayrollService)(nil)

func (s *PayrollService) GetAllSalariesByPeriod(ctx context.Context, from, to time.Time) ([]domain.Salary, error) {
	return s.listSalaries(ctx, from, to, nil)
}

func (s *PayrollService) GetAllSalariesByPeriodByWorker(ctx context.Context, from, to time.Time, workerID string) ([]domain.Salary, error) {
	if err := requireUUID("WorkerID", workerID); err != nil {
		return nil, err
	}
	return s.listSalaries(ctx, from, to, &workerID)
}

func (s *PayrollService) listSalaries(ctx context.Context, from, to time.Time, workerID *string) ([]domain.Salary, error) {
	logger := logging.FromContext(ctx)
	if !from.Before(to) {
		return nil, apperrors.NewValidationError("The end date must be later than the start date")
	}
	salaries, err := s.salaryRepo.ListSalaries(ctx, from, to, workerID)
	if err != nil {
		logger.Error("Failed to list salaries from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if salaries == nil {
		return nil, apperrors.NewUnavailableError("salary list")
	}
	return salaries, nil
}

// CalculateMonthlySalaries runs payroll for the calendar month containing
// date. Each active worker earns the base salary of their current post plus
// commission on the gross value (price*count, before discount) of the sales
// they handled within the month.
func (s *PayrollService) CalculateMonthlySalaries(ctx context.Context, date time.Time) error {
	logger := logging.FromContext(ctx)

	periodStart := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	workers, err := s.workerRepo.ListWorkers(ctx, true, domain.WorkerFilter{})
	if err != nil {
		logger.Error("Failed to list workers for payroll", slog.String("error", err.Error()))
		return err
	}
	if workers == nil {
		return apperrors.NewUnavailableError("worker list")
	}

	logger.Info("Payroll run started",
		slog.Time("period_start", periodStart),
		slog.Time("period_end", periodEnd),
		slog.Int("workers", len(workers)))

	for _, worker := range workers {
		post, err := s.postRepo.FindCurrentPostByID(ctx, worker.PostID)
		if err != nil {
			logger.Error("Failed to find post for payroll", slog.String("error", err.Error()), slog.String("worker_id", worker.ID))
			return err
		}
		if post == nil {
			return apperrors.NewNotFoundError(worker.PostID)
		}

		workerID := worker.ID
		sales, err := s.saleRepo.ListSales(ctx, domain.SaleFilter{
			FromDate: &periodStart,
			ToDate:   &periodEnd,
			WorkerID: &workerID,
		})
		if err != nil {
			logger.Error("Failed to list sales for payroll", slog.String("error", err.Error()), slog.String("worker_id", worker.ID))
			return err
		}
		if sales == nil {
			return apperrors.NewUnavailableError("sale list")
		}

		// TODO: cancelled sales still count toward commission; confirm with
		// accounting whether they should be excluded here.
		gross := decimal.Zero
		for _, sale := range sales {
			for _, item := range sale.Products {
				gross = gross.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Count))))
			}
		}

		salary := domain.Salary{
			ID:           uuid.NewString(),
			WorkerID:     worker.ID,
			SalaryDate:   date,
			WorkerSalary: post.Salary.Add(gross.Mul(commissionRate)),
		}
		if err := salary.Validate(); err != nil {
			return err
		}

		if err := s.salaryRepo.SaveSalary(ctx, salary); err != nil {
			logger.Error("Failed to save salary in repository", slog.String("error", err.Error()), slog.String("worker_id", worker.ID))
			return err
		}

		logger.Info("Salary calculated",
			slog.String("worker_id", worker.ID),
			slog.String("amount", salary.WorkerSalary.String()))
	}

	logger.Info("Payroll run finished", slog.Int("workers", len(workers)))
	return nil
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/topaz-jewels/backoffice_app/internal/apperrors"
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/core/services"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	mockSalaryRepo *MockSalaryRepository
	mockWorkerRepo *MockWorkerRepository
	mockPostRepo   *MockPostRepository
	mockSaleRepo   *MockSaleRepository
	service        *services.PayrollService
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockSalaryRepo = new(MockSalaryRepository)
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.mockPostRepo = new(MockPostRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.service = services.NewPayrollService(suite.mockSalaryRepo, suite.mockWorkerRepo, suite.mockPostRepo, suite.mockSaleRepo)
}

func testWorker(postID string) domain.Worker {
	return domain.Worker{
		ID:             uuid.NewString(),
		FullName:       "Maria Ivanova",
		PostID:         postID,
		BirthDate:      time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		EmploymentDate: time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func testSaleFor(workerID string, prices ...float64) domain.Sale {
	saleID := uuid.NewString()
	products := make([]domain.SaleProduct, len(prices))
	for i, p := range prices {
		products[i] = domain.SaleProduct{
			SaleID:    saleID,
			ProductID: uuid.NewString(),
			Count:     1,
			Price:     decimal.NewFromFloat(p),
		}
	}
	return domain.NewSale(saleID, workerID, nil, domain.DiscountNone, false, products)
}

func (suite *PayrollServiceTestSuite) TestCalculateMonthlySalaries_BasePlusCommission() {
	ctx := context.Background()
	postID := uuid.NewString()
	worker := testWorker(postID)
	post := &domain.Post{PostID: postID, PostName: "Seller", PostType: domain.PostTypeSeller, Salary: decimal.NewFromInt(2000)}

	suite.mockWorkerRepo.On("ListWorkers", ctx, true, domain.WorkerFilter{}).
		Return([]domain.Worker{worker}, nil).Once()
	suite.mockPostRepo.On("FindCurrentPostByID", ctx, postID).Return(post, nil).Once()
	suite.mockSaleRepo.On("ListSales", ctx, mock.MatchedBy(func(f domain.SaleFilter) bool {
		return f.WorkerID != nil && *f.WorkerID == worker.ID && f.FromDate != nil && f.ToDate != nil
	})).Return([]domain.Sale{testSaleFor(worker.ID, 2, 4)}, nil).Once()

	var saved domain.Salary
	suite.mockSalaryRepo.On("SaveSalary", ctx, mock.AnythingOfType("domain.Salary")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Salary) }).
		Return(nil).Once()

	err := suite.service.CalculateMonthlySalaries(ctx, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.Equal(worker.ID, saved.WorkerID)
	// 2000 base + 10% of the 6.00 gross.
	suite.True(saved.WorkerSalary.Equal(decimal.RequireFromString("2000.6")), "salary = %s", saved.WorkerSalary)
	suite.mockSalaryRepo.AssertExpectations(suite.T())
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestCalculateMonthlySalaries_QueriesCalendarMonth() {
	ctx := context.Background()
	postID := uuid.NewString()
	worker := testWorker(postID)
	post := &domain.Post{PostID: postID, PostName: "Seller", PostType: domain.PostTypeSeller, Salary: decimal.NewFromInt(1500)}

	suite.mockWorkerRepo.On("ListWorkers", ctx, true, domain.WorkerFilter{}).
		Return([]domain.Worker{worker}, nil).Once()
	suite.mockPostRepo.On("FindCurrentPostByID", ctx, postID).Return(post, nil).Once()
	suite.mockSaleRepo.On("ListSales", ctx, mock.MatchedBy(func(f domain.SaleFilter) bool {
		return f.FromDate != nil && f.ToDate != nil &&
			f.FromDate.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) &&
			f.ToDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]domain.Sale{}, nil).Once()
	suite.mockSalaryRepo.On("SaveSalary", ctx, mock.AnythingOfType("domain.Salary")).Return(nil).Once()

	err := suite.service.CalculateMonthlySalaries(ctx, time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestCalculateMonthlySalaries_NoSalesPaysBaseOnly() {
	ctx := context.Background()
	postID := uuid.NewString()
	worker := testWorker(postID)
	post := &domain.Post{PostID: postID, PostName: "Cashier", PostType: domain.PostTypeCashier, Salary: decimal.NewFromInt(1200)}

	suite.mockWorkerRepo.On("ListWorkers", ctx, true, domain.WorkerFilter{}).
		Return([]domain.Worker{worker}, nil).Once()
	suite.mockPostRepo.On("FindCurrentPostByID", ctx, postID).Return(post, nil).Once()
	suite.mockSaleRepo.On("ListSales", ctx, mock.Anything).Return([]domain.Sale{}, nil).Once()

	var saved domain.Salary
	suite.mockSalaryRepo.On("SaveSalary", ctx, mock.AnythingOfType("domain.Salary")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Salary) }).
		Return(nil).Once()

	err := suite.service.CalculateMonthlySalaries(ctx, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.True(saved.WorkerSalary.Equal(decimal.NewFromInt(1200)))
}

func (suite *PayrollServiceTestSuite) TestCalculateMonthlySalaries_CancelledSalesStillCount() {
	ctx := context.Background()
	postID := uuid.NewString()
	worker := testWorker(postID)
	post := &domain.Post{PostID: postID, PostName: "Seller", PostType: domain.PostTypeSeller, Salary: decimal.NewFromInt(1000)}

	cancelled := testSaleFor(worker.ID, 500)
	cancelled.IsCancel = true

	suite.mockWorkerRepo.On("ListWorkers", ctx, true, domain.WorkerFilter{}).
		Return([]domain.Worker{worker}, nil).Once()
	suite.mockPostRepo.On("FindCurrentPostByID", ctx, postID).Return(post, nil).Once()
	suite.mockSaleRepo.On("ListSales", ctx, mock.Anything).Return([]domain.Sale{cancelled}, nil).Once()

	var saved domain.Salary
	suite.mockSalaryRepo.On("SaveSalary", ctx, mock.AnythingOfType("domain.Salary")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Salary) }).
		Return(nil).Once()

	err := suite.service.CalculateMonthlySalaries(ctx, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.True(saved.WorkerSalary.Equal(decimal.NewFromInt(1050)), "salary = %s", saved.WorkerSalary)
}

func (suite *PayrollServiceTestSuite) TestCalculateMonthlySalaries_OneRowPerWorker() {
	ctx := context.Background()
	postID := uuid.NewString()
	post := &domain.Post{PostID: postID, PostName: "Seller", PostType: domain.PostTypeSeller, Salary: decimal.NewFromInt(1000)}
	workers := []domain.Worker{testWorker(postID), testWorker(postID), testWorker(postID)}

	suite.mockWorkerRepo.On("ListWorkers", ctx, true, domain.WorkerFilter{}).Return(workers, nil).Once()
	suite.mockPostRepo.On("FindCurrentPostByID", ctx, postID).Return(post, nil).Times(3)
	suite.mockSaleRepo.On("ListSales", ctx, mock.Anything).Return([]domain.Sale{}, nil).Times(3)
	suite.mockSalaryRepo.On("SaveSalary", ctx, mock.AnythingOfType("domain.Salary")).Return(nil).Times(3)

	err := suite.service.CalculateMonthlySalaries(ctx, time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.mockSalaryRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestCalculateMonthlySalaries_NilRosterIsUnavailable() {
	ctx := context.Background()
	suite.mockWorkerRepo.On("ListWorkers", ctx, true, domain.WorkerFilter{}).Return(nil, nil).Once()

	err := suite.service.CalculateMonthlySalaries(ctx, time.Now().UTC())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnavailable)
	suite.mockSalaryRepo.AssertNotCalled(suite.T(), "SaveSalary", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestCalculateMonthlySalaries_MissingPostAbortsRun() {
	ctx := context.Background()
	worker := testWorker(uuid.NewString())

	suite.mockWorkerRepo.On("ListWorkers", ctx, true, domain.WorkerFilter{}).
		Return([]domain.Worker{worker}, nil).Once()
	suite.mockPostRepo.On("FindCurrentPostByID", ctx, worker.PostID).Return(nil, nil).Once()

	err := suite.service.CalculateMonthlySalaries(ctx, time.Now().UTC())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSalaryRepo.AssertNotCalled(suite.T(), "SaveSalary", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestGetAllSalariesByPeriod_RejectsInvertedDates() {
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	salaries, err := suite.service.GetAllSalariesByPeriod(ctx, from, to)

	suite.Require().Error(err)
	suite.Nil(salaries)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSalaryRepo.AssertNotCalled(suite.T(), "ListSalaries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestGetAllSalariesByPeriodByWorker_RejectsMalformedID() {
	ctx := context.Background()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.GetAllSalariesByPeriodByWorker(ctx, from, to, "worker-9")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	assert.ErrorContains(suite.T(), err, "not a unique identifier")
}

func (suite *PayrollServiceTestSuite) TestGetAllSalariesByPeriod_Success() {
	ctx := context.Background()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	expected := []domain.Salary{{
		ID:           uuid.NewString(),
		WorkerID:     uuid.NewString(),
		SalaryDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		WorkerSalary: decimal.NewFromInt(1800),
	}}

	suite.mockSalaryRepo.On("ListSalaries", ctx, from, to, (*string)(nil)).Return(expected, nil).Once()

	salaries, err := suite.service.GetAllSalariesByPeriod(ctx, from, to)

	suite.Require().NoError(err)
	suite.Equal(expected, salaries)
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/topaz-jewels/backoffice_app/internal/apperrors"
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/core/services"
	"github.com/topaz-jewels/backoffice_app/internal/dto"
)

type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo   *MockSaleRepository
	mockWorkerRepo *MockWorkerRepository
	service        *services.SaleService
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.service = services.NewSaleService(suite.mockSaleRepo, suite.mockWorkerRepo)
}

func (suite *SaleServiceTestSuite) TestCreateSale_ComputesSumAndDiscount() {
	ctx := context.Background()
	workerID := uuid.NewString()
	req := dto.CreateSaleRequest{
		WorkerID:     workerID,
		DiscountType: domain.DiscountOnSale,
		Products: []dto.SaleItemRequest{
			{ProductID: uuid.NewString(), Count: 2, Price: decimal.NewFromInt(150)},
			{ProductID: uuid.NewString(), Count: 1, Price: decimal.NewFromInt(700)},
		},
	}

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, workerID).
		Return(&domain.Worker{ID: workerID, PostID: uuid.NewString()}, nil).Once()

	var saved domain.Sale
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Sale) }).
		Return(nil).Once()

	created, err := suite.service.CreateSale(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.True(created.Sum.Equal(decimal.NewFromInt(1000)), "sum = %s", created.Sum)
	suite.True(created.Discount.Equal(decimal.NewFromInt(100)), "discount = %s", created.Discount)
	suite.False(created.IsCancel)
	suite.Equal(created.ID, saved.ID)
	for _, item := range saved.Products {
		suite.Equal(created.ID, item.SaleID)
	}
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_UnknownWorkerIsNotFound() {
	ctx := context.Background()
	workerID := uuid.NewString()
	req := dto.CreateSaleRequest{
		WorkerID: workerID,
		Products: []dto.SaleItemRequest{
			{ProductID: uuid.NewString(), Count: 1, Price: decimal.NewFromInt(300)},
		},
	}

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, workerID).Return(nil, nil).Once()

	created, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCreateSale_NoItemsFailsValidation() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{WorkerID: uuid.NewString()}

	created, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCancelSale_SecondCancelIsDeleted() {
	ctx := context.Background()
	saleID := uuid.NewString()

	suite.mockSaleRepo.On("CancelSale", ctx, saleID).Return(nil).Once()
	suite.mockSaleRepo.On("CancelSale", ctx, saleID).Return(apperrors.NewDeletedError(saleID)).Once()

	suite.Require().NoError(suite.service.CancelSale(ctx, saleID))

	err := suite.service.CancelSale(ctx, saleID)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDeleted)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestGetAllSales_RejectsInvertedDates() {
	ctx := context.Background()
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	sales, err := suite.service.GetAllSales(ctx, domain.SaleFilter{FromDate: &from, ToDate: &to})

	suite.Require().Error(err)
	suite.Nil(sales)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "ListSales", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestGetAllSales_NilListIsUnavailable() {
	ctx := context.Background()

	suite.mockSaleRepo.On("ListSales", ctx, domain.SaleFilter{}).Return(nil, nil).Once()

	sales, err := suite.service.GetAllSales(ctx, domain.SaleFilter{})

	suite.Require().Error(err)
	suite.Nil(sales)
	suite.ErrorIs(err, apperrors.ErrUnavailable)
}

func (suite *SaleServiceTestSuite) TestGetSaleByID_MissingIsNotFound() {
	ctx := context.Background()
	saleID := uuid.NewString()

	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(nil, nil).Once()

	sale, err := suite.service.GetSaleByID(ctx, saleID)

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}

package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/topaz-jewels/backoffice_app/internal/apperrors"
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/core/services"
	"github.com/topaz-jewels/backoffice_app/internal/dto"
)

type ManufacturerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockManufacturerRepository
	service  *services.ManufacturerService
}

func (suite *ManufacturerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockManufacturerRepository)
	suite.service = services.NewManufacturerService(suite.mockRepo)
}

func (suite *ManufacturerServiceTestSuite) TestUpdateManufacturer_ShiftsRenameRing() {
	ctx := context.Background()
	id := uuid.NewString()
	prev := "Aurum"
	existing := &domain.Manufacturer{
		ID:               id,
		ManufacturerName: "Aurum & Co",
		PrevNames:        [2]*string{&prev, nil},
	}

	suite.mockRepo.On("FindManufacturerByID", ctx, id).Return(existing, nil).Once()

	var saved domain.Manufacturer
	suite.mockRepo.On("UpdateManufacturer", ctx, mock.AnythingOfType("domain.Manufacturer")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Manufacturer) }).
		Return(nil).Once()

	updated, err := suite.service.UpdateManufacturer(ctx, id, dto.UpdateManufacturerRequest{ManufacturerName: "Aurum International"})

	suite.Require().NoError(err)
	suite.Equal("Aurum International", updated.ManufacturerName)
	suite.Require().NotNil(saved.PrevNames[0])
	suite.Equal("Aurum & Co", *saved.PrevNames[0])
	suite.Require().NotNil(saved.PrevNames[1])
	suite.Equal("Aurum", *saved.PrevNames[1])
}

func (suite *ManufacturerServiceTestSuite) TestUpdateManufacturer_Missing() {
	ctx := context.Background()
	id := uuid.NewString()

	suite.mockRepo.On("FindManufacturerByID", ctx, id).Return(nil, nil).Once()

	updated, err := suite.service.UpdateManufacturer(ctx, id, dto.UpdateManufacturerRequest{ManufacturerName: "Anything"})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateManufacturer", mock.Anything, mock.Anything)
}

func (suite *ManufacturerServiceTestSuite) TestGetManufacturerByData_FallsBackToOldName() {
	ctx := context.Background()
	expected := &domain.Manufacturer{ID: uuid.NewString(), ManufacturerName: "Aurum & Co"}

	suite.mockRepo.On("FindManufacturerByName", ctx, "Aurum").Return(nil, nil).Once()
	suite.mockRepo.On("FindManufacturerByOldName", ctx, "Aurum").Return(expected, nil).Once()

	got, err := suite.service.GetManufacturerByData(ctx, "Aurum")

	suite.Require().NoError(err)
	suite.Equal(expected, got)
}

func TestManufacturerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ManufacturerServiceTestSuite))
}

package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/freight_desk/internal/apperrors"
	"github.com/SscSPs/freight_desk/internal/core/domain"
	portssvc "github.com/SscSPs/freight_desk/internal/core/ports/services"
	"github.com/SscSPs/freight_desk/internal/core/services"
	"github.com/SscSPs/freight_desk/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	symbol := "S$"
	req := dto.CreateCurrencyRequest{
		CurrencyCode: " sgd ",
		Name:         "Singapore Dollar",
		Symbol:       &symbol,
		SortOrder:    3,
	}

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == "SGD" && c.Name == req.Name && c.DecimalPlaces == 2 &&
			c.IsActive && !c.IsBase && c.CreatedBy == creatorUserID && c.LastUpdatedBy == creatorUserID
	})).Return(&domain.Currency{
		CurrencyID:    7,
		CurrencyCode:  "SGD",
		Name:          req.Name,
		Symbol:        &symbol,
		DecimalPlaces: 2,
		IsActive:      true,
		AuditFields:   domain.AuditFields{CreatedBy: creatorUserID, LastUpdatedBy: creatorUserID},
	}, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal(int64(7), currency.CurrencyID)
	suite.Equal("SGD", currency.CurrencyCode)
	suite.Equal(&symbol, currency.Symbol)
	suite.Equal(creatorUserID, currency.CreatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_ExplicitDecimalPlaces() {
	ctx := context.Background()
	zero := 0
	req := dto.CreateCurrencyRequest{CurrencyCode: "IDR", Name: "Indonesian Rupiah", DecimalPlaces: &zero, IsBase: true}

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.DecimalPlaces == 0 && c.IsBase
	})).Return(&domain.Currency{CurrencyCode: "IDR", DecimalPlaces: 0, IsBase: true, IsActive: true}, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(currency.IsBase)
	suite.Zero(currency.DecimalPlaces)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "USD", Name: "US Dollar"}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil, apperrors.ErrDuplicate).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.True(errors.Is(err, apperrors.ErrDuplicate))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "xxx")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(404, appErr.Code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx, true).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx, true)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_RepoError() {
	ctx := context.Background()
	repoErr := errors.New("database error")

	suite.mockRepo.On("ListCurrencies", ctx, false).Return(nil, repoErr).Once()

	currencies, err := suite.service.ListCurrencies(ctx, false)

	suite.Require().Error(err)
	suite.Nil(currencies)
	suite.ErrorIs(err, repoErr)
}

func (suite *CurrencyServiceTestSuite) TestSetCurrencyActive_BaseCannotBeDeactivated() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "IDR").
		Return(&domain.Currency{CurrencyCode: "IDR", IsBase: true, IsActive: true}, nil).Once()

	currency, err := suite.service.SetCurrencyActive(ctx, "idr", false, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetCurrencyActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestSetCurrencyActive_Toggles() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").
		Return(&domain.Currency{CurrencyCode: "EUR", IsActive: true}, nil).Once()
	suite.mockRepo.On("SetCurrencyActive", ctx, "EUR", false, userID).Return(nil).Once()

	currency, err := suite.service.SetCurrencyActive(ctx, "EUR", false, userID)

	suite.Require().NoError(err)
	suite.False(currency.IsActive)
	suite.Equal(userID, currency.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestSetCurrencyActive_NoChangeSkipsWrite() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").
		Return(&domain.Currency{CurrencyCode: "USD", IsActive: true}, nil).Once()

	currency, err := suite.service.SetCurrencyActive(ctx, "USD", true, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(currency.IsActive)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetCurrencyActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

func TestGetBaseCurrency(t *testing.T) {
	repo := new(MockCurrencyRepository)
	svc := services.NewCurrencyService(repo)
	ctx := context.Background()

	repo.On("FindBaseCurrency", ctx).Return(&domain.Currency{CurrencyCode: "IDR", IsBase: true}, nil).Once()

	base, err := svc.GetBaseCurrency(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "IDR", base.CurrencyCode)
	repo.AssertExpectations(t)
}

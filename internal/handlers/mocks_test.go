package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/freight_desk/internal/core/domain"
	portssvc "github.com/SscSPs/freight_desk/internal/core/ports/services"
	"github.com/SscSPs/freight_desk/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) SetCurrencyActive(ctx context.Context, currencyCode string, active bool, userID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode, active, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) ListCurrentRates(ctx context.Context, source *domain.RateSource) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ListRateHistory(ctx context.Context, filter domain.RateHistoryFilter) ([]domain.ExchangeRateHistory, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRateHistory), args.Error(1)
}

func (m *MockExchangeRateService) ResolveRate(ctx context.Context, fromCode, toCode string, source *domain.RateSource, asOf *time.Time) (*domain.ResolvedRate, error) {
	args := m.Called(ctx, fromCode, toCode, source, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedRate), args.Error(1)
}

func (m *MockExchangeRateService) Convert(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionResult), args.Error(1)
}

func (m *MockExchangeRateService) WeekOf(date *time.Time) domain.WeekWindow {
	args := m.Called(date)
	return args.Get(0).(domain.WeekWindow)
}

func (m *MockExchangeRateService) UpsertExchangeRate(ctx context.Context, req dto.UpsertExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) BulkUpsertExchangeRates(ctx context.Context, req dto.BulkUpsertExchangeRatesRequest, creatorUserID string) (*domain.BulkUpsertResult, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BulkUpsertResult), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock master data services ---
type MockPortService struct {
	mock.Mock
}

func (m *MockPortService) ListPorts(ctx context.Context, portType *domain.PortType) ([]domain.Port, error) {
	args := m.Called(ctx, portType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Port), args.Error(1)
}

func (m *MockPortService) CreatePort(ctx context.Context, req dto.CreatePortRequest) (*domain.Port, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Port), args.Error(1)
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) ListCustomers(ctx context.Context, active *bool) ([]domain.Customer, error) {
	args := m.Called(ctx, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// --- Mock InquiryExtractorService ---
type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) ExtractInquiry(ctx context.Context, emailContent, model string) (*domain.ParsedInquiry, error) {
	args := m.Called(ctx, emailContent, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedInquiry), args.Error(1)
}

func (m *MockInquiryService) ParserStatus(ctx context.Context) domain.ParserStatus {
	args := m.Called(ctx)
	return args.Get(0).(domain.ParserStatus)
}

var _ portssvc.InquiryExtractorSvc = (*MockInquiryService)(nil)

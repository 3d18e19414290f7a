package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/freight_desk/internal/apperrors"
	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/SscSPs/freight_desk/internal/core/ports/gateways"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SetCurrencyActive(ctx context.Context, currencyCode string, active bool, userID string) error {
	args := m.Called(ctx, currencyCode, active, userID)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock port and customer readers ---
type MockPortRepository struct {
	mock.Mock
}

func (m *MockPortRepository) FindPortByCode(ctx context.Context, code string) (*domain.Port, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Port), args.Error(1)
}

func (m *MockPortRepository) SearchPort(ctx context.Context, term string) (*domain.Port, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Port), args.Error(1)
}

func (m *MockPortRepository) ListPorts(ctx context.Context, portType *domain.PortType) ([]domain.Port, error) {
	args := m.Called(ctx, portType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Port), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SearchCustomerByName(ctx context.Context, term string) (*domain.Customer, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, active *bool) ([]domain.Customer, error) {
	args := m.Called(ctx, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// --- Mock MasterDataMatcher ---
type MockMasterDataMatcher struct {
	mock.Mock
}

func (m *MockMasterDataMatcher) MatchPort(ctx context.Context, name string) (*domain.Port, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Port), args.Error(1)
}

func (m *MockMasterDataMatcher) MatchCustomer(ctx context.Context, email, name string) (*domain.Customer, error) {
	args := m.Called(ctx, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// --- Mock LanguageModel ---
type MockLanguageModel struct {
	mock.Mock
}

func (m *MockLanguageModel) ListModels(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLanguageModel) Generate(ctx context.Context, model, prompt string, opts gateways.GenerateOptions) (string, error) {
	args := m.Called(ctx, model, prompt, opts)
	return args.String(0), args.Error(1)
}

// --- In-memory currency registry ---
type memoryCurrencies map[string]domain.Currency

func (r memoryCurrencies) FindCurrencyByCode(_ context.Context, code string) (*domain.Currency, error) {
	c, ok := r[code]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r memoryCurrencies) FindBaseCurrency(_ context.Context) (*domain.Currency, error) {
	for _, c := range r {
		if c.IsBase {
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r memoryCurrencies) ListCurrencies(_ context.Context, activeOnly bool) ([]domain.Currency, error) {
	var out []domain.Currency
	for _, c := range r {
		if !activeOnly || c.IsActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

// --- In-memory rate ledger ---
type ledgerKey struct {
	from, to   int64
	year, week int
	source     domain.RateSource
}

// memoryLedger mirrors the storage contract: one row per key, updated in
// place, and is_current evaluated against the date the caller passes.
type memoryLedger struct {
	mu        sync.Mutex
	nextID    int64
	rows      map[ledgerKey]domain.ExchangeRate
	findCalls int
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{rows: make(map[ledgerKey]domain.ExchangeRate)}
}

func (l *memoryLedger) UpsertRates(_ context.Context, week domain.WeekWindow, rates []domain.ExchangeRate, today time.Time) ([]domain.ExchangeRate, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := make([]domain.ExchangeRate, 0, len(rates))
	for _, r := range rates {
		key := ledgerKey{from: r.FromCurrencyID, to: r.ToCurrencyID, year: week.Year, week: week.Number, source: r.Source}
		if existing, ok := l.rows[key]; ok {
			existing.Rate = r.Rate
			existing.RateBuy = r.RateBuy
			existing.RateSell = r.RateSell
			existing.SourceReference = r.SourceReference
			existing.Notes = r.Notes
			existing.LastUpdatedAt = r.LastUpdatedAt
			existing.LastUpdatedBy = r.LastUpdatedBy
			r = existing
		} else {
			l.nextID++
			r.ExchangeRateID = l.nextID
			r.Week = week
		}
		l.rows[key] = r
		r.IsCurrent = r.Week.Contains(today)
		stored = append(stored, r)
	}
	return stored, nil
}

func (l *memoryLedger) FindRateForDate(_ context.Context, fromCode, toCode string, source domain.RateSource, date time.Time) (*domain.ExchangeRate, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.findCalls++

	for _, r := range l.rows {
		if r.FromCurrencyCode == fromCode && r.ToCurrencyCode == toCode && r.Source == source && r.Week.Contains(date) {
			r.IsCurrent = true
			return &r, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (l *memoryLedger) sorted() []domain.ExchangeRate {
	out := make([]domain.ExchangeRate, 0, len(l.rows))
	for _, r := range l.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Week.Year != out[j].Week.Year {
			return out[i].Week.Year > out[j].Week.Year
		}
		if out[i].Week.Number != out[j].Week.Number {
			return out[i].Week.Number > out[j].Week.Number
		}
		return out[i].ExchangeRateID < out[j].ExchangeRateID
	})
	return out
}

func (l *memoryLedger) ListRatesForDate(_ context.Context, source *domain.RateSource, date time.Time) ([]domain.ExchangeRate, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []domain.ExchangeRate
	for _, r := range l.sorted() {
		if r.Week.Contains(date) && (source == nil || r.Source == *source) {
			r.IsCurrent = true
			out = append(out, r)
		}
	}
	return out, nil
}

func (l *memoryLedger) ListRateHistory(_ context.Context, filter domain.RateHistoryFilter, today time.Time) ([]domain.ExchangeRateHistory, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []domain.ExchangeRateHistory
	for _, r := range l.sorted() {
		if filter.FromCurrencyCode != nil && r.FromCurrencyCode != *filter.FromCurrencyCode {
			continue
		}
		if filter.ToCurrencyCode != nil && r.ToCurrencyCode != *filter.ToCurrencyCode {
			continue
		}
		if filter.Source != nil && r.Source != *filter.Source {
			continue
		}
		r.IsCurrent = r.Week.Contains(today)
		out = append(out, domain.ExchangeRateHistory{ExchangeRate: r})
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (l *memoryLedger) WeekBoundaries(_ context.Context, date time.Time) (domain.WeekWindow, error) {
	return domain.WeekOf(date), nil
}

func (l *memoryLedger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.rows)
}

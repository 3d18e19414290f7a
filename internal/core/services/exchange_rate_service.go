package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/freight_desk/internal/apperrors"
	"github.com/SscSPs/freight_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/freight_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freight_desk/internal/core/ports/services"
	"github.com/SscSPs/freight_desk/internal/dto"
	"github.com/SscSPs/freight_desk/internal/utils"
	"github.com/shopspring/decimal"
)

const defaultHistoryLimit = 100

// DefaultSourcePriority is used when no priority is configured.
var DefaultSourcePriority = []domain.RateSource{
	domain.SourceBankIndonesia,
	domain.SourceBCA,
	domain.SourceMandiri,
	domain.SourceManual,
	domain.SourceAPI,
}

type exchangeRateService struct {
	BaseService
	rateRepo       portsrepo.ExchangeRateRepositoryFacade
	currencyRepo   portsrepo.CurrencyReader
	sourcePriority []domain.RateSource
	location       *time.Location
	now            func() time.Time
}

// ExchangeRateOption configures the exchange rate service.
type ExchangeRateOption func(*exchangeRateService)

// WithSourcePriority sets the order in which sources are tried when none is requested.
func WithSourcePriority(sources []domain.RateSource) ExchangeRateOption {
	return func(s *exchangeRateService) {
		if len(sources) > 0 {
			s.sourcePriority = sources
		}
	}
}

// WithBusinessLocation sets the timezone in which "today" is read.
func WithBusinessLocation(loc *time.Location) ExchangeRateOption {
	return func(s *exchangeRateService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.now = now
	}
}

// NewExchangeRateService creates the weekly rate ledger and conversion service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyRepo portsrepo.CurrencyReader, options ...ExchangeRateOption) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		rateRepo:       rateRepo,
		currencyRepo:   currencyRepo,
		sourcePriority: DefaultSourcePriority,
		location:       time.UTC,
		now:            time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// today is the business calendar date, as UTC midnight.
func (s *exchangeRateService) today() time.Time {
	return domain.DateOf(s.now().In(s.location))
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// WeekOf returns the window containing date, or today's window when date is nil.
func (s *exchangeRateService) WeekOf(date *time.Time) domain.WeekWindow {
	if date == nil {
		return domain.WeekOf(s.today())
	}
	return domain.WeekOf(*date)
}

func (s *exchangeRateService) resolveWeek(weekStart *string) (domain.WeekWindow, error) {
	if weekStart == nil || strings.TrimSpace(*weekStart) == "" {
		return s.WeekOf(nil), nil
	}
	d, err := domain.ParseDate(strings.TrimSpace(*weekStart))
	if err != nil {
		return domain.WeekWindow{}, fmt.Errorf("%w: weekStart: %v", apperrors.ErrValidation, err)
	}
	return s.WeekOf(&d), nil
}

// activeCurrency resolves a code against the active registry.
func (s *exchangeRateService) activeCurrency(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
		}
		return nil, fmt.Errorf("failed to look up currency %s: %w", code, err)
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: %s is inactive", apperrors.ErrUnknownCurrency, code)
	}
	return currency, nil
}

func validateEntry(entry domain.RateEntry) error {
	if entry.FromCurrencyCode == "" || entry.ToCurrencyCode == "" {
		return fmt.Errorf("%w: from and to currency codes are required", apperrors.ErrValidation)
	}
	if entry.FromCurrencyCode == entry.ToCurrencyCode {
		return fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	if !entry.Rate.IsPositive() {
		return fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if entry.RateBuy != nil && !entry.RateBuy.IsPositive() {
		return fmt.Errorf("%w: buy rate must be positive", apperrors.ErrValidation)
	}
	if entry.RateSell != nil && !entry.RateSell.IsPositive() {
		return fmt.Errorf("%w: sell rate must be positive", apperrors.ErrValidation)
	}
	checks := []struct {
		name  string
		value *decimal.Decimal
	}{{"exchange", &entry.Rate}, {"buy", entry.RateBuy}, {"sell", entry.RateSell}}
	for _, c := range checks {
		if c.value != nil && !fitsRateColumn(*c.value) {
			return fmt.Errorf("%w: %s rate %s does not fit %d integer digits and %d decimal places",
				apperrors.ErrValidation, c.name, c.value.String(), maxRateIntegerDigits, maxRateScale)
		}
	}
	return nil
}

// maxRateScale and maxRateIntegerDigits mirror the NUMERIC(30,16) rate columns.
const (
	maxRateScale         = 16
	maxRateIntegerDigits = 14
)

func fitsRateColumn(d decimal.Decimal) bool {
	if !d.Equal(d.Truncate(maxRateScale)) {
		return false
	}
	return len(d.Abs().Truncate(0).String()) <= maxRateIntegerDigits
}

func toRateEntry(req dto.RateEntryRequest) domain.RateEntry {
	return domain.RateEntry{
		FromCurrencyCode: normalizeCode(req.FromCurrencyCode),
		ToCurrencyCode:   normalizeCode(req.ToCurrencyCode),
		Rate:             req.Rate,
		RateBuy:          req.RateBuy,
		RateSell:         req.RateSell,
		SourceReference:  req.SourceReference,
		Notes:            req.Notes,
	}
}

func newRateRecord(entry domain.RateEntry, from, to *domain.Currency, source domain.RateSource, week domain.WeekWindow, userID string, now time.Time) domain.ExchangeRate {
	return domain.ExchangeRate{
		FromCurrencyID:   from.CurrencyID,
		FromCurrencyCode: from.CurrencyCode,
		FromCurrencyName: from.Name,
		ToCurrencyID:     to.CurrencyID,
		ToCurrencyCode:   to.CurrencyCode,
		ToCurrencyName:   to.Name,
		Rate:             entry.Rate,
		RateBuy:          entry.RateBuy,
		RateSell:         entry.RateSell,
		Source:           source,
		SourceReference:  entry.SourceReference,
		Notes:            entry.Notes,
		Week:             week,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

// UpsertExchangeRate writes one rate into its week. A rate already stored for
// the same pair, week and source is updated in place.
func (s *exchangeRateService) UpsertExchangeRate(ctx context.Context, req dto.UpsertExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	if !req.Source.Valid() {
		return nil, fmt.Errorf("%w: unknown rate source %q", apperrors.ErrValidation, req.Source)
	}

	entry := toRateEntry(req.RateEntryRequest)
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	week, err := s.resolveWeek(req.WeekStart)
	if err != nil {
		return nil, err
	}

	from, err := s.activeCurrency(ctx, entry.FromCurrencyCode)
	if err != nil {
		return nil, err
	}
	to, err := s.activeCurrency(ctx, entry.ToCurrencyCode)
	if err != nil {
		return nil, err
	}

	record := newRateRecord(entry, from, to, req.Source, week, creatorUserID, time.Now())
	stored, err := s.rateRepo.UpsertRates(ctx, week, []domain.ExchangeRate{record}, s.today())
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert exchange rate",
			slog.String("pair", entry.FromCurrencyCode+"/"+entry.ToCurrencyCode),
			slog.String("source", string(req.Source)),
			slog.String("week", week.String()))
		return nil, fmt.Errorf("failed to upsert exchange rate: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate stored",
		slog.Int64("exchange_rate_id", stored[0].ExchangeRateID),
		slog.String("pair", entry.FromCurrencyCode+"/"+entry.ToCurrencyCode),
		slog.String("source", string(req.Source)),
		slog.String("week", week.String()))
	return &stored[0], nil
}

// BulkUpsertExchangeRates writes a rate sheet for one week and source in a
// single transaction. Entries that cannot be written (unknown currency,
// invalid rate, superseded by a later entry for the same pair) are reported in
// Skipped and left out of Count.
func (s *exchangeRateService) BulkUpsertExchangeRates(ctx context.Context, req dto.BulkUpsertExchangeRatesRequest, creatorUserID string) (*domain.BulkUpsertResult, error) {
	if !req.Source.Valid() {
		return nil, fmt.Errorf("%w: unknown rate source %q", apperrors.ErrValidation, req.Source)
	}

	week, err := s.resolveWeek(req.WeekStart)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RateEntry, len(req.Rates))
	for i, r := range req.Rates {
		entries[i] = toRateEntry(r)
	}

	result := &domain.BulkUpsertResult{
		Week:    week,
		Source:  req.Source,
		Stored:  []domain.ExchangeRate{},
		Skipped: []domain.SkippedRate{},
	}

	now := time.Now()
	currencies := make(map[string]*domain.Currency)
	lookup := func(code string) (*domain.Currency, error) {
		if c, ok := currencies[code]; ok {
			return c, nil
		}
		c, err := s.activeCurrency(ctx, code)
		if err != nil {
			return nil, err
		}
		currencies[code] = c
		return c, nil
	}

	type pending struct {
		index  int
		record domain.ExchangeRate
	}
	var batch []pending
	positionByPair := make(map[string]int)

	for i, entry := range entries {
		skip := func(reason string) {
			result.Skipped = append(result.Skipped, domain.SkippedRate{
				Index:            i,
				FromCurrencyCode: entry.FromCurrencyCode,
				ToCurrencyCode:   entry.ToCurrencyCode,
				Reason:           reason,
			})
		}

		if err := validateEntry(entry); err != nil {
			skip(err.Error())
			continue
		}
		from, err := lookup(entry.FromCurrencyCode)
		var to *domain.Currency
		if err == nil {
			to, err = lookup(entry.ToCurrencyCode)
		}
		if err != nil {
			if errors.Is(err, apperrors.ErrUnknownCurrency) {
				skip(err.Error())
				continue
			}
			return nil, err
		}

		record := newRateRecord(entry, from, to, req.Source, week, creatorUserID, now)
		pair := entry.FromCurrencyCode + "/" + entry.ToCurrencyCode
		if pos, dup := positionByPair[pair]; dup {
			// last entry for a pair wins, as it would across two requests
			prev := batch[pos]
			result.Skipped = append(result.Skipped, domain.SkippedRate{
				Index:            prev.index,
				FromCurrencyCode: prev.record.FromCurrencyCode,
				ToCurrencyCode:   prev.record.ToCurrencyCode,
				Reason:           fmt.Sprintf("superseded by entry %d", i),
			})
			batch[pos] = pending{index: i, record: record}
			continue
		}
		positionByPair[pair] = len(batch)
		batch = append(batch, pending{index: i, record: record})
	}

	if len(result.Skipped) > 0 {
		s.LogWarn(ctx, "Bulk rate entries skipped",
			slog.Int("submitted", len(entries)),
			slog.Int("skipped", len(result.Skipped)),
			slog.String("week", week.String()))
	}

	if len(batch) == 0 {
		return result, nil
	}

	records := make([]domain.ExchangeRate, len(batch))
	for i, p := range batch {
		records[i] = p.record
	}

	stored, err := s.rateRepo.UpsertRates(ctx, week, records, s.today())
	if err != nil {
		s.LogError(ctx, err, "Failed to bulk upsert exchange rates",
			slog.String("source", string(req.Source)),
			slog.String("week", week.String()))
		return nil, fmt.Errorf("failed to bulk upsert exchange rates: %w", err)
	}

	result.Stored = stored
	result.Count = len(stored)

	s.LogInfo(ctx, "Exchange rate sheet stored",
		slog.Int("count", result.Count),
		slog.String("source", string(req.Source)),
		slog.String("week", week.String()))
	return result, nil
}

func (s *exchangeRateService) ListCurrentRates(ctx context.Context, source *domain.RateSource) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRatesForDate(ctx, source, s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to list current exchange rates: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

func (s *exchangeRateService) ListRateHistory(ctx context.Context, filter domain.RateHistoryFilter) ([]domain.ExchangeRateHistory, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultHistoryLimit
	}
	if filter.FromCurrencyCode != nil {
		code := normalizeCode(*filter.FromCurrencyCode)
		filter.FromCurrencyCode = &code
	}
	if filter.ToCurrencyCode != nil {
		code := normalizeCode(*filter.ToCurrencyCode)
		filter.ToCurrencyCode = &code
	}

	history, err := s.rateRepo.ListRateHistory(ctx, filter, s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rate history: %w", err)
	}
	if history == nil {
		return []domain.ExchangeRateHistory{}, nil
	}
	return history, nil
}

// ResolveRate finds the rate for converting fromCode into toCode on asOf
// (today when nil). A direct record wins over an inverse one. Without a
// requested source, every source is tried in priority order, direct pass
// first. Rates are never triangulated through a third currency.
func (s *exchangeRateService) ResolveRate(ctx context.Context, fromCode, toCode string, source *domain.RateSource, asOf *time.Time) (*domain.ResolvedRate, error) {
	from, to := normalizeCode(fromCode), normalizeCode(toCode)

	date := s.today()
	if asOf != nil {
		date = domain.DateOf(*asOf)
	}

	if from == to {
		return &domain.ResolvedRate{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			Rate:             decimal.NewFromInt(1),
			AsOf:             date,
		}, nil
	}

	sources := s.sourcePriority
	requested := ""
	if source != nil {
		if !source.Valid() {
			return nil, fmt.Errorf("%w: unknown rate source %q", apperrors.ErrValidation, *source)
		}
		sources = []domain.RateSource{*source}
		requested = string(*source)
	}

	var tried []string
	for _, inverse := range []bool{false, true} {
		lookupFrom, lookupTo := from, to
		if inverse {
			lookupFrom, lookupTo = to, from
		}
		for _, src := range sources {
			record, err := s.rateRepo.FindRateForDate(ctx, lookupFrom, lookupTo, src, date)
			if errors.Is(err, apperrors.ErrNotFound) {
				tried = append(tried, fmt.Sprintf("%s->%s@%s", lookupFrom, lookupTo, src))
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to resolve exchange rate: %w", err)
			}

			resolved := &domain.ResolvedRate{
				FromCurrencyCode: from,
				ToCurrencyCode:   to,
				Rate:             record.Rate,
				Source:           record.Source,
				AsOf:             date,
				Inverse:          inverse,
				ExchangeRateID:   record.ExchangeRateID,
			}
			if inverse {
				resolved.Rate = decimal.NewFromInt(1).Div(record.Rate)
			}
			s.LogDebug(ctx, "Exchange rate resolved",
				slog.String("pair", from+"/"+to),
				slog.String("source", string(record.Source)),
				slog.Bool("inverse", inverse),
				slog.String("date", date.Format(domain.DateLayout)))
			return resolved, nil
		}
	}

	return nil, apperrors.NewRateNotFoundError(apperrors.ErrRateNotFound, from, to, requested, date, tried)
}

// Convert multiplies the amount by the rate ResolveRate returns and rounds the
// result to the target currency's decimal places. RateUsed is not rounded.
func (s *exchangeRateService) Convert(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error) {
	var asOf *time.Time
	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		d, err := domain.ParseDate(strings.TrimSpace(*req.Date))
		if err != nil {
			return nil, fmt.Errorf("%w: date: %v", apperrors.ErrValidation, err)
		}
		asOf = &d
	}

	target, err := s.activeCurrency(ctx, normalizeCode(req.ToCurrencyCode))
	if err != nil {
		return nil, err
	}

	resolved, err := s.ResolveRate(ctx, req.FromCurrencyCode, req.ToCurrencyCode, req.Source, asOf)
	if err != nil {
		var notFound *apperrors.RateNotFoundError
		if errors.As(err, &notFound) {
			return nil, apperrors.NewRateNotFoundError(apperrors.ErrConversionNotFound,
				notFound.From, notFound.To, notFound.Source, notFound.AsOf, notFound.Tried)
		}
		return nil, err
	}

	return &domain.ConversionResult{
		OriginalAmount:   req.Amount,
		FromCurrencyCode: resolved.FromCurrencyCode,
		ConvertedAmount:  utils.RoundToCurrency(req.Amount.Mul(resolved.Rate), *target),
		ToCurrencyCode:   resolved.ToCurrencyCode,
		RateUsed:         resolved.Rate,
		Source:           resolved.Source,
		AsOf:             resolved.AsOf,
		Inverse:          resolved.Inverse,
	}, nil
}

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
)

const defaultDecimalPlaces = 2

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates the currency registry service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	now := time.Now()

	decimalPlaces := defaultDecimalPlaces
	if req.DecimalPlaces != nil {
		decimalPlaces = *req.DecimalPlaces
	}

	currency := domain.Currency{
		CurrencyCode:  strings.ToUpper(strings.TrimSpace(req.CurrencyCode)),
		Name:          req.Name,
		Symbol:        req.Symbol,
		DecimalPlaces: decimalPlaces,
		Country:       req.Country,
		IsBase:        req.IsBase,
		IsActive:      true,
		SortOrder:     req.SortOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	saved, err := s.currencyRepo.SaveCurrency(ctx, currency)
	if err != nil {
		s.LogError(ctx, err, "Failed to create currency", slog.String("currency_code", currency.CurrencyCode))
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	if saved.IsBase {
		s.LogInfo(ctx, "Base currency changed", slog.String("currency_code", saved.CurrencyCode))
	}
	return saved, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("currency " + code + " not found")
		}
		return nil, fmt.Errorf("failed to get currency by code: %w", err)
	}
	return currency, nil
}

func (s *currencyService) GetBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindBaseCurrency(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get base currency: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// SetCurrencyActive toggles a currency. The base currency cannot be deactivated.
func (s *currencyService) SetCurrencyActive(ctx context.Context, currencyCode string, active bool, userID string) (*domain.Currency, error) {
	currency, err := s.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, err
	}

	if currency.IsBase && !active {
		return nil, fmt.Errorf("%w: base currency %s cannot be deactivated", apperrors.ErrValidation, currency.CurrencyCode)
	}
	if currency.IsActive == active {
		return currency, nil
	}

	if err := s.currencyRepo.SetCurrencyActive(ctx, currency.CurrencyCode, active, userID); err != nil {
		s.LogError(ctx, err, "Failed to update currency", slog.String("currency_code", currency.CurrencyCode))
		return nil, fmt.Errorf("failed to update currency: %w", err)
	}

	s.LogInfo(ctx, "Currency active flag changed",
		slog.String("currency_code", currency.CurrencyCode),
		slog.Bool("is_active", active))

	currency.IsActive = active
	currency.LastUpdatedAt = time.Now()
	currency.LastUpdatedBy = userID
	return currency, nil
}

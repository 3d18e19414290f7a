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

const defaultPaymentTerms = 30

type portService struct {
	BaseService
	portRepo portsrepo.PortRepositoryFacade
}

// NewPortService creates the port master data service.
func NewPortService(portRepo portsrepo.PortRepositoryFacade) portssvc.PortSvc {
	return &portService{portRepo: portRepo}
}

func (s *portService) ListPorts(ctx context.Context, portType *domain.PortType) ([]domain.Port, error) {
	ports, err := s.portRepo.ListPorts(ctx, portType)
	if err != nil {
		return nil, fmt.Errorf("failed to list ports: %w", err)
	}
	if ports == nil {
		return []domain.Port{}, nil
	}
	return ports, nil
}

func (s *portService) CreatePort(ctx context.Context, req dto.CreatePortRequest) (*domain.Port, error) {
	port := domain.Port{
		Code:     strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:     strings.TrimSpace(req.Name),
		City:     req.City,
		Country:  req.Country,
		PortType: req.PortType,
		Region:   req.Region,
		IsActive: true,
	}
	if req.CountryCode != nil {
		cc := strings.ToUpper(*req.CountryCode)
		port.CountryCode = &cc
	}

	saved, err := s.portRepo.SavePort(ctx, port)
	if err != nil {
		s.LogError(ctx, err, "Failed to create port", slog.String("port_code", port.Code))
		return nil, fmt.Errorf("failed to create port: %w", err)
	}
	return saved, nil
}

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates the customer master data service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvc {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) ListCustomers(ctx context.Context, active *bool) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, active)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer %d not found", customerID))
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	now := time.Now()
	customer := domain.Customer{
		Code:          strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:          strings.TrimSpace(req.Name),
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		Phone:         req.Phone,
		ContactPerson: req.ContactPerson,
		PaymentTerms:  defaultPaymentTerms,
		IsActive:      true,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		customer.Email = &email
	}
	if req.PaymentTerms != nil {
		customer.PaymentTerms = *req.PaymentTerms
	}

	saved, err := s.customerRepo.SaveCustomer(ctx, customer)
	if err != nil {
		s.LogError(ctx, err, "Failed to create customer", slog.String("customer_code", customer.Code))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return saved, nil
}

type masterDataMatcher struct {
	BaseService
	portRepo     portsrepo.PortReader
	customerRepo portsrepo.CustomerReader
}

// NewMasterDataMatcher creates the matcher used to link extracted text to master data.
func NewMasterDataMatcher(portRepo portsrepo.PortReader, customerRepo portsrepo.CustomerReader) portssvc.MasterDataMatcher {
	return &masterDataMatcher{portRepo: portRepo, customerRepo: customerRepo}
}

// MatchPort tries the exact port code, then a name or city substring.
func (m *masterDataMatcher) MatchPort(ctx context.Context, name string) (*domain.Port, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	port, err := m.portRepo.FindPortByCode(ctx, name)
	if err == nil {
		return port, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	port, err = m.portRepo.SearchPort(ctx, name)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return port, err
}

// MatchCustomer tries the exact email, then a name substring.
func (m *masterDataMatcher) MatchCustomer(ctx context.Context, email, name string) (*domain.Customer, error) {
	email = strings.TrimSpace(email)
	if email != "" {
		customer, err := m.customerRepo.FindCustomerByEmail(ctx, email)
		if err == nil {
			return customer, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	customer, err := m.customerRepo.SearchCustomerByName(ctx, name)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return customer, err
}

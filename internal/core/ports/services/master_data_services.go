package services

import (
	"context"

	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/SscSPs/freight_desk/internal/dto"
)

// PortSvc defines port master data operations.
type PortSvc interface {
	ListPorts(ctx context.Context, portType *domain.PortType) ([]domain.Port, error)
	CreatePort(ctx context.Context, req dto.CreatePortRequest) (*domain.Port, error)
}

// CustomerSvc defines customer master data operations.
type CustomerSvc interface {
	ListCustomers(ctx context.Context, active *bool) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)
}

// MasterDataMatcher resolves free-text names from an inquiry to master data rows.
// A nil result with nil error means no match.
type MasterDataMatcher interface {
	MatchPort(ctx context.Context, name string) (*domain.Port, error)
	MatchCustomer(ctx context.Context, email, name string) (*domain.Customer, error)
}

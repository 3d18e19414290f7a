package repositories

import (
	"context"

	"github.com/SscSPs/freight_desk/internal/core/domain"
)

// PortReader defines read operations for port master data.
type PortReader interface {
	// FindPortByCode retrieves an active port by case-insensitive code.
	FindPortByCode(ctx context.Context, code string) (*domain.Port, error)

	// SearchPort retrieves the first active port, by name, whose name or city contains term.
	SearchPort(ctx context.Context, term string) (*domain.Port, error)

	// ListPorts retrieves active ports, optionally of a type (BOTH always matches).
	ListPorts(ctx context.Context, portType *domain.PortType) ([]domain.Port, error)
}

// PortWriter defines write operations for port master data.
type PortWriter interface {
	SavePort(ctx context.Context, port domain.Port) (*domain.Port, error)
}

// PortRepositoryFacade combines port repository interfaces.
type PortRepositoryFacade interface {
	PortReader
	PortWriter
}

// CustomerReader defines read operations for customer master data.
type CustomerReader interface {
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// FindCustomerByEmail retrieves an active customer by case-insensitive email.
	FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)

	// SearchCustomerByName retrieves the first active customer, by name, whose name contains term.
	SearchCustomerByName(ctx context.Context, term string) (*domain.Customer, error)

	ListCustomers(ctx context.Context, active *bool) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer master data.
type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
}

// CustomerRepositoryFacade combines customer repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}

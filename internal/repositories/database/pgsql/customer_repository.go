package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/freight_desk/internal/apperrors"
	"github.com/SscSPs/freight_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/freight_desk/internal/core/ports/repositories"
	"github.com/SscSPs/freight_desk/internal/models"
	"github.com/SscSPs/freight_desk/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `id, code, name, address, city, country, phone, email, contact_person,
	payment_terms, is_active, notes, created_at, created_by, updated_at, updated_by`

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(
		&c.CustomerID,
		&c.Code,
		&c.Name,
		&c.Address,
		&c.City,
		&c.Country,
		&c.Phone,
		&c.Email,
		&c.ContactPerson,
		&c.PaymentTerms,
		&c.IsActive,
		&c.Notes,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

func (r *PgxCustomerRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Customer, error) {
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	return r.findOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1;`, customerID)
}

// FindCustomerByEmail matches the lower-cased email of an active customer.
func (r *PgxCustomerRepository) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.findOne(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE LOWER(email) = $1 AND is_active ORDER BY id LIMIT 1;`,
		strings.ToLower(strings.TrimSpace(email)),
	)
}

// SearchCustomerByName retrieves the first active customer by name containing term.
func (r *PgxCustomerRepository) SearchCustomerByName(ctx context.Context, term string) (*domain.Customer, error) {
	return r.findOne(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE is_active AND name ILIKE $1 ORDER BY name LIMIT 1;`,
		likeContains(strings.TrimSpace(term)),
	)
}

// ListCustomers retrieves customers ordered by name, optionally filtered on is_active.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, active *bool) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	var args []any
	if active != nil {
		args = append(args, *active)
		query += ` WHERE is_active = $1`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Customer, error) {
		m, err := scanCustomer(row)
		if err != nil {
			return domain.Customer{}, err
		}
		return mapping.ToDomainCustomer(m), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan customers: %w", err)
	}
	return customers, nil
}

// SaveCustomer inserts a customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	m := mapping.ToModelCustomer(customer)
	saved, err := scanCustomer(r.Pool.QueryRow(ctx, `
		INSERT INTO customers (code, name, address, city, country, phone, email, contact_person,
			payment_terms, is_active, notes, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING `+customerColumns,
		m.Code, m.Name, m.Address, m.City, m.Country, m.Phone, m.Email, m.ContactPerson,
		m.PaymentTerms, m.IsActive, m.Notes, m.CreatedBy,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrDuplicate, m.Code)
		}
		return nil, fmt.Errorf("failed to save customer %s: %w", m.Code, err)
	}
	result := mapping.ToDomainCustomer(saved)
	return &result, nil
}

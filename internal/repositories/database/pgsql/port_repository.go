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

const portColumns = `id, code, name, city, country, country_code, port_type, region, is_active`

type PgxPortRepository struct {
	BaseRepository
}

func newPgxPortRepository(pool *pgxpool.Pool) portsrepo.PortRepositoryFacade {
	return &PgxPortRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PortRepositoryFacade = (*PgxPortRepository)(nil)

func scanPort(row pgx.Row) (models.Port, error) {
	var p models.Port
	err := row.Scan(
		&p.PortID,
		&p.Code,
		&p.Name,
		&p.City,
		&p.Country,
		&p.CountryCode,
		&p.PortType,
		&p.Region,
		&p.IsActive,
	)
	return p, err
}

func (r *PgxPortRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Port, error) {
	m, err := scanPort(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query port: %w", err)
	}
	port := mapping.ToDomainPort(m)
	return &port, nil
}

// FindPortByCode retrieves an active port by its code, compared upper-cased.
func (r *PgxPortRepository) FindPortByCode(ctx context.Context, code string) (*domain.Port, error) {
	return r.findOne(ctx,
		`SELECT `+portColumns+` FROM ports WHERE code = $1 AND is_active LIMIT 1;`,
		strings.ToUpper(strings.TrimSpace(code)),
	)
}

// SearchPort retrieves the first active port by name whose name or city contains term.
func (r *PgxPortRepository) SearchPort(ctx context.Context, term string) (*domain.Port, error) {
	return r.findOne(ctx,
		`SELECT `+portColumns+` FROM ports
		 WHERE is_active AND (name ILIKE $1 OR city ILIKE $1)
		 ORDER BY name LIMIT 1;`,
		likeContains(strings.TrimSpace(term)),
	)
}

// ListPorts retrieves active ports. A type filter also includes BOTH ports.
func (r *PgxPortRepository) ListPorts(ctx context.Context, portType *domain.PortType) ([]domain.Port, error) {
	query := `SELECT ` + portColumns + ` FROM ports WHERE is_active`
	var args []any
	if portType != nil {
		args = append(args, string(*portType))
		query += ` AND (port_type = $1 OR port_type = 'BOTH')`
	}
	query += ` ORDER BY country, name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ports: %w", err)
	}
	defer rows.Close()

	ports, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Port, error) {
		m, err := scanPort(row)
		if err != nil {
			return domain.Port{}, err
		}
		return mapping.ToDomainPort(m), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ports: %w", err)
	}
	return ports, nil
}

// SavePort inserts a port.
func (r *PgxPortRepository) SavePort(ctx context.Context, port domain.Port) (*domain.Port, error) {
	m := mapping.ToModelPort(port)
	saved, err := scanPort(r.Pool.QueryRow(ctx, `
		INSERT INTO ports (code, name, city, country, country_code, port_type, region, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+portColumns,
		m.Code, m.Name, m.City, m.Country, m.CountryCode, m.PortType, m.Region, m.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: port %s", apperrors.ErrDuplicate, m.Code)
		}
		return nil, fmt.Errorf("failed to save port %s: %w", m.Code, err)
	}
	result := mapping.ToDomainPort(saved)
	return &result, nil
}

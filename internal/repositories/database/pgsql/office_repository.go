package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/swiftcargo/logistics_app/internal/apperrors"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	portsrepo "github.com/swiftcargo/logistics_app/internal/core/ports/repositories"
)

type PgxOfficeRepository struct {
	BaseRepository
}

func newPgxOfficeRepository(db *pgxpool.Pool) portsrepo.OfficeRepositoryFacade {
	return &PgxOfficeRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.OfficeRepositoryFacade = (*PgxOfficeRepository)(nil)

const officeColumns = `office_id, company_id, name, address, phone, email, city, country,
		created_at, created_by, last_updated_at, last_updated_by`

func scanOffice(row pgx.Row) (*domain.Office, error) {
	var o domain.Office
	err := row.Scan(
		&o.OfficeID,
		&o.CompanyID,
		&o.Name,
		&o.Address,
		&o.Phone,
		&o.Email,
		&o.City,
		&o.Country,
		&o.CreatedAt,
		&o.CreatedBy,
		&o.LastUpdatedAt,
		&o.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan office: %w", err)
	}
	return &o, nil
}

func (r *PgxOfficeRepository) SaveOffice(ctx context.Context, office domain.Office) error {
	query := `
		INSERT INTO offices (office_id, company_id, name, address, phone, email, city, country,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		office.OfficeID,
		office.CompanyID,
		office.Name,
		office.Address,
		office.Phone,
		office.Email,
		office.City,
		office.Country,
		office.CreatedAt,
		office.CreatedBy,
		office.LastUpdatedAt,
		office.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *PgxOfficeRepository) FindOfficeByID(ctx context.Context, officeID string) (*domain.Office, error) {
	query := `SELECT ` + officeColumns + ` FROM offices WHERE office_id = $1;`
	return scanOffice(r.Pool.QueryRow(ctx, query, officeID))
}

func (r *PgxOfficeRepository) FindOffices(ctx context.Context, companyID *string) ([]domain.Office, error) {
	query := `SELECT ` + officeColumns + ` FROM offices`
	args := []any{}
	if companyID != nil {
		query += ` WHERE company_id = $1`
		args = append(args, *companyID)
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query offices: %w", err)
	}
	defer rows.Close()

	offices := []domain.Office{}
	for rows.Next() {
		o, err := scanOffice(rows)
		if err != nil {
			return nil, err
		}
		offices = append(offices, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate offices: %w", err)
	}
	return offices, nil
}

func (r *PgxOfficeRepository) UpdateOffice(ctx context.Context, office domain.Office) error {
	query := `
		UPDATE offices
		SET name = $2, address = $3, phone = $4, email = $5, city = $6, country = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE office_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		office.OfficeID,
		office.Name,
		office.Address,
		office.Phone,
		office.Email,
		office.City,
		office.Country,
		office.LastUpdatedAt,
		office.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOfficeRepository) DeleteOffice(ctx context.Context, officeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM offices WHERE office_id = $1;`, officeID)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

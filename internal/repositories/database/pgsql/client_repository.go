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

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `client_id, user_id, company_name, first_name, last_name, phone,
		address, city, country, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ClientID,
		&c.UserID,
		&c.CompanyName,
		&c.FirstName,
		&c.LastName,
		&c.Phone,
		&c.Address,
		&c.City,
		&c.Country,
		&c.IsActive,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan client: %w", err)
	}
	return &c, nil
}

// insertClient writes a client row through any executor so registration can
// reuse it inside the user transaction.
func insertClient(ctx context.Context, db execer, client domain.Client) error {
	query := `
		INSERT INTO clients (client_id, user_id, company_name, first_name, last_name, phone,
			address, city, country, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := db.Exec(ctx, query,
		client.ClientID,
		client.UserID,
		client.CompanyName,
		client.FirstName,
		client.LastName,
		client.Phone,
		client.Address,
		client.City,
		client.Country,
		client.IsActive,
		client.CreatedAt,
		client.CreatedBy,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	return err
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	if err := insertClient(ctx, r.Pool, client); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	return scanClient(r.Pool.QueryRow(ctx, query, clientID))
}

func (r *PgxClientRepository) FindClientByUserID(ctx context.Context, userID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE user_id = $1;`
	return scanClient(r.Pool.QueryRow(ctx, query, userID))
}

// FindClients lists client profiles, excluding the one owned by
// excludeUserID when it is non-empty.
func (r *PgxClientRepository) FindClients(ctx context.Context, excludeUserID string) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	args := []any{}
	if excludeUserID != "" {
		query += ` WHERE user_id <> $1`
		args = append(args, excludeUserID)
	}
	query += ` ORDER BY last_name, first_name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}
	return clients, nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clients
		SET company_name = $2, first_name = $3, last_name = $4, phone = $5,
			address = $6, city = $7, country = $8, is_active = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE client_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		client.ClientID,
		client.CompanyName,
		client.FirstName,
		client.LastName,
		client.Phone,
		client.Address,
		client.City,
		client.Country,
		client.IsActive,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

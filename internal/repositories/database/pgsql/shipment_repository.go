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

type PgxShipmentRepository struct {
	BaseRepository
}

func newPgxShipmentRepository(db *pgxpool.Pool) portsrepo.ShipmentRepositoryFacade {
	return &PgxShipmentRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ShipmentRepositoryFacade = (*PgxShipmentRepository)(nil)

const shipmentColumns = `shipment_id, sender_id, receiver_id, registered_by_employee_id,
		tracking_number, weight, dimensions, description, price,
		sent_date, received_date, status, origin_address, destination_address,
		created_at, created_by, last_updated_at, last_updated_by`

func scanShipment(row pgx.Row) (*domain.Shipment, error) {
	var s domain.Shipment
	err := row.Scan(
		&s.ShipmentID,
		&s.SenderID,
		&s.ReceiverID,
		&s.RegisteredByEmployeeID,
		&s.TrackingNumber,
		&s.Weight,
		&s.Dimensions,
		&s.Description,
		&s.Price,
		&s.SentDate,
		&s.ReceivedDate,
		&s.Status,
		&s.OriginAddress,
		&s.DestinationAddress,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan shipment: %w", err)
	}
	return &s, nil
}

func (r *PgxShipmentRepository) queryShipments(ctx context.Context, query string, args ...any) ([]domain.Shipment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shipments: %w", err)
	}
	defer rows.Close()

	shipments := []domain.Shipment{}
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shipments: %w", err)
	}
	return shipments, nil
}

func (r *PgxShipmentRepository) SaveShipment(ctx context.Context, shipment domain.Shipment) error {
	query := `
		INSERT INTO shipments (shipment_id, sender_id, receiver_id, registered_by_employee_id,
			tracking_number, weight, dimensions, description, price,
			sent_date, received_date, status, origin_address, destination_address,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		shipment.ShipmentID,
		shipment.SenderID,
		shipment.ReceiverID,
		shipment.RegisteredByEmployeeID,
		shipment.TrackingNumber,
		shipment.Weight,
		shipment.Dimensions,
		shipment.Description,
		shipment.Price,
		shipment.SentDate,
		shipment.ReceivedDate,
		shipment.Status,
		shipment.OriginAddress,
		shipment.DestinationAddress,
		shipment.CreatedAt,
		shipment.CreatedBy,
		shipment.LastUpdatedAt,
		shipment.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *PgxShipmentRepository) FindShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE shipment_id = $1;`
	return scanShipment(r.Pool.QueryRow(ctx, query, shipmentID))
}

func (r *PgxShipmentRepository) FindShipmentByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE tracking_number = $1;`
	return scanShipment(r.Pool.QueryRow(ctx, query, trackingNumber))
}

func (r *PgxShipmentRepository) FindShipments(ctx context.Context) ([]domain.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments ORDER BY sent_date DESC;`
	return r.queryShipments(ctx, query)
}

// FindShipmentsByClient lists shipments where the client is sender or receiver.
func (r *PgxShipmentRepository) FindShipmentsByClient(ctx context.Context, clientID string) ([]domain.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments
		WHERE sender_id = $1 OR receiver_id = $1 ORDER BY sent_date DESC;`
	return r.queryShipments(ctx, query, clientID)
}

func (r *PgxShipmentRepository) UpdateShipment(ctx context.Context, shipment domain.Shipment) error {
	query := `
		UPDATE shipments
		SET sender_id = $2, receiver_id = $3, registered_by_employee_id = $4,
			tracking_number = $5, weight = $6, dimensions = $7, description = $8, price = $9,
			sent_date = $10, received_date = $11, status = $12,
			origin_address = $13, destination_address = $14,
			last_updated_at = $15, last_updated_by = $16
		WHERE shipment_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		shipment.ShipmentID,
		shipment.SenderID,
		shipment.ReceiverID,
		shipment.RegisteredByEmployeeID,
		shipment.TrackingNumber,
		shipment.Weight,
		shipment.Dimensions,
		shipment.Description,
		shipment.Price,
		shipment.SentDate,
		shipment.ReceivedDate,
		shipment.Status,
		shipment.OriginAddress,
		shipment.DestinationAddress,
		shipment.LastUpdatedAt,
		shipment.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxShipmentRepository) DeleteShipment(ctx context.Context, shipmentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM shipments WHERE shipment_id = $1;`, shipmentID)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

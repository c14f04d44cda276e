package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	portsrepo "github.com/swiftcargo/logistics_app/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func (r *reportingRepository) queryShipments(ctx context.Context, query string, args ...any) ([]domain.Shipment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying report shipments: %w", err)
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
		return nil, fmt.Errorf("error iterating report shipments: %w", err)
	}
	return shipments, nil
}

func (r *reportingRepository) FindShipmentsByEmployee(ctx context.Context, employeeID string) ([]domain.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments
		WHERE registered_by_employee_id = $1 ORDER BY sent_date DESC;`
	return r.queryShipments(ctx, query, employeeID)
}

func (r *reportingRepository) FindShipmentsBySender(ctx context.Context, clientID string) ([]domain.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments
		WHERE sender_id = $1 ORDER BY sent_date DESC;`
	return r.queryShipments(ctx, query, clientID)
}

func (r *reportingRepository) FindShipmentsByReceiver(ctx context.Context, clientID string) ([]domain.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments
		WHERE receiver_id = $1 ORDER BY sent_date DESC;`
	return r.queryShipments(ctx, query, clientID)
}

func (r *reportingRepository) FindUndeliveredShipments(ctx context.Context) ([]domain.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments
		WHERE status NOT IN ($1, $2) AND received_date IS NULL
		ORDER BY sent_date DESC;`
	return r.queryShipments(ctx, query, domain.StatusDelivered, domain.StatusCancelled)
}

// GetRevenueData sums the price of delivered shipments with sent_date inside
// the inclusive bounds. COALESCE keeps the total at zero for empty windows.
func (r *reportingRepository) GetRevenueData(ctx context.Context, start, end *time.Time) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(price), 0) AS total_revenue, COUNT(*) AS shipment_count
		FROM shipments
		WHERE status = $1
			AND ($2::timestamptz IS NULL OR sent_date >= $2)
			AND ($3::timestamptz IS NULL OR sent_date <= $3)
	`

	var total decimal.Decimal
	var count int
	err := r.Pool.QueryRow(ctx, query, domain.StatusDelivered, start, end).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("error querying revenue data: %w", err)
	}
	return total, count, nil
}

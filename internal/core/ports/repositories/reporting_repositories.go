package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation queries behind the
// shipment reports.
type ReportingRepository interface {
	// FindShipmentsByEmployee lists shipments registered by the given employee.
	FindShipmentsByEmployee(ctx context.Context, employeeID string) ([]domain.Shipment, error)

	// FindShipmentsBySender lists shipments sent by the given client.
	FindShipmentsBySender(ctx context.Context, clientID string) ([]domain.Shipment, error)

	// FindShipmentsByReceiver lists shipments received by the given client.
	FindShipmentsByReceiver(ctx context.Context, clientID string) ([]domain.Shipment, error)

	// FindUndeliveredShipments lists shipments that are neither delivered nor
	// cancelled and have no received date.
	FindUndeliveredShipments(ctx context.Context) ([]domain.Shipment, error)

	// GetRevenueData sums the price of DELIVERED shipments whose sent_date
	// falls inside the inclusive [start, end] bounds; nil bounds are open.
	GetRevenueData(ctx context.Context, start, end *time.Time) (decimal.Decimal, int, error)
}

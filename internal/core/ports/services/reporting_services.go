package services

import (
	"context"
	"time"

	"github.com/swiftcargo/logistics_app/internal/core/authz"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
)

// ReportingService defines operations for generating shipment reports
type ReportingService interface {
	// AllShipments lists every shipment. Employee-only.
	AllShipments(ctx context.Context, actor authz.Actor) ([]domain.Shipment, error)

	// ShipmentsByEmployee lists shipments registered by an employee. Employee-only.
	ShipmentsByEmployee(ctx context.Context, actor authz.Actor, employeeID string) ([]domain.Shipment, error)

	// ShipmentsBySender lists shipments sent by a client. A client actor may
	// only query its own profile; the client must exist before the ownership
	// check is applied.
	ShipmentsBySender(ctx context.Context, actor authz.Actor, clientID string) ([]domain.Shipment, error)

	// ShipmentsByReceiver lists shipments received by a client, with the same
	// access rules as ShipmentsBySender.
	ShipmentsByReceiver(ctx context.Context, actor authz.Actor, clientID string) ([]domain.Shipment, error)

	// UndeliveredShipments lists shipments still in flight. Employee-only.
	UndeliveredShipments(ctx context.Context, actor authz.Actor) ([]domain.Shipment, error)

	// RevenueByPeriod sums the price of delivered shipments sent within the
	// inclusive period bounds. Employee-only.
	RevenueByPeriod(ctx context.Context, actor authz.Actor, start, end *time.Time) (*domain.RevenueReport, error)
}

package repositories

import (
	"context"

	"github.com/swiftcargo/logistics_app/internal/core/domain"
)

// ShipmentReader defines read operations for shipments.
type ShipmentReader interface {
	FindShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error)

	// FindShipments lists every shipment, newest first.
	FindShipments(ctx context.Context) ([]domain.Shipment, error)

	// FindShipmentsByClient lists shipments where the client is sender or receiver.
	FindShipmentsByClient(ctx context.Context, clientID string) ([]domain.Shipment, error)

	FindShipmentByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
}

// ShipmentWriter defines write operations for shipments.
type ShipmentWriter interface {
	SaveShipment(ctx context.Context, shipment domain.Shipment) error
	UpdateShipment(ctx context.Context, shipment domain.Shipment) error
	DeleteShipment(ctx context.Context, shipmentID string) error
}

// ShipmentRepositoryFacade combines all shipment-related repository interfaces.
type ShipmentRepositoryFacade interface {
	ShipmentReader
	ShipmentWriter
}

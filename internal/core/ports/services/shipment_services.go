package services

import (
	"context"

	"github.com/swiftcargo/logistics_app/internal/core/authz"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	"github.com/swiftcargo/logistics_app/internal/dto"
)

// ShipmentReaderSvc defines read operations for shipments
type ShipmentReaderSvc interface {
	// GetShipmentByID retrieves a shipment by ID, enforcing sender/receiver
	// visibility for client actors.
	GetShipmentByID(ctx context.Context, actor authz.Actor, shipmentID string) (*domain.Shipment, error)

	// ListShipments retrieves every shipment visible to the actor: all of them
	// for an employee, only own for a client.
	ListShipments(ctx context.Context, actor authz.Actor) ([]domain.Shipment, error)
}

// ShipmentWriterSvc defines write operations for shipments
type ShipmentWriterSvc interface {
	// CreateShipment registers a new shipment in status PENDING. A client
	// actor must be the sender; the registering employee is then auto-assigned.
	CreateShipment(ctx context.Context, actor authz.Actor, req dto.CreateShipmentRequest) (*domain.Shipment, error)

	// UpdateShipmentStatus transitions a shipment's status. Employee-only.
	// A DELIVERED transition also sets the received date.
	UpdateShipmentStatus(ctx context.Context, actor authz.Actor, shipmentID string, req dto.UpdateShipmentStatusRequest) (*domain.Shipment, error)

	// UpdateShipmentFields updates the editable shipment fields. Employee-only.
	UpdateShipmentFields(ctx context.Context, actor authz.Actor, shipmentID string, req dto.UpdateShipmentFieldsRequest) (*domain.Shipment, error)

	// DeleteShipment hard-deletes a shipment. Employee-only.
	DeleteShipment(ctx context.Context, actor authz.Actor, shipmentID string) error
}

// ShipmentSvcFacade combines all shipment-related service interfaces
type ShipmentSvcFacade interface {
	ShipmentReaderSvc
	ShipmentWriterSvc
}

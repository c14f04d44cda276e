package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/swiftcargo/logistics_app/internal/apperrors"
	"github.com/swiftcargo/logistics_app/internal/core/authz"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	portsrepo "github.com/swiftcargo/logistics_app/internal/core/ports/repositories"
	portssvc "github.com/swiftcargo/logistics_app/internal/core/ports/services"
	"github.com/swiftcargo/logistics_app/internal/dto"
)

// shipmentService implements the ShipmentSvcFacade interface
type shipmentService struct {
	BaseService
	shipmentRepo portsrepo.ShipmentRepositoryFacade
	clientRepo   portsrepo.ClientReader
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewShipmentService creates a new shipment service with the provided dependencies
func NewShipmentService(
	shipmentRepo portsrepo.ShipmentRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
) portssvc.ShipmentSvcFacade {
	return &shipmentService{
		shipmentRepo: shipmentRepo,
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.ShipmentSvcFacade = (*shipmentService)(nil)

// resolveClient fills in the actor's client profile ID for ownership checks.
// Employees pass through untouched.
func (s *shipmentService) resolveClient(ctx context.Context, actor authz.Actor) (authz.Actor, error) {
	if actor.Role != domain.RoleClient || actor.ClientID != "" {
		return actor, nil
	}
	client, err := s.clientRepo.FindClientByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// A client user without a profile cannot own any shipment.
			return actor, apperrors.ErrForbidden
		}
		return actor, err
	}
	actor.ClientID = client.ClientID
	return actor, nil
}

func (s *shipmentService) GetShipmentByID(ctx context.Context, actor authz.Actor, shipmentID string) (*domain.Shipment, error) {
	shipment, err := s.shipmentRepo.FindShipmentByID(ctx, shipmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find shipment", slog.String("shipment_id", shipmentID))
		}
		return nil, err
	}

	actor, err = s.resolveClient(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(actor, authz.ActionRead, authz.Shipment(*shipment)) {
		return nil, apperrors.ErrForbidden
	}
	return shipment, nil
}

// ListShipments returns every shipment for employees and only the actor's own
// (as sender or receiver) for clients.
func (s *shipmentService) ListShipments(ctx context.Context, actor authz.Actor) ([]domain.Shipment, error) {
	if actor.Role == domain.RoleEmployee {
		shipments, err := s.shipmentRepo.FindShipments(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to list shipments")
			return nil, err
		}
		return shipments, nil
	}

	actor, err := s.resolveClient(ctx, actor)
	if err != nil {
		return nil, err
	}
	shipments, err := s.shipmentRepo.FindShipmentsByClient(ctx, actor.ClientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list client shipments", slog.String("client_id", actor.ClientID))
		return nil, err
	}
	return shipments, nil
}

// CreateShipment registers a new shipment in status PENDING. A client actor
// must be the sender; the registering employee is then picked automatically
// since clients cannot register shipments on their own behalf.
func (s *shipmentService) CreateShipment(ctx context.Context, actor authz.Actor, req dto.CreateShipmentRequest) (*domain.Shipment, error) {
	actor, err := s.resolveClient(ctx, actor)
	if err != nil {
		return nil, err
	}

	candidate := domain.Shipment{SenderID: req.SenderID, ReceiverID: req.ReceiverID}
	if !authz.Allows(actor, authz.ActionCreate, authz.Shipment(candidate)) {
		return nil, apperrors.ErrForbidden
	}

	if req.Weight < 0 || req.Price.IsNegative() {
		return nil, apperrors.ErrValidation
	}

	// Sender and receiver must be existing clients.
	if _, err := s.clientRepo.FindClientByID(ctx, req.SenderID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrValidation
		}
		return nil, err
	}
	if _, err := s.clientRepo.FindClientByID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrValidation
		}
		return nil, err
	}

	// Pre-check tracking uniqueness; the unique constraint stays the
	// authoritative guard against concurrent inserts.
	if _, err := s.shipmentRepo.FindShipmentByTrackingNumber(ctx, req.TrackingNumber); err == nil {
		return nil, apperrors.ErrDuplicate
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	registrantID, err := s.resolveRegistrant(ctx, actor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sentDate := now
	if req.SentDate != nil {
		sentDate = *req.SentDate
	}

	shipment := domain.Shipment{
		ShipmentID:             uuid.NewString(),
		SenderID:               req.SenderID,
		ReceiverID:             req.ReceiverID,
		RegisteredByEmployeeID: registrantID,
		TrackingNumber:         req.TrackingNumber,
		Weight:                 req.Weight,
		Dimensions:             req.Dimensions,
		Description:            req.Description,
		Price:                  req.Price,
		SentDate:               sentDate,
		Status:                 domain.StatusPending,
		OriginAddress:          req.OriginAddress,
		DestinationAddress:     req.DestinationAddress,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.shipmentRepo.SaveShipment(ctx, shipment); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save shipment", slog.String("shipment_id", shipment.ShipmentID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Shipment created",
		slog.String("shipment_id", shipment.ShipmentID),
		slog.String("tracking_number", shipment.TrackingNumber))
	return &shipment, nil
}

// resolveRegistrant returns the employee registering the shipment: the
// actor's own profile for employees, or the first active employee by hire
// date for client-initiated shipments. Validation fails when none exists.
func (s *shipmentService) resolveRegistrant(ctx context.Context, actor authz.Actor) (string, error) {
	if actor.Role == domain.RoleEmployee {
		employee, err := s.employeeRepo.FindEmployeeByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return "", apperrors.ErrValidation
			}
			return "", err
		}
		return employee.EmployeeID, nil
	}

	employee, err := s.employeeRepo.FindFirstActiveEmployee(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrValidation
		}
		return "", err
	}
	return employee.EmployeeID, nil
}

// UpdateShipmentStatus transitions a shipment's status. Transitions are not
// guarded against regression; a DELIVERED transition sets the received date
// and other transitions leave any previously set received date in place.
func (s *shipmentService) UpdateShipmentStatus(ctx context.Context, actor authz.Actor, shipmentID string, req dto.UpdateShipmentStatusRequest) (*domain.Shipment, error) {
	shipment, err := s.shipmentRepo.FindShipmentByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(actor, authz.ActionUpdate, authz.Shipment(*shipment)) {
		return nil, apperrors.ErrForbidden
	}

	status := domain.ShipmentStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrValidation
	}

	shipment.Status = status
	if status == domain.StatusDelivered {
		receivedDate := time.Now()
		if req.ReceivedDate != nil {
			receivedDate = *req.ReceivedDate
		}
		shipment.ReceivedDate = &receivedDate
	}
	shipment.LastUpdatedAt = time.Now()
	shipment.LastUpdatedBy = actor.UserID

	if err := s.shipmentRepo.UpdateShipment(ctx, *shipment); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update shipment status", slog.String("shipment_id", shipmentID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Shipment status updated",
		slog.String("shipment_id", shipmentID),
		slog.String("status", string(status)))
	return shipment, nil
}

// UpdateShipmentFields updates the editable fields of a shipment.
func (s *shipmentService) UpdateShipmentFields(ctx context.Context, actor authz.Actor, shipmentID string, req dto.UpdateShipmentFieldsRequest) (*domain.Shipment, error) {
	shipment, err := s.shipmentRepo.FindShipmentByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(actor, authz.ActionUpdate, authz.Shipment(*shipment)) {
		return nil, apperrors.ErrForbidden
	}

	if req.Weight != nil {
		if *req.Weight < 0 {
			return nil, apperrors.ErrValidation
		}
		shipment.Weight = *req.Weight
	}
	if req.Dimensions != nil {
		shipment.Dimensions = *req.Dimensions
	}
	if req.Description != nil {
		shipment.Description = *req.Description
	}
	shipment.LastUpdatedAt = time.Now()
	shipment.LastUpdatedBy = actor.UserID

	if err := s.shipmentRepo.UpdateShipment(ctx, *shipment); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update shipment fields", slog.String("shipment_id", shipmentID))
		}
		return nil, err
	}

	return shipment, nil
}

func (s *shipmentService) DeleteShipment(ctx context.Context, actor authz.Actor, shipmentID string) error {
	shipment, err := s.shipmentRepo.FindShipmentByID(ctx, shipmentID)
	if err != nil {
		return err
	}
	if !authz.Allows(actor, authz.ActionDelete, authz.Shipment(*shipment)) {
		return apperrors.ErrForbidden
	}

	if err := s.shipmentRepo.DeleteShipment(ctx, shipmentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete shipment", slog.String("shipment_id", shipmentID))
		}
		return err
	}

	s.LogInfo(ctx, "Shipment deleted", slog.String("shipment_id", shipmentID))
	return nil
}

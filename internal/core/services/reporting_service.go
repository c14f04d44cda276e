package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/swiftcargo/logistics_app/internal/apperrors"
	"github.com/swiftcargo/logistics_app/internal/core/authz"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	portsrepo "github.com/swiftcargo/logistics_app/internal/core/ports/repositories"
	portssvc "github.com/swiftcargo/logistics_app/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	shipmentRepo  portsrepo.ShipmentReader
	clientRepo    portsrepo.ClientReader
	employeeRepo  portsrepo.EmployeeRepositoryFacade
}

// NewReportingService creates a new reporting service with the provided dependencies
func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	shipmentRepo portsrepo.ShipmentReader,
	clientRepo portsrepo.ClientReader,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: reportingRepo,
		shipmentRepo:  shipmentRepo,
		clientRepo:    clientRepo,
		employeeRepo:  employeeRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) AllShipments(ctx context.Context, actor authz.Actor) ([]domain.Shipment, error) {
	if !authz.Allows(actor, authz.ActionReport, authz.Shipment(domain.Shipment{})) {
		return nil, apperrors.ErrForbidden
	}

	shipments, err := s.shipmentRepo.FindShipments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to run all-shipments report")
		return nil, err
	}
	return shipments, nil
}

func (s *reportingService) ShipmentsByEmployee(ctx context.Context, actor authz.Actor, employeeID string) ([]domain.Shipment, error) {
	if !authz.Allows(actor, authz.ActionReport, authz.Shipment(domain.Shipment{})) {
		return nil, apperrors.ErrForbidden
	}

	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return nil, err
	}

	shipments, err := s.reportingRepo.FindShipmentsByEmployee(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to run by-employee report", slog.String("employee_id", employeeID))
		return nil, err
	}
	return shipments, nil
}

// ShipmentsBySender reports shipments sent by a client. The existence check
// runs before the ownership check, so an unknown client ID reads as not found
// even for a caller who would not be allowed to see it.
func (s *reportingService) ShipmentsBySender(ctx context.Context, actor authz.Actor, clientID string) ([]domain.Shipment, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(actor, authz.ActionReport, authz.Client(*client)) {
		return nil, apperrors.ErrForbidden
	}

	shipments, err := s.reportingRepo.FindShipmentsBySender(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to run by-sender report", slog.String("client_id", clientID))
		return nil, err
	}
	return shipments, nil
}

// ShipmentsByReceiver reports shipments received by a client, with the same
// check order as ShipmentsBySender.
func (s *reportingService) ShipmentsByReceiver(ctx context.Context, actor authz.Actor, clientID string) ([]domain.Shipment, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(actor, authz.ActionReport, authz.Client(*client)) {
		return nil, apperrors.ErrForbidden
	}

	shipments, err := s.reportingRepo.FindShipmentsByReceiver(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to run by-receiver report", slog.String("client_id", clientID))
		return nil, err
	}
	return shipments, nil
}

func (s *reportingService) UndeliveredShipments(ctx context.Context, actor authz.Actor) ([]domain.Shipment, error) {
	if !authz.Allows(actor, authz.ActionReport, authz.Shipment(domain.Shipment{})) {
		return nil, apperrors.ErrForbidden
	}

	shipments, err := s.reportingRepo.FindUndeliveredShipments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to run undelivered report")
		return nil, err
	}
	return shipments, nil
}

// RevenueByPeriod sums delivered-shipment prices over the inclusive period.
// An end bound before the start bound is rejected.
func (s *reportingService) RevenueByPeriod(ctx context.Context, actor authz.Actor, start, end *time.Time) (*domain.RevenueReport, error) {
	if !authz.Allows(actor, authz.ActionReport, authz.Shipment(domain.Shipment{})) {
		return nil, apperrors.ErrForbidden
	}

	if start != nil && end != nil && end.Before(*start) {
		return nil, apperrors.ErrValidation
	}

	total, count, err := s.reportingRepo.GetRevenueData(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to run revenue report")
		return nil, err
	}

	return &domain.RevenueReport{
		StartDate:     start,
		EndDate:       end,
		TotalRevenue:  total,
		ShipmentCount: count,
	}, nil
}

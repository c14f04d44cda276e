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

// officeService implements the OfficeSvcFacade interface
type officeService struct {
	BaseService
	officeRepo  portsrepo.OfficeRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewOfficeService creates a new office service with the provided dependencies
func NewOfficeService(officeRepo portsrepo.OfficeRepositoryFacade, companyRepo portsrepo.CompanyRepositoryFacade) portssvc.OfficeSvcFacade {
	return &officeService{officeRepo: officeRepo, companyRepo: companyRepo}
}

var _ portssvc.OfficeSvcFacade = (*officeService)(nil)

// GetOfficeByID is readable by any authenticated actor.
func (s *officeService) GetOfficeByID(ctx context.Context, actor authz.Actor, officeID string) (*domain.Office, error) {
	office, err := s.officeRepo.FindOfficeByID(ctx, officeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find office", slog.String("office_id", officeID))
		}
		return nil, err
	}
	return office, nil
}

func (s *officeService) ListOffices(ctx context.Context, actor authz.Actor, companyID *string) ([]domain.Office, error) {
	if !authz.Allows(actor, authz.ActionRead, authz.Office()) {
		return nil, apperrors.ErrForbidden
	}

	offices, err := s.officeRepo.FindOffices(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list offices")
		return nil, err
	}
	return offices, nil
}

// CreateOffice verifies the parent company exists before inserting, so a bad
// company_id reads as not found rather than a bare constraint failure.
func (s *officeService) CreateOffice(ctx context.Context, actor authz.Actor, req dto.CreateOfficeRequest) (*domain.Office, error) {
	if !authz.Allows(actor, authz.ActionCreate, authz.Office()) {
		return nil, apperrors.ErrForbidden
	}

	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	now := time.Now()
	office := domain.Office{
		OfficeID:  uuid.NewString(),
		CompanyID: req.CompanyID,
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		City:      req.City,
		Country:   req.Country,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.officeRepo.SaveOffice(ctx, office); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save office", slog.String("office_id", office.OfficeID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Office created", slog.String("office_id", office.OfficeID))
	return &office, nil
}

func (s *officeService) UpdateOffice(ctx context.Context, actor authz.Actor, officeID string, req dto.UpdateOfficeRequest) (*domain.Office, error) {
	office, err := s.officeRepo.FindOfficeByID(ctx, officeID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(actor, authz.ActionUpdate, authz.Office()) {
		return nil, apperrors.ErrForbidden
	}

	if req.Name != nil {
		office.Name = *req.Name
	}
	if req.Address != nil {
		office.Address = *req.Address
	}
	if req.Phone != nil {
		office.Phone = *req.Phone
	}
	if req.Email != nil {
		office.Email = *req.Email
	}
	if req.City != nil {
		office.City = *req.City
	}
	if req.Country != nil {
		office.Country = *req.Country
	}
	office.LastUpdatedAt = time.Now()
	office.LastUpdatedBy = actor.UserID

	if err := s.officeRepo.UpdateOffice(ctx, *office); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update office", slog.String("office_id", officeID))
		}
		return nil, err
	}

	return office, nil
}

func (s *officeService) DeleteOffice(ctx context.Context, actor authz.Actor, officeID string) error {
	if _, err := s.officeRepo.FindOfficeByID(ctx, officeID); err != nil {
		return err
	}
	if !authz.Allows(actor, authz.ActionDelete, authz.Office()) {
		return apperrors.ErrForbidden
	}

	if err := s.officeRepo.DeleteOffice(ctx, officeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete office", slog.String("office_id", officeID))
		}
		return err
	}

	s.LogInfo(ctx, "Office deleted", slog.String("office_id", officeID))
	return nil
}

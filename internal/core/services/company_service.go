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

// companyService implements the CompanySvcFacade interface
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new company service with the provided dependencies
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// GetCompanyByID is readable by any authenticated actor.
func (s *companyService) GetCompanyByID(ctx context.Context, actor authz.Actor, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find company", slog.String("company_id", companyID))
		}
		return nil, err
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context, actor authz.Actor) ([]domain.Company, error) {
	if !authz.Allows(actor, authz.ActionRead, authz.Company()) {
		return nil, apperrors.ErrForbidden
	}

	companies, err := s.companyRepo.FindCompanies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies")
		return nil, err
	}
	return companies, nil
}

func (s *companyService) CreateCompany(ctx context.Context, actor authz.Actor, req dto.CreateCompanyRequest) (*domain.Company, error) {
	if !authz.Allows(actor, authz.ActionCreate, authz.Company()) {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	company := domain.Company{
		CompanyID:          uuid.NewString(),
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Address:            req.Address,
		Phone:              req.Phone,
		Email:              req.Email,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save company", slog.String("company_id", company.CompanyID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Company created", slog.String("company_id", company.CompanyID))
	return &company, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, actor authz.Actor, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(actor, authz.ActionUpdate, authz.Company()) {
		return nil, apperrors.ErrForbidden
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.RegistrationNumber != nil {
		company.RegistrationNumber = *req.RegistrationNumber
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	company.LastUpdatedAt = time.Now()
	company.LastUpdatedBy = actor.UserID

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update company", slog.String("company_id", companyID))
		}
		return nil, err
	}

	return company, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, actor authz.Actor, companyID string) error {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return err
	}
	if !authz.Allows(actor, authz.ActionDelete, authz.Company()) {
		return apperrors.ErrForbidden
	}

	if err := s.companyRepo.DeleteCompany(ctx, companyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete company", slog.String("company_id", companyID))
		}
		return err
	}

	s.LogInfo(ctx, "Company deleted", slog.String("company_id", companyID))
	return nil
}

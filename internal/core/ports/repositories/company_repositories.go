package repositories

import (
	"context"

	"github.com/swiftcargo/logistics_app/internal/core/domain"
)

// CompanyRepositoryFacade defines storage operations for companies.
type CompanyRepositoryFacade interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	FindCompanyByName(ctx context.Context, name string) (*domain.Company, error)
	FindCompanies(ctx context.Context) ([]domain.Company, error)
	UpdateCompany(ctx context.Context, company domain.Company) error
	DeleteCompany(ctx context.Context, companyID string) error
}

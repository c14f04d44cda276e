package services

import (
	"context"

	"github.com/swiftcargo/logistics_app/internal/core/authz"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	"github.com/swiftcargo/logistics_app/internal/dto"
)

// CompanyReaderSvc defines read operations for companies
type CompanyReaderSvc interface {
	// GetCompanyByID retrieves a company by ID.
	GetCompanyByID(ctx context.Context, actor authz.Actor, companyID string) (*domain.Company, error)

	// ListCompanies retrieves all companies.
	ListCompanies(ctx context.Context, actor authz.Actor) ([]domain.Company, error)
}

// CompanyWriterSvc defines write operations for companies
type CompanyWriterSvc interface {
	// CreateCompany creates a new company.
	CreateCompany(ctx context.Context, actor authz.Actor, req dto.CreateCompanyRequest) (*domain.Company, error)

	// UpdateCompany updates an existing company.
	UpdateCompany(ctx context.Context, actor authz.Actor, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error)

	// DeleteCompany removes a company.
	DeleteCompany(ctx context.Context, actor authz.Actor, companyID string) error
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
}

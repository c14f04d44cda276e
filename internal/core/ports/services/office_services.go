package services

import (
	"context"

	"github.com/swiftcargo/logistics_app/internal/core/authz"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	"github.com/swiftcargo/logistics_app/internal/dto"
)

// OfficeReaderSvc defines read operations for offices
type OfficeReaderSvc interface {
	// GetOfficeByID retrieves an office by ID.
	GetOfficeByID(ctx context.Context, actor authz.Actor, officeID string) (*domain.Office, error)

	// ListOffices retrieves offices, optionally filtered by company.
	ListOffices(ctx context.Context, actor authz.Actor, companyID *string) ([]domain.Office, error)
}

// OfficeWriterSvc defines write operations for offices
type OfficeWriterSvc interface {
	// CreateOffice creates a new office under an existing company.
	CreateOffice(ctx context.Context, actor authz.Actor, req dto.CreateOfficeRequest) (*domain.Office, error)

	// UpdateOffice updates an existing office.
	UpdateOffice(ctx context.Context, actor authz.Actor, officeID string, req dto.UpdateOfficeRequest) (*domain.Office, error)

	// DeleteOffice removes an office.
	DeleteOffice(ctx context.Context, actor authz.Actor, officeID string) error
}

// OfficeSvcFacade combines all office-related service interfaces
type OfficeSvcFacade interface {
	OfficeReaderSvc
	OfficeWriterSvc
}

package repositories

import (
	"context"

	"github.com/swiftcargo/logistics_app/internal/core/domain"
)

// OfficeRepositoryFacade defines storage operations for offices.
type OfficeRepositoryFacade interface {
	SaveOffice(ctx context.Context, office domain.Office) error
	FindOfficeByID(ctx context.Context, officeID string) (*domain.Office, error)

	// FindOffices lists offices, optionally filtered by company when companyID is non-empty.
	FindOffices(ctx context.Context, companyID *string) ([]domain.Office, error)

	UpdateOffice(ctx context.Context, office domain.Office) error
	DeleteOffice(ctx context.Context, officeID string) error
}

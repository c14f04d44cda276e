package repositories

import (
	"context"

	"github.com/swiftcargo/logistics_app/internal/core/domain"
)

// EmployeeRepositoryFacade defines storage operations for employee profiles.
type EmployeeRepositoryFacade interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeeByUserID resolves the employee profile owned by a user.
	FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error)

	// FindEmployees lists employees, optionally filtered by company when companyID is non-empty.
	FindEmployees(ctx context.Context, companyID *string) ([]domain.Employee, error)

	// FindFirstActiveEmployee returns the longest-serving active employee, used
	// to assign a registrant to client-created shipments. Returns ErrNotFound
	// when no active employee exists.
	FindFirstActiveEmployee(ctx context.Context) (*domain.Employee, error)

	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	DeleteEmployee(ctx context.Context, employeeID string) error
}

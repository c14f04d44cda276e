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

// employeeService implements the EmployeeSvcFacade interface
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	companyRepo  portsrepo.CompanyRepositoryFacade
	officeRepo   portsrepo.OfficeRepositoryFacade
	userRepo     portsrepo.UserReader
}

// NewEmployeeService creates a new employee service with the provided dependencies
func NewEmployeeService(
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	companyRepo portsrepo.CompanyRepositoryFacade,
	officeRepo portsrepo.OfficeRepositoryFacade,
	userRepo portsrepo.UserReader,
) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		officeRepo:   officeRepo,
		userRepo:     userRepo,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// GetEmployeeByID is readable by any authenticated actor.
func (s *employeeService) GetEmployeeByID(ctx context.Context, actor authz.Actor, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee", slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) GetEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee by user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, actor authz.Actor, companyID *string) ([]domain.Employee, error) {
	if !authz.Allows(actor, authz.ActionRead, authz.Employee()) {
		return nil, apperrors.ErrForbidden
	}

	employees, err := s.employeeRepo.FindEmployees(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, err
	}
	return employees, nil
}

// CreateEmployee checks the user, company and office exist before inserting.
func (s *employeeService) CreateEmployee(ctx context.Context, actor authz.Actor, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if !authz.Allows(actor, authz.ActionCreate, authz.Employee()) {
		return nil, apperrors.ErrForbidden
	}

	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		return nil, err
	}
	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}
	office, err := s.officeRepo.FindOfficeByID(ctx, req.OfficeID)
	if err != nil {
		return nil, err
	}
	if office.CompanyID != req.CompanyID {
		return nil, apperrors.ErrValidation
	}

	now := time.Now()
	hireDate := now
	if req.HireDate != "" {
		hireDate, err = time.Parse(dto.DateOnly, req.HireDate)
		if err != nil {
			return nil, apperrors.ErrValidation
		}
	}

	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		UserID:     req.UserID,
		CompanyID:  req.CompanyID,
		OfficeID:   req.OfficeID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		HireDate:   hireDate,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to save employee", slog.String("employee_id", employee.EmployeeID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, actor authz.Actor, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !authz.Allows(actor, authz.ActionUpdate, authz.Employee()) {
		return nil, apperrors.ErrForbidden
	}

	if req.CompanyID != nil {
		if _, err := s.companyRepo.FindCompanyByID(ctx, *req.CompanyID); err != nil {
			return nil, err
		}
		employee.CompanyID = *req.CompanyID
	}
	if req.OfficeID != nil {
		office, err := s.officeRepo.FindOfficeByID(ctx, *req.OfficeID)
		if err != nil {
			return nil, err
		}
		if office.CompanyID != employee.CompanyID {
			return nil, apperrors.ErrValidation
		}
		employee.OfficeID = *req.OfficeID
	}
	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.HireDate != nil {
		hireDate, err := time.Parse(dto.DateOnly, *req.HireDate)
		if err != nil {
			return nil, apperrors.ErrValidation
		}
		employee.HireDate = hireDate
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	employee.LastUpdatedAt = time.Now()
	employee.LastUpdatedBy = actor.UserID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		}
		return nil, err
	}

	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, actor authz.Actor, employeeID string) error {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return err
	}
	if !authz.Allows(actor, authz.ActionDelete, authz.Employee()) {
		return apperrors.ErrForbidden
	}

	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		}
		return err
	}

	s.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))
	return nil
}

package services

import (
	"context"

	"github.com/swiftcargo/logistics_app/internal/core/authz"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	"github.com/swiftcargo/logistics_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employees
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves an employee by ID.
	GetEmployeeByID(ctx context.Context, actor authz.Actor, employeeID string) (*domain.Employee, error)

	// GetEmployeeByUserID retrieves the employee profile owned by a user.
	GetEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error)

	// ListEmployees retrieves employees, optionally filtered by company.
	ListEmployees(ctx context.Context, actor authz.Actor, companyID *string) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employees
type EmployeeWriterSvc interface {
	// CreateEmployee creates an employee profile for an existing user.
	CreateEmployee(ctx context.Context, actor authz.Actor, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// UpdateEmployee updates an existing employee.
	UpdateEmployee(ctx context.Context, actor authz.Actor, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeleteEmployee removes an employee.
	DeleteEmployee(ctx context.Context, actor authz.Actor, employeeID string) error
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}

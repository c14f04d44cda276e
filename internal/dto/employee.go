package dto

import (
	"time"

	"github.com/swiftcargo/logistics_app/internal/core/domain"
)

// DateOnly is the wire format for date fields without a time component.
const DateOnly = "2006-01-02"

// CreateEmployeeRequest defines data for creating an employee profile for an
// existing user.
type CreateEmployeeRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	CompanyID string `json:"company_id" binding:"required"`
	OfficeID  string `json:"office_id" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	HireDate  string `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
type UpdateEmployeeRequest struct {
	CompanyID *string `json:"company_id"`
	OfficeID  *string `json:"office_id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	HireDate  *string `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
	IsActive  *bool   `json:"is_active"`
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	CompanyID *string `form:"company_id"`
}

// EmployeeResponse defines data returned for an employee.
type EmployeeResponse struct {
	EmployeeID    string    `json:"employee_id"`
	UserID        string    `json:"user_id"`
	CompanyID     string    `json:"company_id"`
	OfficeID      string    `json:"office_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         string    `json:"phone"`
	HireDate      string    `json:"hire_date"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// ToEmployeeResponse converts domain.Employee to DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		UserID:        e.UserID,
		CompanyID:     e.CompanyID,
		OfficeID:      e.OfficeID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Phone:         e.Phone,
		HireDate:      e.HireDate.Format(DateOnly),
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ListEmployeesResponse wraps a list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToListEmployeesResponse converts a slice of domain.Employee to DTO.
func ToListEmployeesResponse(es []domain.Employee) ListEmployeesResponse {
	list := make([]EmployeeResponse, len(es))
	for i, e := range es {
		list[i] = ToEmployeeResponse(&e)
	}
	return ListEmployeesResponse{Employees: list}
}

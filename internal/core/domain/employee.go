package domain

import "time"

// Employee is the staff profile linked 1:1 to an EMPLOYEE user and assigned to
// a company and one of its offices.
type Employee struct {
	EmployeeID string    `json:"employeeID"`
	UserID     string    `json:"userID"`
	CompanyID  string    `json:"companyID"`
	OfficeID   string    `json:"officeID"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Phone      string    `json:"phone"`
	HireDate   time.Time `json:"hireDate"`
	IsActive   bool      `json:"isActive"`
	AuditFields
}

package domain

// Company represents the logistics company owning offices and employees.
// The schema permits several rows but a single company is the expected case.
type Company struct {
	CompanyID          string `json:"companyID"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	AuditFields
}

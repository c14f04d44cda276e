package domain

// Office is a physical branch of a Company.
type Office struct {
	OfficeID  string `json:"officeID"`
	CompanyID string `json:"companyID"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	City      string `json:"city"`
	Country   string `json:"country"`
	AuditFields
}

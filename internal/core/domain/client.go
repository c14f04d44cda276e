package domain

// Client is the customer-facing profile linked 1:1 to a CLIENT user.
// Clients appear on shipments as sender and receiver.
type Client struct {
	ClientID    string `json:"clientID"`
	UserID      string `json:"userID"`
	CompanyName string `json:"companyName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

package dto

import (
	"time"

	"github.com/swiftcargo/logistics_app/internal/core/domain"
)

// CreateOfficeRequest defines data for creating a new office.
type CreateOfficeRequest struct {
	CompanyID string `json:"company_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

// UpdateOfficeRequest defines the data allowed for updating an office.
type UpdateOfficeRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	City    *string `json:"city"`
	Country *string `json:"country"`
}

// ListOfficesParams defines query parameters for listing offices.
type ListOfficesParams struct {
	CompanyID *string `form:"company_id"`
}

// OfficeResponse defines data returned for an office.
type OfficeResponse struct {
	OfficeID      string    `json:"office_id"`
	CompanyID     string    `json:"company_id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// ToOfficeResponse converts domain.Office to DTO.
func ToOfficeResponse(o *domain.Office) OfficeResponse {
	return OfficeResponse{
		OfficeID:      o.OfficeID,
		CompanyID:     o.CompanyID,
		Name:          o.Name,
		Address:       o.Address,
		Phone:         o.Phone,
		Email:         o.Email,
		City:          o.City,
		Country:       o.Country,
		CreatedAt:     o.CreatedAt,
		LastUpdatedAt: o.LastUpdatedAt,
	}
}

// ListOfficesResponse wraps a list of offices.
type ListOfficesResponse struct {
	Offices []OfficeResponse `json:"offices"`
}

// ToListOfficesResponse converts a slice of domain.Office to DTO.
func ToListOfficesResponse(os []domain.Office) ListOfficesResponse {
	list := make([]OfficeResponse, len(os))
	for i, o := range os {
		list[i] = ToOfficeResponse(&o)
	}
	return ListOfficesResponse{Offices: list}
}

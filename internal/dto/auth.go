package dto

import (
	"github.com/swiftcargo/logistics_app/internal/core/domain"
)

// RegisterRequest defines the data for registering a new user. The profile
// block matching the requested role must be present; the other one is ignored.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`

	Client   *RegisterClientProfile   `json:"client,omitempty"`
	Employee *RegisterEmployeeProfile `json:"employee,omitempty"`
}

// RegisterClientProfile carries the client profile created together with a
// CLIENT user.
type RegisterClientProfile struct {
	CompanyName string `json:"company_name"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// RegisterEmployeeProfile carries the employee profile created together with
// an EMPLOYEE user.
type RegisterEmployeeProfile struct {
	CompanyID string `json:"company_id" binding:"required"`
	OfficeID  string `json:"office_id" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	HireDate  string `json:"hire_date"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	UserID string `json:"user_id"`
}

// LoginRequest defines the data for a password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// GoogleCodeExchangeRequest carries an OAuth authorization code from the
// frontend callback.
type GoogleCodeExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleIDTokenRequest carries a Google ID token for direct verification.
type GoogleIDTokenRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// MeResponse describes the authenticated identity.
type MeResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// ToMeResponse converts a domain.User to a MeResponse.
func ToMeResponse(u *domain.User) MeResponse {
	return MeResponse{
		UserID: u.UserID,
		Email:  u.Email,
		Role:   string(u.Role),
	}
}

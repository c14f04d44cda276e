package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueReport aggregates delivered-shipment revenue over a period.
// TotalRevenue is an exact decimal sum of shipment prices.
type RevenueReport struct {
	StartDate     *time.Time      `json:"startDate,omitempty"`
	EndDate       *time.Time      `json:"endDate,omitempty"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	ShipmentCount int             `json:"shipmentCount"`
}

// GoogleUserInfo mirrors the subset of the Google userinfo payload the system consumes.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

package dto

import (
	"github.com/swiftcargo/logistics_app/internal/core/domain"
)

// RevenueReportParams defines query parameters for the revenue report.
// Bounds are inclusive; either may be omitted.
type RevenueReportParams struct {
	StartDate *string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// RevenuePeriod echoes the requested bounds back to the caller.
type RevenuePeriod struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// RevenueReportResponse is the revenue-by-period report. TotalRevenue is a
// decimal string with two fractional digits.
type RevenueReportResponse struct {
	Period        RevenuePeriod `json:"period"`
	TotalRevenue  string        `json:"total_revenue"`
	ShipmentCount int           `json:"shipment_count"`
}

// ToRevenueReportResponse converts a domain.RevenueReport to DTO.
func ToRevenueReportResponse(r *domain.RevenueReport) RevenueReportResponse {
	resp := RevenueReportResponse{
		TotalRevenue:  r.TotalRevenue.StringFixed(2),
		ShipmentCount: r.ShipmentCount,
	}
	if r.StartDate != nil {
		s := r.StartDate.Format(DateOnly)
		resp.Period.StartDate = &s
	}
	if r.EndDate != nil {
		e := r.EndDate.Format(DateOnly)
		resp.Period.EndDate = &e
	}
	return resp
}

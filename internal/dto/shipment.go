package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
)

// CreateShipmentRequest defines data for registering a new shipment.
// SentDate defaults to the current time when omitted.
type CreateShipmentRequest struct {
	SenderID           string          `json:"sender_id" binding:"required"`
	ReceiverID         string          `json:"receiver_id" binding:"required"`
	TrackingNumber     string          `json:"tracking_number" binding:"required"`
	Weight             float64         `json:"weight" binding:"min=0"`
	Dimensions         string          `json:"dimensions"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	SentDate           *time.Time      `json:"sent_date"`
	OriginAddress      string          `json:"origin_address"`
	DestinationAddress string          `json:"destination_address"`
}

// UpdateShipmentStatusRequest defines data for a status transition.
type UpdateShipmentStatusRequest struct {
	Status       string     `json:"status" binding:"required"`
	ReceivedDate *time.Time `json:"received_date"`
}

// UpdateShipmentRequest is the combined update payload for PUT /shipment/:id.
// Editable fields are patched when present; a status field additionally
// requests a transition, after any field patch.
type UpdateShipmentRequest struct {
	Status       *string    `json:"status"`
	ReceivedDate *time.Time `json:"received_date"`
	Weight       *float64   `json:"weight"`
	Dimensions   *string    `json:"dimensions"`
	Description  *string    `json:"description"`
}

// UpdateShipmentFieldsRequest defines the editable shipment fields.
type UpdateShipmentFieldsRequest struct {
	Weight      *float64 `json:"weight"`
	Dimensions  *string  `json:"dimensions"`
	Description *string  `json:"description"`
}

// ShipmentResponse defines data returned for a shipment. Price marshals as a
// decimal string.
type ShipmentResponse struct {
	ShipmentID             string          `json:"shipment_id"`
	SenderID               string          `json:"sender_id"`
	ReceiverID             string          `json:"receiver_id"`
	RegisteredByEmployeeID string          `json:"registered_by_employee_id"`
	TrackingNumber         string          `json:"tracking_number"`
	Weight                 float64         `json:"weight"`
	Dimensions             string          `json:"dimensions"`
	Description            string          `json:"description"`
	Price                  decimal.Decimal `json:"price"`
	SentDate               time.Time       `json:"sent_date"`
	ReceivedDate           *time.Time      `json:"received_date"`
	Status                 string          `json:"status"`
	OriginAddress          string          `json:"origin_address"`
	DestinationAddress     string          `json:"destination_address"`
	CreatedAt              time.Time       `json:"created_at"`
	LastUpdatedAt          time.Time       `json:"last_updated_at"`
}

// ToShipmentResponse converts domain.Shipment to DTO.
func ToShipmentResponse(s *domain.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ShipmentID:             s.ShipmentID,
		SenderID:               s.SenderID,
		ReceiverID:             s.ReceiverID,
		RegisteredByEmployeeID: s.RegisteredByEmployeeID,
		TrackingNumber:         s.TrackingNumber,
		Weight:                 s.Weight,
		Dimensions:             s.Dimensions,
		Description:            s.Description,
		Price:                  s.Price,
		SentDate:               s.SentDate,
		ReceivedDate:           s.ReceivedDate,
		Status:                 string(s.Status),
		OriginAddress:          s.OriginAddress,
		DestinationAddress:     s.DestinationAddress,
		CreatedAt:              s.CreatedAt,
		LastUpdatedAt:          s.LastUpdatedAt,
	}
}

// ListShipmentsResponse wraps a list of shipments.
type ListShipmentsResponse struct {
	Shipments []ShipmentResponse `json:"shipments"`
}

// ToListShipmentsResponse converts a slice of domain.Shipment to DTO.
func ToListShipmentsResponse(ss []domain.Shipment) ListShipmentsResponse {
	list := make([]ShipmentResponse, len(ss))
	for i, s := range ss {
		list[i] = ToShipmentResponse(&s)
	}
	return ListShipmentsResponse{Shipments: list}
}

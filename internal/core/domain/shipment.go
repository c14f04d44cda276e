package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShipmentStatus enumerates the lifecycle states of a shipment.
// PENDING -> IN_TRANSIT -> DELIVERED, with CANCELLED reachable from the first two.
type ShipmentStatus string

const (
	StatusPending   ShipmentStatus = "PENDING"
	StatusInTransit ShipmentStatus = "IN_TRANSIT"
	StatusDelivered ShipmentStatus = "DELIVERED"
	StatusCancelled ShipmentStatus = "CANCELLED"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Shipment is a registered parcel moving between two clients. The tracking
// number is globally unique; price is exact decimal money.
type Shipment struct {
	ShipmentID             string          `json:"shipmentID"`
	SenderID               string          `json:"senderID"`   // FK -> clients
	ReceiverID             string          `json:"receiverID"` // FK -> clients
	RegisteredByEmployeeID string          `json:"registeredByEmployeeID"`
	TrackingNumber         string          `json:"trackingNumber"`
	Weight                 float64         `json:"weight"` // kg
	Dimensions             string          `json:"dimensions"`
	Description            string          `json:"description"`
	Price                  decimal.Decimal `json:"price"`
	SentDate               time.Time       `json:"sentDate"`
	ReceivedDate           *time.Time      `json:"receivedDate,omitempty"` // set when status becomes DELIVERED
	Status                 ShipmentStatus  `json:"status"`
	OriginAddress          string          `json:"originAddress"`
	DestinationAddress     string          `json:"destinationAddress"`
	AuditFields
}

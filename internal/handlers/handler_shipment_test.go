package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/swiftcargo/logistics_app/internal/apperrors"
	"github.com/swiftcargo/logistics_app/internal/core/authz"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	"github.com/swiftcargo/logistics_app/internal/dto"
)

type ShipmentHandlerTestSuite struct {
	suite.Suite
	f *routerFixture
}

func (suite *ShipmentHandlerTestSuite) SetupTest() {
	suite.f = newRouterFixture()
}

// do performs an authenticated JSON request against the fixture router.
func (suite *ShipmentHandlerTestSuite) do(method, url string, body any, userID string, role domain.UserRole) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.f.bearerToken(userID, role))

	w := httptest.NewRecorder()
	suite.f.router.ServeHTTP(w, req)
	return w
}

func (suite *ShipmentHandlerTestSuite) sampleShipment(shipmentID string) *domain.Shipment {
	return &domain.Shipment{
		ShipmentID:             shipmentID,
		SenderID:               uuid.NewString(),
		ReceiverID:             uuid.NewString(),
		RegisteredByEmployeeID: uuid.NewString(),
		TrackingNumber:         "SC-2024-0001",
		Weight:                 2.5,
		Price:                  decimal.RequireFromString("49.99"),
		SentDate:               time.Now().UTC(),
		Status:                 domain.StatusPending,
	}
}

func (suite *ShipmentHandlerTestSuite) TestGetShipment_Employee() {
	shipmentID := uuid.NewString()
	userID := uuid.NewString()
	shipment := suite.sampleShipment(shipmentID)

	suite.f.shipment.On("GetShipmentByID", mock.Anything,
		authz.Actor{UserID: userID, Role: domain.RoleEmployee}, shipmentID,
	).Return(shipment, nil).Once()

	w := suite.do(http.MethodGet, "/api/shipment/"+shipmentID, nil, userID, domain.RoleEmployee)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ShipmentResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(shipmentID, resp.ShipmentID)
	suite.Equal("SC-2024-0001", resp.TrackingNumber)
	suite.True(resp.Price.Equal(decimal.RequireFromString("49.99")))
	suite.f.shipment.AssertExpectations(suite.T())
}

func (suite *ShipmentHandlerTestSuite) TestGetShipment_UnrelatedClientForbidden() {
	shipmentID := uuid.NewString()
	userID := uuid.NewString()

	suite.f.shipment.On("GetShipmentByID", mock.Anything,
		authz.Actor{UserID: userID, Role: domain.RoleClient}, shipmentID,
	).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodGet, "/api/shipment/"+shipmentID, nil, userID, domain.RoleClient)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *ShipmentHandlerTestSuite) TestGetShipment_NoToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/shipment/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.f.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.f.shipment.AssertNotCalled(suite.T(), "GetShipmentByID")
}

func (suite *ShipmentHandlerTestSuite) TestCreateShipment_Success() {
	userID := uuid.NewString()
	shipment := suite.sampleShipment(uuid.NewString())

	suite.f.shipment.On("CreateShipment", mock.Anything,
		authz.Actor{UserID: userID, Role: domain.RoleEmployee},
		mock.MatchedBy(func(req dto.CreateShipmentRequest) bool {
			return req.TrackingNumber == "SC-2024-0001" && req.Price.Equal(decimal.RequireFromString("49.99"))
		}),
	).Return(shipment, nil).Once()

	body := map[string]any{
		"sender_id":       shipment.SenderID,
		"receiver_id":     shipment.ReceiverID,
		"tracking_number": "SC-2024-0001",
		"weight":          2.5,
		"price":           "49.99",
	}
	w := suite.do(http.MethodPost, "/api/shipment", body, userID, domain.RoleEmployee)

	suite.Equal(http.StatusCreated, w.Code)
	suite.f.shipment.AssertExpectations(suite.T())
}

func (suite *ShipmentHandlerTestSuite) TestCreateShipment_DuplicateTracking() {
	userID := uuid.NewString()

	suite.f.shipment.On("CreateShipment", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	body := map[string]any{
		"sender_id":       uuid.NewString(),
		"receiver_id":     uuid.NewString(),
		"tracking_number": "SC-2024-0001",
		"price":           "10.00",
	}
	w := suite.do(http.MethodPost, "/api/shipment", body, userID, domain.RoleEmployee)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ShipmentHandlerTestSuite) TestUpdateShipment_StatusBodyDispatchesTransition() {
	shipmentID := uuid.NewString()
	userID := uuid.NewString()
	receivedDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	delivered := suite.sampleShipment(shipmentID)
	delivered.Status = domain.StatusDelivered
	delivered.ReceivedDate = &receivedDate

	suite.f.shipment.On("UpdateShipmentStatus", mock.Anything,
		authz.Actor{UserID: userID, Role: domain.RoleEmployee}, shipmentID,
		dto.UpdateShipmentStatusRequest{Status: "DELIVERED", ReceivedDate: &receivedDate},
	).Return(delivered, nil).Once()

	body := map[string]any{
		"status":        "DELIVERED",
		"received_date": receivedDate.Format(time.RFC3339),
	}
	w := suite.do(http.MethodPut, "/api/shipment/"+shipmentID, body, userID, domain.RoleEmployee)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ShipmentResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("DELIVERED", resp.Status)
	suite.Require().NotNil(resp.ReceivedDate)
	suite.True(resp.ReceivedDate.Equal(receivedDate))
	suite.f.shipment.AssertExpectations(suite.T())
	suite.f.shipment.AssertNotCalled(suite.T(), "UpdateShipmentFields")
}

func (suite *ShipmentHandlerTestSuite) TestUpdateShipment_FieldsBodyDispatchesPatch() {
	shipmentID := uuid.NewString()
	userID := uuid.NewString()
	weight := 3.75

	updated := suite.sampleShipment(shipmentID)
	updated.Weight = weight

	suite.f.shipment.On("UpdateShipmentFields", mock.Anything,
		authz.Actor{UserID: userID, Role: domain.RoleEmployee}, shipmentID,
		dto.UpdateShipmentFieldsRequest{Weight: &weight},
	).Return(updated, nil).Once()

	w := suite.do(http.MethodPut, "/api/shipment/"+shipmentID, map[string]any{"weight": weight}, userID, domain.RoleEmployee)

	suite.Equal(http.StatusOK, w.Code)
	suite.f.shipment.AssertExpectations(suite.T())
	suite.f.shipment.AssertNotCalled(suite.T(), "UpdateShipmentStatus")
}

func (suite *ShipmentHandlerTestSuite) TestUpdateShipment_CombinedBodyAppliesFieldsThenStatus() {
	shipmentID := uuid.NewString()
	userID := uuid.NewString()
	weight := 4.2
	actor := authz.Actor{UserID: userID, Role: domain.RoleEmployee}

	patched := suite.sampleShipment(shipmentID)
	patched.Weight = weight
	inTransit := suite.sampleShipment(shipmentID)
	inTransit.Weight = weight
	inTransit.Status = domain.StatusInTransit

	suite.f.shipment.On("UpdateShipmentFields", mock.Anything, actor, shipmentID,
		dto.UpdateShipmentFieldsRequest{Weight: &weight},
	).Return(patched, nil).Once()
	suite.f.shipment.On("UpdateShipmentStatus", mock.Anything, actor, shipmentID,
		dto.UpdateShipmentStatusRequest{Status: "IN_TRANSIT"},
	).Return(inTransit, nil).Once()

	body := map[string]any{"status": "IN_TRANSIT", "weight": weight}
	w := suite.do(http.MethodPut, "/api/shipment/"+shipmentID, body, userID, domain.RoleEmployee)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ShipmentResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("IN_TRANSIT", resp.Status)
	suite.Equal(weight, resp.Weight)
	suite.f.shipment.AssertExpectations(suite.T())
}

func (suite *ShipmentHandlerTestSuite) TestDeleteShipment_Success() {
	shipmentID := uuid.NewString()
	userID := uuid.NewString()

	suite.f.shipment.On("DeleteShipment", mock.Anything,
		authz.Actor{UserID: userID, Role: domain.RoleEmployee}, shipmentID,
	).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/shipment/"+shipmentID, nil, userID, domain.RoleEmployee)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.f.shipment.AssertExpectations(suite.T())
}

func (suite *ShipmentHandlerTestSuite) TestRevenueReport_Success() {
	userID := uuid.NewString()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	report := &domain.RevenueReport{
		TotalRevenue:  decimal.RequireFromString("100.00"),
		ShipmentCount: 2,
	}

	suite.f.reporting.On("RevenueByPeriod", mock.Anything,
		authz.Actor{UserID: userID, Role: domain.RoleEmployee},
		mock.MatchedBy(func(t *time.Time) bool { return t != nil && t.Equal(start) }),
		mock.MatchedBy(func(t *time.Time) bool {
			// End bound covers the whole final day.
			return t != nil && t.After(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC))
		}),
	).Return(report, nil).Once()

	url := "/api/shipment/reports/revenue?start_date=2024-01-01&end_date=2024-01-31"
	w := suite.do(http.MethodGet, url, nil, userID, domain.RoleEmployee)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RevenueReportResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("100.00", resp.TotalRevenue)
	suite.Equal(2, resp.ShipmentCount)
	suite.f.reporting.AssertExpectations(suite.T())
}

func (suite *ShipmentHandlerTestSuite) TestRevenueReport_BadDate() {
	userID := uuid.NewString()

	w := suite.do(http.MethodGet, "/api/shipment/reports/revenue?start_date=01-01-2024", nil, userID, domain.RoleEmployee)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.f.reporting.AssertNotCalled(suite.T(), "RevenueByPeriod")
}

func (suite *ShipmentHandlerTestSuite) TestReportBySender_ClientNotFound() {
	userID := uuid.NewString()
	clientID := uuid.NewString()

	suite.f.reporting.On("ShipmentsBySender", mock.Anything,
		authz.Actor{UserID: userID, Role: domain.RoleEmployee}, clientID,
	).Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/shipment/reports/by-sender/%s", clientID)
	w := suite.do(http.MethodGet, url, nil, userID, domain.RoleEmployee)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ShipmentHandlerTestSuite) TestAllShipmentsReport_ClientForbidden() {
	userID := uuid.NewString()

	suite.f.reporting.On("AllShipments", mock.Anything,
		authz.Actor{UserID: userID, Role: domain.RoleClient},
	).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodGet, "/api/shipment/reports/all-shipments", nil, userID, domain.RoleClient)

	suite.Equal(http.StatusForbidden, w.Code)
}

func TestShipmentHandler(t *testing.T) {
	suite.Run(t, new(ShipmentHandlerTestSuite))
}

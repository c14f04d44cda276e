package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/swiftcargo/logistics_app/internal/apperrors"
	"github.com/swiftcargo/logistics_app/internal/core/authz"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	portssvc "github.com/swiftcargo/logistics_app/internal/core/ports/services"
	"github.com/swiftcargo/logistics_app/internal/core/services"
	"github.com/swiftcargo/logistics_app/internal/dto"
)

type ShipmentServiceTestSuite struct {
	suite.Suite
	mockShipmentRepo *MockShipmentRepository
	mockClientRepo   *MockClientRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.ShipmentSvcFacade

	employeeActor authz.Actor
	clientActor   authz.Actor
}

func (suite *ShipmentServiceTestSuite) SetupTest() {
	suite.mockShipmentRepo = new(MockShipmentRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewShipmentService(suite.mockShipmentRepo, suite.mockClientRepo, suite.mockEmployeeRepo)

	suite.employeeActor = authz.Actor{UserID: "emp-user", Role: domain.RoleEmployee}
	suite.clientActor = authz.Actor{UserID: "client-user", Role: domain.RoleClient}
}

func (suite *ShipmentServiceTestSuite) expectClientResolution(clientID string) {
	suite.mockClientRepo.On("FindClientByUserID", mock.Anything, suite.clientActor.UserID).
		Return(&domain.Client{ClientID: clientID, UserID: suite.clientActor.UserID}, nil).Once()
}

// --- GetShipmentByID ---

func (suite *ShipmentServiceTestSuite) TestGetShipmentByID_EmployeeSeesAny() {
	ctx := context.Background()
	shipment := &domain.Shipment{ShipmentID: "ship-1", SenderID: "c1", ReceiverID: "c2"}

	suite.mockShipmentRepo.On("FindShipmentByID", ctx, "ship-1").Return(shipment, nil).Once()

	got, err := suite.service.GetShipmentByID(ctx, suite.employeeActor, "ship-1")

	suite.Require().NoError(err)
	suite.Equal(shipment, got)
}

func (suite *ShipmentServiceTestSuite) TestGetShipmentByID_ClientAsReceiver() {
	ctx := context.Background()
	shipment := &domain.Shipment{ShipmentID: "ship-1", SenderID: "other", ReceiverID: "c1"}

	suite.mockShipmentRepo.On("FindShipmentByID", ctx, "ship-1").Return(shipment, nil).Once()
	suite.expectClientResolution("c1")

	got, err := suite.service.GetShipmentByID(ctx, suite.clientActor, "ship-1")

	suite.Require().NoError(err)
	suite.Equal(shipment, got)
}

func (suite *ShipmentServiceTestSuite) TestGetShipmentByID_UnrelatedClientForbidden() {
	ctx := context.Background()
	shipment := &domain.Shipment{ShipmentID: "ship-1", SenderID: "c2", ReceiverID: "c3"}

	suite.mockShipmentRepo.On("FindShipmentByID", ctx, "ship-1").Return(shipment, nil).Once()
	suite.expectClientResolution("c1")

	got, err := suite.service.GetShipmentByID(ctx, suite.clientActor, "ship-1")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(got)
}

func (suite *ShipmentServiceTestSuite) TestGetShipmentByID_MissingIsNotFoundBeforeAuthz() {
	ctx := context.Background()

	suite.mockShipmentRepo.On("FindShipmentByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetShipmentByID(ctx, suite.clientActor, "ghost")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(got)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "FindClientByUserID")
}

// --- CreateShipment ---

func (suite *ShipmentServiceTestSuite) createRequest() dto.CreateShipmentRequest {
	return dto.CreateShipmentRequest{
		SenderID:       "c1",
		ReceiverID:     "c2",
		TrackingNumber: "TRK1",
		Weight:         2.5,
		Price:          decimal.RequireFromString("100.00"),
	}
}

func (suite *ShipmentServiceTestSuite) TestCreateShipment_EmployeeSuccess() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockClientRepo.On("FindClientByID", ctx, "c1").Return(&domain.Client{ClientID: "c1"}, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, "c2").Return(&domain.Client{ClientID: "c2"}, nil).Once()
	suite.mockShipmentRepo.On("FindShipmentByTrackingNumber", ctx, "TRK1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByUserID", ctx, "emp-user").
		Return(&domain.Employee{EmployeeID: "emp-1", UserID: "emp-user"}, nil).Once()
	suite.mockShipmentRepo.On("SaveShipment", ctx, mock.MatchedBy(func(s domain.Shipment) bool {
		return s.Status == domain.StatusPending &&
			s.RegisteredByEmployeeID == "emp-1" &&
			s.TrackingNumber == "TRK1" &&
			s.ReceivedDate == nil &&
			!s.SentDate.IsZero()
	})).Return(nil).Once()

	shipment, err := suite.service.CreateShipment(ctx, suite.employeeActor, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, shipment.Status)
	suite.mockShipmentRepo.AssertExpectations(suite.T())
}

func (suite *ShipmentServiceTestSuite) TestCreateShipment_ClientAsSenderAutoAssignsEmployee() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.expectClientResolution("c1")
	suite.mockClientRepo.On("FindClientByID", ctx, "c1").Return(&domain.Client{ClientID: "c1"}, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, "c2").Return(&domain.Client{ClientID: "c2"}, nil).Once()
	suite.mockShipmentRepo.On("FindShipmentByTrackingNumber", ctx, "TRK1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("FindFirstActiveEmployee", ctx).
		Return(&domain.Employee{EmployeeID: "emp-9"}, nil).Once()
	suite.mockShipmentRepo.On("SaveShipment", ctx, mock.MatchedBy(func(s domain.Shipment) bool {
		return s.RegisteredByEmployeeID == "emp-9"
	})).Return(nil).Once()

	shipment, err := suite.service.CreateShipment(ctx, suite.clientActor, req)

	suite.Require().NoError(err)
	suite.Equal("emp-9", shipment.RegisteredByEmployeeID)
}

func (suite *ShipmentServiceTestSuite) TestCreateShipment_ClientNotSenderForbidden() {
	ctx := context.Background()
	req := suite.createRequest()
	req.SenderID = "someone-else"

	suite.expectClientResolution("c1")

	shipment, err := suite.service.CreateShipment(ctx, suite.clientActor, req)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(shipment)
	suite.mockShipmentRepo.AssertNotCalled(suite.T(), "SaveShipment")
}

func (suite *ShipmentServiceTestSuite) TestCreateShipment_NoEmployeeForClientFails() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.expectClientResolution("c1")
	suite.mockClientRepo.On("FindClientByID", ctx, "c1").Return(&domain.Client{ClientID: "c1"}, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, "c2").Return(&domain.Client{ClientID: "c2"}, nil).Once()
	suite.mockShipmentRepo.On("FindShipmentByTrackingNumber", ctx, "TRK1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeRepo.On("FindFirstActiveEmployee", ctx).Return(nil, apperrors.ErrNotFound).Once()

	shipment, err := suite.service.CreateShipment(ctx, suite.clientActor, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(shipment)
}

func (suite *ShipmentServiceTestSuite) TestCreateShipment_DuplicateTracking() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockClientRepo.On("FindClientByID", ctx, "c1").Return(&domain.Client{ClientID: "c1"}, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, "c2").Return(&domain.Client{ClientID: "c2"}, nil).Once()
	suite.mockShipmentRepo.On("FindShipmentByTrackingNumber", ctx, "TRK1").
		Return(&domain.Shipment{ShipmentID: "existing"}, nil).Once()

	shipment, err := suite.service.CreateShipment(ctx, suite.employeeActor, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(shipment)
	suite.mockShipmentRepo.AssertNotCalled(suite.T(), "SaveShipment")
}

func (suite *ShipmentServiceTestSuite) TestCreateShipment_UnknownSenderIsValidationError() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockClientRepo.On("FindClientByID", ctx, "c1").Return(nil, apperrors.ErrNotFound).Once()

	shipment, err := suite.service.CreateShipment(ctx, suite.employeeActor, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(shipment)
}

func (suite *ShipmentServiceTestSuite) TestCreateShipment_NegativePrice() {
	ctx := context.Background()
	req := suite.createRequest()
	req.Price = decimal.RequireFromString("-1")

	shipment, err := suite.service.CreateShipment(ctx, suite.employeeActor, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(shipment)
}

// --- UpdateShipmentStatus ---

func (suite *ShipmentServiceTestSuite) TestUpdateShipmentStatus_DeliveredSetsReceivedDate() {
	ctx := context.Background()
	shipment := &domain.Shipment{ShipmentID: "ship-1", Status: domain.StatusPending}
	receivedDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	suite.mockShipmentRepo.On("FindShipmentByID", ctx, "ship-1").Return(shipment, nil).Once()
	suite.mockShipmentRepo.On("UpdateShipment", ctx, mock.MatchedBy(func(s domain.Shipment) bool {
		return s.Status == domain.StatusDelivered &&
			s.ReceivedDate != nil && s.ReceivedDate.Equal(receivedDate)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateShipmentStatus(ctx, suite.employeeActor, "ship-1", dto.UpdateShipmentStatusRequest{
		Status:       string(domain.StatusDelivered),
		ReceivedDate: &receivedDate,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDelivered, updated.Status)
	suite.Require().NotNil(updated.ReceivedDate)
	suite.True(updated.ReceivedDate.Equal(receivedDate))
}

func (suite *ShipmentServiceTestSuite) TestUpdateShipmentStatus_RegressionKeepsReceivedDate() {
	ctx := context.Background()
	receivedDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	shipment := &domain.Shipment{ShipmentID: "ship-1", Status: domain.StatusDelivered, ReceivedDate: &receivedDate}

	suite.mockShipmentRepo.On("FindShipmentByID", ctx, "ship-1").Return(shipment, nil).Once()
	suite.mockShipmentRepo.On("UpdateShipment", ctx, mock.MatchedBy(func(s domain.Shipment) bool {
		// Status moves back freely and the received date is never cleared.
		return s.Status == domain.StatusPending && s.ReceivedDate != nil
	})).Return(nil).Once()

	updated, err := suite.service.UpdateShipmentStatus(ctx, suite.employeeActor, "ship-1", dto.UpdateShipmentStatusRequest{
		Status: string(domain.StatusPending),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, updated.Status)
	suite.NotNil(updated.ReceivedDate)
}

func (suite *ShipmentServiceTestSuite) TestUpdateShipmentStatus_ClientForbidden() {
	ctx := context.Background()
	shipment := &domain.Shipment{ShipmentID: "ship-1", SenderID: "c1", Status: domain.StatusPending}

	suite.mockShipmentRepo.On("FindShipmentByID", ctx, "ship-1").Return(shipment, nil).Once()

	updated, err := suite.service.UpdateShipmentStatus(ctx, suite.clientActor, "ship-1", dto.UpdateShipmentStatusRequest{
		Status: string(domain.StatusInTransit),
	})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(updated)
	suite.mockShipmentRepo.AssertNotCalled(suite.T(), "UpdateShipment")
}

func (suite *ShipmentServiceTestSuite) TestUpdateShipmentStatus_UnknownStatus() {
	ctx := context.Background()
	shipment := &domain.Shipment{ShipmentID: "ship-1", Status: domain.StatusPending}

	suite.mockShipmentRepo.On("FindShipmentByID", ctx, "ship-1").Return(shipment, nil).Once()

	updated, err := suite.service.UpdateShipmentStatus(ctx, suite.employeeActor, "ship-1", dto.UpdateShipmentStatusRequest{
		Status: "TELEPORTED",
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
}

// --- UpdateShipmentFields ---

func (suite *ShipmentServiceTestSuite) TestUpdateShipmentFields_NegativeWeight() {
	ctx := context.Background()
	shipment := &domain.Shipment{ShipmentID: "ship-1", Weight: 2}
	badWeight := -1.0

	suite.mockShipmentRepo.On("FindShipmentByID", ctx, "ship-1").Return(shipment, nil).Once()

	updated, err := suite.service.UpdateShipmentFields(ctx, suite.employeeActor, "ship-1", dto.UpdateShipmentFieldsRequest{
		Weight: &badWeight,
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
}

func (suite *ShipmentServiceTestSuite) TestUpdateShipmentFields_Success() {
	ctx := context.Background()
	shipment := &domain.Shipment{ShipmentID: "ship-1", Weight: 2, Description: "old"}
	newWeight := 3.5
	newDescription := "fragile"

	suite.mockShipmentRepo.On("FindShipmentByID", ctx, "ship-1").Return(shipment, nil).Once()
	suite.mockShipmentRepo.On("UpdateShipment", ctx, mock.MatchedBy(func(s domain.Shipment) bool {
		return s.Weight == newWeight && s.Description == newDescription
	})).Return(nil).Once()

	updated, err := suite.service.UpdateShipmentFields(ctx, suite.employeeActor, "ship-1", dto.UpdateShipmentFieldsRequest{
		Weight:      &newWeight,
		Description: &newDescription,
	})

	suite.Require().NoError(err)
	suite.Equal(newWeight, updated.Weight)
}

// --- DeleteShipment ---

func (suite *ShipmentServiceTestSuite) TestDeleteShipment_Employee() {
	ctx := context.Background()
	shipment := &domain.Shipment{ShipmentID: "ship-1"}

	suite.mockShipmentRepo.On("FindShipmentByID", ctx, "ship-1").Return(shipment, nil).Once()
	suite.mockShipmentRepo.On("DeleteShipment", ctx, "ship-1").Return(nil).Once()

	err := suite.service.DeleteShipment(ctx, suite.employeeActor, "ship-1")

	suite.Require().NoError(err)
}

func (suite *ShipmentServiceTestSuite) TestDeleteShipment_ClientForbiddenEvenAsSender() {
	ctx := context.Background()
	shipment := &domain.Shipment{ShipmentID: "ship-1", SenderID: "c1"}

	suite.mockShipmentRepo.On("FindShipmentByID", ctx, "ship-1").Return(shipment, nil).Once()

	err := suite.service.DeleteShipment(ctx, suite.clientActor, "ship-1")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockShipmentRepo.AssertNotCalled(suite.T(), "DeleteShipment")
}

// --- ListShipments ---

func (suite *ShipmentServiceTestSuite) TestListShipments_ClientScopedToOwn() {
	ctx := context.Background()
	own := []domain.Shipment{{ShipmentID: "ship-1", SenderID: "c1"}}

	suite.expectClientResolution("c1")
	suite.mockShipmentRepo.On("FindShipmentsByClient", ctx, "c1").Return(own, nil).Once()

	shipments, err := suite.service.ListShipments(ctx, suite.clientActor)

	suite.Require().NoError(err)
	suite.Len(shipments, 1)
	suite.mockShipmentRepo.AssertNotCalled(suite.T(), "FindShipments")
}

func TestShipmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentServiceTestSuite))
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/swiftcargo/logistics_app/internal/core/domain"
	portssvc "github.com/swiftcargo/logistics_app/internal/core/ports/services"
	"github.com/swiftcargo/logistics_app/internal/dto"
	"github.com/swiftcargo/logistics_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// shipmentHandler handles HTTP requests related to shipments.
type shipmentHandler struct {
	shipmentService portssvc.ShipmentSvcFacade
}

// newShipmentHandler creates a new shipmentHandler.
func newShipmentHandler(ss portssvc.ShipmentSvcFacade) *shipmentHandler {
	return &shipmentHandler{
		shipmentService: ss,
	}
}

// registerShipmentRoutes registers routes related to shipments. It also
// registers REPORT routes nested under the shipment group.
func registerShipmentRoutes(rg *gin.RouterGroup, shipmentService portssvc.ShipmentSvcFacade, reportingService portssvc.ReportingService) {
	h := newShipmentHandler(shipmentService)

	shipments := rg.Group("/shipment")
	{
		shipments.POST("", h.createShipment)
		shipments.GET("", h.listShipments)
		shipments.GET("/:shipment_id", h.getShipment)
		shipments.PUT("/:shipment_id", h.updateShipment)
		shipments.DELETE("/:shipment_id", h.deleteShipment)

		// -- NESTED REPORT ROUTES --
		registerReportingRoutes(shipments, reportingService)
	}
}

// createShipment godoc
// @Summary Register a new shipment
// @Description Registers a new shipment in status PENDING. A client caller must be the sender.
// @Tags shipments
// @Accept json
// @Produce json
// @Param shipment body dto.CreateShipmentRequest true "Shipment details"
// @Success 201 {object} dto.ShipmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Tracking number already in use"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipment [post]
func (h *shipmentHandler) createShipment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shipment, err := h.shipmentService.CreateShipment(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create shipment")
		return
	}

	logger.Info("Shipment created",
		slog.String("shipment_id", shipment.ShipmentID),
		slog.String("tracking_number", shipment.TrackingNumber),
	)
	c.JSON(http.StatusCreated, dto.ToShipmentResponse(shipment))
}

// listShipments godoc
// @Summary List shipments
// @Description Retrieves shipments visible to the caller: all for employees, own for clients.
// @Tags shipments
// @Produce json
// @Success 200 {object} dto.ListShipmentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipment [get]
func (h *shipmentHandler) listShipments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shipments, err := h.shipmentService.ListShipments(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list shipments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListShipmentsResponse(shipments))
}

// getShipment godoc
// @Summary Get a shipment
// @Description Retrieves a single shipment. Clients may only see shipments where they are sender or receiver.
// @Tags shipments
// @Produce json
// @Param shipment_id path string true "Shipment ID"
// @Success 200 {object} dto.ShipmentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipment/{shipment_id} [get]
func (h *shipmentHandler) getShipment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shipment, err := h.shipmentService.GetShipmentByID(c.Request.Context(), actor, c.Param("shipment_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get shipment")
		return
	}

	c.JSON(http.StatusOK, dto.ToShipmentResponse(shipment))
}

// updateShipment godoc
// @Summary Update a shipment
// @Description Updates a shipment. Editable fields in the body are patched; a status field additionally performs a status transition (DELIVERED sets the received date). Employee-only.
// @Tags shipments
// @Accept json
// @Produce json
// @Param shipment_id path string true "Shipment ID"
// @Param shipment body dto.UpdateShipmentRequest true "Fields to update"
// @Success 200 {object} dto.ShipmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipment/{shipment_id} [put]
func (h *shipmentHandler) updateShipment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shipmentID := c.Param("shipment_id")

	hasFields := req.Weight != nil || req.Dimensions != nil || req.Description != nil

	var err error
	var shipment *domain.Shipment
	if hasFields || req.Status == nil {
		shipment, err = h.shipmentService.UpdateShipmentFields(c.Request.Context(), actor, shipmentID, dto.UpdateShipmentFieldsRequest{
			Weight:      req.Weight,
			Dimensions:  req.Dimensions,
			Description: req.Description,
		})
		if err != nil {
			respondServiceError(c, logger, err, "Failed to update shipment")
			return
		}
	}
	if req.Status != nil {
		shipment, err = h.shipmentService.UpdateShipmentStatus(c.Request.Context(), actor, shipmentID, dto.UpdateShipmentStatusRequest{
			Status:       *req.Status,
			ReceivedDate: req.ReceivedDate,
		})
		if err != nil {
			respondServiceError(c, logger, err, "Failed to update shipment")
			return
		}
	}

	logger.Info("Shipment updated", slog.String("shipment_id", shipment.ShipmentID), slog.String("status", string(shipment.Status)))
	c.JSON(http.StatusOK, dto.ToShipmentResponse(shipment))
}

// deleteShipment godoc
// @Summary Delete a shipment
// @Description Removes a shipment. Employee-only.
// @Tags shipments
// @Produce json
// @Param shipment_id path string true "Shipment ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipment/{shipment_id} [delete]
func (h *shipmentHandler) deleteShipment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shipmentID := c.Param("shipment_id")
	if err := h.shipmentService.DeleteShipment(c.Request.Context(), actor, shipmentID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete shipment")
		return
	}

	logger.Info("Shipment deleted", slog.String("shipment_id", shipmentID))
	c.Status(http.StatusNoContent)
}

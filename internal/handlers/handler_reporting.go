package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/swiftcargo/logistics_app/internal/core/ports/services"
	"github.com/swiftcargo/logistics_app/internal/dto"
	"github.com/swiftcargo/logistics_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to shipment reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the report routes nested under the
// shipment group.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/all-shipments", h.getAllShipments)
		reports.GET("/by-employee/:employee_id", h.getShipmentsByEmployee)
		reports.GET("/by-sender/:client_id", h.getShipmentsBySender)
		reports.GET("/by-receiver/:client_id", h.getShipmentsByReceiver)
		reports.GET("/undelivered", h.getUndeliveredShipments)
		reports.GET("/revenue", h.getRevenue)
	}
}

// getAllShipments godoc
// @Summary All shipments report
// @Description Lists every shipment. Employee-only.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ListShipmentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipment/reports/all-shipments [get]
func (h *reportingHandler) getAllShipments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shipments, err := h.reportingService.AllShipments(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ToListShipmentsResponse(shipments))
}

// getShipmentsByEmployee godoc
// @Summary Shipments registered by an employee
// @Description Lists shipments registered by the given employee. Employee-only.
// @Tags reports
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} dto.ListShipmentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipment/reports/by-employee/{employee_id} [get]
func (h *reportingHandler) getShipmentsByEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shipments, err := h.reportingService.ShipmentsByEmployee(c.Request.Context(), actor, c.Param("employee_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ToListShipmentsResponse(shipments))
}

// getShipmentsBySender godoc
// @Summary Shipments sent by a client
// @Description Lists shipments where the given client is the sender. Clients may only query their own profile.
// @Tags reports
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} dto.ListShipmentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipment/reports/by-sender/{client_id} [get]
func (h *reportingHandler) getShipmentsBySender(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shipments, err := h.reportingService.ShipmentsBySender(c.Request.Context(), actor, c.Param("client_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ToListShipmentsResponse(shipments))
}

// getShipmentsByReceiver godoc
// @Summary Shipments received by a client
// @Description Lists shipments where the given client is the receiver. Clients may only query their own profile.
// @Tags reports
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} dto.ListShipmentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipment/reports/by-receiver/{client_id} [get]
func (h *reportingHandler) getShipmentsByReceiver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shipments, err := h.reportingService.ShipmentsByReceiver(c.Request.Context(), actor, c.Param("client_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ToListShipmentsResponse(shipments))
}

// getUndeliveredShipments godoc
// @Summary Undelivered shipments report
// @Description Lists shipments still in flight. Employee-only.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ListShipmentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipment/reports/undelivered [get]
func (h *reportingHandler) getUndeliveredShipments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shipments, err := h.reportingService.UndeliveredShipments(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ToListShipmentsResponse(shipments))
}

// getRevenue godoc
// @Summary Revenue report
// @Description Sums the price of delivered shipments sent within the inclusive date bounds. Employee-only.
// @Tags reports
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.RevenueReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipment/reports/revenue [get]
func (h *reportingHandler) getRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.RevenueReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var start, end *time.Time
	if params.StartDate != nil {
		t, err := time.Parse(dto.DateOnly, *params.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid start_date. Use YYYY-MM-DD"})
			return
		}
		start = &t
	}
	if params.EndDate != nil {
		t, err := time.Parse(dto.DateOnly, *params.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid end_date. Use YYYY-MM-DD"})
			return
		}
		// The end bound covers the whole day.
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		end = &t
	}

	report, err := h.reportingService.RevenueByPeriod(c.Request.Context(), actor, start, end)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ToRevenueReportResponse(report))
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/swiftcargo/logistics_app/internal/core/ports/services"
	"github.com/swiftcargo/logistics_app/internal/dto"
	"github.com/swiftcargo/logistics_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// officeHandler handles HTTP requests related to offices.
type officeHandler struct {
	officeService portssvc.OfficeSvcFacade
}

// newOfficeHandler creates a new officeHandler.
func newOfficeHandler(os portssvc.OfficeSvcFacade) *officeHandler {
	return &officeHandler{
		officeService: os,
	}
}

// registerOfficeRoutes registers routes related to offices.
func registerOfficeRoutes(rg *gin.RouterGroup, officeService portssvc.OfficeSvcFacade) {
	h := newOfficeHandler(officeService)

	offices := rg.Group("/office")
	{
		offices.POST("", h.createOffice)
		offices.GET("", h.listOffices)
		offices.GET("/:office_id", h.getOffice)
		offices.PUT("/:office_id", h.updateOffice)
		offices.DELETE("/:office_id", h.deleteOffice)
	}
}

// createOffice godoc
// @Summary Create a new office
// @Description Creates a new office under an existing company. Employee-only.
// @Tags offices
// @Accept json
// @Produce json
// @Param office body dto.CreateOfficeRequest true "Office details"
// @Success 201 {object} dto.OfficeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /office [post]
func (h *officeHandler) createOffice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	office, err := h.officeService.CreateOffice(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create office")
		return
	}

	logger.Info("Office created", slog.String("office_id", office.OfficeID), slog.String("company_id", office.CompanyID))
	c.JSON(http.StatusCreated, dto.ToOfficeResponse(office))
}

// listOffices godoc
// @Summary List offices
// @Description Retrieves offices, optionally filtered by company.
// @Tags offices
// @Produce json
// @Param company_id query string false "Filter by company ID"
// @Success 200 {object} dto.ListOfficesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /office [get]
func (h *officeHandler) listOffices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListOfficesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	offices, err := h.officeService.ListOffices(c.Request.Context(), actor, params.CompanyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list offices")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOfficesResponse(offices))
}

// getOffice godoc
// @Summary Get an office
// @Description Retrieves a single office by ID.
// @Tags offices
// @Produce json
// @Param office_id path string true "Office ID"
// @Success 200 {object} dto.OfficeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /office/{office_id} [get]
func (h *officeHandler) getOffice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	office, err := h.officeService.GetOfficeByID(c.Request.Context(), actor, c.Param("office_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get office")
		return
	}

	c.JSON(http.StatusOK, dto.ToOfficeResponse(office))
}

// updateOffice godoc
// @Summary Update an office
// @Description Updates office details. Employee-only.
// @Tags offices
// @Accept json
// @Produce json
// @Param office_id path string true "Office ID"
// @Param office body dto.UpdateOfficeRequest true "Fields to update"
// @Success 200 {object} dto.OfficeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /office/{office_id} [put]
func (h *officeHandler) updateOffice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	office, err := h.officeService.UpdateOffice(c.Request.Context(), actor, c.Param("office_id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update office")
		return
	}

	logger.Info("Office updated", slog.String("office_id", office.OfficeID))
	c.JSON(http.StatusOK, dto.ToOfficeResponse(office))
}

// deleteOffice godoc
// @Summary Delete an office
// @Description Removes an office. Employee-only.
// @Tags offices
// @Produce json
// @Param office_id path string true "Office ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /office/{office_id} [delete]
func (h *officeHandler) deleteOffice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	officeID := c.Param("office_id")
	if err := h.officeService.DeleteOffice(c.Request.Context(), actor, officeID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete office")
		return
	}

	logger.Info("Office deleted", slog.String("office_id", officeID))
	c.Status(http.StatusNoContent)
}

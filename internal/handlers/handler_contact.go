package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/swiftcargo/logistics_app/internal/dto"
	"github.com/swiftcargo/logistics_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// registerContactRoutes sets up the public contact form route. It is rate
// limited since it accepts unauthenticated input.
func registerContactRoutes(rg *gin.Engine) {
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	rg.POST("/api/contact", limitMiddleware, postContact)
}

// postContact godoc
// @Summary Submit the contact form
// @Description Accepts a public contact message. The message is logged for
// @Description follow-up; no account is required.
// @Tags contact
// @Accept json
// @Produce json
// @Param contact body dto.ContactRequest true "Contact message"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} ErrorResponse
// @Router /contact [post]
func postContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	logger.Info("Contact message received",
		slog.String("name", req.Name),
		slog.String("email", req.Email),
		slog.Int("message_length", len(req.Message)),
	)

	c.JSON(http.StatusOK, dto.ContactResponse{Message: "Thank you for contacting us. We will get back to you shortly."})
}

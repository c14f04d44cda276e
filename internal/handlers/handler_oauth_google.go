package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/swiftcargo/logistics_app/internal/core/domain"
	portssvc "github.com/swiftcargo/logistics_app/internal/core/ports/services"
	"github.com/swiftcargo/logistics_app/internal/dto"
	"github.com/swiftcargo/logistics_app/internal/middleware"
	"github.com/swiftcargo/logistics_app/internal/platform/config"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

// oauthStateCookieName holds the CSRF state between the login redirect and the
// provider callback.
const oauthStateCookieName = "oauth_state"

// GoogleOAuthHandler handles Google OAuth related requests. Successful sign-in
// issues the same token pair as a password login; first sign-in provisions a
// CLIENT user with a client profile.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	auth               *AuthHandler
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	auth *AuthHandler,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		auth:               auth,
	}
}

// registerGoogleOAuthRoutes sets up the Google sign-in routes under the public
// auth group.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, NewAuthHandler(services.User, services.Token, cfg))

	google := rg.Group("/google")
	{
		google.GET("/login", h.GoogleLoginURL)
		google.POST("/exchange-code", h.ExchangeCodeGoogle)
		google.POST("/verify-id-token", h.VerifyGoogleIDToken)
	}
}

// GoogleLoginURL godoc
// @Summary Get Google login URL
// @Description Returns the Google consent page URL and sets a CSRF state cookie.
// @Tags oauth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) GoogleLoginURL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, state, 300, "/api/auth/google", "", h.auth.cfg.IsProduction, true)

	c.JSON(http.StatusOK, gin.H{"url": h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state)})
}

// ExchangeCodeGoogle godoc
// @Summary Exchange authorization code for tokens
// @Description Exchanges a Google authorization code, validates the ID token, provisions the user if needed, and returns an access token plus refresh cookie.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body dto.GoogleCodeExchangeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.GoogleCodeExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve ID token from Google"})
		return
	}

	h.signInWithIDToken(c, idTokenString)
}

// VerifyGoogleIDToken godoc
// @Summary Sign in with a Google ID token
// @Description Validates an ID token obtained client-side and returns an access token plus refresh cookie.
// @Tags oauth
// @Accept json
// @Produce json
// @Param id_token body dto.GoogleIDTokenRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/verify-id-token [post]
func (h *GoogleOAuthHandler) VerifyGoogleIDToken(c *gin.Context) {
	var req dto.GoogleIDTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	h.signInWithIDToken(c, req.IDToken)
}

// signInWithIDToken validates the Google ID token, finds or creates the local
// user, and starts a session.
func (h *GoogleOAuthHandler) signInWithIDToken(c *gin.Context, idTokenString string) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	info := googleUserInfoFromPayload(payload)
	if info.ID == "" || info.Email == "" {
		logger.Error("Essential claims missing from Google ID token payload")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Essential user information missing from Google token"})
		return
	}

	user, err := h.userService.FindOrCreateUserFromGoogle(ctx, info)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to process Google sign-in")
		return
	}

	resp, err := h.auth.startSession(c, user)
	if err != nil {
		logger.Error("Failed to start session after Google sign-in", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User signed in via Google", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}

// googleUserInfoFromPayload extracts the claims we act on from a validated ID
// token payload.
func googleUserInfoFromPayload(payload *idtoken.Payload) *domain.GoogleUserInfo {
	info := &domain.GoogleUserInfo{ID: payload.Subject}
	info.Email, _ = payload.Claims["email"].(string)
	info.VerifiedEmail, _ = payload.Claims["email_verified"].(bool)
	info.Name, _ = payload.Claims["name"].(string)
	info.GivenName, _ = payload.Claims["given_name"].(string)
	info.FamilyName, _ = payload.Claims["family_name"].(string)
	return info
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/swiftcargo/logistics_app/internal/core/authz"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
)

// userIDKey and userRoleKey are the keys used to store the authenticated
// identity in the request context.
const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		userID, ok := v.(string)
		return userID, ok
	}
	return "", false
}

// GetUserRoleFromContext retrieves the authenticated user's role from the Gin
// context.
func GetUserRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	if v := c.Request.Context().Value(userRoleKey); v != nil {
		role, ok := v.(domain.UserRole)
		return role, ok
	}
	return "", false
}

// GetActorFromContext builds the authorization actor for the current request.
// The client profile ID is resolved later by services that need ownership
// checks.
func GetActorFromContext(c *gin.Context) (authz.Actor, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return authz.Actor{}, false
	}
	role, ok := GetUserRoleFromContext(c)
	if !ok {
		return authz.Actor{}, false
	}
	return authz.Actor{UserID: userID, Role: role}, true
}

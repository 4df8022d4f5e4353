package security

import (
	"github.com/gin-gonic/gin"

	"github.com/edumart/edumart-api/internal/domain/entity"
)

const claimsContextKey = "user_claims"

// SetCurrentClaims stores the authenticated user's claims on the request context
func SetCurrentClaims(c *gin.Context, claims *UserClaims) {
	c.Set(claimsContextKey, claims)
}

// GetCurrentClaims returns the authenticated user's claims, if present
func GetCurrentClaims(c *gin.Context) (*UserClaims, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*UserClaims)
	return claims, ok
}

// GetCurrentUserID returns the authenticated user's ID as a hex string
func GetCurrentUserID(c *gin.Context) (string, bool) {
	claims, ok := GetCurrentClaims(c)
	if !ok {
		return "", false
	}
	return claims.UserID, true
}

// IsAdmin reports whether the authenticated user has the admin role
func IsAdmin(c *gin.Context) bool {
	claims, ok := GetCurrentClaims(c)
	return ok && claims.Role == entity.RoleAdmin
}

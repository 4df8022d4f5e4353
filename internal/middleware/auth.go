package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/dto/response"
	"github.com/edumart/edumart-api/internal/security"
)

// AuthMiddleware provides authentication middleware
type AuthMiddleware struct {
	jwtProvider *security.JWTProvider
}

// NewAuthMiddleware creates a new AuthMiddleware instance
func NewAuthMiddleware(jwtProvider *security.JWTProvider) *AuthMiddleware {
	return &AuthMiddleware{jwtProvider: jwtProvider}
}

// Authenticate validates the access token and sets the user in context.
// Clients send the raw token in the access-token header.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("access-token")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, response.NewError[any]("access token required"))
			c.Abort()
			return
		}

		claims, err := m.jwtProvider.ValidateAccessToken(tokenString)
		if err != nil {
			switch err {
			case security.ErrExpiredToken:
				c.JSON(http.StatusUnauthorized, response.NewError[any]("token has expired"))
			default:
				c.JSON(http.StatusUnauthorized, response.NewError[any]("invalid token"))
			}
			c.Abort()
			return
		}

		security.SetCurrentClaims(c, claims)

		c.Next()
	}
}

// OptionalAuth validates the access token if present but doesn't require it
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("access-token")
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := m.jwtProvider.ValidateAccessToken(tokenString)
		if err == nil {
			security.SetCurrentClaims(c, claims)
		}

		c.Next()
	}
}

// RequireRole checks if the user has one of the required roles
func (m *AuthMiddleware) RequireRole(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := security.GetCurrentClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, response.NewError[any]("authentication required"))
			c.Abort()
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, response.NewError[any]("insufficient permissions"))
		c.Abort()
	}
}

// RequireAdmin checks if the user is an admin
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRole(entity.RoleAdmin)
}

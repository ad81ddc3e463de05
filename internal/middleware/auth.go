package middleware

import (
	"net/http"
	"strings"

	"patient-appointment-system/internal/models"
	"patient-appointment-system/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Context keys populated by AuthMiddleware.
const (
	ContextPrincipalID   = "principalID"
	ContextPrincipalType = "principalType"
)

// AuthMiddleware validates the JWT access token from the Authorization
// header and injects the session principal into the request context.
// Every protected handler can rely on the principal being present.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		claims, err := utils.ValidateAccessToken(parts[1])
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextPrincipalID, claims.PrincipalID)
		c.Set(ContextPrincipalType, claims.PrincipalType)

		c.Next()
	}
}

// RequirePrincipal checks that the authenticated principal is of the given
// type ("doctor" or "patient")
func RequirePrincipal(principalType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ptype, exists := c.Get(ContextPrincipalType)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if ptype != principalType {
			utils.ErrorResponse(c, http.StatusForbidden, principalType+" access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireDoctor restricts a route to authenticated doctors
func RequireDoctor() gin.HandlerFunc {
	return RequirePrincipal(models.PrincipalDoctor)
}

// RequirePatient restricts a route to authenticated patients
func RequirePatient() gin.HandlerFunc {
	return RequirePrincipal(models.PrincipalPatient)
}

package middleware

import (
	"fmt"
	"strings"

	jwtpkg "github.com/curbsidelabs/trucktrack/internal/pkg/jwt"
	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/curbsidelabs/trucktrack/internal/utils"
	"github.com/labstack/echo/v4"
)

// Context keys set by the JWT middleware
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// Roles carried in JWT claims
const (
	RoleOwner    = "owner"
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, ok := claims["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := claims["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			c.Set(ContextUserID, fmt.Sprintf("%v", userID))
			c.Set(ContextUserRole, fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}

// RequireRole enforces that the authenticated caller holds one of the
// given roles. Must run after JWTAuthMiddleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := UserRole(c)
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient role")
		}
	}
}

// UserID returns the authenticated user id from the request context
func UserID(c echo.Context) string {
	if v, ok := c.Get(ContextUserID).(string); ok {
		return v
	}
	return ""
}

// UserRole returns the authenticated user role from the request context
func UserRole(c echo.Context) string {
	if v, ok := c.Get(ContextUserRole).(string); ok {
		return v
	}
	return ""
}

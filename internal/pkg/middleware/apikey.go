package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/curbsidelabs/trucktrack/internal/utils"
	"github.com/labstack/echo/v4"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ServiceAPIKeys maps internal job names to their API keys.
var ServiceAPIKeys = map[string]string{
	"social-scraper": os.Getenv("SOCIAL_SCRAPER_API_KEY"),
	"admin-tools":    os.Getenv("ADMIN_TOOLS_API_KEY"),
}

// ValidateAPIKey middleware validates the API key for internal job routes
func ValidateAPIKey(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			validKey := false
			for _, service := range allowedServices {
				known := ServiceAPIKeys[service]
				if known != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(known)) == 1 {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}

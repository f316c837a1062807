package middleware

import (
	"time"

	"github.com/curbsidelabs/trucktrack/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestLoggerMiddleware logs every request with latency and status,
// assigning a request id when the caller did not send one.
func RequestLoggerMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			err := next(c)

			latency := time.Since(start)
			status := c.Response().Status

			userID := UserID(c)
			if userID == "" {
				userID = "anonymous"
			}

			fields := []logger.Field{
				logger.Int("status", status),
				logger.Duration("latency", latency),
				logger.String("client_ip", c.RealIP()),
				logger.String("method", c.Request().Method),
				logger.String("path", path),
				logger.String("user_id", userID),
				logger.String("request_id", requestID),
			}

			switch {
			case status >= 500:
				zapLogger.Error("Server error", fields...)
			case status >= 400:
				zapLogger.Warn("Client error", fields...)
			default:
				zapLogger.Info("Request processed", fields...)
			}

			return err
		}
	}
}

package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"travelin/internal/utils"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics
// and logs them with a stack trace
func PanicRecoveryMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.WithFields(logrus.Fields{
						"panic":      r,
						"method":     c.Request().Method,
						"path":       c.Request().URL.Path,
						"request_id": c.Response().Header().Get("X-Request-ID"),
						"stack":      string(debug.Stack()),
					}).Error("Recovered from panic")

					_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fhelderls/eventflow-kanban/internal/dto"
)

// ErrorHandler renders every error as a JSON ErrorResponse. Server-side
// failures are logged in full and surfaced to the client as a generic
// internal error; the taxonomy errors pass through with their detail intact.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		resp := dto.ErrorResponse{Message: "internal error"}

		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			switch m := he.Message.(type) {
			case dto.ErrorResponse:
				resp = m
			case string:
				resp.Message = m
			}
		}

		if code >= http.StatusInternalServerError {
			cause := err
			if he, ok := err.(*echo.HTTPError); ok && he.Internal != nil {
				cause = he.Internal
			}
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(cause),
			)
			resp = dto.ErrorResponse{Message: "internal error"}
		}

		_ = c.JSON(code, resp)
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fhelderls/eventflow-kanban/internal/dto"
	"github.com/fhelderls/eventflow-kanban/internal/service"
)

// toHTTPError translates the service error taxonomy into HTTP responses.
// Guard failures keep their structured detail so the caller can render the
// exact missing categories or conflicting events.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrEquipmentNotFound),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrAllocationNotFound),
		errors.Is(err, service.ErrTaskNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEventClosed):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
	}

	var conflictErr *service.ConflictError
	if errors.As(err, &conflictErr) {
		return echo.NewHTTPError(http.StatusConflict, dto.ErrorResponse{
			Message: conflictErr.Error(),
			Details: map[string]any{
				"equipment":          conflictErr.EquipmentName,
				"conflicting_events": conflictErr.Events,
			},
		})
	}

	var referentialErr *service.ReferentialError
	if errors.As(err, &referentialErr) {
		return echo.NewHTTPError(http.StatusConflict, referentialErr.Error())
	}

	var preconditionsErr *service.PreconditionsError
	if errors.As(err, &preconditionsErr) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Message: preconditionsErr.Error(),
			Details: map[string]any{
				"missing_fields":     preconditionsErr.MissingFields,
				"missing_categories": preconditionsErr.MissingCategories,
				"incomplete_tasks":   preconditionsErr.IncompleteTasks,
			},
		})
	}

	var transitionErr *service.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, transitionErr.Error())
	}

	// Anything unclassified is a storage or infrastructure failure. The raw
	// error stays on Internal for the error handler to log; the client only
	// ever sees the generic message.
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error").SetInternal(err)
}

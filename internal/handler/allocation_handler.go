package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fhelderls/eventflow-kanban/internal/dto"
	"github.com/fhelderls/eventflow-kanban/internal/models"
	"github.com/fhelderls/eventflow-kanban/internal/service"
)

type AllocationHandler struct {
	svc service.AllocationService
}

func NewAllocationHandler(svc service.AllocationService) *AllocationHandler {
	return &AllocationHandler{svc: svc}
}

func (h *AllocationHandler) RegisterRoutes(e *echo.Echo) {
	events := e.Group("/api/v1/events")
	events.GET("/:id/equipment", h.ListForEvent)
	events.POST("/:id/equipment", h.Add)

	e.PATCH("/api/v1/allocations/:id", h.Update)
	e.DELETE("/api/v1/allocations/:id", h.Remove)
}

func (h *AllocationHandler) ListForEvent(c echo.Context) error {
	eventID, err := parseID(c)
	if err != nil {
		return err
	}

	allocations, err := h.svc.ListForEvent(c.Request().Context(), eventID)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.AllocationResponse, len(allocations))
	for i := range allocations {
		resp[i] = dto.ToAllocationResponse(&allocations[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AllocationHandler) Add(c echo.Context) error {
	eventID, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.AddAllocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	allocation, err := h.svc.Add(c.Request().Context(), eventID, service.AllocationInput{
		EquipmentID:  req.EquipmentID,
		Quantity:     req.Quantity,
		Status:       models.AllocationStatus(req.Status),
		Observations: req.Observations,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToAllocationResponse(allocation))
}

func (h *AllocationHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateAllocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	update := service.AllocationUpdate{
		Quantity:     req.Quantity,
		Observations: req.Observations,
	}
	if req.Status != nil {
		status := models.AllocationStatus(*req.Status)
		update.Status = &status
	}

	allocation, err := h.svc.Update(c.Request().Context(), id, update)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToAllocationResponse(allocation))
}

func (h *AllocationHandler) Remove(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Remove(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

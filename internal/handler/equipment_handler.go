package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fhelderls/eventflow-kanban/internal/dto"
	"github.com/fhelderls/eventflow-kanban/internal/models"
	"github.com/fhelderls/eventflow-kanban/internal/repository"
	"github.com/fhelderls/eventflow-kanban/internal/service"
)

type EquipmentHandler struct {
	svc      service.EquipmentService
	allocSvc service.AllocationService
}

func NewEquipmentHandler(svc service.EquipmentService, allocSvc service.AllocationService) *EquipmentHandler {
	return &EquipmentHandler{svc: svc, allocSvc: allocSvc}
}

func (h *EquipmentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListEquipment)
	g.POST("", h.CreateEquipment)
	g.GET("/:id", h.GetEquipment)
	g.PATCH("/:id", h.UpdateEquipment)
	g.DELETE("/:id", h.DeleteEquipment)
	g.GET("/:id/conflicts", h.CheckConflicts)
}

func (h *EquipmentHandler) CreateEquipment(c echo.Context) error {
	var req dto.CreateEquipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	equipment := &models.Equipment{
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Status:       models.EquipmentStatus(req.Status),
		Value:        req.Value,
		Observations: req.Observations,
	}
	if req.AcquisitionDate != nil {
		acquired, err := time.Parse(dateLayout, *req.AcquisitionDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "acquisition_date must be YYYY-MM-DD")
		}
		equipment.AcquisitionDate = &acquired
	}

	if err := h.svc.CreateEquipment(c.Request().Context(), equipment); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToEquipmentResponse(equipment))
}

func (h *EquipmentHandler) GetEquipment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	equipment, err := h.svc.GetEquipment(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToEquipmentResponse(equipment))
}

func (h *EquipmentHandler) ListEquipment(c echo.Context) error {
	var filter repository.EquipmentFilter
	if s := c.QueryParam("status"); s != "" {
		status := models.EquipmentStatus(s)
		if !status.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status filter")
		}
		filter.Status = &status
	}
	if cat := c.QueryParam("category"); cat != "" {
		filter.Category = &cat
	}

	equipment, err := h.svc.ListEquipment(c.Request().Context(), filter)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.EquipmentResponse, len(equipment))
	for i := range equipment {
		resp[i] = dto.ToEquipmentResponse(&equipment[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *EquipmentHandler) UpdateEquipment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateEquipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	update := service.EquipmentUpdate{
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Value:        req.Value,
		Observations: req.Observations,
	}
	if req.Status != nil {
		status := models.EquipmentStatus(*req.Status)
		update.Status = &status
	}
	if req.AcquisitionDate != nil {
		acquired, err := time.Parse(dateLayout, *req.AcquisitionDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "acquisition_date must be YYYY-MM-DD")
		}
		update.AcquisitionDate = &acquired
	}

	equipment, err := h.svc.UpdateEquipment(c.Request().Context(), id, update)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToEquipmentResponse(equipment))
}

func (h *EquipmentHandler) DeleteEquipment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteEquipment(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CheckConflicts is the availability probe the allocation picker calls while
// staff browse; the transactional insert remains the authoritative check.
func (h *EquipmentHandler) CheckConflicts(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	date, err := time.Parse(dateLayout, c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date query parameter must be YYYY-MM-DD")
	}

	var excludeEventID uint
	if ev := c.QueryParam("event_id"); ev != "" {
		parsed, err := strconv.ParseUint(ev, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid event_id")
		}
		excludeEventID = uint(parsed)
	}

	conflicts, err := h.allocSvc.CheckConflicts(c.Request().Context(), id, excludeEventID, date)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"has_conflicts": len(conflicts) > 0,
		"conflicts":     conflicts,
	})
}

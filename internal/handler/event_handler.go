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

const dateLayout = "2006-01-02"

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListEvents)
	g.POST("", h.CreateEvent)
	g.GET("/:id", h.GetEvent)
	g.PATCH("/:id", h.UpdateEvent)
	g.DELETE("/:id", h.DeleteEvent)
	g.POST("/:id/transition", h.TransitionEvent)
	g.GET("/:id/requirements", h.ValidateRequirements)
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	eventDate, err := time.Parse(dateLayout, req.EventDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "event_date must be YYYY-MM-DD")
	}

	event := &models.Event{
		Title:               req.Title,
		Description:         req.Description,
		ClientID:            req.ClientID,
		EventDate:           eventDate,
		EventTime:           req.EventTime,
		Status:              models.EventStatus(req.Status),
		Priority:            models.EventPriority(req.Priority),
		AddressStreet:       req.AddressStreet,
		AddressNumber:       req.AddressNumber,
		AddressComplement:   req.AddressComplement,
		AddressNeighborhood: req.AddressNeighborhood,
		AddressCity:         req.AddressCity,
		AddressState:        req.AddressState,
		AddressCEP:          req.AddressCEP,
		BarrelQuantity:      req.BarrelQuantity,
		EstimatedBudget:     req.EstimatedBudget,
		FinalBudget:         req.FinalBudget,
		AssignedStaff:       req.AssignedStaff,
		Observations:        req.Observations,
	}

	if err := h.svc.CreateEvent(c.Request().Context(), event); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	event, err := h.svc.GetEvent(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	var filter repository.EventFilter
	if s := c.QueryParam("status"); s != "" {
		status := models.EventStatus(s)
		if !status.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status filter")
		}
		filter.Status = &status
	}
	if p := c.QueryParam("priority"); p != "" {
		priority := models.EventPriority(p)
		if !priority.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown priority filter")
		}
		filter.Priority = &priority
	}
	if cid := c.QueryParam("client_id"); cid != "" {
		id, err := strconv.ParseUint(cid, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid client_id filter")
		}
		clientID := uint(id)
		filter.ClientID = &clientID
	}

	events, err := h.svc.ListEvents(c.Request().Context(), filter)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.EventResponse, len(events))
	for i := range events {
		resp[i] = dto.ToEventResponse(&events[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	update := service.EventUpdate{
		Title:               req.Title,
		Description:         req.Description,
		ClientID:            req.ClientID,
		EventTime:           req.EventTime,
		AddressStreet:       req.AddressStreet,
		AddressNumber:       req.AddressNumber,
		AddressComplement:   req.AddressComplement,
		AddressNeighborhood: req.AddressNeighborhood,
		AddressCity:         req.AddressCity,
		AddressState:        req.AddressState,
		AddressCEP:          req.AddressCEP,
		BarrelQuantity:      req.BarrelQuantity,
		EstimatedBudget:     req.EstimatedBudget,
		FinalBudget:         req.FinalBudget,
		AssignedStaff:       req.AssignedStaff,
		Observations:        req.Observations,
	}
	if req.EventDate != nil {
		eventDate, err := time.Parse(dateLayout, *req.EventDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "event_date must be YYYY-MM-DD")
		}
		update.EventDate = &eventDate
	}
	if req.Priority != nil {
		priority := models.EventPriority(*req.Priority)
		update.Priority = &priority
	}

	event, err := h.svc.UpdateEvent(c.Request().Context(), id, update)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteEvent(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EventHandler) TransitionEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.TransitionEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event, err := h.svc.Transition(c.Request().Context(), id, models.EventStatus(req.Status))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) ValidateRequirements(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	report, err := h.svc.ValidateRequirements(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, report)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

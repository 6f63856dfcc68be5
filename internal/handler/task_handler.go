package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fhelderls/eventflow-kanban/internal/dto"
	"github.com/fhelderls/eventflow-kanban/internal/middleware"
	"github.com/fhelderls/eventflow-kanban/internal/service"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(svc service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

func (h *TaskHandler) RegisterRoutes(e *echo.Echo) {
	events := e.Group("/api/v1/events")
	events.GET("/:id/tasks", h.ListForEvent)
	events.POST("/:id/tasks", h.CreateTask)

	e.PATCH("/api/v1/tasks/:id/toggle", h.ToggleTask)
	e.DELETE("/api/v1/tasks/:id", h.DeleteTask)
}

func (h *TaskHandler) ListForEvent(c echo.Context) error {
	eventID, err := parseID(c)
	if err != nil {
		return err
	}

	tasks, err := h.svc.ListForEvent(c.Request().Context(), eventID)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.TaskResponse, len(tasks))
	for i := range tasks {
		resp[i] = dto.ToTaskResponse(&tasks[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	eventID, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.svc.CreateTask(c.Request().Context(), eventID, req.Description, req.OrderIndex)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

func (h *TaskHandler) ToggleTask(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.ToggleTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.svc.ToggleTask(c.Request().Context(), id, *req.Completed, middleware.CurrentUser(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteTask(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fhelderls/eventflow-kanban/internal/dto"
	"github.com/fhelderls/eventflow-kanban/internal/models"
	"github.com/fhelderls/eventflow-kanban/internal/service"
)

type ClientHandler struct {
	svc service.ClientService
}

func NewClientHandler(svc service.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

func (h *ClientHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListClients)
	g.POST("", h.CreateClient)
	g.GET("/:id", h.GetClient)
	g.PATCH("/:id", h.UpdateClient)
	g.DELETE("/:id", h.DeleteClient)
}

func clientFromRequest(req *dto.ClientRequest) models.Client {
	return models.Client{
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		CpfCnpj:             req.CpfCnpj,
		CompanyName:         req.CompanyName,
		ContactPerson:       req.ContactPerson,
		AddressStreet:       req.AddressStreet,
		AddressNumber:       req.AddressNumber,
		AddressComplement:   req.AddressComplement,
		AddressNeighborhood: req.AddressNeighborhood,
		AddressCity:         req.AddressCity,
		AddressState:        req.AddressState,
		AddressCEP:          req.AddressCEP,
		Observations:        req.Observations,
	}
}

func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req dto.ClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	client := clientFromRequest(&req)
	if err := h.svc.CreateClient(c.Request().Context(), &client); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToClientResponse(&client))
}

func (h *ClientHandler) GetClient(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	client, err := h.svc.GetClient(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *ClientHandler) ListClients(c echo.Context) error {
	clients, err := h.svc.ListClients(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ClientResponse, len(clients))
	for i := range clients {
		resp[i] = dto.ToClientResponse(&clients[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ClientHandler) UpdateClient(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.ClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	client := clientFromRequest(&req)
	client.ID = id
	if err := h.svc.UpdateClient(c.Request().Context(), &client); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToClientResponse(&client))
}

func (h *ClientHandler) DeleteClient(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteClient(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

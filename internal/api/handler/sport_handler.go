package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sportsmeet/sportsmeet-api/internal/core/ports"
)

// SportHandler serves the public sport catalog. No identity is resolved on
// these routes.
type SportHandler struct {
	sports ports.SportRepository
}

func NewSportHandler(sports ports.SportRepository) *SportHandler {
	return &SportHandler{sports: sports}
}

// List returns the full sport catalog.
//
// @Summary      List sports
// @Tags         sports
// @Produce      json
// @Success      200  {array}  domain.Sport
// @Router       /sports [get]
func (h *SportHandler) List(c echo.Context) error {
	sports, err := h.sports.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sports)
}

// Get returns a single sport by ID.
func (h *SportHandler) Get(c echo.Context) error {
	sport, err := h.sports.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sport)
}

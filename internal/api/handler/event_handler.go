package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sportsmeet/sportsmeet-api/internal/api/metrics"
	"github.com/sportsmeet/sportsmeet-api/internal/core/ports"
)

// EventHandler serves meetup scheduling and participation. All routes are
// protected: handlers consume the resolved identity and never see raw tokens.
type EventHandler struct {
	eventService ports.EventService
}

func NewEventHandler(eventService ports.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create schedules a new meetup hosted by the caller.
//
// @Summary      Create an event
// @Tags         events
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      createEventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	event, err := h.eventService.Create(c.Request().Context(), identity.UserID, ports.CreateEventInput{
		SportID:  req.SportID,
		Title:    req.Title,
		Location: req.Location,
		StartsAt: req.StartsAt,
		Capacity: req.Capacity,
	})
	if err != nil {
		return err
	}

	metrics.EventsCreatedTotal.WithLabelValues(event.SportID).Inc()
	return c.JSON(http.StatusCreated, event)
}

// List returns upcoming events, optionally filtered by ?sport_id=.
func (h *EventHandler) List(c echo.Context) error {
	if _, err := requireIdentity(c); err != nil {
		return err
	}

	events, err := h.eventService.List(c.Request().Context(), c.QueryParam("sport_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Get returns a single event by ID.
func (h *EventHandler) Get(c echo.Context) error {
	if _, err := requireIdentity(c); err != nil {
		return err
	}

	event, err := h.eventService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Join adds the caller to an event's participant list.
//
// @Summary      Join an event
// @Tags         events
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  domain.Event
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /events/{id}/join [post]
func (h *EventHandler) Join(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	event, err := h.eventService.Join(c.Request().Context(), c.Param("id"), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Leave removes the caller from an event's participant list.
func (h *EventHandler) Leave(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	event, err := h.eventService.Leave(c.Request().Context(), c.Param("id"), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

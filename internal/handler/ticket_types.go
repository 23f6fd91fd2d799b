package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ListTicketTypes handles GET /v1/events/:id/ticket-types. Ticket types are
// owned by the event; the editor reads them to populate its palette and to
// resolve seat references at save time.
func (h *LayoutHandler) ListTicketTypes(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	types, err := h.TicketTypeRepo.ListByEvent(c.Request().Context(), eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load ticket types"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ticket_types": types})
}

// floatParam reads a float query parameter, falling back on absence or a
// parse failure.
func floatParam(c echo.Context, name string, def float64) float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

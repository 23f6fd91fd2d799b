// Package handler contains the HTTP handlers of the layout admin surface.
package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/TSKVenkat/bookd-sub000/internal/repository"
)

// LayoutHandler bundles the repositories the layout endpoints need.
type LayoutHandler struct {
	LayoutRepo     *repository.LayoutRepo
	TicketTypeRepo *repository.TicketTypeRepo
}

// NewLayoutHandler constructs a LayoutHandler and panics if a dependency is
// missing.
func NewLayoutHandler(layoutRepo *repository.LayoutRepo, ticketTypeRepo *repository.TicketTypeRepo) *LayoutHandler {
	if layoutRepo == nil || ticketTypeRepo == nil {
		panic("nil repository passed to NewLayoutHandler")
	}
	return &LayoutHandler{LayoutRepo: layoutRepo, TicketTypeRepo: ticketTypeRepo}
}

// getUserID extracts the user_id claim from the context and converts it to
// uint64.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// eventIDParam parses the :id path parameter.
func eventIDParam(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

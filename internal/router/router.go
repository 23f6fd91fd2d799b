// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/TSKVenkat/bookd-sub000/internal/handler"
	"github.com/TSKVenkat/bookd-sub000/internal/middleware"
)

// Register mounts all routes on the given Echo instance. The layout surface
// is organizer-only; token verification happens here so handlers can assume
// an authenticated context.
func Register(e *echo.Echo, h *handler.LayoutHandler, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1", middleware.JWTAuth(jwtSecret), middleware.RequireRole("ORGANIZER"))

	v1.GET("/events/:id/layout", h.GetLayout)
	v1.PUT("/events/:id/layout", h.SaveLayout)
	v1.GET("/events/:id/layout/preview", h.PreviewLayout)
	v1.GET("/events/:id/ticket-types", h.ListTicketTypes)
}

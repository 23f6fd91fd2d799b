package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/TSKVenkat/bookd-sub000/internal/document"
	"github.com/TSKVenkat/bookd-sub000/internal/queue"
	"github.com/TSKVenkat/bookd-sub000/internal/render"
	"github.com/TSKVenkat/bookd-sub000/internal/repository"
	queue_publisher "github.com/TSKVenkat/bookd-sub000/internal/service"
)

// GetLayout handles GET /v1/events/:id/layout. When no layout was ever
// saved the default document is returned so the editor always starts from
// a usable state.
func (h *LayoutHandler) GetLayout(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}

	raw, err := h.LayoutRepo.Get(c.Request().Context(), eventID)
	if err != nil {
		if errors.Is(err, repository.ErrLayoutNotFound) {
			// First access: serve the defaults. A malformed stored document
			// degrades the same way through Decode.
			return c.JSON(http.StatusOK, document.Serialize(document.Deserialize(document.LayoutDocument{})))
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load layout"})
	}
	doc := document.Decode(raw)
	return c.JSON(http.StatusOK, document.Serialize(document.Deserialize(doc)))
}

// SaveLayout handles PUT /v1/events/:id/layout. The document replaces the
// stored one wholesale. Seats with unresolved ticket types fail validation
// unless the client confirmed the default-ticket-type fallback with
// ?useDefaultTicketType=true. A broker outage never fails the save.
func (h *LayoutHandler) SaveLayout(c echo.Context) error {
	organizerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}

	var doc document.LayoutDocument
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	l := document.Deserialize(doc)

	types, err := h.TicketTypeRepo.ListByEvent(c.Request().Context(), eventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load ticket types"})
	}
	l.SetTicketTypes(types)

	if c.QueryParam("useDefaultTicketType") == "true" {
		document.ApplyDefaultTicketType(l)
	}
	if err := document.Validate(l); err != nil {
		var dangling *document.DanglingTicketTypeError
		if errors.As(err, &dangling) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"error":    "seats reference missing ticket types",
				"seat_ids": dangling.SeatIDs,
			})
		}
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}

	raw, err := document.Encode(document.Serialize(l))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to encode layout"})
	}
	if err := h.LayoutRepo.Save(c.Request().Context(), eventID, organizerID, raw); err != nil {
		switch {
		case errors.Is(err, repository.ErrEventNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		case errors.Is(err, repository.ErrEventInPast):
			return c.JSON(http.StatusConflict, echo.Map{"error": "event in the past"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save layout"})
		}
	}

	// Fire-and-forget: a slow or failing broker must not block editing.
	ev := queue.LayoutSavedEvent{
		EventID:      eventID,
		OrganizerID:  organizerID,
		SectionCount: len(l.Sections()),
		SeatCount:    len(l.Seats()),
		SavedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishLayoutSaved(ctx, ev)
	}()

	return c.JSON(http.StatusOK, echo.Map{
		"status":   "saved",
		"sections": len(l.Sections()),
		"seats":    len(l.Seats()),
	})
}

// PreviewLayout handles GET /v1/events/:id/layout/preview and returns the
// stored layout rendered as SVG. The backend is picked by item count; the
// optional x/y/width/height query parameters window the viewport.
func (h *LayoutHandler) PreviewLayout(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}

	raw, err := h.LayoutRepo.Get(c.Request().Context(), eventID)
	if err != nil && !errors.Is(err, repository.ErrLayoutNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load layout"})
	}
	l := document.Deserialize(document.Decode(raw))
	if types, err := h.TicketTypeRepo.ListByEvent(c.Request().Context(), eventID); err == nil {
		l.SetTicketTypes(types)
	}

	vp := render.Viewport{
		X:      floatParam(c, "x", 0),
		Y:      floatParam(c, "y", 0),
		Width:  floatParam(c, "width", l.Settings.VenueWidth),
		Height: floatParam(c, "height", l.Settings.VenueHeight),
		Zoom:   floatParam(c, "zoom", 1),
	}
	svg := render.ChooseRenderer(l.ItemCount()).Render(l, vp)
	return c.Blob(http.StatusOK, "image/svg+xml", []byte(svg))
}

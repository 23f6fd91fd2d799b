// Package render projects a layout onto a presentation backend. Two
// interchangeable backends exist: an immediate vector renderer for
// low-volume layouts and a retained scene-graph renderer that pays off once
// seat counts reach the thousands. Both are pure projections of the layout
// plus a viewport transform; neither mutates the model.
package render

import "github.com/TSKVenkat/bookd-sub000/internal/layout"

// Viewport is the visible window onto layout space.
type Viewport struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Zoom   float64 `json:"zoom"`
}

// Contains reports whether a layout-space point (padded by margin) is
// visible in the viewport.
func (v Viewport) Contains(x, y, margin float64) bool {
	return x >= v.X-margin && x <= v.X+v.Width+margin &&
		y >= v.Y-margin && y <= v.Y+v.Height+margin
}

// SceneRenderer turns a layout snapshot into SVG markup for a viewport.
type SceneRenderer interface {
	Render(l *layout.Layout, vp Viewport) string
}

// RetainedThreshold is the item count above which the retained scene-graph
// backend outperforms immediate re-rendering.
const RetainedThreshold = 2000

// ChooseRenderer picks the backend for the given item count. The selection
// logic deliberately lives outside both implementations.
func ChooseRenderer(itemCount int) SceneRenderer {
	if itemCount >= RetainedThreshold {
		return NewSceneGraphRenderer()
	}
	return NewVectorRenderer()
}

// Display colors per seat status.
var statusColors = map[layout.SeatStatus]string{
	layout.SeatAvailable:   "#2ecc71",
	layout.SeatReserved:    "#f39c12",
	layout.SeatSold:        "#e74c3c",
	layout.SeatBooked:      "#9b59b6",
	layout.SeatUnavailable: "#7f8c8d",
	layout.SeatSelected:    "#3498db",
}

// seatColor resolves a seat's fill: ticket-type color when resolvable and
// the seat is plain available, status color otherwise.
func seatColor(l *layout.Layout, s *layout.Seat) string {
	if s.Status == layout.SeatAvailable && s.TicketTypeID != "" {
		if tt, ok := l.TicketTypeByID(s.TicketTypeID); ok && tt.Color != "" {
			return tt.Color
		}
	}
	if c, ok := statusColors[s.Status]; ok {
		return c
	}
	return statusColors[layout.SeatAvailable]
}

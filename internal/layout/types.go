// Package layout holds the venue layout data model: ticket types, seats,
// sections, the stage and the venue-wide settings, plus the aggregate that
// keeps them referentially consistent. Procedural seat generation and
// pointer hit-testing live here too since both operate on this model.
package layout

import (
	"strconv"

	"github.com/TSKVenkat/bookd-sub000/internal/geometry"
)

// SeatStatus is the display/business state of a seat. It is not a geometry
// property; the engine only consults it for selection and mutation rules.
type SeatStatus string

const (
	SeatAvailable   SeatStatus = "available"
	SeatReserved    SeatStatus = "reserved"
	SeatSold        SeatStatus = "sold"
	SeatBooked      SeatStatus = "booked"
	SeatUnavailable SeatStatus = "unavailable"
	SeatSelected    SeatStatus = "selected"
)

// Selectable reports whether a seat in this status may enter the
// multi-select set.
func (s SeatStatus) Selectable() bool {
	return s != SeatBooked && s != SeatUnavailable
}

// Deletable reports whether a seat in this status may be removed by the
// delete tool or a bulk delete.
func (s SeatStatus) Deletable() bool {
	return s != SeatReserved && s != SeatSold
}

// Assignable reports whether a seat in this status may have its ticket type
// changed.
func (s SeatStatus) Assignable() bool {
	return s != SeatReserved && s != SeatSold
}

// TicketType is a price tier owned by the event and referenced by seats.
// The engine consumes ticket types read-only.
type TicketType struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Color    string  `json:"color"`
	Capacity *int    `json:"capacity,omitempty"`
	IsPublic bool    `json:"isPublic"`
}

// Seat is an individually addressable position. SectionID, when set, is a
// lookup back-reference to the section that generated the seat, never an
// ownership edge. TicketTypeID may dangle in memory; it is resolved at save
// time.
type Seat struct {
	ID              string     `json:"id"`
	Row             string     `json:"row"`
	Number          int        `json:"number"`
	X               float64    `json:"x"`
	Y               float64    `json:"y"`
	RotationDegrees float64    `json:"rotationDegrees"`
	Status          SeatStatus `json:"status"`
	SeatKind        string     `json:"seatKind"`
	TicketTypeID    string     `json:"ticketTypeId,omitempty"`
	SectionID       string     `json:"sectionId,omitempty"`
}

// Position returns the seat position as a point.
func (s *Seat) Position() geometry.Point {
	return geometry.Point{X: s.X, Y: s.Y}
}

// Label returns the UI-facing "R{row}{number}" label.
func (s *Seat) Label() string {
	return s.Row + strconv.Itoa(s.Number)
}

// ArcData describes the annular geometry of an arc section.
type ArcData struct {
	CenterX       float64 `json:"centerX"`
	CenterY       float64 `json:"centerY"`
	InnerRadius   float64 `json:"innerRadius"`
	OuterRadius   float64 `json:"outerRadius"`
	StartAngleDeg float64 `json:"startAngleDeg"`
	EndAngleDeg   float64 `json:"endAngleDeg"`
	Rows          int     `json:"rows"`
}

// Center returns the arc center as a point.
func (a *ArcData) Center() geometry.Point {
	return geometry.Point{X: a.CenterX, Y: a.CenterY}
}

// Section is a named seating area carrying its own generation recipe.
// X/Y/Width/Height form the axis-aligned bounding box in layout space; for
// arc sections the box is the circumscribing square of the outer radius and
// is kept in sync with Arc by the aggregate.
type Section struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	X               float64  `json:"x"`
	Y               float64  `json:"y"`
	Width           float64  `json:"width"`
	Height          float64  `json:"height"`
	Color           string   `json:"color"`
	RotationDegrees float64  `json:"rotationDegrees"`
	Rows            int      `json:"rows"`
	SeatsPerRow     int      `json:"seatsPerRow"`
	RowSpacing      float64  `json:"rowSpacing"`
	SeatSpacing     float64  `json:"seatSpacing"`
	RowStartLabel   string   `json:"rowStartLabel"`
	SeatStartNumber int      `json:"seatStartNumber"`
	IsArc           bool     `json:"isArc"`
	Arc             *ArcData `json:"arcData,omitempty"`
}

// Center returns the center of the section's bounding box.
func (s *Section) Center() geometry.Point {
	return geometry.Point{X: s.X + s.Width/2, Y: s.Y + s.Height/2}
}

// syncArcBounds recomputes the bounding box of an arc section from its arc
// data: the circumscribing square of the outer radius around the center.
func (s *Section) syncArcBounds() {
	if !s.IsArc || s.Arc == nil {
		return
	}
	r := s.Arc.OuterRadius
	s.X = s.Arc.CenterX - r
	s.Y = s.Arc.CenterY - r
	s.Width = 2 * r
	s.Height = 2 * r
}

// StageShape enumerates the supported stage footprints.
type StageShape string

const (
	StageRectangle  StageShape = "rectangle"
	StageSemicircle StageShape = "semicircle"
	StageCircle     StageShape = "circle"
)

// StageConfig is the purely presentational stage. Seats never reference it.
type StageConfig struct {
	Name            string     `json:"name"`
	Shape           StageShape `json:"shape"`
	X               float64    `json:"x"`
	Y               float64    `json:"y"`
	Width           float64    `json:"width"`
	Height          float64    `json:"height"`
	RotationDegrees float64    `json:"rotationDegrees"`
}

// Settings are the venue-wide fields of the layout aggregate.
type Settings struct {
	Name              string  `json:"name"`
	VenueType         string  `json:"venueType"`
	SeatSize          float64 `json:"seatSize"`
	GridSize          float64 `json:"gridSize"`
	SnapToGrid        bool    `json:"snapToGrid"`
	VenueWidth        float64 `json:"venueWidth"`
	VenueHeight       float64 `json:"venueHeight"`
	ShowGrid          bool    `json:"showGrid"`
	ShowRowLabels     bool    `json:"showRowLabels"`
	ShowSeatNumbers   bool    `json:"showSeatNumbers"`
	ShowSectionLabels bool    `json:"showSectionLabels"`
}

// DefaultSettings returns the settings a fresh layout starts with and the
// fallbacks merged over a loaded document.
func DefaultSettings() Settings {
	return Settings{
		Name:              "Main Hall",
		VenueType:         "indoor",
		SeatSize:          20,
		GridSize:          20,
		SnapToGrid:        true,
		VenueWidth:        1200,
		VenueHeight:       800,
		ShowGrid:          true,
		ShowRowLabels:     true,
		ShowSeatNumbers:   true,
		ShowSectionLabels: true,
	}
}

// DefaultStage returns the stage a fresh layout starts with.
func DefaultStage() StageConfig {
	return StageConfig{
		Name:   "Stage",
		Shape:  StageRectangle,
		X:      450,
		Y:      40,
		Width:  300,
		Height: 100,
	}
}

// Defaults applied when the section draw tool commits a new section.
const (
	DefaultSectionRows        = 5
	DefaultSectionSeatsPerRow = 10
	DefaultRowSpacing         = 30
	DefaultSeatSpacing        = 25
	DefaultSectionColor       = "#4a90d9"
)

// MinSectionDimension is the smallest width/height the section draw tool
// accepts.
const MinSectionDimension = 20

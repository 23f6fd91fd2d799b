// Package editor implements the state machine behind the seat-map editor:
// the mode/tool pair, the multi-step drawing protocols and the translation
// of pointer gestures into layout mutations. Invalid gestures are dropped
// silently; the layout never ends up structurally invalid because of a
// rejected operation.
package editor

import (
	"github.com/TSKVenkat/bookd-sub000/internal/geometry"
	"github.com/TSKVenkat/bookd-sub000/internal/layout"
)

// Mode is the top-level editor state.
type Mode int

const (
	ModeView Mode = iota
	ModeDraw
	ModeEdit
	ModeDelete
)

// Tool is the active drawing tool, meaningful only in ModeDraw.
type Tool int

const (
	ToolNone Tool = iota
	ToolSeat
	ToolSection
	ToolArcSection
)

// RotationStep is the discrete rotation applied per invocation on a
// selected section.
const RotationStep = 15.0

// Editor interprets pointer gestures against a layout. It owns the current
// mode/tool, the selection set and any in-flight drawing protocol. All
// methods are synchronous; there is no partial commit.
type Editor struct {
	layout *layout.Layout

	mode Mode
	tool Tool

	activeTicketTypeID string

	selectedSeats   map[string]bool
	selectedSection string

	drawStart *geometry.Point
	arc       arcDraft

	pendingDeleteSection string

	drag dragState

	sectionSeq int
}

// New creates an editor over the given layout, starting in view mode. The
// section naming counter starts past the sections already present.
func New(l *layout.Layout) *Editor {
	return &Editor{
		layout:        l,
		mode:          ModeView,
		selectedSeats: make(map[string]bool),
		sectionSeq:    len(l.Sections()),
	}
}

// Layout exposes the layout the editor mutates.
func (e *Editor) Layout() *layout.Layout {
	return e.layout
}

// Mode returns the current editor mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Tool returns the active drawing tool.
func (e *Editor) Tool() Tool {
	return e.tool
}

// SetMode switches the editor mode. Any in-flight drawing protocol, drag or
// pending delete confirmation is discarded. Entering draw mode with no tool
// selected defaults to the seat tool.
func (e *Editor) SetMode(m Mode) {
	e.mode = m
	e.resetTransient()
	if m == ModeDraw && e.tool == ToolNone {
		e.tool = ToolSeat
	}
}

// SetTool switches the active drawing tool, discarding partial draw state.
func (e *Editor) SetTool(t Tool) {
	e.tool = t
	e.resetTransient()
}

// SetActiveTicketType selects the ticket type bound to newly drawn seats.
func (e *Editor) SetActiveTicketType(id string) {
	e.activeTicketTypeID = id
}

// ActiveTicketType returns the ticket type bound to newly drawn seats.
func (e *Editor) ActiveTicketType() string {
	return e.activeTicketTypeID
}

// SelectedSeatIDs returns the ids in the multi-select set, in layout order.
func (e *Editor) SelectedSeatIDs() []string {
	if len(e.selectedSeats) == 0 {
		return nil
	}
	out := make([]string, 0, len(e.selectedSeats))
	for _, s := range e.layout.Seats() {
		if e.selectedSeats[s.ID] {
			out = append(out, s.ID)
		}
	}
	return out
}

// SelectedSectionID returns the exclusively selected section, if any.
func (e *Editor) SelectedSectionID() string {
	return e.selectedSection
}

// PendingDeleteSectionID returns the section awaiting delete confirmation.
func (e *Editor) PendingDeleteSectionID() string {
	return e.pendingDeleteSection
}

// Click dispatches a pointer click according to the current mode and tool.
func (e *Editor) Click(p geometry.Point) {
	switch e.mode {
	case ModeView:
		e.clickView(p)
	case ModeDraw:
		switch e.tool {
		case ToolSeat:
			e.clickDrawSeat(p)
		case ToolSection:
			e.clickDrawSection(p)
		case ToolArcSection:
			e.clickDrawArc(p)
		}
	case ModeDelete:
		e.clickDelete(p)
	}
}

// clickView toggles seats in the multi-select set, selects sections and
// clears everything on a miss. A section hit replaces any seat selection,
// but toggling seats leaves a selected section alone so a mixed selection
// can feed the bulk operations. Seats whose status forbids selection are
// ignored.
func (e *Editor) clickView(p geometry.Point) {
	if seat := layout.FindSeatAt(p, e.layout.Seats(), e.layout.Settings.SeatSize); seat != nil {
		if !seat.Status.Selectable() {
			return
		}
		if e.selectedSeats[seat.ID] {
			delete(e.selectedSeats, seat.ID)
		} else {
			e.selectedSeats[seat.ID] = true
		}
		return
	}
	if sec := layout.FindSectionAt(p, e.layout.Sections()); sec != nil {
		e.selectedSection = sec.ID
		e.selectedSeats = make(map[string]bool)
		return
	}
	e.clearSelection()
}

// clickDrawSeat places a single seat bound to the active ticket type. No
// hit-testing is performed; seats may land anywhere, including atop others.
func (e *Editor) clickDrawSeat(p geometry.Point) {
	if e.activeTicketTypeID == "" {
		return
	}
	p = e.maybeSnap(p)
	e.layout.AddSeat(layout.Seat{
		X:            p.X,
		Y:            p.Y,
		Status:       layout.SeatAvailable,
		TicketTypeID: e.activeTicketTypeID,
	})
}

// clickDrawSection runs the two-click rectangle protocol. The second click
// commits the axis-aligned rectangle spanning both points; rectangles
// thinner than the minimum dimension are dropped and the protocol resets.
func (e *Editor) clickDrawSection(p geometry.Point) {
	p = e.maybeSnap(p)
	if e.drawStart == nil {
		start := p
		e.drawStart = &start
		return
	}
	start := *e.drawStart
	e.drawStart = nil

	x, y := min(start.X, p.X), min(start.Y, p.Y)
	w, h := abs(p.X-start.X), abs(p.Y-start.Y)
	if w < layout.MinSectionDimension || h < layout.MinSectionDimension {
		return
	}
	e.layout.AddSection(layout.Section{
		Name:        e.nextSectionName(),
		X:           x,
		Y:           y,
		Width:       w,
		Height:      h,
		Rows:        layout.DefaultSectionRows,
		SeatsPerRow: layout.DefaultSectionSeatsPerRow,
	})
}

// clickDelete removes the seat under the pointer immediately unless its
// status forbids it; otherwise a section hit is parked for confirmation.
func (e *Editor) clickDelete(p geometry.Point) {
	if seat := layout.FindSeatAt(p, e.layout.Seats(), e.layout.Settings.SeatSize); seat != nil {
		if !seat.Status.Deletable() {
			return
		}
		e.layout.RemoveSeat(seat.ID)
		delete(e.selectedSeats, seat.ID)
		return
	}
	if sec := layout.FindSectionAt(p, e.layout.Sections()); sec != nil {
		e.pendingDeleteSection = sec.ID
	}
}

// ConfirmPendingDelete applies the parked section delete, cascading to its
// seats.
func (e *Editor) ConfirmPendingDelete() bool {
	id := e.pendingDeleteSection
	e.pendingDeleteSection = ""
	if id == "" {
		return false
	}
	if e.selectedSection == id {
		e.selectedSection = ""
	}
	return e.layout.RemoveSection(id)
}

// CancelPendingDelete discards the parked section delete.
func (e *Editor) CancelPendingDelete() {
	e.pendingDeleteSection = ""
}

// RotateSelectedSection rotates the selected non-arc section by one step in
// the given direction. When applyToSeats is set (the operator confirmed),
// owned seats rotate with the section.
func (e *Editor) RotateSelectedSection(clockwise bool, applyToSeats bool) bool {
	if e.mode != ModeEdit || e.selectedSection == "" {
		return false
	}
	delta := RotationStep
	if !clockwise {
		delta = -RotationStep
	}
	return e.layout.RotateSection(e.selectedSection, delta, applyToSeats)
}

// SelectSection selects a section exclusively, as the view-mode click does.
func (e *Editor) SelectSection(id string) bool {
	if _, ok := e.layout.SectionByID(id); !ok {
		return false
	}
	e.selectedSection = id
	e.selectedSeats = make(map[string]bool)
	return true
}

// AssignTicketTypeToSelection sets the ticket type on every selected seat
// whose status allows reassignment, leaving statuses untouched.
func (e *Editor) AssignTicketTypeToSelection(ticketTypeID string) int {
	n := 0
	for _, id := range e.SelectedSeatIDs() {
		seat, ok := e.layout.SeatByID(id)
		if !ok || !seat.Status.Assignable() {
			continue
		}
		if e.layout.SetSeatTicketType(id, ticketTypeID) {
			n++
		}
	}
	return n
}

// DeleteSelection removes the selected section (cascading) and every
// deletable selected seat in one mutation, then clears the selection.
func (e *Editor) DeleteSelection() {
	if e.selectedSection != "" {
		e.layout.RemoveSection(e.selectedSection)
	}
	for _, id := range e.SelectedSeatIDs() {
		seat, ok := e.layout.SeatByID(id)
		if !ok {
			continue
		}
		if !seat.Status.Deletable() {
			continue
		}
		e.layout.RemoveSeat(id)
	}
	e.clearSelection()
}

func (e *Editor) clearSelection() {
	e.selectedSeats = make(map[string]bool)
	e.selectedSection = ""
}

func (e *Editor) resetTransient() {
	e.drawStart = nil
	e.arc = arcDraft{}
	e.pendingDeleteSection = ""
	e.drag = dragState{}
}

// maybeSnap applies grid snapping when the layout asks for it.
func (e *Editor) maybeSnap(p geometry.Point) geometry.Point {
	if !e.layout.Settings.SnapToGrid {
		return p
	}
	return geometry.SnapPoint(p, e.layout.Settings.GridSize)
}

// nextSectionName derives a display name for drawn sections from a
// monotonic counter, so names never repeat after deletions.
func (e *Editor) nextSectionName() string {
	name := "Section " + sectionLetters(e.sectionSeq)
	e.sectionSeq++
	return name
}

// sectionLetters converts 0, 1, 2, ... to A, B, ..., Z, AA, AB, ...
func sectionLetters(n int) string {
	s := ""
	for n >= 0 {
		s = string(rune('A'+n%26)) + s
		n = n/26 - 1
	}
	return s
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

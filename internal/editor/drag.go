package editor

import (
	"github.com/TSKVenkat/bookd-sub000/internal/geometry"
	"github.com/TSKVenkat/bookd-sub000/internal/layout"
)

// dragKind identifies what a drag gesture grabbed.
type dragKind int

const (
	dragNone dragKind = iota
	dragSeat
	dragSection
)

// dragState tracks an in-flight edit-mode drag. The grab offset keeps the
// target from jumping to the pointer on the first move.
type dragState struct {
	kind   dragKind
	id     string
	offset geometry.Point
}

// BeginDrag starts an edit-mode drag at the pointer position. Seats are
// grabbed in preference to sections. Returns false when nothing was hit or
// the editor is not in edit mode.
func (e *Editor) BeginDrag(p geometry.Point) bool {
	if e.mode != ModeEdit {
		return false
	}
	if seat := layout.FindSeatAt(p, e.layout.Seats(), e.layout.Settings.SeatSize); seat != nil {
		e.drag = dragState{kind: dragSeat, id: seat.ID, offset: seat.Position().Sub(p)}
		return true
	}
	if sec := layout.FindSectionAt(p, e.layout.Sections()); sec != nil {
		e.drag = dragState{kind: dragSection, id: sec.ID, offset: geometry.Pt(sec.X, sec.Y).Sub(p)}
		e.selectedSection = sec.ID
		return true
	}
	return false
}

// DragTo moves the grabbed target live to follow the pointer, snapping
// per-frame when the layout asks for it. Arc sections keep their arc center
// in sync through the layout command.
func (e *Editor) DragTo(p geometry.Point) bool {
	target := p.Add(e.drag.offset)
	if e.layout.Settings.SnapToGrid {
		target = geometry.SnapPoint(target, e.layout.Settings.GridSize)
	}
	switch e.drag.kind {
	case dragSeat:
		return e.layout.MoveSeat(e.drag.id, target)
	case dragSection:
		return e.layout.MoveSection(e.drag.id, target)
	}
	return false
}

// EndDrag releases the drag target.
func (e *Editor) EndDrag() {
	e.drag = dragState{}
}

// Dragging reports whether a drag is in flight.
func (e *Editor) Dragging() bool {
	return e.drag.kind != dragNone
}

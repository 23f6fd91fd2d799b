package editor

import (
	"github.com/TSKVenkat/bookd-sub000/internal/geometry"
	"github.com/TSKVenkat/bookd-sub000/internal/layout"
)

// ArcPhase is the step the arc drawing protocol is waiting on. The protocol
// advances strictly in order and resets to AwaitingCenter after the section
// commits. Switching tools or modes abandons any partial state.
type ArcPhase int

const (
	AwaitingCenter ArcPhase = iota
	AwaitingInnerRadius
	AwaitingOuterRadius
	AwaitingStartAngle
	AwaitingEndAngle
)

// arcDraft accumulates the clicks of the arc protocol.
type arcDraft struct {
	phase    ArcPhase
	center   geometry.Point
	innerR   float64
	outerR   float64
	startDeg float64
}

// ArcPhase returns the step the arc drawing protocol is waiting on.
func (e *Editor) ArcPhase() ArcPhase {
	return e.arc.phase
}

// clickDrawArc advances the arc protocol by one click. Radii are the
// distance from the center to the click, angles come from the click's
// bearing. Clicks that would violate the arc invariants are ignored and the
// protocol stays in place, except for a degenerate angular span on the final
// click, which abandons the draft entirely.
func (e *Editor) clickDrawArc(p geometry.Point) {
	switch e.arc.phase {
	case AwaitingCenter:
		e.arc.center = e.maybeSnap(p)
		e.arc.phase = AwaitingInnerRadius
	case AwaitingInnerRadius:
		r := p.Distance(e.arc.center)
		if r <= 0 {
			return
		}
		e.arc.innerR = r
		e.arc.phase = AwaitingOuterRadius
	case AwaitingOuterRadius:
		r := p.Distance(e.arc.center)
		if r <= e.arc.innerR {
			return
		}
		e.arc.outerR = r
		e.arc.phase = AwaitingStartAngle
	case AwaitingStartAngle:
		e.arc.startDeg = geometry.AngleOf(e.arc.center, p)
		e.arc.phase = AwaitingEndAngle
	case AwaitingEndAngle:
		endDeg := geometry.AngleOf(e.arc.center, p)
		draft := e.arc
		e.arc = arcDraft{}
		if endDeg == draft.startDeg {
			return
		}
		e.layout.AddSection(layout.Section{
			Name:        e.nextSectionName(),
			IsArc:       true,
			Rows:        layout.DefaultSectionRows,
			SeatsPerRow: layout.DefaultSectionSeatsPerRow,
			Arc: &layout.ArcData{
				CenterX:       draft.center.X,
				CenterY:       draft.center.Y,
				InnerRadius:   draft.innerR,
				OuterRadius:   draft.outerR,
				StartAngleDeg: draft.startDeg,
				EndAngleDeg:   endDeg,
				Rows:          layout.DefaultSectionRows,
			},
		})
	}
}

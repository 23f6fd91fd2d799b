package layout

import (
	"testing"

	"github.com/TSKVenkat/bookd-sub000/internal/geometry"
)

func TestFindSeatAtExactCenters(t *testing.T) {
	l := New()
	sec, _ := l.AddSection(Section{
		X: 0, Y: 0, Width: 300, Height: 200,
		Rows: 4, SeatsPerRow: 6,
		RowSpacing: 30, SeatSpacing: 25,
	})
	seats, _ := l.GenerateSeats(sec.ID, "tt-1")
	for _, want := range seats {
		got := FindSeatAt(want.Position(), l.Seats(), 20)
		if got == nil {
			t.Fatalf("no hit at center of seat %s", want.Label())
		}
		if got.ID != want.ID {
			t.Errorf("hit at center of %s resolved to %s", want.Label(), got.Label())
		}
	}
}

func TestFindSeatAtTolerance(t *testing.T) {
	l := New()
	s, _ := l.AddSeat(Seat{X: 100, Y: 100})
	seatSize := 20.0 // tolerance = seatSize/1.5

	if FindSeatAt(geometry.Pt(100, 113), l.Seats(), seatSize) == nil {
		t.Error("point within tolerance missed")
	}
	if FindSeatAt(geometry.Pt(100, 115), l.Seats(), seatSize) != nil {
		t.Error("point beyond tolerance hit")
	}
	if got := FindSeatAt(geometry.Pt(105, 100), l.Seats(), seatSize); got == nil || got.ID != s.ID {
		t.Error("nearby point did not resolve to the seat")
	}
}

func TestFindSeatAtNearestWinsFirstOnTie(t *testing.T) {
	l := New()
	first, _ := l.AddSeat(Seat{X: 100, Y: 100})
	l.AddSeat(Seat{X: 120, Y: 100})
	near, _ := l.AddSeat(Seat{X: 108, Y: 100})

	// Closest seat wins even when added later.
	if got := FindSeatAt(geometry.Pt(107, 100), l.Seats(), 20); got == nil || got.ID != near.ID {
		t.Error("nearest seat did not win")
	}
	// Exact tie resolves to input order.
	if got := FindSeatAt(geometry.Pt(104, 100), l.Seats(), 20); got == nil || got.ID != first.ID {
		t.Error("tie did not resolve to the first seat")
	}
}

func TestFindSectionAtTopmostWins(t *testing.T) {
	l := New()
	bottom, _ := l.AddSection(Section{X: 0, Y: 0, Width: 200, Height: 200})
	top, _ := l.AddSection(Section{X: 100, Y: 100, Width: 200, Height: 200})

	if got := FindSectionAt(geometry.Pt(150, 150), l.Sections()); got == nil || got.ID != top.ID {
		t.Error("overlap did not resolve to the most recently added section")
	}
	if got := FindSectionAt(geometry.Pt(50, 50), l.Sections()); got == nil || got.ID != bottom.ID {
		t.Error("non-overlapping point did not resolve to the bottom section")
	}
	if FindSectionAt(geometry.Pt(500, 500), l.Sections()) != nil {
		t.Error("miss returned a section")
	}
}

func TestFindSectionAtRotatedAndArc(t *testing.T) {
	l := New()
	rect, _ := l.AddSection(Section{X: 0, Y: 0, Width: 100, Height: 40, RotationDegrees: 90})
	arc, _ := l.AddSection(Section{
		IsArc: true,
		Arc:   &ArcData{CenterX: 400, CenterY: 400, InnerRadius: 50, OuterRadius: 100, StartAngleDeg: 0, EndAngleDeg: 180},
	})

	// Inside the rectangle only after accounting for its rotation.
	if got := FindSectionAt(geometry.Pt(50, 60), l.Sections()); got == nil || got.ID != rect.ID {
		t.Error("rotated rectangle containment failed")
	}
	// Mid-radius point at 90 degrees from the arc center.
	if got := FindSectionAt(geometry.Pt(400, 475), l.Sections()); got == nil || got.ID != arc.ID {
		t.Error("annulus sector containment failed")
	}
	// Same radius but outside the angular span.
	if got := FindSectionAt(geometry.Pt(400, 325), l.Sections()); got != nil {
		t.Error("point outside the arc span hit a section")
	}
}

func TestFindSectionAtFullCircleArc(t *testing.T) {
	l := New()
	ring, _ := l.AddSection(Section{
		IsArc: true,
		Arc:   &ArcData{CenterX: 0, CenterY: 0, InnerRadius: 50, OuterRadius: 100, StartAngleDeg: 0, EndAngleDeg: 360},
	})

	// Every bearing inside the annulus resolves to the ring.
	for _, p := range []geometry.Point{{X: 75, Y: 0}, {X: 0, Y: 75}, {X: -53, Y: -53}, {X: 0, Y: -75}} {
		if got := FindSectionAt(p, l.Sections()); got == nil || got.ID != ring.ID {
			t.Errorf("full-circle arc missed at %v", p)
		}
	}
	if FindSectionAt(geometry.Pt(0, 25), l.Sections()) != nil {
		t.Error("point inside the inner radius hit the ring")
	}
}

package layout

import (
	"math"
	"testing"

	"github.com/TSKVenkat/bookd-sub000/internal/geometry"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// approxAngle compares angles on the circle, so 360 and 0 match.
func approxAngle(a, b float64) bool {
	d := math.Abs(geometry.NormalizeDegrees(a) - geometry.NormalizeDegrees(b))
	if d > 180 {
		d = 360 - d
	}
	return d < 1e-6
}

func TestAddSeatDefaults(t *testing.T) {
	l := New()
	s, ok := l.AddSeat(Seat{X: 10, Y: 20, RotationDegrees: 370})
	if !ok {
		t.Fatal("AddSeat rejected a valid seat")
	}
	if s.ID == "" {
		t.Error("expected a generated id")
	}
	if s.Status != SeatAvailable {
		t.Errorf("default status = %q, want available", s.Status)
	}
	if !approx(s.RotationDegrees, 10) {
		t.Errorf("rotation not normalized: %v", s.RotationDegrees)
	}
}

func TestAddSeatDuplicateIDRejected(t *testing.T) {
	l := New()
	if _, ok := l.AddSeat(Seat{ID: "s1"}); !ok {
		t.Fatal("first insert rejected")
	}
	if _, ok := l.AddSeat(Seat{ID: "s1"}); ok {
		t.Fatal("duplicate id accepted")
	}
	if len(l.Seats()) != 1 {
		t.Fatalf("seat count = %d, want 1", len(l.Seats()))
	}
}

func TestAddSectionValidation(t *testing.T) {
	l := New()
	tests := []struct {
		name string
		sec  Section
		ok   bool
	}{
		{"valid rect", Section{Width: 100, Height: 80}, true},
		{"zero width", Section{Width: 0, Height: 80}, false},
		{"arc missing data", Section{IsArc: true}, false},
		{"arc inner >= outer", Section{IsArc: true, Arc: &ArcData{InnerRadius: 200, OuterRadius: 100, StartAngleDeg: 0, EndAngleDeg: 90}}, false},
		{"arc zero span", Section{IsArc: true, Arc: &ArcData{InnerRadius: 50, OuterRadius: 100, StartAngleDeg: 45, EndAngleDeg: 45}}, false},
		{"valid arc", Section{IsArc: true, Arc: &ArcData{InnerRadius: 50, OuterRadius: 100, StartAngleDeg: 0, EndAngleDeg: 180}}, true},
	}
	for _, tc := range tests {
		_, ok := l.AddSection(tc.sec)
		if ok != tc.ok {
			t.Errorf("%s: ok=%v, want %v", tc.name, ok, tc.ok)
		}
	}
}

func TestArcSectionBoundsSynced(t *testing.T) {
	l := New()
	sec, ok := l.AddSection(Section{
		IsArc: true,
		Arc:   &ArcData{CenterX: 300, CenterY: 200, InnerRadius: 50, OuterRadius: 120, StartAngleDeg: 0, EndAngleDeg: 180},
	})
	if !ok {
		t.Fatal("arc section rejected")
	}
	if sec.X != 180 || sec.Y != 80 || sec.Width != 240 || sec.Height != 240 {
		t.Errorf("bounding box = (%v,%v,%v,%v), want circumscribing square of outer radius",
			sec.X, sec.Y, sec.Width, sec.Height)
	}
}

func TestMoveSectionKeepsArcCenterConsistent(t *testing.T) {
	l := New()
	sec, _ := l.AddSection(Section{
		IsArc: true,
		Arc:   &ArcData{CenterX: 100, CenterY: 100, InnerRadius: 40, OuterRadius: 80, StartAngleDeg: 0, EndAngleDeg: 90},
	})
	if !l.MoveSection(sec.ID, geometry.Pt(sec.X+30, sec.Y-10)) {
		t.Fatal("move rejected")
	}
	if sec.Arc.CenterX != 130 || sec.Arc.CenterY != 90 {
		t.Errorf("arc center = (%v,%v), want (130,90)", sec.Arc.CenterX, sec.Arc.CenterY)
	}
}

func TestGenerateRectangularGrid(t *testing.T) {
	l := New()
	sec, _ := l.AddSection(Section{
		X: 0, Y: 0, Width: 200, Height: 100,
		Rows: 2, SeatsPerRow: 3,
		RowSpacing: 30, SeatSpacing: 25,
		RowStartLabel: "A", SeatStartNumber: 1,
	})
	seats, ok := l.GenerateSeats(sec.ID, "tt-1")
	if !ok {
		t.Fatal("generation failed")
	}
	if len(seats) != 6 {
		t.Fatalf("generated %d seats, want 6", len(seats))
	}

	wantLabels := []string{"A1", "A2", "A3", "B1", "B2", "B3"}
	positions := make(map[[2]int]bool)
	for i, s := range seats {
		if s.Label() != wantLabels[i] {
			t.Errorf("seat %d label = %q, want %q", i, s.Label(), wantLabels[i])
		}
		if s.SectionID != sec.ID {
			t.Errorf("seat %s sectionId = %q, want %q", s.Label(), s.SectionID, sec.ID)
		}
		if s.Status != SeatAvailable {
			t.Errorf("seat %s status = %q", s.Label(), s.Status)
		}
		key := [2]int{int(math.Round(s.X)), int(math.Round(s.Y))}
		if positions[key] {
			t.Errorf("seat %s duplicates position %v", s.Label(), key)
		}
		positions[key] = true
	}

	// Grid is centered in the box and spaced by seat/row spacing.
	if !approx(seats[0].X, 75) || !approx(seats[0].Y, 35) {
		t.Errorf("first seat at (%v,%v), want (75,35)", seats[0].X, seats[0].Y)
	}
	if !approx(seats[1].X-seats[0].X, 25) {
		t.Errorf("seat spacing = %v, want 25", seats[1].X-seats[0].X)
	}
	if !approx(seats[3].Y-seats[0].Y, 30) {
		t.Errorf("row spacing = %v, want 30", seats[3].Y-seats[0].Y)
	}
}

func TestGenerateRotatedGridInheritsRotation(t *testing.T) {
	l := New()
	sec, _ := l.AddSection(Section{
		X: 100, Y: 100, Width: 120, Height: 90,
		Rows: 2, SeatsPerRow: 2,
		RowSpacing: 30, SeatSpacing: 30,
		RotationDegrees: 45,
	})
	seats, _ := l.GenerateSeats(sec.ID, "tt-1")
	center := sec.Center()
	for _, s := range seats {
		if !approx(s.RotationDegrees, 45) {
			t.Errorf("seat rotation = %v, want 45", s.RotationDegrees)
		}
		// Undoing the grid rotation must land each seat back inside the box.
		local := geometry.RotatePoint(s.Position(), center, -45)
		if local.X < sec.X || local.X > sec.X+sec.Width || local.Y < sec.Y || local.Y > sec.Y+sec.Height {
			t.Errorf("seat %s outside section after inverse rotation: %v", s.Label(), local)
		}
	}
}

func TestGenerateArcSeats(t *testing.T) {
	l := New()
	sec, _ := l.AddSection(Section{
		IsArc:         true,
		Rows:          2,
		SeatsPerRow:   5,
		RowStartLabel: "A",
		Arc: &ArcData{
			CenterX: 0, CenterY: 0,
			InnerRadius: 100, OuterRadius: 200,
			StartAngleDeg: 180, EndAngleDeg: 360,
			Rows: 2,
		},
	})
	seats, ok := l.GenerateSeats(sec.ID, "tt-1")
	if !ok {
		t.Fatal("generation failed")
	}
	if len(seats) != 10 {
		t.Fatalf("generated %d seats, want 10", len(seats))
	}
	center := geometry.Pt(0, 0)
	for i, s := range seats {
		d := s.Position().Distance(center)
		wantRadius := 100.0
		if i >= 5 {
			wantRadius = 200.0
		}
		if !approx(d, wantRadius) {
			t.Errorf("seat %d radius = %v, want %v", i, d, wantRadius)
		}
	}
	// Columns span 180 -> 360 in equal steps of 45 degrees. The last column
	// sits at 360 == 0, so comparisons must wrap.
	for c := 0; c < 5; c++ {
		wantAngle := 180 + 45*float64(c)
		got := geometry.AngleOf(center, seats[c].Position())
		if !approxAngle(got, wantAngle) {
			t.Errorf("column %d angle = %v, want %v", c, got, geometry.NormalizeDegrees(wantAngle))
		}
		// Seats face away from the arc center.
		if !approxAngle(seats[c].RotationDegrees, wantAngle+90) {
			t.Errorf("column %d rotation = %v, want %v", c, seats[c].RotationDegrees, geometry.NormalizeDegrees(wantAngle+90))
		}
	}
}

func TestGenerateSingleRowAndColumn(t *testing.T) {
	l := New()
	sec, _ := l.AddSection(Section{
		IsArc:       true,
		Rows:        1,
		SeatsPerRow: 1,
		Arc: &ArcData{
			InnerRadius: 100, OuterRadius: 200,
			StartAngleDeg: 90, EndAngleDeg: 270,
			Rows: 1,
		},
	})
	seats, ok := l.GenerateSeats(sec.ID, "")
	if !ok || len(seats) != 1 {
		t.Fatalf("generated %d seats, want 1", len(seats))
	}
	d := seats[0].Position().Distance(geometry.Pt(0, 0))
	if !approx(d, 100) {
		t.Errorf("single-row radius = %v, want innerRadius", d)
	}
	a := geometry.AngleOf(geometry.Pt(0, 0), seats[0].Position())
	if !approx(a, 90) {
		t.Errorf("single-column angle = %v, want startAngle", a)
	}
}

func TestRegenerationPurgesOldSeats(t *testing.T) {
	l := New()
	sec, _ := l.AddSection(Section{Width: 200, Height: 100, Rows: 2, SeatsPerRow: 3})
	l.GenerateSeats(sec.ID, "tt-1")
	// A hand-placed seat outside any section must survive regeneration.
	loose, _ := l.AddSeat(Seat{X: 500, Y: 500})
	first := len(l.Seats())

	l.GenerateSeats(sec.ID, "tt-2")
	if len(l.Seats()) != first {
		t.Fatalf("seat count after regeneration = %d, want %d", len(l.Seats()), first)
	}
	if _, ok := l.SeatByID(loose.ID); !ok {
		t.Error("loose seat purged by regeneration")
	}
	for _, s := range l.SeatsInSection(sec.ID) {
		if s.TicketTypeID != "tt-2" {
			t.Errorf("regenerated seat kept old ticket type %q", s.TicketTypeID)
		}
	}
}

func TestRemoveSectionCascades(t *testing.T) {
	l := New()
	a, _ := l.AddSection(Section{Width: 200, Height: 100, Rows: 2, SeatsPerRow: 3})
	b, _ := l.AddSection(Section{X: 300, Width: 200, Height: 100, Rows: 1, SeatsPerRow: 4})
	l.GenerateSeats(a.ID, "tt-1")
	l.GenerateSeats(b.ID, "tt-1")
	loose, _ := l.AddSeat(Seat{X: 900, Y: 900})

	if !l.RemoveSection(a.ID) {
		t.Fatal("remove rejected")
	}
	if got := len(l.Seats()); got != 5 {
		t.Fatalf("seats after cascade = %d, want 4 from b + 1 loose", got)
	}
	for _, s := range l.Seats() {
		if s.SectionID == a.ID {
			t.Errorf("seat %s still references deleted section", s.ID)
		}
	}
	if _, ok := l.SeatByID(loose.ID); !ok {
		t.Error("cascade removed an unrelated seat")
	}
	if _, ok := l.SectionByID(a.ID); ok {
		t.Error("section still resolvable after delete")
	}
}

func TestRotateSectionAppliesToSeats(t *testing.T) {
	l := New()
	sec, _ := l.AddSection(Section{X: 0, Y: 0, Width: 100, Height: 100, Rows: 1, SeatsPerRow: 1})
	seats, _ := l.GenerateSeats(sec.ID, "")
	seat := seats[0]
	before := seat.Position()

	if !l.RotateSection(sec.ID, 15, true) {
		t.Fatal("rotate rejected")
	}
	if !approx(sec.RotationDegrees, 15) {
		t.Errorf("section rotation = %v, want 15", sec.RotationDegrees)
	}
	want := geometry.RotatePoint(before, sec.Center(), 15)
	if !approx(seat.X, want.X) || !approx(seat.Y, want.Y) {
		t.Errorf("seat not rotated with section: %v, want %v", seat.Position(), want)
	}
	if !approx(seat.RotationDegrees, 15) {
		t.Errorf("seat rotation = %v, want 15", seat.RotationDegrees)
	}
}

func TestRotateArcSectionRejected(t *testing.T) {
	l := New()
	sec, _ := l.AddSection(Section{
		IsArc: true,
		Arc:   &ArcData{InnerRadius: 50, OuterRadius: 100, StartAngleDeg: 0, EndAngleDeg: 90},
	})
	if l.RotateSection(sec.ID, 15, false) {
		t.Error("rotation of an arc section must be rejected")
	}
}

func TestAdvanceRowLabel(t *testing.T) {
	tests := []struct {
		start  string
		offset int
		want   string
	}{
		{"A", 0, "A"},
		{"A", 1, "B"},
		{"A", 25, "Z"},
		{"A", 26, "AA"},
		{"C", 2, "E"},
		{"Z", 1, "AA"},
		{"AA", 1, "AB"},
		{"1", 0, "1"},
		{"1", 4, "5"},
		{"10", 3, "13"},
		{"", 1, "B"},
	}
	for _, tc := range tests {
		if got := AdvanceRowLabel(tc.start, tc.offset); got != tc.want {
			t.Errorf("AdvanceRowLabel(%q, %d) = %q, want %q", tc.start, tc.offset, got, tc.want)
		}
	}
}

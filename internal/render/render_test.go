package render

import (
	"strings"
	"testing"
	"time"

	"github.com/TSKVenkat/bookd-sub000/internal/geometry"
	"github.com/TSKVenkat/bookd-sub000/internal/layout"
)

func testLayout(t *testing.T) *layout.Layout {
	t.Helper()
	l := layout.New()
	l.SetTicketTypes([]layout.TicketType{{ID: "vip", Name: "VIP", Price: 100, Color: "#d4af37"}})
	sec, ok := l.AddSection(layout.Section{
		X: 100, Y: 100, Width: 200, Height: 100,
		Rows: 2, SeatsPerRow: 3, Name: "Orchestra",
	})
	if !ok {
		t.Fatal("section rejected")
	}
	l.GenerateSeats(sec.ID, "vip")
	return l
}

func TestChooseRenderer(t *testing.T) {
	if _, ok := ChooseRenderer(10).(*VectorRenderer); !ok {
		t.Error("small layouts should use the vector backend")
	}
	if _, ok := ChooseRenderer(RetainedThreshold).(*SceneGraphRenderer); !ok {
		t.Error("large layouts should use the scene-graph backend")
	}
}

func TestVectorRenderEmitsAllItems(t *testing.T) {
	l := testLayout(t)
	svg := NewVectorRenderer().Render(l, Viewport{Width: 1200, Height: 800, Zoom: 1})

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatal("not an svg document")
	}
	if got := strings.Count(svg, "data-seat-id"); got != 6 {
		t.Errorf("rendered %d seats, want 6", got)
	}
	if !strings.Contains(svg, "Orchestra") {
		t.Error("section label missing")
	}
	// Ticket-type color used for available seats.
	if !strings.Contains(svg, "#d4af37") {
		t.Error("ticket-type color not applied")
	}
}

func TestVectorRenderArcSectionPath(t *testing.T) {
	l := layout.New()
	l.AddSection(layout.Section{
		Name:  "Balcony",
		IsArc: true,
		Arc:   &layout.ArcData{CenterX: 300, CenterY: 300, InnerRadius: 100, OuterRadius: 200, StartAngleDeg: 180, EndAngleDeg: 360},
	})
	svg := NewVectorRenderer().Render(l, Viewport{Width: 800, Height: 600})
	if !strings.Contains(svg, "<path d=\"M ") {
		t.Fatal("arc section did not render as a path")
	}
	// 180 degree span is exactly the large-arc boundary.
	if !strings.Contains(svg, " 0 0 1 ") {
		t.Error("large-arc flag wrong for a half-circle span")
	}
}

func TestVectorRenderRespectsToggles(t *testing.T) {
	l := testLayout(t)
	l.Settings.ShowGrid = false
	l.Settings.ShowSectionLabels = false
	l.Settings.ShowSeatNumbers = false
	svg := NewVectorRenderer().Render(l, Viewport{Width: 1200, Height: 800})
	if strings.Contains(svg, "<line") {
		t.Error("grid rendered while disabled")
	}
	if strings.Contains(svg, "Orchestra") {
		t.Error("section label rendered while disabled")
	}
	// Only the stage name remains as text once labels are off.
	if got := strings.Count(svg, "<text"); got != 1 {
		t.Errorf("%d text elements rendered, want only the stage name", got)
	}
}

func TestSceneGraphSyncTracksModel(t *testing.T) {
	l := testLayout(t)
	r := NewSceneGraphRenderer()
	vp := Viewport{Width: 1200, Height: 800}

	r.Render(l, vp)
	if r.NodeCount() != 7 { // 6 seats + 1 section
		t.Fatalf("node count = %d, want 7", r.NodeCount())
	}

	sec := l.Sections()[0]
	l.RemoveSection(sec.ID)
	r.Render(l, vp)
	if r.NodeCount() != 0 {
		t.Fatalf("node count after cascade = %d, want 0", r.NodeCount())
	}
}

func TestSceneGraphCullsToViewport(t *testing.T) {
	l := layout.New()
	l.AddSeat(layout.Seat{ID: "in", X: 100, Y: 100})
	l.AddSeat(layout.Seat{ID: "out", X: 5000, Y: 5000})

	r := NewSceneGraphRenderer()
	svg := r.Render(l, Viewport{Width: 800, Height: 600})
	if !strings.Contains(svg, `data-seat-id="in"`) {
		t.Error("visible seat culled")
	}
	if strings.Contains(svg, `data-seat-id="out"`) {
		t.Error("off-screen seat rendered")
	}
	if r.VisibleCount() != 1 {
		t.Errorf("visible count = %d, want 1", r.VisibleCount())
	}
}

func TestSceneGraphVisibilityThrottle(t *testing.T) {
	l := layout.New()
	l.AddSeat(layout.Seat{ID: "s", X: 100, Y: 100})

	r := NewSceneGraphRenderer()
	clock := time.Unix(0, 0)
	r.now = func() time.Time { return clock }

	vp := Viewport{Width: 800, Height: 600}
	r.Render(l, vp)

	// Move the seat off screen; within the throttle window and with an
	// unchanged viewport the stale visible set is reused.
	l.MoveSeat("s", geometry.Pt(9000, 9000))
	clock = clock.Add(50 * time.Millisecond)
	if svg := r.Render(l, vp); !strings.Contains(svg, `data-seat-id="s"`) {
		t.Error("visible set recomputed inside the throttle window")
	}

	// Past the window the recompute runs and the seat is culled.
	clock = clock.Add(visibilityInterval)
	if svg := r.Render(l, vp); strings.Contains(svg, `data-seat-id="s"`) {
		t.Error("visible set not refreshed after the throttle window")
	}
}

func TestSceneGraphViewportChangeForcesRecompute(t *testing.T) {
	l := layout.New()
	l.AddSeat(layout.Seat{ID: "s", X: 3000, Y: 3000})

	r := NewSceneGraphRenderer()
	clock := time.Unix(0, 0)
	r.now = func() time.Time { return clock }

	if svg := r.Render(l, Viewport{Width: 800, Height: 600}); strings.Contains(svg, `data-seat-id="s"`) {
		t.Fatal("distant seat visible in the initial viewport")
	}
	// Panning to the seat recomputes immediately, throttle notwithstanding.
	if svg := r.Render(l, Viewport{X: 2800, Y: 2800, Width: 800, Height: 600}); !strings.Contains(svg, `data-seat-id="s"`) {
		t.Error("viewport change did not force a visibility recompute")
	}
}

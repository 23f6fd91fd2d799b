package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TSKVenkat/bookd-sub000/internal/geometry"
	"github.com/TSKVenkat/bookd-sub000/internal/layout"
)

// VectorRenderer is the immediate backend: every call walks the full model
// and emits fresh SVG. Simple and stateless, it is the right choice below
// the retained threshold.
type VectorRenderer struct{}

// NewVectorRenderer constructs the immediate vector backend.
func NewVectorRenderer() *VectorRenderer {
	return &VectorRenderer{}
}

// Render emits the layout as an SVG document for the viewport.
func (r *VectorRenderer) Render(l *layout.Layout, vp Viewport) string {
	var b strings.Builder
	writeHeader(&b, vp)
	if l.Settings.ShowGrid {
		writeGrid(&b, l, vp)
	}
	writeStage(&b, &l.Stage)
	for _, sec := range l.Sections() {
		writeSection(&b, l, sec)
	}
	for _, s := range l.Seats() {
		writeSeat(&b, l, s)
	}
	b.WriteString("</svg>\n")
	return b.String()
}

func writeHeader(b *strings.Builder, vp Viewport) {
	zoom := vp.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	fmt.Fprintf(b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`+"\n",
		ff(vp.Width*zoom), ff(vp.Height*zoom),
		ff(vp.X), ff(vp.Y), ff(vp.Width), ff(vp.Height))
}

func writeGrid(b *strings.Builder, l *layout.Layout, vp Viewport) {
	step := l.Settings.GridSize
	if step <= 0 {
		return
	}
	x0 := geometry.Snap(vp.X, step)
	y0 := geometry.Snap(vp.Y, step)
	b.WriteString(`  <g stroke="#e0e0e0" stroke-width="0.5">` + "\n")
	for x := x0; x <= vp.X+vp.Width; x += step {
		fmt.Fprintf(b, `    <line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
			ff(x), ff(vp.Y), ff(x), ff(vp.Y+vp.Height))
	}
	for y := y0; y <= vp.Y+vp.Height; y += step {
		fmt.Fprintf(b, `    <line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
			ff(vp.X), ff(y), ff(vp.X+vp.Width), ff(y))
	}
	b.WriteString("  </g>\n")
}

func writeStage(b *strings.Builder, st *layout.StageConfig) {
	cx, cy := st.X+st.Width/2, st.Y+st.Height/2
	transform := ""
	if st.RotationDegrees != 0 {
		transform = fmt.Sprintf(` transform="rotate(%s %s %s)"`, ff(st.RotationDegrees), ff(cx), ff(cy))
	}
	switch st.Shape {
	case layout.StageCircle:
		r := st.Width / 2
		fmt.Fprintf(b, `  <circle cx="%s" cy="%s" r="%s" fill="#34495e"%s/>`+"\n", ff(cx), ff(cy), ff(r), transform)
	case layout.StageSemicircle:
		r := st.Width / 2
		fmt.Fprintf(b, `  <path d="M %s %s A %s %s 0 0 1 %s %s Z" fill="#34495e"%s/>`+"\n",
			ff(st.X), ff(cy), ff(r), ff(r), ff(st.X+st.Width), ff(cy), transform)
	default:
		fmt.Fprintf(b, `  <rect x="%s" y="%s" width="%s" height="%s" fill="#34495e"%s/>`+"\n",
			ff(st.X), ff(st.Y), ff(st.Width), ff(st.Height), transform)
	}
	if st.Name != "" {
		fmt.Fprintf(b, `  <text x="%s" y="%s" text-anchor="middle" fill="#ffffff">%s</text>`+"\n",
			ff(cx), ff(cy), escape(st.Name))
	}
}

func writeSection(b *strings.Builder, l *layout.Layout, sec *layout.Section) {
	if sec.IsArc && sec.Arc != nil {
		writeArcSection(b, l, sec)
		return
	}
	transform := ""
	if sec.RotationDegrees != 0 {
		c := sec.Center()
		transform = fmt.Sprintf(` transform="rotate(%s %s %s)"`, ff(sec.RotationDegrees), ff(c.X), ff(c.Y))
	}
	fmt.Fprintf(b, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s" fill-opacity="0.15" stroke="%s"%s/>`+"\n",
		ff(sec.X), ff(sec.Y), ff(sec.Width), ff(sec.Height), sec.Color, sec.Color, transform)
	if l.Settings.ShowSectionLabels && sec.Name != "" {
		c := sec.Center()
		fmt.Fprintf(b, `  <text x="%s" y="%s" text-anchor="middle" fill="%s">%s</text>`+"\n",
			ff(c.X), ff(c.Y), sec.Color, escape(sec.Name))
	}
}

// writeArcSection draws the annular sector as a path: outer arc forward,
// inner arc back.
func writeArcSection(b *strings.Builder, l *layout.Layout, sec *layout.Section) {
	a := sec.Arc
	center := a.Center()
	oStart := geometry.PolarToCartesian(center, a.OuterRadius, a.StartAngleDeg)
	oEnd := geometry.PolarToCartesian(center, a.OuterRadius, a.EndAngleDeg)
	iStart := geometry.PolarToCartesian(center, a.InnerRadius, a.EndAngleDeg)
	iEnd := geometry.PolarToCartesian(center, a.InnerRadius, a.StartAngleDeg)

	span := a.EndAngleDeg - a.StartAngleDeg
	if span < 0 {
		span += 360
	}
	largeArc := 0
	if span > 180 {
		largeArc = 1
	}
	fmt.Fprintf(b,
		`  <path d="M %s %s A %s %s 0 %d 1 %s %s L %s %s A %s %s 0 %d 0 %s %s Z" fill="%s" fill-opacity="0.15" stroke="%s"/>`+"\n",
		ff(oStart.X), ff(oStart.Y), ff(a.OuterRadius), ff(a.OuterRadius), largeArc, ff(oEnd.X), ff(oEnd.Y),
		ff(iStart.X), ff(iStart.Y), ff(a.InnerRadius), ff(a.InnerRadius), largeArc, ff(iEnd.X), ff(iEnd.Y),
		sec.Color, sec.Color)
	if l.Settings.ShowSectionLabels && sec.Name != "" {
		mid := geometry.PolarToCartesian(center, (a.InnerRadius+a.OuterRadius)/2, a.StartAngleDeg+span/2)
		fmt.Fprintf(b, `  <text x="%s" y="%s" text-anchor="middle" fill="%s">%s</text>`+"\n",
			ff(mid.X), ff(mid.Y), sec.Color, escape(sec.Name))
	}
}

func writeSeat(b *strings.Builder, l *layout.Layout, s *layout.Seat) {
	r := l.Settings.SeatSize / 2
	fmt.Fprintf(b, `  <circle cx="%s" cy="%s" r="%s" fill="%s" data-seat-id="%s"/>`+"\n",
		ff(s.X), ff(s.Y), ff(r), seatColor(l, s), s.ID)
	if l.Settings.ShowSeatNumbers {
		label := strconv.Itoa(s.Number)
		if l.Settings.ShowRowLabels {
			label = s.Label()
		}
		fmt.Fprintf(b, `  <text x="%s" y="%s" text-anchor="middle" font-size="%s">%s</text>`+"\n",
			ff(s.X), ff(s.Y+r+10), ff(r), escape(label))
	}
}

// ff formats a coordinate without trailing zeros.
func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

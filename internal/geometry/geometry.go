// Package geometry provides the 2D primitives used by the seat-map engine:
// rotation, polar conversion, containment tests and grid snapping. All
// functions are pure; angles are degrees unless noted otherwise.
package geometry

import "math"

// Point is a position in layout space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Distance returns the Euclidean distance from p to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// NormalizeDegrees maps an angle to [0, 360).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// RotatePoint rotates p around center by the given angle in degrees.
func RotatePoint(p, center Point, degrees float64) Point {
	rad := degrees * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	dx, dy := p.X-center.X, p.Y-center.Y
	return Point{
		X: center.X + dx*c - dy*s,
		Y: center.Y + dx*s + dy*c,
	}
}

// PolarToCartesian converts a (radius, angle) pair around center to a point.
func PolarToCartesian(center Point, radius, angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// AngleOf returns the angle of the vector from center to p in degrees,
// normalized to [0, 360).
func AngleOf(center, p Point) float64 {
	return NormalizeDegrees(math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi)
}

// PointInRotatedRect reports whether p lies inside the rectangle with origin
// (x, y), the given width and height, rotated by rotationDeg around its
// center. The point is brought into the rectangle's local frame by the
// inverse rotation, then tested against axis-aligned bounds.
func PointInRotatedRect(p Point, x, y, width, height, rotationDeg float64) bool {
	center := Point{X: x + width/2, Y: y + height/2}
	local := p
	if rotationDeg != 0 {
		local = RotatePoint(p, center, -rotationDeg)
	}
	return local.X >= x && local.X <= x+width &&
		local.Y >= y && local.Y <= y+height
}

// PointInAnnulusSector reports whether p lies inside the annular sector
// centered at (centerX, centerY) between innerR and outerR, spanning the
// angular range startDeg..endDeg. The range may wrap past 360; bounds a
// full turn apart (e.g. 0..360) cover the whole circle.
func PointInAnnulusSector(p Point, centerX, centerY, innerR, outerR, startDeg, endDeg float64) bool {
	center := Point{X: centerX, Y: centerY}
	d := p.Distance(center)
	if d < innerR || d > outerR {
		return false
	}
	a := AngleOf(center, p)
	start := NormalizeDegrees(startDeg)
	end := NormalizeDegrees(endDeg)
	if start == end {
		// Distinct raw angles that normalize together span the full circle.
		return startDeg != endDeg
	}
	if start < end {
		return a >= start && a <= end
	}
	// Wrapping range, e.g. 300..60.
	return a >= start || a <= end
}

// Snap rounds v to the nearest multiple of grid. A non-positive grid
// disables snapping.
func Snap(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.Round(v/grid) * grid
}

// SnapPoint snaps both coordinates of p to the grid.
func SnapPoint(p Point, grid float64) Point {
	return Point{X: Snap(p.X, grid), Y: Snap(p.Y, grid)}
}

package layout

import "github.com/TSKVenkat/bookd-sub000/internal/geometry"

// FindSeatAt resolves a pointer position to the nearest seat within
// seatSize/1.5 of the point. On equal distance the earlier seat wins;
// generated seats never overlap at that tolerance.
func FindSeatAt(p geometry.Point, seats []*Seat, seatSize float64) *Seat {
	tolerance := seatSize / 1.5
	var best *Seat
	bestDist := 0.0
	for _, s := range seats {
		d := p.Distance(s.Position())
		if d > tolerance {
			continue
		}
		if best == nil || d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}

// FindSectionAt resolves a pointer position to the topmost section
// containing it. Sections are tested in reverse insertion order so the most
// recently added one wins on overlap. Arc sections use the annulus-sector
// test, everything else the rotated-rectangle test.
func FindSectionAt(p geometry.Point, sections []*Section) *Section {
	for i := len(sections) - 1; i >= 0; i-- {
		s := sections[i]
		if s.IsArc && s.Arc != nil {
			a := s.Arc
			if geometry.PointInAnnulusSector(p, a.CenterX, a.CenterY,
				a.InnerRadius, a.OuterRadius, a.StartAngleDeg, a.EndAngleDeg) {
				return s
			}
			continue
		}
		if geometry.PointInRotatedRect(p, s.X, s.Y, s.Width, s.Height, s.RotationDegrees) {
			return s
		}
	}
	return nil
}

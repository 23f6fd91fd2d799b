package layout

import (
	"strconv"
	"strings"

	"github.com/TSKVenkat/bookd-sub000/internal/geometry"
)

// GenerateSeats regenerates the seats of a section: every seat whose
// SectionID matches is purged first, then the freshly generated grid is
// inserted. Generation never reconciles by position or label. The result is
// deterministic for identical section parameters apart from seat ids.
//
// Returns the inserted seats, or false when the section does not exist.
func (l *Layout) GenerateSeats(sectionID, ticketTypeID string) ([]*Seat, bool) {
	sec, ok := l.sectionByID[sectionID]
	if !ok {
		return nil, false
	}
	l.purgeSectionSeats(sectionID)

	var fresh []Seat
	if sec.IsArc && sec.Arc != nil {
		fresh = arcSeats(sec, ticketTypeID)
	} else {
		fresh = rectangularSeats(sec, ticketTypeID)
	}

	out := make([]*Seat, 0, len(fresh))
	for _, seat := range fresh {
		if s, ok := l.AddSeat(seat); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// rectangularSeats lays a rows x seatsPerRow grid centered inside the
// section box, rotates the whole grid around the section center by the
// section rotation and stamps each seat with that rotation.
func rectangularSeats(sec *Section, ticketTypeID string) []Seat {
	center := sec.Center()
	gridW := float64(sec.SeatsPerRow-1) * sec.SeatSpacing
	gridH := float64(sec.Rows-1) * sec.RowSpacing
	offsetX := (sec.Width - gridW) / 2
	offsetY := (sec.Height - gridH) / 2

	seats := make([]Seat, 0, sec.Rows*sec.SeatsPerRow)
	for r := 0; r < sec.Rows; r++ {
		row := AdvanceRowLabel(sec.RowStartLabel, r)
		for c := 0; c < sec.SeatsPerRow; c++ {
			p := geometry.Point{
				X: sec.X + offsetX + float64(c)*sec.SeatSpacing,
				Y: sec.Y + offsetY + float64(r)*sec.RowSpacing,
			}
			if sec.RotationDegrees != 0 {
				p = geometry.RotatePoint(p, center, sec.RotationDegrees)
			}
			seats = append(seats, Seat{
				Row:             row,
				Number:          sec.SeatStartNumber + c,
				X:               p.X,
				Y:               p.Y,
				RotationDegrees: sec.RotationDegrees,
				Status:          SeatAvailable,
				SeatKind:        "standard",
				TicketTypeID:    ticketTypeID,
				SectionID:       sec.ID,
			})
		}
	}
	return seats
}

// arcSeats places rows on radii interpolated between the inner and outer
// radius and columns on angles interpolated across the angular span. Each
// seat faces away from the arc center (angle + 90 degrees).
func arcSeats(sec *Section, ticketTypeID string) []Seat {
	a := sec.Arc
	center := a.Center()
	rows := sec.Rows
	if a.Rows > 0 {
		rows = a.Rows
	}
	rowDiv := float64(rows - 1)
	if rowDiv <= 0 {
		rowDiv = 1
	}
	colDiv := float64(sec.SeatsPerRow - 1)
	if colDiv <= 0 {
		colDiv = 1
	}

	seats := make([]Seat, 0, rows*sec.SeatsPerRow)
	for r := 0; r < rows; r++ {
		radius := a.InnerRadius + (a.OuterRadius-a.InnerRadius)*float64(r)/rowDiv
		row := AdvanceRowLabel(sec.RowStartLabel, r)
		for c := 0; c < sec.SeatsPerRow; c++ {
			angle := a.StartAngleDeg + (a.EndAngleDeg-a.StartAngleDeg)*float64(c)/colDiv
			p := geometry.PolarToCartesian(center, radius, angle)
			seats = append(seats, Seat{
				Row:             row,
				Number:          sec.SeatStartNumber + c,
				X:               p.X,
				Y:               p.Y,
				RotationDegrees: geometry.NormalizeDegrees(angle + 90),
				Status:          SeatAvailable,
				SeatKind:        "standard",
				TicketTypeID:    ticketTypeID,
				SectionID:       sec.ID,
			})
		}
	}
	return seats
}

// AdvanceRowLabel advances a row start label by offset positions. Alphabetic
// labels advance through the letter sequence (A..Z, AA, AB, ...); anything
// else is treated as a number.
func AdvanceRowLabel(start string, offset int) string {
	s := strings.TrimSpace(start)
	if s == "" {
		s = "A"
	}
	if idx, ok := rowLabelToIndex(s); ok {
		return indexToRowLabel(idx + offset)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		n = 1
	}
	return strconv.Itoa(n + offset)
}

// indexToRowLabel converts a zero-based index to an alphabetical row label
// like A, B, ..., Z, AA.
func indexToRowLabel(i int) string {
	if i < 0 {
		return ""
	}
	var runes []rune
	for {
		runes = append(runes, rune('A'+i%26))
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	for j, k := 0, len(runes)-1; j < k; j, k = j+1, k-1 {
		runes[j], runes[k] = runes[k], runes[j]
	}
	return string(runes)
}

// rowLabelToIndex converts a label like A or AA into its zero-based index.
func rowLabelToIndex(label string) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if s == "" {
		return -1, false
	}
	idx := 0
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return -1, false
		}
		idx = idx*26 + int(r-'A') + 1
	}
	return idx - 1, true
}

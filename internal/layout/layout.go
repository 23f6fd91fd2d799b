package layout

import (
	"github.com/google/uuid"

	"github.com/TSKVenkat/bookd-sub000/internal/geometry"
)

// Layout is the aggregate root for one event: venue settings, the stage and
// the owned collections of sections, seats and ticket types. Seats and
// sections are stored in flat insertion-ordered arenas keyed by id; a
// sectionID -> seat-id index makes cascading deletes an index lookup.
//
// All mutation goes through the command methods below. Structurally invalid
// requests are dropped (the method reports false) and never leave the
// aggregate in a broken state. Mutation is single-writer by contract: one
// editor session owns one Layout.
type Layout struct {
	Settings Settings
	Stage    StageConfig

	seats       []*Seat
	seatByID    map[string]*Seat
	sections    []*Section
	sectionByID map[string]*Section

	ticketTypes    []TicketType
	ticketTypeByID map[string]TicketType

	seatsBySection map[string]map[string]bool
}

// New returns an empty layout with default settings and stage.
func New() *Layout {
	return &Layout{
		Settings:       DefaultSettings(),
		Stage:          DefaultStage(),
		seatByID:       make(map[string]*Seat),
		sectionByID:    make(map[string]*Section),
		ticketTypeByID: make(map[string]TicketType),
		seatsBySection: make(map[string]map[string]bool),
	}
}

// Seats returns the seats in insertion order. The slice is shared; callers
// must not reorder it.
func (l *Layout) Seats() []*Seat {
	return l.seats
}

// Sections returns the sections in insertion order.
func (l *Layout) Sections() []*Section {
	return l.sections
}

// TicketTypes returns the ticket types known to this layout.
func (l *Layout) TicketTypes() []TicketType {
	return l.ticketTypes
}

// SeatByID looks a seat up by id.
func (l *Layout) SeatByID(id string) (*Seat, bool) {
	s, ok := l.seatByID[id]
	return s, ok
}

// SectionByID looks a section up by id.
func (l *Layout) SectionByID(id string) (*Section, bool) {
	s, ok := l.sectionByID[id]
	return s, ok
}

// TicketTypeByID looks a ticket type up by id.
func (l *Layout) TicketTypeByID(id string) (TicketType, bool) {
	t, ok := l.ticketTypeByID[id]
	return t, ok
}

// ItemCount returns the number of renderable items (seats + sections).
func (l *Layout) ItemCount() int {
	return len(l.seats) + len(l.sections)
}

// SetTicketTypes replaces the ticket-type catalog. Called once per session
// with the collaborator's event-owned list.
func (l *Layout) SetTicketTypes(types []TicketType) {
	l.ticketTypes = types
	l.ticketTypeByID = make(map[string]TicketType, len(types))
	for _, t := range types {
		l.ticketTypeByID[t.ID] = t
	}
}

// AddSeat inserts a seat and returns it. A missing id is generated; a
// duplicate id is rejected. Rotation is normalized to [0,360) and a zero
// status defaults to available.
func (l *Layout) AddSeat(seat Seat) (*Seat, bool) {
	if seat.ID == "" {
		seat.ID = uuid.NewString()
	}
	if _, exists := l.seatByID[seat.ID]; exists {
		return nil, false
	}
	if seat.Status == "" {
		seat.Status = SeatAvailable
	}
	if seat.SeatKind == "" {
		seat.SeatKind = "standard"
	}
	seat.RotationDegrees = geometry.NormalizeDegrees(seat.RotationDegrees)
	s := &seat
	l.seats = append(l.seats, s)
	l.seatByID[s.ID] = s
	if s.SectionID != "" {
		l.indexSeat(s)
	}
	return s, true
}

// MoveSeat updates a seat's position.
func (l *Layout) MoveSeat(id string, p geometry.Point) bool {
	s, ok := l.seatByID[id]
	if !ok {
		return false
	}
	s.X, s.Y = p.X, p.Y
	return true
}

// SetSeatStatus updates a seat's status.
func (l *Layout) SetSeatStatus(id string, status SeatStatus) bool {
	s, ok := l.seatByID[id]
	if !ok {
		return false
	}
	s.Status = status
	return true
}

// SetSeatTicketType binds a seat to a ticket type. Dangling references are
// tolerated in memory and resolved at save time.
func (l *Layout) SetSeatTicketType(id, ticketTypeID string) bool {
	s, ok := l.seatByID[id]
	if !ok {
		return false
	}
	s.TicketTypeID = ticketTypeID
	return true
}

// RotateSeat adds delta degrees to a seat's rotation, normalized on write.
func (l *Layout) RotateSeat(id string, delta float64) bool {
	s, ok := l.seatByID[id]
	if !ok {
		return false
	}
	s.RotationDegrees = geometry.NormalizeDegrees(s.RotationDegrees + delta)
	return true
}

// RemoveSeat deletes a seat unconditionally. Business rules about which
// statuses may be deleted live with the editor, not the model.
func (l *Layout) RemoveSeat(id string) bool {
	s, ok := l.seatByID[id]
	if !ok {
		return false
	}
	delete(l.seatByID, id)
	if s.SectionID != "" {
		l.unindexSeat(s)
	}
	for i, cur := range l.seats {
		if cur.ID == id {
			l.seats = append(l.seats[:i], l.seats[i+1:]...)
			break
		}
	}
	return true
}

// AddSection validates and inserts a section. Arc sections must carry arc
// data with 0 <= inner < outer and distinct start/end angles; their bounding
// box is recomputed from the arc. Degenerate rectangles are rejected.
func (l *Layout) AddSection(sec Section) (*Section, bool) {
	if sec.ID == "" {
		sec.ID = uuid.NewString()
	}
	if _, exists := l.sectionByID[sec.ID]; exists {
		return nil, false
	}
	if sec.IsArc {
		a := sec.Arc
		if a == nil || a.InnerRadius < 0 || a.InnerRadius >= a.OuterRadius ||
			a.StartAngleDeg == a.EndAngleDeg {
			return nil, false
		}
		if a.Rows == 0 {
			a.Rows = sec.Rows
		}
	} else if sec.Width <= 0 || sec.Height <= 0 {
		return nil, false
	}
	if sec.Rows <= 0 {
		sec.Rows = DefaultSectionRows
	}
	if sec.SeatsPerRow <= 0 {
		sec.SeatsPerRow = DefaultSectionSeatsPerRow
	}
	if sec.RowSpacing <= 0 {
		sec.RowSpacing = DefaultRowSpacing
	}
	if sec.SeatSpacing <= 0 {
		sec.SeatSpacing = DefaultSeatSpacing
	}
	if sec.RowStartLabel == "" {
		sec.RowStartLabel = "A"
	}
	if sec.SeatStartNumber <= 0 {
		sec.SeatStartNumber = 1
	}
	if sec.Color == "" {
		sec.Color = DefaultSectionColor
	}
	sec.RotationDegrees = geometry.NormalizeDegrees(sec.RotationDegrees)
	sec.syncArcBounds()
	s := &sec
	l.sections = append(l.sections, s)
	l.sectionByID[s.ID] = s
	return s, true
}

// MoveSection translates a section to a new origin. For arc sections the
// arc center moves with the box so the two stay consistent.
func (l *Layout) MoveSection(id string, p geometry.Point) bool {
	s, ok := l.sectionByID[id]
	if !ok {
		return false
	}
	dx, dy := p.X-s.X, p.Y-s.Y
	s.X, s.Y = p.X, p.Y
	if s.IsArc && s.Arc != nil {
		s.Arc.CenterX += dx
		s.Arc.CenterY += dy
	}
	return true
}

// RotateSection adds delta degrees to a non-arc section's rotation. When
// applyToSeats is true every owned seat is rotated around the section center
// and has the delta added to its own rotation.
func (l *Layout) RotateSection(id string, delta float64, applyToSeats bool) bool {
	s, ok := l.sectionByID[id]
	if !ok || s.IsArc {
		return false
	}
	s.RotationDegrees = geometry.NormalizeDegrees(s.RotationDegrees + delta)
	if !applyToSeats {
		return true
	}
	center := s.Center()
	for _, seatID := range l.sectionSeatIDs(id) {
		seat := l.seatByID[seatID]
		p := geometry.RotatePoint(seat.Position(), center, delta)
		seat.X, seat.Y = p.X, p.Y
		seat.RotationDegrees = geometry.NormalizeDegrees(seat.RotationDegrees + delta)
	}
	return true
}

// RemoveSection deletes a section and cascades to every seat whose
// SectionID matches, atomically with it.
func (l *Layout) RemoveSection(id string) bool {
	if _, ok := l.sectionByID[id]; !ok {
		return false
	}
	l.purgeSectionSeats(id)
	delete(l.sectionByID, id)
	for i, cur := range l.sections {
		if cur.ID == id {
			l.sections = append(l.sections[:i], l.sections[i+1:]...)
			break
		}
	}
	return true
}

// SeatsInSection returns the seats currently back-referencing the section,
// in insertion order.
func (l *Layout) SeatsInSection(id string) []*Seat {
	ids := l.seatsBySection[id]
	if len(ids) == 0 {
		return nil
	}
	out := make([]*Seat, 0, len(ids))
	for _, s := range l.seats {
		if ids[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

func (l *Layout) sectionSeatIDs(id string) []string {
	ids := l.seatsBySection[id]
	out := make([]string, 0, len(ids))
	for _, s := range l.seats {
		if ids[s.ID] {
			out = append(out, s.ID)
		}
	}
	return out
}

// purgeSectionSeats removes every seat indexed under the section id.
func (l *Layout) purgeSectionSeats(id string) {
	ids := l.seatsBySection[id]
	if len(ids) == 0 {
		delete(l.seatsBySection, id)
		return
	}
	kept := l.seats[:0]
	for _, s := range l.seats {
		if ids[s.ID] {
			delete(l.seatByID, s.ID)
			continue
		}
		kept = append(kept, s)
	}
	l.seats = kept
	delete(l.seatsBySection, id)
}

func (l *Layout) indexSeat(s *Seat) {
	set := l.seatsBySection[s.SectionID]
	if set == nil {
		set = make(map[string]bool)
		l.seatsBySection[s.SectionID] = set
	}
	set[s.ID] = true
}

func (l *Layout) unindexSeat(s *Seat) {
	if set := l.seatsBySection[s.SectionID]; set != nil {
		delete(set, s.ID)
		if len(set) == 0 {
			delete(l.seatsBySection, s.SectionID)
		}
	}
}

// Package document is the bridge between the in-memory layout and the
// persistence collaborator. It serializes the layout to the JSON document
// shape the store expects and rebuilds a layout from such a document,
// merging defaults over whatever is missing. Malformed documents degrade to
// "no existing layout" rather than failing the caller.
package document

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/TSKVenkat/bookd-sub000/internal/layout"
)

// LayoutDocument is the wire shape stored per event. Ticket types are owned
// by the event and persisted separately; seats reference them by id.
type LayoutDocument struct {
	Layout   SettingsDoc        `json:"layout"`
	Stage    layout.StageConfig `json:"stageConfig"`
	Sections []layout.Section   `json:"sections"`
	Seats    []layout.Seat      `json:"seats"`
}

// SettingsDoc mirrors layout.Settings on the wire. The boolean toggles are
// pointers so that an absent key falls back to its default while a stored
// false survives the round trip.
type SettingsDoc struct {
	Name              string  `json:"name"`
	VenueType         string  `json:"venueType"`
	SeatSize          float64 `json:"seatSize"`
	GridSize          float64 `json:"gridSize"`
	SnapToGrid        *bool   `json:"snapToGrid"`
	VenueWidth        float64 `json:"venueWidth"`
	VenueHeight       float64 `json:"venueHeight"`
	ShowGrid          *bool   `json:"showGrid"`
	ShowRowLabels     *bool   `json:"showRowLabels"`
	ShowSeatNumbers   *bool   `json:"showSeatNumbers"`
	ShowSectionLabels *bool   `json:"showSectionLabels"`
}

// ErrNoTicketTypes rejects a save before any ticket type exists.
var ErrNoTicketTypes = errors.New("layout requires at least one ticket type")

// DanglingTicketTypeError reports seats whose ticket type reference cannot
// be resolved at save time.
type DanglingTicketTypeError struct {
	SeatIDs []string
}

func (e *DanglingTicketTypeError) Error() string {
	return fmt.Sprintf("%d seats reference missing or absent ticket types", len(e.SeatIDs))
}

// Serialize projects the layout into its document form.
func Serialize(l *layout.Layout) LayoutDocument {
	doc := LayoutDocument{
		Layout:   settingsDoc(l.Settings),
		Stage:    l.Stage,
		Sections: make([]layout.Section, 0, len(l.Sections())),
		Seats:    make([]layout.Seat, 0, len(l.Seats())),
	}
	for _, s := range l.Sections() {
		sec := *s
		if s.Arc != nil {
			arc := *s.Arc
			sec.Arc = &arc
		}
		doc.Sections = append(doc.Sections, sec)
	}
	for _, s := range l.Seats() {
		doc.Seats = append(doc.Seats, *s)
	}
	return doc
}

// Deserialize rebuilds a layout from a document, merging the stored fields
// over the defaults. Sections that fail validation and seats with duplicate
// ids are skipped rather than poisoning the whole layout.
func Deserialize(doc LayoutDocument) *layout.Layout {
	l := layout.New()
	l.Settings = mergeSettings(doc.Layout)
	l.Stage = mergeStage(doc.Stage)
	for _, sec := range doc.Sections {
		l.AddSection(sec)
	}
	for _, seat := range doc.Seats {
		l.AddSeat(seat)
	}
	return l
}

// Decode parses raw bytes into a document. Malformed input yields the empty
// document, which Deserialize turns into a default layout.
func Decode(raw []byte) LayoutDocument {
	var doc LayoutDocument
	if len(raw) == 0 {
		return doc
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return LayoutDocument{}
	}
	return doc
}

// Encode renders a document for the store.
func Encode(doc LayoutDocument) ([]byte, error) {
	return json.Marshal(doc)
}

// Validate enforces the save precondition: at least one ticket type must
// exist and every seat's ticket type reference must resolve. Unresolved
// references are tolerated in memory and only rejected here.
func Validate(l *layout.Layout) error {
	if len(l.TicketTypes()) == 0 {
		return ErrNoTicketTypes
	}
	var dangling []string
	for _, s := range l.Seats() {
		if s.TicketTypeID == "" {
			dangling = append(dangling, s.ID)
			continue
		}
		if _, ok := l.TicketTypeByID(s.TicketTypeID); !ok {
			dangling = append(dangling, s.ID)
		}
	}
	if len(dangling) > 0 {
		return &DanglingTicketTypeError{SeatIDs: dangling}
	}
	return nil
}

// ApplyDefaultTicketType binds every unresolved seat to the first ticket
// type. This backs the save-time confirmation fallback; it is not an engine
// invariant. Returns how many seats were adjusted.
func ApplyDefaultTicketType(l *layout.Layout) int {
	types := l.TicketTypes()
	if len(types) == 0 {
		return 0
	}
	def := types[0].ID
	n := 0
	for _, s := range l.Seats() {
		if s.TicketTypeID == "" {
			l.SetSeatTicketType(s.ID, def)
			n++
			continue
		}
		if _, ok := l.TicketTypeByID(s.TicketTypeID); !ok {
			l.SetSeatTicketType(s.ID, def)
			n++
		}
	}
	return n
}

// settingsDoc projects settings into the wire shape with every toggle
// present.
func settingsDoc(s layout.Settings) SettingsDoc {
	return SettingsDoc{
		Name:              s.Name,
		VenueType:         s.VenueType,
		SeatSize:          s.SeatSize,
		GridSize:          s.GridSize,
		SnapToGrid:        &s.SnapToGrid,
		VenueWidth:        s.VenueWidth,
		VenueHeight:       s.VenueHeight,
		ShowGrid:          &s.ShowGrid,
		ShowRowLabels:     &s.ShowRowLabels,
		ShowSeatNumbers:   &s.ShowSeatNumbers,
		ShowSectionLabels: &s.ShowSectionLabels,
	}
}

// mergeSettings fills every missing field with its default: empty or
// non-positive for text and numeric fields, nil for the pointer toggles.
func mergeSettings(d SettingsDoc) layout.Settings {
	s := layout.DefaultSettings()
	if d.Name != "" {
		s.Name = d.Name
	}
	if d.VenueType != "" {
		s.VenueType = d.VenueType
	}
	if d.SeatSize > 0 {
		s.SeatSize = d.SeatSize
	}
	if d.GridSize > 0 {
		s.GridSize = d.GridSize
	}
	if d.VenueWidth > 0 {
		s.VenueWidth = d.VenueWidth
	}
	if d.VenueHeight > 0 {
		s.VenueHeight = d.VenueHeight
	}
	s.SnapToGrid = boolOr(d.SnapToGrid, s.SnapToGrid)
	s.ShowGrid = boolOr(d.ShowGrid, s.ShowGrid)
	s.ShowRowLabels = boolOr(d.ShowRowLabels, s.ShowRowLabels)
	s.ShowSeatNumbers = boolOr(d.ShowSeatNumbers, s.ShowSeatNumbers)
	s.ShowSectionLabels = boolOr(d.ShowSectionLabels, s.ShowSectionLabels)
	return s
}

// boolOr returns the stored value when the document carried the key.
func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func mergeStage(st layout.StageConfig) layout.StageConfig {
	def := layout.DefaultStage()
	if st.Name == "" {
		st.Name = def.Name
	}
	if st.Shape == "" {
		st.Shape = def.Shape
	}
	if st.Width <= 0 {
		st.Width = def.Width
	}
	if st.Height <= 0 {
		st.Height = def.Height
	}
	return st
}

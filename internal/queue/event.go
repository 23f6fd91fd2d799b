// Package queue defines message payloads exchanged over the message broker
// and the background consumer that reacts to them.
package queue

// LayoutSavedEvent is published after a layout document is successfully
// persisted. Downstream consumers (cache invalidation on other replicas,
// analytics, notifications) get enough context to act without querying the
// primary database.
type LayoutSavedEvent struct {
	EventID      uint64 `json:"event_id"`
	OrganizerID  uint64 `json:"organizer_id"`
	SectionCount int    `json:"section_count"`
	SeatCount    int    `json:"seat_count"`
	SavedAt      string `json:"saved_at"`
}

// LayoutSavedQueue is the broker queue LayoutSavedEvent travels on.
const LayoutSavedQueue = "layout.saved"

package repository

import (
	"context"
	"database/sql"

	"github.com/TSKVenkat/bookd-sub000/internal/layout"
)

// TicketTypeRepo reads the ticket types owned by an event. The layout
// engine consumes them read-only at session start; creation and pricing
// live with the ticketing collaborator.
type TicketTypeRepo struct {
	db *sql.DB
}

// NewTicketTypeRepo constructs a TicketTypeRepo with the given DB handle.
func NewTicketTypeRepo(db *sql.DB) *TicketTypeRepo {
	return &TicketTypeRepo{db: db}
}

// ListByEvent retrieves all ticket types of an event ordered by price.
func (r *TicketTypeRepo) ListByEvent(ctx context.Context, eventID uint64) ([]layout.TicketType, error) {
	const q = `SELECT id, name, price, color, capacity, is_public
	           FROM ticket_types
	           WHERE event_id = ?
	           ORDER BY price DESC, name`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []layout.TicketType
	for rows.Next() {
		var t layout.TicketType
		var capacity sql.NullInt64
		if err := rows.Scan(&t.ID, &t.Name, &t.Price, &t.Color, &capacity, &t.IsPublic); err != nil {
			return nil, err
		}
		if capacity.Valid {
			c := int(capacity.Int64)
			t.Capacity = &c
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// LayoutRepo stores one serialized layout document per event. Documents are
// opaque JSON blobs to this layer; the document package owns their shape.
// Reads go through Redis when a client is configured; a nil client simply
// disables caching.
type LayoutRepo struct {
	db       *sql.DB
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewLayoutRepo constructs a LayoutRepo. cache may be nil.
func NewLayoutRepo(db *sql.DB, cache *redis.Client, cacheTTL time.Duration) *LayoutRepo {
	return &LayoutRepo{db: db, cache: cache, cacheTTL: cacheTTL}
}

func layoutCacheKey(eventID uint64) string {
	return "layout:" + strconv.FormatUint(eventID, 10)
}

// Get loads the raw layout document for an event. Returns ErrLayoutNotFound
// when none was ever saved.
func (r *LayoutRepo) Get(ctx context.Context, eventID uint64) ([]byte, error) {
	if r.cache != nil {
		if raw, err := r.cache.Get(ctx, layoutCacheKey(eventID)).Bytes(); err == nil {
			return raw, nil
		}
	}
	const q = `SELECT document FROM event_layouts WHERE event_id = ?`
	var raw []byte
	err := r.db.QueryRowContext(ctx, q, eventID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLayoutNotFound
		}
		return nil, err
	}
	r.fillCache(ctx, eventID, raw)
	return raw, nil
}

// Save upserts the layout document for an event. The whole document is
// replaced; there is no partial-update path. Saves against events that have
// already started are rejected with ErrEventInPast, and saves by a user who
// does not organize the event with ErrForbidden.
func (r *LayoutRepo) Save(ctx context.Context, eventID, organizerID uint64, raw []byte) error {
	if err := r.checkEventEditable(ctx, eventID, organizerID); err != nil {
		return err
	}
	const q = `INSERT INTO event_layouts (event_id, document)
	           VALUES (?, ?)
	           ON DUPLICATE KEY UPDATE document = VALUES(document), updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, q, eventID, raw); err != nil {
		return err
	}
	r.fillCache(ctx, eventID, raw)
	return nil
}

// Invalidate drops the cached document for an event. Used by the
// layout.saved consumer so replicas do not serve stale documents.
func (r *LayoutRepo) Invalidate(ctx context.Context, eventID uint64) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Del(ctx, layoutCacheKey(eventID)).Err(); err != nil {
		log.Printf("layout cache: invalidate failed for event %d: %v", eventID, err)
	}
}

// checkEventEditable verifies the event exists, belongs to the organizer
// and has not started yet.
func (r *LayoutRepo) checkEventEditable(ctx context.Context, eventID, organizerID uint64) error {
	const q = `SELECT organizer_id, starts_at FROM events WHERE id = ?`
	var ownerID uint64
	var startsAt time.Time
	err := r.db.QueryRowContext(ctx, q, eventID).Scan(&ownerID, &startsAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEventNotFound
		}
		return err
	}
	if ownerID != organizerID {
		return ErrForbidden
	}
	if startsAt.Before(time.Now().UTC()) {
		return ErrEventInPast
	}
	return nil
}

// fillCache best-effort refreshes the cached document.
func (r *LayoutRepo) fillCache(ctx context.Context, eventID uint64, raw []byte) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, layoutCacheKey(eventID), raw, r.cacheTTL).Err(); err != nil {
		log.Printf("layout cache: set failed for event %d: %v", eventID, err)
	}
}

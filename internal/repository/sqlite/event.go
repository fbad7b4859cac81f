package sqlite

import (
	"context"
	"database/sql"

	"github.com/campusevents/campus-events/internal/domain"
)

// EventRepository implements domain.EventRepository over the "userEvents"
// store key.
type EventRepository struct {
	db *sql.DB
}

func (r *EventRepository) ListUserEvents(ctx context.Context) ([]domain.Event, error) {
	return getCollection[domain.Event](ctx, r.db, keyUserEvents)
}

func (r *EventRepository) AppendUserEvent(ctx context.Context, event *domain.Event) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		events, err := getCollection[domain.Event](ctx, tx, keyUserEvents)
		if err != nil {
			return err
		}
		events = append(events, *event)
		return setCollection(ctx, tx, keyUserEvents, events)
	})
}

package database

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createAnalyticsEvent = `
INSERT INTO analytics_events (id, user_id, event_type, payload, client_version, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateAnalyticsEventParams struct {
	UserID        uuid.UUID
	EventType     string
	Payload       []byte
	ClientVersion string
	OccurredAt    time.Time
}

func (q *Queries) CreateAnalyticsEvent(ctx context.Context, arg CreateAnalyticsEventParams) error {
	_, err := q.pool.Exec(
		ctx, createAnalyticsEvent,
		uuid.New(), arg.UserID, arg.EventType,
		arg.Payload, arg.ClientVersion, arg.OccurredAt,
	)
	return err
}

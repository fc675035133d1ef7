package database

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
	IsActive     bool
}

type Problem struct {
	ID          uuid.UUID
	PlatformID  string
	Platform    string
	Title       string
	Difficulty  string
	Description string
	Url         string
	Examples    []byte
	Constraints []byte
	CreatedAt   time.Time
}

type Hint struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProblemID uuid.UUID
	Level     int32
	Content   string
	CreatedAt time.Time
}

type AnalyticsEvent struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	EventType     string
	Payload       []byte
	ClientVersion string
	OccurredAt    time.Time
}

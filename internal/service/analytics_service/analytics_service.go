package analytics_service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Yashcodes04/codementor-project/internal/database"
	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	"github.com/Yashcodes04/codementor-project/internal/service/user_service"
	log "github.com/sirupsen/logrus"
)

type AnalyticsService struct {
	DB         *database.Queries
	UserConfig *user_service.UserService
}

// Track stores one client event for the authenticated user. The event payload
// is free-form, the client decides what it reports, only event_type and
// extension_version are pulled out into their own columns.
func (a *AnalyticsService) Track(
	ctx context.Context,
	eventData map[string]any,
) error {
	user, err := a.UserConfig.FetchUserFromClaims(ctx)
	if err != nil {
		return err
	}

	eventType, _ := eventData["event_type"].(string)
	if eventType == "" {
		eventType = "unknown"
	}
	clientVersion, _ := eventData["extension_version"].(string)

	occurredAt := time.Now()
	if stamp, ok := eventData["timestamp"].(float64); ok {
		occurredAt = time.UnixMilli(int64(stamp))
	}

	payload, err := json.Marshal(eventData)
	if err != nil {
		log.Errorf("cannot marshal analytics payload, %v", err)
		return errors.Join(mentor_errors.ErrInternal, err)
	}

	if dbErr := a.DB.CreateAnalyticsEvent(
		ctx,
		database.CreateAnalyticsEventParams{
			UserID:        user.ID,
			EventType:     eventType,
			Payload:       payload,
			ClientVersion: clientVersion,
			OccurredAt:    occurredAt,
		},
	); dbErr != nil {
		return mentor_errors.HandleDBErrors(dbErr, nil, "failed to store analytics event")
	}

	log.WithFields(log.Fields{
		"user_name":  user.UserName,
		"event_type": eventType,
	}).Info("tracked event")
	return nil
}

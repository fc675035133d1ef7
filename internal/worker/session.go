package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Yashcodes04/codementor-project/internal/storage"
	log "github.com/sirupsen/logrus"
)

// Session is the explicit auth-state object handed to every worker handler.
// Storage stays the backing store, nothing reads it around the session.
type Session struct {
	store storage.Store
}

func NewSession(store storage.Store) *Session {
	return &Session{store: store}
}

func (s *Session) Token(ctx context.Context) (string, error) {
	token, _, err := s.store.Get(ctx, storage.KeyAuthToken)
	return token, err
}

func (s *Session) User(ctx context.Context) (json.RawMessage, error) {
	raw, ok, err := s.store.Get(ctx, storage.KeyUserData)
	if err != nil || !ok {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

func (s *Session) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// SetAuth persists the token, the user object and the login timestamp
func (s *Session) SetAuth(ctx context.Context, token string, user json.RawMessage) error {
	if err := s.store.Set(ctx, storage.KeyAuthToken, token); err != nil {
		return fmt.Errorf("cannot persist auth token, %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyUserData, string(user)); err != nil {
		return fmt.Errorf("cannot persist user data, %w", err)
	}
	stamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if err := s.store.Set(ctx, storage.KeyLoginTimestamp, stamp); err != nil {
		return fmt.Errorf("cannot persist login timestamp, %w", err)
	}
	return nil
}

// ClearAuth removes only the auth-related keys, settings survive a logout
func (s *Session) ClearAuth(ctx context.Context) error {
	return s.store.Remove(
		ctx,
		storage.KeyAuthToken,
		storage.KeyUserData,
		storage.KeyLoginTimestamp,
	)
}

// SeedDefaultSettings writes the install-time defaults. An existing settings
// value is never overwritten, install runs again on every agent start.
func (s *Session) SeedDefaultSettings(ctx context.Context) error {
	_, ok, err := s.store.Get(ctx, storage.KeySettings)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	raw, err := json.Marshal(DefaultSettings)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, storage.KeySettings, string(raw)); err != nil {
		return err
	}
	log.Info("seeded default settings")
	return nil
}

package worker

import "encoding/json"

// message actions the worker answers. anything else gets a generic failure.
const (
	ActionGetAuthStatus = "get_auth_status"
	ActionLogin         = "login"
	ActionLogout        = "logout"
	ActionTrackEvent    = "track_event"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Message struct {
	Action      string         `json:"action"`
	Credentials *Credentials   `json:"credentials,omitempty"`
	EventData   map[string]any `json:"eventData,omitempty"`
}

// Response is the reply for every action. IsAuthenticated is only set for
// get_auth_status, User only when a user is known.
type Response struct {
	Success         bool            `json:"success"`
	IsAuthenticated *bool           `json:"isAuthenticated,omitempty"`
	User            json.RawMessage `json:"user,omitempty"`
	Error           string          `json:"error,omitempty"`
}

// Settings are written once at install time with these defaults
type Settings struct {
	HintsEnabled   bool   `json:"hintsEnabled"`
	MaxHintsPerDay int    `json:"maxHintsPerDay"`
	DifficultyCap  string `json:"difficultyCap"`
}

var DefaultSettings = Settings{
	HintsEnabled:   true,
	MaxHintsPerDay: 10,
	DifficultyCap:  "medium",
}

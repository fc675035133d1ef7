package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	loginPath = "/api/auth/login"
	trackPath = "/api/analytics/track"

	backendTimeout = 15 * time.Second

	// user facing text for transport failures, the raw error is logged only
	MsgConnectivity = "Unable to connect. Please check your internet connection and try again."
	msgLoginFailed  = "Login failed. Please try again."
)

var (
	// ErrBackendUnreachable wraps transport-level failures
	ErrBackendUnreachable = errors.New(MsgConnectivity)
	// ErrAuthRejected carries the server's own message when it sent one
	ErrAuthRejected = errors.New(msgLoginFailed)
)

// BackendClient proxies the worker's HTTP calls to the CodeMentor API
type BackendClient struct {
	BaseURL string
	Version string

	HTTPClient *http.Client
}

func NewBackendClient(baseURL, version string) *BackendClient {
	return &BackendClient{
		BaseURL:    baseURL,
		Version:    version,
		HTTPClient: &http.Client{Timeout: backendTimeout},
	}
}

type loginResponse struct {
	AccessToken string          `json:"access_token"`
	User        json.RawMessage `json:"user"`

	// error shapes the backend uses on non-2xx
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// Login exchanges credentials for a token and a user object. A success
// response missing either field is a failure, not a crash.
func (c *BackendClient) Login(
	ctx context.Context,
	email, password string,
) (token string, user json.RawMessage, err error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.BaseURL+loginPath,
		bytes.NewReader(body),
	)
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Errorf("login request failed, %v", err)
		return "", nil, fmt.Errorf("%w", ErrBackendUnreachable)
	}
	defer resp.Body.Close()

	var parsed loginResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&parsed); decodeErr != nil {
		log.Errorf("cannot decode login response, %v", decodeErr)
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return "", nil, fmt.Errorf("%w", ErrAuthRejected)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// surface the server's message verbatim when it sent one
		msg := parsed.Detail
		if msg == "" {
			msg = parsed.Message
		}
		if msg == "" {
			return "", nil, fmt.Errorf("%w", ErrAuthRejected)
		}
		return "", nil, fmt.Errorf("%w, %s", ErrAuthRejected, msg)
	}

	if parsed.AccessToken == "" || len(parsed.User) == 0 {
		log.Error("login response missing access_token or user")
		return "", nil, fmt.Errorf("%w", ErrAuthRejected)
	}

	return parsed.AccessToken, parsed.User, nil
}

// Track posts one analytics event, stamped with the send time and the agent
// version. Non-2xx responses are logged and reported as a soft error, the
// caller never surfaces them to the user.
func (c *BackendClient) Track(
	ctx context.Context,
	token string,
	eventData map[string]any,
) error {
	payload := make(map[string]any, len(eventData)+2)
	for k, v := range eventData {
		payload[k] = v
	}
	payload["timestamp"] = time.Now().UnixMilli()
	payload["extension_version"] = c.Version

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.BaseURL+trackPath,
		bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("track request failed, %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warnf("analytics endpoint returned status %d", resp.StatusCode)
		return fmt.Errorf("analytics endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

package worker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/Yashcodes04/codementor-project/internal/storage"
)

func newTestWorker(backendURL string) (*Worker, storage.Store) {
	store := storage.NewMemoryStore()
	session := NewSession(store)
	backend := NewBackendClient(backendURL, "1.0.0")
	return New(session, backend), store
}

func TestLoginSuccessPersistsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var creds Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("cannot decode credentials: %v", err)
		}
		if creds.Email != "dev@example.com" {
			t.Errorf("email = %q", creds.Email)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "token-123",
			"token_type":   "bearer",
			"user":         map[string]string{"email": "dev@example.com"},
		})
	}))
	defer server.Close()

	w, store := newTestWorker(server.URL)
	ctx := context.Background()

	resp := w.HandleMessage(ctx, Message{
		Action:      ActionLogin,
		Credentials: &Credentials{Email: "dev@example.com", Password: "secret"},
	})
	if !resp.Success {
		t.Fatalf("login failed: %s", resp.Error)
	}
	if len(resp.User) == 0 {
		t.Error("response missing user object")
	}

	token, _, err := store.Get(ctx, storage.KeyAuthToken)
	if err != nil || token != "token-123" {
		t.Errorf("stored token = %q, err %v", token, err)
	}
	if _, ok, _ := store.Get(ctx, storage.KeyUserData); !ok {
		t.Error("user data not persisted")
	}
	if _, ok, _ := store.Get(ctx, storage.KeyLoginTimestamp); !ok {
		t.Error("login timestamp not persisted")
	}
}

func TestLoginSurfacesServerDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "invalid email or password"})
	}))
	defer server.Close()

	w, store := newTestWorker(server.URL)
	ctx := context.Background()

	resp := w.HandleMessage(ctx, Message{
		Action:      ActionLogin,
		Credentials: &Credentials{Email: "dev@example.com", Password: "wrong"},
	})
	if resp.Success {
		t.Fatal("login must fail on 401")
	}
	if !strings.Contains(resp.Error, "invalid email or password") {
		t.Errorf("error %q does not carry the server detail", resp.Error)
	}

	if _, ok, _ := store.Get(ctx, storage.KeyAuthToken); ok {
		t.Error("failed login must not persist a session")
	}
}

func TestLoginMissingTokenIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]string{"email": "dev@example.com"},
		})
	}))
	defer server.Close()

	w, _ := newTestWorker(server.URL)

	resp := w.HandleMessage(context.Background(), Message{
		Action:      ActionLogin,
		Credentials: &Credentials{Email: "dev@example.com", Password: "secret"},
	})
	if resp.Success {
		t.Fatal("a 200 without access_token must still be a failed login")
	}
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	w, _ := newTestWorker(server.URL)
	ctx := context.Background()

	cases := []*Credentials{
		nil,
		{Email: "", Password: "secret"},
		{Email: "dev@example.com", Password: ""},
	}
	for _, creds := range cases {
		resp := w.HandleMessage(ctx, Message{Action: ActionLogin, Credentials: creds})
		if resp.Success {
			t.Error("empty credentials must fail")
		}
		if resp.Error != "Please enter both email and password" {
			t.Errorf("error = %q", resp.Error)
		}
	}
	if calls.Load() != 0 {
		t.Errorf("validation failures made %d network calls", calls.Load())
	}
}

func TestLoginUnreachableBackend(t *testing.T) {
	// a server that is already closed
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	w, _ := newTestWorker(server.URL)

	resp := w.HandleMessage(context.Background(), Message{
		Action:      ActionLogin,
		Credentials: &Credentials{Email: "dev@example.com", Password: "secret"},
	})
	if resp.Success {
		t.Fatal("login must fail when the backend is unreachable")
	}
	if !strings.Contains(resp.Error, "Unable to connect") {
		t.Errorf("error = %q, want the connectivity message", resp.Error)
	}
}

func TestLogoutKeepsSettings(t *testing.T) {
	w, store := newTestWorker("http://localhost:0")
	ctx := context.Background()

	if err := w.Install(ctx); err != nil {
		t.Fatalf("install failed: %v", err)
	}
	if err := w.Session.SetAuth(ctx, "token-123", json.RawMessage(`{"email":"dev@example.com"}`)); err != nil {
		t.Fatalf("cannot seed session: %v", err)
	}

	resp := w.HandleMessage(ctx, Message{Action: ActionLogout})
	if !resp.Success {
		t.Fatalf("logout failed: %s", resp.Error)
	}

	for _, key := range []string{storage.KeyAuthToken, storage.KeyUserData, storage.KeyLoginTimestamp} {
		if _, ok, _ := store.Get(ctx, key); ok {
			t.Errorf("key %s survived logout", key)
		}
	}
	if _, ok, _ := store.Get(ctx, storage.KeySettings); !ok {
		t.Error("settings must survive logout")
	}
}

func TestAuthStatus(t *testing.T) {
	w, _ := newTestWorker("http://localhost:0")
	ctx := context.Background()

	resp := w.HandleMessage(ctx, Message{Action: ActionGetAuthStatus})
	if !resp.Success || resp.IsAuthenticated == nil || *resp.IsAuthenticated {
		t.Fatalf("fresh store must report unauthenticated, got %+v", resp)
	}

	if err := w.Session.SetAuth(ctx, "token-123", json.RawMessage(`{"email":"dev@example.com"}`)); err != nil {
		t.Fatalf("cannot seed session: %v", err)
	}
	resp = w.HandleMessage(ctx, Message{Action: ActionGetAuthStatus})
	if resp.IsAuthenticated == nil || !*resp.IsAuthenticated {
		t.Fatal("must report authenticated after SetAuth")
	}
	if len(resp.User) == 0 {
		t.Error("authenticated status must carry the user object")
	}
}

func TestTrackEventUnauthenticatedIsSoftSuccess(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	w, _ := newTestWorker(server.URL)

	resp := w.HandleMessage(context.Background(), Message{
		Action:    ActionTrackEvent,
		EventData: map[string]any{"event_type": "page_detected"},
	})
	if !resp.Success {
		t.Fatal("anonymous tracking must be a soft success")
	}
	if calls.Load() != 0 {
		t.Errorf("anonymous tracking made %d network calls", calls.Load())
	}
}

func TestTrackEventStampsPayload(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/analytics/track" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
			t.Errorf("authorization = %q", got)
		}
		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(map[string]string{"status": "tracked"})
	}))
	defer server.Close()

	w, _ := newTestWorker(server.URL)
	ctx := context.Background()
	if err := w.Session.SetAuth(ctx, "token-123", json.RawMessage(`{}`)); err != nil {
		t.Fatalf("cannot seed session: %v", err)
	}

	resp := w.HandleMessage(ctx, Message{
		Action:    ActionTrackEvent,
		EventData: map[string]any{"event_type": "hint_requested"},
	})
	if !resp.Success {
		t.Fatalf("tracking failed: %s", resp.Error)
	}

	if received["event_type"] != "hint_requested" {
		t.Errorf("event_type = %v", received["event_type"])
	}
	if received["extension_version"] != "1.0.0" {
		t.Errorf("extension_version = %v", received["extension_version"])
	}
	if _, ok := received["timestamp"]; !ok {
		t.Error("payload missing timestamp")
	}
}

func TestUnknownActionFails(t *testing.T) {
	w, _ := newTestWorker("http://localhost:0")

	resp := w.HandleMessage(context.Background(), Message{Action: "self_destruct"})
	if resp.Success {
		t.Fatal("unknown actions must fail")
	}
	if resp.Error != "unknown action" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestInstallSeedsSettingsOnce(t *testing.T) {
	w, store := newTestWorker("http://localhost:0")
	ctx := context.Background()

	if err := w.Install(ctx); err != nil {
		t.Fatalf("install failed: %v", err)
	}
	raw, ok, _ := store.Get(ctx, storage.KeySettings)
	if !ok {
		t.Fatal("install must seed settings")
	}

	var settings Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		t.Fatalf("cannot decode settings: %v", err)
	}
	if settings != DefaultSettings {
		t.Errorf("settings = %+v, want defaults %+v", settings, DefaultSettings)
	}

	// a second install must not clobber user edits
	if err := store.Set(ctx, storage.KeySettings, `{"hintsEnabled":false}`); err != nil {
		t.Fatal(err)
	}
	if err := w.Install(ctx); err != nil {
		t.Fatalf("second install failed: %v", err)
	}
	raw, _, _ = store.Get(ctx, storage.KeySettings)
	if raw != `{"hintsEnabled":false}` {
		t.Errorf("second install overwrote settings: %s", raw)
	}
}

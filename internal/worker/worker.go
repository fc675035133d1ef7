// Package worker is the agent's background process: it owns session state,
// proxies backend HTTP calls and answers messages from the popup and the
// page-side components.
package worker

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type Worker struct {
	Session *Session
	Backend *BackendClient
}

func New(session *Session, backend *BackendClient) *Worker {
	return &Worker{
		Session: session,
		Backend: backend,
	}
}

// Install runs the install-time hook, seeding default settings
func (w *Worker) Install(ctx context.Context) error {
	return w.Session.SeedDefaultSettings(ctx)
}

// HandleMessage dispatches one inbound message and always produces a reply,
// handlers never panic the worker.
func (w *Worker) HandleMessage(ctx context.Context, msg Message) Response {
	switch msg.Action {
	case ActionGetAuthStatus:
		return w.handleAuthStatus(ctx)
	case ActionLogin:
		return w.handleLogin(ctx, msg.Credentials)
	case ActionLogout:
		return w.handleLogout(ctx)
	case ActionTrackEvent:
		return w.handleTrackEvent(ctx, msg.EventData)
	default:
		log.Warnf("received unknown action %q", msg.Action)
		return Response{Success: false, Error: "unknown action"}
	}
}

func (w *Worker) handleAuthStatus(ctx context.Context) Response {
	authenticated, err := w.Session.IsAuthenticated(ctx)
	if err != nil {
		log.Errorf("cannot read auth state, %v", err)
		authenticated = false
	}

	resp := Response{Success: true, IsAuthenticated: &authenticated}
	if authenticated {
		user, err := w.Session.User(ctx)
		if err != nil {
			log.Errorf("cannot read user data, %v", err)
		}
		resp.User = user
	}
	return resp
}

func (w *Worker) handleLogin(ctx context.Context, credentials *Credentials) Response {
	// validate before any network call
	if credentials == nil || credentials.Email == "" || credentials.Password == "" {
		return Response{
			Success: false,
			Error:   "Please enter both email and password",
		}
	}

	token, user, err := w.Backend.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		return Response{Success: false, Error: err.Error()}
	}

	if err := w.Session.SetAuth(ctx, token, user); err != nil {
		log.Errorf("cannot persist session, %v", err)
		return Response{Success: false, Error: msgLoginFailed}
	}

	log.WithField("email", credentials.Email).Info("logged in")
	return Response{Success: true, User: user}
}

func (w *Worker) handleLogout(ctx context.Context) Response {
	if err := w.Session.ClearAuth(ctx); err != nil {
		log.Errorf("cannot clear session, %v", err)
		return Response{Success: false, Error: "logout failed"}
	}
	log.Info("logged out")
	return Response{Success: true}
}

// handleTrackEvent degrades silently: an unauthenticated user or a failing
// backend both produce a soft reply, analytics never disturbs the user.
func (w *Worker) handleTrackEvent(ctx context.Context, eventData map[string]any) Response {
	token, err := w.Session.Token(ctx)
	if err != nil {
		log.Errorf("cannot read auth token, %v", err)
		return Response{Success: false, Error: "tracking failed"}
	}
	if token == "" {
		// nothing to report for anonymous users, treated as success
		return Response{Success: true}
	}

	if err := w.Backend.Track(ctx, token, eventData); err != nil {
		log.Warnf("event tracking failed, %v", err)
		return Response{Success: false, Error: "tracking failed"}
	}
	return Response{Success: true}
}

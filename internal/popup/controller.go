// Package popup renders the agent's login/dashboard surface, the stand-in
// for the extension's action popup.
package popup

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Yashcodes04/codementor-project/internal/storage"
	"github.com/Yashcodes04/codementor-project/internal/worker"
	log "github.com/sirupsen/logrus"
)

type View string

const (
	ViewLogin     View = "login"
	ViewDashboard View = "dashboard"

	// errors auto-hide after this long
	defaultErrorDisplayDuration = 5 * time.Second
)

type ViewState struct {
	View View
	User json.RawMessage
}

type Controller struct {
	Worker *worker.Worker
	Store  storage.Store

	ErrorDisplayDuration time.Duration

	lastError  string
	errorUntil time.Time
}

func NewController(w *worker.Worker, store storage.Store) *Controller {
	return &Controller{
		Worker:               w,
		Store:                store,
		ErrorDisplayDuration: defaultErrorDisplayDuration,
	}
}

// Open asks the worker for auth status and picks the view
func (c *Controller) Open(ctx context.Context) ViewState {
	resp := c.Worker.HandleMessage(ctx, worker.Message{Action: worker.ActionGetAuthStatus})
	if resp.IsAuthenticated != nil && *resp.IsAuthenticated {
		return ViewState{View: ViewDashboard, User: resp.User}
	}
	return ViewState{View: ViewLogin}
}

// Login validates locally, then delegates to the worker. A validation
// failure never reaches the network.
func (c *Controller) Login(ctx context.Context, email, password string) ViewState {
	if email == "" || password == "" {
		c.showError("Please enter both email and password")
		return ViewState{View: ViewLogin}
	}

	resp := c.Worker.HandleMessage(ctx, worker.Message{
		Action: worker.ActionLogin,
		Credentials: &worker.Credentials{
			Email:    email,
			Password: password,
		},
	})
	if !resp.Success {
		c.showError(resp.Error)
		return ViewState{View: ViewLogin}
	}
	return ViewState{View: ViewDashboard, User: resp.User}
}

// Logout tells the worker to drop the session and then clears the whole
// store, not just the auth keys, before returning to the login view.
func (c *Controller) Logout(ctx context.Context) ViewState {
	resp := c.Worker.HandleMessage(ctx, worker.Message{Action: worker.ActionLogout})
	if !resp.Success {
		log.Warnf("logout reported failure, clearing storage anyway")
	}
	if err := c.Store.Clear(ctx); err != nil {
		log.Errorf("cannot clear storage, %v", err)
	}
	return ViewState{View: ViewLogin}
}

func (c *Controller) showError(message string) {
	c.lastError = message
	c.errorUntil = time.Now().Add(c.ErrorDisplayDuration)
}

// CurrentError returns the visible error, empty once the display window
// has passed
func (c *Controller) CurrentError(now time.Time) string {
	if now.After(c.errorUntil) {
		return ""
	}
	return c.lastError
}

package worker

import (
	"context"
	"runtime"
	"time"

	"github.com/Yashcodes04/codementor-project/internal/detector"
	log "github.com/sirupsen/logrus"
)

// Injector starts detection on a page. Re-injecting into a page that already
// runs a detector is an expected error and is swallowed by the caller.
type Injector func(ctx context.Context, url string) error

// OnTabCompleted is the tab-update hook: every finished navigation to a
// problem-hosting url (re-)injects the detector. Injection errors are
// tolerated silently, already-injected is the common case.
func (w *Worker) OnTabCompleted(ctx context.Context, url string, inject Injector) {
	if !detector.IsProblemURL(url) {
		return
	}
	if inject == nil {
		return
	}
	if err := inject(ctx, url); err != nil {
		log.Debugf("detector injection skipped for %s, %v", url, err)
	}
}

// Keepalive periodically runs a no-op platform query so the hosting process
// is never torn down as idle. Returns when the context is cancelled.
func (w *Worker) Keepalive(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// the query result is irrelevant, issuing it is the point
			log.Tracef("keepalive platform query, %s/%s", runtime.GOOS, runtime.GOARCH)
		}
	}
}

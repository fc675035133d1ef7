// Package navwatch notices client-side url changes, single-page app routing
// never fires a page load.
package navwatch

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	defaultPollInterval = 500 * time.Millisecond
	defaultSettleDelay  = time.Second
)

// URLSource reports the page's current location
type URLSource interface {
	CurrentURL(ctx context.Context) (string, error)
}

// Watcher polls the url and re-runs initialization after each change. There
// is deliberately no in-flight guard: a change during a slow initialization
// starts another one and the later run wins.
type Watcher struct {
	Source URLSource

	// PollInterval is how often the url is sampled
	PollInterval time.Duration
	// SettleDelay is the fixed wait between noticing a change and
	// re-initializing, routing needs a moment to render
	SettleDelay time.Duration

	// OnChange runs the full initialization sequence for the new url
	OnChange func(ctx context.Context, url string)

	lastURL string
}

func New(source URLSource, onChange func(ctx context.Context, url string)) *Watcher {
	return &Watcher{
		Source:       source,
		PollInterval: defaultPollInterval,
		SettleDelay:  defaultSettleDelay,
		OnChange:     onChange,
	}
}

// Run watches until the context is cancelled. The first observed url counts
// as a change so startup triggers initialization too.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.sample(ctx)
		}
	}
}

func (w *Watcher) sample(ctx context.Context) {
	url, err := w.Source.CurrentURL(ctx)
	if err != nil {
		log.Debugf("cannot read current url, %v", err)
		return
	}
	if url == "" || url == w.lastURL {
		return
	}

	log.WithField("url", url).Info("url changed")
	w.lastURL = url

	// settle, then re-initialize. runs detached so a slow initialization
	// never blocks the next sample
	go func() {
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.SettleDelay):
		}
		w.OnChange(ctx, url)
	}()
}

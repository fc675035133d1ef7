package detector

import (
	"context"
	"strings"

	"github.com/chromedp/chromedp"
	log "github.com/sirupsen/logrus"
)

// ChromeSource drives a headless browser and reads live DOM. It doubles as
// the navigation watcher's url source, single-page app routing changes the
// location without a page load.
type ChromeSource struct {
	browserCtx context.Context
	cancel     context.CancelFunc
}

// NewChromeSource starts a headless browser on a blank page
func NewChromeSource(ctx context.Context, headless bool) (*ChromeSource, error) {
	// setup browser options
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)

	// create context with ExecAllocator
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)

	// create browser context
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	cancel := func() {
		cancelBrowser()
		cancelAlloc()
	}

	// open headless browser with a blank page
	if err := chromedp.Run(browserCtx, chromedp.Navigate("about:blank")); err != nil {
		cancel()
		return nil, err
	}

	return &ChromeSource{browserCtx: browserCtx, cancel: cancel}, nil
}

func (s *ChromeSource) Close() {
	s.cancel()
}

// Navigate points the browser at the url and waits for the load to settle
func (s *ChromeSource) Navigate(ctx context.Context, url string) error {
	runCtx, cancel := s.runContext(ctx)
	defer cancel()
	return chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

// Text waits for the selector within the context deadline and returns its
// trimmed text. A selector that never appears reports the context error.
func (s *ChromeSource) Text(ctx context.Context, selector string) (string, error) {
	runCtx, cancel := s.runContext(ctx)
	defer cancel()

	var text string
	err := chromedp.Run(runCtx,
		chromedp.Text(selector, &text, chromedp.ByQuery),
	)
	if err != nil {
		log.Tracef("selector %q did not resolve, %v", selector, err)
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// CurrentURL reports the browser's current location
func (s *ChromeSource) CurrentURL(ctx context.Context) (string, error) {
	runCtx, cancel := s.runContext(ctx)
	defer cancel()

	var location string
	if err := chromedp.Run(runCtx, chromedp.Location(&location)); err != nil {
		return "", err
	}
	return location, nil
}

// runContext derives a chromedp-compatible context that still honors the
// caller's deadline
func (s *ChromeSource) runContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok {
		return context.WithDeadline(s.browserCtx, deadline)
	}
	return context.WithCancel(s.browserCtx)
}

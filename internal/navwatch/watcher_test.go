package navwatch

import (
	"context"
	"sync"
	"testing"
	"time"
)

// fakeSource serves a settable url
type fakeSource struct {
	mu  sync.Mutex
	url string
}

func (f *fakeSource) CurrentURL(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.url, nil
}

func (f *fakeSource) setURL(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.url = url
}

type changeRecorder struct {
	mu   sync.Mutex
	urls []string
}

func (r *changeRecorder) record(_ context.Context, url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
}

func (r *changeRecorder) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	urls := make([]string, len(r.urls))
	copy(urls, r.urls)
	return urls
}

func newTestWatcher(source *fakeSource, recorder *changeRecorder) *Watcher {
	w := New(source, recorder.record)
	w.PollInterval = 5 * time.Millisecond
	w.SettleDelay = 5 * time.Millisecond
	return w
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition never became true")
}

func TestWatcherFiresOnFirstURL(t *testing.T) {
	source := &fakeSource{url: "https://leetcode.com/problems/two-sum/"}
	recorder := &changeRecorder{}
	w := newTestWatcher(source, recorder)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	waitFor(t, time.Second, func() bool {
		return len(recorder.recorded()) == 1
	})
	if got := recorder.recorded()[0]; got != "https://leetcode.com/problems/two-sum/" {
		t.Errorf("recorded url = %q", got)
	}
}

func TestWatcherFiresOncePerChange(t *testing.T) {
	source := &fakeSource{url: "https://leetcode.com/problems/two-sum/"}
	recorder := &changeRecorder{}
	w := newTestWatcher(source, recorder)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	waitFor(t, time.Second, func() bool {
		return len(recorder.recorded()) == 1
	})

	source.setURL("https://leetcode.com/problems/valid-anagram/")
	waitFor(t, time.Second, func() bool {
		return len(recorder.recorded()) == 2
	})

	// a stable url produces no further events
	time.Sleep(50 * time.Millisecond)
	if got := len(recorder.recorded()); got != 2 {
		t.Errorf("recorded %d events for 2 urls", got)
	}
}

func TestWatcherStopsOnCancel(t *testing.T) {
	source := &fakeSource{}
	w := newTestWatcher(source, &changeRecorder{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := w.Run(ctx); err != context.Canceled {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
}

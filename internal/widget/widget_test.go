package widget

import (
	"context"
	"errors"
	"testing"

	"github.com/Yashcodes04/codementor-project/internal/detector"
)

type stubProvider struct {
	hints map[int]string
	err   error
}

func (s stubProvider) Hint(_ context.Context, _ *detector.ProblemRecord, level int) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.hints[level], nil
}

func newTestPanel(provider Provider) *Panel {
	p := NewPanel(&detector.ProblemRecord{Title: "Two Sum", Difficulty: "Easy"}, provider)
	p.LoadingDelay = 0
	return p
}

func TestPanelInitialState(t *testing.T) {
	p := newTestPanel(StaticProvider{})

	if got := p.State(1); got != LevelEnabled {
		t.Errorf("level 1 state = %v, want enabled", got)
	}
	for level := 2; level <= MaxHintLevels; level++ {
		if got := p.State(level); got != LevelLocked {
			t.Errorf("level %d state = %v, want locked", level, got)
		}
	}
}

func TestPanelSequentialUnlock(t *testing.T) {
	provider := stubProvider{hints: map[int]string{
		1: "first",
		2: "second",
		3: "third",
	}}
	p := newTestPanel(provider)
	ctx := context.Background()

	for level := 1; level <= MaxHintLevels; level++ {
		hint, err := p.RequestHint(ctx, level)
		if err != nil {
			t.Fatalf("RequestHint(%d) returned error: %v", level, err)
		}
		if hint != provider.hints[level] {
			t.Errorf("hint %d = %q, want %q", level, hint, provider.hints[level])
		}
		if got := p.State(level); got != LevelComplete {
			t.Errorf("level %d state = %v, want complete", level, got)
		}
	}

	hints := p.Hints()
	if len(hints) != MaxHintLevels {
		t.Fatalf("got %d hints, want %d", len(hints), MaxHintLevels)
	}
}

func TestPanelLockedLevelRejected(t *testing.T) {
	p := newTestPanel(StaticProvider{})

	_, err := p.RequestHint(context.Background(), 2)
	if !errors.Is(err, ErrLevelLocked) {
		t.Fatalf("err = %v, want ErrLevelLocked", err)
	}
	if got := p.State(2); got != LevelLocked {
		t.Errorf("level 2 state = %v, want still locked", got)
	}
}

func TestPanelUnknownLevelRejected(t *testing.T) {
	p := newTestPanel(StaticProvider{})

	for _, level := range []int{0, MaxHintLevels + 1, -1} {
		_, err := p.RequestHint(context.Background(), level)
		if !errors.Is(err, ErrNoSuchLevel) {
			t.Errorf("RequestHint(%d) err = %v, want ErrNoSuchLevel", level, err)
		}
	}
}

func TestPanelRepeatedRequestRejected(t *testing.T) {
	p := newTestPanel(StaticProvider{})
	ctx := context.Background()

	if _, err := p.RequestHint(ctx, 1); err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	if _, err := p.RequestHint(ctx, 1); !errors.Is(err, ErrLevelLocked) {
		t.Fatalf("err = %v, want ErrLevelLocked for a completed level", err)
	}
}

func TestPanelProviderFailureFallsBack(t *testing.T) {
	p := newTestPanel(stubProvider{err: errors.New("provider down")})

	hint, err := p.RequestHint(context.Background(), 1)
	if err != nil {
		t.Fatalf("RequestHint returned error: %v", err)
	}
	if hint != fallbackHint {
		t.Errorf("hint = %q, want fallback %q", hint, fallbackHint)
	}
	if got := p.State(2); got != LevelEnabled {
		t.Errorf("level 2 state = %v, a fallback hint still unlocks the next level", got)
	}
}

func TestPanelEmptyHintFallsBack(t *testing.T) {
	p := newTestPanel(stubProvider{hints: map[int]string{}})

	hint, err := p.RequestHint(context.Background(), 1)
	if err != nil {
		t.Fatalf("RequestHint returned error: %v", err)
	}
	if hint != fallbackHint {
		t.Errorf("hint = %q, want fallback %q", hint, fallbackHint)
	}
}

func TestPanelCancelledRequestReEnablesLevel(t *testing.T) {
	p := newTestPanel(StaticProvider{})
	p.LoadingDelay = defaultLoadingDelay

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.RequestHint(ctx, 1)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if got := p.State(1); got != LevelEnabled {
		t.Errorf("level 1 state = %v, want re-enabled after cancellation", got)
	}
}

func TestPanelToggleMinimize(t *testing.T) {
	p := newTestPanel(StaticProvider{})

	if p.Minimized() {
		t.Fatal("panel must start expanded")
	}
	if !p.ToggleMinimize() {
		t.Fatal("first toggle must minimize")
	}
	if p.ToggleMinimize() {
		t.Fatal("second toggle must expand")
	}
}

func TestPanelRenderLines(t *testing.T) {
	p := newTestPanel(stubProvider{hints: map[int]string{1: "use a map"}})
	ctx := context.Background()

	if _, err := p.RequestHint(ctx, 1); err != nil {
		t.Fatalf("RequestHint failed: %v", err)
	}

	lines := p.RenderLines()
	if len(lines) == 0 {
		t.Fatal("no lines rendered")
	}
	found := false
	for _, line := range lines {
		if line == "Hint 1: use a map" {
			found = true
		}
	}
	if !found {
		t.Errorf("rendered lines %q missing the unlocked hint", lines)
	}

	p.ToggleMinimize()
	lines = p.RenderLines()
	if len(lines) != 2 || lines[1] != "(minimized)" {
		t.Errorf("minimized render = %q, want header plus (minimized)", lines)
	}
}

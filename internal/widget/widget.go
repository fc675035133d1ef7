// Package widget holds the hint panel: problem metadata plus three
// sequentially unlockable hint levels. State lives only in the panel,
// a replacement panel starts over.
package widget

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Yashcodes04/codementor-project/internal/detector"
	log "github.com/sirupsen/logrus"
)

// MaxHintLevels is three. Product copy promises five, the gap is recorded
// scope, not a bug.
const MaxHintLevels = 3

const defaultLoadingDelay = 1500 * time.Millisecond

// fallback shown when the provider has nothing for a level
const fallbackHint = "Keep working on it! You're making progress."

var (
	ErrNoSuchLevel  = errors.New("no such hint level")
	ErrLevelLocked  = errors.New("hint level is locked")
	ErrLevelPending = errors.New("hint level is already loading")
)

type LevelState int

const (
	LevelLocked LevelState = iota
	LevelEnabled
	LevelLoading
	LevelComplete
)

// Provider returns the hint text for a level of the panel's problem
type Provider interface {
	Hint(ctx context.Context, problem *detector.ProblemRecord, level int) (string, error)
}

type Panel struct {
	Problem *detector.ProblemRecord

	// LoadingDelay is the artificial wait before a hint is shown
	LoadingDelay time.Duration

	provider  Provider
	mu        sync.Mutex
	levels    [MaxHintLevels + 1]LevelState
	hints     []string
	minimized bool
}

// NewPanel builds a panel with level 1 enabled and everything above locked
func NewPanel(problem *detector.ProblemRecord, provider Provider) *Panel {
	p := &Panel{
		Problem:      problem,
		LoadingDelay: defaultLoadingDelay,
		provider:     provider,
	}
	p.levels[1] = LevelEnabled
	return p
}

// RequestHint unlocks one level: loading state, fixed delay, provider call,
// then the next level is enabled. Levels must be requested in order, a
// locked or unknown level is an error.
func (p *Panel) RequestHint(ctx context.Context, level int) (string, error) {
	if level < 1 || level > MaxHintLevels {
		return "", fmt.Errorf("%w, level %d", ErrNoSuchLevel, level)
	}

	p.mu.Lock()
	switch p.levels[level] {
	case LevelEnabled:
		p.levels[level] = LevelLoading
	case LevelLoading:
		p.mu.Unlock()
		return "", ErrLevelPending
	default:
		p.mu.Unlock()
		return "", fmt.Errorf("%w, level %d", ErrLevelLocked, level)
	}
	p.mu.Unlock()

	// the loading delay is part of the widget contract
	select {
	case <-ctx.Done():
		p.mu.Lock()
		p.levels[level] = LevelEnabled
		p.mu.Unlock()
		return "", ctx.Err()
	case <-time.After(p.LoadingDelay):
	}

	hint, err := p.provider.Hint(ctx, p.Problem, level)
	if err != nil || hint == "" {
		if err != nil {
			log.Warnf("hint provider failed for level %d, %v", level, err)
		}
		hint = fallbackHint
	}

	p.mu.Lock()
	p.levels[level] = LevelComplete
	p.hints = append(p.hints, hint)
	if level < MaxHintLevels {
		p.levels[level+1] = LevelEnabled
	}
	p.mu.Unlock()

	return hint, nil
}

func (p *Panel) State(level int) LevelState {
	if level < 1 || level > MaxHintLevels {
		return LevelLocked
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.levels[level]
}

// Hints returns the hints shown so far, in unlock order
func (p *Panel) Hints() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	hints := make([]string, len(p.hints))
	copy(hints, p.hints)
	return hints
}

// ToggleMinimize flips the panel and reports the new state
func (p *Panel) ToggleMinimize() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.minimized = !p.minimized
	return p.minimized
}

func (p *Panel) Minimized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.minimized
}

// RenderLines flattens the panel for terminal display
func (p *Panel) RenderLines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	lines := []string{
		fmt.Sprintf("CodeMentor — %s [%s]", p.Problem.Title, p.Problem.Difficulty),
	}
	if p.minimized {
		return append(lines, "(minimized)")
	}

	for i, hint := range p.hints {
		lines = append(lines, fmt.Sprintf("Hint %d: %s", i+1, hint))
	}
	for level := 1; level <= MaxHintLevels; level++ {
		var label string
		switch p.levels[level] {
		case LevelEnabled:
			label = "available"
		case LevelLoading:
			label = "loading..."
		case LevelComplete:
			continue
		default:
			label = "locked"
		}
		lines = append(lines, fmt.Sprintf("[Hint %d: %s]", level, label))
	}
	return lines
}

package widget

import (
	"context"
	"fmt"

	"github.com/Yashcodes04/codementor-project/internal/detector"
)

// StaticProvider is the placeholder hint table the panel ships with until a
// backend integration substitutes for it.
type StaticProvider struct{}

var staticHints = map[int]string{
	1: "Think about what data structure would help you solve this efficiently.",
	2: "Consider the time complexity. Can you do better than brute force?",
	3: "Try breaking the problem into smaller subproblems.",
}

func (StaticProvider) Hint(
	_ context.Context,
	_ *detector.ProblemRecord,
	level int,
) (string, error) {
	hint, ok := staticHints[level]
	if !ok {
		return "", fmt.Errorf("%w, level %d", ErrNoSuchLevel, level)
	}
	return hint, nil
}

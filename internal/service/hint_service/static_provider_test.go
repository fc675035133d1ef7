package hint_service

import (
	"context"
	"testing"

	"github.com/Yashcodes04/codementor-project/internal/service/problem_service"
)

func TestClassifyProblem(t *testing.T) {
	cases := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{"array by title", "Two Sum", "", "array"},
		{"subarray", "Maximum Subarray", "", "array"},
		{"string", "Longest Substring Without Repeating Characters", "", "string"},
		{"palindrome", "Valid Palindrome", "", "string"},
		{"tree", "Binary Tree Inorder Traversal", "", "tree"},
		{"graph", "Shortest Path in a Grid", "", "graph"},
		{"dp by description", "Climbing Stairs", "find the optimal number of ways", "dp"},
		{"two pointer", "Remove Duplicates from Sorted List", "", "two-pointer"},
		{"general", "FizzBuzz", "print numbers", "general"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			problem := problem_service.Problem{Title: c.title, Description: c.description}
			if got := ClassifyProblem(problem); got != c.want {
				t.Errorf("ClassifyProblem(%q) = %q, want %q", c.title, got, c.want)
			}
		})
	}
}

func TestStaticProviderCategoryHints(t *testing.T) {
	provider := StaticProvider{}
	problem := problem_service.Problem{Title: "Two Sum"}

	for level := MinHintLevel; level <= MaxHintLevel; level++ {
		hint, err := provider.Hint(context.Background(), problem, level, nil)
		if err != nil {
			t.Fatalf("Hint(level %d) returned error: %v", level, err)
		}
		if hint != categoryHints["array"][level] {
			t.Errorf("level %d hint = %q, want array table entry", level, hint)
		}
	}
}

func TestStaticProviderGenericFallback(t *testing.T) {
	provider := StaticProvider{}
	problem := problem_service.Problem{Title: "FizzBuzz"}

	hint, err := provider.Hint(context.Background(), problem, 2, nil)
	if err != nil {
		t.Fatalf("Hint returned error: %v", err)
	}
	if hint != genericHints[2] {
		t.Errorf("hint = %q, want generic table entry", hint)
	}
}

func TestStaticProviderCatchAll(t *testing.T) {
	provider := StaticProvider{}
	problem := problem_service.Problem{Title: "FizzBuzz"}

	// a level outside every table still produces a hint
	hint, err := provider.Hint(context.Background(), problem, 99, nil)
	if err != nil {
		t.Fatalf("Hint returned error: %v", err)
	}
	if hint != catchAllHint {
		t.Errorf("hint = %q, want catch-all", hint)
	}
}

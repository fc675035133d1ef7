package hint_service

import (
	"context"
	"strings"

	"github.com/Yashcodes04/codementor-project/internal/service/problem_service"
)

// StaticProvider serves curated hints from an in-memory table keyed by a
// keyword classification of the problem. It needs no network and backs the
// Gemini provider as the fallback of last resort.
type StaticProvider struct{}

var categoryHints = map[string]map[int]string{
	"array": {
		1: "This is an array manipulation problem. Consider what operations you need to perform on the array elements.",
		2: "Think about using nested loops or specific array methods to process elements. Consider the time complexity.",
		3: "You might need to track indices or use additional data structures like hash maps for optimization.",
	},
	"string": {
		1: "This is a string processing problem. Think about character manipulation and string properties.",
		2: "Consider using string methods, character arrays, or sliding window techniques.",
		3: "You might need to handle edge cases like empty strings or special characters.",
	},
	"tree": {
		1: "This is a tree traversal or tree manipulation problem. Think about recursive solutions.",
		2: "Consider depth-first search (DFS) or breadth-first search (BFS) approaches.",
		3: "Implement recursive functions with base cases for null nodes and leaf nodes.",
	},
	"graph": {
		1: "This is a graph problem. Think about how nodes are connected and what traversal you need.",
		2: "Consider using BFS for shortest path or level-order problems, DFS for connectivity.",
		3: "You'll need a visited set/array and possibly a queue (BFS) or stack (DFS).",
	},
	"dp": {
		1: "This looks like a dynamic programming problem. Think about overlapping subproblems.",
		2: "Consider what state you need to track and how previous states relate to current ones.",
		3: "Try building a DP table or using memoization with recursive solutions.",
	},
	"two-pointer": {
		1: "This problem can likely be solved using the two-pointer technique.",
		2: "Consider placing pointers at different positions and moving them based on conditions.",
		3: "Think about when to move the left pointer vs right pointer to optimize your search.",
	},
}

var genericHints = map[int]string{
	1: "Break down the problem into smaller steps. What is the main operation you need to perform?",
	2: "Think about the most efficient approach. Can you optimize the time or space complexity?",
	3: "Consider edge cases and implement your solution step by step.",
}

const catchAllHint = "Keep working on it! You're making progress."

func (StaticProvider) Hint(
	_ context.Context,
	problem problem_service.Problem,
	level int,
	_ *UserProgress,
) (string, error) {
	category := ClassifyProblem(problem)

	if hints, ok := categoryHints[category]; ok {
		if hint, ok := hints[level]; ok {
			return hint, nil
		}
	}

	if hint, ok := genericHints[level]; ok {
		return hint, nil
	}
	return catchAllHint, nil
}

// ClassifyProblem buckets a problem by keywords in its title and description.
// First match wins, order matters.
func ClassifyProblem(problem problem_service.Problem) string {
	title := strings.ToLower(problem.Title)
	description := strings.ToLower(problem.Description)

	switch {
	case containsAny(title, "array", "subarray", "sum"):
		return "array"
	case containsAny(title, "string", "substring", "palindrome"):
		return "string"
	case containsAny(title, "tree", "binary"):
		return "tree"
	case containsAny(title, "graph", "node", "path"):
		return "graph"
	case containsAny(description, "dynamic", "optimal", "minimum", "maximum"):
		return "dp"
	case containsAny(title, "two", "pointer", "sorted"):
		return "two-pointer"
	default:
		return "general"
	}
}

func containsAny(s string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(s, word) {
			return true
		}
	}
	return false
}

package problem_service

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateDescription(t *testing.T) {
	short := "Given an array of integers."
	if got := truncateDescription(short); got != short {
		t.Errorf("short description changed: %q", got)
	}

	long := strings.Repeat("a", MaxDescriptionLength+200)
	if got := truncateDescription(long); len(got) != MaxDescriptionLength {
		t.Errorf("truncated length = %d, want %d", len(got), MaxDescriptionLength)
	}
}

func TestTruncateDescriptionMultibyte(t *testing.T) {
	long := strings.Repeat("≤", MaxDescriptionLength+200)

	got := truncateDescription(long)
	if !utf8.ValidString(got) {
		t.Fatal("truncated description is not valid utf-8")
	}
	if count := utf8.RuneCountInString(got); count != MaxDescriptionLength {
		t.Errorf("rune count = %d, want %d", count, MaxDescriptionLength)
	}
}

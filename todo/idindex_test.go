package todo

import (
	"errors"
	"testing"
	"time"
)

func indexFromIDs(ids ...string) IDIndex {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	todos := make([]Todo, 0, len(ids))
	for _, id := range ids {
		todos = append(todos, Todo{ID: id, Title: "t", Priority: PriorityMedium, CreatedAt: now})
	}
	return NewIDIndex(todos)
}

func TestIDIndex_Resolve(t *testing.T) {
	index := indexFromIDs("abcd1234", "abxy5678", "zzzz9999")

	got, err := index.Resolve("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abcd1234" {
		t.Errorf("expected abcd1234, got %q", got)
	}

	got, err = index.Resolve("z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "zzzz9999" {
		t.Errorf("expected zzzz9999, got %q", got)
	}
}

func TestIDIndex_Resolve_Ambiguous(t *testing.T) {
	index := indexFromIDs("abcd1234", "abxy5678")

	_, err := index.Resolve("ab")
	if !errors.Is(err, ErrAmbiguousIDPrefix) {
		t.Errorf("expected ErrAmbiguousIDPrefix, got %v", err)
	}
}

func TestIDIndex_Resolve_NotFound(t *testing.T) {
	index := indexFromIDs("abcd1234")

	for _, prefix := range []string{"", "q", "abcd12345"} {
		if _, err := index.Resolve(prefix); !errors.Is(err, ErrTodoNotFound) {
			t.Errorf("Resolve(%q): expected ErrTodoNotFound, got %v", prefix, err)
		}
	}
}

func TestIDIndex_Resolve_CaseInsensitive(t *testing.T) {
	index := indexFromIDs("abcd1234")

	got, err := index.Resolve("ABCD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abcd1234" {
		t.Errorf("expected abcd1234, got %q", got)
	}
}

func TestIDIndex_PrefixLengths(t *testing.T) {
	index := indexFromIDs("abcd1234", "abxy5678", "zzzz9999")

	lengths := index.PrefixLengths()
	if lengths["abcd1234"] != 3 {
		t.Errorf("expected prefix length 3 for abcd1234, got %d", lengths["abcd1234"])
	}
	if lengths["zzzz9999"] != 1 {
		t.Errorf("expected prefix length 1 for zzzz9999, got %d", lengths["zzzz9999"])
	}
}

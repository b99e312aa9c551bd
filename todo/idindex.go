package todo

import (
	"fmt"

	"github.com/tmather/ticklist/internal/ids"
)

// IDIndex indexes todo IDs for prefix matching and display.
//
// Prefix resolution is a convenience for human callers (the CLI); the
// store itself operates on exact IDs only.
type IDIndex struct {
	ids []string
}

// NewIDIndex builds an IDIndex from a slice of todos.
func NewIDIndex(todos []Todo) IDIndex {
	todoIDs := make([]string, 0, len(todos))
	for _, t := range todos {
		todoIDs = append(todoIDs, t.ID)
	}
	return IDIndex{ids: todoIDs}
}

// Resolve returns the full todo ID for a prefix.
func (index IDIndex) Resolve(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrTodoNotFound
	}

	match, found, ambiguous := ids.MatchPrefix(index.ids, prefix)
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousIDPrefix, prefix)
	}
	if !found {
		return "", fmt.Errorf("%w: %s", ErrTodoNotFound, prefix)
	}

	return match, nil
}

// PrefixLengths returns the shortest unique prefix length for each ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengths(index.ids)
}

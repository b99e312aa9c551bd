package main

import (
	"strings"

	"github.com/tmather/ticklist/internal/ui"
	"github.com/tmather/ticklist/todo"
)

// idHighlighterForStore returns a function that highlights the unique
// prefix of a full todo ID.
func idHighlighterForStore(store *todo.Store) func(string) string {
	prefixLengths := store.IDIndex().PrefixLengths()
	return func(id string) string {
		if id == "" {
			return id
		}
		prefixLen, ok := prefixLengths[strings.ToLower(id)]
		if !ok {
			return ui.HighlightID(id, 0)
		}
		return ui.HighlightID(id, prefixLen)
	}
}

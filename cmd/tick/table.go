package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/tmather/ticklist/internal/ui"
	"github.com/tmather/ticklist/todo"
)

// printTodoList prints the filtered todos as a table followed by an
// item count, and a clear hint when completed todos exist.
func printTodoList(store *todo.Store, todos []todo.Todo, now time.Time) {
	if len(todos) == 0 {
		fmt.Println(emptyListMessage(store))
		return
	}

	prefixLengths := store.IDIndex().PrefixLengths()
	fmt.Print(formatTodoTable(todos, prefixLengths, ui.HighlightID, now))

	fmt.Println()
	fmt.Println(ui.FormatItemsLeft(store.ActiveCount()))
	if store.HasCompleted() {
		fmt.Println("run 'tick clear' to remove completed todos")
	}
}

func formatTodoTable(todos []todo.Todo, prefixLengths map[string]int, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "STATUS", "AGE", "TITLE"}, len(todos))

	for _, t := range todos {
		prefixLen := prefixLengths[strings.ToLower(t.ID)]
		row := []string{
			highlight(t.ID, prefixLen),
			priorityShort(t.Priority),
			statusLabel(t.Completed),
			ui.FormatTimeAgeShort(t.CreatedAt, now),
			ui.TruncateTableCell(t.Title),
		}
		builder.AddRow(row)
	}

	return builder.String()
}

func emptyListMessage(store *todo.Store) string {
	if store.Len() == 0 {
		return "No todos found."
	}

	switch store.Filter() {
	case todo.FilterActive:
		return "No active todos."
	case todo.FilterCompleted:
		return "No completed todos."
	default:
		return "No todos found."
	}
}

// priorityShort returns a short representation of priority.
func priorityShort(p todo.Priority) string {
	switch p {
	case todo.PriorityLow:
		return "low"
	case todo.PriorityMedium:
		return "med"
	case todo.PriorityHigh:
		return "high"
	default:
		return string(p)
	}
}

func statusLabel(completed bool) string {
	if completed {
		return "done"
	}
	return "open"
}

package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/tmather/ticklist/internal/ui"
	"github.com/tmather/ticklist/todo"
)

type todoItem struct {
	todo todo.Todo
	now  time.Time
}

func (item todoItem) FilterValue() string {
	return item.todo.Title
}

type todoItemDelegate struct{}

func newTodoItemDelegate() todoItemDelegate {
	return todoItemDelegate{}
}

func (d todoItemDelegate) Height() int                             { return 1 }
func (d todoItemDelegate) Spacing() int                            { return 0 }
func (d todoItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d todoItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(todoItem)
	if !ok {
		return
	}

	line := formatTodoItem(item, m.Width())
	style := itemStyle
	if index == m.Index() {
		style = itemSelectedStyle
	} else if item.todo.Completed {
		style = itemDoneStyle
	}
	fmt.Fprint(w, style.Render(line))
}

func formatTodoItem(item todoItem, width int) string {
	marker := "[ ]"
	if item.todo.Completed {
		marker = "[x]"
	}

	title := strings.TrimSpace(item.todo.Title)
	if title == "" {
		title = "(untitled)"
	}

	age := ui.FormatTimeAgeShort(item.todo.CreatedAt, item.now)
	meta := fmt.Sprintf("%s/%s", priorityMarker(item.todo.Priority), age)
	line := fmt.Sprintf("%s %s  [%s]", marker, title, meta)
	return truncateText(line, width)
}

func priorityMarker(p todo.Priority) string {
	switch p {
	case todo.PriorityHigh:
		return "high"
	case todo.PriorityLow:
		return "low"
	default:
		return "med"
	}
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}

// Package tui implements the interactive full-screen todo list UI.
//
// The UI owns a todo.Store and drives every mutation through it
// synchronously: each keypress that changes state runs the store
// operation to completion and rebuilds the visible list before the
// next frame renders. Persistence failures surface on the status line
// but never abort the session.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	internalstrings "github.com/tmather/ticklist/internal/strings"
	"github.com/tmather/ticklist/internal/ui"
	"github.com/tmather/ticklist/todo"
)

const maxTitleInputLength = 500

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAdd
	modeEdit
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type model struct {
	store       *todo.Store
	list        list.Model
	input       textinput.Model
	mode        inputMode
	editID      string
	width       int
	height      int
	status      string
	statusLevel statusLevel
	now         func() time.Time
}

// Run starts the UI over the given store and blocks until quit.
func Run(store *todo.Store) error {
	if store == nil {
		return fmt.Errorf("todo store is required")
	}
	program := tea.NewProgram(newModel(store), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func newModel(store *todo.Store) model {
	todoList := list.New(nil, newTodoItemDelegate(), 0, 0)
	todoList.SetShowTitle(false)
	todoList.SetShowStatusBar(false)
	todoList.SetFilteringEnabled(false)
	todoList.SetShowHelp(false)
	todoList.SetShowPagination(false)

	input := textinput.New()
	input.Prompt = "> "
	input.PromptStyle = promptStyle
	input.CharLimit = maxTitleInputLength

	m := model{
		store: store,
		list:  todoList,
		input: input,
		mode:  modeBrowse,
		now:   time.Now,
	}
	m.reloadItems("")
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.handleBrowseKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "a":
		return m.startAdd(), nil
	case "enter", " ":
		return m.toggleSelected(), nil
	case "e":
		return m.startEdit(), nil
	case "d":
		return m.deleteSelected(), nil
	case "p":
		return m.cycleSelectedPriority(), nil
	case "f":
		return m.cycleFilter(), nil
	case "c":
		return m.clearCompleted(), nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.cancelInput(), nil
	case "enter":
		return m.commitInput(), nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) startAdd() model {
	m.mode = modeAdd
	m.input.SetValue("")
	m.input.Focus()
	m.setStatus("", statusNone)
	return m
}

func (m model) startEdit() model {
	item, ok := m.selectedTodo()
	if !ok {
		return m
	}
	m.mode = modeEdit
	m.editID = item.ID
	m.input.SetValue(item.Title)
	m.input.CursorEnd()
	m.input.Focus()
	m.setStatus("", statusNone)
	return m
}

func (m model) cancelInput() model {
	m.mode = modeBrowse
	m.editID = ""
	m.input.Blur()
	m.input.SetValue("")
	return m
}

func (m model) commitInput() model {
	value := m.input.Value()
	mode := m.mode
	editID := m.editID
	m = m.cancelInput()

	switch mode {
	case modeAdd:
		created, err := m.store.Add(value, todo.AddOptions{})
		if err != nil {
			m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
		} else if created != nil {
			m.setStatus(fmt.Sprintf("Added %s", created.Title), statusInfo)
		}
		selectID := ""
		if created != nil {
			selectID = created.ID
		}
		m.reloadItems(selectID)
	case modeEdit:
		changed, err := m.store.Edit(editID, value)
		if err != nil {
			m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
		} else if changed {
			if _, ok := m.store.Get(editID); ok {
				m.setStatus("Updated", statusInfo)
			} else {
				m.setStatus("Deleted", statusInfo)
			}
		}
		m.reloadItems(editID)
	}
	return m
}

func (m model) toggleSelected() model {
	item, ok := m.selectedTodo()
	if !ok {
		return m
	}
	if _, err := m.store.Toggle(item.ID); err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
	}
	m.reloadItems(item.ID)
	return m
}

func (m model) deleteSelected() model {
	item, ok := m.selectedTodo()
	if !ok {
		return m
	}
	if _, err := m.store.Delete(item.ID); err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
	} else {
		m.setStatus(fmt.Sprintf("Deleted %s", item.Title), statusInfo)
	}
	m.reloadItems("")
	return m
}

func (m model) cycleSelectedPriority() model {
	item, ok := m.selectedTodo()
	if !ok {
		return m
	}
	if _, err := m.store.CyclePriority(item.ID); err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
	}
	m.reloadItems(item.ID)
	return m
}

func (m model) cycleFilter() model {
	next := nextFilter(m.store.Filter())
	if err := m.store.SetFilter(next); err != nil {
		m.setStatus(fmt.Sprintf("Filter failed: %v", err), statusError)
		return m
	}
	m.setStatus(fmt.Sprintf("Filter: %s", next), statusInfo)
	m.reloadItems("")
	return m
}

func nextFilter(current todo.Filter) todo.Filter {
	switch current {
	case todo.FilterAll:
		return todo.FilterActive
	case todo.FilterActive:
		return todo.FilterCompleted
	default:
		return todo.FilterAll
	}
}

func (m model) clearCompleted() model {
	changed, err := m.store.ClearCompleted()
	if err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
	} else if changed {
		m.setStatus("Cleared completed todos", statusInfo)
	} else {
		m.setStatus("No completed todos", statusInfo)
	}
	m.reloadItems("")
	return m
}

func (m model) selectedTodo() (todo.Todo, bool) {
	item := m.list.SelectedItem()
	if item == nil {
		return todo.Todo{}, false
	}
	current, ok := item.(todoItem)
	if !ok {
		return todo.Todo{}, false
	}
	return current.todo, true
}

// reloadItems rebuilds the list from the store's filtered view,
// keeping the selection on selectID when it is still visible.
func (m *model) reloadItems(selectID string) {
	now := m.now()
	todos := m.store.Filtered()
	items := make([]list.Item, 0, len(todos))
	selectIndex := -1
	for i, t := range todos {
		items = append(items, todoItem{todo: t, now: now})
		if selectID != "" && t.ID == selectID {
			selectIndex = i
		}
	}
	previous := m.list.Index()
	m.list.SetItems(items)
	if selectIndex >= 0 {
		m.list.Select(selectIndex)
		return
	}
	if previous >= len(items) {
		previous = len(items) - 1
	}
	if previous >= 0 {
		m.list.Select(previous)
	}
}

func (m *model) resize() {
	listHeight := m.height - 4
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.SetSize(m.width, listHeight)
	inputWidth := m.width - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	sections := []string{
		m.renderTitleBar(),
		m.list.View(),
		m.renderFooter(),
		m.renderBottomLine(),
	}
	return strings.Join(sections, "\n")
}

func (m model) renderTitleBar() string {
	title := titleBarStyle.Render("ticklist")
	filter := filterStyle.Render(fmt.Sprintf("filter: %s", m.store.Filter()))
	content := lipgloss.JoinHorizontal(lipgloss.Top, title, filter)
	spacerWidth := m.width - lipgloss.Width(content)
	if spacerWidth < 0 {
		spacerWidth = 0
	}
	return content + strings.Repeat(" ", spacerWidth)
}

func (m model) renderFooter() string {
	left := footerCountStyle.Render(ui.FormatItemsLeft(m.store.ActiveCount()))
	if !m.store.HasCompleted() {
		return left
	}
	hint := footerClearHintKey.Render("c clear completed")
	return left + "  " + hint
}

func (m model) renderBottomLine() string {
	if m.mode != modeBrowse {
		return m.input.View()
	}
	if !internalstrings.IsBlank(m.status) {
		style := statusInfoStyle
		if m.statusLevel == statusError {
			style = statusErrorStyle
		}
		return style.Render(m.status)
	}
	return helpBarStyle.Render(m.helpSummary())
}

func (m model) helpSummary() string {
	return "a add | enter/space toggle | e edit | d delete | p priority | f filter | c clear | q quit"
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

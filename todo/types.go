// Package todo implements the ticklist todo engine.
//
// The Store owns an ordered in-memory collection of todos and the
// active view filter. All mutations funnel through it; each successful
// mutation is written through the persistence codec before the call
// returns, and reports whether anything changed so a host UI knows to
// re-render. Queries are pure and never touch storage.
//
// The public API mirrors the CLI commands:
//   - Add, Toggle, Edit, Delete, CyclePriority, ClearCompleted for mutation
//   - SetFilter for selecting the view
//   - Filtered, ActiveCount, HasCompleted for querying
package todo

// Priority represents the importance level of a todo.
type Priority string

const (
	// PriorityLow is the least important level.
	PriorityLow Priority = "low"

	// PriorityMedium is the default level.
	PriorityMedium Priority = "medium"

	// PriorityHigh is the most important level.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values in cycle order.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Next returns the priority that follows p in the fixed cycle
// low -> medium -> high -> low.
func (p Priority) Next() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	case PriorityHigh:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Filter selects which todos appear in the derived view.
type Filter string

const (
	// FilterAll shows every todo.
	FilterAll Filter = "all"

	// FilterActive shows todos that are not completed.
	FilterActive Filter = "active"

	// FilterCompleted shows completed todos.
	FilterCompleted Filter = "completed"
)

// ValidFilters returns all valid filter values.
func ValidFilters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// IsValid returns true if the filter is a known valid value.
func (f Filter) IsValid() bool {
	for _, valid := range ValidFilters() {
		if f == valid {
			return true
		}
	}
	return false
}

// Matches reports whether a todo with the given completion state is
// visible under the filter.
func (f Filter) Matches(completed bool) bool {
	switch f {
	case FilterActive:
		return !completed
	case FilterCompleted:
		return completed
	default:
		return true
	}
}

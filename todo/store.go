package todo

import (
	"fmt"
	"time"
)

// Store is the single authority over the todo collection and the
// active view filter. All mutation and query operations funnel
// through it.
//
// The collection is loaded once when the store is opened and written
// through the codec after every successful mutation, before the
// mutating call returns. A failed write is returned to the caller as
// an error, but the in-memory mutation stays applied so the UI remains
// usable.
//
// A Store is not safe for concurrent use. It is designed for a
// single-threaded, event-driven host: every operation runs
// synchronously to completion on the caller's goroutine.
type Store struct {
	codec           Codec
	todos           []Todo
	filter          Filter
	defaultPriority Priority
	now             func() time.Time
}

// Options configures how the store is opened.
type Options struct {
	// DefaultFilter is the initially active filter. Defaults to FilterAll.
	DefaultFilter Filter

	// DefaultPriority is assigned to new todos when Add is not given an
	// explicit priority. Defaults to PriorityMedium.
	DefaultPriority Priority

	// Now overrides the clock. Used by tests; defaults to time.Now.
	Now func() time.Time
}

// Open loads the persisted collection through codec and returns a
// store over it. A load failure is not fatal: the store starts from an
// empty collection rather than propagating the error, so a missing or
// unreadable data file never breaks the UI.
func Open(codec Codec, opts Options) (*Store, error) {
	if codec == nil {
		return nil, ErrNilCodec
	}

	filter := opts.DefaultFilter
	if filter == "" {
		filter = FilterAll
	}
	if err := ValidateFilter(filter); err != nil {
		return nil, err
	}

	defaultPriority := opts.DefaultPriority
	if defaultPriority == "" {
		defaultPriority = PriorityMedium
	}
	if err := ValidatePriority(defaultPriority); err != nil {
		return nil, err
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	store := &Store{
		codec:           codec,
		filter:          filter,
		defaultPriority: defaultPriority,
		now:             now,
	}

	todos, err := codec.Load()
	if err == nil {
		todos, err = sanitizeLoaded(todos, defaultPriority)
	}
	if err == nil {
		store.todos = todos
	}

	return store, nil
}

// sanitizeLoaded checks a loaded collection against the store
// invariants. Records persisted by the earlier variant carry no
// priority; those default rather than fail.
func sanitizeLoaded(todos []Todo, defaultPriority Priority) ([]Todo, error) {
	seen := make(map[string]struct{}, len(todos))
	for i := range todos {
		if todos[i].Priority == "" {
			todos[i].Priority = defaultPriority
		}
		if err := ValidateTodo(&todos[i]); err != nil {
			return nil, err
		}
		if _, ok := seen[todos[i].ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, todos[i].ID)
		}
		seen[todos[i].ID] = struct{}{}
	}
	return todos, nil
}

// AddOptions configures a new todo.
type AddOptions struct {
	// Priority overrides the store's default priority when non-empty.
	Priority Priority
}

// Add creates a new todo with the given title and prepends it to the
// collection, so the newest todo is always first. A title that trims
// to empty is a silent no-op returning (nil, nil), not an error.
func (s *Store) Add(title string, opts AddOptions) (*Todo, error) {
	title = normalizeTitle(title)
	if title == "" {
		return nil, nil
	}

	priority := opts.Priority
	if priority == "" {
		priority = s.defaultPriority
	}
	normalized, err := normalizePriorityInput(priority)
	if err != nil {
		return nil, err
	}

	now := s.now()
	created := Todo{
		ID:        GenerateID(title, now),
		Title:     title,
		Completed: false,
		Priority:  normalized,
		CreatedAt: now,
	}

	s.todos = append([]Todo{created}, s.todos...)

	if err := s.persist(); err != nil {
		return &created, err
	}
	return &created, nil
}

// Toggle flips the completed flag of the todo with the given ID.
// A missing ID is a no-op, not an error. Returns true when a todo
// changed.
func (s *Store) Toggle(id string) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.todos[i].Completed = !s.todos[i].Completed
	return true, s.persist()
}

// Delete removes the todo with the given ID. A missing ID is a no-op.
func (s *Store) Delete(id string) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)
	return true, s.persist()
}

// Edit replaces the title of the todo with the given ID. A new title
// that trims to empty deletes the todo instead; this is the documented
// fallback for an empty edit commit, not an error. A missing ID is a
// no-op.
func (s *Store) Edit(id, newTitle string) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	newTitle = normalizeTitle(newTitle)
	if newTitle == "" {
		s.todos = append(s.todos[:i], s.todos[i+1:]...)
		return true, s.persist()
	}

	if s.todos[i].Title == newTitle {
		return false, nil
	}
	s.todos[i].Title = newTitle
	return true, s.persist()
}

// CyclePriority advances the priority of the todo with the given ID
// through the fixed cycle low -> medium -> high -> low. A missing ID
// is a no-op.
func (s *Store) CyclePriority(id string) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.todos[i].Priority = s.todos[i].Priority.Next()
	return true, s.persist()
}

// ClearCompleted removes every completed todo. Returns true when at
// least one todo was removed.
func (s *Store) ClearCompleted() (bool, error) {
	remaining := s.todos[:0]
	for _, t := range s.todos {
		if !t.Completed {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == len(s.todos) {
		return false, nil
	}
	s.todos = remaining
	return true, s.persist()
}

// SetFilter selects the active view filter. The filter affects only
// the derived view and is never persisted.
func (s *Store) SetFilter(filter Filter) error {
	normalized, err := NormalizeFilter(filter)
	if err != nil {
		return err
	}
	s.filter = normalized
	return nil
}

// Filter returns the active view filter.
func (s *Store) Filter() Filter {
	return s.filter
}

// Filtered returns the todos visible under the active filter, in
// collection order (newest first). The returned slice is a copy the
// caller may hold across later mutations.
func (s *Store) Filtered() []Todo {
	var view []Todo
	for _, t := range s.todos {
		if s.filter.Matches(t.Completed) {
			view = append(view, t)
		}
	}
	return view
}

// All returns every todo in collection order, regardless of filter.
func (s *Store) All() []Todo {
	return append([]Todo(nil), s.todos...)
}

// Len returns the total number of todos.
func (s *Store) Len() int {
	return len(s.todos)
}

// ActiveCount returns the number of todos that are not completed.
func (s *Store) ActiveCount() int {
	count := 0
	for _, t := range s.todos {
		if !t.Completed {
			count++
		}
	}
	return count
}

// HasCompleted returns true if any todo is completed.
func (s *Store) HasCompleted() bool {
	for _, t := range s.todos {
		if t.Completed {
			return true
		}
	}
	return false
}

// Get returns the todo with the given ID, if present.
func (s *Store) Get(id string) (*Todo, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	t := s.todos[i]
	return &t, true
}

// IDIndex returns an index of all todo IDs for prefix resolution.
func (s *Store) IDIndex() IDIndex {
	return NewIDIndex(s.todos)
}

func (s *Store) indexOf(id string) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist() error {
	if err := s.codec.Save(s.todos); err != nil {
		return fmt.Errorf("save todos: %w", err)
	}
	return nil
}

package todo

import (
	"errors"
	"testing"
	"time"
)

// memCodec is an in-memory Codec for store tests.
type memCodec struct {
	todos   []Todo
	loadErr error
	saveErr error
	saves   int
}

func (c *memCodec) Load() ([]Todo, error) {
	if c.loadErr != nil {
		return nil, c.loadErr
	}
	return append([]Todo(nil), c.todos...), nil
}

func (c *memCodec) Save(todos []Todo) error {
	c.saves++
	if c.saveErr != nil {
		return c.saveErr
	}
	c.todos = append([]Todo(nil), todos...)
	return nil
}

var errSaveFailed = errors.New("save failed")

// testClock returns a clock that advances 1ms per call, so repeated
// adds of the same title still get distinct IDs.
func testClock() func() time.Time {
	current := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Millisecond)
		return current
	}
}

func openTestStore(t *testing.T) (*Store, *memCodec) {
	t.Helper()

	codec := &memCodec{}
	store, err := Open(codec, Options{Now: testClock()})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return store, codec
}

func mustAdd(t *testing.T, store *Store, title string) Todo {
	t.Helper()

	created, err := store.Add(title, AddOptions{})
	if err != nil {
		t.Fatalf("failed to add %q: %v", title, err)
	}
	if created == nil {
		t.Fatalf("expected todo for %q, got nil", title)
	}
	return *created
}

// Package storage persists the todo collection to a JSONL file.
//
// The whole collection lives in a single file, one JSON object per
// line. Saves overwrite the file entirely through an atomic
// temp-file-and-rename, and both reads and writes run under an
// exclusive flock so concurrent tick processes cannot interleave.
package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/tmather/ticklist/internal/logging"
	"github.com/tmather/ticklist/todo"
)

const maxJSONLineBytes = 1024 * 1024

// FileStore implements todo.Codec over a JSONL file.
type FileStore struct {
	path   string
	logger *log.Logger
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithLogger sets the logger used for load warnings.
func WithLogger(logger *log.Logger) Option {
	return func(s *FileStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFileStore returns a FileStore persisting to the file at path.
func NewFileStore(path string, opts ...Option) *FileStore {
	store := &FileStore{
		path:   path,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Path returns the data file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored collection. An absent file is an empty
// collection. A structurally malformed file is also treated as empty
// rather than propagated: stale or corrupt data must never break the
// UI. The corruption is logged so it isn't silent.
func (s *FileStore) Load() ([]todo.Todo, error) {
	var todos []todo.Todo
	err := s.withFileLock(func() error {
		var err error
		todos, err = readTodoFile(s.path)
		return err
	})
	if err != nil {
		var parseErr *parseError
		if errors.As(err, &parseErr) {
			s.logger.Warn("ignoring malformed todo data", "path", s.path, "err", parseErr)
			return nil, nil
		}
		return nil, err
	}
	return todos, nil
}

// Save writes the entire collection, overwriting any prior value.
func (s *FileStore) Save(todos []todo.Todo) error {
	return s.withFileLock(func() error {
		return writeTodoFile(s.path, todos)
	})
}

// parseError marks data that was present but not decodable.
type parseError struct {
	line int
	err  error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse line %d: %v", e.line, e.err)
}

func (e *parseError) Unwrap() error { return e.err }

func readTodoFile(path string) ([]todo.Todo, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	var todos []todo.Todo
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxJSONLineBytes)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var item todo.Todo
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, &parseError{line: lineNum, err: err}
		}
		todos = append(todos, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan data file: %w", err)
	}

	return todos, nil
}

func writeTodoFile(path string, todos []todo.Todo) error {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	encoder := json.NewEncoder(f)
	for i, item := range todos {
		if err := encoder.Encode(item); err != nil {
			f.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("encode todo %d: %w", i, err)
		}
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// withFileLock executes fn while holding an exclusive lock on the
// data file's lock file. Creates parent directories as needed.
func (s *FileStore) withFileLock(fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	lockPath := s.path + ".lock"
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer f.Close()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN)

	return fn()
}

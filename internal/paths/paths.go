package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataFileName is the name of the JSONL file containing todos.
const DataFileName = "todos.jsonl"

// DefaultStateDir returns the default ticklist state directory.
func DefaultStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "state", "ticklist"), nil
}

// DefaultDataFile returns the default path of the todos data file.
func DefaultDataFile() (string, error) {
	dir, err := DefaultStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DataFileName), nil
}

// GlobalConfigFile returns the path of the global config file.
func GlobalConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ticklist", "config.toml"), nil
}

package main

import (
	"fmt"
	"os"

	"github.com/tmather/ticklist/internal/config"
	"github.com/tmather/ticklist/internal/logging"
	"github.com/tmather/ticklist/internal/paths"
	"github.com/tmather/ticklist/storage"
	"github.com/tmather/ticklist/todo"
)

// openStore loads config, resolves the data file and opens the todo
// store over it. The --file flag wins over config, which wins over the
// default state-dir location.
func openStore() (*todo.Store, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	dataFile, err := resolveDataFile(cfg)
	if err != nil {
		return nil, err
	}

	opts := todo.Options{}
	if cfg.List.DefaultFilter != "" {
		opts.DefaultFilter = todo.Filter(cfg.List.DefaultFilter)
	}
	if cfg.List.DefaultPriority != "" {
		opts.DefaultPriority = todo.Priority(cfg.List.DefaultPriority)
	}

	logger := logging.New(os.Stderr, rootVerbose)
	codec := storage.NewFileStore(dataFile, storage.WithLogger(logger))
	logger.Debug("opening todo store", "path", dataFile)

	return todo.Open(codec, opts)
}

func resolveDataFile(cfg *config.Config) (string, error) {
	if rootDataFile != "" {
		return rootDataFile, nil
	}
	if cfg.List.DataFile != "" {
		return cfg.List.DataFile, nil
	}
	return paths.DefaultDataFile()
}

// resolveTodoIDs expands unique ID prefixes from args to full IDs.
func resolveTodoIDs(store *todo.Store, args []string) ([]string, error) {
	index := store.IDIndex()
	resolved := make([]string, 0, len(args))
	for _, arg := range args {
		id, err := index.Resolve(arg)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, id)
	}
	return resolved, nil
}

// Package config handles loading ticklist.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tmather/ticklist/internal/paths"
)

// Config represents the ticklist.toml configuration file.
type Config struct {
	List List `toml:"list"`
}

// List contains list-related configuration.
type List struct {
	// DataFile overrides the default todos data file location.
	DataFile string `toml:"data-file"`

	// DefaultFilter is the view filter used when none is given
	// (all, active, completed).
	DefaultFilter string `toml:"default-filter"`

	// DefaultPriority is assigned to new todos when no priority flag
	// is given (low, medium, high).
	DefaultPriority string `toml:"default-priority"`
}

// Load loads configuration from the working directory and the global
// config file. A ticklist.toml in dir overrides the global values.
// Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigFile()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	localCfg, localMeta, err := loadConfigFile(filepath.Join(dir, "ticklist.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, localCfg, globalMeta, localMeta), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, localCfg *Config, globalMeta, localMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if localCfg == nil {
		localCfg = &Config{}
	}

	merged := Config{}
	merged.List.DataFile = mergeString(localMeta.IsDefined("list", "data-file"), localCfg.List.DataFile, globalCfg.List.DataFile)
	merged.List.DefaultFilter = mergeString(localMeta.IsDefined("list", "default-filter"), localCfg.List.DefaultFilter, globalCfg.List.DefaultFilter)
	merged.List.DefaultPriority = mergeString(localMeta.IsDefined("list", "default-priority"), localCfg.List.DefaultPriority, globalCfg.List.DefaultPriority)

	return &merged
}

func mergeString(localDefined bool, localValue, globalValue string) string {
	value := globalValue
	if localDefined {
		value = localValue
	}
	return strings.TrimSpace(value)
}

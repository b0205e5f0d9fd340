// Package config handles loading td.toml configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/td/internal/paths"
)

// ProjectFileName is the name of the per-directory config file.
const ProjectFileName = "td.toml"

// Config represents the td configuration file.
type Config struct {
	User  User  `toml:"user"`
	Store Store `toml:"store"`
	View  View  `toml:"view"`
	Log   Log   `toml:"log"`
}

// User contains settings about the person using td.
type User struct {
	// Name is shown in the welcome banner. Defaults to "user".
	Name string `toml:"name"`
}

// Store contains storage settings.
type Store struct {
	// Dir is where the todo list is kept. A leading "~" is expanded.
	Dir string `toml:"dir"`
}

// View contains display settings.
type View struct {
	// Sort is the default sort mode for list and tui.
	Sort string `toml:"sort"`
}

// Log contains logging settings.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Load reads the global config file and the project file in dir, with
// project values overriding global ones key by key. If globalPath is empty
// the default location is used. Missing files are not an error.
func Load(globalPath, dir string) (*Config, error) {
	if globalPath == "" {
		defaultPath, err := paths.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		globalPath = defaultPath
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, ProjectFileName))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if merged.Store.Dir != "" {
		expanded, err := paths.ExpandHome(merged.Store.Dir)
		if err != nil {
			return nil, err
		}
		merged.Store.Dir = expanded
	}
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
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
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown key %s", path, undecoded[0])
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.User.Name = mergeString(projectMeta.IsDefined("user", "name"), projectCfg.User.Name, globalCfg.User.Name)
	merged.Store.Dir = mergeString(projectMeta.IsDefined("store", "dir"), projectCfg.Store.Dir, globalCfg.Store.Dir)
	merged.View.Sort = mergeString(projectMeta.IsDefined("view", "sort"), projectCfg.View.Sort, globalCfg.View.Sort)
	merged.Log.Level = mergeString(projectMeta.IsDefined("log", "level"), projectCfg.Log.Level, globalCfg.Log.Level)

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

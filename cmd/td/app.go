package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/amonks/td/internal/config"
	"github.com/amonks/td/internal/kv"
	"github.com/amonks/td/internal/listflags"
	"github.com/amonks/td/internal/logging"
	"github.com/amonks/td/internal/paths"
	"github.com/amonks/td/todo"
)

// app is what every command needs once flags and config are resolved.
type app struct {
	cfg       *config.Config
	logger    *log.Logger
	stateDir  string
	ephemeral bool
	now       func() time.Time
	release   func() error
}

var current *app

func setupApp(cmd *cobra.Command, _ []string) error {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(rootConfigPath, cwd)
	if err != nil {
		return err
	}

	levelName := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		levelName = rootLogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	opts := logging.DefaultOptions()
	opts.Level = level
	logger := logging.New(cmd.ErrOrStderr(), opts)

	stateDir, err := paths.ResolveWithDefault(rootStateDir, func() (string, error) {
		return paths.ResolveWithDefault(cfg.Store.Dir, paths.DefaultStateDir)
	})
	if err != nil {
		return err
	}
	stateDir, err = paths.ExpandHome(stateDir)
	if err != nil {
		return err
	}

	current = &app{
		cfg:       cfg,
		logger:    logger,
		stateDir:  stateDir,
		ephemeral: rootEphemeral,
		now:       time.Now,
	}
	logger.Debug("configured", "state_dir", stateDir, "ephemeral", rootEphemeral)
	return nil
}

// openStore returns the loaded todo store, keeping the todo file locked
// until the command finishes so the whole load, change and save is atomic.
func (a *app) openStore() (*todo.Store, error) {
	return a.loadStore(true)
}

// openSharedStore returns the loaded todo store without holding the lock.
// Each read and write still locks on its own.
func (a *app) openSharedStore() (*todo.Store, error) {
	return a.loadStore(false)
}

func (a *app) loadStore(hold bool) (*todo.Store, error) {
	var backing kv.Store
	if a.ephemeral {
		backing = kv.NewMemoryStore()
	} else {
		files := kv.NewFileStore(a.stateDir)
		if hold {
			release, err := files.Hold(todo.DefaultStorageKey)
			if err != nil {
				return nil, err
			}
			a.release = release
		}
		backing = files
	}

	persister := todo.NewKVPersister(backing, todo.KVPersisterOptions{Logger: a.logger})
	store, result, err := todo.Open(persister, todo.StoreOptions{Logger: a.logger})
	if err != nil {
		return nil, err
	}

	switch result.Source {
	case todo.LoadSourceSeedFirstRun:
		// Write the examples out so their IDs stay stable between commands.
		a.logger.Info("no saved todos, starting with examples", "key", persister.Key())
		if !a.ephemeral {
			if err := persister.Save(store.Todos()); err != nil {
				return nil, fmt.Errorf("save example todos: %w", err)
			}
		}
	case todo.LoadSourceSeedCorrupt:
		a.logger.Debug("using example todos until the next save", "err", result.Err)
	default:
		a.logger.Debug("loaded todos", "count", store.Len())
	}
	return store, nil
}

// close releases the todo file lock, if one is held.
func (a *app) close() {
	if a == nil || a.release == nil {
		return
	}
	if err := a.release(); err != nil {
		a.logger.Warn("release todo lock", "err", err)
	}
	a.release = nil
}

// checkSaved turns a failed save into a command error.
func checkSaved(store *todo.Store) error {
	if err := store.SaveErr(); err != nil {
		return fmt.Errorf("save todos: %w", err)
	}
	return nil
}

// resolveIDs maps each argument, a full ID or unique prefix, to a full ID.
// A todo named more than once is returned once, at its first position.
func resolveIDs(store *todo.Store, args []string) ([]string, error) {
	resolved := make([]string, 0, len(args))
	seen := make(map[string]bool, len(args))
	for _, arg := range args {
		id, err := store.Resolve(arg)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		resolved = append(resolved, id)
	}
	return resolved, nil
}

func (a *app) sortMode(flagValue string) (todo.SortMode, error) {
	return listflags.ResolveSort(flagValue, a.cfg.View.Sort)
}

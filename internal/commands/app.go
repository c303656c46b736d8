package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/tracker/internal/core/config"
	"github.com/colonyops/tracker/internal/stores"
	"github.com/colonyops/tracker/internal/taskjson"
)

// App wires the task store and matrix for the command layer. Each CLI
// invocation is a fresh process: the task file is read once up front and
// mutating commands write it back through Flush.
type App struct {
	Config *config.Config
	Store  *stores.TaskStore
	Matrix *stores.Matrix

	log zerolog.Logger
}

// NewApp creates an App around an empty store. Configure must be called
// before any command runs; main does this in the Before hook once the
// config file is loaded.
func NewApp() *App {
	return &App{
		Store:  stores.NewTaskStore(),
		Matrix: stores.NewMatrix(),
		log:    log.With().Str("component", "commands").Logger(),
	}
}

// Configure attaches the loaded configuration.
func (a *App) Configure(cfg *config.Config) {
	a.Config = cfg
}

// LoadTasks populates the store from the configured task file. A missing
// file is not an error; the store simply starts empty.
func (a *App) LoadTasks() error {
	err := a.Store.LoadFile(a.Config.TaskFile)
	switch {
	case err == nil:
		a.log.Debug().Str("path", a.Config.TaskFile).Int("tasks", a.Store.Len()).Msg("loaded task file")
		return nil
	case errors.Is(err, taskjson.ErrFileNotFound):
		a.log.Debug().Str("path", a.Config.TaskFile).Msg("no task file, starting empty")
		return nil
	default:
		return err
	}
}

// SaveTasks writes the store to the configured task file, creating the
// data directory on first use.
func (a *App) SaveTasks() error {
	if err := os.MkdirAll(filepath.Dir(a.Config.TaskFile), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := a.Store.SaveFile(a.Config.TaskFile); err != nil {
		return err
	}
	a.log.Debug().Str("path", a.Config.TaskFile).Int("tasks", a.Store.Len()).Msg("saved task file")
	return nil
}

// Flush persists the store after a mutation when auto-save is enabled.
func (a *App) Flush() error {
	if !a.Config.SaveAfterMutation() {
		return nil
	}
	return a.SaveTasks()
}

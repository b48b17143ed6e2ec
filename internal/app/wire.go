package app

import (
	"time"

	"go.uber.org/zap"

	"crashkit/internal/logging"
	reportsvc "crashkit/internal/services/report"
	sessionsvc "crashkit/internal/services/session"
	"crashkit/internal/store"
	"crashkit/internal/watch"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Log      *zap.Logger
	Store    *store.FileStore
	Sessions *sessionsvc.Service
	Reports  *reportsvc.Service

	watchDebounce time.Duration
}

// NewWire constructs the dependency graph from cfg. A store that cannot
// create its directories is fatal and surfaces here.
func NewWire(cfg Config) (*Wire, error) {
	log, err := logging.New(cfg.Verbose)
	if err != nil {
		return nil, err
	}

	st, err := store.New(cfg.BaseDir, log)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Log:      log,
		Store:    st,
		Sessions: sessionsvc.New(st, log),
		Reports:  reportsvc.New(st, log),

		watchDebounce: cfg.WatchDebounce,
	}, nil
}

// NewWatcher builds a report-arrival watcher over the wired store.
func (w *Wire) NewWatcher() (*watch.Watcher, error) {
	return watch.New(w.Store, w.watchDebounce, w.Log)
}

// Close flushes the logger.
func (w *Wire) Close() {
	if w.Log != nil {
		_ = w.Log.Sync()
	}
}

package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"crashkit/internal/crypto"
	"crashkit/internal/domain"
)

// Watcher reports the arrival of prepared report files.
//
// One goroutine translates filesystem events on the prepared-reports
// directory into domain.Report values on Reports(). Arrivals while the
// channel is full are dropped with a debug log; the queue on disk is the
// source of truth, so a listener can always re-list.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	store    domain.Store
	log      *zap.Logger
	reports  chan domain.Report
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	debounce time.Duration
	lastSeen map[string]time.Time // touched only by the event loop
}

// New creates a Watcher over the store's prepared-reports directory.
// Events for the same path within the debounce window are suppressed;
// zero disables debouncing.
func New(st domain.Store, debounce time.Duration, log *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		fsw:      fsw,
		store:    st,
		log:      log,
		reports:  make(chan domain.Report, 16),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		debounce: debounce,
		lastSeen: make(map[string]time.Time),
	}, nil
}

// Reports delivers newly prepared reports. Closed when the watcher stops.
func (w *Watcher) Reports() <-chan domain.Report { return w.reports }

// Start begins watching. Non-blocking; the event loop runs in a goroutine
// until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Store construction guarantees the prepared-reports directory exists.
	dir := w.store.ReportsDir()
	if err := w.fsw.Add(dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	w.log.Debug("watching prepared reports", zap.String("dir", dir))

	go w.run(ctx)
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.fsw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer close(w.reports)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if w.debounced(event.Name) {
				continue
			}
			rep, ok := w.describe(event.Name)
			if !ok {
				continue
			}
			select {
			case w.reports <- rep:
			default:
				w.log.Debug("report channel full, dropping arrival",
					zap.String("path", event.Name))
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Debug("watch error", zap.Error(err))
		}
	}
}

// debounced reports whether an event for path falls inside the suppression
// window, recording the arrival time otherwise.
func (w *Watcher) debounced(path string) bool {
	if w.debounce <= 0 {
		return false
	}
	now := time.Now()
	if last, ok := w.lastSeen[path]; ok && now.Sub(last) < w.debounce {
		return true
	}
	w.lastSeen[path] = now
	return false
}

// describe stats an arrived path into a Report. Temp files from atomic
// writes and paths that vanished again are ignored.
func (w *Watcher) describe(path string) (domain.Report, bool) {
	if strings.Contains(filepath.Base(path), ".tmp-") {
		return domain.Report{}, false
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return domain.Report{}, false
	}
	id, kind := domain.SplitReportName(filepath.Base(path))
	rep := domain.Report{
		SessionID: id,
		Kind:      kind,
		Path:      path,
		Size:      info.Size(),
		ModTime:   info.ModTime(),
	}
	if fp, err := crypto.FingerprintFile(path); err == nil {
		rep.Fingerprint = fp
	}
	return rep, true
}

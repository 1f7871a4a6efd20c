// Package watch monitors the viewed file so the document can be reloaded
// when it changes on disk.
package watch

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the bursts of events editors emit on save.
const DefaultDebounce = 250 * time.Millisecond

// ErrAlreadyStarted is returned by Start after a successful Start.
var ErrAlreadyStarted = errors.New("watch: already started")

// Watcher reports changes to a single file. The parent directory is
// watched rather than the file itself so atomic save (write temp file,
// rename over the original) keeps being picked up.
type Watcher struct {
	path     string
	dir      string
	debounce time.Duration

	fsw     *fsnotify.Watcher
	events  chan struct{}
	done    chan struct{}
	started bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the debounce duration.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// New creates a watcher for path. Call Start to begin delivery.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		dir:      filepath.Dir(abs),
		debounce: DefaultDebounce,
		events:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Events delivers one value per (debounced) change of the watched file.
func (w *Watcher) Events() <-chan struct{} { return w.events }

// Start begins watching and returns immediately.
func (w *Watcher) Start() error {
	if w.started {
		return ErrAlreadyStarted
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return err
	}

	w.fsw = fsw
	w.started = true
	go w.loop()
	return nil
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	if !w.started {
		return nil
	}
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.events <- struct{}{}:
			default: // a change is already pending
			}

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

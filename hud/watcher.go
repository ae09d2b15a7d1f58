package hud

import (
	"path/filepath"
	"time"

	"github.com/MrWheatley/hud-manager/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher watches the content root and the huds subdirectory for external
// changes and reports them on a debounced channel. It never touches the
// collection itself; consumers decide when to rescan.
type Watcher struct {
	watcher  *fsnotify.Watcher
	changes  chan struct{}
	debounce time.Duration
	logger   *logrus.Entry
	done     chan struct{}
}

// NewWatcher creates a Watcher for the given content root. The debounce
// window collapses bursts of events (a HUD install touches hundreds of
// files) into a single notification.
func NewWatcher(root string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(root); err != nil {
		fsw.Close()
		return nil, err
	}

	logger := logging.NewLogger("watcher")

	// The huds directory may not exist yet on a fresh install; the root
	// watch picks up its creation and a rescan will re-add it.
	hudsDir := filepath.Join(root, HudsDirName)
	if err := fsw.Add(hudsDir); err != nil {
		logger.WithError(err).Debugf("not watching %s", hudsDir)
	}

	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	w := &Watcher{
		watcher:  fsw,
		changes:  make(chan struct{}, 1),
		debounce: debounce,
		logger:   logger,
		done:     make(chan struct{}),
	}

	go w.loop()
	return w, nil
}

// Changes returns the channel that receives a value after the content tree
// has changed and the debounce window has passed.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.WithField("event", event.String()).Debug("content tree changed")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("watch error")

		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}
		}
	}
}

// relevant filters out events the manager itself produces, so saving
// favorites does not trigger a rescan loop.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) == FavoritesFileName {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

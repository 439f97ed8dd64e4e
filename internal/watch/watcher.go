// Package watch implements follow mode: the current seximal time is
// re-rendered and printed once per snap, and the config file is
// monitored so form and timezone changes take effect without a restart.
package watch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/misalian/snaptime/internal/cliconfig"
	"github.com/misalian/snaptime/pkg/clock"
	"github.com/misalian/snaptime/pkg/seximal"
)

// debounceDelay is the delay to wait after a config file change before
// reloading, so editors that write in several steps trigger one reload.
const debounceDelay = 150 * time.Millisecond

// Watcher prints the seximal time each snap boundary until its context
// is cancelled.
type Watcher struct {
	cfgPath string
	clk     clock.Clock
	out     io.Writer
	log     zerolog.Logger

	mu       sync.RWMutex
	form     seximal.Form
	local    bool
	debounce *time.Timer
}

// New creates a Watcher. cfgPath may be empty, in which case no config
// monitoring happens.
func New(cfgPath string, form seximal.Form, local bool, clk clock.Clock, out io.Writer, log zerolog.Logger) *Watcher {
	return &Watcher{
		cfgPath: cfgPath,
		clk:     clk,
		out:     out,
		log:     log,
		form:    form,
		local:   local,
	}
}

// Run prints immediately, then once per snap. It returns nil when ctx
// is cancelled. Config monitoring is best-effort: if the watcher cannot
// be set up the loop still runs, just without live reload.
func (w *Watcher) Run(ctx context.Context) error {
	var events chan fsnotify.Event
	var errs chan error

	if w.cfgPath != "" {
		fsw, err := fsnotify.NewWatcher()
		if err != nil {
			w.log.Warn().Err(err).Msg("config watcher unavailable")
		} else {
			defer fsw.Close()
			// Watch the directory, not the file: editors replace files
			// by rename, which drops a direct file watch.
			if err := fsw.Add(filepath.Dir(w.cfgPath)); err != nil {
				w.log.Warn().Err(err).Str("path", w.cfgPath).Msg("cannot watch config")
			} else {
				events = fsw.Events
				errs = fsw.Errors
			}
		}
	}

	w.print()
	timer := time.NewTimer(w.untilNextSnap())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.stopDebounce()
			return nil
		case <-timer.C:
			w.print()
			timer.Reset(w.untilNextSnap())
		case ev := <-events:
			if filepath.Clean(ev.Name) != filepath.Clean(w.cfgPath) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err := <-errs:
			w.log.Warn().Err(err).Msg("config watcher error")
		}
	}
}

// print renders the current time in the active form and timezone.
func (w *Watcher) print() {
	now := w.clk.Now()

	w.mu.RLock()
	form, local := w.form, w.local
	w.mu.RUnlock()

	if !local {
		now = now.UTC()
	}
	ticks := seximal.FromDuration(clock.SinceMidnight(now))
	fmt.Fprintln(w.out, ticks.Render(form))
}

// untilNextSnap returns the time remaining until the next snap boundary,
// computed from the exact 25/81-second snap length so the display ticks
// in step with the rendered value.
func (w *Watcher) untilNextSnap() time.Duration {
	now := w.clk.Now()
	elapsed := clock.SinceMidnight(now)
	ticks := int64(seximal.FromDuration(elapsed))

	// Smallest whole-nanosecond instant that lands in the next snap.
	next := time.Duration(((ticks+1)*25_000_000_000 + 80) / 81)
	d := next - elapsed
	if d <= 0 {
		d = time.Millisecond
	}
	return d
}

// scheduleReload debounces config reloads after a file event.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.reload)
}

func (w *Watcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}

// reload re-reads the config file and applies form and timezone
// selection. Invalid content is logged and skipped.
func (w *Watcher) reload() {
	fc, err := cliconfig.LoadFileConfig(w.cfgPath)
	if err != nil {
		w.log.Warn().Err(err).Str("path", w.cfgPath).Msg("config reload failed")
		return
	}

	cfg := cliconfig.DefaultConfig()
	cliconfig.ApplyFileConfig(&cfg, fc, nil)
	if err := cfg.Validate(); err != nil {
		w.log.Warn().Err(err).Str("path", w.cfgPath).Msg("config reload rejected")
		return
	}
	form, _ := seximal.ParseForm(cfg.Form)

	w.mu.Lock()
	w.form = form
	w.local = cfg.Local
	w.mu.Unlock()

	w.log.Info().Str("form", form.String()).Bool("local", cfg.Local).Msg("config reloaded")
}

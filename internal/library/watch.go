// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package library

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/ManuGH/hwgen/internal/log"
)

// DefaultDebounce coalesces bursts of filesystem events into one rescan.
const DefaultDebounce = 250 * time.Millisecond

// Watcher rescans the components directory when it changes.
type Watcher struct {
	lib      *Library
	fw       *fsnotify.Watcher
	debounce time.Duration
	logger   zerolog.Logger
}

// NewWatcher starts watching the components directory. Events are only
// consumed by Run; call Close if Run is never called.
func (l *Library) NewWatcher(debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(l.componentsDir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch components directory: %w", err)
	}

	w := &Watcher{
		lib:      l,
		fw:       fw,
		debounce: debounce,
		logger:   log.WithComponent("library"),
	}
	w.logger.Info().
		Str(log.FieldEvent, "library.watcher_started").
		Str(log.FieldPath, l.componentsDir).
		Msg("watching component library for changes")
	return w, nil
}

// Run delivers a fresh catalog to onChange after every debounced change.
// onChange runs on the caller's goroutine. Run returns nil when ctx is done
// and ErrLibraryNotFound if the components directory disappears.
func (w *Watcher) Run(ctx context.Context, onChange func([]Entry)) error {
	defer func() { _ = w.Close() }()

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug().
				Str(log.FieldEvent, "library.file_changed").
				Str("op", event.Op.String()).
				Str(log.FieldPath, event.Name).
				Msg("component library changed")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Str(log.FieldEvent, "library.watch_error").Msg("watcher error")

		case <-timerC:
			timerC = nil
			entries, err := w.lib.Scan()
			if err != nil {
				if errors.Is(err, ErrLibraryNotFound) {
					return err
				}
				w.logger.Warn().Err(err).Str(log.FieldEvent, "library.rescan_failed").Msg("rescan failed")
				continue
			}
			onChange(entries)
		}
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

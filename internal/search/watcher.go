// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"context"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// LOG WATCHER
// =============================================================================

// defaultDebounce batches the write+rename pair a log save produces
// into a single rebuild.
const defaultDebounce = 500 * time.Millisecond

// logWatcher rebuilds the index when the log file changes on disk.
// It watches the state directory rather than the file itself because
// atomic saves replace the file, which would drop a direct watch.
type logWatcher struct {
	idx      *LogIndex
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu      sync.Mutex
	pending time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

// Watch starts watching the log and rebuilding the index on change.
// It rebuilds once up front so the index reflects the current log even
// if nothing changes afterwards.
func (idx *LogIndex) Watch(ctx context.Context) error {
	if err := idx.Rebuild(ctx); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(idx.store.BaseDir); err != nil {
		w.Close()
		return err
	}

	wctx, cancel := context.WithCancel(ctx)
	lw := &logWatcher{
		idx:      idx,
		watcher:  w,
		debounce: defaultDebounce,
		ctx:      wctx,
		cancel:   cancel,
	}

	go lw.processEvents()
	go lw.processPending()

	idx.mu.Lock()
	idx.watcher = lw
	idx.mu.Unlock()
	return nil
}

func (lw *logWatcher) processEvents() {
	logName := filepath.Base(lw.idx.store.LogPath())

	for {
		select {
		case <-lw.ctx.Done():
			return

		case event, ok := <-lw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != logName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			lw.mu.Lock()
			lw.pending = time.Now()
			lw.mu.Unlock()

		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("search: watcher error: %v", err)
		}
	}
}

func (lw *logWatcher) processPending() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-lw.ctx.Done():
			return

		case <-ticker.C:
			lw.mu.Lock()
			due := !lw.pending.IsZero() && time.Since(lw.pending) >= lw.debounce
			if due {
				lw.pending = time.Time{}
			}
			lw.mu.Unlock()

			if due {
				if err := lw.idx.Rebuild(lw.ctx); err != nil && lw.ctx.Err() == nil {
					log.Printf("search: rebuild after log change: %v", err)
				}
			}
		}
	}
}

// Close stops the watcher goroutines.
func (lw *logWatcher) Close() error {
	lw.cancel()
	return lw.watcher.Close()
}

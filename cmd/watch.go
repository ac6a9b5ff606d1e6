/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// watch.go implements the "datalint watch" command.
//
// Separated from validate.go to isolate the fsnotify event loop from the
// single validation run it repeats.
//
// Design: The data directory is watched rather than the two files, because
// editors commonly save by writing a temp file and renaming it over the
// original, which drops a file-level watch. Events for other files are
// ignored. Bursts of events from one save are collapsed by a short debounce
// so each save triggers a single run.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jpl-au/datalint/internal/data"
	"github.com/jpl-au/datalint/internal/log"
	"github.com/spf13/cobra"
)

// debounce is how long the watcher waits after the last relevant event.
var debounce = 250 * time.Millisecond

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-validate whenever a data file changes",
		Long: `Validates the data files, then watches the data directory and validates
again each time categories.json or links.json is written, created, renamed
or removed. Stop with Ctrl+C.

  datalint watch
  datalint watch --dir ./data`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}
}

func runWatch(c *cobra.Command, _ []string) error {
	dir := dataDir()
	paths := data.ForDir(dir)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		log.Event("watch:run", "watch").Path(dir).Write(err)
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	check("watch:run", dir)
	return watch(ctx, w, paths, func() {
		fmt.Fprintln(out)
		check("watch:run", dir)
	})
}

// watch calls run once per debounced burst of data file events until ctx
// is cancelled or the watcher is closed.
func watch(ctx context.Context, w *fsnotify.Watcher, p data.Paths, run func()) error {
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if isDataEvent(ev, p) {
				pending = time.After(debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "warning: watch: %v\n", err)
		case <-pending:
			pending = nil
			run()
		}
	}
}

// isDataEvent reports whether ev changes one of the data files.
func isDataEvent(ev fsnotify.Event, p data.Paths) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
		!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	name := filepath.Clean(ev.Name)
	for _, path := range p.All() {
		if name == filepath.Clean(path) {
			return true
		}
	}
	return false
}

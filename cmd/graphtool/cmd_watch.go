package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Print info for FILE and again every time it changes",
		Long: `Print the info summary of FILE, then watch its directory and print a
fresh summary after each write or replace. Bursts of events within the
debounce window produce one reload. Runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), cmd.OutOrStdout(), args[0], debounce)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "quiet period before a reload")

	return cmd
}

// watch reports path until ctx is done. A failed reload is logged and the
// watch goes on.
func (a *app) watch(ctx context.Context, out io.Writer, path string, debounce time.Duration) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	g, err := a.loadGraph(abs)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "== %s\n", path)
	writeInfo(out, g)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	// Editors often replace the file, so watch the directory.
	if err = w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	reloads := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watch error", "path", path, "error", err)
		case <-timer.C:
			g, err := a.loadGraph(abs)
			if err != nil {
				a.log.Warn("reload failed", "path", path, "error", err)
				continue
			}
			reloads++
			fmt.Fprintf(out, "== %s (reload %d)\n", path, reloads)
			writeInfo(out, g)
		}
	}
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/grasslang/grass/internal/watch"
)

func newWatchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-check grass source files whenever they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, dir)
		},
	}
	return cmd
}

func (a *app) watch(ctx context.Context, dir string) error {
	reporter := a.reporter()
	out := a.stdout
	check := func(path string) {
		if a.checkFile(path, reporter) {
			fmt.Fprintf(out, "ok   %s\n", path)
		} else {
			fmt.Fprintf(out, "FAIL %s\n", path)
		}
		reporter.Reset()
	}

	w, err := watch.New(watch.Options{
		Debounce:   a.cfg.Watch.Debounce.Duration,
		Extensions: a.cfg.Watch.Extensions,
		OnChange:   check,
		Logger:     a.logger,
	})
	if err != nil {
		return err
	}
	defer w.Close()

	err = filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && w.Matches(path) {
			check(path)
		}
		return nil
	})
	if err != nil {
		return &ExitError{Code: ExitNoInput, Err: err}
	}
	if err := w.Add(dir); err != nil {
		return err
	}

	a.logger.Info("watching for changes", "dir", dir)
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

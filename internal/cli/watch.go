// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package cli

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"clientgen/internal/loader"
)

func (c *cli) watchCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "watch [patterns...]",
		Short: "Regenerate the client when descriptor documents change",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				c.cfg.Input = args
			}
			return c.watch(cmd.Context(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().Int("debounce", 0, "debounce duration in milliseconds")
	_ = c.v.BindPFlag("watch.debounce", cmd.Flags().Lookup("debounce"))
	return cmd
}

func (c *cli) watch(ctx context.Context, stderr io.Writer) (err error) {

	var watcher *fsnotify.Watcher
	if watcher, err = fsnotify.NewWatcher(); err != nil {
		return
	}
	defer watcher.Close()

	for _, dir := range watchDirs(c.cfg.Input) {
		if err = addTree(watcher, dir); err != nil {
			return
		}
		slog.Info("watching", slog.String("dir", dir))
	}

	regenerate := func() {
		if _, genErr := c.generate(ctx, stderr); genErr != nil {
			slog.Error("generation failed", slog.String("error", genErr.Error()))
		}
	}
	regenerate()

	debounce := time.Duration(c.cfg.Watch.Debounce) * time.Millisecond
	return debounceLoop(ctx, watcher.Events, watcher.Errors, debounce, func(event fsnotify.Event) bool {
		if event.Has(fsnotify.Create) {
			if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
				if addErr := addTree(watcher, event.Name); addErr != nil {
					slog.Warn("failed to watch directory", slog.String("dir", event.Name), slog.String("error", addErr.Error()))
				}
				return false
			}
		}
		return loader.FormatOf(event.Name) != ""
	}, regenerate)
}

// debounceLoop вызывает fn один раз после серии подходящих событий, затихшей на debounce.
func debounceLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, debounce time.Duration, match func(fsnotify.Event) bool, fn func()) error {

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if !match(event) {
				continue
			}
			slog.Debug("descriptor changed", slog.String("file", event.Name), slog.String("op", event.Op.String()))
			timer.Reset(debounce)
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			slog.Warn("watch error", slog.String("error", err.Error()))
		case <-timer.C:
			fn()
		}
	}
}

// watchDirs — базовые каталоги шаблонов без повторов.
func watchDirs(patterns []string) (dirs []string) {

	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		dir := filepath.Clean(filepath.FromSlash(base))
		if _, found := seen[dir]; !found {
			seen[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}
	return
}

func addTree(watcher *fsnotify.Watcher, root string) error {

	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

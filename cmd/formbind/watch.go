package main

import (
	"context"
	"log/slog"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"formbind/internal/watch"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [packages]",
		Short: "Regenerate drivers whenever Go sources change",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cmd.SetContext(ctx)
			patterns := opts.patterns(args)

			if err := opts.generate(cmd, patterns); err != nil {
				opts.logger.Error("initial round failed", slog.Any("error", err))
			}

			root, err := filepath.Abs(opts.dir)
			if err != nil {
				return err
			}

			w, err := watch.New(root, func(context.Context) error {
				return opts.generate(cmd, patterns)
			}, watch.Options{
				Debounce: opts.cfg.Watch.Debounce,
				Ignore: func(path string) bool {
					return strings.HasSuffix(path, opts.cfg.FileSuffix)
				},
				Logger: opts.logger,
			})
			if err != nil {
				return err
			}

			opts.logger.Info("watching", slog.String("dir", root), slog.Duration("debounce", opts.cfg.Watch.Debounce))

			return w.Run(ctx)
		},
	}
}

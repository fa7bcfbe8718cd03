package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"formbind/internal/gen"
)

func newGenCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gen [packages]",
		Short: "Write a driver next to every marked struct",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.generate(cmd, opts.patterns(args))
		},
	}
}

func (o *rootOptions) generate(cmd *cobra.Command, patterns []string) error {
	_, files, err := o.round(cmd.Context(), patterns)
	if err != nil {
		return err
	}

	written, err := gen.WriteFiles(files)
	if err != nil {
		return err
	}

	for _, path := range written {
		o.logger.Info("generated", slog.String("file", path))
	}

	o.logger.Debug("round complete", slog.Int("drivers", len(files)), slog.Int("written", len(written)))

	return nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"formbind/internal/gen"
)

var errStale = errors.New("generated drivers are out of date")

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "check [packages]",
		Short: "Validate markers and report out-of-date drivers",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, files, err := opts.round(cmd.Context(), opts.patterns(args))
			if err != nil {
				return err
			}

			if dump {
				cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
				cfg.Fdump(cmd.OutOrStdout(), model.Drivers)
			}

			stale, err := gen.Stale(files)
			if err != nil {
				return err
			}

			for _, path := range stale {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}

			if len(stale) > 0 {
				return fmt.Errorf("%w: %d file(s), run formbind gen", errStale, len(stale))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print the analyzed driver models")

	return cmd
}

package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"formbind/internal/analyze"
	"formbind/internal/config"
	"formbind/internal/gen"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	configPath string
	dir        string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "formbind",
		Short:        "Generate message drivers for form structs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd.ErrOrStderr(), cmd.Flags().Changed("config"))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultFile, "path to the config file")
	cmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "directory packages are resolved from")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newGenCmd(opts),
		newCheckCmd(opts),
		newWatchCmd(opts),
	)

	return cmd
}

// init loads the config file and builds the logger. A relative config path
// is resolved against --dir.
func (o *rootOptions) init(stderr io.Writer, explicit bool) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}

	o.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	path := o.configPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(o.dir, path)
	}

	cfg, err := config.LoadOptional(path, explicit)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger.Debug("config loaded", slog.String("path", path), slog.Any("packages", cfg.Packages))

	return nil
}

// patterns returns args, falling back to the configured packages.
func (o *rootOptions) patterns(args []string) []string {
	if len(args) > 0 {
		return args
	}

	return o.cfg.Packages
}

// round analyzes the packages and renders every driver without writing.
func (o *rootOptions) round(ctx context.Context, patterns []string) (*analyze.Model, []gen.GeneratedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	ac := o.cfg.AnalyzeConfig(o.dir)
	ac.Logger = o.logger

	model, err := analyze.NewAnalyzer(ac).LoadPackages(patterns...)
	if err != nil {
		return nil, nil, err
	}

	gc := o.cfg.GeneratorConfig()
	gc.DebugUnformatted = o.verbose

	files, err := gen.NewGenerator(gc).Generate(model)
	if err != nil {
		return model, nil, err
	}

	return model, files, nil
}

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/attribute"
	"github.com/vango-dev/markup/pkg/attributes"
	"github.com/vango-dev/markup/pkg/tag"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// env is the state shared by every command once the configuration has
// been loaded.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	attrs  *attribute.Registry
	tags   *tag.Registry
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		noColor    bool
		e          = &env{}
	)

	rootCmd := &cobra.Command{
		Use:   "markup",
		Short: "Render HTML markup from documents",
		Long: `Markup renders HTML from JSON or YAML documents.

Documents describe a tree of tags, text and comments. Attribute handling
is configured per name in markup.json:

  • tokens     split on whitespace and drop duplicates (class)
  • lowercase  tokens, lower-cased (rel)
  • generic    values as given`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				errors.DisableColors()
			}
			return e.load(cmd.ErrOrStderr(), configPath, logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to markup.json (default: ./markup.json if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		renderCmd(e),
		exportCmd(e),
		attrCmd(e),
		initCmd(),
		versionCmd(),
	)

	return rootCmd
}

// load reads the configuration, applies the environment and builds the
// registries used by the commands.
func (e *env) load(stderr io.Writer, configPath, logLevel string) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.LoadOptional(".")
	}
	if err != nil {
		return err
	}
	if err := cfg.LoadEnv(); err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	e.cfg = cfg
	e.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	e.attrs = attribute.NewRegistry(attribute.WithLogger(e.logger))
	if err := cfg.Apply(e.attrs); err != nil {
		return err
	}
	e.tags = tag.NewRegistry(
		tag.WithFactory(attributes.NewFactory(e.attrs)),
		tag.WithLogger(e.logger),
	)

	e.logger.Debug("configuration loaded",
		"path", cfg.Path(),
		"format", cfg.Format,
		"attributes", len(cfg.Attributes),
	)
	return nil
}

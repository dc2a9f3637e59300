// Package main provides the trailguide CLI for browsing the hand-built trail guidebook.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/trail-guidebook/internal/catalog"
	"github.com/jonathan/trail-guidebook/internal/config"
	"github.com/jonathan/trail-guidebook/internal/logging"
	"github.com/jonathan/trail-guidebook/internal/observability"
	"github.com/jonathan/trail-guidebook/internal/seed"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by every subcommand for one invocation.
type app struct {
	configPath string
	seedPath   string
	verbose    bool
	jsonOut    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "trailguide",
		Short: "Hand-built trail guidebook",
		Long:  "trailguide browses construction methods, case studies and partner organizations for hand-built eco-trails.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to JSON config file")
	flags.StringVar(&a.seedPath, "seed", "", "Path to a seed YAML file (default: embedded dataset)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&a.jsonOut, "json", false, "Print output as JSON")

	rootCmd.AddCommand(
		newHomeCmd(a),
		newMethodsCmd(a),
		newCasesCmd(a),
		newParticipateCmd(a),
		newOpenCmd(a),
		newValidateCmd(a),
		newBrowseCmd(a),
	)
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup resolves configuration in order file, environment, flags, and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	var cfg config.Config
	if a.configPath != "" {
		loaded, err := config.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = a.seedPath
	}
	if a.verbose {
		cfg.Verbose = true
	}
	if a.jsonOut {
		cfg.JSON = true
	}

	cfg = cfg.MergeWithDefaults(config.Config{})
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, cfg.Verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration resolved",
		zap.String("seed", cfg.Seed),
		zap.Strings("featured", cfg.Featured),
		zap.Bool("featured_override", cfg.HasFeatured()),
	)
	return nil
}

// loadRepository decodes the configured seed and builds the repository.
// Any integrity failure aborts the command.
func (a *app) loadRepository() (*catalog.Repository, error) {
	return a.loadRepositoryFrom(a.cfg.Seed)
}

func (a *app) loadRepositoryFrom(path string) (*catalog.Repository, error) {
	var (
		doc *seed.Document
		err error
	)
	if path == "" {
		doc, err = seed.Default()
	} else {
		doc, err = seed.LoadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}

	opts := []catalog.Option{catalog.WithLogger(a.logger)}
	if a.cfg.HasFeatured() {
		opts = append(opts, catalog.WithFeatured(a.cfg.Featured))
	}
	repo, err := catalog.Build(doc, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	if err := repo.Verify(); err != nil {
		return nil, fmt.Errorf("catalog failed verification: %w", err)
	}
	return repo, nil
}

func (a *app) printer(cmd *cobra.Command) *observability.Printer {
	return observability.NewPrinter(cmd.OutOrStdout())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}
	return nil
}

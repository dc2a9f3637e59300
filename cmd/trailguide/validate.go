package main

import (
	"fmt"
	"runtime"

	"github.com/jonathan/trail-guidebook/internal/catalog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type validateResult struct {
	source string
	repo   *catalog.Repository
	err    error
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [seed.yaml ...]",
		Short: "Check seed datasets for schema and integrity errors",
		Long: "Decodes each seed file, validates it against the seed schema, builds the catalog and re-checks referential integrity. " +
			"Without arguments the configured seed (or the embedded dataset) is checked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := args
			if len(sources) == 0 {
				sources = []string{a.cfg.Seed}
			}

			results := make([]validateResult, len(sources))
			var g errgroup.Group
			g.SetLimit(runtime.NumCPU())
			for i, path := range sources {
				g.Go(func() error {
					repo, err := a.loadRepositoryFrom(path)
					results[i] = validateResult{source: path, repo: repo, err: err}
					return nil
				})
			}
			_ = g.Wait()

			failed := 0
			p := a.printer(cmd)
			for _, r := range results {
				name := r.source
				if name == "" {
					name = "embedded"
				}
				if r.err != nil {
					failed++
					a.logger.Debug("seed invalid", zap.String("source", name), zap.Error(r.err))
					fmt.Fprintf(cmd.ErrOrStderr(), "❌ %s: %v\n", name, r.err)
					continue
				}
				p.PrintSummary(name, r.repo)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d seed files failed validation", failed, len(results))
			}
			return nil
		},
	}
}

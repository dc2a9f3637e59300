package main

import (
	"github.com/jonathan/trail-guidebook/internal/links"
	"github.com/jonathan/trail-guidebook/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newBrowseCmd(a *app) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the guidebook interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.loadRepository()
			if err != nil {
				return err
			}

			// stderr shares the terminal with the alternate screen
			logger := a.logger
			if !a.cfg.Verbose {
				logger = logger.WithOptions(zap.IncreaseLevel(zapcore.ErrorLevel))
			}

			m := tui.New(repo, links.NewBrowserOpener(logger), tui.Options{
				GlamourStyle: style,
				Logger:       logger,
			})
			return tui.Run(cmd.Context(), m)
		},
	}

	cmd.Flags().StringVar(&style, "style", "auto", "Markdown style for detail views (auto, dark, light, notty)")
	return cmd
}

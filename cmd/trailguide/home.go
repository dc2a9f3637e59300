package main

import "github.com/spf13/cobra"

func newHomeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the home chapters and their highlights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.loadRepository()
			if err != nil {
				return err
			}
			if a.cfg.JSON {
				return writeJSON(cmd.OutOrStdout(), repo.Chapters())
			}
			a.printer(cmd).PrintChapters(repo.Chapters())
			return nil
		},
	}
}

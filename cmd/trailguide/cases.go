package main

import (
	"github.com/jonathan/trail-guidebook/internal/types"
	"github.com/spf13/cobra"
)

func newCasesCmd(a *app) *cobra.Command {
	var featuredOnly bool

	cmd := &cobra.Command{
		Use:   "cases",
		Short: "List case studies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.loadRepository()
			if err != nil {
				return err
			}

			var cases []*types.CaseStudy
			if featuredOnly {
				cases = repo.FeaturedCaseStudies()
			} else {
				cases = repo.CaseStudies()
			}

			if a.cfg.JSON {
				return writeJSON(cmd.OutOrStdout(), cases)
			}
			a.printer(cmd).PrintCaseStudies(cases)
			return nil
		},
	}

	cmd.Flags().BoolVar(&featuredOnly, "featured", false, "Only show featured case studies")
	return cmd
}

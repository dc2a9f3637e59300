package main

import (
	"fmt"

	"github.com/jonathan/trail-guidebook/internal/types"
	"github.com/spf13/cobra"
)

func newMethodsCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List construction methods by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.loadRepository()
			if err != nil {
				return err
			}

			categories := repo.Categories()
			if category != "" {
				c, ok := repo.Category(category)
				if !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				categories = []*types.MethodCategory{c}
			}

			if a.cfg.JSON {
				return writeJSON(cmd.OutOrStdout(), categories)
			}
			a.printer(cmd).PrintCategories(categories)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only show the category with this key (e.g. slope)")
	return cmd
}

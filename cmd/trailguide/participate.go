package main

import (
	"github.com/jonathan/trail-guidebook/internal/links"
	"github.com/jonathan/trail-guidebook/internal/types"
	"github.com/spf13/cobra"
)

// orgView is the JSON form of a directory entry.
type orgView struct {
	*types.Org
	Actions []links.Action `json:"actions"`
}

func newParticipateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "participate",
		Short: "Show partner organizations and how to reach them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.loadRepository()
			if err != nil {
				return err
			}

			if a.cfg.JSON {
				views := make([]orgView, 0, len(repo.Orgs()))
				for _, o := range repo.Orgs() {
					actions := links.ActionsFor(o)
					if actions == nil {
						actions = []links.Action{}
					}
					views = append(views, orgView{Org: o, Actions: actions})
				}
				return writeJSON(cmd.OutOrStdout(), views)
			}
			a.printer(cmd).PrintOrgs(repo.Orgs())
			return nil
		},
	}
}

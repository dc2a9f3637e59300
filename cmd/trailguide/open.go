package main

import (
	"github.com/jonathan/trail-guidebook/internal/navigation"
	"github.com/jonathan/trail-guidebook/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// targetView is the JSON form of a resolved highlight.
type targetView struct {
	Highlight *types.Highlight     `json:"highlight"`
	Kind      navigation.TargetKind `json:"kind"`
	Tab       string                `json:"tab"`
	Target    any                   `json:"target,omitempty"`
}

func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open <highlight-id>",
		Short: "Show the detail a home highlight links to",
		Long:  "Resolves a highlight by its id or a unique id prefix (as printed by `home`) and shows the intro, method, case study or directory it links to.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.loadRepository()
			if err != nil {
				return err
			}

			h, err := repo.FindHighlight(args[0])
			if err != nil {
				return err
			}
			target := navigation.Resolve(h.Link)
			a.logger.Debug("highlight resolved",
				zap.String("highlight", h.ID.String()),
				zap.String("kind", string(target.Kind())),
			)

			if a.cfg.JSON {
				view := targetView{
					Highlight: h,
					Kind:      target.Kind(),
					Tab:       navigation.TargetTab(target).String(),
					Target:    targetPayload(target, repo.Orgs()),
				}
				return writeJSON(cmd.OutOrStdout(), view)
			}
			a.printer(cmd).PrintTarget(target, repo.Orgs())
			return nil
		},
	}
}

func targetPayload(target navigation.ResolvedTarget, orgs []*types.Org) any {
	switch t := target.(type) {
	case navigation.ShowIntro:
		return t.Intro
	case navigation.ShowMethod:
		return t.Method
	case navigation.ShowCaseStudy:
		return t.CaseStudy
	case navigation.ShowParticipateDirectory:
		return orgs
	default:
		return nil
	}
}

package tui

import (
	"strings"

	"github.com/jonathan/trail-guidebook/internal/catalog"
	"github.com/jonathan/trail-guidebook/internal/navigation"
	"github.com/jonathan/trail-guidebook/internal/types"
)

type rowKind int

const (
	rowHeader rowKind = iota
	rowEmpty
	rowItem
)

// row is one line of a tab's list. Only items are selectable.
type row struct {
	kind     rowKind
	title    string
	subtitle string
	target   navigation.ResolvedTarget
	org      *types.Org
}

func (r row) selectable() bool { return r.kind == rowItem }

// buildRows lays out every tab from the repository.
func buildRows(repo *catalog.Repository) map[navigation.Tab][]row {
	return map[navigation.Tab][]row{
		navigation.TabHome:        homeRows(repo.Chapters()),
		navigation.TabMethods:     methodRows(repo.Categories()),
		navigation.TabCases:       caseRows(repo.CaseStudies()),
		navigation.TabParticipate: orgRows(repo.Orgs()),
	}
}

func homeRows(chapters []*types.Chapter) []row {
	var rows []row
	for _, c := range chapters {
		rows = append(rows, row{kind: rowHeader, title: c.Title})
		if len(c.Highlights) == 0 {
			rows = append(rows, row{kind: rowEmpty, title: navigation.EmptyChapterText})
			continue
		}
		for _, h := range c.Highlights {
			rows = append(rows, row{
				kind:     rowItem,
				title:    h.Title,
				subtitle: h.Subtitle,
				target:   navigation.Resolve(h.Link),
			})
		}
	}
	return rows
}

func methodRows(categories []*types.MethodCategory) []row {
	var rows []row
	for _, c := range categories {
		rows = append(rows, row{kind: rowHeader, title: c.Name})
		for _, m := range c.Methods {
			rows = append(rows, row{kind: rowItem, title: m.Name, target: navigation.ShowMethod{Method: m}})
		}
	}
	return rows
}

func caseRows(cases []*types.CaseStudy) []row {
	rows := make([]row, 0, len(cases))
	for _, cs := range cases {
		rows = append(rows, row{
			kind:     rowItem,
			title:    cs.Name,
			subtitle: cs.Location,
			target:   navigation.ShowCaseStudy{CaseStudy: cs},
		})
	}
	return rows
}

func orgRows(orgs []*types.Org) []row {
	rows := make([]row, 0, len(orgs))
	for _, o := range orgs {
		rows = append(rows, row{kind: rowItem, title: o.Name, subtitle: firstLine(o.Intro), org: o})
	}
	return rows
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// firstSelectable returns the index of the first item at or after from,
// or -1.
func firstSelectable(rows []row, from int) int {
	for i := max(from, 0); i < len(rows); i++ {
		if rows[i].selectable() {
			return i
		}
	}
	return -1
}

// step moves the cursor by dir over selectable rows, staying put at
// either end.
func step(rows []row, cursor, dir int) int {
	for i := cursor + dir; i >= 0 && i < len(rows); i += dir {
		if rows[i].selectable() {
			return i
		}
	}
	return cursor
}

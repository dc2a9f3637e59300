package tui

import (
	"fmt"
	"strings"

	"github.com/jonathan/trail-guidebook/internal/links"
	"github.com/jonathan/trail-guidebook/internal/navigation"
	"github.com/jonathan/trail-guidebook/internal/types"
)

// detailMarkdown renders a detail view as markdown for glamour.
func detailMarkdown(target navigation.ResolvedTarget, orgs []*types.Org) string {
	var sb strings.Builder
	switch t := target.(type) {
	case navigation.ShowIntro:
		fmt.Fprintf(&sb, "# %s\n\n%s\n", t.Intro.Name, t.Intro.Summary)
	case navigation.ShowMethod:
		writeMethod(&sb, t.Method)
	case navigation.ShowCaseStudy:
		writeCaseStudy(&sb, t.CaseStudy)
	case navigation.ShowParticipateDirectory:
		for _, o := range orgs {
			writeOrg(&sb, o)
		}
	}
	return sb.String()
}

func writeMethod(sb *strings.Builder, m *types.Method) {
	fmt.Fprintf(sb, "# %s\n\n%s\n\n", m.Name, m.Summary)
	if len(m.Materials) > 0 {
		sb.WriteString("## 材料\n\n")
		for _, mat := range m.Materials {
			fmt.Fprintf(sb, "- %s\n", mat)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("## 步驟\n\n")
	for i, s := range m.Steps {
		fmt.Fprintf(sb, "%d. **%s**：%s\n", i+1, s.Title, s.Detail)
	}
}

func writeCaseStudy(sb *strings.Builder, cs *types.CaseStudy) {
	fmt.Fprintf(sb, "# %s\n\n*%s*\n\n## 工法\n\n", cs.Name, cs.Location)
	for i, name := range cs.MethodNames() {
		fmt.Fprintf(sb, "%d. %s\n", i+1, name)
	}
	fmt.Fprintf(sb, "\n%s\n", cs.Notes)
}

func writeOrg(sb *strings.Builder, o *types.Org) {
	fmt.Fprintf(sb, "## %s\n\n%s\n\n", o.Name, o.Intro)
	for _, h := range o.Highlights {
		fmt.Fprintf(sb, "- %s\n", h)
	}
	for _, a := range links.ActionsFor(o) {
		fmt.Fprintf(sb, "\n%s：<%s>\n", a.Title, a.URL)
	}
	sb.WriteString("\n")
}

// Package observability provides plain-text rendering of guidebook views
// for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/trail-guidebook/internal/catalog"
	"github.com/jonathan/trail-guidebook/internal/links"
	"github.com/jonathan/trail-guidebook/internal/navigation"
	"github.com/jonathan/trail-guidebook/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// shortIDLen is how much of a highlight id the home view prints
	shortIDLen = 8
)

// Printer renders guidebook views as boxed plain text.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Widths are
// measured in terminal cells so CJK text lines up; long lines wrap.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	cell := lipgloss.NewStyle().Width(inner)

	fmt.Fprintf(p.out, "┌%s┐\n", border)
	for _, line := range strings.Split(cell.Render(title), "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", line)
	}
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(cell.Render(content), "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", line)
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// ShortID returns the id prefix printed next to highlights.
func ShortID(h *types.Highlight) string {
	return h.ID.String()[:shortIDLen]
}

// PrintChapters outputs the home tab: every chapter with its highlights
// and the id prefix that `open` accepts.
func (p *Printer) PrintChapters(chapters []*types.Chapter) {
	for _, chapter := range chapters {
		var sb strings.Builder
		if len(chapter.Highlights) == 0 {
			sb.WriteString(navigation.EmptyChapterText)
		}
		for i, h := range chapter.Highlights {
			sb.WriteString(fmt.Sprintf("[%s] %s\n", ShortID(h), h.Title))
			if h.Subtitle != "" {
				sb.WriteString(fmt.Sprintf("         %s\n", h.Subtitle))
			}
			if i < len(chapter.Highlights)-1 {
				sb.WriteString("\n")
			}
		}
		p.printBox(chapter.Title, strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintCategories outputs the methods tab.
func (p *Printer) PrintCategories(categories []*types.MethodCategory) {
	for _, c := range categories {
		var sb strings.Builder
		for _, m := range c.Methods {
			sb.WriteString(fmt.Sprintf("• %s\n", m.Name))
		}
		p.printBox(c.Name, strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintCaseStudies outputs the cases tab.
func (p *Printer) PrintCaseStudies(cases []*types.CaseStudy) {
	if len(cases) == 0 {
		return
	}

	var sb strings.Builder
	for i, cs := range cases {
		sb.WriteString(fmt.Sprintf("%s\n", cs.Name))
		sb.WriteString(fmt.Sprintf("  %s\n", cs.Location))
		sb.WriteString(fmt.Sprintf("  工法: %s\n", strings.Join(cs.MethodNames(), "、")))
		if i < len(cases)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("案例", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOrgs outputs the participate directory. Optional links are
// listed only when usable.
func (p *Printer) PrintOrgs(orgs []*types.Org) {
	for _, org := range orgs {
		var sb strings.Builder
		sb.WriteString(org.Intro)
		sb.WriteString("\n")
		if org.HasImage() {
			sb.WriteString(fmt.Sprintf("圖片: %s\n", *org.Image))
		}
		if len(org.Highlights) > 0 {
			sb.WriteString("\n")
			for _, h := range org.Highlights {
				sb.WriteString(fmt.Sprintf("• %s\n", h))
			}
		}
		if actions := links.ActionsFor(org); len(actions) > 0 {
			sb.WriteString("\n")
			for _, a := range actions {
				sb.WriteString(fmt.Sprintf("%s: %s\n", a.Title, a.URL))
			}
		}
		p.printBox(org.Name, strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintIntro outputs an intro detail.
func (p *Printer) PrintIntro(intro *types.Intro) {
	if intro == nil {
		return
	}
	p.printBox(intro.Name, intro.Summary)
}

// PrintMethod outputs a method detail: summary, materials and numbered steps.
func (p *Printer) PrintMethod(m *types.Method) {
	if m == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(m.Summary)
	sb.WriteString("\n")
	if len(m.Materials) > 0 {
		sb.WriteString(fmt.Sprintf("\n材料: %s\n", strings.Join(m.Materials, "、")))
	}
	sb.WriteString("\n")
	for i, step := range m.Steps {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step.Title))
		sb.WriteString(fmt.Sprintf("   %s\n", step.Detail))
	}
	p.printBox(m.Name, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCaseStudy outputs a case study detail.
func (p *Printer) PrintCaseStudy(cs *types.CaseStudy) {
	if cs == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("地點: %s\n", cs.Location))
	sb.WriteString(fmt.Sprintf("工法: %s\n\n", strings.Join(cs.MethodNames(), "、")))
	sb.WriteString(cs.Notes)
	p.printBox(cs.Name, sb.String())
}

// PrintTarget outputs the detail view for a resolved highlight.
// orgs feeds the participate directory.
func (p *Printer) PrintTarget(target navigation.ResolvedTarget, orgs []*types.Org) {
	switch t := target.(type) {
	case navigation.ShowIntro:
		p.PrintIntro(t.Intro)
	case navigation.ShowMethod:
		p.PrintMethod(t.Method)
	case navigation.ShowCaseStudy:
		p.PrintCaseStudy(t.CaseStudy)
	case navigation.ShowParticipateDirectory:
		p.PrintOrgs(orgs)
	}
}

// PrintSummary outputs the entity counts of a repository that passed
// integrity checks.
func (p *Printer) PrintSummary(source string, repo *catalog.Repository) {
	if repo == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Intros:        %d\n", len(repo.Intros())))
	sb.WriteString(fmt.Sprintf("Categories:    %d\n", len(repo.Categories())))
	sb.WriteString(fmt.Sprintf("Methods:       %d\n", len(repo.Methods())))
	sb.WriteString(fmt.Sprintf("Case studies:  %d\n", len(repo.CaseStudies())))
	sb.WriteString(fmt.Sprintf("Orgs:          %d\n", len(repo.Orgs())))
	sb.WriteString(fmt.Sprintf("Chapters:      %d\n", len(repo.Chapters())))
	sb.WriteString(fmt.Sprintf("Featured:      %d", len(repo.FeaturedCaseStudies())))
	p.printBox("✅ SEED OK: "+source, sb.String())
}

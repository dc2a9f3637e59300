package catalog

import (
	"fmt"
	"slices"

	"github.com/jonathan/trail-guidebook/internal/types"
)

// Verify re-checks referential integrity over the built graph: every
// method used by a case study or linked from a highlight is one of the
// methods listed by a category, and every intro or case study link
// points into the repository's own collections.
func (r *Repository) Verify() error {
	for i, cs := range r.caseStudies {
		for j, m := range cs.UsedMethods {
			if _, ok := r.categoryOf[m]; !ok {
				return &IntegrityError{
					Path:    fmt.Sprintf("case_studies[%d].methods[%d]", i, j),
					Message: fmt.Sprintf("method %q is not listed by any category", methodName(m)),
				}
			}
		}
	}

	for i, chapter := range r.chapters {
		for j, h := range chapter.Highlights {
			if err := r.verifyLink(h.Link); err != nil {
				err.Path = fmt.Sprintf("chapters[%d].highlights[%d].link", i, j)
				return err
			}
		}
	}

	return nil
}

// linkChecker is a LinkVisitor that records the first dangling target.
type linkChecker struct {
	r   *Repository
	err *IntegrityError
}

var _ types.LinkVisitor = (*linkChecker)(nil)

func (c *linkChecker) VisitMethod(m *types.Method) {
	if _, ok := c.r.categoryOf[m]; !ok {
		c.err = &IntegrityError{Message: fmt.Sprintf("method %q is not listed by any category", methodName(m))}
	}
}

func (c *linkChecker) VisitIntro(i *types.Intro) {
	if !slices.Contains(c.r.intros, i) {
		c.err = &IntegrityError{Message: "intro link points outside the repository"}
	}
}

func (c *linkChecker) VisitCaseStudy(cs *types.CaseStudy) {
	if !slices.Contains(c.r.caseStudies, cs) {
		c.err = &IntegrityError{Message: "case study link points outside the repository"}
	}
}

func (c *linkChecker) VisitParticipate() {}

func (r *Repository) verifyLink(link types.HighlightLink) *IntegrityError {
	if link == nil {
		return &IntegrityError{Message: "highlight has no link"}
	}
	c := &linkChecker{r: r}
	link.Accept(c)
	return c.err
}

func methodName(m *types.Method) string {
	if m == nil {
		return "<nil>"
	}
	return m.Name
}

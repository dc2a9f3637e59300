// Package navigation maps highlight links to the view a presentation
// layer should show next.
package navigation

import "github.com/jonathan/trail-guidebook/internal/types"

// TargetKind names the variant of a ResolvedTarget.
type TargetKind string

const (
	TargetIntro       TargetKind = "intro"
	TargetMethod      TargetKind = "method"
	TargetCaseStudy   TargetKind = "case_study"
	TargetParticipate TargetKind = "participate"
)

// ResolvedTarget is the view intent produced by Resolve.
type ResolvedTarget interface {
	Kind() TargetKind
	// Title is the heading a detail view shows for the target.
	Title() string
	isResolvedTarget()
}

// ShowIntro shows an intro detail.
type ShowIntro struct{ Intro *types.Intro }

// ShowMethod shows a method detail.
type ShowMethod struct{ Method *types.Method }

// ShowCaseStudy shows a case study detail.
type ShowCaseStudy struct{ CaseStudy *types.CaseStudy }

// ShowParticipateDirectory shows the org directory.
type ShowParticipateDirectory struct{}

func (ShowIntro) Kind() TargetKind                { return TargetIntro }
func (ShowMethod) Kind() TargetKind               { return TargetMethod }
func (ShowCaseStudy) Kind() TargetKind            { return TargetCaseStudy }
func (ShowParticipateDirectory) Kind() TargetKind { return TargetParticipate }

func (t ShowIntro) Title() string              { return t.Intro.Name }
func (t ShowMethod) Title() string             { return t.Method.Name }
func (t ShowCaseStudy) Title() string          { return t.CaseStudy.Name }
func (ShowParticipateDirectory) Title() string { return "如何參與" }

func (ShowIntro) isResolvedTarget()                {}
func (ShowMethod) isResolvedTarget()               {}
func (ShowCaseStudy) isResolvedTarget()            {}
func (ShowParticipateDirectory) isResolvedTarget() {}

// resolver turns each link variant into its target. It must implement
// every LinkVisitor method, so a new link variant does not compile
// until it is handled here.
type resolver struct {
	target ResolvedTarget
}

var _ types.LinkVisitor = (*resolver)(nil)

func (r *resolver) VisitMethod(m *types.Method)       { r.target = ShowMethod{Method: m} }
func (r *resolver) VisitIntro(i *types.Intro)         { r.target = ShowIntro{Intro: i} }
func (r *resolver) VisitCaseStudy(c *types.CaseStudy) { r.target = ShowCaseStudy{CaseStudy: c} }
func (r *resolver) VisitParticipate()                 { r.target = ShowParticipateDirectory{} }

// Resolve returns the target for link. The payload is passed through
// unchanged: the link already carries the entity, so there is nothing
// to look up and nothing that can miss.
func Resolve(link types.HighlightLink) ResolvedTarget {
	var r resolver
	link.Accept(&r)
	return r.target
}

//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"

	"github.com/google/uuid"
)

// LinkKind names the variant of a HighlightLink.
type LinkKind string

const (
	LinkMethod      LinkKind = "method"
	LinkIntro       LinkKind = "intro"
	LinkCaseStudy   LinkKind = "case_study"
	LinkParticipate LinkKind = "participate"
)

// LinkVisitor has one method per HighlightLink variant.
// Adding a variant means adding a method here, which breaks every
// visitor that has not been taught about it.
type LinkVisitor interface {
	VisitMethod(m *Method)
	VisitIntro(i *Intro)
	VisitCaseStudy(c *CaseStudy)
	VisitParticipate()
}

// HighlightLink is the closed set of things a highlight can navigate to.
// Implementations live in this package only.
type HighlightLink interface {
	Kind() LinkKind
	Accept(v LinkVisitor)
	isHighlightLink()
}

// MethodLink navigates to a method detail.
type MethodLink struct{ Method *Method }

// IntroLink navigates to an intro detail.
type IntroLink struct{ Intro *Intro }

// CaseStudyLink navigates to a case study detail.
type CaseStudyLink struct{ CaseStudy *CaseStudy }

// ParticipateLink navigates to the static org directory. It carries no payload.
type ParticipateLink struct{}

// NewMethodLink links to m.
func NewMethodLink(m *Method) HighlightLink { return MethodLink{Method: m} }

// NewIntroLink links to i.
func NewIntroLink(i *Intro) HighlightLink { return IntroLink{Intro: i} }

// NewCaseStudyLink links to c.
func NewCaseStudyLink(c *CaseStudy) HighlightLink { return CaseStudyLink{CaseStudy: c} }

// NewParticipateLink links to the participate directory.
func NewParticipateLink() HighlightLink { return ParticipateLink{} }

func (MethodLink) Kind() LinkKind      { return LinkMethod }
func (IntroLink) Kind() LinkKind       { return LinkIntro }
func (CaseStudyLink) Kind() LinkKind   { return LinkCaseStudy }
func (ParticipateLink) Kind() LinkKind { return LinkParticipate }

func (l MethodLink) Accept(v LinkVisitor)    { v.VisitMethod(l.Method) }
func (l IntroLink) Accept(v LinkVisitor)     { v.VisitIntro(l.Intro) }
func (l CaseStudyLink) Accept(v LinkVisitor) { v.VisitCaseStudy(l.CaseStudy) }
func (ParticipateLink) Accept(v LinkVisitor) { v.VisitParticipate() }

func (MethodLink) isHighlightLink()      {}
func (IntroLink) isHighlightLink()       {}
func (CaseStudyLink) isHighlightLink()   {}
func (ParticipateLink) isHighlightLink() {}

// linkJSON is the wire form of a link: the target is referenced by id
// so that serializing a highlight never inlines the whole target entity.
type linkJSON struct {
	Kind     LinkKind   `json:"kind"`
	TargetID *uuid.UUID `json:"target_id,omitempty"`
}

func (l MethodLink) MarshalJSON() ([]byte, error) {
	return json.Marshal(linkJSON{Kind: LinkMethod, TargetID: &l.Method.ID})
}

func (l IntroLink) MarshalJSON() ([]byte, error) {
	return json.Marshal(linkJSON{Kind: LinkIntro, TargetID: &l.Intro.ID})
}

func (l CaseStudyLink) MarshalJSON() ([]byte, error) {
	return json.Marshal(linkJSON{Kind: LinkCaseStudy, TargetID: &l.CaseStudy.ID})
}

func (ParticipateLink) MarshalJSON() ([]byte, error) {
	return json.Marshal(linkJSON{Kind: LinkParticipate})
}

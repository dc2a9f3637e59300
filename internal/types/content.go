// Package types provides type definitions for the trail guidebook content graph.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// Step is one ordered construction step within a Method.
type Step struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title" validate:"required"`
	Detail string    `json:"detail" validate:"required"`
}

// Method is a hand-built trail construction technique.
// A Method has no back-reference to its category; membership is positional.
type Method struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Summary   string    `json:"summary" validate:"required"`
	Steps     []Step    `json:"steps" validate:"min=1"`
	Materials []string  `json:"materials" validate:"dive,required"`
}

// MethodCategory groups methods in their canonical display order.
type MethodCategory struct {
	ID      uuid.UUID `json:"id"`
	Key     string    `json:"key" validate:"required"`
	Name    string    `json:"name" validate:"required"`
	Methods []*Method `json:"methods" validate:"min=1"`
}

// Intro is a standalone FAQ or information entry.
type Intro struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name" validate:"required"`
	Summary string    `json:"summary" validate:"required"`
	Image   string    `json:"image" validate:"required"`
}

// CaseStudy is a real-world trail section that applied one or more methods.
// UsedMethods point at methods owned by the categories; they are never copies.
type CaseStudy struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	UsedMethods []*Method `json:"used_methods" validate:"min=1"`
	Notes       string    `json:"notes" validate:"required"`
	Image       string    `json:"image" validate:"required"`
}

// Org is a partner organization in the participate directory.
// Image, Website and Facebook are optional and rendered only when present.
type Org struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name" validate:"required"`
	Image      *string   `json:"image,omitempty"`
	Intro      string    `json:"intro" validate:"required"`
	Highlights []string  `json:"highlights" validate:"dive,required"`
	Website    *string   `json:"website,omitempty"`
	Facebook   *string   `json:"facebook,omitempty"`
}

// Highlight is a teaser card in a home chapter.
type Highlight struct {
	ID       uuid.UUID     `json:"id"`
	Title    string        `json:"title" validate:"required"`
	Subtitle string        `json:"subtitle"`
	Image    string        `json:"image"`
	Link     HighlightLink `json:"link" validate:"required"`
}

// Chapter is a titled group of highlights on the home tab.
// Highlights may be empty when derived from a selector that matched nothing.
type Chapter struct {
	ID         uuid.UUID    `json:"id"`
	Title      string       `json:"title" validate:"required"`
	Highlights []*Highlight `json:"highlights"`
}

// MethodNames returns the names of the case study's methods in order.
func (c *CaseStudy) MethodNames() []string {
	names := make([]string, 0, len(c.UsedMethods))
	for _, m := range c.UsedMethods {
		names = append(names, m.Name)
	}
	return names
}

// HasImage reports whether the org carries a non-empty image reference.
func (o *Org) HasImage() bool {
	return o.Image != nil && *o.Image != ""
}

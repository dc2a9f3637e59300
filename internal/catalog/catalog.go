// Package catalog provides the read-only content repository for the trail guidebook.
//
// A Repository is built once at startup from a seed document and never
// mutated afterwards. Accessors return fresh slices so callers cannot
// reorder repository state; the entities themselves are shared and must
// be treated as read-only.
package catalog

import (
	"slices"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/trail-guidebook/internal/selection"
	"github.com/jonathan/trail-guidebook/internal/types"
)

// Repository holds the fully wired content graph.
type Repository struct {
	intros      []*types.Intro
	categories  []*types.MethodCategory
	caseStudies []*types.CaseStudy
	orgs        []*types.Org
	chapters    []*types.Chapter
	featured    []string

	categoryByKey  map[string]*types.MethodCategory
	categoryOf     map[*types.Method]*types.MethodCategory
	highlightsByID map[string]*types.Highlight
}

// Intros returns the FAQ and information entries in display order.
func (r *Repository) Intros() []*types.Intro {
	return slices.Clone(r.intros)
}

// Categories returns the method categories in display order, each with
// its methods in authored order.
func (r *Repository) Categories() []*types.MethodCategory {
	return slices.Clone(r.categories)
}

// CaseStudies returns all case studies in authored order.
func (r *Repository) CaseStudies() []*types.CaseStudy {
	return slices.Clone(r.caseStudies)
}

// Orgs returns the participate directory.
func (r *Repository) Orgs() []*types.Org {
	return slices.Clone(r.orgs)
}

// Chapters returns the home chapters in display order.
func (r *Repository) Chapters() []*types.Chapter {
	return slices.Clone(r.chapters)
}

// Featured returns the allow-list used to derive featured chapters.
func (r *Repository) Featured() []string {
	return slices.Clone(r.featured)
}

// FeaturedCaseStudies returns the case studies selected by the allow-list.
func (r *Repository) FeaturedCaseStudies() []*types.CaseStudy {
	return selection.SelectFeatured(r.caseStudies, r.featured)
}

// Methods returns every method, flattened in category order.
func (r *Repository) Methods() []*types.Method {
	var methods []*types.Method
	for _, c := range r.categories {
		methods = append(methods, c.Methods...)
	}
	return methods
}

// Category returns the category with the given key.
func (r *Repository) Category(key string) (*types.MethodCategory, bool) {
	c, ok := r.categoryByKey[key]
	return c, ok
}

// CategoryOf returns the category that lists m.
func (r *Repository) CategoryOf(m *types.Method) (*types.MethodCategory, bool) {
	c, ok := r.categoryOf[m]
	return c, ok
}

// Highlight returns the highlight with the given id.
func (r *Repository) Highlight(id uuid.UUID) (*types.Highlight, bool) {
	h, ok := r.highlightsByID[id.String()]
	return h, ok
}

// FindHighlight looks a highlight up by a full id or a unique id prefix.
func (r *Repository) FindHighlight(query string) (*types.Highlight, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, &LookupError{Query: query}
	}
	if h, ok := r.highlightsByID[query]; ok {
		return h, nil
	}

	var matches []string
	for id := range r.highlightsByID {
		if strings.HasPrefix(id, query) {
			matches = append(matches, id)
		}
	}
	if len(matches) != 1 {
		sort.Strings(matches)
		return nil, &LookupError{Query: query, Matches: len(matches)}
	}
	return r.highlightsByID[matches[0]], nil
}

package catalog

import (
	"fmt"

	"github.com/jonathan/trail-guidebook/internal/seed"
	"github.com/jonathan/trail-guidebook/internal/selection"
	"github.com/jonathan/trail-guidebook/internal/types"
	"go.uber.org/zap"
)

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	featured    []string
	hasFeatured bool
	logger      *zap.Logger
}

// WithFeatured replaces the document's featured allow-list.
func WithFeatured(allowList []string) Option {
	return func(o *buildOptions) {
		o.featured = append([]string(nil), allowList...)
		o.hasFeatured = true
	}
}

// WithLogger sets the logger used while building.
func WithLogger(logger *zap.Logger) Option {
	return func(o *buildOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Build constructs the repository from a decoded seed document in a
// single pass. Every entity is created exactly once; case studies and
// links share the method, intro and case study pointers held by the
// repository. Any dangling reference or missing required field aborts
// the build with an *IntegrityError.
func Build(doc *seed.Document, opts ...Option) (*Repository, error) {
	if doc == nil {
		return nil, &IntegrityError{Path: "(root)", Message: "seed document is nil"}
	}

	o := buildOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasFeatured {
		o.featured = append([]string(nil), doc.Featured...)
	}

	r := &Repository{
		featured:       o.featured,
		categoryByKey:  make(map[string]*types.MethodCategory),
		categoryOf:     make(map[*types.Method]*types.MethodCategory),
		highlightsByID: make(map[string]*types.Highlight),
	}

	if err := r.buildIntros(doc.Intros); err != nil {
		return nil, err
	}
	if err := r.buildCategories(doc.Categories); err != nil {
		return nil, err
	}
	if err := r.buildCaseStudies(doc.CaseStudies); err != nil {
		return nil, err
	}
	if err := r.buildOrgs(doc.Orgs); err != nil {
		return nil, err
	}
	if err := r.buildChapters(doc.Chapters); err != nil {
		return nil, err
	}

	o.logger.Info("catalog built",
		zap.Int("intros", len(r.intros)),
		zap.Int("categories", len(r.categories)),
		zap.Int("methods", len(r.categoryOf)),
		zap.Int("case_studies", len(r.caseStudies)),
		zap.Int("orgs", len(r.orgs)),
		zap.Int("chapters", len(r.chapters)),
		zap.Strings("featured", r.featured),
	)

	return r, nil
}

// MustBuild is like Build but panics on error.
// Use it for datasets that ship with the binary.
func MustBuild(doc *seed.Document, opts ...Option) *Repository {
	r, err := Build(doc, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to build catalog: %v", err))
	}
	return r
}

func (r *Repository) buildIntros(records []seed.IntroRecord) error {
	r.intros = make([]*types.Intro, 0, len(records))
	for i, rec := range records {
		intro := &types.Intro{
			ID:      newID("intro/%d", i),
			Name:    rec.Name,
			Summary: rec.Summary,
			Image:   rec.Image,
		}
		if err := intro.Validate(); err != nil {
			return invalid(fmt.Sprintf("intros[%d]", i), err)
		}
		r.intros = append(r.intros, intro)
	}
	return nil
}

func (r *Repository) buildCategories(records []seed.CategoryRecord) error {
	r.categories = make([]*types.MethodCategory, 0, len(records))
	for i, rec := range records {
		path := fmt.Sprintf("categories[%d]", i)
		if _, dup := r.categoryByKey[rec.Key]; dup {
			return &IntegrityError{Path: path, Message: fmt.Sprintf("duplicate category key %q", rec.Key)}
		}

		category := &types.MethodCategory{
			ID:      newID("category/%s", rec.Key),
			Key:     rec.Key,
			Name:    rec.Name,
			Methods: make([]*types.Method, 0, len(rec.Methods)),
		}

		for j, mrec := range rec.Methods {
			method, err := buildMethod(rec.Key, j, mrec)
			if err != nil {
				return invalidAt(fmt.Sprintf("%s.methods[%d]", path, j), err)
			}
			category.Methods = append(category.Methods, method)
			r.categoryOf[method] = category
		}

		if err := category.Validate(); err != nil {
			return invalid(path, err)
		}

		r.categoryByKey[rec.Key] = category
		r.categories = append(r.categories, category)
	}
	return nil
}

func buildMethod(categoryKey string, index int, rec seed.MethodRecord) (*types.Method, error) {
	method := &types.Method{
		ID:        newID("method/%s/%d", categoryKey, index),
		Name:      rec.Name,
		Summary:   rec.Summary,
		Steps:     make([]types.Step, 0, len(rec.Steps)),
		Materials: append([]string(nil), rec.Materials...),
	}
	for k, srec := range rec.Steps {
		step := types.Step{
			ID:     newID("method/%s/%d/step/%d", categoryKey, index, k),
			Title:  srec.Title,
			Detail: srec.Detail,
		}
		if err := step.Validate(); err != nil {
			return nil, invalid(fmt.Sprintf("steps[%d]", k), err)
		}
		method.Steps = append(method.Steps, step)
	}
	if err := method.Validate(); err != nil {
		return nil, invalid("", err)
	}
	return method, nil
}

func (r *Repository) buildCaseStudies(records []seed.CaseStudyRecord) error {
	r.caseStudies = make([]*types.CaseStudy, 0, len(records))
	for i, rec := range records {
		path := fmt.Sprintf("case_studies[%d]", i)
		cs := &types.CaseStudy{
			ID:          newID("case/%d", i),
			Name:        rec.Name,
			Location:    rec.Location,
			UsedMethods: make([]*types.Method, 0, len(rec.Methods)),
			Notes:       rec.Notes,
			Image:       rec.Image,
		}
		for j, ref := range rec.Methods {
			m, err := r.method(ref.Category, ref.Index)
			if err != nil {
				return invalidAt(fmt.Sprintf("%s.methods[%d]", path, j), err)
			}
			cs.UsedMethods = append(cs.UsedMethods, m)
		}
		if err := cs.Validate(); err != nil {
			return invalid(path, err)
		}
		r.caseStudies = append(r.caseStudies, cs)
	}
	return nil
}

func (r *Repository) buildOrgs(records []seed.OrgRecord) error {
	r.orgs = make([]*types.Org, 0, len(records))
	for i, rec := range records {
		org := &types.Org{
			ID:         newID("org/%d", i),
			Name:       rec.Name,
			Image:      cloneString(rec.Image),
			Intro:      rec.Intro,
			Highlights: append([]string(nil), rec.Highlights...),
			Website:    cloneString(rec.Website),
			Facebook:   cloneString(rec.Facebook),
		}
		if err := org.Validate(); err != nil {
			return invalid(fmt.Sprintf("orgs[%d]", i), err)
		}
		r.orgs = append(r.orgs, org)
	}
	return nil
}

func (r *Repository) buildChapters(records []seed.ChapterRecord) error {
	r.chapters = make([]*types.Chapter, 0, len(records))
	for i, rec := range records {
		path := fmt.Sprintf("chapters[%d]", i)
		chapter := &types.Chapter{
			ID:    newID("chapter/%d", i),
			Title: rec.Title,
		}

		if rec.Featured {
			if len(rec.Highlights) > 0 {
				return &IntegrityError{Path: path, Message: "featured chapter must not author highlights"}
			}
			chapter.Highlights = r.featuredHighlights(i)
		} else {
			chapter.Highlights = make([]*types.Highlight, 0, len(rec.Highlights))
			for j, hrec := range rec.Highlights {
				hpath := fmt.Sprintf("%s.highlights[%d]", path, j)
				link, err := r.link(hrec.Link)
				if err != nil {
					return invalidAt(hpath+".link", err)
				}
				h := &types.Highlight{
					ID:       newID("highlight/%d/%d", i, j),
					Title:    hrec.Title,
					Subtitle: hrec.Subtitle,
					Image:    hrec.Image,
					Link:     link,
				}
				if err := h.Validate(); err != nil {
					return invalid(hpath, err)
				}
				chapter.Highlights = append(chapter.Highlights, h)
			}
		}

		if err := chapter.Validate(); err != nil {
			return invalid(path, err)
		}
		for _, h := range chapter.Highlights {
			r.highlightsByID[h.ID.String()] = h
		}
		r.chapters = append(r.chapters, chapter)
	}
	return nil
}

// featuredHighlights derives one highlight per featured case study.
func (r *Repository) featuredHighlights(chapterIndex int) []*types.Highlight {
	featured := selection.SelectFeatured(r.caseStudies, r.featured)
	highlights := make([]*types.Highlight, 0, len(featured))
	for j, cs := range featured {
		highlights = append(highlights, &types.Highlight{
			ID:       newID("highlight/%d/%d", chapterIndex, j),
			Title:    cs.Name,
			Subtitle: cs.Location,
			Image:    cs.Image,
			Link:     types.NewCaseStudyLink(cs),
		})
	}
	return highlights
}

func (r *Repository) link(rec seed.LinkRecord) (types.HighlightLink, error) {
	kind := types.LinkKind(rec.Kind)
	switch kind {
	case types.LinkParticipate:
		return types.NewParticipateLink(), nil
	case types.LinkMethod, types.LinkIntro, types.LinkCaseStudy:
	default:
		return nil, &IntegrityError{Message: fmt.Sprintf("unknown link kind %q", rec.Kind)}
	}

	if rec.Index == nil {
		return nil, &IntegrityError{Message: fmt.Sprintf("%s link is missing index", kind)}
	}
	index := *rec.Index

	switch kind {
	case types.LinkMethod:
		if rec.Category == "" {
			return nil, &IntegrityError{Message: "method link is missing category"}
		}
		m, err := r.method(rec.Category, index)
		if err != nil {
			return nil, err
		}
		return types.NewMethodLink(m), nil
	case types.LinkIntro:
		if index < 0 || index >= len(r.intros) {
			return nil, outOfRange("intro", index, len(r.intros))
		}
		return types.NewIntroLink(r.intros[index]), nil
	default:
		if index < 0 || index >= len(r.caseStudies) {
			return nil, outOfRange("case study", index, len(r.caseStudies))
		}
		return types.NewCaseStudyLink(r.caseStudies[index]), nil
	}
}

func (r *Repository) method(categoryKey string, index int) (*types.Method, error) {
	category, ok := r.categoryByKey[categoryKey]
	if !ok {
		return nil, &IntegrityError{Message: fmt.Sprintf("unknown category %q", categoryKey)}
	}
	if index < 0 || index >= len(category.Methods) {
		return nil, outOfRange(fmt.Sprintf("method in category %q", categoryKey), index, len(category.Methods))
	}
	return category.Methods[index], nil
}

func outOfRange(what string, index, size int) *IntegrityError {
	return &IntegrityError{Message: fmt.Sprintf("%s index %d out of range (have %d)", what, index, size)}
}

func invalid(path string, err error) *IntegrityError {
	return &IntegrityError{Path: path, Message: "missing or invalid field", Cause: err}
}

// invalidAt prefixes the path of a nested IntegrityError with the
// location of the record that contained it.
func invalidAt(path string, err error) *IntegrityError {
	ie, ok := err.(*IntegrityError)
	if !ok {
		return &IntegrityError{Path: path, Message: "invalid record", Cause: err}
	}
	out := *ie
	if out.Path == "" {
		out.Path = path
	} else {
		out.Path = path + "." + out.Path
	}
	return &out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

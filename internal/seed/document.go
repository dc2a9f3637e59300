// Package seed provides the trail guidebook dataset and the loader that decodes it.
package seed

// Document is the decoded seed dataset before it is wired into a catalog.
type Document struct {
	Intros      []IntroRecord     `yaml:"intros"`
	Categories  []CategoryRecord  `yaml:"categories"`
	CaseStudies []CaseStudyRecord `yaml:"case_studies"`
	Orgs        []OrgRecord       `yaml:"orgs"`
	Featured    []string          `yaml:"featured"`
	Chapters    []ChapterRecord   `yaml:"chapters"`
}

// IntroRecord is an FAQ or information entry.
type IntroRecord struct {
	Name    string `yaml:"name"`
	Summary string `yaml:"summary"`
	Image   string `yaml:"image"`
}

// CategoryRecord is a method category. Key is the handle used by MethodRef.
type CategoryRecord struct {
	Key     string         `yaml:"key"`
	Name    string         `yaml:"name"`
	Methods []MethodRecord `yaml:"methods"`
}

// MethodRecord is a construction method.
type MethodRecord struct {
	Name      string       `yaml:"name"`
	Summary   string       `yaml:"summary"`
	Steps     []StepRecord `yaml:"steps"`
	Materials []string     `yaml:"materials"`
}

// StepRecord is one step of a method.
type StepRecord struct {
	Title  string `yaml:"title"`
	Detail string `yaml:"detail"`
}

// MethodRef points at a method by its position inside a category.
type MethodRef struct {
	Category string `yaml:"category"`
	Index    int    `yaml:"index"`
}

// CaseStudyRecord is a real-world trail section.
type CaseStudyRecord struct {
	Name     string      `yaml:"name"`
	Location string      `yaml:"location"`
	Methods  []MethodRef `yaml:"methods"`
	Notes    string      `yaml:"notes"`
	Image    string      `yaml:"image"`
}

// OrgRecord is a partner organization. Nil pointers mean "absent".
type OrgRecord struct {
	Name       string   `yaml:"name"`
	Image      *string  `yaml:"image"`
	Intro      string   `yaml:"intro"`
	Highlights []string `yaml:"highlights"`
	Website    *string  `yaml:"website"`
	Facebook   *string  `yaml:"facebook"`
}

// ChapterRecord is a home-tab chapter. A featured chapter has its
// highlights derived from the featured case studies instead of authored.
type ChapterRecord struct {
	Title      string            `yaml:"title"`
	Featured   bool              `yaml:"featured"`
	Highlights []HighlightRecord `yaml:"highlights"`
}

// HighlightRecord is an authored teaser card.
type HighlightRecord struct {
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Image    string     `yaml:"image"`
	Link     LinkRecord `yaml:"link"`
}

// LinkRecord addresses a link target. Category is only used by method
// links; Index is ignored by participate links. A nil Index means the
// key was absent, which is an error for every other kind.
type LinkRecord struct {
	Kind     string `yaml:"kind"`
	Category string `yaml:"category"`
	Index    *int   `yaml:"index"`
}

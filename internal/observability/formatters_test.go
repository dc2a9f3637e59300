package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/trail-guidebook/internal/catalog"
	"github.com/jonathan/trail-guidebook/internal/navigation"
	"github.com/jonathan/trail-guidebook/internal/seed"
	"github.com/jonathan/trail-guidebook/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRepository(t *testing.T, opts ...catalog.Option) *catalog.Repository {
	t.Helper()
	doc, err := seed.Default()
	require.NoError(t, err)
	repo, err := catalog.Build(doc, opts...)
	require.NoError(t, err)
	return repo
}

func TestPrintBox_AlignsWideText(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("鋪面工法", "路跡整理\n"+strings.Repeat("卵石", 40))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, lipgloss.Width(line), "line %q", line)
	}
}

func TestPrintChapters(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	repo := defaultRepository(t)

	p.PrintChapters(repo.Chapters())
	output := buf.String()

	assert.Contains(t, output, "手作步道介紹與常見問答")
	assert.Contains(t, output, "精選案例")
	assert.Contains(t, output, "米棧古道")
	assert.Contains(t, output, "如何參與")
	assert.Contains(t, output, ShortID(repo.Chapters()[0].Highlights[0]))
	assert.NotContains(t, output, navigation.EmptyChapterText)
}

func TestPrintChapters_EmptyFeatured(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	repo := defaultRepository(t, catalog.WithFeatured(nil))

	p.PrintChapters(repo.Chapters())

	assert.Contains(t, buf.String(), navigation.EmptyChapterText)
}

func TestPrintCategories(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	repo := defaultRepository(t)

	p.PrintCategories(repo.Categories())
	output := buf.String()

	first := strings.Index(output, "路跡整理")
	second := strings.Index(output, "卵石鋪面")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Contains(t, output, "跨橋工法")
}

func TestPrintCaseStudies(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	m := &types.Method{Name: "砌石護坡"}
	p.PrintCaseStudies([]*types.CaseStudy{
		{Name: "小粗坑古道", Location: "新北市", UsedMethods: []*types.Method{m}},
	})
	output := buf.String()

	assert.Contains(t, output, "小粗坑古道")
	assert.Contains(t, output, "新北市")
	assert.Contains(t, output, "砌石護坡")
}

func TestPrintCaseStudies_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCaseStudies(nil)
	assert.Empty(t, buf.String())
}

func TestPrintOrgs_OmitsMissingLinks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	facebook := "https://example.com"
	bad := "not a url"
	p.PrintOrgs([]*types.Org{
		{Name: "測試協會", Intro: "介紹", Website: &bad, Facebook: &facebook, Highlights: []string{"志工假期"}},
	})
	output := buf.String()

	assert.Contains(t, output, "測試協會")
	assert.Contains(t, output, "志工假期")
	assert.Contains(t, output, "社群: https://example.com")
	assert.NotContains(t, output, "官網")
	assert.NotContains(t, output, "not a url")
	assert.NotContains(t, output, "圖片")
}

func TestPrintTarget(t *testing.T) {
	repo := defaultRepository(t)
	method := repo.Categories()[0].Methods[0]

	tests := []struct {
		name   string
		target navigation.ResolvedTarget
		want   []string
	}{
		{
			name:   "intro",
			target: navigation.ShowIntro{Intro: repo.Intros()[2]},
			want:   []string{"常見問答"},
		},
		{
			name:   "method",
			target: navigation.ShowMethod{Method: method},
			want:   []string{"路跡整理", "材料", "1. " + method.Steps[0].Title},
		},
		{
			name:   "case study",
			target: navigation.ShowCaseStudy{CaseStudy: repo.CaseStudies()[1]},
			want:   []string{"米棧古道", "地點", "橫木導流棒"},
		},
		{
			name:   "participate",
			target: navigation.ShowParticipateDirectory{},
			want:   []string{"臺灣千里步道協會", "臺大山徑行動社", "官網"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).PrintTarget(tt.target, repo.Orgs())
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestPrintDetails_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintIntro(nil)
	p.PrintMethod(nil)
	p.PrintCaseStudy(nil)
	p.PrintSummary("x", nil)

	assert.Empty(t, buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSummary("embedded", defaultRepository(t))
	output := buf.String()

	assert.Contains(t, output, "SEED OK: embedded")
	assert.Contains(t, output, "Case studies:  8")
	assert.Contains(t, output, "Featured:      4")
}

package navigation

import (
	"testing"

	"github.com/jonathan/trail-guidebook/internal/catalog"
	"github.com/jonathan/trail-guidebook/internal/seed"
	"github.com/jonathan/trail-guidebook/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_PassesPayloadThrough(t *testing.T) {
	method := &types.Method{Name: "砌石導流棒"}
	intro := &types.Intro{Name: "常見問答"}
	cs := &types.CaseStudy{Name: "米棧古道"}

	target := Resolve(types.NewMethodLink(method))
	require.IsType(t, ShowMethod{}, target)
	assert.Same(t, method, target.(ShowMethod).Method)
	assert.Equal(t, TargetMethod, target.Kind())
	assert.Equal(t, "砌石導流棒", target.Title())

	target = Resolve(types.NewIntroLink(intro))
	require.IsType(t, ShowIntro{}, target)
	assert.Same(t, intro, target.(ShowIntro).Intro)
	assert.Equal(t, "常見問答", target.Title())

	target = Resolve(types.NewCaseStudyLink(cs))
	require.IsType(t, ShowCaseStudy{}, target)
	assert.Same(t, cs, target.(ShowCaseStudy).CaseStudy)
	assert.Equal(t, TargetCaseStudy, target.Kind())
}

func TestResolve_ParticipateHasNoPayload(t *testing.T) {
	target := Resolve(types.NewParticipateLink())
	assert.Equal(t, ShowParticipateDirectory{}, target)
	assert.Equal(t, TargetParticipate, target.Kind())

	// independent of any repository
	assert.Equal(t, target, Resolve(types.ParticipateLink{}))
}

func TestResolve_KindMatchesLinkKind(t *testing.T) {
	doc, err := seed.Default()
	require.NoError(t, err)
	repo, err := catalog.Build(doc)
	require.NoError(t, err)

	want := map[types.LinkKind]TargetKind{
		types.LinkMethod:      TargetMethod,
		types.LinkIntro:       TargetIntro,
		types.LinkCaseStudy:   TargetCaseStudy,
		types.LinkParticipate: TargetParticipate,
	}

	var resolved int
	for _, chapter := range repo.Chapters() {
		for _, h := range chapter.Highlights {
			target := Resolve(h.Link)
			require.NotNil(t, target, h.Title)
			assert.Equal(t, want[h.Link.Kind()], target.Kind(), h.Title)
			resolved++
		}
	}
	assert.Equal(t, 9, resolved)
}

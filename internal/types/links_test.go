//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingVisitor struct {
	calls []string
}

func (r *recordingVisitor) VisitMethod(m *Method)       { r.calls = append(r.calls, "method:"+m.Name) }
func (r *recordingVisitor) VisitIntro(i *Intro)         { r.calls = append(r.calls, "intro:"+i.Name) }
func (r *recordingVisitor) VisitCaseStudy(c *CaseStudy) { r.calls = append(r.calls, "case:"+c.Name) }
func (r *recordingVisitor) VisitParticipate()           { r.calls = append(r.calls, "participate") }

func TestHighlightLink_AcceptDispatchesByVariant(t *testing.T) {
	m := sampleMethod()
	intro := &Intro{Name: "常見問答"}
	cs := &CaseStudy{Name: "米棧古道"}

	links := []HighlightLink{
		NewMethodLink(m),
		NewIntroLink(intro),
		NewCaseStudyLink(cs),
		NewParticipateLink(),
	}

	v := &recordingVisitor{}
	for _, l := range links {
		l.Accept(v)
	}

	assert.Equal(t, []string{"method:路跡整理", "intro:常見問答", "case:米棧古道", "participate"}, v.calls)
}

func TestHighlightLink_Kind(t *testing.T) {
	assert.Equal(t, LinkMethod, NewMethodLink(sampleMethod()).Kind())
	assert.Equal(t, LinkIntro, NewIntroLink(&Intro{}).Kind())
	assert.Equal(t, LinkCaseStudy, NewCaseStudyLink(&CaseStudy{}).Kind())
	assert.Equal(t, LinkParticipate, NewParticipateLink().Kind())
}

func TestHighlight_MarshalJSON_ReferencesTargetByID(t *testing.T) {
	intro := &Intro{ID: uuid.New(), Name: "什麼是手作步道？", Summary: "long text", Image: "01"}
	h := Highlight{ID: uuid.New(), Title: "什麼是手作步道？", Link: NewIntroLink(intro)}

	data, err := json.Marshal(h)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	link, ok := decoded["link"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "intro", link["kind"])
	assert.Equal(t, intro.ID.String(), link["target_id"])
	assert.NotContains(t, string(data), "long text")
}

func TestParticipateLink_MarshalJSON_HasNoTarget(t *testing.T) {
	data, err := json.Marshal(NewParticipateLink())
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"participate"}`, string(data))
}

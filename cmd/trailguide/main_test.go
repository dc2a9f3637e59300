package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/trail-guidebook/internal/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI in-process and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("TRAILGUIDE_LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const tinySeed = `
intros:
  - name: 常見問答
    summary: 內容
    image: "02"
categories:
  - key: paving
    name: 鋪面工法
    methods:
      - name: 路跡整理
        summary: 整理
        steps:
          - {title: 清理, detail: 移除雜物}
        materials: [在地土料]
case_studies:
  - name: 東吉嶼環島步道
    location: 澎湖縣
    methods:
      - {category: paving, index: 0}
    notes: 筆記
    image: 東吉
orgs: []
featured: [東吉]
chapters:
  - title: 精選案例
    featured: true
`

func TestHomeCommand(t *testing.T) {
	out, _, err := run(t, "home")
	require.NoError(t, err)

	assert.Contains(t, out, "手作步道介紹與常見問答")
	assert.Contains(t, out, "米棧古道")
	assert.Contains(t, out, "嘉明湖國家步道")
	assert.Contains(t, out, "如何參與")
}

func TestHomeCommand_JSONReferencesTargetsByID(t *testing.T) {
	out, _, err := run(t, "home", "--json")
	require.NoError(t, err)

	var chapters []struct {
		Title      string `json:"title"`
		Highlights []struct {
			Title string `json:"title"`
			Link  struct {
				Kind     string `json:"kind"`
				TargetID string `json:"target_id"`
			} `json:"link"`
		} `json:"highlights"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &chapters))
	require.Len(t, chapters, 3)
	require.Len(t, chapters[1].Highlights, 4)
	assert.Equal(t, "case_study", chapters[1].Highlights[0].Link.Kind)
	assert.NotEmpty(t, chapters[1].Highlights[0].Link.TargetID)
	assert.Equal(t, "participate", chapters[2].Highlights[0].Link.Kind)
	assert.Empty(t, chapters[2].Highlights[0].Link.TargetID)
}

func TestHomeCommand_FeaturedFromEnvironment(t *testing.T) {
	t.Setenv("TRAILGUIDE_FEATURED", "")
	out, _, err := run(t, "home")
	require.NoError(t, err)
	assert.Contains(t, out, navigation.EmptyChapterText)
}

func TestHomeCommand_FeaturedFromConfig(t *testing.T) {
	cfg := writeFile(t, "config.json", `{"featured": ["石角嶺"]}`)
	out, _, err := run(t, "--config", cfg, "cases", "--featured")
	require.NoError(t, err)

	assert.Contains(t, out, "石角嶺古道")
	assert.NotContains(t, out, "米棧古道")
}

func TestMethodsCommand(t *testing.T) {
	out, _, err := run(t, "methods")
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, "路跡整理"), strings.Index(out, "卵石鋪面"))
	assert.Contains(t, out, "跨橋工法")

	out, _, err = run(t, "methods", "--category", "bridge")
	require.NoError(t, err)
	assert.Contains(t, out, "橫木半邊橋")
	assert.NotContains(t, out, "路跡整理")

	_, _, err = run(t, "methods", "-c", "tunnel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestCasesCommand(t *testing.T) {
	out, _, err := run(t, "cases")
	require.NoError(t, err)
	for _, name := range []string{"小粗坑古道", "文山森林公園步道", "外挖子山步道"} {
		assert.Contains(t, out, name)
	}

	out, _, err = run(t, "cases", "--featured", "--json")
	require.NoError(t, err)
	var cases []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &cases))
	var names []string
	for _, c := range cases {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"米棧古道", "東吉嶼環島步道", "梅峰農場步道", "嘉明湖國家步道"}, names)
}

func TestParticipateCommand_JSONActions(t *testing.T) {
	out, _, err := run(t, "participate", "--json")
	require.NoError(t, err)

	var orgs []struct {
		Name    string `json:"name"`
		Actions []struct {
			Kind string `json:"kind"`
			URL  string `json:"url"`
		} `json:"actions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &orgs))
	require.Len(t, orgs, 2)
	assert.Equal(t, "臺灣千里步道協會", orgs[0].Name)
	require.Len(t, orgs[0].Actions, 2)
	assert.Equal(t, "website", orgs[0].Actions[0].Kind)
	assert.Equal(t, "social", orgs[0].Actions[1].Kind)
}

func TestOpenCommand(t *testing.T) {
	out, _, err := run(t, "home", "--json")
	require.NoError(t, err)

	var chapters []struct {
		Highlights []struct {
			ID string `json:"id"`
		} `json:"highlights"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &chapters))
	faq := chapters[0].Highlights[2].ID
	participate := chapters[2].Highlights[0].ID

	out, _, err = run(t, "open", faq[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "常見問答")

	out, _, err = run(t, "open", participate, "--json")
	require.NoError(t, err)
	var view struct {
		Kind string `json:"kind"`
		Tab  string `json:"tab"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "participate", view.Kind)
	assert.Equal(t, "participate", view.Tab)

	_, _, err = run(t, "open", "zzzzzzzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no highlight matches")
}

func TestValidateCommand(t *testing.T) {
	out, _, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "SEED OK: embedded")

	good := writeFile(t, "good.yaml", tinySeed)
	dangling := writeFile(t, "dangling.yaml", strings.Replace(tinySeed, "{category: paving, index: 0}", "{category: paving, index: 4}", 1))
	malformed := writeFile(t, "malformed.yaml", "intros: [")

	out, errOut, err := run(t, "validate", good, dangling, malformed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 seed files failed validation")
	assert.Equal(t, 1, strings.Count(out, "SEED OK"))
	assert.Contains(t, out, "Case studies:  1")
	assert.Contains(t, errOut, dangling)
	assert.Contains(t, errOut, "out of range")
	assert.Contains(t, errOut, malformed)
}

func TestSeedFlagOverridesEmbeddedDataset(t *testing.T) {
	path := writeFile(t, "seed.yaml", tinySeed)

	out, _, err := run(t, "--seed", path, "cases")
	require.NoError(t, err)
	assert.Contains(t, out, "東吉嶼環島步道")
	assert.NotContains(t, out, "米棧古道")
}

func TestInvalidConfigAborts(t *testing.T) {
	cfg := writeFile(t, "config.json", `{"featured": ["東吉", ""]}`)
	_, _, err := run(t, "--config", cfg, "home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "featured")

	_, _, err = run(t, "--seed", "/nonexistent/seed.yaml", "home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed file not found")
}

package scenario_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/app/browser"
	"github.com/bnema/tabshell/internal/cli/scenario"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/engine/memory"
	"github.com/bnema/tabshell/internal/infrastructure/screenshot"
	"github.com/bnema/tabshell/internal/logging"
)

func testCtx() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

const searchReshow = `
name: search and come back
home_url: https://home.example/
search_url: https://search.example/search
restore:
  active: 0
  tabs:
    - url: https://a.example/
      title: A
steps:
  - action: load
    input: golang
    print: true
  - action: back
`

func TestParse(t *testing.T) {
	sc, err := scenario.Parse(strings.NewReader(searchReshow))
	require.NoError(t, err)

	assert.Equal(t, "search and come back", sc.Name)
	require.NotNil(t, sc.Restore)
	assert.Len(t, sc.Restore.Tabs, 1)
	require.Len(t, sc.Steps, 2)
	assert.Equal(t, scenario.ActionLoad, sc.Steps[0].Action)
	assert.True(t, sc.Steps[0].Print)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no steps", "name: x\n", "no steps"},
		{"unknown action", "steps:\n  - action: fly\n", `unknown action "fly"`},
		{"load without input", "steps:\n  - action: load\n", "load needs input"},
		{"unknown target", "steps:\n  - action: load\n    input: a\n    target: side\n", `unknown target "side"`},
		{"unknown kind", "steps:\n  - action: open_from_page\n    kind: tiny\n", `unknown kind "tiny"`},
		{"unknown field", "steps:\n  - action: back\n    speed: 2\n", "speed"},
		{"active out of range", "restore:\n  active: 3\n  tabs:\n    - url: https://a.example/\nsteps:\n  - action: back\n", "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scenario.Parse(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_SearchIsReshownAfterBack(t *testing.T) {
	sc, err := scenario.Parse(strings.NewReader(searchReshow))
	require.NoError(t, err)

	frames, err := scenario.Run(testCtx(), sc, scenario.Options{IDs: memory.SequentialIDs("t")})
	require.NoError(t, err)
	require.Len(t, frames, 2)

	searched := frames[0]
	require.Len(t, searched.Tabs, 2)
	assert.True(t, searched.Ready)
	assert.Equal(t, entity.DisplayedInfo{Mode: entity.DisplayModeQuery, Text: "golang"}, searched.Active.Displayed)
	assert.Equal(t, entity.TabID("t1"), searched.Tabs[1].Data.ParentTabID)
	assert.Equal(t, "https://a.example/", searched.Tabs[0].URL)
	assert.Equal(t, "A", searched.Tabs[0].Title)
	require.Len(t, searched.Searches, 1)
	assert.Equal(t, "golang", searched.Searches[0].SearchQuery)

	back := frames[1]
	require.Len(t, back.Tabs, 1)
	assert.Equal(t, entity.TabID("t1"), back.Tabs[0].ID)
	assert.True(t, back.LazyTab)
	assert.Equal(t, "golang", back.URLBar.Text)
}

func TestRun_ScreenshotsAreStored(t *testing.T) {
	dir := t.TempDir()
	sc, err := scenario.Parse(strings.NewReader(`
home_url: https://home.example/
search_url: https://search.example/search
steps:
  - action: navigate
    input: https://b.example/
  - action: screenshot
`))
	require.NoError(t, err)

	frames, err := scenario.Run(testCtx(), sc, scenario.Options{
		Browser: browser.Options{Screenshots: screenshot.NewStore(dir)},
		IDs:     memory.SequentialIDs("t"),
	})
	require.NoError(t, err)
	require.Len(t, frames, 1)

	assert.Equal(t, "https://b.example/", frames[0].Active.URL)
	assert.FileExists(t, filepath.Join(dir, "tab_t1.jpg"))
}

func TestRun_StepErrorIsReported(t *testing.T) {
	sc, err := scenario.Parse(strings.NewReader(`
home_url: https://home.example/
steps:
  - action: select
    tab: 4
`))
	require.NoError(t, err)

	frames, err := scenario.Run(testCtx(), sc, scenario.Options{})
	require.NoError(t, err)
	require.Len(t, frames, 1)
	require.Error(t, frames[0].Err)
	assert.Contains(t, frames[0].Err.Error(), "out of range")
	assert.Len(t, frames[0].Tabs, 1, "home tab is opened for an empty session")
}

func TestRun_WaitsForRestoreCompletion(t *testing.T) {
	sc, err := scenario.Parse(strings.NewReader(`
home_url: https://home.example/
search_url: https://search.example/search
restore:
  tabs:
    - url: https://a.example/
steps:
  - action: load
    input: https://b.example/
    target: new
    print: true
  - action: complete_restore
`))
	require.NoError(t, err)

	frames, err := scenario.Run(testCtx(), sc, scenario.Options{IDs: memory.SequentialIDs("t")})
	require.NoError(t, err)
	require.Len(t, frames, 2)

	assert.False(t, frames[0].Ready)
	assert.Len(t, frames[0].Tabs, 1, "load is queued until restoration completes")
	assert.True(t, frames[1].Ready)
	assert.Len(t, frames[1].Tabs, 2)
}

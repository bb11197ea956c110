package browser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/app/browser"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/engine/memory"
)

func TestRestorationReconciler_RefreshesAnnouncedTabs(t *testing.T) {
	engine := memory.NewBrowser(memory.WithRestoring(), memory.WithIDGenerator(memory.SequentialIDs("t")))
	engine.Restore([]memory.RestoredTab{
		{URL: "https://a.example/", Title: "A"},
		{URL: "https://b.example/", Title: "B"},
	}, 1)

	// Announced before the engine filled in the page state.
	registry := browser.NewTabRegistry()
	registry.Add("t1", "", "", false, entity.PersistedData{})
	registry.Add("t2", "", "", false, entity.PersistedData{})

	finished := 0
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	reconciler := browser.NewRestorationReconciler(testContext(), engine, registry,
		browser.NewSearchNavigationLedger(nil, nil),
		browser.RestoreHooks{AfterRestoreCompleted: func() { finished++ }},
		func() time.Time { return now })

	require.True(t, reconciler.OnRestoreCompleted())
	assert.False(t, reconciler.OnRestoreCompleted())
	assert.Equal(t, 1, finished)

	a, _ := registry.Get("t1")
	assert.Equal(t, "https://a.example/", a.URL)
	assert.Equal(t, "A", a.Title)
	b, _ := registry.Get("t2")
	assert.Equal(t, "B", b.Title)
	assert.Equal(t, now.UnixMilli(), b.Data.LastActiveMs)

	id, ok := registry.FindTabWithSimilarURL("https://b.example")
	require.True(t, ok)
	assert.Equal(t, entity.TabID("t2"), id)
}

func TestRestorationReconciler_ResetStartsNewCycle(t *testing.T) {
	registry := browser.NewTabRegistry()
	finished := 0
	reconciler := browser.NewRestorationReconciler(testContext(), nil, registry,
		browser.NewSearchNavigationLedger(nil, nil),
		browser.RestoreHooks{AfterRestoreCompleted: func() { finished++ }},
		time.Now)

	assert.False(t, reconciler.OnRestoreCompleted(), "nothing to reconcile without a browser")

	first := memory.NewBrowser(memory.WithIDGenerator(memory.SequentialIDs("a")))
	first.Restore([]memory.RestoredTab{{URL: "https://a.example/"}}, 0)
	reconciler.Reset(first)
	require.True(t, reconciler.OnRestoreCompleted())

	second := memory.NewBrowser(memory.WithIDGenerator(memory.SequentialIDs("b")))
	second.Restore([]memory.RestoredTab{{URL: "https://b.example/"}}, 0)
	registry.Clear()
	reconciler.Reset(second)
	require.True(t, reconciler.OnRestoreCompleted())

	assert.Equal(t, 2, finished)
	assert.Equal(t, []entity.TabID{"b1"}, registry.IDs())
}

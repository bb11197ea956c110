package browser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/app/browser"
	"github.com/bnema/tabshell/internal/domain/entity"
)

func ids(tabs []entity.TabInfo) []entity.TabID {
	out := make([]entity.TabID, 0, len(tabs))
	for _, tab := range tabs {
		out = append(out, tab.ID)
	}
	return out
}

func selectedIDs(tabs []entity.TabInfo) []entity.TabID {
	var out []entity.TabID
	for _, tab := range tabs {
		if tab.IsSelected {
			out = append(out, tab.ID)
		}
	}
	return out
}

func TestTabRegistry_OrderPreservation(t *testing.T) {
	r := browser.NewTabRegistry()
	r.Add("A", "https://a.example/", "A", false, entity.PersistedData{})
	r.Add("B", "https://b.example/", "B", false, entity.PersistedData{})
	r.Add("C", "https://c.example/", "C", false, entity.PersistedData{})

	_, ok := r.Remove("B")
	require.True(t, ok)

	assert.Equal(t, []entity.TabID{"A", "C"}, ids(r.OrderedTabs().Get()))
	assert.Equal(t, 1, r.IndexOf("C"))
}

func TestTabRegistry_AddIsIdempotent(t *testing.T) {
	r := browser.NewTabRegistry()
	assert.True(t, r.Add("A", "", "", false, entity.PersistedData{}))
	assert.False(t, r.Add("A", "https://other.example/", "other", true, entity.PersistedData{}))

	info, ok := r.Get("A")
	require.True(t, ok)
	assert.Empty(t, info.URL)
	assert.Equal(t, 1, r.Len())
}

func TestTabRegistry_ExclusiveSelection(t *testing.T) {
	r := browser.NewTabRegistry()
	r.Add("A", "", "", true, entity.PersistedData{})
	r.Add("B", "", "", false, entity.PersistedData{})
	r.Add("C", "", "", false, entity.PersistedData{})

	r.UpdateSelected("B")
	assert.Equal(t, []entity.TabID{"B"}, selectedIDs(r.Ordered()))

	r.UpdateSelected("C")
	r.Remove("A")
	assert.Equal(t, []entity.TabID{"C"}, selectedIDs(r.Ordered()))

	r.UpdateSelected("")
	assert.Empty(t, selectedIDs(r.Ordered()))
}

func TestTabRegistry_PublishesOncePerChange(t *testing.T) {
	r := browser.NewTabRegistry()
	r.Add("A", "", "", true, entity.PersistedData{})
	r.Add("B", "", "", false, entity.PersistedData{})

	publishes := 0
	r.OrderedTabs().Subscribe(func([]entity.TabInfo) { publishes++ })

	r.UpdateSelected("B")
	assert.Equal(t, 1, publishes)

	r.UpdateSelected("B")
	assert.False(t, r.UpdateTitle("B", ""))
	assert.False(t, r.UpdateURL("missing", "https://x.example/"))
	assert.Equal(t, 1, publishes)

	assert.True(t, r.UpdateTitle("B", "Bee"))
	assert.Equal(t, 2, publishes)
}

func TestTabRegistry_UpdatesFlags(t *testing.T) {
	r := browser.NewTabRegistry()
	r.Add("A", "", "", false, entity.PersistedData{})

	assert.True(t, r.UpdateIsCrashed("A", true))
	assert.True(t, r.UpdateIsClosing("A", true))
	assert.True(t, r.SetPersistedData("A", entity.PersistedData{ParentTabID: "P", OpenType: entity.OpenTypeChildTab}))

	info, _ := r.Get("A")
	assert.True(t, info.IsCrashed)
	assert.True(t, info.IsClosing)
	assert.Equal(t, entity.TabID("P"), info.Data.ParentTabID)

	assert.True(t, r.HasNoTabs(true))
	assert.False(t, r.HasNoTabs(false))
}

func TestTabRegistry_IsParentInList(t *testing.T) {
	r := browser.NewTabRegistry()
	r.Add("A", "", "", false, entity.PersistedData{})
	r.Add("B", "", "", false, entity.PersistedData{ParentTabID: "A", OpenType: entity.OpenTypeChildTab})
	r.Add("C", "", "", false, entity.PersistedData{ParentTabID: "A"})

	assert.True(t, r.IsParentInList("B"))
	assert.False(t, r.IsParentInList("C"), "default open type is not a child tab")

	r.Remove("A")
	assert.False(t, r.IsParentInList("B"))
}

func TestTabRegistry_FindTabWithSimilarURL(t *testing.T) {
	r := browser.NewTabRegistry()
	r.Add("A", "https://en.m.wikipedia.org/wiki/Go", "", false, entity.PersistedData{})
	r.Add("B", "https://www.example.com/", "", false, entity.PersistedData{})

	id, ok := r.FindTabWithSimilarURL("https://en.wikipedia.org/wiki/Go")
	require.True(t, ok)
	assert.Equal(t, entity.TabID("A"), id)

	id, ok = r.FindTabWithSimilarURL("http://example.com")
	require.True(t, ok)
	assert.Equal(t, entity.TabID("B"), id)

	r.UpdateIsClosing("B", true)
	_, ok = r.FindTabWithSimilarURL("http://example.com")
	assert.False(t, ok)

	r.UpdateURL("A", "https://go.dev/")
	_, ok = r.FindTabWithSimilarURL("https://en.wikipedia.org/wiki/Go")
	assert.False(t, ok)
}

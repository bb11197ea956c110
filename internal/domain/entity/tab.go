package entity

import "slices"

// TabID is the opaque identity the engine assigns to a tab.
// It is never reused while the tab is alive.
type TabID string

// TabInfo is the registry's snapshot of a single tab.
type TabInfo struct {
	ID         TabID
	URL        string // Empty when the tab has not committed a URL yet
	Title      string
	IsSelected bool
	IsCrashed  bool
	IsClosing  bool
	Data       PersistedData
}

// IsChildTab reports whether the tab was opened from another tab.
func (t TabInfo) IsChildTab() bool {
	return t.Data.OpenType == OpenTypeChildTab
}

// SelectedTab returns the selected tab in tabs, if any.
func SelectedTab(tabs []TabInfo) (TabInfo, bool) {
	i := slices.IndexFunc(tabs, func(t TabInfo) bool { return t.IsSelected })
	if i < 0 {
		return TabInfo{}, false
	}
	return tabs[i], true
}

// TabInfosEqual compares two ordered tab lists by value.
func TabInfosEqual(a, b []TabInfo) bool {
	return slices.Equal(a, b)
}

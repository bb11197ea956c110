// Package memory is an in-process browsing engine. It has no renderer:
// navigations complete synchronously and screenshots are placeholder bytes.
// It backs the simulate command and the tab lifecycle tests.
package memory

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
)

// Option configures a Browser.
type Option func(*Browser)

// WithRestoring starts the browser in the restoring state.
// CompleteRestore ends it.
func WithRestoring() Option {
	return func(b *Browser) { b.restoring = true }
}

// WithIDGenerator replaces the uuid tab id generator.
func WithIDGenerator(next func() entity.TabID) Option {
	return func(b *Browser) { b.newID = next }
}

// WithScreenshotter replaces the placeholder screenshot renderer.
func WithScreenshotter(fn func(tab *Tab, scale float64) ([]byte, error)) Option {
	return func(b *Browser) { b.screenshot = fn }
}

// SequentialIDs returns a generator yielding prefix1, prefix2, ...
func SequentialIDs(prefix string) func() entity.TabID {
	var n atomic.Int64
	return func() entity.TabID {
		return entity.TabID(fmt.Sprintf("%s%d", prefix, n.Add(1)))
	}
}

// Browser implements port.Browser. It is not safe for concurrent use;
// drive it from a single goroutine such as a dispatch.Loop.
type Browser struct {
	tabs      []*Tab
	active    *Tab
	destroyed bool
	restoring bool

	listCalls    []*port.TabListCallbacks
	restoreCalls []*port.RestoreCallbacks

	newID      func() entity.TabID
	screenshot func(tab *Tab, scale float64) ([]byte, error)
}

var _ port.Browser = (*Browser)(nil)

// NewBrowser creates an empty browser.
func NewBrowser(opts ...Option) *Browser {
	b := &Browser{
		newID: func() entity.TabID { return entity.TabID(uuid.NewString()) },
		screenshot: func(tab *Tab, _ float64) ([]byte, error) {
			return []byte("thumbnail:" + tab.DisplayURL()), nil
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Browser) IsDestroyed() bool              { return b.destroyed }
func (b *Browser) IsRestoringPreviousState() bool { return b.restoring }

// Tabs returns the live tabs in creation order.
func (b *Browser) Tabs() []port.Tab {
	tabs := make([]port.Tab, 0, len(b.tabs))
	for _, t := range b.tabs {
		tabs = append(tabs, t)
	}
	return tabs
}

// ActiveTab returns the active tab or nil.
func (b *Browser) ActiveTab() port.Tab {
	if b.active == nil {
		return nil
	}
	return b.active
}

// Tab returns the live tab with id.
func (b *Browser) Tab(id entity.TabID) (*Tab, bool) {
	for _, t := range b.tabs {
		if t.id == id {
			return t, true
		}
	}
	return nil, false
}

// CreateTab adds a blank tab and announces it.
func (b *Browser) CreateTab() port.Tab {
	if b.destroyed {
		return nil
	}
	return b.addTab(nil, nil)
}

// addTab creates a tab, lets setup fill its state and announces it.
func (b *Browser) addTab(data map[string]string, setup func(t *Tab)) *Tab {
	t := newTab(b, b.newID(), data)
	if setup != nil {
		setup(t)
	}
	b.tabs = append(b.tabs, t)
	for _, cb := range slices.Clone(b.listCalls) {
		if cb.OnTabAdded != nil {
			cb.OnTabAdded(t)
		}
	}
	return t
}

// SetActiveTab activates tab and announces the change.
func (b *Browser) SetActiveTab(tab port.Tab) {
	if b.destroyed {
		return
	}
	var next *Tab
	if tab != nil {
		t, ok := b.Tab(tab.ID())
		if !ok {
			return
		}
		next = t
	}
	if next == b.active {
		return
	}
	b.active = next
	b.fireActiveTabChanged()
}

func (b *Browser) fireActiveTabChanged() {
	active := b.ActiveTab()
	for _, cb := range slices.Clone(b.listCalls) {
		if cb.OnActiveTabChanged != nil {
			cb.OnActiveTabChanged(active)
		}
	}
}

func (b *Browser) RegisterTabListCallbacks(cb *port.TabListCallbacks) {
	if !slices.Contains(b.listCalls, cb) {
		b.listCalls = append(b.listCalls, cb)
	}
}

func (b *Browser) UnregisterTabListCallbacks(cb *port.TabListCallbacks) {
	b.listCalls = slices.DeleteFunc(b.listCalls, func(c *port.TabListCallbacks) bool { return c == cb })
}

func (b *Browser) RegisterRestoreCallbacks(cb *port.RestoreCallbacks) {
	if !slices.Contains(b.restoreCalls, cb) {
		b.restoreCalls = append(b.restoreCalls, cb)
	}
}

func (b *Browser) UnregisterRestoreCallbacks(cb *port.RestoreCallbacks) {
	b.restoreCalls = slices.DeleteFunc(b.restoreCalls, func(c *port.RestoreCallbacks) bool { return c == cb })
}

// RestoredTab describes a tab of a previous session.
type RestoredTab struct {
	URL   string
	Title string
	Data  map[string]string
	// History lists the back/forward entries; URL is appended if empty.
	History []string
}

// Restore announces the previous session's tabs and activates tabs[active].
// A negative active leaves no tab active.
func (b *Browser) Restore(tabs []RestoredTab, active int) []*Tab {
	restored := make([]*Tab, 0, len(tabs))
	for _, rt := range tabs {
		t := b.addTab(rt.Data, func(t *Tab) {
			history := rt.History
			if len(history) == 0 && rt.URL != "" {
				history = []string{rt.URL}
			}
			for _, u := range history {
				t.entries = append(t.entries, entry{url: u, title: u})
			}
			t.index = len(t.entries) - 1
			t.url = rt.URL
			t.title = rt.Title
		})
		restored = append(restored, t)
	}
	if active >= 0 && active < len(restored) {
		b.SetActiveTab(restored[active])
	}
	return restored
}

// CompleteRestore leaves the restoring state and fires OnRestoreCompleted.
func (b *Browser) CompleteRestore() {
	b.restoring = false
	for _, cb := range slices.Clone(b.restoreCalls) {
		if cb.OnRestoreCompleted != nil {
			cb.OnRestoreCompleted()
		}
	}
}

// Destroy tears the browser down. Every tab becomes destroyed.
func (b *Browser) Destroy() {
	b.destroyed = true
	for _, t := range b.tabs {
		t.destroyed = true
	}
	b.tabs = nil
	b.active = nil
}

// OpenFromPage simulates parent's page opening uri in a new tab.
func (b *Browser) OpenFromPage(parent *Tab, kind port.NewTabType, uri string) *Tab {
	if b.destroyed || parent.destroyed {
		return nil
	}
	child := b.addTab(nil, nil)
	for _, cb := range slices.Clone(parent.tabCalls) {
		if cb.OnNewTab != nil {
			cb.OnNewTab(child, kind)
		}
	}
	if uri != "" {
		child.Navigate(uri)
	}
	return child
}

func (b *Browser) removeTab(t *Tab) {
	idx := slices.Index(b.tabs, t)
	if idx < 0 {
		return
	}
	b.tabs = slices.Delete(b.tabs, idx, idx+1)
	t.destroyed = true
	if b.active == t {
		b.active = nil
		b.fireActiveTabChanged()
	}
	for _, cb := range slices.Clone(b.listCalls) {
		if cb.OnTabRemoved != nil {
			cb.OnTabRemoved(t)
		}
	}
}

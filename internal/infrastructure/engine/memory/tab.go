package memory

import (
	"errors"
	"maps"
	"slices"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
)

// ErrTabDestroyed is returned by screenshot requests on a closed tab.
var ErrTabDestroyed = errors.New("tab destroyed")

type entry struct {
	url   string
	title string
}

// Tab implements port.Tab.
type Tab struct {
	browser *Browser
	id      entity.TabID
	nav     *Navigation

	url       string
	title     string
	data      map[string]string
	entries   []entry
	index     int
	desktopUA bool
	destroyed bool

	// AutoReloadAfterCrash makes WillAutomaticallyReloadAfterCrash report true.
	AutoReloadAfterCrash bool

	tabCalls []*port.TabCallbacks
	navCalls []*port.NavigationCallbacks
}

// Navigation implements port.NavigationController for a Tab.
type Navigation struct {
	*Tab
}

var (
	_ port.Tab                  = (*Tab)(nil)
	_ port.NavigationController = (*Navigation)(nil)
)

func newTab(b *Browser, id entity.TabID, data map[string]string) *Tab {
	t := &Tab{browser: b, id: id, index: -1, data: map[string]string{}}
	t.nav = &Navigation{Tab: t}
	maps.Copy(t.data, data)
	return t
}

func (t *Tab) ID() entity.TabID     { return t.id }
func (t *Tab) IsDestroyed() bool    { return t.destroyed }
func (t *Tab) DisplayURL() string   { return t.url }
func (t *Tab) DisplayTitle() string { return t.title }

// Data returns a copy of the tab's persistent store.
func (t *Tab) Data() map[string]string {
	return maps.Clone(t.data)
}

// SetData replaces the tab's persistent store.
func (t *Tab) SetData(data map[string]string) {
	t.data = maps.Clone(data)
	if t.data == nil {
		t.data = map[string]string{}
	}
}

func (t *Tab) Navigation() port.NavigationController { return t.nav }

func (t *Tab) DesktopUserAgent() bool { return t.desktopUA }

// SetDesktopUserAgent switches the user agent and reloads like a real engine.
func (t *Tab) SetDesktopUserAgent(enabled bool) {
	if t.desktopUA == enabled {
		return
	}
	t.desktopUA = enabled
	if t.index >= 0 {
		t.Reload()
	}
}

// CaptureScreenshot calls done synchronously.
func (t *Tab) CaptureScreenshot(scale float64, done func(img []byte, err error)) {
	if t.destroyed {
		done(nil, ErrTabDestroyed)
		return
	}
	done(t.browser.screenshot(t, scale))
}

// Close removes the tab from its browser.
func (t *Tab) Close() {
	if t.destroyed {
		return
	}
	t.browser.removeTab(t)
}

func (t *Tab) WillAutomaticallyReloadAfterCrash() bool { return t.AutoReloadAfterCrash }

func (t *Tab) RegisterCallbacks(cb *port.TabCallbacks) {
	if !slices.Contains(t.tabCalls, cb) {
		t.tabCalls = append(t.tabCalls, cb)
	}
}

func (t *Tab) UnregisterCallbacks(cb *port.TabCallbacks) {
	t.tabCalls = slices.DeleteFunc(t.tabCalls, func(c *port.TabCallbacks) bool { return c == cb })
}

// CallbackCount returns the number of registered tab and navigation bundles.
func (t *Tab) CallbackCount() (tabCalls, navCalls int) {
	return len(t.tabCalls), len(t.navCalls)
}

func (n *Navigation) RegisterCallbacks(cb *port.NavigationCallbacks) {
	if !slices.Contains(n.navCalls, cb) {
		n.navCalls = append(n.navCalls, cb)
	}
}

func (n *Navigation) UnregisterCallbacks(cb *port.NavigationCallbacks) {
	n.navCalls = slices.DeleteFunc(n.navCalls, func(c *port.NavigationCallbacks) bool { return c == cb })
}

func (t *Tab) ListSize() int     { return len(t.entries) }
func (t *Tab) CurrentIndex() int { return t.index }

func (t *Tab) EntryURL(index int) (string, bool) {
	if index < 0 || index >= len(t.entries) {
		return "", false
	}
	return t.entries[index].url, true
}

func (t *Tab) CanGoBack() bool    { return t.index > 0 }
func (t *Tab) CanGoForward() bool { return t.index >= 0 && t.index < len(t.entries)-1 }

// Navigate loads uri as a new history entry, dropping forward entries.
func (t *Tab) Navigate(uri string) {
	if t.destroyed {
		return
	}
	nav := port.Navigation{URL: uri, IsKnownProtocol: true}
	t.startNavigation(nav)
	t.entries = append(t.entries[:t.index+1], entry{url: uri, title: uri})
	t.index = len(t.entries) - 1
	t.commit(nav)
}

// FailNavigation reports a failed load of uri that leaves history untouched.
func (t *Tab) FailNavigation(uri string, knownProtocol bool) {
	if t.destroyed {
		return
	}
	nav := port.Navigation{URL: uri, IsKnownProtocol: knownProtocol}
	t.startNavigation(nav)
	t.progress(1)
	for _, cb := range slices.Clone(t.navCalls) {
		if cb.OnNavigationFailed != nil {
			cb.OnNavigationFailed(nav)
		}
	}
}

func (t *Tab) GoBack() {
	if t.CanGoBack() {
		t.traverse(t.index - 1)
	}
}

func (t *Tab) GoForward() {
	if t.CanGoForward() {
		t.traverse(t.index + 1)
	}
}

func (t *Tab) Reload() {
	if t.destroyed || t.index < 0 {
		return
	}
	nav := port.Navigation{URL: t.entries[t.index].url, IsReload: true, IsKnownProtocol: true}
	t.startNavigation(nav)
	t.commit(nav)
}

func (t *Tab) traverse(index int) {
	if t.destroyed {
		return
	}
	nav := port.Navigation{URL: t.entries[index].url, IsKnownProtocol: true}
	t.startNavigation(nav)
	t.index = index
	t.commit(nav)
}

func (t *Tab) startNavigation(nav port.Navigation) {
	for _, cb := range slices.Clone(t.navCalls) {
		if cb.OnNavigationStarted != nil {
			cb.OnNavigationStarted(nav)
		}
	}
	t.progress(0.1)
}

func (t *Tab) commit(nav port.Navigation) {
	current := t.entries[t.index]
	if t.url != current.url {
		t.url = current.url
		for _, cb := range slices.Clone(t.tabCalls) {
			if cb.OnVisibleURIChanged != nil {
				cb.OnVisibleURIChanged(t.url)
			}
		}
	}
	t.progress(0.5)
	t.progress(1)
	for _, cb := range slices.Clone(t.navCalls) {
		if cb.OnNavigationCompleted != nil {
			cb.OnNavigationCompleted(nav)
		}
	}
	t.SetTitle(current.title)
}

func (t *Tab) progress(p float64) {
	for _, cb := range slices.Clone(t.navCalls) {
		if cb.OnLoadProgressChanged != nil {
			cb.OnLoadProgressChanged(p)
		}
	}
}

// SetTitle changes the page title of the current entry.
func (t *Tab) SetTitle(title string) {
	if t.destroyed || t.title == title {
		return
	}
	t.title = title
	if t.index >= 0 {
		t.entries[t.index].title = title
	}
	for _, cb := range slices.Clone(t.tabCalls) {
		if cb.OnTitleUpdated != nil {
			cb.OnTitleUpdated(title)
		}
	}
}

// SetFavicon reports a new favicon for the current page.
func (t *Tab) SetFavicon(favicon port.Favicon) {
	if t.destroyed {
		return
	}
	for _, cb := range slices.Clone(t.tabCalls) {
		if cb.OnFaviconChanged != nil {
			cb.OnFaviconChanged(favicon)
		}
	}
}

// Crash simulates the renderer process dying.
func (t *Tab) Crash() {
	if t.destroyed {
		return
	}
	for _, cb := range slices.Clone(t.tabCalls) {
		if cb.OnRenderProcessGone != nil {
			cb.OnRenderProcessGone()
		}
	}
	if t.AutoReloadAfterCrash {
		t.Reload()
	}
}


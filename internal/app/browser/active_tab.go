package browser

import (
	"math"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/url"
)

// projectorHooks are the side effects the projector triggers on its tab.
type projectorHooks struct {
	// captureScreenshot saves a thumbnail of tab.
	captureScreenshot func(tab port.Tab)
	// touch stamps tab as active now.
	touch func(tab port.Tab)
}

// ActiveTabProjector follows exactly one tab at a time and republishes its
// state as reactive values. It is either unattached or attached to a tab.
type ActiveTabProjector struct {
	classifier url.Classifier
	registry   *TabRegistry
	ledger     *SearchNavigationLedger
	hooks      projectorHooks

	tab      port.Tab
	tabCalls *port.TabCallbacks
	navCalls *port.NavigationCallbacks
	captured bool

	url        *Value[string]
	title      *Value[string]
	navigation *Value[entity.NavigationInfo]
	progress   *Value[int]
	displayed  *Value[entity.DisplayedInfo]
}

// NewActiveTabProjector creates an unattached projector.
func NewActiveTabProjector(classifier url.Classifier, registry *TabRegistry, ledger *SearchNavigationLedger, hooks projectorHooks) *ActiveTabProjector {
	defaults := entity.DefaultActiveTabSnapshot()
	p := &ActiveTabProjector{
		classifier: classifier,
		registry:   registry,
		ledger:     ledger,
		hooks:      hooks,
		url:        NewValue(defaults.URL),
		title:      NewValue(defaults.Title),
		navigation: NewValue(defaults.Navigation),
		progress:   NewValue(defaults.Progress),
		displayed:  NewValue(defaults.Displayed),
	}
	p.tabCalls = &port.TabCallbacks{
		OnVisibleURIChanged: p.updateURL,
		OnTitleUpdated:      func(title string) { p.title.Set(title) },
	}
	p.navCalls = &port.NavigationCallbacks{
		OnLoadProgressChanged: p.onLoadProgressChanged,
		OnNavigationStarted: func(port.Navigation) {
			p.captured = false
			p.UpdateNavigationInfo()
			if tab := p.ActiveTab(); tab != nil {
				p.hooks.touch(tab)
			}
		},
		OnNavigationFailed: func(port.Navigation) {
			p.progress.Set(100)
			p.UpdateNavigationInfo()
		},
		OnNavigationCompleted: func(port.Navigation) {
			p.UpdateNavigationInfo()
		},
	}
	return p
}

// URL returns the reactive active tab URL.
func (p *ActiveTabProjector) URL() *Value[string] { return p.url }

// Title returns the reactive active tab title.
func (p *ActiveTabProjector) Title() *Value[string] { return p.title }

// Navigation returns the reactive navigation capability.
func (p *ActiveTabProjector) Navigation() *Value[entity.NavigationInfo] { return p.navigation }

// Progress returns the reactive load progress in percent.
func (p *ActiveTabProjector) Progress() *Value[int] { return p.progress }

// Displayed returns the reactive URL bar display info.
func (p *ActiveTabProjector) Displayed() *Value[entity.DisplayedInfo] { return p.displayed }

// Snapshot returns the current state as one value.
func (p *ActiveTabProjector) Snapshot() entity.ActiveTabSnapshot {
	return entity.ActiveTabSnapshot{
		URL:        p.url.Get(),
		Title:      p.title.Get(),
		Navigation: p.navigation.Get(),
		Progress:   p.progress.Get(),
		Displayed:  p.displayed.Get(),
	}
}

// ActiveTab returns the attached tab, or nil if unattached or destroyed.
func (p *ActiveTabProjector) ActiveTab() port.Tab {
	if p.tab == nil || p.tab.IsDestroyed() {
		return nil
	}
	return p.tab
}

// ActiveTabID returns the attached tab's id, or "".
func (p *ActiveTabProjector) ActiveTabID() entity.TabID {
	if tab := p.ActiveTab(); tab != nil {
		return tab.ID()
	}
	return ""
}

// OnActiveTabChanged detaches from the previous tab and attaches to tab.
// A nil tab leaves the projector unattached with default values.
func (p *ActiveTabProjector) OnActiveTabChanged(tab port.Tab) {
	if previous := p.ActiveTab(); previous != nil {
		previous.UnregisterCallbacks(p.tabCalls)
		previous.Navigation().UnregisterCallbacks(p.navCalls)
	}

	// Progress is unknown until the new tab reports it.
	p.progress.Set(100)
	p.captured = false

	if tab != nil && tab.IsDestroyed() {
		tab = nil
	}
	p.tab = tab
	if tab != nil {
		tab.RegisterCallbacks(p.tabCalls)
		tab.Navigation().RegisterCallbacks(p.navCalls)
	}

	p.UpdateNavigationInfo()
	if tab == nil {
		p.updateURL("")
		p.title.Set("")
		return
	}
	p.updateURL(tab.DisplayURL())
	p.hooks.touch(tab)
	p.title.Set(tab.DisplayTitle())
}

// OnTabRemoved refreshes navigation info if the removed tab was the active tab's parent.
func (p *ActiveTabProjector) OnTabRemoved(removed entity.TabID) {
	id := p.ActiveTabID()
	if id == "" {
		return
	}
	info, ok := p.registry.Get(id)
	if ok && info.Data.ParentTabID == removed {
		p.UpdateNavigationInfo()
	}
}

// OnTabClosingChanged refreshes navigation info if the active tab started or stopped closing.
func (p *ActiveTabProjector) OnTabClosingChanged(id entity.TabID) {
	if id != "" && id == p.ActiveTabID() {
		p.UpdateNavigationInfo()
	}
}

// UpdateNavigationInfo recomputes and publishes the navigation capability.
func (p *ActiveTabProjector) UpdateNavigationInfo() {
	p.navigation.Set(p.computeNavigationInfo())
}

func (p *ActiveTabProjector) computeNavigationInfo() entity.NavigationInfo {
	tab := p.ActiveTab()
	if tab == nil {
		return entity.NavigationInfo{}
	}
	nav := tab.Navigation()
	return entity.NavigationInfo{
		ListSize:         nav.ListSize(),
		CanGoBackward:    p.canGoBackward(tab),
		CanGoForward:     nav.CanGoForward(),
		DesktopUserAgent: tab.DesktopUserAgent(),
	}
}

func (p *ActiveTabProjector) canGoBackward(tab port.Tab) bool {
	id := tab.ID()
	info, known := p.registry.Get(id)
	switch {
	case known && info.IsClosing:
		return false
	case tab.Navigation().CanGoBack():
		return true
	case p.registry.IsParentInList(id):
		return true
	case known && info.Data.ParentSpaceID != "":
		return true
	default:
		_, ok := p.ledger.Get(id, 0)
		return ok
	}
}

func (p *ActiveTabProjector) updateURL(raw string) {
	p.url.Set(raw)
	p.displayed.Set(p.classifier.Classify(raw))
}

func (p *ActiveTabProjector) onLoadProgressChanged(fraction float64) {
	percent := ProgressPercent(fraction)
	p.progress.Set(percent)

	if percent < 100 {
		p.captured = false
		return
	}
	if p.captured {
		return
	}
	p.captured = true
	if tab := p.ActiveTab(); tab != nil {
		p.hooks.captureScreenshot(tab)
	}
}

// ProgressPercent converts engine progress (0.0-1.0) to a percentage,
// rounding half up and clamping to [0, 100].
func ProgressPercent(fraction float64) int {
	percent := int(math.Floor(100*fraction + 0.5))
	return max(0, min(100, percent))
}

// GoBack navigates the active tab back. When the tab has no history left,
// the result asks the caller to close it and reports the space or search
// query to return to.
func (p *ActiveTabProjector) GoBack() entity.GoBackResult {
	if !p.navigation.Get().CanGoBackward {
		return entity.GoBackResult{}
	}
	tab := p.ActiveTab()
	if tab == nil {
		return entity.GoBackResult{}
	}
	id := tab.ID()
	nav := tab.Navigation()

	if nav.CanGoBack() {
		var result entity.GoBackResult
		if entry, ok := p.ledger.Get(id, nav.CurrentIndex()); ok && entry.NavigationURL == tab.DisplayURL() {
			result.OriginalSearchQuery = entry.SearchQuery
		}
		nav.GoBack()
		return result
	}

	result := entity.GoBackResult{TabIDToClose: id}
	if entry, ok := p.ledger.Get(id, 0); ok {
		result.OriginalSearchQuery = entry.SearchQuery
	}
	if info, ok := p.registry.Get(id); ok {
		result.SpaceIDToOpen = info.Data.ParentSpaceID
	}
	return result
}

// GoForward navigates the active tab forward if possible.
func (p *ActiveTabProjector) GoForward() {
	if tab := p.ActiveTab(); tab != nil && tab.Navigation().CanGoForward() {
		tab.Navigation().GoForward()
	}
}

// Reload reloads the active tab.
func (p *ActiveTabProjector) Reload() {
	if tab := p.ActiveTab(); tab != nil {
		tab.Navigation().Reload()
	}
}

// ToggleDesktopSite flips the active tab's desktop user agent.
func (p *ActiveTabProjector) ToggleDesktopSite() {
	tab := p.ActiveTab()
	if tab == nil {
		return
	}
	tab.SetDesktopUserAgent(!tab.DesktopUserAgent())
	p.UpdateNavigationInfo()
}

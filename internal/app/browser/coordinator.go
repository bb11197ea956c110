package browser

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/domain/url"
	"github.com/bnema/tabshell/internal/logging"
)

const (
	defaultScreenshotScale = 0.5
	defaultFaviconMaxAge   = 30 * 24 * time.Hour
)

// Options configures a Coordinator. Every collaborator is optional.
type Options struct {
	HomeURL   string
	SearchURL string

	// ScreenshotScale is the thumbnail scale passed to the engine.
	ScreenshotScale float64
	// FaviconMaxAge bounds how long unused favicons survive cache cleaning.
	FaviconMaxAge time.Duration
	// Incognito disables history, favicons and archiving.
	Incognito bool

	Screenshots       port.ScreenshotStore
	Favicons          port.FaviconStore
	History           port.HistoryRecorder
	Archiver          port.TabArchiver
	SearchNavigations repository.SearchNavigationRepository
	URLBar            port.URLBar

	// Dispatcher, when set, runs screenshot completions on the engine goroutine.
	Dispatcher port.Dispatcher

	Now func() time.Time
}

// TabTarget tells LoadURL where a URL should open.
type TabTarget int

const (
	// TabTargetAuto lets the coordinator decide.
	TabTargetAuto TabTarget = iota
	// TabTargetNew always opens a new tab.
	TabTargetNew
	// TabTargetCurrent navigates the active tab.
	TabTargetCurrent
)

// LoadRequest is a URL load issued from the URL bar, a link or an intent.
type LoadRequest struct {
	URL    string
	Target TabTarget
	// ViaIntent marks loads coming from another application.
	ViaIntent     bool
	ParentTabID   entity.TabID
	ParentSpaceID string
	// Refining is set when the user edits the active tab's URL or query.
	Refining bool
	// SearchQuery is the query the URL was built from, if any.
	SearchQuery string
	// OnLoadStarted is called once the load was handed to the engine.
	OnLoadStarted func()
}

type pendingLoad struct {
	ctx context.Context
	req LoadRequest
}

// Coordinator owns the tab lifecycle of one browser profile. Except for
// WaitUntilReady and the reactive values, every method must be called on
// the engine's confinement goroutine.
type Coordinator struct {
	ctx  context.Context
	opts Options
	now  func() time.Time

	registry      *TabRegistry
	ledger        *SearchNavigationLedger
	projector     *ActiveTabProjector
	subscriptions *TabSubscriptions
	bg            *Background
	classifier    url.Classifier

	browser    port.Browser
	reconciler *RestorationReconciler
	listCalls  *port.TabListCallbacks
	restCalls  *port.RestoreCallbacks
	ready      atomic.Pointer[ReadySignal]

	pendingLoads      []pendingLoad
	pendingProvenance map[entity.TabID]entity.PersistedData
	// selecting is set while SelectTab switches tabs; the outgoing tab is
	// already captured.
	selecting bool

	lazyTab      *Value[bool]
	crashed      *Value[bool]
	mustStayGrid *Value[bool]
}

// NewCoordinator creates an unattached coordinator.
func NewCoordinator(ctx context.Context, opts Options) *Coordinator {
	ctx = logging.WithComponent(ctx, "tab-coordinator")
	if opts.ScreenshotScale <= 0 {
		opts.ScreenshotScale = defaultScreenshotScale
	}
	if opts.FaviconMaxAge <= 0 {
		opts.FaviconMaxAge = defaultFaviconMaxAge
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	c := &Coordinator{
		ctx:               ctx,
		opts:              opts,
		now:               now,
		registry:          NewTabRegistry(),
		bg:                NewBackground(ctx),
		classifier:        url.NewClassifier(opts.HomeURL, opts.SearchURL),
		pendingProvenance: make(map[entity.TabID]entity.PersistedData),
		lazyTab:           NewValue(false),
		crashed:           NewValue(false),
		mustStayGrid:      NewValue(true),
	}
	c.ready.Store(NewReadySignal())

	store := opts.SearchNavigations
	if opts.Incognito {
		store = nil
	}
	c.ledger = NewSearchNavigationLedger(store, c.bg)
	c.ledger.now = now
	c.projector = NewActiveTabProjector(c.classifier, c.registry, c.ledger, projectorHooks{
		captureScreenshot: func(tab port.Tab) { c.captureScreenshot(tab, nil) },
		touch:             c.touch,
	})
	c.subscriptions = NewTabSubscriptions(c.newTabSubscription)

	c.registry.OrderedTabs().Subscribe(func([]entity.TabInfo) { c.updateDerived() })
	c.lazyTab.Subscribe(func(bool) { c.updateDerived() })

	c.listCalls = &port.TabListCallbacks{
		OnTabAdded:         c.onTabAdded,
		OnTabRemoved:       c.onTabRemoved,
		OnActiveTabChanged: c.onActiveTabChanged,
	}
	c.reconciler = NewRestorationReconciler(ctx, nil, c.registry, c.ledger, RestoreHooks{
		OnBlankTabCreated:     c.onBlankTabCreated,
		OnEmptyTabList:        c.onEmptyTabList,
		CleanCache:            c.cleanCache,
		AfterRestoreCompleted: c.afterRestoreCompleted,
	}, now)
	c.restCalls = &port.RestoreCallbacks{
		OnRestoreCompleted: func() { c.reconciler.OnRestoreCompleted() },
	}
	return c
}

// LoadSearchNavigations seeds the ledger from its repository.
func (c *Coordinator) LoadSearchNavigations(ctx context.Context) error {
	return c.ledger.Load(ctx)
}

// OrderedTabs returns the reactive ordered tab list.
func (c *Coordinator) OrderedTabs() *Value[[]entity.TabInfo] { return c.registry.OrderedTabs() }

// ActiveTab returns the projector of the active tab.
func (c *Coordinator) ActiveTab() *ActiveTabProjector { return c.projector }

// IsLazyTab reports whether the URL bar is showing without a committed tab.
func (c *Coordinator) IsLazyTab() *Value[bool] { return c.lazyTab }

// ShouldDisplayCrashedTab is true while the selected tab's renderer is gone.
func (c *Coordinator) ShouldDisplayCrashedTab() *Value[bool] { return c.crashed }

// UserMustStayInCardGrid is true when there is nothing to show but the tab grid.
func (c *Coordinator) UserMustStayInCardGrid() *Value[bool] { return c.mustStayGrid }

// SearchNavigations returns the search navigation ledger.
func (c *Coordinator) SearchNavigations() *SearchNavigationLedger { return c.ledger }

// Registry returns the tab registry.
func (c *Coordinator) Registry() *TabRegistry { return c.registry }

// Background returns the runner of the coordinator's side effects.
func (c *Coordinator) Background() *Background { return c.bg }

// HasNoTabs reports whether the registry is empty.
func (c *Coordinator) HasNoTabs(ignoreClosing bool) bool {
	return c.registry.HasNoTabs(ignoreClosing)
}

// WaitUntilReady blocks until restoration completed or ctx is done.
// It may be called from any goroutine.
func (c *Coordinator) WaitUntilReady(ctx context.Context) error {
	return c.ready.Load().Wait(ctx)
}

// IsReady reports whether restoration completed.
func (c *Coordinator) IsReady() bool {
	return c.ready.Load().IsSet()
}

// Attach starts a restoration cycle on browser. Attaching the same browser
// twice is a no-op.
func (c *Coordinator) Attach(browser port.Browser) bool {
	if browser == nil || browser == c.browser {
		return false
	}
	if c.browser != nil {
		c.Detach()
	}
	log := logging.FromContext(c.ctx)

	c.browser = browser
	c.reconciler.Reset(browser)

	browser.RegisterTabListCallbacks(c.listCalls)
	browser.RegisterRestoreCallbacks(c.restCalls)
	log.Debug().Bool("restoring", browser.IsRestoringPreviousState()).Msg("attached to browser")

	if !browser.IsRestoringPreviousState() {
		c.reconciler.OnRestoreCompleted()
		c.changeActiveTab(browser.ActiveTab())
	}
	return true
}

// Detach releases the current browser, e.g. on profile switch. The next
// Attach starts a new restoration cycle.
func (c *Coordinator) Detach() {
	if c.browser == nil {
		return
	}
	if !c.browser.IsDestroyed() {
		c.browser.UnregisterTabListCallbacks(c.listCalls)
		c.browser.UnregisterRestoreCallbacks(c.restCalls)
	}
	c.subscriptions.UnregisterAll()
	c.projector.OnActiveTabChanged(nil)
	c.registry.Clear()
	c.lazyTab.Set(false)
	c.pendingLoads = nil
	clear(c.pendingProvenance)
	c.browser = nil
	c.reconciler.Reset(nil)
	if c.ready.Load().IsSet() {
		c.ready.Store(NewReadySignal())
	}
	logging.FromContext(c.ctx).Debug().Msg("detached from browser")
}

// Close detaches and waits for background side effects.
func (c *Coordinator) Close() {
	c.Detach()
	c.bg.Wait()
}

// liveBrowser returns the attached browser unless it was destroyed.
func (c *Coordinator) liveBrowser() port.Browser {
	if c.browser == nil || c.browser.IsDestroyed() {
		return nil
	}
	return c.browser
}

func (c *Coordinator) activeTab() port.Tab {
	browser := c.liveBrowser()
	if browser == nil {
		return nil
	}
	tab := browser.ActiveTab()
	if tab == nil || tab.IsDestroyed() {
		return nil
	}
	return tab
}

func (c *Coordinator) findTab(id entity.TabID) port.Tab {
	browser := c.liveBrowser()
	if browser == nil || id == "" {
		return nil
	}
	for _, tab := range browser.Tabs() {
		if tab.ID() == id && !tab.IsDestroyed() {
			return tab
		}
	}
	return nil
}

func (c *Coordinator) onTabAdded(tab port.Tab) {
	if tab == nil || tab.IsDestroyed() {
		return
	}
	id := tab.ID()
	data, pending := c.pendingProvenance[id]
	if pending {
		delete(c.pendingProvenance, id)
	} else {
		data = entity.PersistedDataFromMap(tab.Data())
	}

	active := c.activeTab()
	selected := active != nil && active.ID() == id
	if selected {
		data.LastActiveMs = c.now().UnixMilli()
	}
	if c.registry.Add(id, tab.DisplayURL(), tab.DisplayTitle(), selected, data) {
		logging.FromContext(c.ctx).Debug().Str("tab_id", string(id)).Msg("tab added")
	} else if pending {
		c.registry.SetPersistedData(id, data)
	}
	c.subscriptions.Register(tab)
}

func (c *Coordinator) onTabRemoved(tab port.Tab) {
	if tab == nil {
		return
	}
	id := tab.ID()
	c.deleteScreenshot(id)

	index := c.registry.IndexOf(id)
	info, known := c.registry.Remove(id)
	delete(c.pendingProvenance, id)
	c.ledger.RemoveTab(id)
	c.projector.OnTabRemoved(id)
	c.subscriptions.Unregister(id)
	logging.FromContext(c.ctx).Debug().Str("tab_id", string(id)).Int("index", index).Msg("tab removed")

	if active := c.activeTab(); active == nil || active.ID() == id {
		if !known {
			info = entity.TabInfo{ID: id}
		}
		c.setNextActiveTab(info, index)
	}
}

func (c *Coordinator) onActiveTabChanged(tab port.Tab) {
	if !c.selecting {
		if outgoing := c.projector.ActiveTab(); outgoing != nil && (tab == nil || outgoing.ID() != tab.ID()) {
			c.captureScreenshot(outgoing, nil)
		}
	}
	c.changeActiveTab(tab)
}

func (c *Coordinator) changeActiveTab(tab port.Tab) {
	if tab != nil && tab.IsDestroyed() {
		tab = nil
	}
	c.projector.OnActiveTabChanged(tab)
	if tab == nil {
		c.registry.UpdateSelected("")
		return
	}
	c.registry.UpdateSelected(tab.ID())
	c.subscriptions.Register(tab)
}

// setNextActiveTab selects the removed tab's parent, else its predecessor,
// else nothing.
func (c *Coordinator) setNextActiveTab(removed entity.TabInfo, index int) {
	if parent := removed.Data.ParentTabID; parent != "" && parent != removed.ID {
		if c.setActiveTab(parent) {
			return
		}
	}
	if next, ok := c.registry.At(max(index-1, 0)); ok && next.ID != removed.ID {
		c.setActiveTab(next.ID)
	}
}

func (c *Coordinator) setActiveTab(id entity.TabID) bool {
	tab := c.findTab(id)
	if tab == nil {
		return false
	}
	c.SelectTab(id)
	return true
}

// SelectTab captures the outgoing tab's thumbnail and makes id the active tab.
func (c *Coordinator) SelectTab(id entity.TabID) bool {
	browser := c.liveBrowser()
	if browser == nil {
		return false
	}
	tab := c.findTab(id)
	if tab == nil {
		return false
	}
	if current := c.activeTab(); current != nil {
		if current.ID() == id {
			return true
		}
		c.captureScreenshot(current, nil)
	}
	c.selecting = true
	defer func() { c.selecting = false }()
	browser.SetActiveTab(tab)
	return true
}

// CloseTab archives the tab and asks the engine to close it.
func (c *Coordinator) CloseTab(id entity.TabID) {
	tab := c.findTab(id)
	if tab == nil {
		return
	}
	info, known := c.registry.Get(id)
	index := c.registry.IndexOf(id)
	if known {
		c.archive(info)
	}

	wasActive := false
	if active := c.activeTab(); active != nil && active.ID() == id {
		wasActive = true
	}
	tab.Close()

	if wasActive {
		if active := c.activeTab(); active == nil || active.ID() == id {
			c.setNextActiveTab(info, index)
		}
	}
}

// CloseAllTabs closes every tab.
func (c *Coordinator) CloseAllTabs() {
	if c.liveBrowser() == nil {
		return
	}
	for _, id := range c.registry.IDs() {
		c.CloseTab(id)
	}
}

// CloseInactiveTabs closes the tabs the archiver considers stale.
func (c *Coordinator) CloseInactiveTabs() int {
	if c.opts.Archiver == nil || c.opts.Incognito || c.liveBrowser() == nil {
		return 0
	}
	stale := c.opts.Archiver.InactiveTabs(c.ctx, c.registry.Ordered(), c.now())
	for _, info := range stale {
		c.CloseTab(info.ID)
	}
	if len(stale) > 0 {
		logging.FromContext(c.ctx).Info().Int("count", len(stale)).Msg("closed inactive tabs")
	}
	return len(stale)
}

// StartClosingTab marks a tab as closing and moves the selection away from it.
func (c *Coordinator) StartClosingTab(id entity.TabID) {
	if c.liveBrowser() == nil {
		return
	}
	info, ok := c.registry.Get(id)
	if !ok {
		return
	}
	index := c.registry.IndexOf(id)
	c.registry.UpdateIsClosing(id, true)
	c.projector.OnTabClosingChanged(id)

	if active := c.activeTab(); active != nil && active.ID() == id {
		c.setNextActiveTab(info, index)
	}
}

// CancelClosingTab reverts StartClosingTab.
func (c *Coordinator) CancelClosingTab(id entity.TabID) {
	if c.liveBrowser() == nil {
		return
	}
	if c.registry.UpdateIsClosing(id, false) {
		c.projector.OnTabClosingChanged(id)
	}
}

// OpenLazyTab shows the URL bar for a new tab without creating one.
func (c *Coordinator) OpenLazyTab(focusURLBar bool) {
	if c.liveBrowser() == nil {
		return
	}
	c.lazyTab.Set(true)
	if focusURLBar && c.opts.URLBar != nil {
		c.opts.URLBar.RequestFocus()
	}
}

// OnURLBarFocusChanged must be called when the URL bar gains or loses focus.
func (c *Coordinator) OnURLBarFocusChanged(focused bool) {
	if !focused {
		c.lazyTab.Set(false)
	}
}

// LoadURL opens req.URL. Requests issued before restoration completed are
// queued and run, in order, once it has; requests whose ctx is done by then
// are dropped.
func (c *Coordinator) LoadURL(ctx context.Context, req LoadRequest) {
	if c.browser == nil || !c.IsReady() {
		logging.FromContext(c.ctx).Debug().
			Str("url", logging.TruncateURL(req.URL, 60)).
			Msg("browser not ready, queueing load")
		c.pendingLoads = append(c.pendingLoads, pendingLoad{ctx: ctx, req: req})
		return
	}
	c.loadURL(req)
}

func (c *Coordinator) loadURL(req LoadRequest) {
	if c.liveBrowser() == nil {
		return
	}
	active := c.activeTab()

	var inNewTab bool
	switch req.Target {
	case TabTargetNew:
		inNewTab = true
	case TabTargetCurrent:
		inNewTab = active == nil
	default:
		inNewTab = c.lazyTab.Get() || active == nil || !req.Refining
	}

	logging.FromContext(logging.WithURL(c.ctx, logging.TruncateURL(req.URL, 60))).Debug().
		Bool("new_tab", inNewTab).
		Bool("lazy", c.lazyTab.Get()).
		Msg("loading url")

	if inNewTab {
		switched := false
		if req.Target != TabTargetNew {
			if id, ok := c.registry.FindTabWithSimilarURL(req.URL); ok {
				switched = c.SelectTab(id)
			}
		}
		if !switched {
			parent := req.ParentTabID
			switch {
			case req.ViaIntent:
				parent = ""
			case parent == "" && active != nil:
				parent = active.ID()
			}
			c.createTabWithURL(req.URL, parent, req.ParentSpaceID, req.ViaIntent, req.SearchQuery)
		}
	} else {
		c.navigateTab(active, req.URL, req.SearchQuery)
	}
	c.lazyTab.Set(false)

	if c.opts.URLBar != nil {
		c.opts.URLBar.ClearFocus()
	}
	if req.OnLoadStarted != nil {
		req.OnLoadStarted()
	}
}

func (c *Coordinator) createTabWithURL(uri string, parentTabID entity.TabID, parentSpaceID string, viaIntent bool, searchQuery string) port.Tab {
	browser := c.liveBrowser()
	if browser == nil {
		return nil
	}
	openType := entity.OpenTypeDefault
	switch {
	case viaIntent:
		openType = entity.OpenTypeViaIntent
	case parentTabID != "" || parentSpaceID != "":
		openType = entity.OpenTypeChildTab
	}

	tab := browser.CreateTab()
	if tab == nil {
		logging.FromContext(c.ctx).Warn().Msg("engine refused to create a tab")
		return nil
	}
	c.lazyTab.Set(false)
	c.navigateTab(tab, uri, searchQuery)
	c.updateParentInfo(tab, parentTabID, parentSpaceID, openType)
	c.SelectTab(tab.ID())
	return tab
}

// navigateTab loads uri in tab. A search query is recorded against the
// history entry the navigation lands on.
func (c *Coordinator) navigateTab(tab port.Tab, uri, searchQuery string) {
	if tab == nil || tab.IsDestroyed() {
		return
	}
	nav := tab.Navigation()
	if searchQuery != "" {
		id := tab.ID()
		query := searchQuery
		var once *port.NavigationCallbacks
		record := func(n port.Navigation) {
			nav.UnregisterCallbacks(once)
			if tab.IsDestroyed() {
				return
			}
			c.RecordSearchNavigation(id, nav.CurrentIndex(), n.URL, &query)
		}
		once = &port.NavigationCallbacks{
			OnNavigationCompleted: record,
			OnNavigationFailed:    record,
		}
		nav.RegisterCallbacks(once)
	}
	nav.Navigate(uri)
}

// RecordSearchNavigation records (or with a nil query forgets) the search
// that produced a tab's history entry.
func (c *Coordinator) RecordSearchNavigation(id entity.TabID, index int, navURL string, query *string) {
	c.ledger.Update(id, index, navURL, query)
	if id == c.projector.ActiveTabID() {
		c.projector.UpdateNavigationInfo()
	}
}

// updateParentInfo overwrites the provenance of tab.
func (c *Coordinator) updateParentInfo(tab port.Tab, parentTabID entity.TabID, parentSpaceID string, openType entity.OpenType) {
	if tab == nil || tab.IsDestroyed() {
		return
	}
	data := c.persistedData(tab)
	data.ParentTabID = parentTabID
	data.ParentSpaceID = parentSpaceID
	data.OpenType = openType
	c.setPersistedData(tab, data)
}

func (c *Coordinator) persistedData(tab port.Tab) entity.PersistedData {
	id := tab.ID()
	if info, ok := c.registry.Get(id); ok {
		return info.Data
	}
	if data, ok := c.pendingProvenance[id]; ok {
		return data
	}
	return entity.PersistedDataFromMap(tab.Data())
}

// setPersistedData stores data in the registry and the engine. Tabs the
// engine has not announced yet get it once OnTabAdded arrives.
func (c *Coordinator) setPersistedData(tab port.Tab, data entity.PersistedData) {
	id := tab.ID()
	if c.registry.Contains(id) {
		if !c.registry.SetPersistedData(id, data) {
			return
		}
	} else {
		c.pendingProvenance[id] = data
	}
	tab.SetData(data.ToMap())
}

// touch stamps tab as active now.
func (c *Coordinator) touch(tab port.Tab) {
	if tab == nil || tab.IsDestroyed() {
		return
	}
	data := c.persistedData(tab)
	data.LastActiveMs = c.now().UnixMilli()
	c.setPersistedData(tab, data)
}

// CloseActiveTabIfOpenType closes the active tab if it was opened as t.
func (c *Coordinator) CloseActiveTabIfOpenType(t entity.OpenType) bool {
	active := c.activeTab()
	if active == nil {
		return false
	}
	info, ok := c.registry.Get(active.ID())
	if !ok || info.Data.OpenType != t {
		return false
	}
	c.CloseTab(info.ID)
	return true
}

// CloseActiveTabIfOpenedViaIntent closes the active tab if another app opened it.
func (c *Coordinator) CloseActiveTabIfOpenedViaIntent() bool {
	return c.CloseActiveTabIfOpenType(entity.OpenTypeViaIntent)
}

// CloseActiveChildTab closes the active tab if it was opened from another tab.
func (c *Coordinator) CloseActiveChildTab() bool {
	return c.CloseActiveTabIfOpenType(entity.OpenTypeChildTab)
}

// GoBack navigates the active tab back. A tab without history is closed
// and the search that opened it is shown again in a lazy tab.
func (c *Coordinator) GoBack() entity.GoBackResult {
	if c.liveBrowser() == nil {
		return entity.GoBackResult{}
	}
	result := c.projector.GoBack()
	if result.TabIDToClose != "" {
		c.CloseTab(result.TabIDToClose)
	}
	if result.OriginalSearchQuery != "" {
		c.OpenLazyTab(false)
		if c.opts.URLBar != nil {
			c.opts.URLBar.ReplaceText(result.OriginalSearchQuery)
		}
	}
	return result
}

// GoForward navigates the active tab forward.
func (c *Coordinator) GoForward() {
	if c.liveBrowser() != nil {
		c.projector.GoForward()
	}
}

// Reload reloads the active tab.
func (c *Coordinator) Reload() {
	if c.liveBrowser() != nil {
		c.projector.Reload()
	}
}

// ToggleDesktopSite flips the active tab's user agent.
func (c *Coordinator) ToggleDesktopSite() {
	if c.liveBrowser() != nil {
		c.projector.ToggleDesktopSite()
	}
}

// TakeScreenshotOfActiveTab captures the active tab. done runs once the
// thumbnail is stored or capture failed.
func (c *Coordinator) TakeScreenshotOfActiveTab(done func()) {
	c.captureScreenshot(c.activeTab(), done)
}

func (c *Coordinator) captureScreenshot(tab port.Tab, done func()) {
	// finish runs done directly on the confinement goroutine and posts it
	// back there from anywhere else.
	finish := func(onLoop bool) {
		switch {
		case done == nil:
		case c.opts.Dispatcher != nil && !onLoop:
			c.opts.Dispatcher.Post(done)
		default:
			done()
		}
	}
	store := c.opts.Screenshots
	if store == nil || tab == nil || tab.IsDestroyed() {
		finish(true)
		return
	}
	id := tab.ID()
	// capturing is set while the engine may call back synchronously.
	var capturing atomic.Bool
	capturing.Store(true)
	defer capturing.Store(false)
	tab.CaptureScreenshot(c.opts.ScreenshotScale, func(img []byte, err error) {
		onLoop := capturing.Load()
		if err != nil {
			logging.FromContext(c.ctx).Warn().Err(err).Str("tab_id", string(id)).Msg("screenshot capture failed")
			finish(onLoop)
			return
		}
		c.bg.Go("save screenshot", func(ctx context.Context) error {
			defer finish(false)
			return store.Save(ctx, id, img)
		})
	})
}

func (c *Coordinator) deleteScreenshot(id entity.TabID) {
	store := c.opts.Screenshots
	if store == nil {
		return
	}
	c.bg.Go("delete screenshot", func(ctx context.Context) error {
		return store.Delete(ctx, id)
	})
}

func (c *Coordinator) archive(info entity.TabInfo) {
	archiver := c.opts.Archiver
	if archiver == nil || c.opts.Incognito || info.URL == "" {
		return
	}
	c.bg.Go("archive tab", func(ctx context.Context) error {
		return archiver.Archive(ctx, info)
	})
}

func (c *Coordinator) onBlankTabCreated(tab port.Tab) {
	if c.opts.HomeURL != "" {
		c.navigateTab(tab, c.opts.HomeURL, "")
	}
}

func (c *Coordinator) onEmptyTabList() {
	if c.opts.HomeURL != "" {
		c.createTabWithURL(c.opts.HomeURL, "", "", false, "")
	}
}

// cleanCache removes thumbnails of closed tabs and stale favicons.
func (c *Coordinator) cleanCache() {
	screenshots, favicons := c.opts.Screenshots, c.opts.Favicons
	if screenshots == nil && favicons == nil {
		return
	}
	live := c.registry.IDs()
	before := c.now().Add(-c.opts.FaviconMaxAge)

	c.bg.Go("clean cache", func(ctx context.Context) error {
		log := logging.FromContext(ctx)
		g, gctx := errgroup.WithContext(ctx)
		if screenshots != nil {
			g.Go(func() error {
				n, err := screenshots.CleanOrphans(gctx, live)
				if err == nil && n > 0 {
					log.Debug().Int("count", n).Msg("removed orphaned screenshots")
				}
				return err
			})
		}
		if favicons != nil {
			g.Go(func() error {
				n, err := favicons.Prune(gctx, before)
				if err == nil && n > 0 {
					log.Debug().Int("count", n).Msg("removed stale favicons")
				}
				return err
			})
		}
		return g.Wait()
	})
}

func (c *Coordinator) afterRestoreCompleted() {
	if browser := c.liveBrowser(); browser != nil {
		for _, tab := range browser.Tabs() {
			if !tab.IsDestroyed() {
				c.subscriptions.Register(tab)
			}
		}
		c.CloseInactiveTabs()
	}
	c.ready.Load().Signal()

	pending := c.pendingLoads
	c.pendingLoads = nil
	for _, load := range pending {
		if load.ctx != nil && load.ctx.Err() != nil {
			continue
		}
		c.loadURL(load.req)
	}
}

func (c *Coordinator) updateDerived() {
	tabs := c.registry.OrderedTabs().Get()
	crashed := false
	for _, tab := range tabs {
		if tab.IsSelected && tab.IsCrashed {
			crashed = true
			break
		}
	}
	c.crashed.Set(crashed)
	c.mustStayGrid.Set(c.registry.HasNoTabs(true) && !c.lazyTab.Get())
}

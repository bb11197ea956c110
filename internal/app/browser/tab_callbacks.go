package browser

import (
	"context"
	"strings"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// newTabSubscription registers the per-tab callbacks that keep the registry,
// history and search ledger in sync with tab.
func (c *Coordinator) newTabSubscription(tab port.Tab) *TabSubscription {
	id := tab.ID()
	logCtx := logging.WithTabID(c.ctx, string(id))

	// visit is created on navigation start and committed on completion.
	var visit *entity.Visit

	tabCalls := &port.TabCallbacks{
		OnTitleUpdated: func(title string) {
			c.ensureRegistered(tab)
			c.recordTitle(tab.DisplayURL(), title)
			c.registry.UpdateTitle(id, title)
		},
		OnVisibleURIChanged: func(uri string) {
			c.ensureRegistered(tab)
			c.registry.UpdateURL(id, uri)
		},
		OnFaviconChanged: func(favicon port.Favicon) {
			c.saveFavicon(tab.DisplayURL(), tab.DisplayTitle(), favicon)
		},
		OnNewTab: func(child port.Tab, kind port.NewTabType) {
			if child == nil || child.IsDestroyed() {
				return
			}
			logging.FromContext(logCtx).Debug().
				Str("child_id", string(child.ID())).
				Str("kind", kind.String()).
				Msg("page opened a new tab")
			c.updateParentInfo(child, id, "", entity.OpenTypeChildTab)
			c.registerNewTab(child, kind)
		},
		OnRenderProcessGone: func() {
			if tab.IsDestroyed() || tab.WillAutomaticallyReloadAfterCrash() {
				return
			}
			logging.FromContext(logCtx).Warn().Msg("renderer process gone")
			c.ensureRegistered(tab)
			c.registry.UpdateIsCrashed(id, true)
		},
	}

	navCalls := &port.NavigationCallbacks{
		OnNavigationStarted: func(port.Navigation) {
			c.registry.UpdateIsCrashed(id, false)
			visit = nil
			if browser := c.liveBrowser(); browser != nil && !browser.IsRestoringPreviousState() {
				visit = &entity.Visit{Timestamp: c.now()}
			}
		},
		OnNavigationCompleted: func(nav port.Navigation) {
			c.commitVisit(tab, nav, visit)
			visit = nil
			c.pruneSearchNavigations(tab)
		},
		OnNavigationFailed: func(nav port.Navigation) {
			if nav.IsKnownProtocol {
				c.commitVisit(tab, nav, visit)
			}
			visit = nil
			c.pruneSearchNavigations(tab)
		},
	}

	return NewTabSubscription(tab, tabCalls, navCalls)
}

// registerNewTab subscribes to a tab opened by a page and selects it unless
// it was opened in the background.
func (c *Coordinator) registerNewTab(tab port.Tab, kind port.NewTabType) {
	c.subscriptions.Register(tab)
	if kind.Selects() {
		c.SelectTab(tab.ID())
	}
}

// ensureRegistered inserts a minimal record for a tab the engine never
// announced.
func (c *Coordinator) ensureRegistered(tab port.Tab) {
	id := tab.ID()
	if c.registry.Contains(id) || tab.IsDestroyed() {
		return
	}
	logging.FromContext(c.ctx).Warn().Str("tab_id", string(id)).Msg("callback for unknown tab, adding it")
	c.registry.Add(id, tab.DisplayURL(), tab.DisplayTitle(), false, entity.PersistedDataFromMap(tab.Data()))
}

func (c *Coordinator) commitVisit(tab port.Tab, nav port.Navigation, visit *entity.Visit) {
	history := c.opts.History
	switch {
	case history == nil, c.opts.Incognito, visit == nil:
		return
	case nav.URL == "", strings.HasPrefix(nav.URL, "about:"):
		return
	case nav.IsSameDocument, nav.IsReload, nav.IsErrorPage, nav.IsDownload:
		return
	}
	pageURL, title := nav.URL, tab.DisplayTitle()
	committed := &entity.Visit{URL: pageURL, Timestamp: visit.Timestamp}
	c.bg.Go("record visit", func(ctx context.Context) error {
		return history.RecordVisit(ctx, pageURL, title, committed)
	})
}

func (c *Coordinator) recordTitle(pageURL, title string) {
	history := c.opts.History
	if history == nil || c.opts.Incognito || pageURL == "" {
		return
	}
	c.bg.Go("record title", func(ctx context.Context) error {
		return history.RecordTitle(ctx, pageURL, title)
	})
}

func (c *Coordinator) saveFavicon(pageURL, title string, favicon port.Favicon) {
	store, history := c.opts.Favicons, c.opts.History
	if store == nil || c.opts.Incognito || pageURL == "" {
		return
	}
	c.bg.Go("save favicon", func(ctx context.Context) error {
		faviconURL, err := store.Save(ctx, pageURL, favicon)
		if err != nil || history == nil {
			return err
		}
		return history.RecordFavicon(ctx, pageURL, title, faviconURL)
	})
}

func (c *Coordinator) pruneSearchNavigations(tab port.Tab) {
	if tab.IsDestroyed() {
		return
	}
	if removed := c.ledger.Prune(tab.ID(), tab.Navigation()); len(removed) > 0 && tab.ID() == c.projector.ActiveTabID() {
		c.projector.UpdateNavigationInfo()
	}
}

package browser

import (
	"context"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// RestoreHooks are the caller-supplied steps of a restoration cycle.
type RestoreHooks struct {
	// OnBlankTabCreated receives the single blank tab the engine created by itself.
	OnBlankTabCreated func(tab port.Tab)
	// OnEmptyTabList runs when the engine restored no tabs.
	OnEmptyTabList func()
	// CleanCache prunes orphaned thumbnails and favicons.
	CleanCache func()
	// AfterRestoreCompleted runs last; it releases queued loads.
	AfterRestoreCompleted func()
}

// RestorationReconciler merges the engine's restored tabs into the registry
// once per restoration cycle.
type RestorationReconciler struct {
	ctx      context.Context
	browser  port.Browser
	registry *TabRegistry
	ledger   *SearchNavigationLedger
	hooks    RestoreHooks
	now      func() time.Time
	done     bool
}

// NewRestorationReconciler creates a reconciler for browser, which may be nil
// until Reset binds one.
func NewRestorationReconciler(ctx context.Context, browser port.Browser, registry *TabRegistry, ledger *SearchNavigationLedger, hooks RestoreHooks, now func() time.Time) *RestorationReconciler {
	return &RestorationReconciler{
		ctx:      ctx,
		browser:  browser,
		registry: registry,
		ledger:   ledger,
		hooks:    hooks,
		now:      now,
	}
}

// Reset starts a new restoration cycle for browser, e.g. after a profile
// switch. A nil browser leaves the reconciler idle.
func (r *RestorationReconciler) Reset(browser port.Browser) {
	r.browser = browser
	r.done = false
}

// OnRestoreCompleted reconciles the registry with the restored tabs.
// It runs at most once per cycle and reports whether it ran.
func (r *RestorationReconciler) OnRestoreCompleted() bool {
	if r.done || r.browser == nil {
		return false
	}
	r.done = true
	log := logging.FromContext(r.ctx)

	if r.browser.IsDestroyed() {
		log.Debug().Msg("browser destroyed before restoration completed")
		r.finish()
		return true
	}

	tabs := r.browser.Tabs()
	active := r.browser.ActiveTab()

	switch {
	case len(tabs) == 1 && active != nil && active.ID() == tabs[0].ID() &&
		active.Navigation().CurrentIndex() == -1:
		log.Debug().Str("tab_id", string(active.ID())).Msg("engine created a blank tab")
		if r.hooks.OnBlankTabCreated != nil {
			r.hooks.OnBlankTabCreated(active)
		}
	case len(tabs) == 0:
		log.Debug().Msg("no tabs restored")
		if r.hooks.OnEmptyTabList != nil {
			r.hooks.OnEmptyTabList()
		}
	}

	// OnEmptyTabList may have created tabs.
	tabs = r.browser.Tabs()
	active = r.browser.ActiveTab()
	r.mergeTabs(tabs, active)

	if r.hooks.CleanCache != nil {
		r.hooks.CleanCache()
	}

	r.ledger.PruneMissingTabs(r.registry.IDs())
	for _, tab := range tabs {
		if tab.IsDestroyed() {
			continue
		}
		r.ledger.Prune(tab.ID(), tab.Navigation())
	}

	log.Info().Int("tabs", r.registry.Len()).Msg("tab restoration completed")
	r.finish()
	return true
}

func (r *RestorationReconciler) mergeTabs(tabs []port.Tab, active port.Tab) {
	log := logging.FromContext(r.ctx)
	for _, tab := range tabs {
		if tab.IsDestroyed() {
			continue
		}
		id := tab.ID()
		selected := active != nil && active.ID() == id

		data := entity.PersistedDataFromMap(tab.Data())
		if selected {
			data.LastActiveMs = r.now().UnixMilli()
			tab.SetData(data.ToMap())
		}

		if r.registry.Add(id, tab.DisplayURL(), tab.DisplayTitle(), selected, data) {
			log.Debug().Str("tab_id", string(id)).Msg("restored tab was never announced, adding it")
			continue
		}
		// The engine may announce a tab before its page state is restored.
		r.registry.UpdateURL(id, tab.DisplayURL())
		r.registry.UpdateTitle(id, tab.DisplayTitle())
		r.registry.SetPersistedData(id, data)
	}
}

func (r *RestorationReconciler) finish() {
	if r.hooks.AfterRestoreCompleted != nil {
		r.hooks.AfterRestoreCompleted()
	}
}

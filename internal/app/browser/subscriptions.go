package browser

import (
	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
)

// TabSubscription is the handle of the callbacks registered on one tab.
type TabSubscription struct {
	tab        port.Tab
	tabCalls   *port.TabCallbacks
	navCalls   *port.NavigationCallbacks
	registered bool
}

// NewTabSubscription registers tabCalls and navCalls on tab.
func NewTabSubscription(tab port.Tab, tabCalls *port.TabCallbacks, navCalls *port.NavigationCallbacks) *TabSubscription {
	s := &TabSubscription{tab: tab, tabCalls: tabCalls, navCalls: navCalls}
	if tabCalls != nil {
		tab.RegisterCallbacks(tabCalls)
	}
	if navCalls != nil {
		tab.Navigation().RegisterCallbacks(navCalls)
	}
	s.registered = true
	return s
}

// Tab returns the tab the handle is registered on.
func (s *TabSubscription) Tab() port.Tab {
	return s.tab
}

// Close unregisters the callbacks. It is safe to call more than once and on
// a destroyed tab.
func (s *TabSubscription) Close() {
	if !s.registered {
		return
	}
	s.registered = false
	if s.tab.IsDestroyed() {
		return
	}
	if s.tabCalls != nil {
		s.tab.UnregisterCallbacks(s.tabCalls)
	}
	if s.navCalls != nil {
		s.tab.Navigation().UnregisterCallbacks(s.navCalls)
	}
}

// SubscriptionFactory builds the callback bundle for a tab.
type SubscriptionFactory func(tab port.Tab) *TabSubscription

// TabSubscriptions is the table of per-tab callback handles, keyed by tab id.
// Registering an id twice and unregistering it twice are both no-ops.
type TabSubscriptions struct {
	entries map[entity.TabID]*TabSubscription
	factory SubscriptionFactory
}

// NewTabSubscriptions creates an empty table.
func NewTabSubscriptions(factory SubscriptionFactory) *TabSubscriptions {
	return &TabSubscriptions{
		entries: make(map[entity.TabID]*TabSubscription),
		factory: factory,
	}
}

// Register subscribes to tab unless it is already subscribed. A different
// tab instance under a known id replaces the stale handle.
// It reports whether a new subscription was made.
func (s *TabSubscriptions) Register(tab port.Tab) bool {
	if tab == nil || tab.IsDestroyed() {
		return false
	}
	id := tab.ID()
	if existing, ok := s.entries[id]; ok {
		if existing.tab == tab {
			return false
		}
		s.Unregister(id)
	}
	s.entries[id] = s.factory(tab)
	return true
}

// Unregister removes and closes the handle of id. It reports whether one existed.
func (s *TabSubscriptions) Unregister(id entity.TabID) bool {
	sub, ok := s.entries[id]
	if !ok {
		return false
	}
	delete(s.entries, id)
	sub.Close()
	return true
}

// UnregisterAll closes every handle.
func (s *TabSubscriptions) UnregisterAll() {
	for id := range s.entries {
		s.Unregister(id)
	}
}

// Has reports whether id is subscribed.
func (s *TabSubscriptions) Has(id entity.TabID) bool {
	_, ok := s.entries[id]
	return ok
}

// Len returns the number of subscribed tabs.
func (s *TabSubscriptions) Len() int {
	return len(s.entries)
}

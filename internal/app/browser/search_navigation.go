package browser

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

// SearchNavigationLedger maps (tab, navigation index) to the search query
// that produced that history entry. Changes are written through to an
// optional repository in the background.
type SearchNavigationLedger struct {
	entries map[entity.TabID]map[int]entity.SearchNavigation
	store   repository.SearchNavigationRepository
	writes  *SerialQueue
	now     func() time.Time
}

// NewSearchNavigationLedger creates a ledger. store and bg may be nil for an
// in-memory ledger (incognito).
func NewSearchNavigationLedger(store repository.SearchNavigationRepository, bg *Background) *SearchNavigationLedger {
	l := &SearchNavigationLedger{
		entries: make(map[entity.TabID]map[int]entity.SearchNavigation),
		now:     time.Now,
	}
	if store != nil && bg != nil {
		l.store = store
		l.writes = bg.Serial()
	}
	return l
}

// Load seeds the ledger from the repository. It must run before any tab is attached.
func (l *SearchNavigationLedger) Load(ctx context.Context) error {
	if l.store == nil {
		return nil
	}
	navs, err := l.store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load search navigations: %w", err)
	}
	for _, nav := range navs {
		l.put(*nav)
	}
	logging.FromContext(ctx).Debug().Int("count", len(navs)).Msg("search navigations loaded")
	return nil
}

// Update records query for a tab's navigation index, or forgets the index
// when query is nil.
func (l *SearchNavigationLedger) Update(tabID entity.TabID, index int, navURL string, query *string) {
	if query == nil {
		l.Forget(tabID, index)
		return
	}
	nav := entity.SearchNavigation{
		TabID:           tabID,
		NavigationIndex: index,
		NavigationURL:   navURL,
		SearchQuery:     *query,
		CreatedAt:       l.now(),
	}
	l.put(nav)
	l.persist("save search navigation", func(ctx context.Context) error {
		return l.store.Save(ctx, &nav)
	})
}

// Forget removes the entry of a tab's navigation index.
func (l *SearchNavigationLedger) Forget(tabID entity.TabID, index int) {
	tab, ok := l.entries[tabID]
	if !ok {
		return
	}
	if _, ok := tab[index]; !ok {
		return
	}
	delete(tab, index)
	if len(tab) == 0 {
		delete(l.entries, tabID)
	}
	l.persist("delete search navigation", func(ctx context.Context) error {
		return l.store.Delete(ctx, tabID, index)
	})
}

// Get returns the entry of a tab's navigation index.
func (l *SearchNavigationLedger) Get(tabID entity.TabID, index int) (entity.SearchNavigation, bool) {
	nav, ok := l.entries[tabID][index]
	return nav, ok
}

// ForTab returns a tab's entries ordered by index.
func (l *SearchNavigationLedger) ForTab(tabID entity.TabID) []entity.SearchNavigation {
	tab := l.entries[tabID]
	out := make([]entity.SearchNavigation, 0, len(tab))
	for _, index := range slices.Sorted(maps.Keys(tab)) {
		out = append(out, tab[index])
	}
	return out
}

// TabIDs returns the tabs that have entries.
func (l *SearchNavigationLedger) TabIDs() []entity.TabID {
	return slices.Sorted(maps.Keys(l.entries))
}

// RemoveTab forgets every entry of a tab.
func (l *SearchNavigationLedger) RemoveTab(tabID entity.TabID) {
	if _, ok := l.entries[tabID]; !ok {
		return
	}
	delete(l.entries, tabID)
	l.persist("delete tab search navigations", func(ctx context.Context) error {
		return l.store.DeleteByTab(ctx, tabID)
	})
}

// PruneMissingTabs forgets the entries of every tab not in live.
func (l *SearchNavigationLedger) PruneMissingTabs(live []entity.TabID) []entity.TabID {
	var missing []entity.TabID
	for tabID := range l.entries {
		if !slices.Contains(live, tabID) {
			missing = append(missing, tabID)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	for _, tabID := range missing {
		delete(l.entries, tabID)
	}
	l.persist("delete missing tab search navigations", func(ctx context.Context) error {
		return l.store.DeleteByTabs(ctx, missing)
	})
	return missing
}

// Prune drops every entry of tabID whose index no longer exists in history
// or whose recorded URL differs from the live entry at that index.
// Other entries of the tab are kept. It returns the removed indices.
func (l *SearchNavigationLedger) Prune(tabID entity.TabID, history port.NavigationHistory) []int {
	tab, ok := l.entries[tabID]
	if !ok {
		return nil
	}
	size := history.ListSize()

	var removed []int
	for _, index := range slices.Sorted(maps.Keys(tab)) {
		if index < size {
			if liveURL, ok := history.EntryURL(index); ok && liveURL == tab[index].NavigationURL {
				continue
			}
		}
		removed = append(removed, index)
	}

	for _, index := range removed {
		l.Forget(tabID, index)
	}
	return removed
}

func (l *SearchNavigationLedger) put(nav entity.SearchNavigation) {
	tab, ok := l.entries[nav.TabID]
	if !ok {
		tab = make(map[int]entity.SearchNavigation)
		l.entries[nav.TabID] = tab
	}
	tab[nav.NavigationIndex] = nav
}

func (l *SearchNavigationLedger) persist(name string, fn func(ctx context.Context) error) {
	if l.store == nil {
		return
	}
	l.writes.Go(name, fn)
}

package browser

import (
	"slices"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/url"
)

// TabRegistry is the ordered collection of known tabs.
// Order is engine creation order; removal keeps the order of the rest.
// Every mutation that changes content publishes one new ordered snapshot.
type TabRegistry struct {
	order []entity.TabID
	infos map[entity.TabID]entity.TabInfo
	fuzzy map[entity.TabID]string

	tabs *Value[[]entity.TabInfo]
}

// NewTabRegistry creates an empty registry.
func NewTabRegistry() *TabRegistry {
	return &TabRegistry{
		infos: make(map[entity.TabID]entity.TabInfo),
		fuzzy: make(map[entity.TabID]string),
		tabs:  NewValueFunc([]entity.TabInfo{}, entity.TabInfosEqual),
	}
}

// OrderedTabs returns the reactive ordered tab list.
func (r *TabRegistry) OrderedTabs() *Value[[]entity.TabInfo] {
	return r.tabs
}

// Add inserts a tab. It is a no-op returning false if id is already present.
func (r *TabRegistry) Add(id entity.TabID, rawURL, title string, isSelected bool, data entity.PersistedData) bool {
	if _, ok := r.infos[id]; ok {
		return false
	}
	r.order = append(r.order, id)
	r.infos[id] = entity.TabInfo{
		ID:         id,
		URL:        rawURL,
		Title:      title,
		IsSelected: isSelected,
		Data:       data,
	}
	r.indexURL(id, rawURL)
	r.publish()
	return true
}

// Remove deletes a tab and returns its last record.
func (r *TabRegistry) Remove(id entity.TabID) (entity.TabInfo, bool) {
	info, ok := r.infos[id]
	if !ok {
		return entity.TabInfo{}, false
	}
	delete(r.infos, id)
	delete(r.fuzzy, id)
	r.order = slices.DeleteFunc(r.order, func(v entity.TabID) bool { return v == id })
	r.publish()
	return info, true
}

// Clear removes every tab.
func (r *TabRegistry) Clear() {
	if len(r.order) == 0 {
		return
	}
	r.order = nil
	clear(r.infos)
	clear(r.fuzzy)
	r.publish()
}

// UpdateSelected marks exactly the tab with id selected; an empty id
// deselects everything. Publishes at most once.
func (r *TabRegistry) UpdateSelected(id entity.TabID) {
	changed := false
	for tabID, info := range r.infos {
		selected := id != "" && tabID == id
		if info.IsSelected != selected {
			info.IsSelected = selected
			r.infos[tabID] = info
			changed = true
		}
	}
	if changed {
		r.publish()
	}
}

// UpdateTitle sets a tab's title.
func (r *TabRegistry) UpdateTitle(id entity.TabID, title string) bool {
	return r.update(id, func(info *entity.TabInfo) bool {
		if info.Title == title {
			return false
		}
		info.Title = title
		return true
	})
}

// UpdateURL sets a tab's URL and reindexes it for fuzzy matching.
func (r *TabRegistry) UpdateURL(id entity.TabID, rawURL string) bool {
	changed := r.update(id, func(info *entity.TabInfo) bool {
		if info.URL == rawURL {
			return false
		}
		info.URL = rawURL
		return true
	})
	if changed {
		r.indexURL(id, rawURL)
	}
	return changed
}

// UpdateIsCrashed sets a tab's crashed flag.
func (r *TabRegistry) UpdateIsCrashed(id entity.TabID, crashed bool) bool {
	return r.update(id, func(info *entity.TabInfo) bool {
		if info.IsCrashed == crashed {
			return false
		}
		info.IsCrashed = crashed
		return true
	})
}

// UpdateIsClosing sets a tab's closing flag.
func (r *TabRegistry) UpdateIsClosing(id entity.TabID, closing bool) bool {
	return r.update(id, func(info *entity.TabInfo) bool {
		if info.IsClosing == closing {
			return false
		}
		info.IsClosing = closing
		return true
	})
}

// SetPersistedData overwrites a tab's persisted metadata.
func (r *TabRegistry) SetPersistedData(id entity.TabID, data entity.PersistedData) bool {
	return r.update(id, func(info *entity.TabInfo) bool {
		if info.Data == data {
			return false
		}
		info.Data = data
		return true
	})
}

func (r *TabRegistry) update(id entity.TabID, mutate func(info *entity.TabInfo) bool) bool {
	info, ok := r.infos[id]
	if !ok {
		return false
	}
	if !mutate(&info) {
		return false
	}
	r.infos[id] = info
	r.publish()
	return true
}

// Get returns the record of id.
func (r *TabRegistry) Get(id entity.TabID) (entity.TabInfo, bool) {
	info, ok := r.infos[id]
	return info, ok
}

// Contains reports whether id is registered.
func (r *TabRegistry) Contains(id entity.TabID) bool {
	_, ok := r.infos[id]
	return ok
}

// IndexOf returns the position of id, or -1.
func (r *TabRegistry) IndexOf(id entity.TabID) int {
	return slices.Index(r.order, id)
}

// IDs returns the registered ids in order.
func (r *TabRegistry) IDs() []entity.TabID {
	return slices.Clone(r.order)
}

// Len returns the number of registered tabs.
func (r *TabRegistry) Len() int {
	return len(r.order)
}

// Ordered returns a copy of the records in order.
func (r *TabRegistry) Ordered() []entity.TabInfo {
	out := make([]entity.TabInfo, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.infos[id])
	}
	return out
}

// At returns the record at index.
func (r *TabRegistry) At(index int) (entity.TabInfo, bool) {
	if index < 0 || index >= len(r.order) {
		return entity.TabInfo{}, false
	}
	return r.infos[r.order[index]], true
}

// IsParentInList reports whether id is a child tab whose parent is still registered.
func (r *TabRegistry) IsParentInList(id entity.TabID) bool {
	info, ok := r.infos[id]
	if !ok || !info.IsChildTab() || info.Data.ParentTabID == "" {
		return false
	}
	return r.Contains(info.Data.ParentTabID)
}

// HasNoTabs reports whether the registry is empty, optionally ignoring closing tabs.
func (r *TabRegistry) HasNoTabs(ignoreClosing bool) bool {
	if !ignoreClosing {
		return len(r.order) == 0
	}
	for _, id := range r.order {
		if !r.infos[id].IsClosing {
			return false
		}
	}
	return true
}

// FindTabWithSimilarURL returns the first non-closing tab whose URL is a
// desktop or mobile variant of rawURL.
func (r *TabRegistry) FindTabWithSimilarURL(rawURL string) (entity.TabID, bool) {
	key, ok := url.FuzzyKey(rawURL)
	if !ok {
		return "", false
	}
	for _, id := range r.order {
		if r.fuzzy[id] == key && !r.infos[id].IsClosing {
			return id, true
		}
	}
	return "", false
}

func (r *TabRegistry) indexURL(id entity.TabID, rawURL string) {
	if key, ok := url.FuzzyKey(rawURL); ok {
		r.fuzzy[id] = key
		return
	}
	delete(r.fuzzy, id)
}

func (r *TabRegistry) publish() {
	r.tabs.Set(r.Ordered())
}

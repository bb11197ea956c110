package entity

import (
	"strconv"
	"time"
)

// Keys of the engine's per-tab persistent store.
const (
	PersistedKeyParentTabID   = "PARENT_TAB_ID"
	PersistedKeyParentSpaceID = "PARENT_SPACE_ID"
	PersistedKeyLastActiveMs  = "LAST_ACTIVE_MS"
	PersistedKeyOpenType      = "OPEN_TYPE"
)

// OpenType records how a tab was created.
type OpenType int

const (
	// OpenTypeDefault is a tab opened by the user with no provenance.
	OpenTypeDefault OpenType = iota
	// OpenTypeChildTab is a tab opened from another tab or a space.
	OpenTypeChildTab
	// OpenTypeViaIntent is a tab opened by an external application.
	OpenTypeViaIntent
)

func (o OpenType) String() string {
	switch o {
	case OpenTypeChildTab:
		return "ChildTab"
	case OpenTypeViaIntent:
		return "ViaIntent"
	default:
		return "Default"
	}
}

// ParseOpenType parses the persisted form of an OpenType.
// Unknown values fall back to OpenTypeDefault.
func ParseOpenType(s string) OpenType {
	switch s {
	case "ChildTab", "CHILD_TAB":
		return OpenTypeChildTab
	case "ViaIntent", "VIA_INTENT":
		return OpenTypeViaIntent
	default:
		return OpenTypeDefault
	}
}

// PersistedData is tab metadata that survives process restarts.
type PersistedData struct {
	ParentTabID   TabID
	ParentSpaceID string
	LastActiveMs  int64
	OpenType      OpenType
}

// NewPersistedData builds provenance for a freshly created tab.
func NewPersistedData(parentTabID TabID, parentSpaceID string, openType OpenType, now time.Time) PersistedData {
	return PersistedData{
		ParentTabID:   parentTabID,
		ParentSpaceID: parentSpaceID,
		LastActiveMs:  now.UnixMilli(),
		OpenType:      openType,
	}
}

// LastActive returns LastActiveMs as a time.
func (p PersistedData) LastActive() time.Time {
	return time.UnixMilli(p.LastActiveMs)
}

// ToMap serializes the data for the engine's key/value store.
// Empty optional fields are omitted.
func (p PersistedData) ToMap() map[string]string {
	m := map[string]string{
		PersistedKeyLastActiveMs: strconv.FormatInt(p.LastActiveMs, 10),
		PersistedKeyOpenType:     p.OpenType.String(),
	}
	if p.ParentTabID != "" {
		m[PersistedKeyParentTabID] = string(p.ParentTabID)
	}
	if p.ParentSpaceID != "" {
		m[PersistedKeyParentSpaceID] = p.ParentSpaceID
	}
	return m
}

// PersistedDataFromMap deserializes data written by ToMap.
// Missing or malformed values decode to their zero value.
func PersistedDataFromMap(m map[string]string) PersistedData {
	var p PersistedData
	if m == nil {
		return p
	}
	p.ParentTabID = TabID(m[PersistedKeyParentTabID])
	p.ParentSpaceID = m[PersistedKeyParentSpaceID]
	if v, err := strconv.ParseInt(m[PersistedKeyLastActiveMs], 10, 64); err == nil {
		p.LastActiveMs = v
	}
	p.OpenType = ParseOpenType(m[PersistedKeyOpenType])
	return p
}

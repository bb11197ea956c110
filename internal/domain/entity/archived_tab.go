package entity

import (
	"fmt"
	"time"
)

// ArchiveAfter controls when inactive tabs are archived automatically.
type ArchiveAfter string

const (
	ArchiveAfterNever  ArchiveAfter = "never"
	ArchiveAfter7Days  ArchiveAfter = "after_7_days"
	ArchiveAfter30Days ArchiveAfter = "after_30_days"
)

// Duration returns the inactivity period, or false for ArchiveAfterNever.
func (a ArchiveAfter) Duration() (time.Duration, bool) {
	const day = 24 * time.Hour
	switch a {
	case ArchiveAfter7Days:
		return 7 * day, true
	case ArchiveAfter30Days:
		return 30 * day, true
	default:
		return 0, false
	}
}

// ParseArchiveAfter validates a configured value.
func ParseArchiveAfter(s string) (ArchiveAfter, error) {
	switch a := ArchiveAfter(s); a {
	case ArchiveAfterNever, ArchiveAfter7Days, ArchiveAfter30Days:
		return a, nil
	default:
		return "", fmt.Errorf("invalid archive_after %q", s)
	}
}

// ArchivedTab is a closed tab kept for the archived tabs list.
type ArchivedTab struct {
	ID           int64
	URL          string
	Title        string
	LastActiveAt time.Time
	ArchivedAt   time.Time
}

// NewArchivedTab captures tab for archiving.
func NewArchivedTab(tab TabInfo, now time.Time) *ArchivedTab {
	lastActive := now
	if tab.Data.LastActiveMs > 0 {
		lastActive = tab.Data.LastActive()
	}
	return &ArchivedTab{
		URL:          tab.URL,
		Title:        tab.Title,
		LastActiveAt: lastActive,
		ArchivedAt:   now,
	}
}

// IsArchivable reports whether an unselected tab has been inactive long enough.
func IsArchivable(tab TabInfo, after ArchiveAfter, now time.Time) bool {
	if tab.IsSelected {
		return false
	}
	d, ok := after.Duration()
	if !ok {
		return false
	}
	return now.Sub(tab.Data.LastActive()) > d
}

package repository

import (
	"context"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// HistoryRepository defines operations for browsing history persistence.
type HistoryRepository interface {
	// Save creates or updates a history entry (upsert) and counts a visit.
	Save(ctx context.Context, entry *entity.HistoryEntry) error

	// UpdateTitle sets the title of an existing entry without counting a visit.
	UpdateTitle(ctx context.Context, url, title string) error

	// UpdateFavicon sets the favicon URL of an existing entry.
	UpdateFavicon(ctx context.Context, url, faviconURL string) error

	// FindByURL retrieves a history entry by its URL.
	FindByURL(ctx context.Context, url string) (*entity.HistoryEntry, error)

	// GetRecent retrieves recent history entries with pagination.
	GetRecent(ctx context.Context, limit, offset int) ([]*entity.HistoryEntry, error)
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

const logURLMaxLen = 60

// RecordHistoryUseCase upserts history entries for committed visits,
// title updates and favicon changes.
type RecordHistoryUseCase struct {
	historyRepo repository.HistoryRepository
}

// NewRecordHistoryUseCase creates a new history recording use case.
func NewRecordHistoryUseCase(historyRepo repository.HistoryRepository) *RecordHistoryUseCase {
	return &RecordHistoryUseCase{historyRepo: historyRepo}
}

// RecordVisit counts a committed visit of url.
func (uc *RecordHistoryUseCase) RecordVisit(ctx context.Context, url, title string, visit *entity.Visit) error {
	if skipHistory(url) {
		return nil
	}
	log := logging.FromContext(ctx)

	entry := entity.NewHistoryEntry(url, title)
	if visit != nil && !visit.Timestamp.IsZero() {
		entry.LastVisited = visit.Timestamp
	}
	if err := uc.historyRepo.Save(ctx, entry); err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}

	log.Debug().Str("url", logging.TruncateURL(url, logURLMaxLen)).Msg("visit recorded")
	return nil
}

// RecordTitle updates the title of url, creating the entry if needed.
func (uc *RecordHistoryUseCase) RecordTitle(ctx context.Context, url, title string) error {
	if skipHistory(url) || title == "" {
		return nil
	}

	existing, err := uc.historyRepo.FindByURL(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to look up history entry: %w", err)
	}
	if existing == nil {
		if err := uc.historyRepo.Save(ctx, entity.NewHistoryEntry(url, title)); err != nil {
			return fmt.Errorf("failed to create history entry: %w", err)
		}
		return nil
	}
	if existing.Title == title {
		return nil
	}
	if err := uc.historyRepo.UpdateTitle(ctx, url, title); err != nil {
		return fmt.Errorf("failed to update history title: %w", err)
	}
	return nil
}

// RecordFavicon attaches faviconURL to the history entry of url.
func (uc *RecordHistoryUseCase) RecordFavicon(ctx context.Context, url, title, faviconURL string) error {
	if skipHistory(url) || faviconURL == "" {
		return nil
	}

	existing, err := uc.historyRepo.FindByURL(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to look up history entry: %w", err)
	}
	if existing == nil {
		entry := entity.NewHistoryEntry(url, title)
		entry.FaviconURL = faviconURL
		if err := uc.historyRepo.Save(ctx, entry); err != nil {
			return fmt.Errorf("failed to create history entry: %w", err)
		}
		return nil
	}
	if err := uc.historyRepo.UpdateFavicon(ctx, url, faviconURL); err != nil {
		return fmt.Errorf("failed to update favicon: %w", err)
	}
	return nil
}

// Recent returns the most recent history entries.
func (uc *RecordHistoryUseCase) Recent(ctx context.Context, limit int) ([]*entity.HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return uc.historyRepo.GetRecent(ctx, limit, 0)
}

func skipHistory(url string) bool {
	return url == "" || strings.HasPrefix(url, "about:")
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

// ArchiveAfterFunc returns the current archive-after setting.
// It is a function so configuration reloads take effect immediately.
type ArchiveAfterFunc func() entity.ArchiveAfter

// ArchiveTabsUseCase stores closed tabs and selects inactive tabs for archiving.
type ArchiveTabsUseCase struct {
	archiveRepo  repository.ArchivedTabRepository
	archiveAfter ArchiveAfterFunc
}

// NewArchiveTabsUseCase creates a new archive use case.
func NewArchiveTabsUseCase(archiveRepo repository.ArchivedTabRepository, archiveAfter ArchiveAfterFunc) *ArchiveTabsUseCase {
	if archiveAfter == nil {
		archiveAfter = func() entity.ArchiveAfter { return entity.ArchiveAfterNever }
	}
	return &ArchiveTabsUseCase{
		archiveRepo:  archiveRepo,
		archiveAfter: archiveAfter,
	}
}

// Archive stores tab in the archived tabs list. Tabs without a URL are skipped.
func (uc *ArchiveTabsUseCase) Archive(ctx context.Context, tab entity.TabInfo) error {
	if tab.URL == "" {
		return nil
	}
	log := logging.FromContext(ctx)

	archived := entity.NewArchivedTab(tab, time.Now())
	if err := uc.archiveRepo.Add(ctx, archived); err != nil {
		return fmt.Errorf("failed to archive tab %s: %w", tab.ID, err)
	}

	log.Debug().
		Str("tab_id", string(tab.ID)).
		Str("url", logging.TruncateURL(tab.URL, logURLMaxLen)).
		Msg("tab archived")
	return nil
}

// InactiveTabs returns the tabs that should be archived at now.
// The selected tab is never returned.
func (uc *ArchiveTabsUseCase) InactiveTabs(ctx context.Context, tabs []entity.TabInfo, now time.Time) []entity.TabInfo {
	after := uc.archiveAfter()
	if _, ok := after.Duration(); !ok {
		return nil
	}

	var inactive []entity.TabInfo
	for _, tab := range tabs {
		if entity.IsArchivable(tab, after, now) {
			inactive = append(inactive, tab)
		}
	}

	if len(inactive) > 0 {
		logging.FromContext(ctx).Info().
			Int("count", len(inactive)).
			Str("archive_after", string(after)).
			Msg("archiving inactive tabs")
	}
	return inactive
}

// List returns the most recently archived tabs.
func (uc *ArchiveTabsUseCase) List(ctx context.Context, limit int) ([]*entity.ArchivedTab, error) {
	if limit <= 0 {
		limit = 50
	}
	tabs, err := uc.archiveRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived tabs: %w", err)
	}
	return tabs, nil
}

// PurgeOlderThan deletes archived tabs archived more than maxAge ago.
func (uc *ArchiveTabsUseCase) PurgeOlderThan(ctx context.Context, maxAge time.Duration) (int64, error) {
	n, err := uc.archiveRepo.DeleteOlderThan(ctx, time.Now().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("failed to purge archived tabs: %w", err)
	}
	return n, nil
}

// PurgeAll deletes every archived tab.
func (uc *ArchiveTabsUseCase) PurgeAll(ctx context.Context) error {
	if err := uc.archiveRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to purge archived tabs: %w", err)
	}
	return nil
}

package repository

import (
	"context"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// SearchNavigationRepository persists search navigation entries so that the
// query behind a history entry survives restarts.
type SearchNavigationRepository interface {
	// Save creates or replaces the entry for (TabID, NavigationIndex).
	Save(ctx context.Context, nav *entity.SearchNavigation) error

	// Delete removes the entry for a tab's navigation index.
	Delete(ctx context.Context, tabID entity.TabID, index int) error

	// DeleteByTab removes every entry of a tab.
	DeleteByTab(ctx context.Context, tabID entity.TabID) error

	// ListAll returns every stored entry ordered by tab and index.
	ListAll(ctx context.Context) ([]*entity.SearchNavigation, error)

	// DeleteByTabs removes every entry of the given tabs.
	DeleteByTabs(ctx context.Context, tabIDs []entity.TabID) error
}

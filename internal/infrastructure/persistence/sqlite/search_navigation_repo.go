package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

type searchNavigationRepo struct {
	db *sql.DB
}

// NewSearchNavigationRepository creates a new SQLite-backed search navigation repository.
func NewSearchNavigationRepository(db *sql.DB) repository.SearchNavigationRepository {
	return &searchNavigationRepo{db: db}
}

func (r *searchNavigationRepo) Save(ctx context.Context, nav *entity.SearchNavigation) error {
	createdAt := nav.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO search_navigations (tab_id, navigation_index, navigation_url, search_query, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (tab_id, navigation_index) DO UPDATE SET
			navigation_url = excluded.navigation_url,
			search_query   = excluded.search_query,
			created_at     = excluded.created_at`,
		string(nav.TabID), nav.NavigationIndex, nav.NavigationURL, nav.SearchQuery, createdAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save search navigation: %w", err)
	}
	logging.FromContext(ctx).Debug().
		Str("tab_id", string(nav.TabID)).
		Int("index", nav.NavigationIndex).
		Msg("search navigation saved")
	return nil
}

func (r *searchNavigationRepo) Delete(ctx context.Context, tabID entity.TabID, index int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM search_navigations WHERE tab_id = ? AND navigation_index = ?`,
		string(tabID), index,
	)
	if err != nil {
		return fmt.Errorf("failed to delete search navigation: %w", err)
	}
	return nil
}

func (r *searchNavigationRepo) DeleteByTab(ctx context.Context, tabID entity.TabID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM search_navigations WHERE tab_id = ?`, string(tabID))
	if err != nil {
		return fmt.Errorf("failed to delete search navigations of tab: %w", err)
	}
	return nil
}

func (r *searchNavigationRepo) DeleteByTabs(ctx context.Context, tabIDs []entity.TabID) error {
	if len(tabIDs) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(tabIDs)), ",")
	args := make([]any, 0, len(tabIDs))
	for _, id := range tabIDs {
		args = append(args, string(id))
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM search_navigations WHERE tab_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return fmt.Errorf("failed to delete search navigations of %d tabs: %w", len(tabIDs), err)
	}
	return nil
}

func (r *searchNavigationRepo) ListAll(ctx context.Context) ([]*entity.SearchNavigation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT tab_id, navigation_index, navigation_url, search_query, created_at
		FROM search_navigations
		ORDER BY tab_id, navigation_index`)
	if err != nil {
		return nil, fmt.Errorf("failed to list search navigations: %w", err)
	}
	defer rows.Close()

	var navs []*entity.SearchNavigation
	for rows.Next() {
		var (
			nav       entity.SearchNavigation
			tabID     string
			createdAt int64
		)
		if err := rows.Scan(&tabID, &nav.NavigationIndex, &nav.NavigationURL, &nav.SearchQuery, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan search navigation: %w", err)
		}
		nav.TabID = entity.TabID(tabID)
		nav.CreatedAt = time.UnixMilli(createdAt)
		navs = append(navs, &nav)
	}
	return navs, rows.Err()
}

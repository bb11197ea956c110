package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
)

type archivedTabRepo struct {
	db *sql.DB
}

// NewArchivedTabRepository creates a new SQLite-backed archived tab repository.
func NewArchivedTabRepository(db *sql.DB) repository.ArchivedTabRepository {
	return &archivedTabRepo{db: db}
}

func (r *archivedTabRepo) Add(ctx context.Context, tab *entity.ArchivedTab) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO archived_tabs (url, title, last_active_at, archived_at) VALUES (?, ?, ?, ?)`,
		tab.URL, tab.Title, tab.LastActiveAt.UnixMilli(), tab.ArchivedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to archive tab: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read archived tab id: %w", err)
	}
	tab.ID = id
	return nil
}

func (r *archivedTabRepo) List(ctx context.Context, limit int) ([]*entity.ArchivedTab, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, url, title, last_active_at, archived_at
		FROM archived_tabs
		ORDER BY archived_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived tabs: %w", err)
	}
	defer rows.Close()

	var tabs []*entity.ArchivedTab
	for rows.Next() {
		var (
			tab        entity.ArchivedTab
			lastActive int64
			archivedAt int64
		)
		if err := rows.Scan(&tab.ID, &tab.URL, &tab.Title, &lastActive, &archivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan archived tab: %w", err)
		}
		tab.LastActiveAt = time.UnixMilli(lastActive)
		tab.ArchivedAt = time.UnixMilli(archivedAt)
		tabs = append(tabs, &tab)
	}
	return tabs, rows.Err()
}

func (r *archivedTabRepo) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM archived_tabs WHERE archived_at < ?`, before.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to purge archived tabs: %w", err)
	}
	return res.RowsAffected()
}

func (r *archivedTabRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM archived_tabs`); err != nil {
		return fmt.Errorf("failed to clear archived tabs: %w", err)
	}
	return nil
}

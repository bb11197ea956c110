package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

const logURLMaxLen = 60

type historyRepo struct {
	db *sql.DB
}

// NewHistoryRepository creates a new SQLite-backed history repository.
func NewHistoryRepository(db *sql.DB) repository.HistoryRepository {
	return &historyRepo{db: db}
}

// aboutBlankURL is the special URL for blank pages that should not accumulate visit counts.
const aboutBlankURL = "about:blank"

const historyColumns = `id, url, title, favicon_url, visit_count, last_visited, created_at`

func (r *historyRepo) Save(ctx context.Context, entry *entity.HistoryEntry) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("url", logging.TruncateURL(entry.URL, logURLMaxLen)).Msg("saving history entry")

	lastVisited := entry.LastVisited
	if lastVisited.IsZero() {
		lastVisited = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO history (url, title, favicon_url, visit_count, last_visited, created_at)
		VALUES (?, ?, ?, 1, ?, ?)
		ON CONFLICT (url) DO UPDATE SET
			title        = CASE WHEN excluded.title != '' THEN excluded.title ELSE history.title END,
			favicon_url  = CASE WHEN excluded.favicon_url != '' THEN excluded.favicon_url ELSE history.favicon_url END,
			visit_count  = history.visit_count + 1,
			last_visited = MAX(history.last_visited, excluded.last_visited)`,
		entry.URL, entry.Title, entry.FaviconURL, lastVisited.UnixMilli(), lastVisited.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert history entry: %w", err)
	}

	// Cap about:blank visit count to 1 so it exists but never dominates listings
	if entry.URL == aboutBlankURL {
		if _, capErr := r.db.ExecContext(ctx,
			`UPDATE history SET visit_count = 1 WHERE url = ? AND visit_count > 1`, aboutBlankURL,
		); capErr != nil {
			log.Debug().Err(capErr).Msg("failed to cap about:blank visit count")
		}
	}
	return nil
}

func (r *historyRepo) UpdateTitle(ctx context.Context, url, title string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE history SET title = ? WHERE url = ?`, title, url)
	if err != nil {
		return fmt.Errorf("failed to update history title: %w", err)
	}
	return nil
}

func (r *historyRepo) UpdateFavicon(ctx context.Context, url, faviconURL string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE history SET favicon_url = ? WHERE url = ?`, faviconURL, url)
	if err != nil {
		return fmt.Errorf("failed to update history favicon: %w", err)
	}
	return nil
}

func (r *historyRepo) FindByURL(ctx context.Context, url string) (*entity.HistoryEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+historyColumns+` FROM history WHERE url = ?`, url)
	entry, err := scanHistory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

func (r *historyRepo) GetRecent(ctx context.Context, limit, offset int) ([]*entity.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+historyColumns+` FROM history ORDER BY last_visited DESC, id DESC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent history: %w", err)
	}
	defer rows.Close()

	var entries []*entity.HistoryEntry
	for rows.Next() {
		entry, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHistory(s scanner) (*entity.HistoryEntry, error) {
	var (
		entry       entity.HistoryEntry
		lastVisited int64
		createdAt   int64
	)
	err := s.Scan(&entry.ID, &entry.URL, &entry.Title, &entry.FaviconURL, &entry.VisitCount, &lastVisited, &createdAt)
	if err != nil {
		return nil, err
	}
	entry.LastVisited = time.UnixMilli(lastVisited)
	entry.CreatedAt = time.UnixMilli(createdAt)
	return &entry, nil
}

package repository

import (
	"context"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// ArchivedTabRepository persists tabs that were closed or archived for inactivity.
type ArchivedTabRepository interface {
	// Add stores an archived tab and assigns its ID.
	Add(ctx context.Context, tab *entity.ArchivedTab) error

	// List returns archived tabs, most recently archived first.
	List(ctx context.Context, limit int) ([]*entity.ArchivedTab, error)

	// DeleteOlderThan removes tabs archived before the given time.
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)

	// DeleteAll removes all archived tabs.
	DeleteAll(ctx context.Context) error
}

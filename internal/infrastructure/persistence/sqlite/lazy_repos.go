package sqlite

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
)

// lazyRepo builds a repository on the first call that needs the database.
type lazyRepo[R any] struct {
	provider port.DatabaseProvider
	build    func(*sql.DB) R
	repo     R
	once     sync.Once
	initErr  error
}

func (l *lazyRepo[R]) get(ctx context.Context) (R, error) {
	l.once.Do(func() {
		db, err := l.provider.DB(ctx)
		if err != nil {
			l.initErr = err
			return
		}
		l.repo = l.build(db)
	})
	return l.repo, l.initErr
}

// LazyHistoryRepository wraps a history repository with lazy database initialization.
type LazyHistoryRepository struct {
	lazy lazyRepo[repository.HistoryRepository]
}

// NewLazyHistoryRepository creates a lazy-loading history repository.
func NewLazyHistoryRepository(provider port.DatabaseProvider) repository.HistoryRepository {
	return &LazyHistoryRepository{lazy: lazyRepo[repository.HistoryRepository]{provider: provider, build: NewHistoryRepository}}
}

func (r *LazyHistoryRepository) Save(ctx context.Context, entry *entity.HistoryEntry) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, entry)
}

func (r *LazyHistoryRepository) UpdateTitle(ctx context.Context, url, title string) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.UpdateTitle(ctx, url, title)
}

func (r *LazyHistoryRepository) UpdateFavicon(ctx context.Context, url, faviconURL string) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.UpdateFavicon(ctx, url, faviconURL)
}

func (r *LazyHistoryRepository) FindByURL(ctx context.Context, url string) (*entity.HistoryEntry, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.FindByURL(ctx, url)
}

func (r *LazyHistoryRepository) GetRecent(ctx context.Context, limit, offset int) ([]*entity.HistoryEntry, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetRecent(ctx, limit, offset)
}

// LazyArchivedTabRepository wraps an archived tab repository with lazy database initialization.
type LazyArchivedTabRepository struct {
	lazy lazyRepo[repository.ArchivedTabRepository]
}

// NewLazyArchivedTabRepository creates a lazy-loading archived tab repository.
func NewLazyArchivedTabRepository(provider port.DatabaseProvider) repository.ArchivedTabRepository {
	return &LazyArchivedTabRepository{lazy: lazyRepo[repository.ArchivedTabRepository]{provider: provider, build: NewArchivedTabRepository}}
}

func (r *LazyArchivedTabRepository) Add(ctx context.Context, tab *entity.ArchivedTab) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Add(ctx, tab)
}

func (r *LazyArchivedTabRepository) List(ctx context.Context, limit int) ([]*entity.ArchivedTab, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, limit)
}

func (r *LazyArchivedTabRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return 0, err
	}
	return repo.DeleteOlderThan(ctx, before)
}

func (r *LazyArchivedTabRepository) DeleteAll(ctx context.Context) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.DeleteAll(ctx)
}

// LazySearchNavigationRepository wraps a search navigation repository with lazy database initialization.
type LazySearchNavigationRepository struct {
	lazy lazyRepo[repository.SearchNavigationRepository]
}

// NewLazySearchNavigationRepository creates a lazy-loading search navigation repository.
func NewLazySearchNavigationRepository(provider port.DatabaseProvider) repository.SearchNavigationRepository {
	return &LazySearchNavigationRepository{lazy: lazyRepo[repository.SearchNavigationRepository]{provider: provider, build: NewSearchNavigationRepository}}
}

func (r *LazySearchNavigationRepository) Save(ctx context.Context, nav *entity.SearchNavigation) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, nav)
}

func (r *LazySearchNavigationRepository) Delete(ctx context.Context, tabID entity.TabID, index int) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, tabID, index)
}

func (r *LazySearchNavigationRepository) DeleteByTab(ctx context.Context, tabID entity.TabID) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.DeleteByTab(ctx, tabID)
}

func (r *LazySearchNavigationRepository) DeleteByTabs(ctx context.Context, tabIDs []entity.TabID) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.DeleteByTabs(ctx, tabIDs)
}

func (r *LazySearchNavigationRepository) ListAll(ctx context.Context) ([]*entity.SearchNavigation, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.ListAll(ctx)
}

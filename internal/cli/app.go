// Package cli wires configuration, storage and the tab lifecycle core for
// the tabshell command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/tabshell/internal/app/browser"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/config"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/infrastructure/favicon"
	"github.com/bnema/tabshell/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabshell/internal/infrastructure/screenshot"
	"github.com/bnema/tabshell/internal/logging"
)

const dataDirPerm = 0o755

// App holds CLI dependencies.
type App struct {
	Config   *config.Config
	Manager  *config.Manager
	Theme    *styles.Theme
	Renderer *styles.TabRenderer

	db                *sqlite.LazyDB
	History           repository.HistoryRepository
	SearchNavigations repository.SearchNavigationRepository

	RecordHistoryUC         *usecase.RecordHistoryUseCase
	ArchiveTabsUC           *usecase.ArchiveTabsUseCase
	ListSearchNavigationsUC *usecase.ListSearchNavigationsUseCase

	ctx context.Context
}

// NewApp loads configuration and prepares repositories. The database is
// opened on first use.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := manager.Get()

	logger := logging.NewFromConfigValues("trace", cfg.Logging.Format)
	logging.SetGlobalLevel(cfg.Logging.Level)
	ctx := logging.WithContext(context.Background(), logger)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), dataDirPerm); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db := sqlite.NewLazyDB(cfg.Database.Path)

	historyRepo := sqlite.NewLazyHistoryRepository(db)
	archiveRepo := sqlite.NewLazyArchivedTabRepository(db)
	searchRepo := sqlite.NewLazySearchNavigationRepository(db)

	theme := styles.NewTheme()
	app := &App{
		Config:            cfg,
		Manager:           manager,
		Theme:             theme,
		Renderer:          styles.NewTabRenderer(theme),
		db:                db,
		History:           historyRepo,
		SearchNavigations: searchRepo,
		RecordHistoryUC:   usecase.NewRecordHistoryUseCase(historyRepo),
		ArchiveTabsUC: usecase.NewArchiveTabsUseCase(archiveRepo, func() entity.ArchiveAfter {
			return manager.Get().Tabs.ArchiveAfter
		}),
		ListSearchNavigationsUC: usecase.NewListSearchNavigationsUseCase(searchRepo),
		ctx:                     ctx,
	}
	logger.Debug().Str("db_path", cfg.Database.Path).Str("config", manager.ConfigFile()).Msg("cli initialized")
	return app, nil
}

// WatchConfig reloads config.toml when it changes. The log level applies
// immediately; the archive-after option is read on every use.
func (a *App) WatchConfig() error {
	a.Manager.OnConfigChange(func(cfg *config.Config) {
		logging.SetGlobalLevel(cfg.Logging.Level)
		logging.FromContext(a.ctx).Info().
			Str("level", cfg.Logging.Level).
			Str("archive_after", string(cfg.Tabs.ArchiveAfter)).
			Msg("configuration reloaded")
	})
	if err := a.Manager.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	return nil
}

// Ctx returns the context carrying the CLI logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// BrowserOptions returns coordinator options backed by the configured
// database and cache directories.
func (a *App) BrowserOptions(incognito bool) browser.Options {
	cfg := a.Config
	return browser.Options{
		HomeURL:           cfg.HomeURL,
		SearchURL:         cfg.SearchURL,
		ScreenshotScale:   cfg.Screenshots.Scale,
		Incognito:         incognito,
		Screenshots:       screenshot.NewStore(cfg.Screenshots.Dir),
		Favicons:          favicon.NewStore(cfg.Favicons.Dir),
		History:           a.RecordHistoryUC,
		Archiver:          a.ArchiveTabsUC,
		SearchNavigations: a.SearchNavigations,
	}
}

// Close releases the database if it was opened.
func (a *App) Close() error {
	return a.db.Close()
}

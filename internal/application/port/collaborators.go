package port

import (
	"context"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// Dispatcher runs functions on the engine's confinement goroutine.
type Dispatcher interface {
	// Post queues fn; it returns immediately.
	Post(fn func())
}

// ScreenshotStore persists tab thumbnails.
type ScreenshotStore interface {
	Save(ctx context.Context, tabID entity.TabID, img []byte) error
	Delete(ctx context.Context, tabID entity.TabID) error
	// Path returns where the thumbnail of tabID is stored.
	Path(tabID entity.TabID) string
	// CleanOrphans removes thumbnails of tabs not in live.
	CleanOrphans(ctx context.Context, live []entity.TabID) (int, error)
}

// FaviconStore persists page favicons.
type FaviconStore interface {
	// Save stores favicon for pageURL and returns the URL history should reference.
	Save(ctx context.Context, pageURL string, favicon Favicon) (string, error)
	// Prune removes cached favicons not used since before.
	Prune(ctx context.Context, before time.Time) (int, error)
}

// HistoryRecorder receives committed visits and title changes.
type HistoryRecorder interface {
	RecordVisit(ctx context.Context, url, title string, visit *entity.Visit) error
	RecordTitle(ctx context.Context, url, title string) error
	RecordFavicon(ctx context.Context, url, title, faviconURL string) error
}

// TabArchiver stores closed tabs and decides which inactive tabs to archive.
type TabArchiver interface {
	Archive(ctx context.Context, tab entity.TabInfo) error
	InactiveTabs(ctx context.Context, tabs []entity.TabInfo, now time.Time) []entity.TabInfo
}

// URLBar is the URL entry surface.
type URLBar interface {
	RequestFocus()
	ClearFocus()
	// ReplaceText shows text in the URL bar without loading it.
	ReplaceText(text string)
}

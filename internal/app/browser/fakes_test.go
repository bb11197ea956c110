package browser_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
)

type fakeScreenshots struct {
	mu      sync.Mutex
	saved   []entity.TabID
	deleted []entity.TabID
	cleaned [][]entity.TabID
}

func (s *fakeScreenshots) Save(_ context.Context, id entity.TabID, _ []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, id)
	return nil
}

func (s *fakeScreenshots) Delete(_ context.Context, id entity.TabID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeScreenshots) Path(id entity.TabID) string { return "/tmp/tab_" + string(id) + ".jpg" }

func (s *fakeScreenshots) CleanOrphans(_ context.Context, live []entity.TabID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleaned = append(s.cleaned, slices.Clone(live))
	return 0, nil
}

func (s *fakeScreenshots) Saved() []entity.TabID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.saved)
}

func (s *fakeScreenshots) Deleted() []entity.TabID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.deleted)
}

type fakeFavicons struct {
	mu    sync.Mutex
	saved []string
}

func (f *fakeFavicons) Save(_ context.Context, pageURL string, _ port.Favicon) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, pageURL)
	return "file:///favicons/" + pageURL, nil
}

func (f *fakeFavicons) Prune(context.Context, time.Time) (int, error) { return 0, nil }

type fakeHistoryRecorder struct {
	mu       sync.Mutex
	visits   []string
	titles   map[string]string
	favicons map[string]string
}

func newFakeHistoryRecorder() *fakeHistoryRecorder {
	return &fakeHistoryRecorder{titles: map[string]string{}, favicons: map[string]string{}}
}

func (h *fakeHistoryRecorder) RecordVisit(_ context.Context, url, _ string, _ *entity.Visit) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.visits = append(h.visits, url)
	return nil
}

func (h *fakeHistoryRecorder) RecordTitle(_ context.Context, url, title string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.titles[url] = title
	return nil
}

func (h *fakeHistoryRecorder) RecordFavicon(_ context.Context, url, _, faviconURL string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.favicons[url] = faviconURL
	return nil
}

func (h *fakeHistoryRecorder) Visits() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.visits)
}

type fakeArchiver struct {
	mu       sync.Mutex
	stale    []entity.TabID
	archived []entity.TabID
}

func (a *fakeArchiver) Archive(_ context.Context, tab entity.TabInfo) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.archived = append(a.archived, tab.ID)
	return nil
}

func (a *fakeArchiver) InactiveTabs(_ context.Context, tabs []entity.TabInfo, _ time.Time) []entity.TabInfo {
	var out []entity.TabInfo
	for _, tab := range tabs {
		if slices.Contains(a.stale, tab.ID) {
			out = append(out, tab)
		}
	}
	return out
}

func (a *fakeArchiver) Archived() []entity.TabID {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.archived)
}

type fakeURLBar struct {
	focusRequests int
	clears        int
	text          string
}

func (u *fakeURLBar) RequestFocus()           { u.focusRequests++ }
func (u *fakeURLBar) ClearFocus()             { u.clears++ }
func (u *fakeURLBar) ReplaceText(text string) { u.text = text }

// queuedDispatcher holds posted functions until Drain runs them.
type queuedDispatcher struct {
	mu     sync.Mutex
	queued []func()
}

func (d *queuedDispatcher) Post(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queued = append(d.queued, fn)
}

func (d *queuedDispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queued)
}

func (d *queuedDispatcher) Drain() {
	d.mu.Lock()
	queued := d.queued
	d.queued = nil
	d.mu.Unlock()
	for _, fn := range queued {
		fn()
	}
}

package sqlite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/persistence/sqlite"
)

func TestHistoryRepository_SaveCountsVisits(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewHistoryRepository(openTestDB(t))

	first := time.UnixMilli(1_700_000_000_000)
	require.NoError(t, repo.Save(ctx, &entity.HistoryEntry{URL: "https://example.com", Title: "Example", LastVisited: first}))
	require.NoError(t, repo.Save(ctx, &entity.HistoryEntry{URL: "https://example.com", LastVisited: first.Add(time.Minute)}))

	got, err := repo.FindByURL(ctx, "https://example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.VisitCount)
	assert.Equal(t, "Example", got.Title, "empty title must not overwrite")
	assert.Equal(t, first.Add(time.Minute), got.LastVisited)
	assert.Equal(t, first, got.CreatedAt)
}

func TestHistoryRepository_AboutBlankCapped(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewHistoryRepository(openTestDB(t))

	for range 3 {
		require.NoError(t, repo.Save(ctx, &entity.HistoryEntry{URL: "about:blank"}))
	}

	got, err := repo.FindByURL(ctx, "about:blank")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.VisitCount)
}

func TestHistoryRepository_FindByURL_Missing(t *testing.T) {
	repo := sqlite.NewHistoryRepository(openTestDB(t))

	got, err := repo.FindByURL(testCtx(), "https://nowhere.test")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestHistoryRepository_UpdateTitleAndFavicon(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewHistoryRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, &entity.HistoryEntry{URL: "https://go.dev"}))
	require.NoError(t, repo.UpdateTitle(ctx, "https://go.dev", "The Go Programming Language"))
	require.NoError(t, repo.UpdateFavicon(ctx, "https://go.dev", "file:///tmp/go.png"))

	got, err := repo.FindByURL(ctx, "https://go.dev")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "The Go Programming Language", got.Title)
	assert.Equal(t, "file:///tmp/go.png", got.FaviconURL)
	assert.Equal(t, int64(1), got.VisitCount)
}

func TestHistoryRepository_GetRecent(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewHistoryRepository(openTestDB(t))

	base := time.UnixMilli(1_700_000_000_000)
	urls := []string{"https://a.test", "https://b.test", "https://c.test"}
	for i, u := range urls {
		require.NoError(t, repo.Save(ctx, &entity.HistoryEntry{URL: u, LastVisited: base.Add(time.Duration(i) * time.Hour)}))
	}

	recent, err := repo.GetRecent(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "https://c.test", recent[0].URL)
	assert.Equal(t, "https://b.test", recent[1].URL)

	rest, err := repo.GetRecent(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "https://a.test", rest[0].URL)
}

package sqlite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/persistence/sqlite"
)

func searchNav(tab string, index int, query string) *entity.SearchNavigation {
	return &entity.SearchNavigation{
		TabID:           entity.TabID(tab),
		NavigationIndex: index,
		NavigationURL:   "https://search.test/?q=" + query,
		SearchQuery:     query,
		CreatedAt:       time.UnixMilli(1_700_000_000_000),
	}
}

func TestSearchNavigationRepository_SaveReplacesSameKey(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSearchNavigationRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, searchNav("t1", 0, "golang")))
	require.NoError(t, repo.Save(ctx, searchNav("t1", 0, "gopher")))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "gopher", all[0].SearchQuery)
	assert.Equal(t, time.UnixMilli(1_700_000_000_000), all[0].CreatedAt)
}

func TestSearchNavigationRepository_ListAllOrdered(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSearchNavigationRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, searchNav("t2", 1, "c")))
	require.NoError(t, repo.Save(ctx, searchNav("t1", 3, "b")))
	require.NoError(t, repo.Save(ctx, searchNav("t1", 0, "a")))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].SearchQuery)
	assert.Equal(t, "b", all[1].SearchQuery)
	assert.Equal(t, "c", all[2].SearchQuery)
}

func TestSearchNavigationRepository_Deletes(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSearchNavigationRepository(openTestDB(t))

	for _, nav := range []*entity.SearchNavigation{
		searchNav("t1", 0, "a"), searchNav("t1", 1, "b"),
		searchNav("t2", 0, "c"), searchNav("t3", 0, "d"), searchNav("t4", 0, "e"),
	} {
		require.NoError(t, repo.Save(ctx, nav))
	}

	require.NoError(t, repo.Delete(ctx, "t1", 0))
	require.NoError(t, repo.DeleteByTab(ctx, "t2"))
	require.NoError(t, repo.DeleteByTabs(ctx, []entity.TabID{"t3", "t4"}))
	require.NoError(t, repo.DeleteByTabs(ctx, nil))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entity.TabID("t1"), all[0].TabID)
	assert.Equal(t, 1, all[0].NavigationIndex)
}

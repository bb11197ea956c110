package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
	repomocks "github.com/bnema/tabshell/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArchiveTabs_Archive_StoresTab(t *testing.T) {
	repo := repomocks.NewMockArchivedTabRepository(t)
	repo.EXPECT().Add(mock.Anything, mock.AnythingOfType("*entity.ArchivedTab")).
		Run(func(_ context.Context, a *entity.ArchivedTab) {
			assert.Equal(t, "https://example.com/", a.URL)
			assert.Equal(t, "Example", a.Title)
		}).
		Return(nil)

	uc := usecase.NewArchiveTabsUseCase(repo, nil)
	err := uc.Archive(testContext(), entity.TabInfo{ID: "a", URL: "https://example.com/", Title: "Example"})
	require.NoError(t, err)
}

func TestArchiveTabs_Archive_SkipsTabWithoutURL(t *testing.T) {
	repo := repomocks.NewMockArchivedTabRepository(t)
	uc := usecase.NewArchiveTabsUseCase(repo, nil)
	require.NoError(t, uc.Archive(testContext(), entity.TabInfo{ID: "a"}))
}

func TestArchiveTabs_Archive_WrapsError(t *testing.T) {
	repo := repomocks.NewMockArchivedTabRepository(t)
	repo.EXPECT().Add(mock.Anything, mock.Anything).Return(errors.New("locked"))

	uc := usecase.NewArchiveTabsUseCase(repo, nil)
	err := uc.Archive(testContext(), entity.TabInfo{ID: "a", URL: "https://example.com/"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
}

func TestArchiveTabs_InactiveTabs(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	daysAgo := func(d int) int64 { return now.Add(-time.Duration(d) * 24 * time.Hour).UnixMilli() }
	tabs := []entity.TabInfo{
		{ID: "stale", Data: entity.PersistedData{LastActiveMs: daysAgo(40)}},
		{ID: "week", Data: entity.PersistedData{LastActiveMs: daysAgo(8)}},
		{ID: "fresh", Data: entity.PersistedData{LastActiveMs: daysAgo(1)}},
		{ID: "selected", IsSelected: true, Data: entity.PersistedData{LastActiveMs: daysAgo(90)}},
	}
	repo := repomocks.NewMockArchivedTabRepository(t)

	setting := entity.ArchiveAfter7Days
	uc := usecase.NewArchiveTabsUseCase(repo, func() entity.ArchiveAfter { return setting })

	ids := func(in []entity.TabInfo) []entity.TabID {
		out := make([]entity.TabID, 0, len(in))
		for _, tab := range in {
			out = append(out, tab.ID)
		}
		return out
	}

	assert.Equal(t, []entity.TabID{"stale", "week"}, ids(uc.InactiveTabs(testContext(), tabs, now)))

	setting = entity.ArchiveAfter30Days
	assert.Equal(t, []entity.TabID{"stale"}, ids(uc.InactiveTabs(testContext(), tabs, now)))

	setting = entity.ArchiveAfterNever
	assert.Empty(t, uc.InactiveTabs(testContext(), tabs, now))
}

func TestArchiveTabs_List_DefaultLimit(t *testing.T) {
	repo := repomocks.NewMockArchivedTabRepository(t)
	repo.EXPECT().List(mock.Anything, 50).Return([]*entity.ArchivedTab{{URL: "https://a.example/"}}, nil)

	uc := usecase.NewArchiveTabsUseCase(repo, nil)
	tabs, err := uc.List(testContext(), 0)
	require.NoError(t, err)
	require.Len(t, tabs, 1)
}

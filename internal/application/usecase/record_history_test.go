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

func TestRecordHistory_RecordVisit_SavesEntry(t *testing.T) {
	ctx := testContext()
	historyRepo := repomocks.NewMockHistoryRepository(t)
	visitedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	historyRepo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.HistoryEntry")).
		Run(func(_ context.Context, e *entity.HistoryEntry) {
			assert.Equal(t, "https://example.com/", e.URL)
			assert.Equal(t, "Example", e.Title)
			assert.True(t, e.LastVisited.Equal(visitedAt))
		}).
		Return(nil)

	uc := usecase.NewRecordHistoryUseCase(historyRepo)
	err := uc.RecordVisit(ctx, "https://example.com/", "Example", &entity.Visit{URL: "https://example.com/", Timestamp: visitedAt})
	require.NoError(t, err)
}

func TestRecordHistory_RecordVisit_SkipsAboutPages(t *testing.T) {
	historyRepo := repomocks.NewMockHistoryRepository(t)
	uc := usecase.NewRecordHistoryUseCase(historyRepo)

	require.NoError(t, uc.RecordVisit(testContext(), "about:blank", "", nil))
	require.NoError(t, uc.RecordVisit(testContext(), "", "", nil))
}

func TestRecordHistory_RecordVisit_WrapsError(t *testing.T) {
	historyRepo := repomocks.NewMockHistoryRepository(t)
	historyRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	uc := usecase.NewRecordHistoryUseCase(historyRepo)
	err := uc.RecordVisit(testContext(), "https://example.com/", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRecordHistory_RecordTitle_UpdatesExisting(t *testing.T) {
	historyRepo := repomocks.NewMockHistoryRepository(t)
	historyRepo.EXPECT().FindByURL(mock.Anything, "https://example.com/").
		Return(&entity.HistoryEntry{URL: "https://example.com/", Title: "Old"}, nil)
	historyRepo.EXPECT().UpdateTitle(mock.Anything, "https://example.com/", "New").Return(nil)

	uc := usecase.NewRecordHistoryUseCase(historyRepo)
	require.NoError(t, uc.RecordTitle(testContext(), "https://example.com/", "New"))
}

func TestRecordHistory_RecordTitle_SameTitleIsNoop(t *testing.T) {
	historyRepo := repomocks.NewMockHistoryRepository(t)
	historyRepo.EXPECT().FindByURL(mock.Anything, "https://example.com/").
		Return(&entity.HistoryEntry{URL: "https://example.com/", Title: "Same"}, nil)

	uc := usecase.NewRecordHistoryUseCase(historyRepo)
	require.NoError(t, uc.RecordTitle(testContext(), "https://example.com/", "Same"))
}

func TestRecordHistory_RecordTitle_CreatesMissing(t *testing.T) {
	historyRepo := repomocks.NewMockHistoryRepository(t)
	historyRepo.EXPECT().FindByURL(mock.Anything, "https://example.com/").Return(nil, nil)
	historyRepo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.HistoryEntry")).Return(nil)

	uc := usecase.NewRecordHistoryUseCase(historyRepo)
	require.NoError(t, uc.RecordTitle(testContext(), "https://example.com/", "Title"))
}

func TestRecordHistory_RecordFavicon(t *testing.T) {
	historyRepo := repomocks.NewMockHistoryRepository(t)
	historyRepo.EXPECT().FindByURL(mock.Anything, "https://example.com/").
		Return(&entity.HistoryEntry{URL: "https://example.com/"}, nil)
	historyRepo.EXPECT().UpdateFavicon(mock.Anything, "https://example.com/", "file:///icons/example.com.ico").Return(nil)

	uc := usecase.NewRecordHistoryUseCase(historyRepo)
	require.NoError(t, uc.RecordFavicon(testContext(), "https://example.com/", "", "file:///icons/example.com.ico"))
}

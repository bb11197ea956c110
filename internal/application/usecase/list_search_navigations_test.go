package usecase_test

import (
	"testing"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
	repomocks "github.com/bnema/tabshell/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListSearchNavigations_FiltersByTab(t *testing.T) {
	repo := repomocks.NewMockSearchNavigationRepository(t)
	repo.EXPECT().ListAll(mock.Anything).Return([]*entity.SearchNavigation{
		{TabID: "a", NavigationIndex: 0, SearchQuery: "go"},
		{TabID: "b", NavigationIndex: 1, SearchQuery: "rust"},
	}, nil).Times(2)

	uc := usecase.NewListSearchNavigationsUseCase(repo)

	all, err := uc.Execute(testContext(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyB, err := uc.Execute(testContext(), "b")
	require.NoError(t, err)
	require.Len(t, onlyB, 1)
	assert.Equal(t, "rust", onlyB[0].SearchQuery)
}

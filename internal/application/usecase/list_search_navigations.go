package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
)

// ListSearchNavigationsUseCase reads stored search navigations.
type ListSearchNavigationsUseCase struct {
	repo repository.SearchNavigationRepository
}

// NewListSearchNavigationsUseCase creates a new listing use case.
func NewListSearchNavigationsUseCase(repo repository.SearchNavigationRepository) *ListSearchNavigationsUseCase {
	return &ListSearchNavigationsUseCase{repo: repo}
}

// Execute returns stored entries, optionally filtered to one tab.
func (uc *ListSearchNavigationsUseCase) Execute(ctx context.Context, tabID entity.TabID) ([]*entity.SearchNavigation, error) {
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list search navigations: %w", err)
	}
	if tabID == "" {
		return all, nil
	}
	filtered := make([]*entity.SearchNavigation, 0, len(all))
	for _, nav := range all {
		if nav.TabID == tabID {
			filtered = append(filtered, nav)
		}
	}
	return filtered, nil
}

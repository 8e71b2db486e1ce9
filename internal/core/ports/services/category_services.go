package services

import (
	"context"

	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	"github.com/FinRoots/finance_tracker_app/internal/dto"
)

// CategorySvcFacade defines the category management operations.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
	BulkDeleteCategories(ctx context.Context, userID string, categoryIDs []string) (int64, error)
}

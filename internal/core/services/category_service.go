package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/FinRoots/finance_tracker_app/internal/apperrors"
	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/FinRoots/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/FinRoots/finance_tracker_app/internal/core/ports/services"
	"github.com/FinRoots/finance_tracker_app/internal/dto"
	"github.com/google/uuid"
)

// categoryService implements the CategorySvcFacade interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(repo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: repo}
}

// Ensure categoryService implements the CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		AuditFields: newAuditFields(userID, now),
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_name", req.Name))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID, userID)
}

func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategoriesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	deleted, err := s.categoryRepo.DeleteCategories(ctx, []string{categoryID}, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if deleted == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *categoryService) BulkDeleteCategories(ctx context.Context, userID string, categoryIDs []string) (int64, error) {
	deleted, err := s.categoryRepo.DeleteCategories(ctx, categoryIDs, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to bulk delete categories", slog.Int("requested", len(categoryIDs)))
		return 0, fmt.Errorf("failed to delete categories: %w", err)
	}
	s.LogInfo(ctx, "Categories deleted", slog.Int64("deleted", deleted))
	return deleted, nil
}

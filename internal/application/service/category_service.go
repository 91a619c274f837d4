package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	"github.com/sofrahq/sofra-api/internal/domain/repository"
	"github.com/sofrahq/sofra-api/pkg/apperror"
	"github.com/sofrahq/sofra-api/pkg/utils"
)

// CategoryService handles menu category operations
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategoryInput represents the create category input
type CreateCategoryInput struct {
	Name          string
	NameLocalized string
	Reference     string
	SortOrder     int
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error) {
	reference := input.Reference
	if reference == "" {
		reference = utils.Slugify(input.Name)
	}

	category := &entity.Category{
		Name:          input.Name,
		NameLocalized: input.NameLocalized,
		Reference:     reference,
		SortOrder:     input.SortOrder,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// ListCategories lists categories in menu order
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// UpdateCategoryInput represents the update category input
type UpdateCategoryInput struct {
	ID            uuid.UUID
	Name          string
	NameLocalized string
	SortOrder     int
}

// UpdateCategory updates a category
func (s *CategoryService) UpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	category.Name = input.Name
	category.NameLocalized = input.NameLocalized
	category.SortOrder = input.SortOrder

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory deletes a category
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}

	return s.categoryRepo.Delete(ctx, id)
}

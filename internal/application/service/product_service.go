package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	"github.com/sofrahq/sofra-api/internal/domain/repository"
	"github.com/sofrahq/sofra-api/pkg/apperror"
	"github.com/sofrahq/sofra-api/pkg/pagination"
	"github.com/sofrahq/sofra-api/pkg/utils"
)

// ProductService handles menu product operations
type ProductService struct {
	productRepo  repository.ProductRepository
	modifierRepo repository.ModifierOptionRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	modifierRepo repository.ModifierOptionRepository,
	categoryRepo repository.CategoryRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		modifierRepo: modifierRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	CategoryID    *uuid.UUID
	Name          string
	NameLocalized string
	SKU           string
	Price         float64
	Calories      *int
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	sku := input.SKU
	if sku == "" {
		sku = utils.GenerateSKU()
	} else {
		existing, err := s.productRepo.GetBySKU(ctx, sku)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Product with this SKU already exists")
		}
	}

	product := &entity.Product{
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		NameLocalized: input.NameLocalized,
		SKU:           sku,
		Calories:      input.Calories,
		Active:        true,
	}
	product.SetPriceFromDecimal(input.Price)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product with its modifier options
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetWithModifiers(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID            uuid.UUID
	CategoryID    *uuid.UUID
	Name          string
	NameLocalized string
	Price         float64
	Calories      *int
	Active        bool
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	product.CategoryID = input.CategoryID
	product.Name = input.Name
	product.NameLocalized = input.NameLocalized
	product.Calories = input.Calories
	product.Active = input.Active
	product.SetPriceFromDecimal(input.Price)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	return s.productRepo.Delete(ctx, id)
}

// ModifierOptionInput represents a modifier option input
type ModifierOptionInput struct {
	ProductID     uuid.UUID
	Name          string
	NameLocalized string
	Price         float64
	IsDefault     bool
}

// AddModifierOption attaches a modifier option to a product
func (s *ProductService) AddModifierOption(ctx context.Context, input *ModifierOptionInput) (*entity.ModifierOption, error) {
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	option := &entity.ModifierOption{
		ProductID:     input.ProductID,
		Name:          input.Name,
		NameLocalized: input.NameLocalized,
		Price:         int64(input.Price * 100),
		IsDefault:     input.IsDefault,
	}

	if err := s.modifierRepo.Create(ctx, option); err != nil {
		return nil, err
	}

	return option, nil
}

// RemoveModifierOption detaches a modifier option from its product
func (s *ProductService) RemoveModifierOption(ctx context.Context, id uuid.UUID) error {
	option, err := s.modifierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if option == nil {
		return apperror.NewNotFoundError("Modifier option")
	}

	return s.modifierRepo.Delete(ctx, id)
}

package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	domainRepo "github.com/sofrahq/sofra-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetWithModifiers(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Modifiers").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "sku = ?", sku).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR sku ILIKE ?", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "name"
	sortOrder := "ASC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "DESC" || params.SortOrder == "desc" {
		sortOrder = "DESC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Category").
		Order(sortBy + " " + sortOrder).
		Find(&products).Error

	return products, total, err
}

type modifierOptionRepository struct {
	db *gorm.DB
}

// NewModifierOptionRepository creates a new modifier option repository
func NewModifierOptionRepository(db *gorm.DB) domainRepo.ModifierOptionRepository {
	return &modifierOptionRepository{db: db}
}

func (r *modifierOptionRepository) Create(ctx context.Context, option *entity.ModifierOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}

func (r *modifierOptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ModifierOption, error) {
	var option entity.ModifierOption
	err := r.db.WithContext(ctx).First(&option, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &option, err
}

func (r *modifierOptionRepository) Update(ctx context.Context, option *entity.ModifierOption) error {
	return r.db.WithContext(ctx).Save(option).Error
}

func (r *modifierOptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ModifierOption{}, "id = ?", id).Error
}

func (r *modifierOptionRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]entity.ModifierOption, error) {
	var options []entity.ModifierOption
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("name ASC").
		Find(&options).Error
	return options, err
}

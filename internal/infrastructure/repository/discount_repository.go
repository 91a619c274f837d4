package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	domainRepo "github.com/sofrahq/sofra-api/internal/domain/repository"
	"gorm.io/gorm"
)

type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository creates a new discount repository
func NewDiscountRepository(db *gorm.DB) domainRepo.DiscountRepository {
	return &discountRepository{db: db}
}

func (r *discountRepository) Create(ctx context.Context, discount *entity.Discount) error {
	return r.db.WithContext(ctx).Create(discount).Error
}

func (r *discountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	var discount entity.Discount
	err := r.db.WithContext(ctx).First(&discount, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &discount, err
}

func (r *discountRepository) Update(ctx context.Context, discount *entity.Discount) error {
	return r.db.WithContext(ctx).Save(discount).Error
}

func (r *discountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Discount{}, "id = ?", id).Error
}

func (r *discountRepository) List(ctx context.Context, activeOnly bool) ([]entity.Discount, error) {
	var discounts []entity.Discount
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Order("name ASC").Find(&discounts).Error
	return discounts, err
}

type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository creates a new promotion repository
func NewPromotionRepository(db *gorm.DB) domainRepo.PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

func (r *promotionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	var promotion entity.Promotion
	err := r.db.WithContext(ctx).First(&promotion, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &promotion, err
}

func (r *promotionRepository) Update(ctx context.Context, promotion *entity.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

func (r *promotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Promotion{}, "id = ?", id).Error
}

func (r *promotionRepository) List(ctx context.Context) ([]entity.Promotion, error) {
	var promotions []entity.Promotion
	err := r.db.WithContext(ctx).Order("starts_at DESC").Find(&promotions).Error
	return promotions, err
}

func (r *promotionRepository) ListRunning(ctx context.Context, at time.Time) ([]entity.Promotion, error) {
	var promotions []entity.Promotion
	err := r.db.WithContext(ctx).
		Where("active = ? AND starts_at <= ? AND ends_at > ?", true, at, at).
		Find(&promotions).Error
	return promotions, err
}

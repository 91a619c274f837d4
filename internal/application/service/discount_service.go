package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	"github.com/sofrahq/sofra-api/internal/domain/enum"
	"github.com/sofrahq/sofra-api/internal/domain/repository"
	"github.com/sofrahq/sofra-api/pkg/apperror"
)

// DiscountService handles discount and promotion operations
type DiscountService struct {
	discountRepo  repository.DiscountRepository
	promotionRepo repository.PromotionRepository
}

// NewDiscountService creates a new discount service
func NewDiscountService(
	discountRepo repository.DiscountRepository,
	promotionRepo repository.PromotionRepository,
) *DiscountService {
	return &DiscountService{
		discountRepo:  discountRepo,
		promotionRepo: promotionRepo,
	}
}

// CreateDiscountInput represents the create discount input
type CreateDiscountInput struct {
	Name          string
	NameLocalized string
	Type          enum.DiscountType
	Percentage    float64
	Amount        float64
}

// CreateDiscount creates a new discount
func (s *DiscountService) CreateDiscount(ctx context.Context, input *CreateDiscountInput) (*entity.Discount, error) {
	if input.Type == enum.DiscountTypePercentage && (input.Percentage <= 0 || input.Percentage > 100) {
		return nil, apperror.NewBadRequestError("Percentage must be between 0 and 100")
	}
	if input.Type == enum.DiscountTypeFixed && input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}

	discount := &entity.Discount{
		Name:          input.Name,
		NameLocalized: input.NameLocalized,
		Type:          input.Type,
		Percentage:    input.Percentage,
		Amount:        int64(input.Amount * 100),
		Active:        true,
	}

	if err := s.discountRepo.Create(ctx, discount); err != nil {
		return nil, err
	}

	return discount, nil
}

// GetDiscount retrieves a discount by ID
func (s *DiscountService) GetDiscount(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.NewNotFoundError("Discount")
	}
	return discount, nil
}

// ListDiscounts lists discounts
func (s *DiscountService) ListDiscounts(ctx context.Context, activeOnly bool) ([]entity.Discount, error) {
	return s.discountRepo.List(ctx, activeOnly)
}

// UpdateDiscountInput represents the update discount input
type UpdateDiscountInput struct {
	ID            uuid.UUID
	Name          string
	NameLocalized string
	Percentage    float64
	Amount        float64
	Active        bool
}

// UpdateDiscount updates a discount
func (s *DiscountService) UpdateDiscount(ctx context.Context, input *UpdateDiscountInput) (*entity.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.NewNotFoundError("Discount")
	}

	discount.Name = input.Name
	discount.NameLocalized = input.NameLocalized
	discount.Percentage = input.Percentage
	discount.Amount = int64(input.Amount * 100)
	discount.Active = input.Active

	if err := s.discountRepo.Update(ctx, discount); err != nil {
		return nil, err
	}

	return discount, nil
}

// DeleteDiscount deletes a discount
func (s *DiscountService) DeleteDiscount(ctx context.Context, id uuid.UUID) error {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if discount == nil {
		return apperror.NewNotFoundError("Discount")
	}

	return s.discountRepo.Delete(ctx, id)
}

// CreatePromotionInput represents the create promotion input
type CreatePromotionInput struct {
	Name          string
	NameLocalized string
	Percentage    float64
	StartsAt      time.Time
	EndsAt        time.Time
}

// CreatePromotion creates a new promotion campaign
func (s *DiscountService) CreatePromotion(ctx context.Context, input *CreatePromotionInput) (*entity.Promotion, error) {
	if input.Percentage <= 0 || input.Percentage > 100 {
		return nil, apperror.NewBadRequestError("Percentage must be between 0 and 100")
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, apperror.NewBadRequestError("Promotion end must be after its start")
	}

	promotion := &entity.Promotion{
		Name:          input.Name,
		NameLocalized: input.NameLocalized,
		Percentage:    input.Percentage,
		StartsAt:      input.StartsAt,
		EndsAt:        input.EndsAt,
		Active:        true,
	}

	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, err
	}

	return promotion, nil
}

// GetPromotion retrieves a promotion by ID
func (s *DiscountService) GetPromotion(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	promotion, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, apperror.NewNotFoundError("Promotion")
	}
	return promotion, nil
}

// ListPromotions lists all promotions
func (s *DiscountService) ListPromotions(ctx context.Context) ([]entity.Promotion, error) {
	return s.promotionRepo.List(ctx)
}

// UpdatePromotionInput represents the update promotion input
type UpdatePromotionInput struct {
	ID            uuid.UUID
	Name          string
	NameLocalized string
	Percentage    float64
	StartsAt      time.Time
	EndsAt        time.Time
	Active        bool
}

// UpdatePromotion updates a promotion
func (s *DiscountService) UpdatePromotion(ctx context.Context, input *UpdatePromotionInput) (*entity.Promotion, error) {
	promotion, err := s.promotionRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, apperror.NewNotFoundError("Promotion")
	}

	promotion.Name = input.Name
	promotion.NameLocalized = input.NameLocalized
	promotion.Percentage = input.Percentage
	promotion.StartsAt = input.StartsAt
	promotion.EndsAt = input.EndsAt
	promotion.Active = input.Active

	if err := s.promotionRepo.Update(ctx, promotion); err != nil {
		return nil, err
	}

	return promotion, nil
}

// DeletePromotion deletes a promotion
func (s *DiscountService) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	promotion, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if promotion == nil {
		return apperror.NewNotFoundError("Promotion")
	}

	return s.promotionRepo.Delete(ctx, id)
}

package request

import "time"

// CreateDiscountRequest represents a discount creation request
type CreateDiscountRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	NameLocalized string  `json:"name_localized" binding:"omitempty,max=255"`
	Type          string  `json:"type" binding:"required,oneof=Percentage Fixed"`
	Percentage    float64 `json:"percentage" binding:"omitempty,gt=0,max=100"`
	Amount        float64 `json:"amount" binding:"omitempty,gt=0"`
}

// UpdateDiscountRequest represents a discount update request
type UpdateDiscountRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	NameLocalized string  `json:"name_localized" binding:"omitempty,max=255"`
	Percentage    float64 `json:"percentage" binding:"omitempty,gt=0,max=100"`
	Amount        float64 `json:"amount" binding:"omitempty,gt=0"`
	Active        bool    `json:"active"`
}

// CreatePromotionRequest represents a promotion creation request
type CreatePromotionRequest struct {
	Name          string    `json:"name" binding:"required,min=2,max=255"`
	NameLocalized string    `json:"name_localized" binding:"omitempty,max=255"`
	Percentage    float64   `json:"percentage" binding:"required,gt=0,max=100"`
	StartsAt      time.Time `json:"starts_at" binding:"required"`
	EndsAt        time.Time `json:"ends_at" binding:"required"`
}

// UpdatePromotionRequest represents a promotion update request
type UpdatePromotionRequest struct {
	Name          string    `json:"name" binding:"required,min=2,max=255"`
	NameLocalized string    `json:"name_localized" binding:"omitempty,max=255"`
	Percentage    float64   `json:"percentage" binding:"required,gt=0,max=100"`
	StartsAt      time.Time `json:"starts_at" binding:"required"`
	EndsAt        time.Time `json:"ends_at" binding:"required"`
	Active        bool      `json:"active"`
}

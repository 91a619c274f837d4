package request

import "github.com/google/uuid"

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=255"`
	NameLocalized string `json:"name_localized" binding:"omitempty,max=255"`
	Reference     string `json:"reference" binding:"omitempty,max=100"`
	SortOrder     int    `json:"sort_order" binding:"min=0"`
}

// UpdateCategoryRequest represents a category update request
type UpdateCategoryRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=255"`
	NameLocalized string `json:"name_localized" binding:"omitempty,max=255"`
	SortOrder     int    `json:"sort_order" binding:"min=0"`
}

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	CategoryID    *uuid.UUID `json:"category_id"`
	Name          string     `json:"name" binding:"required,min=2,max=255"`
	NameLocalized string     `json:"name_localized" binding:"omitempty,max=255"`
	SKU           string     `json:"sku" binding:"omitempty,max=100"`
	Price         float64    `json:"price" binding:"required,gt=0"`
	Calories      *int       `json:"calories" binding:"omitempty,min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	CategoryID    *uuid.UUID `json:"category_id"`
	Name          string     `json:"name" binding:"required,min=2,max=255"`
	NameLocalized string     `json:"name_localized" binding:"omitempty,max=255"`
	Price         float64    `json:"price" binding:"required,gt=0"`
	Calories      *int       `json:"calories" binding:"omitempty,min=0"`
	Active        bool       `json:"active"`
}

// AddModifierOptionRequest represents a modifier option creation request
type AddModifierOptionRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	NameLocalized string  `json:"name_localized" binding:"omitempty,max=255"`
	Price         float64 `json:"price" binding:"min=0"`
	IsDefault     bool    `json:"is_default"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	ActiveOnly bool   `form:"active_only"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

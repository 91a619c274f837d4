package request

import "github.com/google/uuid"

// OrderItemRequest represents one line on a new order
type OrderItemRequest struct {
	ProductID  uuid.UUID   `json:"product_id" binding:"required"`
	Quantity   int         `json:"quantity" binding:"required,min=1"`
	ModifierID []uuid.UUID `json:"modifier_ids"`
	DiscountID *uuid.UUID  `json:"discount_id"`
}

// OpenOrderRequest represents an order creation request
type OpenOrderRequest struct {
	Type          string             `json:"type" binding:"required,oneof=DINE_IN PICKUP DELIVERY DRIVE_THRU"`
	BranchID      *uuid.UUID         `json:"branch_id"`
	DeviceID      *uuid.UUID         `json:"device_id"`
	TableNo       string             `json:"table_no" binding:"omitempty,max=20"`
	Guests        *int               `json:"guests" binding:"omitempty,min=1"`
	CustomerName  string             `json:"customer_name" binding:"omitempty,max=255"`
	CustomerPhone string             `json:"customer_phone" binding:"omitempty,max=50"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PaymentRequest represents a single tender when closing an order
type PaymentRequest struct {
	Method string  `json:"method" binding:"required,oneof=CASH CARD ONLINE"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// CloseOrderRequest represents an order close request
type CloseOrderRequest struct {
	Payments []PaymentRequest `json:"payments" binding:"required,min=1,dive"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search    string `form:"search"`
	Status    string `form:"status"`
	Type      string `form:"type"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/application/service"
	"github.com/sofrahq/sofra-api/internal/domain/enum"
	"github.com/sofrahq/sofra-api/internal/presentation/http/dto/request"
	"github.com/sofrahq/sofra-api/internal/presentation/http/dto/response"
)

// DiscountHandler handles discount and promotion HTTP requests
type DiscountHandler struct {
	discountService *service.DiscountService
}

// NewDiscountHandler creates a new discount handler
func NewDiscountHandler(discountService *service.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService}
}

// CreateDiscount handles discount creation
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	var req request.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	discountType := enum.DiscountTypePercentage
	if req.Type == "Fixed" {
		discountType = enum.DiscountTypeFixed
	}

	discount, err := h.discountService.CreateDiscount(c.Request.Context(), &service.CreateDiscountInput{
		Name:          req.Name,
		NameLocalized: req.NameLocalized,
		Type:          discountType,
		Percentage:    req.Percentage,
		Amount:        req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Discount created successfully", discount)
}

// GetDiscount handles retrieving a single discount
func (h *DiscountHandler) GetDiscount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	discount, err := h.discountService.GetDiscount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount retrieved successfully", discount)
}

// ListDiscounts handles listing discounts
func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	discounts, err := h.discountService.ListDiscounts(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discounts retrieved successfully", discounts)
}

// UpdateDiscount handles discount updates
func (h *DiscountHandler) UpdateDiscount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	var req request.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	discount, err := h.discountService.UpdateDiscount(c.Request.Context(), &service.UpdateDiscountInput{
		ID:            id,
		Name:          req.Name,
		NameLocalized: req.NameLocalized,
		Percentage:    req.Percentage,
		Amount:        req.Amount,
		Active:        req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount updated successfully", discount)
}

// DeleteDiscount handles discount deletion
func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	if err := h.discountService.DeleteDiscount(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount deleted successfully", nil)
}

// CreatePromotion handles promotion creation
func (h *DiscountHandler) CreatePromotion(c *gin.Context) {
	var req request.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	promotion, err := h.discountService.CreatePromotion(c.Request.Context(), &service.CreatePromotionInput{
		Name:          req.Name,
		NameLocalized: req.NameLocalized,
		Percentage:    req.Percentage,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Promotion created successfully", promotion)
}

// GetPromotion handles retrieving a single promotion
func (h *DiscountHandler) GetPromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid promotion ID")
		return
	}

	promotion, err := h.discountService.GetPromotion(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promotion retrieved successfully", promotion)
}

// ListPromotions handles listing promotions
func (h *DiscountHandler) ListPromotions(c *gin.Context) {
	promotions, err := h.discountService.ListPromotions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promotions retrieved successfully", promotions)
}

// UpdatePromotion handles promotion updates
func (h *DiscountHandler) UpdatePromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid promotion ID")
		return
	}

	var req request.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	promotion, err := h.discountService.UpdatePromotion(c.Request.Context(), &service.UpdatePromotionInput{
		ID:            id,
		Name:          req.Name,
		NameLocalized: req.NameLocalized,
		Percentage:    req.Percentage,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
		Active:        req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promotion updated successfully", promotion)
}

// DeletePromotion handles promotion deletion
func (h *DiscountHandler) DeletePromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid promotion ID")
		return
	}

	if err := h.discountService.DeletePromotion(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promotion deleted successfully", nil)
}

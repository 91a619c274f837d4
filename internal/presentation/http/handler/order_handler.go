package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/application/service"
	"github.com/sofrahq/sofra-api/internal/domain/enum"
	"github.com/sofrahq/sofra-api/internal/domain/repository"
	"github.com/sofrahq/sofra-api/internal/presentation/http/dto/request"
	"github.com/sofrahq/sofra-api/internal/presentation/http/dto/response"
	"github.com/sofrahq/sofra-api/pkg/pagination"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Open handles opening a new order
func (h *OrderHandler) Open(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.OpenOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// Cashiers open orders at their own branch. Admins must name one.
	branchID := GetUserBranchID(c)
	if req.BranchID != nil && IsAdmin(c) {
		branchID = req.BranchID
	}
	if branchID == nil {
		response.BadRequest(c, "No branch specified")
		return
	}

	orderType, ok := enum.ParseOrderType(req.Type)
	if !ok {
		response.BadRequest(c, "Invalid order type")
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			ModifierID: item.ModifierID,
			DiscountID: item.DiscountID,
		})
	}

	order, err := h.orderService.OpenOrder(c.Request.Context(), &service.OpenOrderInput{
		BranchID:      *branchID,
		DeviceID:      req.DeviceID,
		CreatorID:     *userID,
		Type:          orderType,
		TableNo:       req.TableNo,
		Guests:        req.Guests,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order opened successfully", order)
}

// Get handles retrieving an order with its items and payments
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List handles listing orders with filters
func (h *OrderHandler) List(c *gin.Context) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.Status != "" {
		status, ok := enum.ParseOrderStatus(filter.Status)
		if !ok {
			response.BadRequest(c, "Invalid order status")
			return
		}
		params.Status = &status
	}

	if filter.Type != "" {
		orderType, ok := enum.ParseOrderType(filter.Type)
		if !ok {
			response.BadRequest(c, "Invalid order type")
			return
		}
		params.Type = &orderType
	}

	if filter.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", filter.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start date")
			return
		}
		params.StartDate = &startDate
	}

	if filter.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", filter.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end date")
			return
		}
		params.EndDate = &endDate
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Close handles settling an open order with payments
func (h *OrderHandler) Close(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.CloseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payments := make([]service.PaymentInput, 0, len(req.Payments))
	for _, p := range req.Payments {
		payments = append(payments, service.PaymentInput{
			Method: p.Method,
			Amount: int64(p.Amount * 100),
		})
	}

	order, err := h.orderService.CloseOrder(c.Request.Context(), id, *userID, payments)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order closed successfully", order)
}

// Void handles voiding an open order
func (h *OrderHandler) Void(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.VoidOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order voided successfully", nil)
}

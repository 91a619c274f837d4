package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/application/service"
	"github.com/sofrahq/sofra-api/internal/presentation/http/dto/request"
	"github.com/sofrahq/sofra-api/internal/presentation/http/dto/response"
	"github.com/sofrahq/sofra-api/pkg/pagination"
)

// BranchHandler handles branch and device HTTP requests
type BranchHandler struct {
	branchService *service.BranchService
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(branchService *service.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

// Create handles branch creation
func (h *BranchHandler) Create(c *gin.Context) {
	var req request.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), &service.CreateBranchInput{
		Name:          req.Name,
		NameLocalized: req.NameLocalized,
		Reference:     req.Reference,
		TaxNumber:     req.TaxNumber,
		Phone:         req.Phone,
		Address:       req.Address,
		Timezone:      req.Timezone,
		OpeningFrom:   req.OpeningFrom,
		OpeningTo:     req.OpeningTo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Branch created successfully", branch)
}

// Get handles retrieving a single branch
func (h *BranchHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID")
		return
	}

	branch, err := h.branchService.GetBranch(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branch retrieved successfully", branch)
}

// List handles listing branches
func (h *BranchHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.branchService.ListBranches(c.Request.Context(), &params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Branches retrieved successfully", result)
}

// Update handles branch updates
func (h *BranchHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID")
		return
	}

	var req request.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), &service.UpdateBranchInput{
		ID:            id,
		Name:          req.Name,
		NameLocalized: req.NameLocalized,
		TaxNumber:     req.TaxNumber,
		Phone:         req.Phone,
		Address:       req.Address,
		Timezone:      req.Timezone,
		OpeningFrom:   req.OpeningFrom,
		OpeningTo:     req.OpeningTo,
		Active:        req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branch updated successfully", branch)
}

// Delete handles branch deletion
func (h *BranchHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID")
		return
	}

	if err := h.branchService.DeleteBranch(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branch deleted successfully", nil)
}

// RegisterDevice handles registering a cashier device at a branch
func (h *BranchHandler) RegisterDevice(c *gin.Context) {
	branchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID")
		return
	}

	var req request.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	device, err := h.branchService.RegisterDevice(c.Request.Context(), &service.RegisterDeviceInput{
		BranchID:       branchID,
		Name:           req.Name,
		PrinterType:    req.PrinterType,
		PrinterUSBPath: req.PrinterUSBPath,
		PrinterAddress: req.PrinterAddress,
		PaperWidth:     req.PaperWidth,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Device registered successfully", device)
}

// ListDevices handles listing a branch's devices
func (h *BranchHandler) ListDevices(c *gin.Context) {
	branchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid branch ID")
		return
	}

	devices, err := h.branchService.ListDevices(c.Request.Context(), branchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Devices retrieved successfully", devices)
}

// GetDevice handles retrieving a single device
func (h *BranchHandler) GetDevice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("deviceId"))
	if err != nil {
		response.BadRequest(c, "Invalid device ID")
		return
	}

	device, err := h.branchService.GetDevice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Device retrieved successfully", device)
}

// UpdateDevice handles device updates
func (h *BranchHandler) UpdateDevice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("deviceId"))
	if err != nil {
		response.BadRequest(c, "Invalid device ID")
		return
	}

	var req request.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	device, err := h.branchService.UpdateDevice(c.Request.Context(), &service.UpdateDeviceInput{
		ID:             id,
		Name:           req.Name,
		PrinterType:    req.PrinterType,
		PrinterUSBPath: req.PrinterUSBPath,
		PrinterAddress: req.PrinterAddress,
		PaperWidth:     req.PaperWidth,
		Active:         req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Device updated successfully", device)
}

// DeleteDevice handles device deletion
func (h *BranchHandler) DeleteDevice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("deviceId"))
	if err != nil {
		response.BadRequest(c, "Invalid device ID")
		return
	}

	if err := h.branchService.DeleteDevice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Device deleted successfully", nil)
}

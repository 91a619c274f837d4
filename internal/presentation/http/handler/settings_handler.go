package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/application/service"
	"github.com/sofrahq/sofra-api/internal/domain/enum"
	"github.com/sofrahq/sofra-api/internal/presentation/http/dto/request"
	"github.com/sofrahq/sofra-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles print settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// resolveBranchID picks the branch from the path for admins, otherwise
// the branch on the caller's token
func (h *SettingsHandler) resolveBranchID(c *gin.Context) (uuid.UUID, bool) {
	if param := c.Param("id"); param != "" {
		id, err := uuid.Parse(param)
		if err != nil {
			response.BadRequest(c, "Invalid branch ID")
			return uuid.Nil, false
		}
		return id, true
	}

	branchID := GetUserBranchID(c)
	if branchID == nil {
		response.BadRequest(c, "No branch specified")
		return uuid.Nil, false
	}
	return *branchID, true
}

// GetPrintSettings handles retrieving a branch's print settings
func (h *SettingsHandler) GetPrintSettings(c *gin.Context) {
	branchID, ok := h.resolveBranchID(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.GetPrintSettings(c.Request.Context(), branchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Print settings retrieved successfully", settings)
}

// UpdatePrintSettings handles updating a branch's print settings
func (h *SettingsHandler) UpdatePrintSettings(c *gin.Context) {
	branchID, ok := h.resolveBranchID(c)
	if !ok {
		return
	}

	var req request.UpdatePrintSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	printLanguage, valid := enum.ParsePrintLanguage(req.PrintLanguage)
	if !valid {
		response.BadRequest(c, "Invalid print language")
		return
	}

	settings, err := h.settingsService.UpdatePrintSettings(c.Request.Context(), &service.UpdatePrintSettingsInput{
		BranchID:          branchID,
		PrintLanguage:     printLanguage,
		MainLanguage:      req.MainLanguage,
		LocalizedLanguage: req.LocalizedLanguage,
		ReceiptHeader:     req.ReceiptHeader,
		ReceiptFooter:     req.ReceiptFooter,
		InvoiceTitle:      req.InvoiceTitle,

		ShowOrderNumber:            req.ShowOrderNumber,
		ShowCalories:               req.ShowCalories,
		ShowSubtotal:               req.ShowSubtotal,
		ShowRounding:               req.ShowRounding,
		ShowCloserUsername:         req.ShowCloserUsername,
		ShowCreatorUsername:        req.ShowCreatorUsername,
		ShowCheckNumber:            req.ShowCheckNumber,
		HideFreeModifierOptions:    req.HideFreeModifierOptions,
		PrintCustomerPhoneInPickup: req.PrintCustomerPhoneInPickup,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Print settings updated successfully", settings)
}

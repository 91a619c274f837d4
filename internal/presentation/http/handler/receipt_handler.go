package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/application/service"
	"github.com/sofrahq/sofra-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt rendering and printing requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Render returns the receipt for an order as plain text. POS clients
// use this for on-screen preview before printing.
func (h *ReceiptHandler) Render(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	text, err := h.receiptService.RenderReceipt(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, text)
		return
	}

	response.OK(c, "Receipt rendered successfully", gin.H{
		"receipt": text,
	})
}

// Print renders an order's receipt and sends it to the order's printer
func (h *ReceiptHandler) Print(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	text, err := h.receiptService.PrintReceipt(c.Request.Context(), orderID)
	if err != nil {
		// The rendered text still comes back so the cashier can
		// hand-copy or re-print from another device
		if text != "" {
			response.OK(c, "Receipt rendered but printing failed", gin.H{
				"receipt": text,
				"printed": false,
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{
		"receipt": text,
		"printed": true,
	})
}

// PrintTest sends a test page to a device's printer
func (h *ReceiptHandler) PrintTest(c *gin.Context) {
	deviceID, err := uuid.Parse(c.Param("deviceId"))
	if err != nil {
		response.BadRequest(c, "Invalid device ID")
		return
	}

	if err := h.receiptService.PrintTestPage(c.Request.Context(), deviceID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test page printed successfully", nil)
}

package request

// UpdatePrintSettingsRequest represents a print settings update request
type UpdatePrintSettingsRequest struct {
	PrintLanguage     string `json:"print_language" binding:"required,oneof=MAIN_LOCALIZED MAIN_ONLY LOCALIZED_ONLY"`
	MainLanguage      string `json:"main_language" binding:"required,len=2"`
	LocalizedLanguage string `json:"localized_language" binding:"omitempty,len=2"`
	ReceiptHeader     string `json:"receipt_header" binding:"omitempty,max=500"`
	ReceiptFooter     string `json:"receipt_footer" binding:"omitempty,max=500"`
	InvoiceTitle      string `json:"invoice_title" binding:"omitempty,max=255"`

	ShowOrderNumber            bool `json:"show_order_number"`
	ShowCalories               bool `json:"show_calories"`
	ShowSubtotal               bool `json:"show_subtotal"`
	ShowRounding               bool `json:"show_rounding"`
	ShowCloserUsername         bool `json:"show_closer_username"`
	ShowCreatorUsername        bool `json:"show_creator_username"`
	ShowCheckNumber            bool `json:"show_check_number"`
	HideFreeModifierOptions    bool `json:"hide_free_modifier_options"`
	PrintCustomerPhoneInPickup bool `json:"print_customer_phone_in_pickup"`
}

package request

// CreateBranchRequest represents a branch creation request
type CreateBranchRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	NameLocalized string  `json:"name_localized" binding:"omitempty,max=255"`
	Reference     string  `json:"reference" binding:"required,min=2,max=50"`
	TaxNumber     string  `json:"tax_number" binding:"omitempty,max=50"`
	Phone         string  `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	Timezone      string  `json:"timezone" binding:"omitempty,timezone"`
	OpeningFrom   string  `json:"opening_from" binding:"omitempty,len=5"`
	OpeningTo     string  `json:"opening_to" binding:"omitempty,len=5"`
}

// UpdateBranchRequest represents a branch update request
type UpdateBranchRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	NameLocalized string  `json:"name_localized" binding:"omitempty,max=255"`
	TaxNumber     string  `json:"tax_number" binding:"omitempty,max=50"`
	Phone         string  `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	Timezone      string  `json:"timezone" binding:"omitempty,timezone"`
	OpeningFrom   string  `json:"opening_from" binding:"omitempty,len=5"`
	OpeningTo     string  `json:"opening_to" binding:"omitempty,len=5"`
	Active        bool    `json:"active"`
}

// RegisterDeviceRequest represents a device registration request
type RegisterDeviceRequest struct {
	Name           string `json:"name" binding:"required,min=2,max=255"`
	PrinterType    string `json:"printer_type" binding:"omitempty,oneof=none usb network"`
	PrinterUSBPath string `json:"printer_usb_path" binding:"omitempty,max=255"`
	PrinterAddress string `json:"printer_address" binding:"omitempty,max=255"`
	PaperWidth     int    `json:"paper_width" binding:"omitempty,oneof=32 42 48"`
}

// UpdateDeviceRequest represents a device update request
type UpdateDeviceRequest struct {
	Name           string `json:"name" binding:"required,min=2,max=255"`
	PrinterType    string `json:"printer_type" binding:"omitempty,oneof=none usb network"`
	PrinterUSBPath string `json:"printer_usb_path" binding:"omitempty,max=255"`
	PrinterAddress string `json:"printer_address" binding:"omitempty,max=255"`
	PaperWidth     int    `json:"paper_width" binding:"omitempty,oneof=32 42 48"`
	Active         bool   `json:"active"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/enum"
	"gorm.io/gorm"
)

// PrintSettings holds the receipt print configuration for a branch. Each
// boolean toggle gates exactly one optional line or section on the receipt.
type PrintSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BranchID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"branch_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Language selection
	PrintLanguage     enum.PrintLanguage `gorm:"default:0" json:"print_language"`
	MainLanguage      string             `gorm:"size:10;default:'en'" json:"main_language"`
	LocalizedLanguage string             `gorm:"size:10;default:'ar'" json:"localized_language"`

	// Free-text blocks
	ReceiptHeader string `gorm:"type:text" json:"receipt_header"`
	ReceiptFooter string `gorm:"type:text" json:"receipt_footer"`
	InvoiceTitle  string `gorm:"size:255" json:"invoice_title"`

	// Line/section toggles
	ShowOrderNumber            bool `gorm:"default:true" json:"show_order_number"`
	ShowCalories               bool `gorm:"default:false" json:"show_calories"`
	ShowSubtotal               bool `gorm:"default:true" json:"show_subtotal"`
	ShowRounding               bool `gorm:"default:false" json:"show_rounding"`
	ShowCloserUsername         bool `gorm:"default:false" json:"show_closer_username"`
	ShowCreatorUsername        bool `gorm:"default:false" json:"show_creator_username"`
	ShowCheckNumber            bool `gorm:"default:false" json:"show_check_number"`
	HideFreeModifierOptions    bool `gorm:"default:false" json:"hide_free_modifier_options"`
	PrintCustomerPhoneInPickup bool `gorm:"default:false" json:"print_customer_phone_in_pickup"`

	// Relationships
	Branch Branch `gorm:"foreignKey:BranchID" json:"-"`
}

// BeforeCreate generates a UUID before creating new print settings
func (s *PrintSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PrintSettings model
func (PrintSettings) TableName() string {
	return "print_settings"
}

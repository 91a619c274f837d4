package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Printer connection types for a device
const (
	PrinterTypeNone    = "none"
	PrinterTypeUSB     = "usb"
	PrinterTypeNetwork = "network"
)

// Device represents a cashier terminal registered at a branch, together
// with its attached receipt printer
type Device struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BranchID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"branch_id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Code           string         `gorm:"size:50;unique;not null" json:"code"`
	PrinterType    string         `gorm:"size:20;default:'none'" json:"printer_type"`
	PrinterUSBPath string         `gorm:"size:255" json:"printer_usb_path"`
	PrinterAddress string         `gorm:"size:255" json:"printer_address"`
	PaperWidth     int            `gorm:"default:42" json:"paper_width"` // characters: 32, 42 or 48
	Active         bool           `gorm:"default:true" json:"active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Branch Branch `gorm:"foreignKey:BranchID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new device
func (d *Device) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Device model
func (Device) TableName() string {
	return "devices"
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultBranchTimezone is used when a branch is created without one.
// Business dates and per-day order numbering follow the branch timezone.
const DefaultBranchTimezone = "Asia/Riyadh"

// Branch represents a restaurant location
type Branch struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	NameLocalized string         `gorm:"size:255" json:"name_localized"`
	Reference     string         `gorm:"size:50;unique;not null" json:"reference"`
	TaxNumber     string         `gorm:"size:50" json:"tax_number"`
	Phone         string         `gorm:"size:50" json:"phone"`
	Address       *string        `gorm:"type:text" json:"address,omitempty"`
	Timezone      string         `gorm:"size:64;default:'Asia/Riyadh'" json:"timezone"`
	OpeningFrom   string         `gorm:"size:10" json:"opening_from"`
	OpeningTo     string         `gorm:"size:10" json:"opening_to"`
	Active        bool           `gorm:"default:true" json:"active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Devices []Device `gorm:"foreignKey:BranchID" json:"devices,omitempty"`
}

// BeforeCreate generates a UUID before creating a new branch
func (b *Branch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Branch model
func (Branch) TableName() string {
	return "branches"
}

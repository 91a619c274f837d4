package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Discount represents a discount that cashiers can apply to orders or items
type Discount struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name          string            `gorm:"size:255;not null" json:"name"`
	NameLocalized string            `gorm:"size:255" json:"name_localized"`
	Type          enum.DiscountType `gorm:"default:0" json:"type"`
	Percentage    float64           `gorm:"default:0" json:"percentage"`
	Amount        int64             `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Active        bool              `gorm:"default:true" json:"active"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (d Discount) MarshalJSON() ([]byte, error) {
	type Alias Discount
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(d),
		Amount: float64(d.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new discount
func (d *Discount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Discount model
func (Discount) TableName() string {
	return "discounts"
}

// Apply returns the discount value in cents for a given base amount in cents
func (d *Discount) Apply(base int64) int64 {
	if d.Type == enum.DiscountTypePercentage {
		return int64(float64(base) * d.Percentage / 100)
	}
	if d.Amount > base {
		return base
	}
	return d.Amount
}

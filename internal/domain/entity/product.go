package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a sellable menu item
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID    *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	NameLocalized string         `gorm:"size:255" json:"name_localized"`
	SKU           string         `gorm:"size:100;unique;not null" json:"sku"`
	Price         int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Calories      *int           `json:"calories,omitempty"`
	Active        bool           `gorm:"default:true" json:"active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category  *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Modifiers []ModifierOption `gorm:"foreignKey:ProductID" json:"modifiers,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: float64(p.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the price as a decimal
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// SetPriceFromDecimal sets the price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = int64(price * 100)
}

// ModifierOption represents an option that can be attached to a product on
// an order line. A price of zero marks the option as free/default.
type ModifierOption struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProductID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	NameLocalized string         `gorm:"size:255" json:"name_localized"`
	Price         int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	IsDefault     bool           `gorm:"default:false" json:"is_default"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (m ModifierOption) MarshalJSON() ([]byte, error) {
	type Alias ModifierOption
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(m),
		Price: float64(m.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new modifier option
func (m *ModifierOption) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ModifierOption model
func (ModifierOption) TableName() string {
	return "modifier_options"
}

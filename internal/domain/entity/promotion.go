package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Promotion represents a time-limited automatic percentage discount campaign
type Promotion struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	NameLocalized string         `gorm:"size:255" json:"name_localized"`
	Percentage    float64        `gorm:"default:0" json:"percentage"`
	StartsAt      time.Time      `gorm:"not null" json:"starts_at"`
	EndsAt        time.Time      `gorm:"not null" json:"ends_at"`
	Active        bool           `gorm:"default:true" json:"active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new promotion
func (p *Promotion) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Promotion model
func (Promotion) TableName() string {
	return "promotions"
}

// IsRunning reports whether the promotion applies at the given time
func (p *Promotion) IsRunning(at time.Time) bool {
	return p.Active && !at.Before(p.StartsAt) && at.Before(p.EndsAt)
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey stores the response of a completed mutating request so
// client retries return the original result instead of a duplicate order
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Key          string    `gorm:"size:255;uniqueIndex;not null" json:"key"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Method       string    `gorm:"size:10;not null" json:"method"`
	Path         string    `gorm:"size:255;not null" json:"path"`
	StatusCode   int       `json:"status_code"`
	ResponseBody []byte    `gorm:"type:bytea" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `gorm:"index" json:"expires_at"`
}

// TableName returns the table name for the IdempotencyKey model
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired reports whether the stored response can no longer be replayed
func (k *IdempotencyKey) IsExpired() bool {
	return time.Now().After(k.ExpiresAt)
}

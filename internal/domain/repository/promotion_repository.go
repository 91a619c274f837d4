package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
)

// PromotionRepository defines the interface for promotion data operations
type PromotionRepository interface {
	Create(ctx context.Context, promotion *entity.Promotion) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)
	Update(ctx context.Context, promotion *entity.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Promotion, error)
	ListRunning(ctx context.Context, at time.Time) ([]entity.Promotion, error)
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
)

// PrintSettingsRepository defines the interface for per-branch print settings
type PrintSettingsRepository interface {
	GetByBranchID(ctx context.Context, branchID uuid.UUID) (*entity.PrintSettings, error)
	Create(ctx context.Context, settings *entity.PrintSettings) error
	Update(ctx context.Context, settings *entity.PrintSettings) error
}

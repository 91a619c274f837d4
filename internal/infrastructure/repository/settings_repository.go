package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	domainRepo "github.com/sofrahq/sofra-api/internal/domain/repository"
	"gorm.io/gorm"
)

type printSettingsRepository struct {
	db *gorm.DB
}

// NewPrintSettingsRepository creates a new print settings repository
func NewPrintSettingsRepository(db *gorm.DB) domainRepo.PrintSettingsRepository {
	return &printSettingsRepository{db: db}
}

func (r *printSettingsRepository) GetByBranchID(ctx context.Context, branchID uuid.UUID) (*entity.PrintSettings, error) {
	var settings entity.PrintSettings
	err := r.db.WithContext(ctx).First(&settings, "branch_id = ?", branchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *printSettingsRepository) Create(ctx context.Context, settings *entity.PrintSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *printSettingsRepository) Update(ctx context.Context, settings *entity.PrintSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

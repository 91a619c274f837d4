package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	"github.com/sofrahq/sofra-api/internal/domain/enum"
	"github.com/sofrahq/sofra-api/internal/domain/repository"
	"github.com/sofrahq/sofra-api/pkg/apperror"
)

// SettingsService handles per-branch print settings
type SettingsService struct {
	settingsRepo repository.PrintSettingsRepository
	branchRepo   repository.BranchRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(
	settingsRepo repository.PrintSettingsRepository,
	branchRepo repository.BranchRepository,
) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		branchRepo:   branchRepo,
	}
}

// GetPrintSettings retrieves print settings for a branch, creating
// defaults on first read so every branch can always print
func (s *SettingsService) GetPrintSettings(ctx context.Context, branchID uuid.UUID) (*entity.PrintSettings, error) {
	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	settings, err := s.settingsRepo.GetByBranchID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.PrintSettings{
			BranchID:          branchID,
			PrintLanguage:     enum.PrintLanguageMainLocalized,
			MainLanguage:      "en",
			LocalizedLanguage: "ar",
			ShowOrderNumber:   true,
			ShowSubtotal:      true,
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdatePrintSettingsInput represents the input for updating print settings
type UpdatePrintSettingsInput struct {
	BranchID          uuid.UUID
	PrintLanguage     enum.PrintLanguage
	MainLanguage      string
	LocalizedLanguage string
	ReceiptHeader     string
	ReceiptFooter     string
	InvoiceTitle      string

	ShowOrderNumber            bool
	ShowCalories               bool
	ShowSubtotal               bool
	ShowRounding               bool
	ShowCloserUsername         bool
	ShowCreatorUsername        bool
	ShowCheckNumber            bool
	HideFreeModifierOptions    bool
	PrintCustomerPhoneInPickup bool
}

// UpdatePrintSettings updates print settings for a branch
func (s *SettingsService) UpdatePrintSettings(ctx context.Context, input *UpdatePrintSettingsInput) (*entity.PrintSettings, error) {
	settings, err := s.GetPrintSettings(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}

	settings.PrintLanguage = input.PrintLanguage
	settings.MainLanguage = input.MainLanguage
	settings.LocalizedLanguage = input.LocalizedLanguage
	settings.ReceiptHeader = input.ReceiptHeader
	settings.ReceiptFooter = input.ReceiptFooter
	settings.InvoiceTitle = input.InvoiceTitle

	settings.ShowOrderNumber = input.ShowOrderNumber
	settings.ShowCalories = input.ShowCalories
	settings.ShowSubtotal = input.ShowSubtotal
	settings.ShowRounding = input.ShowRounding
	settings.ShowCloserUsername = input.ShowCloserUsername
	settings.ShowCreatorUsername = input.ShowCreatorUsername
	settings.ShowCheckNumber = input.ShowCheckNumber
	settings.HideFreeModifierOptions = input.HideFreeModifierOptions
	settings.PrintCustomerPhoneInPickup = input.PrintCustomerPhoneInPickup

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	"github.com/sofrahq/sofra-api/internal/domain/repository"
	"github.com/sofrahq/sofra-api/pkg/apperror"
	"github.com/sofrahq/sofra-api/pkg/pagination"
	"github.com/sofrahq/sofra-api/pkg/utils"
)

// BranchService handles branch and device operations
type BranchService struct {
	branchRepo repository.BranchRepository
	deviceRepo repository.DeviceRepository
}

// NewBranchService creates a new branch service
func NewBranchService(branchRepo repository.BranchRepository, deviceRepo repository.DeviceRepository) *BranchService {
	return &BranchService{
		branchRepo: branchRepo,
		deviceRepo: deviceRepo,
	}
}

// CreateBranchInput represents the create branch input
type CreateBranchInput struct {
	Name          string
	NameLocalized string
	Reference     string
	TaxNumber     string
	Phone         string
	Address       *string
	Timezone      string
	OpeningFrom   string
	OpeningTo     string
}

// CreateBranch creates a new branch
func (s *BranchService) CreateBranch(ctx context.Context, input *CreateBranchInput) (*entity.Branch, error) {
	existing, err := s.branchRepo.GetByReference(ctx, input.Reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Branch with this reference already exists")
	}

	tz := input.Timezone
	if tz == "" {
		tz = entity.DefaultBranchTimezone
	}

	branch := &entity.Branch{
		Name:          input.Name,
		NameLocalized: input.NameLocalized,
		Reference:     input.Reference,
		TaxNumber:     input.TaxNumber,
		Phone:         input.Phone,
		Address:       input.Address,
		Timezone:      tz,
		OpeningFrom:   input.OpeningFrom,
		OpeningTo:     input.OpeningTo,
		Active:        true,
	}

	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}

	return branch, nil
}

// GetBranch retrieves a branch with its devices
func (s *BranchService) GetBranch(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}
	return branch, nil
}

// ListBranches lists branches with pagination
func (s *BranchService) ListBranches(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Branch], error) {
	branches, total, err := s.branchRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(branches, pag), nil
}

// UpdateBranchInput represents the update branch input
type UpdateBranchInput struct {
	ID            uuid.UUID
	Name          string
	NameLocalized string
	TaxNumber     string
	Phone         string
	Address       *string
	Timezone      string
	OpeningFrom   string
	OpeningTo     string
	Active        bool
}

// UpdateBranch updates a branch
func (s *BranchService) UpdateBranch(ctx context.Context, input *UpdateBranchInput) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	branch.Name = input.Name
	branch.NameLocalized = input.NameLocalized
	branch.TaxNumber = input.TaxNumber
	branch.Phone = input.Phone
	branch.Address = input.Address
	if input.Timezone != "" {
		branch.Timezone = input.Timezone
	}
	branch.OpeningFrom = input.OpeningFrom
	branch.OpeningTo = input.OpeningTo
	branch.Active = input.Active

	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}

	return branch, nil
}

// DeleteBranch deletes a branch
func (s *BranchService) DeleteBranch(ctx context.Context, id uuid.UUID) error {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if branch == nil {
		return apperror.NewNotFoundError("Branch")
	}

	return s.branchRepo.Delete(ctx, id)
}

// RegisterDeviceInput represents the register device input
type RegisterDeviceInput struct {
	BranchID       uuid.UUID
	Name           string
	PrinterType    string
	PrinterUSBPath string
	PrinterAddress string
	PaperWidth     int
}

// RegisterDevice registers a cashier device at a branch. The generated
// pairing code is what the terminal uses to identify itself.
func (s *BranchService) RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*entity.Device, error) {
	branch, err := s.branchRepo.GetByID(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	printerType := input.PrinterType
	if printerType == "" {
		printerType = entity.PrinterTypeNone
	}
	paperWidth := input.PaperWidth
	if paperWidth == 0 {
		paperWidth = 42
	}

	device := &entity.Device{
		BranchID:       input.BranchID,
		Name:           input.Name,
		Code:           utils.GenerateDeviceCode(),
		PrinterType:    printerType,
		PrinterUSBPath: input.PrinterUSBPath,
		PrinterAddress: input.PrinterAddress,
		PaperWidth:     paperWidth,
		Active:         true,
	}

	if err := s.deviceRepo.Create(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

// GetDevice retrieves a device by ID
func (s *BranchService) GetDevice(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, apperror.NewNotFoundError("Device")
	}
	return device, nil
}

// ListDevices lists the devices registered at a branch
func (s *BranchService) ListDevices(ctx context.Context, branchID uuid.UUID) ([]entity.Device, error) {
	return s.deviceRepo.ListByBranch(ctx, branchID)
}

// UpdateDeviceInput represents the update device input
type UpdateDeviceInput struct {
	ID             uuid.UUID
	Name           string
	PrinterType    string
	PrinterUSBPath string
	PrinterAddress string
	PaperWidth     int
	Active         bool
}

// UpdateDevice updates a device's printer configuration
func (s *BranchService) UpdateDevice(ctx context.Context, input *UpdateDeviceInput) (*entity.Device, error) {
	device, err := s.deviceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, apperror.NewNotFoundError("Device")
	}

	device.Name = input.Name
	device.PrinterType = input.PrinterType
	device.PrinterUSBPath = input.PrinterUSBPath
	device.PrinterAddress = input.PrinterAddress
	if input.PaperWidth != 0 {
		device.PaperWidth = input.PaperWidth
	}
	device.Active = input.Active

	if err := s.deviceRepo.Update(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

// DeleteDevice removes a device
func (s *BranchService) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	device, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if device == nil {
		return apperror.NewNotFoundError("Device")
	}

	return s.deviceRepo.Delete(ctx, id)
}

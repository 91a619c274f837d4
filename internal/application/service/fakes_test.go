package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	"github.com/sofrahq/sofra-api/internal/domain/enum"
	"github.com/sofrahq/sofra-api/internal/domain/repository"
	"github.com/sofrahq/sofra-api/pkg/pagination"
)

// In-memory repository fakes shared by the service tests.

type fakeOrderRepo struct {
	orders   map[uuid.UUID]*entity.Order
	items    *fakeOrderItemRepo
	payments *fakeOrderPaymentRepo
	closeErr error // returned by CloseWithPayments before any write
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:   make(map[uuid.UUID]*entity.Order),
		items:    &fakeOrderItemRepo{},
		payments: &fakeOrderPaymentRepo{},
	}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *order
	return &cp, nil
}

func (f *fakeOrderRepo) GetByOrderNo(_ context.Context, branchID uuid.UUID, orderNo string) (*entity.Order, error) {
	for _, order := range f.orders {
		if order.BranchID == branchID && order.OrderNo == orderNo {
			cp := *order
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := f.GetByID(ctx, id)
	if err != nil || order == nil {
		return order, err
	}
	if items, _ := f.items.GetByOrderID(ctx, id); len(items) > 0 {
		order.Items = items
	}
	if payments, _ := f.payments.GetByOrderID(ctx, id); len(payments) > 0 {
		order.Payments = payments
	}
	return order, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) CloseWithPayments(ctx context.Context, order *entity.Order, payments []entity.OrderPayment) error {
	if f.closeErr != nil {
		return f.closeErr
	}
	if err := f.payments.CreateBatch(ctx, payments); err != nil {
		return err
	}
	return f.Update(ctx, order)
}

func (f *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context, _ *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	out := make([]entity.Order, 0, len(f.orders))
	for _, order := range f.orders {
		out = append(out, *order)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if order, ok := f.orders[id]; ok {
		order.Status = status
	}
	return nil
}

func (f *fakeOrderRepo) CountForBusinessDate(_ context.Context, branchID uuid.UUID, businessDate time.Time) (int64, error) {
	var count int64
	for _, order := range f.orders {
		if order.BranchID == branchID && order.BusinessDate.Equal(businessDate) {
			count++
		}
	}
	return count, nil
}

type fakeOrderItemRepo struct {
	items []entity.OrderItem
}

func (f *fakeOrderItemRepo) CreateBatch(_ context.Context, items []entity.OrderItem) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeOrderItemRepo) GetByOrderID(_ context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	var out []entity.OrderItem
	for _, item := range f.items {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeOrderItemRepo) DeleteByOrderID(_ context.Context, orderID uuid.UUID) error {
	kept := f.items[:0]
	for _, item := range f.items {
		if item.OrderID != orderID {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

type fakeOrderPaymentRepo struct {
	payments []entity.OrderPayment
}

func (f *fakeOrderPaymentRepo) CreateBatch(_ context.Context, payments []entity.OrderPayment) error {
	for i := range payments {
		if payments[i].ID == uuid.Nil {
			payments[i].ID = uuid.New()
		}
	}
	f.payments = append(f.payments, payments...)
	return nil
}

func (f *fakeOrderPaymentRepo) GetByOrderID(_ context.Context, orderID uuid.UUID) ([]entity.OrderPayment, error) {
	var out []entity.OrderPayment
	for _, p := range f.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetWithModifiers(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, _ *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	out := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

type fakeDiscountRepo struct {
	discounts map[uuid.UUID]*entity.Discount
}

func newFakeDiscountRepo(discounts ...*entity.Discount) *fakeDiscountRepo {
	f := &fakeDiscountRepo{discounts: make(map[uuid.UUID]*entity.Discount)}
	for _, d := range discounts {
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		f.discounts[d.ID] = d
	}
	return f
}

func (f *fakeDiscountRepo) Create(_ context.Context, discount *entity.Discount) error {
	if discount.ID == uuid.Nil {
		discount.ID = uuid.New()
	}
	f.discounts[discount.ID] = discount
	return nil
}

func (f *fakeDiscountRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Discount, error) {
	return f.discounts[id], nil
}

func (f *fakeDiscountRepo) Update(_ context.Context, discount *entity.Discount) error {
	f.discounts[discount.ID] = discount
	return nil
}

func (f *fakeDiscountRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.discounts, id)
	return nil
}

func (f *fakeDiscountRepo) List(_ context.Context, activeOnly bool) ([]entity.Discount, error) {
	var out []entity.Discount
	for _, d := range f.discounts {
		if activeOnly && !d.Active {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

type fakePromotionRepo struct {
	promotions []*entity.Promotion
}

func (f *fakePromotionRepo) Create(_ context.Context, promotion *entity.Promotion) error {
	if promotion.ID == uuid.Nil {
		promotion.ID = uuid.New()
	}
	f.promotions = append(f.promotions, promotion)
	return nil
}

func (f *fakePromotionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Promotion, error) {
	for _, p := range f.promotions {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePromotionRepo) Update(_ context.Context, promotion *entity.Promotion) error {
	for i, p := range f.promotions {
		if p.ID == promotion.ID {
			f.promotions[i] = promotion
		}
	}
	return nil
}

func (f *fakePromotionRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := f.promotions[:0]
	for _, p := range f.promotions {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.promotions = kept
	return nil
}

func (f *fakePromotionRepo) List(_ context.Context) ([]entity.Promotion, error) {
	out := make([]entity.Promotion, 0, len(f.promotions))
	for _, p := range f.promotions {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePromotionRepo) ListRunning(_ context.Context, at time.Time) ([]entity.Promotion, error) {
	var out []entity.Promotion
	for _, p := range f.promotions {
		if p.IsRunning(at) {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeBranchRepo struct {
	branches map[uuid.UUID]*entity.Branch
}

func newFakeBranchRepo(branches ...*entity.Branch) *fakeBranchRepo {
	f := &fakeBranchRepo{branches: make(map[uuid.UUID]*entity.Branch)}
	for _, b := range branches {
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}
		f.branches[b.ID] = b
	}
	return f
}

func (f *fakeBranchRepo) Create(_ context.Context, branch *entity.Branch) error {
	if branch.ID == uuid.Nil {
		branch.ID = uuid.New()
	}
	f.branches[branch.ID] = branch
	return nil
}

func (f *fakeBranchRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Branch, error) {
	return f.branches[id], nil
}

func (f *fakeBranchRepo) GetByReference(_ context.Context, reference string) (*entity.Branch, error) {
	for _, b := range f.branches {
		if b.Reference == reference {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBranchRepo) Update(_ context.Context, branch *entity.Branch) error {
	f.branches[branch.ID] = branch
	return nil
}

func (f *fakeBranchRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.branches, id)
	return nil
}

func (f *fakeBranchRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Branch, int64, error) {
	out := make([]entity.Branch, 0, len(f.branches))
	for _, b := range f.branches {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

type fakeDeviceRepo struct {
	devices map[uuid.UUID]*entity.Device
}

func newFakeDeviceRepo(devices ...*entity.Device) *fakeDeviceRepo {
	f := &fakeDeviceRepo{devices: make(map[uuid.UUID]*entity.Device)}
	for _, d := range devices {
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		f.devices[d.ID] = d
	}
	return f
}

func (f *fakeDeviceRepo) Create(_ context.Context, device *entity.Device) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	f.devices[device.ID] = device
	return nil
}

func (f *fakeDeviceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Device, error) {
	return f.devices[id], nil
}

func (f *fakeDeviceRepo) GetByCode(_ context.Context, code string) (*entity.Device, error) {
	for _, d := range f.devices {
		if d.Code == code {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDeviceRepo) Update(_ context.Context, device *entity.Device) error {
	f.devices[device.ID] = device
	return nil
}

func (f *fakeDeviceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.devices, id)
	return nil
}

func (f *fakeDeviceRepo) ListByBranch(_ context.Context, branchID uuid.UUID) ([]entity.Device, error) {
	var out []entity.Device
	for _, d := range f.devices {
		if d.BranchID == branchID {
			out = append(out, *d)
		}
	}
	return out, nil
}

type fakePrintSettingsRepo struct {
	byBranch map[uuid.UUID]*entity.PrintSettings
}

func newFakePrintSettingsRepo() *fakePrintSettingsRepo {
	return &fakePrintSettingsRepo{byBranch: make(map[uuid.UUID]*entity.PrintSettings)}
}

func (f *fakePrintSettingsRepo) GetByBranchID(_ context.Context, branchID uuid.UUID) (*entity.PrintSettings, error) {
	return f.byBranch[branchID], nil
}

func (f *fakePrintSettingsRepo) Create(_ context.Context, settings *entity.PrintSettings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	f.byBranch[settings.BranchID] = settings
	return nil
}

func (f *fakePrintSettingsRepo) Update(_ context.Context, settings *entity.PrintSettings) error {
	f.byBranch[settings.BranchID] = settings
	return nil
}

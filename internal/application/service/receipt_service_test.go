package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	"github.com/sofrahq/sofra-api/internal/domain/enum"
)

type receiptFixture struct {
	svc      *ReceiptService
	orders   *fakeOrderRepo
	devices  *fakeDeviceRepo
	settings *fakePrintSettingsRepo
	branch   *entity.Branch
}

func newReceiptFixture(t *testing.T) *receiptFixture {
	t.Helper()

	branch := &entity.Branch{ID: uuid.New(), Name: "Olaya Branch", Reference: "OLY"}
	orders := newFakeOrderRepo()
	devices := newFakeDeviceRepo()
	settings := newFakePrintSettingsRepo()

	settingsService := NewSettingsService(settings, newFakeBranchRepo(branch))
	svc := NewReceiptService(orders, devices, settingsService)

	return &receiptFixture{
		svc:      svc,
		orders:   orders,
		devices:  devices,
		settings: settings,
		branch:   branch,
	}
}

func (fx *receiptFixture) storeOrder(order *entity.Order) {
	order.Branch = *fx.branch
	order.BranchID = fx.branch.ID
	fx.orders.orders[order.ID] = order
}

func sampleClosedOrder(branchID uuid.UUID) *entity.Order {
	opened := time.Date(2026, 5, 2, 19, 30, 0, 0, time.UTC)
	closed := opened.Add(40 * time.Minute)
	return &entity.Order{
		ID:           uuid.New(),
		BranchID:     branchID,
		OrderNo:      "7",
		CheckNo:      "OLY-0006",
		Type:         enum.OrderTypeDineIn,
		Status:       enum.OrderStatusClosed,
		BusinessDate: time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		OpenedAt:     &opened,
		ClosedAt:     &closed,
		CreatorID:    uuid.New(),
		Creator:      entity.User{FirstName: "Sara", LastName: "Hamdan"},
		SubTotal:     4600,
		TaxTotal:     600,
		NetTotal:     4600,
		Items: []entity.OrderItem{
			{
				ProductName: "Shawarma Plate",
				Quantity:    2,
				UnitPrice:   2300,
				TotalPrice:  4600,
			},
		},
		Payments: []entity.OrderPayment{{Method: "CASH", Amount: 5000}},
	}
}

func TestRenderReceipt_ConvertsCentsToDecimals(t *testing.T) {
	fx := newReceiptFixture(t)
	order := sampleClosedOrder(fx.branch.ID)
	fx.storeOrder(order)

	text, err := fx.svc.RenderReceipt(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Contains(t, text, "Olaya Branch")
	assert.Contains(t, text, "Order: 7")
	assert.Contains(t, text, "Shawarma Plate")
	assert.Contains(t, text, "46.00")
	assert.Contains(t, text, "6.00")
	assert.Contains(t, text, "50.00")
}

func TestRenderReceipt_UsesDevicePaperWidth(t *testing.T) {
	fx := newReceiptFixture(t)

	device := &entity.Device{
		ID:         uuid.New(),
		BranchID:   fx.branch.ID,
		Name:       "Counter 1",
		Code:       "DEV-COUNTER1",
		PaperWidth: 32,
	}
	fx.devices.devices[device.ID] = device

	order := sampleClosedOrder(fx.branch.ID)
	order.DeviceID = &device.ID
	fx.storeOrder(order)

	text, err := fx.svc.RenderReceipt(context.Background(), order.ID)
	require.NoError(t, err)

	for _, line := range strings.Split(text, "\n") {
		assert.LessOrEqual(t, len(line), 32, "line exceeds paper width: %q", line)
	}
}

func TestRenderReceipt_DefaultSettingsCreatedOnFirstRender(t *testing.T) {
	fx := newReceiptFixture(t)
	order := sampleClosedOrder(fx.branch.ID)
	fx.storeOrder(order)

	_, err := fx.svc.RenderReceipt(context.Background(), order.ID)
	require.NoError(t, err)

	created := fx.settings.byBranch[fx.branch.ID]
	require.NotNil(t, created)
	assert.Equal(t, enum.PrintLanguageMainLocalized, created.PrintLanguage)
	assert.True(t, created.ShowOrderNumber)
	assert.True(t, created.ShowSubtotal)
}

func TestRenderReceipt_UnknownOrder(t *testing.T) {
	fx := newReceiptFixture(t)

	_, err := fx.svc.RenderReceipt(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestPrintReceipt_NoDeviceStillReturnsText(t *testing.T) {
	fx := newReceiptFixture(t)
	order := sampleClosedOrder(fx.branch.ID)
	fx.storeOrder(order)

	text, err := fx.svc.PrintReceipt(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Contains(t, text, "Shawarma Plate")
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sofrahq/sofra-api/internal/config"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	"github.com/sofrahq/sofra-api/internal/domain/enum"
	"github.com/sofrahq/sofra-api/pkg/apperror"
)

type orderFixture struct {
	svc      *OrderService
	orders   *fakeOrderRepo
	products *fakeProductRepo
	promos   *fakePromotionRepo
	branch   *entity.Branch
	burger   *entity.Product
	cheese   *entity.ModifierOption
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	branch := &entity.Branch{ID: uuid.New(), Name: "Olaya Branch", Reference: "OLY", Timezone: "Asia/Riyadh"}

	burger := &entity.Product{
		ID:     uuid.New(),
		Name:   "Beef Burger",
		SKU:    "SKU-BURGER",
		Price:  2500, // 25.00
		Active: true,
	}
	cheese := &entity.ModifierOption{
		ID:        uuid.New(),
		ProductID: burger.ID,
		Name:      "Extra Cheese",
		Price:     300, // 3.00
	}
	burger.Modifiers = []entity.ModifierOption{*cheese}

	orders := newFakeOrderRepo()
	products := newFakeProductRepo(burger)
	promos := &fakePromotionRepo{}

	svc := NewOrderService(
		orders,
		orders.items,
		products,
		newFakeDiscountRepo(),
		promos,
		newFakeBranchRepo(branch),
		config.TaxConfig{VATRate: 1500, CashRoundingCents: 5},
	)

	return &orderFixture{
		svc:      svc,
		orders:   orders,
		products: products,
		promos:   promos,
		branch:   branch,
		burger:   burger,
		cheese:   cheese,
	}
}

func (fx *orderFixture) openOrder(t *testing.T, items ...OrderItemInput) *entity.Order {
	t.Helper()
	order, err := fx.svc.OpenOrder(context.Background(), &OpenOrderInput{
		BranchID:  fx.branch.ID,
		CreatorID: uuid.New(),
		Type:      enum.OrderTypeDineIn,
		Items:     items,
	})
	require.NoError(t, err)
	return order
}

func TestOpenOrder_TotalsAreVATInclusive(t *testing.T) {
	fx := newOrderFixture(t)

	order := fx.openOrder(t, OrderItemInput{ProductID: fx.burger.ID, Quantity: 2})

	// 2 x 25.00 = 50.00; VAT included at 15% is 50.00 * 15/115
	assert.Equal(t, int64(5000), order.SubTotal)
	assert.Equal(t, int64(0), order.DiscountTotal)
	assert.Equal(t, int64(5000), order.NetTotal)
	assert.Equal(t, int64(5000*1500/11500), order.TaxTotal)
	assert.Equal(t, enum.OrderStatusOpen, order.Status)
	require.NotNil(t, order.OpenedAt)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Beef Burger", order.Items[0].ProductName)
	assert.Equal(t, int64(2500), order.Items[0].UnitPrice)
}

func TestOpenOrder_ModifierPricesJoinTheLineTotal(t *testing.T) {
	fx := newOrderFixture(t)

	order := fx.openOrder(t, OrderItemInput{
		ProductID:  fx.burger.ID,
		Quantity:   1,
		ModifierID: []uuid.UUID{fx.cheese.ID},
	})

	assert.Equal(t, int64(2800), order.SubTotal)
	require.Len(t, order.Items, 1)
	require.Len(t, order.Items[0].Modifiers, 1)
	assert.Equal(t, "Extra Cheese", order.Items[0].Modifiers[0].Name)
	assert.Equal(t, int64(300), order.Items[0].Modifiers[0].Price)
}

func TestOpenOrder_RejectsForeignModifier(t *testing.T) {
	fx := newOrderFixture(t)

	_, err := fx.svc.OpenOrder(context.Background(), &OpenOrderInput{
		BranchID:  fx.branch.ID,
		CreatorID: uuid.New(),
		Type:      enum.OrderTypeDineIn,
		Items: []OrderItemInput{{
			ProductID:  fx.burger.ID,
			Quantity:   1,
			ModifierID: []uuid.UUID{uuid.New()},
		}},
	})
	require.Error(t, err)
}

func TestOpenOrder_ItemDiscountReducesNet(t *testing.T) {
	fx := newOrderFixture(t)

	discount := &entity.Discount{
		ID:         uuid.New(),
		Name:       "Staff 10%",
		Type:       enum.DiscountTypePercentage,
		Percentage: 10,
		Active:     true,
	}
	fx.svc.discountRepo = newFakeDiscountRepo(discount)

	order := fx.openOrder(t, OrderItemInput{
		ProductID:  fx.burger.ID,
		Quantity:   2,
		DiscountID: &discount.ID,
	})

	assert.Equal(t, int64(5000), order.SubTotal)
	assert.Equal(t, int64(500), order.DiscountTotal)
	assert.Equal(t, int64(4500), order.NetTotal)
}

func TestOpenOrder_BestRunningPromotionApplies(t *testing.T) {
	fx := newOrderFixture(t)

	now := time.Now()
	fx.promos.promotions = []*entity.Promotion{
		{ID: uuid.New(), Name: "Weekday 5%", Percentage: 5, StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour), Active: true},
		{ID: uuid.New(), Name: "Opening 20%", Percentage: 20, StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour), Active: true},
		{ID: uuid.New(), Name: "Expired 50%", Percentage: 50, StartsAt: now.Add(-2 * time.Hour), EndsAt: now.Add(-time.Hour), Active: true},
	}

	order := fx.openOrder(t, OrderItemInput{ProductID: fx.burger.ID, Quantity: 2})

	// Only the best running promotion counts, never the expired one
	assert.Equal(t, int64(1000), order.DiscountTotal)
	assert.Equal(t, int64(4000), order.NetTotal)
}

func TestOpenOrder_NumbersRestartPerBusinessDay(t *testing.T) {
	fx := newOrderFixture(t)

	first := fx.openOrder(t, OrderItemInput{ProductID: fx.burger.ID, Quantity: 1})
	second := fx.openOrder(t, OrderItemInput{ProductID: fx.burger.ID, Quantity: 1})

	assert.Equal(t, "1", first.OrderNo)
	assert.Equal(t, "2", second.OrderNo)
	assert.Equal(t, "OLY-0000", first.CheckNo)
	assert.Equal(t, "OLY-0001", second.CheckNo)
}

func TestOpenOrder_InactiveProductRejected(t *testing.T) {
	fx := newOrderFixture(t)
	fx.burger.Active = false

	_, err := fx.svc.OpenOrder(context.Background(), &OpenOrderInput{
		BranchID:  fx.branch.ID,
		CreatorID: uuid.New(),
		Type:      enum.OrderTypeDineIn,
		Items:     []OrderItemInput{{ProductID: fx.burger.ID, Quantity: 1}},
	})
	require.Error(t, err)
}

func TestCloseOrder_CashRoundsToNearestIncrement(t *testing.T) {
	fx := newOrderFixture(t)

	discount := &entity.Discount{
		ID:         uuid.New(),
		Name:       "Odd",
		Type:       enum.DiscountTypePercentage,
		Percentage: 10.5,
		Active:     true,
	}
	fx.svc.discountRepo = newFakeDiscountRepo(discount)

	order := fx.openOrder(t, OrderItemInput{
		ProductID:  fx.burger.ID,
		Quantity:   1,
		DiscountID: &discount.ID,
	})
	// 2500 - 262 = 2238, rounds up to 2240 for cash
	require.Equal(t, int64(2238), order.NetTotal)

	closed, err := fx.svc.CloseOrder(context.Background(), order.ID, uuid.New(), []PaymentInput{
		{Method: "CASH", Amount: 2300},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2240), closed.NetTotal)
	require.NotNil(t, closed.Rounding)
	assert.Equal(t, int64(2), *closed.Rounding)
	assert.Equal(t, enum.OrderStatusClosed, closed.Status)
	require.NotNil(t, closed.ClosedAt)
	require.Len(t, closed.Payments, 1)
}

func TestCloseOrder_CardKeepsExactNet(t *testing.T) {
	fx := newOrderFixture(t)

	discount := &entity.Discount{
		ID:         uuid.New(),
		Name:       "Odd",
		Type:       enum.DiscountTypePercentage,
		Percentage: 10.5,
		Active:     true,
	}
	fx.svc.discountRepo = newFakeDiscountRepo(discount)

	order := fx.openOrder(t, OrderItemInput{
		ProductID:  fx.burger.ID,
		Quantity:   1,
		DiscountID: &discount.ID,
	})

	closed, err := fx.svc.CloseOrder(context.Background(), order.ID, uuid.New(), []PaymentInput{
		{Method: "CARD", Amount: 2238},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2238), closed.NetTotal)
	assert.Nil(t, closed.Rounding)
}

func TestCloseOrder_UnderpaymentRejected(t *testing.T) {
	fx := newOrderFixture(t)

	order := fx.openOrder(t, OrderItemInput{ProductID: fx.burger.ID, Quantity: 1})

	_, err := fx.svc.CloseOrder(context.Background(), order.ID, uuid.New(), []PaymentInput{
		{Method: "CARD", Amount: 2000},
	})
	require.Error(t, err)
}

func TestCloseOrder_FailedCloseLeavesOrderOpen(t *testing.T) {
	fx := newOrderFixture(t)

	order := fx.openOrder(t, OrderItemInput{ProductID: fx.burger.ID, Quantity: 1})

	fx.orders.closeErr = errors.New("connection reset")
	_, err := fx.svc.CloseOrder(context.Background(), order.ID, uuid.New(), []PaymentInput{
		{Method: "CASH", Amount: 2500},
	})
	require.Error(t, err)

	// No payment may stick to an order whose close did not commit
	kept, err := fx.svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusOpen, kept.Status)
	assert.Empty(t, kept.Payments)

	fx.orders.closeErr = nil
	closed, err := fx.svc.CloseOrder(context.Background(), order.ID, uuid.New(), []PaymentInput{
		{Method: "CASH", Amount: 2500},
	})
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusClosed, closed.Status)
	require.Len(t, closed.Payments, 1)
}

func TestCloseOrder_OnlyOpenOrders(t *testing.T) {
	fx := newOrderFixture(t)

	order := fx.openOrder(t, OrderItemInput{ProductID: fx.burger.ID, Quantity: 1})

	_, err := fx.svc.CloseOrder(context.Background(), order.ID, uuid.New(), []PaymentInput{
		{Method: "CASH", Amount: 2500},
	})
	require.NoError(t, err)

	_, err = fx.svc.CloseOrder(context.Background(), order.ID, uuid.New(), []PaymentInput{
		{Method: "CASH", Amount: 2500},
	})
	require.ErrorIs(t, err, apperror.ErrOrderNotOpen)
}

func TestVoidOrder_ClosedOrderCannotBeVoided(t *testing.T) {
	fx := newOrderFixture(t)

	order := fx.openOrder(t, OrderItemInput{ProductID: fx.burger.ID, Quantity: 1})
	require.NoError(t, fx.svc.VoidOrder(context.Background(), order.ID))

	voided, err := fx.svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusVoided, voided.Status)

	// Voided orders stay voided
	require.ErrorIs(t, fx.svc.VoidOrder(context.Background(), order.ID), apperror.ErrOrderNotOpen)
}

func TestBusinessDateFollowsBranchTimezone(t *testing.T) {
	// 22:30 UTC is already past midnight in Riyadh (UTC+3)
	at := time.Date(2026, 3, 14, 22, 30, 0, 0, time.UTC)

	riyadh := businessDateFor(at, "Asia/Riyadh")
	assert.Equal(t, 15, riyadh.Day())
	assert.Equal(t, time.March, riyadh.Month())

	utc := businessDateFor(at, "UTC")
	assert.Equal(t, 14, utc.Day())

	// An unknown zone falls back to UTC instead of failing the order
	fallback := businessDateFor(at, "Mars/Olympus")
	assert.Equal(t, 14, fallback.Day())

	// Midnight boundary in the branch zone starts a fresh numbering day
	before := businessDateFor(time.Date(2026, 3, 14, 20, 59, 0, 0, time.UTC), "Asia/Riyadh")
	after := businessDateFor(time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC), "Asia/Riyadh")
	assert.Equal(t, 14, before.Day())
	assert.Equal(t, 15, after.Day())
}

func TestRoundToNearest(t *testing.T) {
	cases := []struct {
		amount, increment, want int64
	}{
		{2238, 5, 2240},
		{2237, 5, 2235},
		{2240, 5, 2240},
		{2238, 0, 2238},
		{13, 25, 25},
		{12, 25, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, roundToNearest(tc.amount, tc.increment))
	}
}

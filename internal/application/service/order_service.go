package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/config"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	"github.com/sofrahq/sofra-api/internal/domain/enum"
	"github.com/sofrahq/sofra-api/internal/domain/repository"
	"github.com/sofrahq/sofra-api/pkg/apperror"
	"github.com/sofrahq/sofra-api/pkg/pagination"
	"github.com/sofrahq/sofra-api/pkg/utils"
)

// OrderService handles the order lifecycle from open to close
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	productRepo   repository.ProductRepository
	discountRepo  repository.DiscountRepository
	promotionRepo repository.PromotionRepository
	branchRepo    repository.BranchRepository
	taxCfg        config.TaxConfig
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	discountRepo repository.DiscountRepository,
	promotionRepo repository.PromotionRepository,
	branchRepo repository.BranchRepository,
	taxCfg config.TaxConfig,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		discountRepo:  discountRepo,
		promotionRepo: promotionRepo,
		branchRepo:    branchRepo,
		taxCfg:        taxCfg,
	}
}

// OrderItemInput represents an item on a new order
type OrderItemInput struct {
	ProductID  uuid.UUID
	Quantity   int
	ModifierID []uuid.UUID
	DiscountID *uuid.UUID
}

// OpenOrderInput represents the open order input
type OpenOrderInput struct {
	BranchID      uuid.UUID
	DeviceID      *uuid.UUID
	CreatorID     uuid.UUID
	Type          enum.OrderType
	TableNo       string
	Guests        *int
	CustomerName  string
	CustomerPhone string
	Items         []OrderItemInput
}

// OpenOrder creates a new open order with item snapshots. Product names
// and prices are copied onto the order so later menu edits cannot change
// an already printed receipt.
func (s *OrderService) OpenOrder(ctx context.Context, input *OpenOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.ErrEmptyOrder
	}

	branch, err := s.branchRepo.GetByID(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}

	items, subTotal, discountTotal, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	// Running promotions stack on top of item discounts
	promoDiscount, err := s.promotionDiscount(ctx, subTotal-discountTotal)
	if err != nil {
		return nil, err
	}
	discountTotal += promoDiscount

	// Prices are VAT inclusive, so the tax line carries the portion of
	// the net total that is VAT rather than an addition on top
	net := subTotal - discountTotal
	if net < 0 {
		net = 0
	}
	tax := net * s.taxCfg.VATRate / (10000 + s.taxCfg.VATRate)

	businessDate := businessDateFor(time.Now(), branch.Timezone)
	seq, err := s.orderRepo.CountForBusinessDate(ctx, input.BranchID, businessDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		BranchID:      input.BranchID,
		DeviceID:      input.DeviceID,
		OrderNo:       utils.GenerateOrderNo(seq),
		CheckNo:       utils.GenerateCheckNo(branch.Reference, seq),
		Type:          input.Type,
		Status:        enum.OrderStatusOpen,
		BusinessDate:  businessDate,
		OpenedAt:      &now,
		TableNo:       input.TableNo,
		Guests:        input.Guests,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CreatorID:     input.CreatorID,
		SubTotal:      subTotal,
		DiscountTotal: discountTotal,
		TaxTotal:      tax,
		NetTotal:      net,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].OrderID = order.ID
	}
	if err := s.orderItemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithDetails(ctx, order.ID)
}

// PaymentInput represents a single tender at close time
type PaymentInput struct {
	Method string
	Amount int64 // cents
}

// CloseOrder settles an open order with one or more payments. Cash
// totals are rounded to the configured increment at this point, never
// earlier, so reopened math always starts from the exact net.
func (s *OrderService) CloseOrder(ctx context.Context, orderID, closerID uuid.UUID, payments []PaymentInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status != enum.OrderStatusOpen {
		return nil, apperror.ErrOrderNotOpen
	}
	if len(payments) == 0 {
		return nil, apperror.ErrPaymentRequired
	}

	net := order.NetTotal
	hasCash := false
	for _, p := range payments {
		if p.Method == "CASH" {
			hasCash = true
		}
		if p.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Payment amounts must be positive")
		}
	}

	if hasCash && s.taxCfg.CashRoundingCents > 0 {
		rounded := roundToNearest(net, s.taxCfg.CashRoundingCents)
		if rounded != net {
			diff := rounded - net
			order.Rounding = &diff
			net = rounded
		}
	}
	order.NetTotal = net

	var paid int64
	records := make([]entity.OrderPayment, 0, len(payments))
	for _, p := range payments {
		paid += p.Amount
		records = append(records, entity.OrderPayment{
			OrderID: order.ID,
			Method:  p.Method,
			Amount:  p.Amount,
		})
	}
	if paid < net {
		return nil, apperror.NewBadRequestError(
			fmt.Sprintf("Paid amount %.2f is less than order total %.2f", float64(paid)/100, float64(net)/100))
	}

	now := time.Now()
	order.Status = enum.OrderStatusClosed
	order.ClosedAt = &now
	order.CloserID = &closerID
	if err := s.orderRepo.CloseWithPayments(ctx, order, records); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithDetails(ctx, order.ID)
}

// VoidOrder voids an open order
func (s *OrderService) VoidOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	if order.Status != enum.OrderStatusOpen {
		return apperror.ErrOrderNotOpen
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, enum.OrderStatusVoided)
}

// GetOrder retrieves an order with items and payments
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// buildItems resolves the item inputs into order item snapshots and
// returns the snapshots plus subtotal and item discount sums in cents
func (s *OrderService) buildItems(ctx context.Context, inputs []OrderItemInput) ([]entity.OrderItem, int64, int64, error) {
	var subTotal, discountTotal int64
	items := make([]entity.OrderItem, 0, len(inputs))

	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, 0, 0, apperror.NewBadRequestError("Item quantity must be positive")
		}

		product, err := s.productRepo.GetWithModifiers(ctx, in.ProductID)
		if err != nil {
			return nil, 0, 0, err
		}
		if product == nil {
			return nil, 0, 0, apperror.NewNotFoundError(fmt.Sprintf("Product %s", in.ProductID))
		}
		if !product.Active {
			return nil, 0, 0, apperror.NewBadRequestError(fmt.Sprintf("Product %q is not sellable", product.Name))
		}

		optionsByID := make(map[uuid.UUID]*entity.ModifierOption, len(product.Modifiers))
		for i := range product.Modifiers {
			optionsByID[product.Modifiers[i].ID] = &product.Modifiers[i]
		}

		var modifiers []entity.OrderItemModifier
		var modifierTotal int64
		for _, modID := range in.ModifierID {
			opt, ok := optionsByID[modID]
			if !ok {
				return nil, 0, 0, apperror.NewBadRequestError(
					fmt.Sprintf("Modifier %s does not belong to product %q", modID, product.Name))
			}
			modifierTotal += opt.Price
			modifiers = append(modifiers, entity.OrderItemModifier{
				Name:      opt.Name,
				Price:     opt.Price,
				IsDefault: opt.IsDefault,
			})
		}

		lineTotal := product.Price*int64(in.Quantity) + modifierTotal

		var itemDiscount int64
		if in.DiscountID != nil {
			discount, err := s.discountRepo.GetByID(ctx, *in.DiscountID)
			if err != nil {
				return nil, 0, 0, err
			}
			if discount == nil || !discount.Active {
				return nil, 0, 0, apperror.NewBadRequestError("Discount is not available")
			}
			itemDiscount = discount.Apply(lineTotal)
		}

		subTotal += lineTotal
		discountTotal += itemDiscount

		items = append(items, entity.OrderItem{
			ProductID:            product.ID,
			ProductName:          product.Name,
			ProductNameLocalized: product.NameLocalized,
			Quantity:             in.Quantity,
			UnitPrice:            product.Price,
			TotalPrice:           lineTotal,
			DiscountAmount:       itemDiscount,
			Calories:             product.Calories,
			DiscountID:           in.DiscountID,
			Modifiers:            modifiers,
		})
	}

	return items, subTotal, discountTotal, nil
}

// promotionDiscount returns the value of the best currently running
// promotion for the given base amount in cents
func (s *OrderService) promotionDiscount(ctx context.Context, base int64) (int64, error) {
	if base <= 0 {
		return 0, nil
	}

	promotions, err := s.promotionRepo.ListRunning(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	var best int64
	for _, promo := range promotions {
		value := int64(float64(base) * promo.Percentage / 100)
		if value > best {
			best = value
		}
	}
	if best > base {
		best = base
	}
	return best, nil
}

// businessDateFor truncates an instant to the calendar day in the branch
// timezone, so late-evening orders at a UTC+3 branch stay on the local day
// and per-day numbering never restarts mid-shift
func businessDateFor(at time.Time, tz string) time.Time {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	local := at.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// roundToNearest rounds cents to the nearest increment, half away from zero
func roundToNearest(amount, increment int64) int64 {
	if increment <= 0 {
		return amount
	}
	half := increment / 2
	return (amount + half) / increment * increment
}

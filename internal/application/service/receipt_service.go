package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	"github.com/sofrahq/sofra-api/internal/domain/enum"
	"github.com/sofrahq/sofra-api/internal/domain/repository"
	"github.com/sofrahq/sofra-api/pkg/apperror"
	"github.com/sofrahq/sofra-api/pkg/printer"
	"github.com/sofrahq/sofra-api/pkg/receipt"
)

// ReceiptService renders orders as receipt text and sends them to the
// device printer. Rendering is delegated to the layout engine; this
// service only resolves entities into the engine's value objects.
type ReceiptService struct {
	orderRepo  repository.OrderRepository
	deviceRepo repository.DeviceRepository
	settings   *SettingsService
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	orderRepo repository.OrderRepository,
	deviceRepo repository.DeviceRepository,
	settings *SettingsService,
) *ReceiptService {
	return &ReceiptService{
		orderRepo:  orderRepo,
		deviceRepo: deviceRepo,
		settings:   settings,
	}
}

// RenderReceipt renders the receipt text for an order without printing
func (s *ReceiptService) RenderReceipt(ctx context.Context, orderID uuid.UUID) (string, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order == nil {
		return "", apperror.NewNotFoundError("Order")
	}

	settings, err := s.settings.GetPrintSettings(ctx, order.BranchID)
	if err != nil {
		return "", err
	}

	width := receipt.DefaultWidth
	var device *entity.Device
	if order.DeviceID != nil {
		device, err = s.deviceRepo.GetByID(ctx, *order.DeviceID)
		if err != nil {
			return "", err
		}
		if device != nil && device.PaperWidth > 0 {
			width = device.PaperWidth
		}
	}

	doc := receipt.Build(toReceiptOrder(order), toReceiptSettings(settings), receipt.Options{
		WidthChars: width,
	})
	return doc, nil
}

// PrintReceipt renders an order's receipt and sends it to the printer
// attached to the order's device. The rendered text is returned either
// way so callers can show it when no printer is configured.
func (s *ReceiptService) PrintReceipt(ctx context.Context, orderID uuid.UUID) (string, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order == nil {
		return "", apperror.NewNotFoundError("Order")
	}

	text, err := s.RenderReceipt(ctx, orderID)
	if err != nil {
		return "", err
	}

	if order.DeviceID == nil {
		return text, nil
	}
	device, err := s.deviceRepo.GetByID(ctx, *order.DeviceID)
	if err != nil {
		return "", err
	}
	if device == nil || device.PrinterType == entity.PrinterTypeNone {
		return text, nil
	}

	p, err := printer.Resolve(printerBinding(device))
	if err != nil {
		return text, err
	}
	defer p.Close()

	if err := p.Print(printer.EncodeReceipt(text)); err != nil {
		log.Printf("Printer error (order %s, device %s): %v", orderID, device.Code, err)
		return text, fmt.Errorf("failed to print receipt: %w", err)
	}

	return text, nil
}

// PrintTestPage sends a short test document to a device's printer
func (s *ReceiptService) PrintTestPage(ctx context.Context, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return err
	}
	if device == nil {
		return apperror.NewNotFoundError("Device")
	}
	if device.PrinterType == entity.PrinterTypeNone {
		return apperror.NewBadRequestError("Device has no printer configured")
	}

	p, err := printer.Resolve(printerBinding(device))
	if err != nil {
		return err
	}
	defer p.Close()

	text := fmt.Sprintf("PRINTER TEST\nDevice: %s (%s)\nPaper width: %d chars",
		device.Name, device.Code, device.PaperWidth)
	if err := p.Print(printer.EncodeReceipt(text)); err != nil {
		return fmt.Errorf("test print failed: %w", err)
	}
	return nil
}

// printerBinding maps a device's printer columns onto the transport binding
func printerBinding(device *entity.Device) printer.Binding {
	return printer.Binding{
		Type:       device.PrinterType,
		DevicePath: device.PrinterUSBPath,
		Address:    device.PrinterAddress,
	}
}

// toReceiptOrder converts an order entity with preloaded relations into
// the engine's order snapshot, converting cents to decimals
func toReceiptOrder(order *entity.Order) receipt.Order {
	out := receipt.Order{
		OrderNo:       order.OrderNo,
		CheckNo:       order.CheckNo,
		Type:          receipt.OrderType(order.Type.String()),
		BusinessDate:  order.BusinessDate,
		OpenedAt:      order.OpenedAt,
		ClosedAt:      order.ClosedAt,
		BranchName:    order.Branch.Name,
		TableNo:       order.TableNo,
		Guests:        order.Guests,
		CustomerPhone: order.CustomerPhone,
		CreatorName:   order.Creator.FullName(),
		Subtotal:      float64(order.SubTotal) / 100,
		DiscountTotal: float64(order.DiscountTotal) / 100,
		TaxTotal:      float64(order.TaxTotal) / 100,
		NetTotal:      float64(order.NetTotal) / 100,
	}
	if order.Closer != nil {
		out.CloserName = order.Closer.FullName()
	}
	if order.Rounding != nil {
		r := float64(*order.Rounding) / 100
		out.Rounding = &r
	}

	for _, item := range order.Items {
		ri := receipt.Item{
			ProductName:          item.ProductName,
			ProductNameLocalized: item.ProductNameLocalized,
			Quantity:             item.Quantity,
			UnitPrice:            float64(item.UnitPrice) / 100,
			TotalPrice:           float64(item.TotalPrice) / 100,
			Calories:             item.Calories,
			DiscountAmount:       float64(item.DiscountAmount) / 100,
		}
		for _, mod := range item.Modifiers {
			ri.Modifiers = append(ri.Modifiers, receipt.Modifier{
				Name:      mod.Name,
				Price:     float64(mod.Price) / 100,
				IsDefault: mod.IsDefault,
			})
		}
		out.Items = append(out.Items, ri)
	}

	for _, payment := range order.Payments {
		out.Payments = append(out.Payments, receipt.Payment{
			Method: payment.Method,
			Amount: float64(payment.Amount) / 100,
		})
	}

	return out
}

// toReceiptSettings converts print settings into the engine's settings
func toReceiptSettings(settings *entity.PrintSettings) receipt.Settings {
	return receipt.Settings{
		PrintLanguage:     toReceiptLanguage(settings.PrintLanguage),
		MainLanguage:      settings.MainLanguage,
		LocalizedLanguage: settings.LocalizedLanguage,
		ReceiptHeader:     settings.ReceiptHeader,
		ReceiptFooter:     settings.ReceiptFooter,
		InvoiceTitle:      settings.InvoiceTitle,

		ShowOrderNumber:            settings.ShowOrderNumber,
		ShowCalories:               settings.ShowCalories,
		ShowSubtotal:               settings.ShowSubtotal,
		ShowRounding:               settings.ShowRounding,
		ShowCloserUsername:         settings.ShowCloserUsername,
		ShowCreatorUsername:        settings.ShowCreatorUsername,
		ShowCheckNumber:            settings.ShowCheckNumber,
		HideFreeModifierOptions:    settings.HideFreeModifierOptions,
		PrintCustomerPhoneInPickup: settings.PrintCustomerPhoneInPickup,
	}
}

func toReceiptLanguage(lang enum.PrintLanguage) receipt.PrintLanguage {
	switch lang {
	case enum.PrintLanguageMainOnly:
		return receipt.PrintLanguageMainOnly
	case enum.PrintLanguageLocalizedOnly:
		return receipt.PrintLanguageLocalizedOnly
	default:
		return receipt.PrintLanguageMainLocalized
	}
}

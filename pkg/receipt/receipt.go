// Package receipt renders orders as fixed-width text for thermal receipt
// printers. It is a pure layout engine: it never touches the database, the
// printer transport, or any clock. Everything it needs arrives in the
// caller-supplied value objects, and the output is a plain newline-joined
// string ready to stream to a 58mm/80mm character printer.
package receipt

import "time"

// PrintLanguage controls which product name is printed on item lines.
type PrintLanguage string

const (
	PrintLanguageMainLocalized PrintLanguage = "MAIN_LOCALIZED"
	PrintLanguageMainOnly      PrintLanguage = "MAIN_ONLY"
	PrintLanguageLocalizedOnly PrintLanguage = "LOCALIZED_ONLY"
)

// OrderType is the service type of an order.
type OrderType string

const (
	OrderTypeDineIn    OrderType = "DINE_IN"
	OrderTypePickup    OrderType = "PICKUP"
	OrderTypeDelivery  OrderType = "DELIVERY"
	OrderTypeDriveThru OrderType = "DRIVE_THRU"
)

// Label returns the human-readable form printed on the receipt.
func (t OrderType) Label() string {
	switch t {
	case OrderTypeDineIn:
		return "Dine In"
	case OrderTypePickup:
		return "Pickup"
	case OrderTypeDelivery:
		return "Delivery"
	case OrderTypeDriveThru:
		return "Drive Thru"
	}
	return string(t)
}

// Settings is the print configuration for a receipt. Each boolean toggle
// independently gates exactly one optional line or section; toggles never
// interact with each other.
type Settings struct {
	PrintLanguage     PrintLanguage
	MainLanguage      string
	LocalizedLanguage string

	ReceiptHeader string
	ReceiptFooter string
	InvoiceTitle  string

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

// Modifier is a single option attached to an order item. A price of zero
// means the option is free or the group default.
type Modifier struct {
	Name      string
	Price     float64
	IsDefault bool
}

// Item is one order line.
type Item struct {
	ProductName          string
	ProductNameLocalized string
	Quantity             int
	UnitPrice            float64
	TotalPrice           float64
	Calories             *int
	Modifiers            []Modifier
	DiscountAmount       float64
}

// Payment is a single tender against the order.
type Payment struct {
	Method string
	Amount float64
}

// Order is the already-resolved order snapshot handed to the engine. All
// strings are in their final display language and all amounts are in the
// display currency; the engine does no lookups or conversions.
type Order struct {
	OrderNo      string
	CheckNo      string
	Type         OrderType
	BusinessDate time.Time
	OpenedAt     *time.Time
	ClosedAt     *time.Time

	BranchName    string
	TableNo       string
	Guests        *int
	CustomerPhone string
	CreatorName   string
	CloserName    string

	Subtotal      float64
	DiscountTotal float64
	TaxTotal      float64
	Rounding      *float64
	NetTotal      float64

	Items    []Item
	Payments []Payment
}

// Options selects paper width and branding for a render.
type Options struct {
	// WidthChars is the line width in characters. Zero means DefaultWidth.
	// Callers pass 32 for 58mm paper and 48 for wide 80mm printers.
	WidthChars int
	// BrandName is printed upper-cased at the top. Empty means DefaultBrand.
	BrandName string
}

const (
	// DefaultWidth is 80mm paper at the default font.
	DefaultWidth = 42
	// DefaultBrand is the fallback brand line when none is configured.
	DefaultBrand = "Sofra POS"

	// DefaultInvoiceTitle is printed when settings carry no custom title.
	DefaultInvoiceTitle = "Simplified Tax Invoice"
)

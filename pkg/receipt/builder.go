package receipt

import (
	"fmt"
	"strings"
	"time"
)

// Fixed item-table column widths. The name column absorbs whatever the paper
// width leaves over after the three single-space separators.
const (
	qtyWidth   = 3
	priceWidth = 7
	totalWidth = 8
)

// Build renders an order as a fixed-width receipt. It is a total function:
// missing optional fields print as blank or zero, and no input makes it fail.
// Calling it twice with the same inputs yields byte-identical output.
func Build(order Order, settings Settings, opts Options) string {
	width := opts.WidthChars
	if width <= 0 {
		width = DefaultWidth
	}
	brand := opts.BrandName
	if brand == "" {
		brand = DefaultBrand
	}
	nameWidth := width - qtyWidth - priceWidth - totalWidth - 3
	indent := strings.Repeat(" ", qtyWidth+1)

	var lines []string
	push := func(l string) { lines = append(lines, l) }

	// Header
	push(center(strings.ToUpper(brand), width))
	push(center(order.BranchName, width))
	title := settings.InvoiceTitle
	if title == "" {
		title = DefaultInvoiceTitle
	}
	push(center(title, width))
	for _, l := range wrapText(settings.ReceiptHeader, width) {
		push(center(l, width))
	}
	push(divider(width))

	// Order info
	stamp := orderTimestamp(order)
	push("Date: " + formatDate(stamp))
	push("Time: " + formatTime(stamp))
	if settings.ShowOrderNumber {
		push("Order: " + order.OrderNo)
	}
	if settings.ShowCheckNumber && order.CheckNo != "" {
		push("Check: " + order.CheckNo)
	}
	push("Type: " + order.Type.Label())
	if order.TableNo != "" {
		push("Table: " + order.TableNo)
	}
	if order.Guests != nil {
		push(fmt.Sprintf("Guests: %d", *order.Guests))
	}
	if settings.ShowCreatorUsername && order.CreatorName != "" {
		push("Created by: " + order.CreatorName)
	}
	if settings.ShowCloserUsername && order.CloserName != "" {
		push("Closed by: " + order.CloserName)
	}
	if settings.PrintCustomerPhoneInPickup && order.Type == OrderTypePickup && order.CustomerPhone != "" {
		push("Customer: " + order.CustomerPhone)
	}
	push(divider(width))

	// Item table header
	push(padLeft("QTY", qtyWidth) + " " + padRight("ITEM", nameWidth) + " " +
		padLeft("PRICE", priceWidth) + " " + padLeft("TOTAL", totalWidth))
	push(divider(width))

	// Item rows
	for _, item := range order.Items {
		name := item.ProductName
		if settings.PrintLanguage == PrintLanguageLocalizedOnly && item.ProductNameLocalized != "" {
			name = item.ProductNameLocalized
		}
		nameLines := wrapText(name, nameWidth)
		if len(nameLines) == 0 {
			nameLines = []string{""}
		}

		push(padLeft(fmt.Sprintf("%d", item.Quantity), qtyWidth) + " " +
			padRight(nameLines[0], nameWidth) + " " +
			padLeft(formatMoney(item.UnitPrice), priceWidth) + " " +
			padLeft(formatMoney(item.TotalPrice), totalWidth))
		for _, l := range nameLines[1:] {
			push(indent + padRight(l, nameWidth))
		}

		if settings.ShowCalories && item.Calories != nil {
			push(indent + fmt.Sprintf("Calories: %d", *item.Calories))
		}

		for _, mod := range item.Modifiers {
			if settings.HideFreeModifierOptions && mod.Price == 0 {
				continue
			}
			modLines := wrapText("+ "+mod.Name, nameWidth)
			if len(modLines) == 0 {
				modLines = []string{"+"}
			}
			modPrice := ""
			if mod.Price != 0 {
				modPrice = formatMoney(mod.Price)
			}
			push(indent + padRight(modLines[0], nameWidth) + " " +
				padLeft(modPrice, priceWidth) + " " + padLeft("", totalWidth))
			for _, l := range modLines[1:] {
				push(indent + padRight(l, nameWidth))
			}
		}

		if item.DiscountAmount > 0 {
			push(indent + "Item discount: -" + formatMoney(item.DiscountAmount))
		}
	}
	push(divider(width))

	// Totals
	if settings.ShowSubtotal {
		push(moneyLine("Subtotal", order.Subtotal, width))
	}
	if order.DiscountTotal > 0 {
		push(moneyLine("Discount", -order.DiscountTotal, width))
	}
	push(moneyLine("VAT", order.TaxTotal, width))
	if settings.ShowRounding && order.Rounding != nil && *order.Rounding != 0 {
		label := "Rounding (+)"
		if *order.Rounding < 0 {
			label = "Rounding (-)"
		}
		push(moneyLine(label, *order.Rounding, width))
	}
	push(divider(width))
	push(moneyLine("TOTAL", order.NetTotal, width))

	// Payments
	if len(order.Payments) > 0 {
		push(divider(width))
		push("Payments:")
		paid := 0.0
		for _, p := range order.Payments {
			push(moneyLine(p.Method, p.Amount, width))
			paid += p.Amount
		}
		// Half-cent tolerance keeps float noise from printing a bogus line.
		change := paid - order.NetTotal
		if change >= 0.005 || change <= -0.005 {
			push(moneyLine("Change", change, width))
		}
	}

	// Footer
	push(divider(width))
	for _, l := range wrapText(settings.ReceiptFooter, width) {
		push(center(l, width))
	}
	push(center("Thank you for visiting!", width))
	// Tear-off allowance for thermal printers.
	push("")
	push("")
	push("")

	return strings.Join(lines, "\n")
}

// moneyLine lays a label and a right-aligned amount on one line using the
// shared two-column totals layout.
func moneyLine(label string, amount float64, width int) string {
	return padRight(label, width-10) + padLeft(formatMoney(amount), 10)
}

// orderTimestamp picks the displayed date/time source: close time when the
// order is closed, open time otherwise, falling back to the business date.
func orderTimestamp(order Order) time.Time {
	if order.ClosedAt != nil {
		return *order.ClosedAt
	}
	if order.OpenedAt != nil {
		return *order.OpenedAt
	}
	return order.BusinessDate
}

package receipt

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() Order {
	opened := time.Date(2026, 3, 14, 13, 45, 0, 0, time.UTC)
	return Order{
		OrderNo:      "1042",
		Type:         OrderTypeDineIn,
		BusinessDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		OpenedAt:     &opened,
		BranchName:   "Olaya Branch",
		Subtotal:     20.00,
		TaxTotal:     3.00,
		NetTotal:     23.00,
		Items: []Item{
			{
				ProductName: "Grilled Chicken Sandwich With Fries",
				Quantity:    2,
				UnitPrice:   10.00,
				TotalPrice:  20.00,
			},
		},
		Payments: []Payment{{Method: "CASH", Amount: 25.00}},
	}
}

func buildLines(order Order, settings Settings, opts Options) []string {
	return strings.Split(Build(order, settings, opts), "\n")
}

func hasLine(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

func containsLine(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func TestBuild_NarrowPaperScenario(t *testing.T) {
	settings := Settings{ShowSubtotal: true, ShowOrderNumber: true}
	lines := buildLines(sampleOrder(), settings, Options{WidthChars: 32})

	// Item name wraps across multiple hanging-indent lines at 11 chars.
	require.True(t, hasLine(lines, "  2 "+padRight("Grilled", 11)+" "+padLeft("10.00", 7)+" "+padLeft("20.00", 8)))
	require.True(t, hasLine(lines, "    "+padRight("Chicken", 11)))
	require.True(t, hasLine(lines, "    "+padRight("Sandwich", 11)))
	require.True(t, hasLine(lines, "    "+padRight("With Fries", 11)))

	assert.True(t, hasLine(lines, padRight("Subtotal", 22)+padLeft("20.00", 10)))
	assert.True(t, hasLine(lines, padRight("VAT", 22)+padLeft("3.00", 10)))
	assert.True(t, hasLine(lines, padRight("TOTAL", 22)+padLeft("23.00", 10)))
	assert.True(t, hasLine(lines, padRight("CASH", 22)+padLeft("25.00", 10)))
	assert.True(t, hasLine(lines, padRight("Change", 22)+padLeft("2.00", 10)))

	assert.True(t, hasLine(lines, "Order: 1042"))
	assert.True(t, hasLine(lines, "Type: Dine In"))
	assert.True(t, hasLine(lines, "Date: 03/14/2026"))
	assert.True(t, hasLine(lines, "Time: 13:45"))
}

func TestBuild_DefaultsAndHeader(t *testing.T) {
	lines := buildLines(sampleOrder(), Settings{}, Options{})

	assert.Equal(t, center("SOFRA POS", DefaultWidth), lines[0])
	assert.Equal(t, center("Olaya Branch", DefaultWidth), lines[1])
	assert.Equal(t, center("Simplified Tax Invoice", DefaultWidth), lines[2])
	assert.Equal(t, divider(DefaultWidth), lines[3])
}

func TestBuild_CustomBrandAndTitle(t *testing.T) {
	settings := Settings{InvoiceTitle: "Tax Invoice"}
	lines := buildLines(sampleOrder(), settings, Options{WidthChars: 32, BrandName: "Burger Barn"})

	assert.Equal(t, center("BURGER BARN", 32), lines[0])
	assert.Equal(t, center("Tax Invoice", 32), lines[2])
}

func TestBuild_ReceiptHeaderAndFooterWrapCentered(t *testing.T) {
	settings := Settings{
		ReceiptHeader: "VAT No 310123456700003 CR 1010123456",
		ReceiptFooter: "All prices include value added tax",
	}
	lines := buildLines(sampleOrder(), settings, Options{WidthChars: 32})

	for _, want := range wrapText(settings.ReceiptHeader, 32) {
		assert.True(t, hasLine(lines, center(want, 32)), "missing header line %q", want)
	}
	for _, want := range wrapText(settings.ReceiptFooter, 32) {
		assert.True(t, hasLine(lines, center(want, 32)), "missing footer line %q", want)
	}
	assert.True(t, hasLine(lines, center("Thank you for visiting!", 32)))
}

func TestBuild_TearOffAllowance(t *testing.T) {
	lines := buildLines(sampleOrder(), Settings{}, Options{})
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, []string{"", "", ""}, lines[len(lines)-3:])
}

func TestBuild_Idempotent(t *testing.T) {
	order := sampleOrder()
	settings := Settings{ShowSubtotal: true}
	opts := Options{WidthChars: 42}
	assert.Equal(t, Build(order, settings, opts), Build(order, settings, opts))
}

func TestBuild_ChangeSuppression(t *testing.T) {
	order := sampleOrder()

	order.Payments = []Payment{{Method: "CASH", Amount: 23.00}}
	lines := buildLines(order, Settings{}, Options{WidthChars: 32})
	assert.False(t, containsLine(lines, "Change"), "exact payment must not print change")

	order.Payments = []Payment{{Method: "CASH", Amount: 23.01}}
	lines = buildLines(order, Settings{}, Options{WidthChars: 32})
	assert.True(t, hasLine(lines, padRight("Change", 22)+padLeft("0.01", 10)))
}

func TestBuild_PaymentsSectionOmittedWhenEmpty(t *testing.T) {
	order := sampleOrder()
	order.Payments = nil
	lines := buildLines(order, Settings{}, Options{WidthChars: 32})
	assert.False(t, containsLine(lines, "Payments:"))
}

func TestBuild_SubtotalToggle(t *testing.T) {
	order := sampleOrder()
	lines := buildLines(order, Settings{ShowSubtotal: false}, Options{WidthChars: 32})
	assert.False(t, containsLine(lines, "Subtotal"))
}

func TestBuild_FreeModifierSuppression(t *testing.T) {
	order := sampleOrder()
	order.Items[0].Modifiers = []Modifier{
		{Name: "Extra Sauce", Price: 0},
		{Name: "Add Cheese", Price: 3.50},
	}

	lines := buildLines(order, Settings{HideFreeModifierOptions: true}, Options{WidthChars: 32})
	assert.False(t, containsLine(lines, "Sauce"), "free modifier must be suppressed entirely")
	assert.True(t, containsLine(lines, "Cheese"))
	assert.True(t, containsLine(lines, "3.50"))

	lines = buildLines(order, Settings{HideFreeModifierOptions: false}, Options{WidthChars: 32})
	assert.True(t, containsLine(lines, "Sauce"))
	// Free modifiers print with an empty price column.
	assert.True(t, hasLine(lines, "    "+padRight("+ Extra", 11)+" "+padLeft("", 7)+" "+padLeft("", 8)))
}

func TestBuild_CaloriesToggle(t *testing.T) {
	order := sampleOrder()
	cal := 540
	order.Items[0].Calories = &cal

	lines := buildLines(order, Settings{ShowCalories: true}, Options{WidthChars: 32})
	assert.True(t, hasLine(lines, "    Calories: 540"))

	lines = buildLines(order, Settings{ShowCalories: false}, Options{WidthChars: 32})
	assert.False(t, containsLine(lines, "Calories"))
}

func TestBuild_ItemDiscountLine(t *testing.T) {
	order := sampleOrder()
	order.Items[0].DiscountAmount = 1.25
	lines := buildLines(order, Settings{}, Options{WidthChars: 32})
	assert.True(t, hasLine(lines, "    Item discount: -1.25"))
}

func TestBuild_DiscountAndRoundingTotals(t *testing.T) {
	order := sampleOrder()
	order.DiscountTotal = 2.00
	neg := -0.02
	order.Rounding = &neg

	lines := buildLines(order, Settings{ShowRounding: true}, Options{WidthChars: 32})
	assert.True(t, hasLine(lines, padRight("Discount", 22)+padLeft("-2.00", 10)))
	assert.True(t, hasLine(lines, padRight("Rounding (-)", 22)+padLeft("-0.02", 10)))

	pos := 0.03
	order.Rounding = &pos
	lines = buildLines(order, Settings{ShowRounding: true}, Options{WidthChars: 32})
	assert.True(t, hasLine(lines, padRight("Rounding (+)", 22)+padLeft("0.03", 10)))

	lines = buildLines(order, Settings{ShowRounding: false}, Options{WidthChars: 32})
	assert.False(t, containsLine(lines, "Rounding"))
}

func TestBuild_OrderInfoToggles(t *testing.T) {
	order := sampleOrder()
	order.CheckNo = "7"
	order.TableNo = "12"
	guests := 4
	order.Guests = &guests
	order.CreatorName = "fatimah"
	order.CloserName = "omar"

	settings := Settings{
		ShowOrderNumber:     true,
		ShowCheckNumber:     true,
		ShowCreatorUsername: true,
		ShowCloserUsername:  true,
	}
	lines := buildLines(order, settings, Options{WidthChars: 32})
	assert.True(t, hasLine(lines, "Check: 7"))
	assert.True(t, hasLine(lines, "Table: 12"))
	assert.True(t, hasLine(lines, "Guests: 4"))
	assert.True(t, hasLine(lines, "Created by: fatimah"))
	assert.True(t, hasLine(lines, "Closed by: omar"))

	lines = buildLines(order, Settings{}, Options{WidthChars: 32})
	assert.False(t, containsLine(lines, "Order:"))
	assert.False(t, containsLine(lines, "Check:"))
	assert.False(t, containsLine(lines, "Created by:"))
	assert.False(t, containsLine(lines, "Closed by:"))
	// Table and guest count are not toggle-gated, only presence-gated.
	assert.True(t, hasLine(lines, "Table: 12"))
	assert.True(t, hasLine(lines, "Guests: 4"))
}

func TestBuild_CustomerPhoneOnlyForPickup(t *testing.T) {
	order := sampleOrder()
	order.CustomerPhone = "+966501234567"
	settings := Settings{PrintCustomerPhoneInPickup: true}

	lines := buildLines(order, settings, Options{WidthChars: 32})
	assert.False(t, containsLine(lines, "Customer:"), "dine-in order must not print the phone")

	order.Type = OrderTypePickup
	lines = buildLines(order, settings, Options{WidthChars: 32})
	assert.True(t, hasLine(lines, "Customer: +966501234567"))

	lines = buildLines(order, Settings{}, Options{WidthChars: 32})
	assert.False(t, containsLine(lines, "Customer:"))
}

func TestBuild_TimestampPriority(t *testing.T) {
	order := sampleOrder()
	closed := time.Date(2026, 3, 14, 22, 10, 0, 0, time.UTC)
	order.ClosedAt = &closed

	lines := buildLines(order, Settings{}, Options{WidthChars: 32})
	assert.True(t, hasLine(lines, "Time: 22:10"), "closed time wins over opened time")

	order.ClosedAt = nil
	order.OpenedAt = nil
	lines = buildLines(order, Settings{}, Options{WidthChars: 32})
	assert.True(t, hasLine(lines, "Time: 00:00"), "business date is the last resort")
}

func TestBuild_LocalizedNameSelection(t *testing.T) {
	order := sampleOrder()
	order.Items[0].ProductName = "Falafel Wrap"
	order.Items[0].ProductNameLocalized = "Lafayef"

	lines := buildLines(order, Settings{PrintLanguage: PrintLanguageLocalizedOnly}, Options{WidthChars: 32})
	assert.True(t, containsLine(lines, "Lafayef"))
	assert.False(t, containsLine(lines, "Falafel"))

	lines = buildLines(order, Settings{PrintLanguage: PrintLanguageMainOnly}, Options{WidthChars: 32})
	assert.True(t, containsLine(lines, "Falafel"))

	// Missing localized name falls back to the main name.
	order.Items[0].ProductNameLocalized = ""
	lines = buildLines(order, Settings{PrintLanguage: PrintLanguageLocalizedOnly}, Options{WidthChars: 32})
	assert.True(t, containsLine(lines, "Falafel"))
}

func TestBuild_ArabicItemLinesKeepFixedWidth(t *testing.T) {
	order := sampleOrder()
	order.Items[0].ProductName = "Shawarma Plate"
	order.Items[0].ProductNameLocalized = "صحن شاورما عربي"

	lines := buildLines(order, Settings{PrintLanguage: PrintLanguageLocalizedOnly}, Options{WidthChars: 32})
	require.True(t, containsLine(lines, "شاورما"))
	for _, l := range lines {
		assert.True(t, utf8.ValidString(l), "line %q", l)
		if strings.HasPrefix(l, "  2 ") {
			assert.Equal(t, 32, utf8.RuneCountInString(l))
		}
	}
}

func TestBuild_EmptyItemsStillRendersTableHeader(t *testing.T) {
	order := sampleOrder()
	order.Items = nil
	lines := buildLines(order, Settings{}, Options{WidthChars: 32})
	assert.True(t, hasLine(lines, padLeft("QTY", 3)+" "+padRight("ITEM", 11)+" "+padLeft("PRICE", 7)+" "+padLeft("TOTAL", 8)))
}

func TestBuild_TableLinesHaveFixedWidth(t *testing.T) {
	order := sampleOrder()
	order.Items[0].Modifiers = []Modifier{{Name: "Add Cheese", Price: 3.50}}
	for _, width := range []int{32, 42, 48} {
		lines := buildLines(order, Settings{ShowSubtotal: true}, Options{WidthChars: width})
		for _, l := range lines {
			if strings.HasPrefix(l, "  2 ") || strings.HasPrefix(l, padLeft("QTY", 3)) ||
				strings.HasSuffix(l, "0.00") || l == divider(width) {
				assert.Len(t, l, width, "line %q at width %d", l, width)
			}
		}
	}
}

package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice(n int) Invoice {
	return Invoice{
		InvoiceNumber: "INV-2026-0042",
		Date:          "2026-08-01",
		DueDate:       "2026-08-31",
		Currency:      "USD",
		Company: Company{
			Name:    "Harbor Trading Co",
			Address: "12 Wharf Road",
			City:    "Freetown",
			State:   "WA",
			Zip:     "6160",
			Phone:   "+1 555 0100",
			Email:   "accounts@harbortrading.test",
		},
		Customer: Customer{
			Name:    "Kadiatu Sesay",
			Address: "5 Hill Street",
			City:    "Bo",
			State:   "SO",
			Zip:     "232",
		},
		Items:   makeItems(n),
		TaxRate: 10,
	}
}

func TestComposePage_FirstPageHasHeaderAndBillTo(t *testing.T) {
	inv := sampleInvoice(3)
	pages := Paginate(inv.Items, DefaultItemsPerPage)

	html, err := ComposePage(inv, pages[0], true, inv.ComputeTotals())
	require.NoError(t, err)

	assert.Contains(t, html, "Harbor Trading Co")
	assert.Contains(t, html, "Bill To:")
	assert.Contains(t, html, "Kadiatu Sesay")
	assert.Contains(t, html, "Invoice Number:")
	assert.Contains(t, html, "INV-2026-0042")
	assert.NotContains(t, html, "(continued)")
}

func TestComposePage_ContinuationPageReplacesHeader(t *testing.T) {
	inv := sampleInvoice(25)
	pages := Paginate(inv.Items, DefaultItemsPerPage)
	require.Greater(t, len(pages), 1)

	html, err := ComposePage(inv, pages[1], false, inv.ComputeTotals())
	require.NoError(t, err)

	assert.Contains(t, html, "Page 2 of 3 (continued)")
	assert.NotContains(t, html, "Bill To:")
	assert.NotContains(t, html, "Harbor Trading Co")
}

func TestComposePage_InvoiceTypeBadge(t *testing.T) {
	inv := sampleInvoice(1)
	pages := Paginate(inv.Items, DefaultItemsPerPage)

	html, err := ComposePage(inv, pages[0], true, inv.ComputeTotals())
	require.NoError(t, err)
	assert.Contains(t, html, `<span class="badge-text">Invoice</span>`)

	inv.InvoiceType = "proforma"
	html, err = ComposePage(inv, pages[0], true, inv.ComputeTotals())
	require.NoError(t, err)
	assert.Contains(t, html, `<span class="badge-text">Proforma</span>`)
}

func TestComposePage_PaymentStatusPanel(t *testing.T) {
	inv := sampleInvoice(2)
	pages := Paginate(inv.Items, DefaultItemsPerPage)

	html, err := ComposePage(inv, pages[0], true, inv.ComputeTotals())
	require.NoError(t, err)
	assert.NotContains(t, html, "Payment Status:")

	inv.PaidAmount = 15
	inv.Balance = 7
	html, err = ComposePage(inv, pages[0], true, inv.ComputeTotals())
	require.NoError(t, err)
	assert.Contains(t, html, "Payment Status:")
	assert.Contains(t, html, "-$15.00")
	assert.Contains(t, html, "$7.00")
}

func TestComposePage_ItemsSubHeaderOnMultiPage(t *testing.T) {
	inv := sampleInvoice(25)
	pages := Paginate(inv.Items, DefaultItemsPerPage)

	html, err := ComposePage(inv, pages[0], false, inv.ComputeTotals())
	require.NoError(t, err)
	assert.Contains(t, html, "Items (Page 1 of 3)")
	assert.Contains(t, html, "Items 1&ndash;18 of 25")
	assert.Contains(t, html, "Continued on next page...")

	single := sampleInvoice(4)
	singlePages := Paginate(single.Items, DefaultItemsPerPage)
	html, err = ComposePage(single, singlePages[0], true, single.ComputeTotals())
	require.NoError(t, err)
	assert.Contains(t, html, `<div class="section-title">Items</div>`)
	assert.NotContains(t, html, "Items (Page")
	assert.NotContains(t, html, "Continued on next page...")
}

func TestComposePage_RowShadingAlternates(t *testing.T) {
	inv := sampleInvoice(4)
	pages := Paginate(inv.Items, DefaultItemsPerPage)

	html, err := ComposePage(inv, pages[0], true, inv.ComputeTotals())
	require.NoError(t, err)

	// Rows at odd indexes (second, fourth, ...) carry the alternate shade.
	assert.Equal(t, 2, strings.Count(html, `class="row-alt"`))
}

func TestComposePage_TotalsBlockTaxAndDiscount(t *testing.T) {
	inv := sampleInvoice(2) // subtotal 20, tax 2
	pages := Paginate(inv.Items, DefaultItemsPerPage)

	html, err := ComposePage(inv, pages[0], true, inv.ComputeTotals())
	require.NoError(t, err)
	assert.Contains(t, html, "Subtotal:")
	assert.Contains(t, html, "GST 10%:")
	assert.NotContains(t, html, "Discount:")
	assert.Contains(t, html, `<span class="total-amount">$22.00</span>`)

	inv.Currency = "SLL"
	html, err = ComposePage(inv, pages[0], true, inv.ComputeTotals())
	require.NoError(t, err)
	assert.Contains(t, html, "Tax 10%:")
	assert.Contains(t, html, "Amount Due (SLL):")

	inv.Currency = "USD"
	inv.TaxRate = 0
	inv.Discount = 5
	html, err = ComposePage(inv, pages[0], true, inv.ComputeTotals())
	require.NoError(t, err)
	assert.NotContains(t, html, "GST")
	assert.Contains(t, html, "Discount:")
	assert.Contains(t, html, "- $5.00")
}

func TestComposePage_NoTotalsWhenSuppressed(t *testing.T) {
	inv := sampleInvoice(2)
	pages := Paginate(inv.Items, DefaultItemsPerPage)

	html, err := ComposePage(inv, pages[0], false, inv.ComputeTotals())
	require.NoError(t, err)
	assert.NotContains(t, html, "Subtotal:")
	assert.NotContains(t, html, "totals-section")
}

func TestComposePage_FooterBankDetails(t *testing.T) {
	inv := sampleInvoice(2)
	inv.Notes = "Thank you for your order"
	inv.Terms = "Net 30"
	pages := Paginate(inv.Items, DefaultItemsPerPage)

	html, err := ComposePage(inv, pages[0], true, inv.ComputeTotals())
	require.NoError(t, err)
	assert.NotContains(t, html, "Payment Details")
	assert.Contains(t, html, "Thank you for your order")
	assert.Contains(t, html, "Net 30")

	inv.BankDetails = &BankDetails{
		BankName:      "Union Trust Bank",
		AccountNumber: "00441288",
	}
	html, err = ComposePage(inv, pages[0], true, inv.ComputeTotals())
	require.NoError(t, err)
	assert.Contains(t, html, "Payment Details")
	assert.Contains(t, html, "Union Trust Bank")
	assert.Contains(t, html, "00441288")
	assert.NotContains(t, html, "Account Name:")
	assert.NotContains(t, html, "Routing/Sort Code:")
	assert.NotContains(t, html, "SWIFT/BIC:")

	inv.BankDetails.AccountName = "Harbor Trading Co"
	inv.BankDetails.RoutingNumber = "026009593"
	inv.BankDetails.SwiftCode = "UTBLSLFR"
	html, err = ComposePage(inv, pages[0], true, inv.ComputeTotals())
	require.NoError(t, err)
	assert.Contains(t, html, "Account Name:")
	assert.Contains(t, html, "Routing/Sort Code:")
	assert.Contains(t, html, "SWIFT/BIC:")
}

func TestComposeTotalsPage(t *testing.T) {
	inv := sampleInvoice(13)
	totals := inv.ComputeTotals()

	html, err := ComposeTotalsPage(inv, 2, 2, totals)
	require.NoError(t, err)

	assert.Contains(t, html, "Page 2 of 2 - Invoice Summary")
	assert.Contains(t, html, "Subtotal:")
	assert.Contains(t, html, `<span class="total-amount">$143.00</span>`)
	assert.NotContains(t, html, "items-table")
	assert.NotContains(t, html, "Bill To:")
}

func TestComposePage_AddressLineSkipsEmptyParts(t *testing.T) {
	inv := sampleInvoice(1)
	inv.Company.City = ""
	inv.Company.State = ""
	inv.Company.Zip = ""
	inv.Customer.State = ""
	inv.Customer.Zip = ""
	pages := Paginate(inv.Items, DefaultItemsPerPage)

	html, err := ComposePage(inv, pages[0], true, inv.ComputeTotals())
	require.NoError(t, err)

	assert.Contains(t, html, "<div>Bo</div>")
	assert.NotContains(t, html, "<div>Bo,")
	assert.NotContains(t, html, "<div>,")
}

func TestCapitalizeType(t *testing.T) {
	assert.Equal(t, "Invoice", capitalizeType(""))
	assert.Equal(t, "Invoice", capitalizeType("invoice"))
	assert.Equal(t, "Proforma", capitalizeType("proforma"))
	assert.Equal(t, "Quote", capitalizeType("quote"))
	// First rune may be multi-byte; slicing must stay on rune boundaries.
	assert.Equal(t, "Überweisung", capitalizeType("überweisung"))
	assert.Equal(t, "État", capitalizeType("état"))
}

func TestCityLine(t *testing.T) {
	assert.Equal(t, "Freetown, WA 6160", cityLine("Freetown", "WA", "6160"))
	assert.Equal(t, "Freetown", cityLine("Freetown", "", ""))
	assert.Equal(t, "Freetown, 6160", cityLine("Freetown", "", "6160"))
	assert.Equal(t, "WA 6160", cityLine("", "WA", "6160"))
	assert.Equal(t, "", cityLine("", "", ""))
}

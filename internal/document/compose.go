package document

import (
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"
)

var pageTemplates = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money":        FormatMoney,
	"date":         formatDate,
	"taxLabel":     TaxLabel,
	"rate":         formatRate,
	"qty":          formatQuantity,
	"capitalize":   capitalizeType,
	"cityLine":     cityLine,
	"currencyCode": currencyOrDefault,
	"isOdd":        func(i int) bool { return i%2 == 1 },
}).Parse(blockTemplates))

// pageContext is the data handed to every block template.
type pageContext struct {
	Invoice    Invoice
	Logo       template.URL
	Page       Page
	ShowTotals bool
	Totals     Totals
	TotalItems int
}

func newPageContext(inv Invoice, page Page, showTotals bool, totals Totals) pageContext {
	return pageContext{
		Invoice:    inv,
		Logo:       template.URL(inv.Company.Logo),
		Page:       page,
		ShowTotals: showTotals,
		Totals:     totals,
		TotalItems: len(inv.Items),
	}
}

func renderBlock(name string, ctx pageContext) (string, error) {
	var b strings.Builder
	if err := pageTemplates.ExecuteTemplate(&b, name, ctx); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ComposePage renders one physical content page: header and bill-to on the
// first page, a continuation banner otherwise, the items table always, and
// the totals and footer blocks only when this page carries the totals.
func ComposePage(inv Invoice, page Page, showTotals bool, totals Totals) (string, error) {
	return renderBlock("page", newPageContext(inv, page, showTotals, totals))
}

// ComposeTotalsPage renders the dedicated totals-only page used when the
// natural last content page is too full for the totals block.
func ComposeTotalsPage(inv Invoice, pageNumber, totalPages int, totals Totals) (string, error) {
	ctx := newPageContext(inv, Page{PageNumber: pageNumber, TotalPages: totalPages}, true, totals)
	return renderBlock("totalsPage", ctx)
}

// capitalizeType upper-cases the first rune of the invoice type, defaulting
// to "Invoice" when absent.
func capitalizeType(invoiceType string) string {
	if invoiceType == "" {
		return "Invoice"
	}
	first, size := utf8.DecodeRuneInString(invoiceType)
	return string(unicode.ToUpper(first)) + invoiceType[size:]
}

// cityLine joins city, state and zip into a "City, State Zip" line, omitting
// whichever parts are empty. An all-empty address yields "" so the caller can
// skip the line entirely.
func cityLine(city, state, zip string) string {
	region := strings.TrimSpace(state + " " + zip)
	switch {
	case city == "":
		return region
	case region == "":
		return city
	default:
		return city + ", " + region
	}
}

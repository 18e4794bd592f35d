package document

import (
	"html/template"
	"strings"
)

const pageBreak = `<div class="page-break"></div>`

type documentContext struct {
	InvoiceNumber string
	Styles        template.CSS
	Body          template.HTML
}

// Generate produces the complete standalone HTML document for an invoice:
// items paginated at the default capacity, totals on the last content page
// or on a dedicated summary page when that page is too full, everything
// wrapped in the fixed A4 stylesheet. Pure function of its input; an empty
// item list yields a valid single empty page.
func Generate(inv Invoice) (string, error) {
	totals := inv.ComputeTotals()
	pages := Paginate(inv.Items, DefaultItemsPerPage)
	separateTotals := NeedsSeparateTotalsPage(pages, len(inv.Items))

	var body strings.Builder
	for _, page := range pages {
		showTotals := page.IsLastPage && !separateTotals
		fragment, err := ComposePage(inv, page, showTotals, totals)
		if err != nil {
			return "", err
		}
		body.WriteString(fragment)
		if !page.IsLastPage {
			body.WriteString(pageBreak)
		}
	}

	if separateTotals {
		body.WriteString(pageBreak)
		fragment, err := ComposeTotalsPage(inv, len(pages)+1, len(pages)+1, totals)
		if err != nil {
			return "", err
		}
		body.WriteString(fragment)
	}

	var doc strings.Builder
	err := pageTemplates.ExecuteTemplate(&doc, "document", documentContext{
		InvoiceNumber: inv.InvoiceNumber,
		Styles:        template.CSS(stylesheet),
		Body:          template.HTML(body.String()),
	})
	if err != nil {
		return "", err
	}
	return doc.String(), nil
}

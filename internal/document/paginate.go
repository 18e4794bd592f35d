package document

// Page layout capacities for an A4 page at the document's type scale. The
// last-page reserve guarantees room for the totals block without overflow;
// the numbers are tuned for this layout and do not generalize to other page
// sizes.
const (
	// DefaultItemsPerPage is the line-item capacity of a regular page.
	DefaultItemsPerPage = 18

	// lastPageReserve is the number of items held back for the final page.
	lastPageReserve = 5
)

// ItemRange is a 1-based inclusive range into the full item list, displayed
// as "Items X-Y of N".
type ItemRange struct {
	Start int
	End   int
}

// Page describes one physical page's slice of line items plus pagination
// metadata. Pages are transient; they are created and consumed within a
// single document generation.
type Page struct {
	PageNumber  int
	TotalPages  int
	Items       []LineItem
	IsFirstPage bool
	IsLastPage  bool
	ItemRange   ItemRange
}

// Paginate splits items into pages. Regular pages take itemsPerPage items
// off the front of the list; the final page always receives the reserved
// trailing items so the totals block fits below them. A 19-item invoice at
// 18 per page therefore splits 14+5, not 18+1.
func Paginate(items []LineItem, itemsPerPage int) []Page {
	if itemsPerPage <= 0 {
		itemsPerPage = DefaultItemsPerPage
	}

	if len(items) == 0 {
		return []Page{{
			PageNumber:  1,
			TotalPages:  1,
			Items:       []LineItem{},
			IsFirstPage: true,
			IsLastPage:  true,
			ItemRange:   ItemRange{Start: 0, End: 0},
		}}
	}

	if len(items) <= itemsPerPage {
		page := []LineItem(nil)
		page = append(page, items...)
		return []Page{{
			PageNumber:  1,
			TotalPages:  1,
			Items:       page,
			IsFirstPage: true,
			IsLastPage:  true,
			ItemRange:   ItemRange{Start: 1, End: len(items)},
		}}
	}

	itemsWithoutLastPage := len(items) - lastPageReserve
	regularPages := (itemsWithoutLastPage + itemsPerPage - 1) / itemsPerPage
	totalPages := regularPages + 1

	pages := make([]Page, 0, totalPages)
	for pageNum := 1; pageNum <= regularPages; pageNum++ {
		startIdx := (pageNum - 1) * itemsPerPage
		endIdx := startIdx + itemsPerPage
		// Never dip into the reserved tail.
		if endIdx > itemsWithoutLastPage {
			endIdx = itemsWithoutLastPage
		}
		pages = append(pages, Page{
			PageNumber:  pageNum,
			TotalPages:  totalPages,
			Items:       items[startIdx:endIdx],
			IsFirstPage: pageNum == 1,
			IsLastPage:  false,
			ItemRange:   ItemRange{Start: startIdx + 1, End: endIdx},
		})
	}

	pages = append(pages, Page{
		PageNumber:  totalPages,
		TotalPages:  totalPages,
		Items:       items[itemsWithoutLastPage:],
		IsFirstPage: false,
		IsLastPage:  true,
		ItemRange:   ItemRange{Start: itemsWithoutLastPage + 1, End: len(items)},
	})

	return pages
}

// NeedsSeparateTotalsPage reports whether the totals block must spill to a
// dedicated page: only when the last page is visibly crowded (more than the
// reserve) and the invoice is non-trivially sized (more than 12 items).
func NeedsSeparateTotalsPage(pages []Page, totalItems int) bool {
	if len(pages) == 0 {
		return false
	}
	last := pages[len(pages)-1]
	return len(last.Items) > lastPageReserve && totalItems > 12
}

// Package document is the invoice document engine: it lays an invoice out
// across fixed-size A4 pages and produces a self-contained HTML document
// ready for PDF conversion. The package is pure data transformation with no
// I/O and is safe for concurrent use.
package document

// LineItem is one billable line on an invoice. Amount is trusted as supplied;
// the engine never recomputes quantity * rate.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Company is the issuing party shown in the document header.
type Company struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Logo    string `json:"logo,omitempty"` // data URI, optional
}

// Customer is the billed party shown in the bill-to block.
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// BankDetails is the optional payment-details panel in the footer. Optional
// fields are omitted from the markup when empty.
type BankDetails struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber"`
	RoutingNumber string `json:"routingNumber,omitempty"`
	SwiftCode     string `json:"swiftCode,omitempty"`
}

// Invoice is the fully resolved input to the engine. It is a read-only value
// supplied per invocation; nothing persists between calls.
type Invoice struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	Date          string  `json:"date"`    // ISO date
	DueDate       string  `json:"dueDate"` // ISO date
	InvoiceType   string  `json:"invoiceType,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	PaidAmount    float64 `json:"paidAmount,omitempty"`
	Balance       float64 `json:"balance,omitempty"`
	Status        string  `json:"status,omitempty"`

	Company  Company    `json:"company"`
	Customer Customer   `json:"customer"`
	Items    []LineItem `json:"items"`

	Notes string `json:"notes,omitempty"`
	Terms string `json:"terms,omitempty"`

	TaxRate  float64 `json:"taxRate"`  // percent
	Discount float64 `json:"discount"` // flat amount

	BankDetails *BankDetails `json:"bankDetails,omitempty"`
}

// Totals holds the derived financial summary.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// ComputeTotals derives subtotal, tax and total once per generation.
// total = subtotal + tax - discount.
func (inv Invoice) ComputeTotals() Totals {
	var subtotal float64
	for _, item := range inv.Items {
		subtotal += item.Amount
	}
	tax := subtotal * inv.TaxRate / 100
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax - inv.Discount,
	}
}

// Package pdf generates compact payment receipts with a native PDF
// layout engine, independent of the HTML invoice pipeline.
package pdf

import (
	"context"
	"io"

	"go.uber.org/fx"
)

// ReceiptItem is a single line on a receipt.
type ReceiptItem struct {
	Description string
	Qty         string
	UnitPrice   string
	Amount      string
}

// ReceiptData carries pre-formatted values for the receipt layout.
// All money fields are display strings so the layout stays currency agnostic.
type ReceiptData struct {
	InvoiceNumber string
	DatePaid      string
	OrgName       string
	OrgAddress    string
	OrgEmail      string
	BillToName    string
	BillToAddress string
	BillToEmail   string
	BankDetails   string
	Items         []ReceiptItem
	Subtotal      string
	Tax           string
	TaxLabel      string
	Total         string
	AmountPaid    string
}

// Provider produces receipt PDFs.
type Provider interface {
	GenerateReceipt(ctx context.Context, data ReceiptData) (io.Reader, error)
}

// Module wires the receipt PDF provider.
var Module = fx.Module("providers.pdf",
	fx.Provide(NewMarotoProvider),
)

package document

// Named templates for every document block. Each block is rendered on its
// own so pages can be composed from exactly the blocks they need.
const blockTemplates = `
{{define "header"}}<header class="invoice-header">
  <div class="header-content">
    <div class="company-section">
      {{if .Logo}}<img src="{{.Logo}}" alt="Logo" class="company-logo" />{{end}}
      <div>
        <h1 class="company-name">{{.Invoice.Company.Name}}</h1>
        <div class="company-details">
          <div>{{.Invoice.Company.Address}}</div>
          {{with cityLine .Invoice.Company.City .Invoice.Company.State .Invoice.Company.Zip}}<div>{{.}}</div>{{end}}
          <div class="mt-1">{{.Invoice.Company.Phone}}</div>
          <div>{{.Invoice.Company.Email}}</div>
        </div>
      </div>
    </div>

    <div class="invoice-meta">
      <div class="invoice-meta-row">
        <span class="label">Invoice Number:</span>
        <span>{{.Invoice.InvoiceNumber}}</span>
      </div>
      <div class="invoice-meta-row">
        <span class="label">Invoice Date:</span>
        <span>{{date .Invoice.Date}}</span>
      </div>
      <div class="invoice-meta-row">
        <span class="label">Payment Date:</span>
        <span>{{date .Invoice.DueDate}}</span>
      </div>
      <div class="invoice-meta-row total-due">
        <span class="label-bold">Amount Due ({{currencyCode .Invoice.Currency}}):</span>
        <span class="amount-accent">{{money .Totals.Total .Invoice.Currency}}</span>
      </div>
    </div>
  </div>

  <div class="badge-row">
    <div class="badge-line"></div>
    <div class="badge-container">
      <span class="badge-text">{{capitalize .Invoice.InvoiceType}}</span>
    </div>
    <div class="badge-line"></div>
  </div>
</header>{{end}}

{{define "billto"}}<section class="bill-to-section">
  <div class="bill-to-container">
    <div class="bill-to-left">
      <div class="section-title">Bill To:</div>
      <div class="customer-info">
        <div class="customer-name">{{.Invoice.Customer.Name}}</div>
        <div>{{.Invoice.Customer.Address}}</div>
        {{with cityLine .Invoice.Customer.City .Invoice.Customer.State .Invoice.Customer.Zip}}<div>{{.}}</div>{{end}}
        {{if .Invoice.Customer.Phone}}<div>{{.Invoice.Customer.Phone}}</div>{{end}}
        {{if .Invoice.Customer.Email}}<div>{{.Invoice.Customer.Email}}</div>{{end}}
      </div>
    </div>
    {{if gt .Invoice.PaidAmount 0.0}}<div class="payment-status">
      <div class="section-title">Payment Status:</div>
      <div class="payment-info">
        <div class="payment-row paid-row">
          <span class="payment-label">Paid:</span>
          <span class="payment-value">-{{money .Invoice.PaidAmount .Invoice.Currency}}</span>
        </div>
        <div class="payment-row balance-row">
          <span class="payment-label">Balance Due:</span>
          <span class="payment-value">{{money .Invoice.Balance .Invoice.Currency}}</span>
        </div>
      </div>
    </div>{{end}}
  </div>
</section>{{end}}

{{define "items"}}<section class="items-section">
  {{if gt .Page.TotalPages 1}}<div class="items-header">
    <span class="section-title">Items (Page {{.Page.PageNumber}} of {{.Page.TotalPages}})</span>
    <span class="items-range">Items {{.Page.ItemRange.Start}}&ndash;{{.Page.ItemRange.End}} of {{.TotalItems}}</span>
  </div>{{else}}<div class="section-title">Items</div>{{end}}

  <table class="items-table">
    <thead>
      <tr>
        <th>Description</th>
        <th class="text-center">Quantity</th>
        <th class="text-right">Price</th>
        <th class="text-right">Amount</th>
      </tr>
    </thead>
    <tbody>
      {{$currency := .Invoice.Currency}}{{range $idx, $item := .Page.Items}}<tr{{if isOdd $idx}} class="row-alt"{{end}}>
        <td>{{$item.Description}}</td>
        <td class="text-center">{{qty $item.Quantity}}</td>
        <td class="text-right">{{money $item.Rate $currency}}</td>
        <td class="text-right amount-col">{{money $item.Amount $currency}}</td>
      </tr>{{end}}
    </tbody>
  </table>

  {{if not .ShowTotals}}<div class="continued-text">Continued on next page...</div>{{end}}
</section>{{end}}

{{define "totals"}}<section class="totals-section">
  <div class="totals-container">
    <div class="total-row">
      <span>Subtotal:</span>
      <span>{{money .Totals.Subtotal .Invoice.Currency}}</span>
    </div>
    {{if gt .Invoice.TaxRate 0.0}}<div class="total-row">
      <span>{{taxLabel .Invoice.Currency}} {{rate .Invoice.TaxRate}}%:</span>
      <span>{{money .Totals.Tax .Invoice.Currency}}</span>
    </div>{{end}}
    {{if gt .Invoice.Discount 0.0}}<div class="total-row">
      <span>Discount:</span>
      <span>- {{money .Invoice.Discount .Invoice.Currency}}</span>
    </div>{{end}}
    <div class="total-row-final">
      <span class="total-label">Total:</span>
      <span class="total-amount">{{money .Totals.Total .Invoice.Currency}}</span>
    </div>
    <div class="amount-due-row">
      <span class="label-bold">Amount Due ({{currencyCode .Invoice.Currency}}):</span>
      <span class="amount-accent">{{money .Totals.Total .Invoice.Currency}}</span>
    </div>
  </div>
</section>{{end}}

{{define "footer"}}<footer class="invoice-footer">
  {{with .Invoice.BankDetails}}<div class="bank-details">
    <div class="bank-title">Payment Details</div>
    <div class="bank-row">
      <span class="bank-label">Bank:</span>
      <span>{{.BankName}}</span>
    </div>
    {{if .AccountName}}<div class="bank-row">
      <span class="bank-label">Account Name:</span>
      <span>{{.AccountName}}</span>
    </div>{{end}}
    <div class="bank-row">
      <span class="bank-label">Account Number:</span>
      <span>{{.AccountNumber}}</span>
    </div>
    {{if .RoutingNumber}}<div class="bank-row">
      <span class="bank-label">Routing/Sort Code:</span>
      <span>{{.RoutingNumber}}</span>
    </div>{{end}}
    {{if .SwiftCode}}<div class="bank-row">
      <span class="bank-label">SWIFT/BIC:</span>
      <span>{{.SwiftCode}}</span>
    </div>{{end}}
  </div>{{end}}

  <div class="notes-terms">
    {{if .Invoice.Notes}}<div class="notes">
      <div class="notes-title">Notes</div>
      <div class="notes-content">{{.Invoice.Notes}}</div>
    </div>{{end}}
    {{if .Invoice.Terms}}<div class="terms">
      <div class="terms-title">Terms</div>
      <div class="terms-content">{{.Invoice.Terms}}</div>
    </div>{{end}}
  </div>
</footer>{{end}}

{{define "page"}}<div class="invoice-page">
  {{if .Page.IsFirstPage}}{{template "header" .}}
  {{template "billto" .}}{{else}}<div class="continuation-header">Page {{.Page.PageNumber}} of {{.Page.TotalPages}} (continued)</div>{{end}}
  {{template "items" .}}
  {{if .ShowTotals}}{{template "totals" .}}
  {{template "footer" .}}{{end}}
</div>{{end}}

{{define "totalsPage"}}<div class="invoice-page">
  <div class="continuation-header">Page {{.Page.PageNumber}} of {{.Page.TotalPages}} - Invoice Summary</div>
  {{template "totals" .}}
  {{template "footer" .}}
</div>{{end}}

{{define "document"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Invoice {{.InvoiceNumber}}</title>
<style>
{{.Styles}}
</style>
</head>
<body>
{{.Body}}
</body>
</html>
{{end}}
`

package service

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	companydomain "github.com/smallbiznis/invoicepress/internal/company/domain"
	customerdomain "github.com/smallbiznis/invoicepress/internal/customer/domain"
	"github.com/smallbiznis/invoicepress/internal/document"
	invoicedomain "github.com/smallbiznis/invoicepress/internal/invoice/domain"
	"github.com/smallbiznis/invoicepress/internal/providers/pdf"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (s *Service) RenderDocument(ctx context.Context, invoiceID string) (invoicedomain.RenderDocumentResponse, error) {
	start := time.Now()

	docInv, err := s.resolveDocumentInvoice(ctx, invoiceID)
	if err != nil {
		return invoicedomain.RenderDocumentResponse{}, err
	}

	html, err := document.Generate(docInv)
	if err != nil {
		return invoicedomain.RenderDocumentResponse{}, err
	}

	pages := document.Paginate(docInv.Items, document.DefaultItemsPerPage)
	pageCount := len(pages)
	if document.NeedsSeparateTotalsPage(pages, len(docInv.Items)) {
		pageCount++
	}

	s.metrics.RecordDocument("html", time.Since(start))
	s.log.Debug("document assembled",
		zap.String("invoice_number", docInv.InvoiceNumber),
		zap.Int("pages", pageCount),
	)

	return invoicedomain.RenderDocumentResponse{
		InvoiceNumber: docInv.InvoiceNumber,
		HTML:          html,
		PageCount:     pageCount,
	}, nil
}

func (s *Service) RenderPDF(ctx context.Context, invoiceID string) ([]byte, error) {
	start := time.Now()

	resp, err := s.RenderDocument(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := s.converter.Convert(ctx, resp.HTML)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordDocument("pdf", time.Since(start))
	return pdfBytes, nil
}

func (s *Service) RenderReceipt(ctx context.Context, invoiceID string) ([]byte, error) {
	start := time.Now()

	id, err := parseID(strings.TrimSpace(invoiceID))
	if err != nil {
		return nil, invoicedomain.ErrInvalidInvoiceID
	}

	invoice, err := s.loadInvoice(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, invoicedomain.ErrInvoiceNotFound
	}
	if invoice.Status != invoicedomain.InvoiceStatusPaid {
		return nil, invoicedomain.ErrInvoiceNotPaid
	}

	docInv, err := s.buildDocumentInvoice(ctx, invoice)
	if err != nil {
		return nil, err
	}

	reader, err := s.receipts.GenerateReceipt(ctx, buildReceiptData(invoice, docInv))
	if err != nil {
		return nil, err
	}
	receipt, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordDocument("receipt", time.Since(start))
	return receipt, nil
}

func (s *Service) resolveDocumentInvoice(ctx context.Context, invoiceID string) (document.Invoice, error) {
	id, err := parseID(strings.TrimSpace(invoiceID))
	if err != nil {
		return document.Invoice{}, invoicedomain.ErrInvalidInvoiceID
	}

	invoice, err := s.loadInvoice(ctx, s.db, id)
	if err != nil {
		return document.Invoice{}, err
	}
	if invoice == nil {
		return document.Invoice{}, invoicedomain.ErrInvoiceNotFound
	}

	return s.buildDocumentInvoice(ctx, invoice)
}

func (s *Service) buildDocumentInvoice(ctx context.Context, invoice *invoicedomain.Invoice) (document.Invoice, error) {
	items, err := s.listInvoiceItems(ctx, s.db, invoice.ID)
	if err != nil {
		return document.Invoice{}, err
	}

	customer, err := s.loadCustomer(ctx, s.db, invoice.CustomerID)
	if err != nil {
		return document.Invoice{}, err
	}

	company, err := s.loadCompany(ctx, s.db, invoice.CompanyID)
	if err != nil {
		return document.Invoice{}, err
	}

	docInv := document.Invoice{
		InvoiceNumber: invoice.InvoiceNumber,
		Date:          invoice.IssueDate,
		DueDate:       invoice.DueDate,
		InvoiceType:   string(invoice.Type),
		Currency:      invoice.Currency,
		PaidAmount:    invoice.PaidAmount,
		Status:        string(invoice.Status),
		Notes:         invoice.Notes,
		Terms:         invoice.Terms,
		TaxRate:       invoice.TaxRate,
		Discount:      invoice.Discount,
		Company: document.Company{
			Name:    company.Name,
			Address: company.Address,
			City:    company.City,
			State:   company.State,
			Zip:     company.Zip,
			Phone:   company.Phone,
			Email:   company.Email,
			Logo:    company.Logo,
		},
		Customer: document.Customer{
			Name:    customer.Name,
			Address: customer.Address,
			City:    customer.City,
			State:   customer.State,
			Zip:     customer.Zip,
			Phone:   customer.Phone,
			Email:   customer.Email,
		},
		Items: buildLineItems(items),
	}

	if company.BankName != "" || company.AccountNumber != "" {
		docInv.BankDetails = &document.BankDetails{
			BankName:      company.BankName,
			AccountName:   company.AccountName,
			AccountNumber: company.AccountNumber,
			RoutingNumber: company.RoutingNumber,
			SwiftCode:     company.SwiftCode,
		}
	}

	docInv.Balance = docInv.ComputeTotals().Total - invoice.PaidAmount
	return docInv, nil
}

func (s *Service) loadCustomer(ctx context.Context, db *gorm.DB, customerID snowflake.ID) (*customerdomain.Customer, error) {
	var customer customerdomain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, email, phone, address, city, state, zip, country
		 FROM customers
		 WHERE id = ?`,
		customerID,
	).Scan(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == 0 {
		return nil, customerdomain.ErrNotFound
	}
	return &customer, nil
}

func (s *Service) loadCompany(ctx context.Context, db *gorm.DB, companyID snowflake.ID) (*companydomain.CompanyProfile, error) {
	var company companydomain.CompanyProfile
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, address, city, state, zip, phone, email, website, logo,
		        bank_name, account_name, account_number, routing_number, swift_code, is_default
		 FROM company_profiles
		 WHERE id = ?`,
		companyID,
	).Scan(&company).Error
	if err != nil {
		return nil, err
	}
	if company.ID == 0 {
		return nil, companydomain.ErrNotFound
	}
	return &company, nil
}

func buildLineItems(items []invoicedomain.InvoiceItem) []document.LineItem {
	lines := make([]document.LineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, document.LineItem{
			ID:          item.ID.String(),
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
		})
	}
	return lines
}

func buildReceiptData(invoice *invoicedomain.Invoice, docInv document.Invoice) pdf.ReceiptData {
	totals := docInv.ComputeTotals()
	currency := docInv.Currency

	datePaid := docInv.Date
	if invoice.PaidAt != nil {
		datePaid = invoice.PaidAt.Format("1/2/2006")
	}

	items := make([]pdf.ReceiptItem, 0, len(docInv.Items))
	for _, item := range docInv.Items {
		items = append(items, pdf.ReceiptItem{
			Description: item.Description,
			Qty:         strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			UnitPrice:   document.FormatMoney(item.Rate, currency),
			Amount:      document.FormatMoney(item.Amount, currency),
		})
	}

	data := pdf.ReceiptData{
		InvoiceNumber: docInv.InvoiceNumber,
		DatePaid:      datePaid,
		OrgName:       docInv.Company.Name,
		OrgAddress:    docInv.Company.Address,
		OrgEmail:      docInv.Company.Email,
		BillToName:    docInv.Customer.Name,
		BillToAddress: docInv.Customer.Address,
		BillToEmail:   docInv.Customer.Email,
		Items:         items,
		Subtotal:      document.FormatMoney(totals.Subtotal, currency),
		Total:         document.FormatMoney(totals.Total, currency),
		AmountPaid:    document.FormatMoney(invoice.PaidAmount, currency),
	}

	if docInv.TaxRate > 0 {
		data.Tax = document.FormatMoney(totals.Tax, currency)
		data.TaxLabel = document.TaxLabel(currency)
	}

	if docInv.BankDetails != nil {
		parts := make([]string, 0, 3)
		if docInv.BankDetails.BankName != "" {
			parts = append(parts, docInv.BankDetails.BankName)
		}
		if docInv.BankDetails.AccountName != "" {
			parts = append(parts, docInv.BankDetails.AccountName)
		}
		if docInv.BankDetails.AccountNumber != "" {
			parts = append(parts, "Account "+docInv.BankDetails.AccountNumber)
		}
		data.BankDetails = strings.Join(parts, " / ")
	}

	return data
}

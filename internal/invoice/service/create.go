package service

import (
	"context"
	"strings"
	"time"

	invoicedomain "github.com/smallbiznis/invoicepress/internal/invoice/domain"
	"github.com/smallbiznis/invoicepress/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (s *Service) Create(ctx context.Context, req invoicedomain.CreateInvoiceRequest) (invoicedomain.Invoice, error) {
	req.InvoiceNumber = strings.TrimSpace(req.InvoiceNumber)
	if req.InvoiceNumber == "" || len(req.Items) == 0 {
		return invoicedomain.Invoice{}, invoicedomain.ErrInvalidRequest
	}

	customerID, err := parseID(strings.TrimSpace(req.CustomerID))
	if err != nil {
		return invoicedomain.Invoice{}, invoicedomain.ErrInvalidRequest
	}
	companyID, err := parseID(strings.TrimSpace(req.CompanyID))
	if err != nil {
		return invoicedomain.Invoice{}, invoicedomain.ErrInvalidRequest
	}

	invoiceType := req.Type
	if invoiceType == "" {
		invoiceType = invoicedomain.InvoiceTypeInvoice
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "USD"
	}

	now := time.Now().UTC()
	invoice := invoicedomain.Invoice{
		ID:            s.genID.Generate(),
		InvoiceNumber: req.InvoiceNumber,
		CustomerID:    customerID,
		CompanyID:     companyID,
		Type:          invoiceType,
		Status:        invoicedomain.InvoiceStatusDraft,
		Currency:      currency,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		TaxRate:       req.TaxRate,
		Discount:      req.Discount,
		Notes:         req.Notes,
		Terms:         req.Terms,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.insertInvoice(ctx, tx, invoice); err != nil {
			return err
		}
		for position, line := range req.Items {
			item := invoicedomain.InvoiceItem{
				ID:          s.genID.Generate(),
				InvoiceID:   invoice.ID,
				Description: line.Description,
				Quantity:    line.Quantity,
				Rate:        line.Rate,
				Amount:      line.Quantity * line.Rate,
				Position:    position,
				CreatedAt:   now,
			}
			if err := s.insertInvoiceItem(ctx, tx, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return invoicedomain.Invoice{}, invoicedomain.ErrDuplicateInvoiceNumber
		}
		return invoicedomain.Invoice{}, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber),
	)
	return invoice, nil
}

func (s *Service) insertInvoice(ctx context.Context, tx *gorm.DB, invoice invoicedomain.Invoice) error {
	return tx.WithContext(ctx).Exec(
		`INSERT INTO invoices (
			id, invoice_number, customer_id, company_id, type, status, currency,
			issue_date, due_date, tax_rate, discount, paid_amount, notes, terms,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		invoice.ID,
		invoice.InvoiceNumber,
		invoice.CustomerID,
		invoice.CompanyID,
		invoice.Type,
		invoice.Status,
		invoice.Currency,
		invoice.IssueDate,
		invoice.DueDate,
		invoice.TaxRate,
		invoice.Discount,
		invoice.PaidAmount,
		invoice.Notes,
		invoice.Terms,
		invoice.CreatedAt,
		invoice.UpdatedAt,
	).Error
}

func (s *Service) insertInvoiceItem(ctx context.Context, tx *gorm.DB, item invoicedomain.InvoiceItem) error {
	return tx.WithContext(ctx).Exec(
		`INSERT INTO invoice_items (
			id, invoice_id, description, quantity, rate, amount, position, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID,
		item.InvoiceID,
		item.Description,
		item.Quantity,
		item.Rate,
		item.Amount,
		item.Position,
		item.CreatedAt,
	).Error
}

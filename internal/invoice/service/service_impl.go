package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	invoicedomain "github.com/smallbiznis/invoicepress/internal/invoice/domain"
	"github.com/smallbiznis/invoicepress/internal/observability/metrics"
	"github.com/smallbiznis/invoicepress/internal/pdfrender"
	"github.com/smallbiznis/invoicepress/internal/providers/pdf"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Converter pdfrender.Converter
	Receipts  pdf.Provider
	Metrics   *metrics.Metrics `optional:"true"`
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID     *snowflake.Node
	converter pdfrender.Converter
	receipts  pdf.Provider
	metrics   *metrics.Metrics
}

func NewService(p ServiceParam) invoicedomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("invoice.service"),
		genID: p.GenID,

		converter: p.Converter,
		receipts:  p.Receipts,
		metrics:   p.Metrics,
	}
}

func (s *Service) List(ctx context.Context, req invoicedomain.ListInvoiceRequest) (invoicedomain.ListInvoiceResponse, error) {
	query := strings.Builder{}
	query.WriteString(
		`SELECT id, invoice_number, customer_id, company_id, type, status, currency,
		        issue_date, due_date, tax_rate, discount, paid_amount, notes, terms,
		        metadata, paid_at, created_at, updated_at
		 FROM invoices`)

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if req.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *req.Status)
	}
	if req.CustomerID != nil {
		customerID, err := snowflake.ParseString(strings.TrimSpace(*req.CustomerID))
		if err != nil {
			return invoicedomain.ListInvoiceResponse{}, invoicedomain.ErrInvalidInvoiceID
		}
		conditions = append(conditions, "customer_id = ?")
		args = append(args, customerID)
	}
	if len(conditions) > 0 {
		query.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	query.WriteString(" ORDER BY created_at DESC, id DESC")

	var invoices []invoicedomain.Invoice
	err := s.db.WithContext(ctx).Raw(query.String(), args...).Scan(&invoices).Error
	if err != nil {
		return invoicedomain.ListInvoiceResponse{}, err
	}

	return invoicedomain.ListInvoiceResponse{Invoices: invoices}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (invoicedomain.Invoice, error) {
	invoiceID, err := parseID(strings.TrimSpace(id))
	if err != nil {
		return invoicedomain.Invoice{}, invoicedomain.ErrInvalidInvoiceID
	}

	item, err := s.loadInvoice(ctx, s.db, invoiceID)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	if item == nil {
		return invoicedomain.Invoice{}, invoicedomain.ErrInvoiceNotFound
	}

	return *item, nil
}

func (s *Service) loadInvoice(ctx context.Context, db *gorm.DB, id snowflake.ID) (*invoicedomain.Invoice, error) {
	var invoice invoicedomain.Invoice
	err := db.WithContext(ctx).Raw(
		`SELECT id, invoice_number, customer_id, company_id, type, status, currency,
		        issue_date, due_date, tax_rate, discount, paid_amount, notes, terms,
		        metadata, paid_at, created_at, updated_at
		 FROM invoices
		 WHERE id = ?`,
		id,
	).Scan(&invoice).Error
	if err != nil {
		return nil, err
	}
	if invoice.ID == 0 {
		return nil, nil
	}
	return &invoice, nil
}

func (s *Service) listInvoiceItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) ([]invoicedomain.InvoiceItem, error) {
	var items []invoicedomain.InvoiceItem
	err := db.WithContext(ctx).Raw(
		`SELECT id, invoice_id, description, quantity, rate, amount, position, created_at
		 FROM invoice_items
		 WHERE invoice_id = ?
		 ORDER BY position ASC, id ASC`,
		invoiceID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func parseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(raw)
}

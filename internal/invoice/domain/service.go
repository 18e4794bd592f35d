package domain

import (
	"context"
	"errors"
)

type CreateInvoiceItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

type CreateInvoiceRequest struct {
	InvoiceNumber string                     `json:"invoice_number"`
	CustomerID    string                     `json:"customer_id"`
	CompanyID     string                     `json:"company_id"`
	Type          InvoiceType                `json:"type"`
	Currency      string                     `json:"currency"`
	IssueDate     string                     `json:"issue_date"`
	DueDate       string                     `json:"due_date"`
	TaxRate       float64                    `json:"tax_rate"`
	Discount      float64                    `json:"discount"`
	Notes         string                     `json:"notes"`
	Terms         string                     `json:"terms"`
	Items         []CreateInvoiceItemRequest `json:"items"`
}

type ListInvoiceRequest struct {
	Status     *InvoiceStatus
	CustomerID *string
}

type ListInvoiceResponse struct {
	Invoices []Invoice `json:"invoices"`
}

// RenderDocumentResponse carries the assembled print-ready HTML.
type RenderDocumentResponse struct {
	InvoiceNumber string `json:"invoice_number"`
	HTML          string `json:"html"`
	PageCount     int    `json:"page_count"`
}

type Service interface {
	Create(context.Context, CreateInvoiceRequest) (Invoice, error)
	List(context.Context, ListInvoiceRequest) (ListInvoiceResponse, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	RenderDocument(ctx context.Context, id string) (RenderDocumentResponse, error)
	RenderPDF(ctx context.Context, id string) ([]byte, error)
	RenderReceipt(ctx context.Context, id string) ([]byte, error)
}

var (
	ErrInvalidInvoiceID       = errors.New("invalid_invoice_id")
	ErrInvalidRequest         = errors.New("invalid_request")
	ErrInvoiceNotFound        = errors.New("invoice_not_found")
	ErrInvoiceNotPaid         = errors.New("invoice_not_paid")
	ErrDuplicateInvoiceNumber = errors.New("duplicate_invoice_number")
)

// Package domain contains persistence models for invoicing.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// InvoiceStatus represents invoice lifecycle states.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPartial   InvoiceStatus = "partial"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// InvoiceType distinguishes document flavors sharing the same layout.
type InvoiceType string

const (
	InvoiceTypeInvoice  InvoiceType = "invoice"
	InvoiceTypeProforma InvoiceType = "proforma"
)

// Invoice represents a stored invoice.
type Invoice struct {
	ID            snowflake.ID      `gorm:"primaryKey" json:"id"`
	InvoiceNumber string            `gorm:"not null;uniqueIndex:ux_invoice_number" json:"invoice_number"`
	CustomerID    snowflake.ID      `gorm:"not null;index" json:"customer_id"`
	CompanyID     snowflake.ID      `gorm:"not null;index" json:"company_id"`
	Type          InvoiceType       `gorm:"type:text;not null;default:'invoice'" json:"type"`
	Status        InvoiceStatus     `gorm:"type:text;not null;default:'draft'" json:"status"`
	Currency      string            `gorm:"type:text;not null;default:'USD'" json:"currency"`
	IssueDate     string            `gorm:"column:issue_date" json:"issue_date"`
	DueDate       string            `gorm:"column:due_date" json:"due_date,omitempty"`
	TaxRate       float64           `gorm:"not null;default:0" json:"tax_rate"`
	Discount      float64           `gorm:"not null;default:0" json:"discount"`
	PaidAmount    float64           `gorm:"not null;default:0" json:"paid_amount"`
	Notes         string            `gorm:"type:text" json:"notes,omitempty"`
	Terms         string            `gorm:"type:text" json:"terms,omitempty"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	PaidAt        *time.Time        `gorm:"" json:"paid_at,omitempty"`
	CreatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceItem represents a line on an invoice.
type InvoiceItem struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	InvoiceID   snowflake.ID `gorm:"not null;index" json:"invoice_id"`
	Description string       `gorm:"type:text" json:"description"`
	Quantity    float64      `gorm:"not null" json:"quantity"`
	Rate        float64      `gorm:"not null" json:"rate"`
	Amount      float64      `gorm:"not null" json:"amount"`
	Position    int          `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (InvoiceItem) TableName() string { return "invoice_items" }

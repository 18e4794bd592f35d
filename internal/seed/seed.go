// Package seed bootstraps reference rows for first-run installs.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	companydomain "github.com/smallbiznis/invoicepress/internal/company/domain"
	customerdomain "github.com/smallbiznis/invoicepress/internal/customer/domain"
	invoicedomain "github.com/smallbiznis/invoicepress/internal/invoice/domain"
	"gorm.io/gorm"
)

const (
	defaultCompanyName = "My Company"
	demoInvoiceNumber  = "INV-0001"
	demoCustomerName   = "Demo Customer"
)

// EnsureDefaultCompany seeds a company profile so rendering works before
// the user configures their own identity.
func EnsureDefaultCompany(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := ensureDefaultCompanyTx(ctx, tx, node)
		return err
	})
}

// EnsureDemoInvoice seeds a paid multi-page demo invoice so every render
// path (document, pdf, receipt) can be exercised immediately.
func EnsureDemoInvoice(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		company, err := ensureDefaultCompanyTx(ctx, tx, node)
		if err != nil {
			return err
		}

		var existing invoicedomain.Invoice
		err = tx.WithContext(ctx).
			Where("invoice_number = ?", demoInvoiceNumber).
			First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now().UTC()
		customer := customerdomain.Customer{
			ID:        node.Generate(),
			Name:      demoCustomerName,
			Email:     "customer@example.com",
			Address:   "12 Harbour Road",
			City:      "Freetown",
			Country:   "Sierra Leone",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.WithContext(ctx).Create(&customer).Error; err != nil {
			return err
		}

		paidAt := now
		invoice := invoicedomain.Invoice{
			ID:            node.Generate(),
			InvoiceNumber: demoInvoiceNumber,
			CustomerID:    customer.ID,
			CompanyID:     company.ID,
			Type:          invoicedomain.InvoiceTypeInvoice,
			Status:        invoicedomain.InvoiceStatusPaid,
			Currency:      "USD",
			IssueDate:     now.Format("2006-01-02"),
			DueDate:       now.AddDate(0, 0, 30).Format("2006-01-02"),
			TaxRate:       10,
			PaidAmount:    5500,
			PaidAt:        &paidAt,
			Notes:         "Thank you for your business.",
			Terms:         "Payment due within 30 days.",
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := tx.WithContext(ctx).Create(&invoice).Error; err != nil {
			return err
		}

		// 25 lines so the demo exercises multi-page layout and the
		// reserved last page.
		for i := 0; i < 25; i++ {
			item := invoicedomain.InvoiceItem{
				ID:          node.Generate(),
				InvoiceID:   invoice.ID,
				Description: "Consulting services",
				Quantity:    2,
				Rate:        100,
				Amount:      200,
				Position:    i,
				CreatedAt:   now,
			}
			if err := tx.WithContext(ctx).Create(&item).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func ensureDefaultCompanyTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) (*companydomain.CompanyProfile, error) {
	var company companydomain.CompanyProfile
	err := tx.WithContext(ctx).
		Where("is_default = ?", true).
		First(&company).Error
	if err == nil {
		return &company, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	company = companydomain.CompanyProfile{
		ID:        node.Generate(),
		Name:      defaultCompanyName,
		IsDefault: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

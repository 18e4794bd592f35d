// Package migration creates the core tables automatically on startup so
// the service is usable out of the box for local and self-hosted setups.
package migration

import (
	"errors"

	companydomain "github.com/smallbiznis/invoicepress/internal/company/domain"
	customerdomain "github.com/smallbiznis/invoicepress/internal/customer/domain"
	invoicedomain "github.com/smallbiznis/invoicepress/internal/invoice/domain"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	return db.AutoMigrate(
		&companydomain.CompanyProfile{},
		&customerdomain.Customer{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceItem{},
	)
}

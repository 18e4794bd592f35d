// Package domain contains the company profile used on rendered documents.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// CompanyProfile holds the issuing company identity printed on invoices.
// Logo stores a data URI so rendering never depends on external assets.
type CompanyProfile struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	Name          string       `gorm:"not null" json:"name"`
	Address       string       `gorm:"type:text" json:"address,omitempty"`
	City          string       `gorm:"column:city" json:"city,omitempty"`
	State         string       `gorm:"column:state" json:"state,omitempty"`
	Zip           string       `gorm:"column:zip" json:"zip,omitempty"`
	Phone         string       `gorm:"column:phone" json:"phone,omitempty"`
	Email         string       `gorm:"column:email" json:"email,omitempty"`
	Website       string       `gorm:"column:website" json:"website,omitempty"`
	Logo          string       `gorm:"type:text" json:"logo,omitempty"`
	BankName      string       `gorm:"column:bank_name" json:"bank_name,omitempty"`
	AccountName   string       `gorm:"column:account_name" json:"account_name,omitempty"`
	AccountNumber string       `gorm:"column:account_number" json:"account_number,omitempty"`
	RoutingNumber string       `gorm:"column:routing_number" json:"routing_number,omitempty"`
	SwiftCode     string       `gorm:"column:swift_code" json:"swift_code,omitempty"`
	IsDefault     bool         `gorm:"not null;default:false" json:"is_default"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (CompanyProfile) TableName() string { return "company_profiles" }

var ErrNotFound = errors.New("company_profile_not_found")

package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Customer struct {
	ID        snowflake.ID      `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"not null" json:"name"`
	Email     string            `gorm:"column:email" json:"email,omitempty"`
	Phone     string            `gorm:"column:phone" json:"phone,omitempty"`
	Address   string            `gorm:"type:text" json:"address,omitempty"`
	City      string            `gorm:"column:city" json:"city,omitempty"`
	State     string            `gorm:"column:state" json:"state,omitempty"`
	Zip       string            `gorm:"column:zip" json:"zip,omitempty"`
	Country   string            `gorm:"column:country" json:"country,omitempty"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }

var ErrNotFound = errors.New("customer_not_found")

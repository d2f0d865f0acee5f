package entity

import (
	"time"

	"github.com/branchdesk/customer-intake/pkg/apperror"
	"github.com/branchdesk/customer-intake/pkg/mobile"
	"gorm.io/gorm"
)

// Customer is one intake record captured at a branch
type Customer struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BranchName      string    `gorm:"size:200" json:"branch_name"`
	BranchCode      string    `gorm:"size:100" json:"branch_code"`
	CustomerName    string    `gorm:"size:200" json:"customer_name"`
	CustomerAddress string    `gorm:"size:500" json:"customer_address"`
	CustomerMobile  string    `gorm:"size:20;not null" json:"customer_mobile"`
	Remarks         string    `gorm:"size:500" json:"remarks"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}

// BeforeCreate refuses to store a mobile number that is not in canonical form
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if !mobile.IsCanonical(c.CustomerMobile) {
		return apperror.ErrInvalidMobile
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

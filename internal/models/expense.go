package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SiteExpense is money spent at a site.
type SiteExpense struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	SiteID         uint            `gorm:"index;not null" json:"site_id"`
	ExpenseDate    time.Time       `gorm:"index;not null" json:"expense_date"`
	Title          string          `gorm:"size:128;not null" json:"title"`
	Summary        *string         `gorm:"size:512" json:"summary,omitempty"`
	PaymentDetails *string         `gorm:"size:255" json:"payment_details,omitempty"`
	Amount         decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Removal
}

func (e *SiteExpense) PrimaryID() uint { return e.ID }

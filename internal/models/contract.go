package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract is a labour contract owned by a Contractor ledger and tied to
// exactly one site. The agreement PDF lives outside the system; only the
// opaque document reference is stored.
type Contract struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	ContractorLedgerID uint            `gorm:"index;not null" json:"contractor_ledger_id"`
	SiteID             uint            `gorm:"index;not null" json:"site_id"`
	Title              *string         `gorm:"size:128" json:"title,omitempty"`
	AgreedValue        decimal.Decimal `gorm:"type:numeric;not null" json:"agreed_value"`
	AgreementDocRef    *string         `gorm:"size:128" json:"agreement_doc_ref,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Removal
}

func (c *Contract) PrimaryID() uint { return c.ID }

// Payment is a weekly payment made against a contract. ContractorLedgerID
// and SiteID are denormalized from the parent contract at create time.
type Payment struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	ContractID         uint            `gorm:"index;not null" json:"contract_id"`
	ContractorLedgerID uint            `gorm:"index;not null" json:"contractor_ledger_id"`
	SiteID             uint            `gorm:"index;not null" json:"site_id"`
	PaymentDate        time.Time       `gorm:"index;not null" json:"payment_date"`
	Amount             decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Note               *string         `gorm:"size:255" json:"note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Removal
}

func (p *Payment) PrimaryID() uint { return p.ID }

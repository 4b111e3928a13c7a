package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher records an amount received against a site from a department.
// ChequeAmt is the authoritative received amount; the deduction columns are
// an advisory breakdown and are never re-summed into it. Vouchers have no
// soft-delete state: deletion is always permanent.
type Voucher struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SiteID       uint      `gorm:"index;not null" json:"site_id"`
	DepartmentID uint      `gorm:"index;not null" json:"department_id"`
	VoucherDate  time.Time `gorm:"index;not null" json:"voucher_date"`
	VoucherNo    *string   `gorm:"size:64" json:"voucher_no,omitempty"`
	ChequeNo     *string   `gorm:"size:64" json:"cheque_no,omitempty"`

	ChequeAmt decimal.Decimal `gorm:"type:numeric;not null" json:"cheque_amt"`

	// Itemized deductions. Null means the field was not provided, which is
	// distinct from an explicit zero.
	TDS             decimal.NullDecimal `gorm:"type:numeric" json:"tds"`
	SecurityDeposit decimal.NullDecimal `gorm:"type:numeric" json:"security_deposit"`
	Royalty         decimal.NullDecimal `gorm:"type:numeric" json:"royalty"`
	LabourCess      decimal.NullDecimal `gorm:"type:numeric" json:"labour_cess"`
	OtherDeduction  decimal.NullDecimal `gorm:"type:numeric" json:"other_deduction"`

	Remark *string `gorm:"size:255" json:"remark,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Voucher) PrimaryID() uint { return v.ID }

package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerKind tags the party variant a ledger row represents.
type LedgerKind string

const (
	KindSupplier   LedgerKind = "Supplier"
	KindContractor LedgerKind = "Contractor"
	KindDepartment LedgerKind = "Department"
	KindOther      LedgerKind = "Other"
)

// BuiltinKinds lists the kinds seeded into the ledger type registry.
var BuiltinKinds = []LedgerKind{KindSupplier, KindContractor, KindDepartment, KindOther}

// Valid reports whether k is one of the builtin kinds.
func (k LedgerKind) Valid() bool {
	switch k {
	case KindSupplier, KindContractor, KindDepartment, KindOther:
		return true
	}
	return false
}

// Ledger is a financial party (supplier, contractor, department) against
// which balances are tracked. Name is unique among active ledgers of the
// same kind after normalization.
type Ledger struct {
	ID      uint       `gorm:"primaryKey" json:"id"`
	Kind    LedgerKind `gorm:"size:32;index;not null" json:"kind"`
	Name    string     `gorm:"size:128;not null" json:"name"`
	NameKey string     `gorm:"size:128;index;not null" json:"-"` // normalized name for uniqueness checks

	Address *string `gorm:"size:255" json:"address,omitempty"`
	Mobile  *string `gorm:"size:32" json:"mobile,omitempty"`

	// Kind-specific extension attributes; meaningful for suppliers and
	// contractors, left null for department parties.
	ContactPerson *string `gorm:"size:64" json:"contact_person,omitempty"`
	GSTIN         *string `gorm:"size:32" json:"gstin,omitempty"`

	// nil means a global party; set means the party is scoped to one site.
	SiteID *uint `gorm:"index" json:"site_id,omitempty"`

	OpeningBalance decimal.Decimal `gorm:"type:numeric;not null" json:"opening_balance"`
	ClosingBalance decimal.Decimal `gorm:"type:numeric;not null" json:"closing_balance"`
	Remark         *string         `gorm:"size:255" json:"remark,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Removal
}

func (l *Ledger) PrimaryID() uint { return l.ID }

// LedgerType is the party-kind registry row. The four builtin kinds are
// seeded at migration; EnsureLedgerType registers further kinds at most once.
type LedgerType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:32;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeName collapses inner whitespace and lowercases, giving the key
// used for active-ledger uniqueness.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

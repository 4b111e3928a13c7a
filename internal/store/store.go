package store

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Module names used in audit entries.
const (
	ModuleLedger      = "Ledger"
	ModuleSite        = "Site"
	ModuleDepartment  = "Department"
	ModuleMaterial    = "MaterialMaster"
	ModuleContract    = "Contract"
	ModulePayment     = "Payment"
	ModuleVoucher     = "Voucher"
	ModuleSiteExpense = "SiteExpense"
)

// DateRange filters a list query on a record's date column. Bounds are
// inclusive calendar days; either side may be nil.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// apply narrows q to rows whose date column falls inside the range. The To
// bound covers the whole day.
func (r DateRange) apply(q *gorm.DB, column string) *gorm.DB {
	if r.From != nil {
		q = q.Where(column+" >= ?", *r.From)
	}
	if r.To != nil {
		q = q.Where(column+" < ?", r.To.AddDate(0, 0, 1))
	}
	return q
}

// trimToNil trims s; empty-after-trim optional strings normalize to null so
// round-tripping never invents a value that was not provided.
func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

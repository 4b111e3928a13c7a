package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/audit"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VoucherStore persists received-amount vouchers. Vouchers are the one
// entity type without a soft-delete state: Delete is always permanent, so
// the lifecycle manager is not composed here.
type VoucherStore struct {
	db    *gorm.DB
	audit *audit.Recorder
}

func NewVoucherStore(db *gorm.DB, rec *audit.Recorder) *VoucherStore {
	return &VoucherStore{db: db, audit: rec}
}

type VoucherInput struct {
	SiteID       uint
	DepartmentID uint
	VoucherDate  time.Time
	VoucherNo    *string
	ChequeNo     *string
	ChequeAmt    decimal.Decimal

	TDS             decimal.NullDecimal
	SecurityDeposit decimal.NullDecimal
	Royalty         decimal.NullDecimal
	LabourCess      decimal.NullDecimal
	OtherDeduction  decimal.NullDecimal

	Remark *string
}

type VoucherPatch struct {
	VoucherDate *time.Time
	VoucherNo   *string
	ChequeNo    *string
	ChequeAmt   *decimal.Decimal

	TDS             *decimal.NullDecimal
	SecurityDeposit *decimal.NullDecimal
	Royalty         *decimal.NullDecimal
	LabourCess      *decimal.NullDecimal
	OtherDeduction  *decimal.NullDecimal

	Remark *string
}

// VoucherFilter narrows List; nil fields match everything.
type VoucherFilter struct {
	SiteID       *uint
	DepartmentID *uint
	Range        DateRange
}

func (s *VoucherStore) Create(in VoucherInput, actor audit.Actor) (*models.Voucher, error) {
	if in.ChequeAmt.IsNegative() {
		return nil, fmt.Errorf("%w: cheque amount must be non-negative", ErrValidation)
	}
	if in.VoucherDate.IsZero() {
		return nil, fmt.Errorf("%w: voucher date is required", ErrValidation)
	}
	if err := siteExists(s.db, in.SiteID); err != nil {
		return nil, err
	}
	if err := departmentExists(s.db, in.DepartmentID); err != nil {
		return nil, err
	}
	if err := checkDeductions(in.TDS, in.SecurityDeposit, in.Royalty, in.LabourCess, in.OtherDeduction); err != nil {
		return nil, err
	}

	v := models.Voucher{
		SiteID:          in.SiteID,
		DepartmentID:    in.DepartmentID,
		VoucherDate:     in.VoucherDate,
		VoucherNo:       trimToNil(in.VoucherNo),
		ChequeNo:        trimToNil(in.ChequeNo),
		ChequeAmt:       in.ChequeAmt,
		TDS:             in.TDS,
		SecurityDeposit: in.SecurityDeposit,
		Royalty:         in.Royalty,
		LabourCess:      in.LabourCess,
		OtherDeduction:  in.OtherDeduction,
		Remark:          trimToNil(in.Remark),
	}
	if err := s.db.Create(&v).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModuleVoucher, v.ID, models.AuditCreate, nil, v, actor); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VoucherStore) Update(id uint, patch VoucherPatch, actor audit.Actor) (*models.Voucher, error) {
	v, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	old := *v

	if patch.VoucherDate != nil {
		if patch.VoucherDate.IsZero() {
			return nil, fmt.Errorf("%w: voucher date is required", ErrValidation)
		}
		v.VoucherDate = *patch.VoucherDate
	}
	if patch.VoucherNo != nil {
		v.VoucherNo = trimToNil(patch.VoucherNo)
	}
	if patch.ChequeNo != nil {
		v.ChequeNo = trimToNil(patch.ChequeNo)
	}
	if patch.ChequeAmt != nil {
		if patch.ChequeAmt.IsNegative() {
			return nil, fmt.Errorf("%w: cheque amount must be non-negative", ErrValidation)
		}
		v.ChequeAmt = *patch.ChequeAmt
	}
	if patch.TDS != nil {
		v.TDS = *patch.TDS
	}
	if patch.SecurityDeposit != nil {
		v.SecurityDeposit = *patch.SecurityDeposit
	}
	if patch.Royalty != nil {
		v.Royalty = *patch.Royalty
	}
	if patch.LabourCess != nil {
		v.LabourCess = *patch.LabourCess
	}
	if patch.OtherDeduction != nil {
		v.OtherDeduction = *patch.OtherDeduction
	}
	if patch.Remark != nil {
		v.Remark = trimToNil(patch.Remark)
	}
	if err := checkDeductions(v.TDS, v.SecurityDeposit, v.Royalty, v.LabourCess, v.OtherDeduction); err != nil {
		return nil, err
	}

	if err := s.db.Save(v).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModuleVoucher, id, models.AuditUpdate, old, v, actor); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VoucherStore) Get(id uint) (*models.Voucher, error) {
	var v models.Voucher
	if err := s.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s #%d", ErrNotFound, ModuleVoucher, id)
		}
		return nil, err
	}
	return &v, nil
}

// Delete permanently removes the voucher. The row is read first so the
// HARD_DELETE audit entry keeps its last known state.
func (s *VoucherStore) Delete(id uint, actor audit.Actor) error {
	v, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&models.Voucher{}, id).Error; err != nil {
		return err
	}
	return s.audit.Record(ModuleVoucher, id, models.AuditHardDelete, v, nil, actor)
}

func (s *VoucherStore) List(f VoucherFilter) ([]models.Voucher, error) {
	q := s.db.Model(&models.Voucher{})
	if f.SiteID != nil {
		q = q.Where("site_id = ?", *f.SiteID)
	}
	if f.DepartmentID != nil {
		q = q.Where("department_id = ?", *f.DepartmentID)
	}
	q = f.Range.apply(q, "voucher_date")

	var out []models.Voucher
	err := q.Order("voucher_date ASC, id ASC").Find(&out).Error
	return out, err
}

// checkDeductions rejects negative advisory deduction amounts. The fields
// are a breakdown for display and are never re-summed into ChequeAmt.
func checkDeductions(ds ...decimal.NullDecimal) error {
	for _, d := range ds {
		if d.Valid && d.Decimal.IsNegative() {
			return fmt.Errorf("%w: deduction must be non-negative", ErrValidation)
		}
	}
	return nil
}

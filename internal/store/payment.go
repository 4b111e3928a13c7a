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

// PaymentStore persists weekly contract payments.
type PaymentStore struct {
	db    *gorm.DB
	audit *audit.Recorder
	lc    *lifecycle[models.Payment, *models.Payment]
}

func NewPaymentStore(db *gorm.DB, rec *audit.Recorder) *PaymentStore {
	return &PaymentStore{
		db:    db,
		audit: rec,
		lc:    newLifecycle[models.Payment, *models.Payment](db, rec, ModulePayment),
	}
}

type PaymentInput struct {
	ContractID  uint
	PaymentDate time.Time
	Amount      decimal.Decimal
	Note        *string
}

type PaymentPatch struct {
	PaymentDate *time.Time
	Amount      *decimal.Decimal
	Note        *string
}

// PaymentFilter narrows List; nil fields match everything.
type PaymentFilter struct {
	SiteID       *uint
	ContractorID *uint
	ContractID   *uint
	Range        DateRange
	Deleted      bool
}

// Create records a payment under an active contract. ContractorLedgerID and
// SiteID are denormalized from the parent so scoped listing and
// reconciliation need no join.
func (s *PaymentStore) Create(in PaymentInput, actor audit.Actor) (*models.Payment, error) {
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: payment amount must be non-negative", ErrValidation)
	}
	if in.PaymentDate.IsZero() {
		return nil, fmt.Errorf("%w: payment date is required", ErrValidation)
	}

	var c models.Contract
	err := s.db.First(&c, in.ContractID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: contract #%d", ErrOrphanReference, in.ContractID)
	}
	if err != nil {
		return nil, err
	}
	if c.Deleted() {
		return nil, fmt.Errorf("%w: contract #%d", ErrDeletedRecord, in.ContractID)
	}

	p := models.Payment{
		ContractID:         c.ID,
		ContractorLedgerID: c.ContractorLedgerID,
		SiteID:             c.SiteID,
		PaymentDate:        in.PaymentDate,
		Amount:             in.Amount,
		Note:               trimToNil(in.Note),
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModulePayment, p.ID, models.AuditCreate, nil, p, actor); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PaymentStore) Update(id uint, patch PaymentPatch, actor audit.Actor) (*models.Payment, error) {
	p, err := s.lc.mustBeActive(id)
	if err != nil {
		return nil, err
	}
	old := *p

	if patch.PaymentDate != nil {
		if patch.PaymentDate.IsZero() {
			return nil, fmt.Errorf("%w: payment date is required", ErrValidation)
		}
		p.PaymentDate = *patch.PaymentDate
	}
	if patch.Amount != nil {
		if patch.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: payment amount must be non-negative", ErrValidation)
		}
		p.Amount = *patch.Amount
	}
	if patch.Note != nil {
		p.Note = trimToNil(patch.Note)
	}

	if err := s.db.Save(p).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModulePayment, id, models.AuditUpdate, old, p, actor); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentStore) Get(id uint) (*models.Payment, error) { return s.lc.load(id) }

func (s *PaymentStore) SoftDelete(id uint, actor audit.Actor) (*models.Payment, error) {
	return s.lc.SoftDelete(id, actor)
}

func (s *PaymentStore) Restore(id uint, actor audit.Actor) (*models.Payment, error) {
	return s.lc.Restore(id, actor)
}

func (s *PaymentStore) HardDelete(id uint, actor audit.Actor) error {
	return s.lc.HardDelete(id, actor)
}

func (s *PaymentStore) List(f PaymentFilter) ([]models.Payment, error) {
	q := s.db.Where("is_deleted = ?", f.Deleted)
	if f.SiteID != nil {
		q = q.Where("site_id = ?", *f.SiteID)
	}
	if f.ContractorID != nil {
		q = q.Where("contractor_ledger_id = ?", *f.ContractorID)
	}
	if f.ContractID != nil {
		q = q.Where("contract_id = ?", *f.ContractID)
	}
	q = f.Range.apply(q, "payment_date")

	var out []models.Payment
	err := q.Order("payment_date ASC, id ASC").Find(&out).Error
	return out, err
}

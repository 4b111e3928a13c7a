package store

import (
	"errors"
	"fmt"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/audit"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ContractStore persists labour contracts. Deleting a contract does NOT
// cascade to its payments: the payment rows stay untouched and
// reconciliation excludes them while the parent is deleted.
type ContractStore struct {
	db    *gorm.DB
	audit *audit.Recorder
	lc    *lifecycle[models.Contract, *models.Contract]
}

func NewContractStore(db *gorm.DB, rec *audit.Recorder) *ContractStore {
	return &ContractStore{
		db:    db,
		audit: rec,
		lc:    newLifecycle[models.Contract, *models.Contract](db, rec, ModuleContract),
	}
}

type ContractInput struct {
	ContractorLedgerID uint
	SiteID             uint
	Title              *string
	AgreedValue        decimal.Decimal
	AgreementDocRef    *string
}

type ContractPatch struct {
	Title           *string
	AgreedValue     *decimal.Decimal
	AgreementDocRef *string
}

// ContractFilter narrows List; nil fields match everything.
type ContractFilter struct {
	SiteID       *uint
	ContractorID *uint
	Deleted      bool
}

func (s *ContractStore) Create(in ContractInput, actor audit.Actor) (*models.Contract, error) {
	if in.AgreedValue.IsNegative() {
		return nil, fmt.Errorf("%w: agreed value must be non-negative", ErrValidation)
	}
	if err := s.checkContractor(in.ContractorLedgerID); err != nil {
		return nil, err
	}
	if err := siteExists(s.db, in.SiteID); err != nil {
		return nil, err
	}

	c := models.Contract{
		ContractorLedgerID: in.ContractorLedgerID,
		SiteID:             in.SiteID,
		Title:              trimToNil(in.Title),
		AgreedValue:        in.AgreedValue,
		AgreementDocRef:    trimToNil(in.AgreementDocRef),
	}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModuleContract, c.ID, models.AuditCreate, nil, c, actor); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ContractStore) Update(id uint, patch ContractPatch, actor audit.Actor) (*models.Contract, error) {
	c, err := s.lc.mustBeActive(id)
	if err != nil {
		return nil, err
	}
	old := *c

	if patch.Title != nil {
		c.Title = trimToNil(patch.Title)
	}
	if patch.AgreedValue != nil {
		if patch.AgreedValue.IsNegative() {
			return nil, fmt.Errorf("%w: agreed value must be non-negative", ErrValidation)
		}
		c.AgreedValue = *patch.AgreedValue
	}
	if patch.AgreementDocRef != nil {
		c.AgreementDocRef = trimToNil(patch.AgreementDocRef)
	}

	if err := s.db.Save(c).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModuleContract, id, models.AuditUpdate, old, c, actor); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContractStore) Get(id uint) (*models.Contract, error) { return s.lc.load(id) }

func (s *ContractStore) SoftDelete(id uint, actor audit.Actor) (*models.Contract, error) {
	return s.lc.SoftDelete(id, actor)
}

func (s *ContractStore) Restore(id uint, actor audit.Actor) (*models.Contract, error) {
	return s.lc.Restore(id, actor)
}

func (s *ContractStore) HardDelete(id uint, actor audit.Actor) error {
	return s.lc.HardDelete(id, actor)
}

func (s *ContractStore) List(f ContractFilter) ([]models.Contract, error) {
	q := s.db.Where("is_deleted = ?", f.Deleted)
	if f.SiteID != nil {
		q = q.Where("site_id = ?", *f.SiteID)
	}
	if f.ContractorID != nil {
		q = q.Where("contractor_ledger_id = ?", *f.ContractorID)
	}
	var out []models.Contract
	err := q.Order("id ASC").Find(&out).Error
	return out, err
}

// checkContractor requires the owning ledger to exist, to be of Contractor
// kind, and to be active.
func (s *ContractStore) checkContractor(ledgerID uint) error {
	var l models.Ledger
	err := s.db.First(&l, ledgerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: ledger #%d", ErrOrphanReference, ledgerID)
	}
	if err != nil {
		return err
	}
	if l.Kind != models.KindContractor {
		return fmt.Errorf("%w: ledger #%d is a %s, not a contractor", ErrValidation, ledgerID, l.Kind)
	}
	if l.Deleted() {
		return fmt.Errorf("%w: ledger #%d", ErrDeletedRecord, ledgerID)
	}
	return nil
}

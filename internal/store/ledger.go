package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/audit"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerStore persists party ledgers and enforces the active-name
// uniqueness rule.
type LedgerStore struct {
	db    *gorm.DB
	audit *audit.Recorder
	lc    *lifecycle[models.Ledger, *models.Ledger]
}

func NewLedgerStore(db *gorm.DB, rec *audit.Recorder) *LedgerStore {
	return &LedgerStore{
		db:    db,
		audit: rec,
		lc:    newLifecycle[models.Ledger, *models.Ledger](db, rec, ModuleLedger),
	}
}

// LedgerAttrs carries the optional attributes accepted at create time.
type LedgerAttrs struct {
	Address        *string
	Mobile         *string
	ContactPerson  *string
	GSTIN          *string
	SiteID         *uint
	OpeningBalance decimal.Decimal
	Remark         *string
}

// LedgerPatch is a partial update; nil fields are left unchanged. Optional
// string fields given as blank are normalized to null.
type LedgerPatch struct {
	Name           *string
	Address        *string
	Mobile         *string
	ContactPerson  *string
	GSTIN          *string
	SiteID         *uint
	OpeningBalance *decimal.Decimal
	ClosingBalance *decimal.Decimal
	Remark         *string
}

// Create adds an active ledger of the given kind. The kind must be builtin
// or previously registered via EnsureType.
func (s *LedgerStore) Create(kind models.LedgerKind, name string, attrs LedgerAttrs, actor audit.Actor) (*models.Ledger, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: ledger name is required", ErrValidation)
	}
	if err := s.validateKind(kind); err != nil {
		return nil, err
	}
	if attrs.SiteID != nil {
		if err := siteExists(s.db, *attrs.SiteID); err != nil {
			return nil, err
		}
	}

	key := models.NormalizeName(name)
	taken, err := s.nameTaken(kind, key, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: active %s ledger named %q exists", ErrDuplicateName, kind, name)
	}

	l := models.Ledger{
		Kind:           kind,
		Name:           name,
		NameKey:        key,
		Address:        trimToNil(attrs.Address),
		Mobile:         trimToNil(attrs.Mobile),
		ContactPerson:  trimToNil(attrs.ContactPerson),
		GSTIN:          trimToNil(attrs.GSTIN),
		SiteID:         attrs.SiteID,
		OpeningBalance: attrs.OpeningBalance,
		ClosingBalance: attrs.OpeningBalance,
		Remark:         trimToNil(attrs.Remark),
	}
	if err := s.db.Create(&l).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModuleLedger, l.ID, models.AuditCreate, nil, l, actor); err != nil {
		return nil, err
	}
	return &l, nil
}

// Update applies a partial update to an Active ledger. Renaming is checked
// against the same uniqueness rule, excluding the record's own id.
func (s *LedgerStore) Update(id uint, patch LedgerPatch, actor audit.Actor) (*models.Ledger, error) {
	l, err := s.lc.mustBeActive(id)
	if err != nil {
		return nil, err
	}
	old := *l

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: ledger name is required", ErrValidation)
		}
		key := models.NormalizeName(name)
		taken, err := s.nameTaken(l.Kind, key, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: active %s ledger named %q exists", ErrDuplicateName, l.Kind, name)
		}
		l.Name = name
		l.NameKey = key
	}
	if patch.Address != nil {
		l.Address = trimToNil(patch.Address)
	}
	if patch.Mobile != nil {
		l.Mobile = trimToNil(patch.Mobile)
	}
	if patch.ContactPerson != nil {
		l.ContactPerson = trimToNil(patch.ContactPerson)
	}
	if patch.GSTIN != nil {
		l.GSTIN = trimToNil(patch.GSTIN)
	}
	if patch.SiteID != nil {
		if err := siteExists(s.db, *patch.SiteID); err != nil {
			return nil, err
		}
		l.SiteID = patch.SiteID
	}
	if patch.OpeningBalance != nil {
		l.OpeningBalance = *patch.OpeningBalance
	}
	if patch.ClosingBalance != nil {
		l.ClosingBalance = *patch.ClosingBalance
	}
	if patch.Remark != nil {
		l.Remark = trimToNil(patch.Remark)
	}

	if err := s.db.Save(l).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModuleLedger, id, models.AuditUpdate, old, l, actor); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *LedgerStore) Get(id uint) (*models.Ledger, error) {
	return s.lc.load(id)
}

func (s *LedgerStore) SoftDelete(id uint, actor audit.Actor) (*models.Ledger, error) {
	return s.lc.SoftDelete(id, actor)
}

func (s *LedgerStore) Restore(id uint, actor audit.Actor) (*models.Ledger, error) {
	return s.lc.Restore(id, actor)
}

func (s *LedgerStore) HardDelete(id uint, actor audit.Actor) error {
	return s.lc.HardDelete(id, actor)
}

// ListActive returns active ledgers, optionally narrowed to one kind.
func (s *LedgerStore) ListActive(kind *models.LedgerKind) ([]models.Ledger, error) {
	return s.list(false, kind)
}

// ListDeleted returns the recycle-bin view.
func (s *LedgerStore) ListDeleted(kind *models.LedgerKind) ([]models.Ledger, error) {
	return s.list(true, kind)
}

func (s *LedgerStore) list(deleted bool, kind *models.LedgerKind) ([]models.Ledger, error) {
	q := s.db.Where("is_deleted = ?", deleted)
	if kind != nil {
		q = q.Where("kind = ?", *kind)
	}
	var out []models.Ledger
	if err := q.Order("name ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureType registers a ledger type name, creating it at most once even
// under concurrent first use (unique index + do-nothing upsert).
func (s *LedgerStore) EnsureType(name string) (*models.LedgerType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: ledger type name is required", ErrValidation)
	}
	t := models.LedgerType{Name: name}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&t).Error; err != nil {
		return nil, err
	}
	if t.ID == 0 {
		// lost the race or already present; fetch the winner
		if err := s.db.Where("name = ?", name).First(&t).Error; err != nil {
			return nil, err
		}
	}
	return &t, nil
}

func (s *LedgerStore) validateKind(kind models.LedgerKind) error {
	if kind.Valid() {
		return nil
	}
	var t models.LedgerType
	err := s.db.Where("name = ?", string(kind)).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: unknown ledger kind %q", ErrValidation, kind)
	}
	return err
}

// nameTaken reports whether an ACTIVE ledger of the kind holds the
// normalized name, excluding excludeID. Soft-deleted rows free their name.
func (s *LedgerStore) nameTaken(kind models.LedgerKind, key string, excludeID uint) (bool, error) {
	var n int64
	err := s.db.Model(&models.Ledger{}).
		Where("kind = ? AND name_key = ? AND is_deleted = ? AND id <> ?", kind, key, false, excludeID).
		Count(&n).Error
	return n > 0, err
}

// siteExists rejects foreign site ids that do not resolve.
func siteExists(db *gorm.DB, id uint) error {
	var n int64
	if err := db.Model(&models.Site{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: site #%d", ErrOrphanReference, id)
	}
	return nil
}

package store

import (
	"fmt"
	"strings"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/audit"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaterialStore persists the material master catalog.
type MaterialStore struct {
	db    *gorm.DB
	audit *audit.Recorder
	lc    *lifecycle[models.MaterialMaster, *models.MaterialMaster]
}

func NewMaterialStore(db *gorm.DB, rec *audit.Recorder) *MaterialStore {
	return &MaterialStore{
		db:    db,
		audit: rec,
		lc:    newLifecycle[models.MaterialMaster, *models.MaterialMaster](db, rec, ModuleMaterial),
	}
}

type MaterialPatch struct {
	Name        *string
	Unit        *string
	RatePerUnit *decimal.NullDecimal
	Remark      *string
}

func (s *MaterialStore) Create(name, unit string, rate decimal.NullDecimal, remark *string, actor audit.Actor) (*models.MaterialMaster, error) {
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if name == "" {
		return nil, fmt.Errorf("%w: material name is required", ErrValidation)
	}
	if unit == "" {
		return nil, fmt.Errorf("%w: material unit is required", ErrValidation)
	}
	if rate.Valid && rate.Decimal.IsNegative() {
		return nil, fmt.Errorf("%w: rate must be non-negative", ErrValidation)
	}
	m := models.MaterialMaster{
		Name:        name,
		Unit:        unit,
		RatePerUnit: rate,
		Remark:      trimToNil(remark),
	}
	if err := s.db.Create(&m).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModuleMaterial, m.ID, models.AuditCreate, nil, m, actor); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MaterialStore) Update(id uint, patch MaterialPatch, actor audit.Actor) (*models.MaterialMaster, error) {
	m, err := s.lc.mustBeActive(id)
	if err != nil {
		return nil, err
	}
	old := *m

	if patch.Name != nil {
		n := strings.TrimSpace(*patch.Name)
		if n == "" {
			return nil, fmt.Errorf("%w: material name is required", ErrValidation)
		}
		m.Name = n
	}
	if patch.Unit != nil {
		u := strings.TrimSpace(*patch.Unit)
		if u == "" {
			return nil, fmt.Errorf("%w: material unit is required", ErrValidation)
		}
		m.Unit = u
	}
	if patch.RatePerUnit != nil {
		if patch.RatePerUnit.Valid && patch.RatePerUnit.Decimal.IsNegative() {
			return nil, fmt.Errorf("%w: rate must be non-negative", ErrValidation)
		}
		m.RatePerUnit = *patch.RatePerUnit
	}
	if patch.Remark != nil {
		m.Remark = trimToNil(patch.Remark)
	}

	if err := s.db.Save(m).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModuleMaterial, id, models.AuditUpdate, old, m, actor); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MaterialStore) Get(id uint) (*models.MaterialMaster, error) { return s.lc.load(id) }

func (s *MaterialStore) SoftDelete(id uint, actor audit.Actor) (*models.MaterialMaster, error) {
	return s.lc.SoftDelete(id, actor)
}

func (s *MaterialStore) Restore(id uint, actor audit.Actor) (*models.MaterialMaster, error) {
	return s.lc.Restore(id, actor)
}

func (s *MaterialStore) HardDelete(id uint, actor audit.Actor) error {
	return s.lc.HardDelete(id, actor)
}

func (s *MaterialStore) ListActive() ([]models.MaterialMaster, error)  { return s.list(false) }
func (s *MaterialStore) ListDeleted() ([]models.MaterialMaster, error) { return s.list(true) }

func (s *MaterialStore) list(deleted bool) ([]models.MaterialMaster, error) {
	var out []models.MaterialMaster
	err := s.db.Where("is_deleted = ?", deleted).Order("name ASC, id ASC").Find(&out).Error
	return out, err
}

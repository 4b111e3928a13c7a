package store

import (
	"fmt"
	"strings"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/audit"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"

	"gorm.io/gorm"
)

// DepartmentStore persists the departments vouchers are received from.
type DepartmentStore struct {
	db    *gorm.DB
	audit *audit.Recorder
	lc    *lifecycle[models.Department, *models.Department]
}

func NewDepartmentStore(db *gorm.DB, rec *audit.Recorder) *DepartmentStore {
	return &DepartmentStore{
		db:    db,
		audit: rec,
		lc:    newLifecycle[models.Department, *models.Department](db, rec, ModuleDepartment),
	}
}

func (s *DepartmentStore) Create(name string, remark *string, actor audit.Actor) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: department name is required", ErrValidation)
	}
	d := models.Department{Name: name, Remark: trimToNil(remark)}
	if err := s.db.Create(&d).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModuleDepartment, d.ID, models.AuditCreate, nil, d, actor); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DepartmentStore) Update(id uint, name, remark *string, actor audit.Actor) (*models.Department, error) {
	d, err := s.lc.mustBeActive(id)
	if err != nil {
		return nil, err
	}
	old := *d

	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return nil, fmt.Errorf("%w: department name is required", ErrValidation)
		}
		d.Name = n
	}
	if remark != nil {
		d.Remark = trimToNil(remark)
	}

	if err := s.db.Save(d).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModuleDepartment, id, models.AuditUpdate, old, d, actor); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DepartmentStore) Get(id uint) (*models.Department, error) { return s.lc.load(id) }

func (s *DepartmentStore) SoftDelete(id uint, actor audit.Actor) (*models.Department, error) {
	return s.lc.SoftDelete(id, actor)
}

func (s *DepartmentStore) Restore(id uint, actor audit.Actor) (*models.Department, error) {
	return s.lc.Restore(id, actor)
}

func (s *DepartmentStore) HardDelete(id uint, actor audit.Actor) error {
	return s.lc.HardDelete(id, actor)
}

func (s *DepartmentStore) ListActive() ([]models.Department, error)  { return s.list(false) }
func (s *DepartmentStore) ListDeleted() ([]models.Department, error) { return s.list(true) }

func (s *DepartmentStore) list(deleted bool) ([]models.Department, error) {
	var out []models.Department
	err := s.db.Where("is_deleted = ?", deleted).Order("name ASC, id ASC").Find(&out).Error
	return out, err
}

// departmentExists rejects foreign department ids that do not resolve.
func departmentExists(db *gorm.DB, id uint) error {
	var n int64
	if err := db.Model(&models.Department{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: department #%d", ErrOrphanReference, id)
	}
	return nil
}

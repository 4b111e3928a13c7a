package store

import (
	"fmt"
	"strings"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/audit"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"

	"gorm.io/gorm"
)

// SiteStore persists construction sites.
type SiteStore struct {
	db    *gorm.DB
	audit *audit.Recorder
	lc    *lifecycle[models.Site, *models.Site]
}

func NewSiteStore(db *gorm.DB, rec *audit.Recorder) *SiteStore {
	return &SiteStore{
		db:    db,
		audit: rec,
		lc:    newLifecycle[models.Site, *models.Site](db, rec, ModuleSite),
	}
}

type SitePatch struct {
	Name     *string
	Location *string
	Remark   *string
}

func (s *SiteStore) Create(name string, location, remark *string, actor audit.Actor) (*models.Site, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: site name is required", ErrValidation)
	}
	site := models.Site{
		Name:     name,
		Location: trimToNil(location),
		Remark:   trimToNil(remark),
	}
	if err := s.db.Create(&site).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModuleSite, site.ID, models.AuditCreate, nil, site, actor); err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *SiteStore) Update(id uint, patch SitePatch, actor audit.Actor) (*models.Site, error) {
	site, err := s.lc.mustBeActive(id)
	if err != nil {
		return nil, err
	}
	old := *site

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: site name is required", ErrValidation)
		}
		site.Name = name
	}
	if patch.Location != nil {
		site.Location = trimToNil(patch.Location)
	}
	if patch.Remark != nil {
		site.Remark = trimToNil(patch.Remark)
	}

	if err := s.db.Save(site).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModuleSite, id, models.AuditUpdate, old, site, actor); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *SiteStore) Get(id uint) (*models.Site, error) { return s.lc.load(id) }

func (s *SiteStore) SoftDelete(id uint, actor audit.Actor) (*models.Site, error) {
	return s.lc.SoftDelete(id, actor)
}

func (s *SiteStore) Restore(id uint, actor audit.Actor) (*models.Site, error) {
	return s.lc.Restore(id, actor)
}

func (s *SiteStore) HardDelete(id uint, actor audit.Actor) error {
	return s.lc.HardDelete(id, actor)
}

func (s *SiteStore) ListActive() ([]models.Site, error)  { return s.list(false) }
func (s *SiteStore) ListDeleted() ([]models.Site, error) { return s.list(true) }

func (s *SiteStore) list(deleted bool) ([]models.Site, error) {
	var out []models.Site
	err := s.db.Where("is_deleted = ?", deleted).Order("name ASC, id ASC").Find(&out).Error
	return out, err
}

package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/audit"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"

	"gorm.io/gorm"
)

// record is what a model must expose to take part in the soft-delete
// lifecycle: Active --softDelete--> Deleted --restore--> Active, with hard
// delete reaching Purged from either state.
type record interface {
	PrimaryID() uint
	Deleted() bool
	MarkDeleted(at time.Time, by string)
	ClearDeleted()
}

// lifecycle implements the state machine once; each store composes an
// instance instead of repeating the transitions per entity. Re-entrant
// transitions (soft-deleting a Deleted record, restoring an Active one) are
// errors, not no-ops, so caller bugs surface. The manager never cascades to
// owned children; that is the caller's decision.
type lifecycle[T any, P interface {
	*T
	record
}] struct {
	db     *gorm.DB
	audit  *audit.Recorder
	module string
}

func newLifecycle[T any, P interface {
	*T
	record
}](db *gorm.DB, rec *audit.Recorder, module string) *lifecycle[T, P] {
	return &lifecycle[T, P]{db: db, audit: rec, module: module}
}

// load fetches the row regardless of state.
func (m *lifecycle[T, P]) load(id uint) (*T, error) {
	var rec T
	if err := m.db.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s #%d", ErrNotFound, m.module, id)
		}
		return nil, err
	}
	return &rec, nil
}

// mustBeActive loads the row and rejects soft-deleted ones; used by store
// update paths, which are only permitted from the Active state.
func (m *lifecycle[T, P]) mustBeActive(id uint) (*T, error) {
	rec, err := m.load(id)
	if err != nil {
		return nil, err
	}
	if P(rec).Deleted() {
		return nil, fmt.Errorf("%w: %s #%d", ErrDeletedRecord, m.module, id)
	}
	return rec, nil
}

// SoftDelete moves an Active record to Deleted.
func (m *lifecycle[T, P]) SoftDelete(id uint, actor audit.Actor) (*T, error) {
	rec, err := m.load(id)
	if err != nil {
		return nil, err
	}
	p := P(rec)
	if p.Deleted() {
		return nil, fmt.Errorf("%w: %s #%d already deleted", ErrDeletedRecord, m.module, id)
	}
	old := *rec
	p.MarkDeleted(time.Now(), actor.Name)
	if err := m.db.Save(rec).Error; err != nil {
		return nil, err
	}
	if err := m.audit.Record(m.module, id, models.AuditDelete, old, rec, actor); err != nil {
		return nil, err
	}
	return rec, nil
}

// Restore moves a Deleted record back to Active.
func (m *lifecycle[T, P]) Restore(id uint, actor audit.Actor) (*T, error) {
	rec, err := m.load(id)
	if err != nil {
		return nil, err
	}
	p := P(rec)
	if !p.Deleted() {
		return nil, fmt.Errorf("%w: %s #%d", ErrActiveRecord, m.module, id)
	}
	old := *rec
	p.ClearDeleted()
	if err := m.db.Save(rec).Error; err != nil {
		return nil, err
	}
	if err := m.audit.Record(m.module, id, models.AuditRestore, old, rec, actor); err != nil {
		return nil, err
	}
	return rec, nil
}

// HardDelete permanently removes the row from either state. The row is read
// first so the audit trail retains its last known state; that ordering is
// mandatory even though the delete and the audit append are not atomic.
func (m *lifecycle[T, P]) HardDelete(id uint, actor audit.Actor) error {
	rec, err := m.load(id)
	if err != nil {
		return err
	}
	if err := m.db.Delete(new(T), id).Error; err != nil {
		return err
	}
	return m.audit.Record(m.module, id, models.AuditHardDelete, rec, nil, actor)
}

package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"

	"gorm.io/gorm"
)

// ErrWriteFailure reports that an audit append did not persist. In strict
// mode the enclosing business operation must treat this as fatal; in lenient
// mode the gap is logged and the operation proceeds.
var ErrWriteFailure = errors.New("audit write failure")

// Actor identifies who performed a mutation, as supplied by the calling
// layer. Zero value means unattributed (e.g. migrations, scripts).
type Actor struct {
	UserID *uint
	Name   string
	IP     string
}

// Recorder appends entries to the audit log. Entries are append-only and
// never contend for the same row, so concurrent recording is always safe.
type Recorder struct {
	db     *gorm.DB
	strict bool
}

// NewRecorder returns a Recorder. With strict=true a failed append surfaces
// ErrWriteFailure to the caller; with strict=false it is logged and
// swallowed (accepted-with-audit-gap).
func NewRecorder(db *gorm.DB, strict bool) *Recorder {
	return &Recorder{db: db, strict: strict}
}

// Record appends one audit entry. oldData/newData are full row snapshots and
// may be nil (CREATE has no old state, HARD_DELETE no new state). The entry
// is written only after the business mutation has been confirmed, never
// speculatively before.
func (r *Recorder) Record(module string, recordID uint, action models.AuditAction, oldData, newData any, actor Actor) error {
	entry := models.AuditEntry{
		UserID:   actor.UserID,
		Module:   module,
		RecordID: recordID,
		Action:   action,
		IP:       actor.IP,
	}

	var err error
	if entry.OldData, err = snapshot(oldData); err == nil {
		entry.NewData, err = snapshot(newData)
	}
	if err == nil {
		err = r.db.Create(&entry).Error
	}
	if err == nil {
		return nil
	}

	if r.strict {
		return fmt.Errorf("%w: %s %s #%d: %v", ErrWriteFailure, module, action, recordID, err)
	}
	log.Printf("audit: dropped %s %s #%d: %v", module, action, recordID, err)
	return nil
}

// snapshot marshals a row to JSON, passing nil through untouched.
func snapshot(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

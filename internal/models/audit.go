package models

import "time"

// AuditAction is the mutation type recorded by an audit entry.
type AuditAction string

const (
	AuditCreate     AuditAction = "CREATE"
	AuditUpdate     AuditAction = "UPDATE"
	AuditDelete     AuditAction = "DELETE"
	AuditRestore    AuditAction = "RESTORE"
	AuditHardDelete AuditAction = "HARD_DELETE"
)

// AuditEntry is an immutable record of a single financial mutation. It keeps
// only a weak reference (Module + RecordID) to the record it describes, so it
// survives hard deletion of that record. Rows are append-only; nothing in
// the system updates or deletes them.
type AuditEntry struct {
	ID       uint        `gorm:"primaryKey" json:"id"`
	UserID   *uint       `gorm:"index" json:"user_id,omitempty"`
	Module   string      `gorm:"size:64;index;not null" json:"module"`
	RecordID uint        `gorm:"index;not null" json:"record_id"`
	Action   AuditAction `gorm:"size:16;index;not null" json:"action"`

	// Full row snapshots as JSON. OldData is absent for CREATE, NewData is
	// absent for HARD_DELETE.
	OldData *string `gorm:"type:text" json:"old_data,omitempty"`
	NewData *string `gorm:"type:text" json:"new_data,omitempty"`

	IP        string    `gorm:"size:64" json:"ip"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

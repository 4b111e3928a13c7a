package models

import "time"

// Removal carries the shared soft-delete columns. A record is Active while
// IsDeleted is false and Deleted afterwards; hard delete removes the row
// entirely. Embedded by every model that participates in the recycle bin.
type Removal struct {
	IsDeleted bool       `gorm:"index;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	DeletedBy *string    `gorm:"size:64" json:"deleted_by,omitempty"`
}

// Deleted reports whether the record is currently soft-deleted.
func (r *Removal) Deleted() bool { return r.IsDeleted }

// MarkDeleted moves the record into the Deleted state.
func (r *Removal) MarkDeleted(at time.Time, by string) {
	r.IsDeleted = true
	r.DeletedAt = &at
	if by != "" {
		r.DeletedBy = &by
	}
}

// ClearDeleted returns the record to the Active state.
func (r *Removal) ClearDeleted() {
	r.IsDeleted = false
	r.DeletedAt = nil
	r.DeletedBy = nil
}

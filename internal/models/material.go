package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialMaster is a catalog row for construction materials (cement, steel,
// sand). Referenced by supplier-side records for rate lookups.
type MaterialMaster struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:128;not null" json:"name"`
	Unit string `gorm:"size:32;not null" json:"unit"` // bag, ton, cft

	RatePerUnit decimal.NullDecimal `gorm:"type:numeric" json:"rate_per_unit"`
	Remark      *string             `gorm:"size:255" json:"remark,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Removal
}

func (m *MaterialMaster) PrimaryID() uint { return m.ID }

package models

import "time"

// Site is a construction site. Vouchers and expenses belong to exactly one
// site; contracts and site-scoped ledgers reference it.
type Site struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:128;not null" json:"name"`
	Location *string `gorm:"size:255" json:"location,omitempty"`
	Remark   *string `gorm:"size:255" json:"remark,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Removal
}

func (s *Site) PrimaryID() uint { return s.ID }

// Department is an internal department vouchers are received against.
type Department struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"size:128;not null" json:"name"`
	Remark *string `gorm:"size:255" json:"remark,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Removal
}

func (d *Department) PrimaryID() uint { return d.ID }

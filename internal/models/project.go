package models

import (
	"time"

	"gorm.io/gorm"
)

// Project is a fundraising campaign with a monetary goal and a deadline.
// RaisedAmount and BackersCount are denormalized running totals maintained
// atomically when investments are created, never recomputed from scratch.
type Project struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:200;not null;index"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	ImageURL     *string   `json:"image_url" gorm:"size:500"`
	ImageKey     string    `json:"-" gorm:"size:100"`
	Goal         float64   `json:"goal" gorm:"not null"`
	RaisedAmount float64   `json:"raised_amount" gorm:"not null;default:0"`
	BackersCount int       `json:"backers_count" gorm:"not null;default:0"`
	Deadline     time.Time `json:"deadline" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	CategoryID uint `json:"category_id" gorm:"not null"`
	CreatorID  uint `json:"creator_id" gorm:"not null"`

	Category    *Category    `json:"-" gorm:"foreignKey:CategoryID"`
	Creator     *User        `json:"-" gorm:"foreignKey:CreatorID"`
	Investments []Investment `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Reviews     []Review     `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`

	// Derived fields, never stored.
	ProgressPercent float64 `json:"progress_percent" gorm:"-"`
	DaysLeft        int     `json:"days_left" gorm:"-"`
}

// ComputeDerived refreshes the non-persisted presentation fields.
func (p *Project) ComputeDerived() {
	if p.Goal > 0 {
		p.ProgressPercent = p.RaisedAmount / p.Goal * 100
	} else {
		p.ProgressPercent = 0
	}
	p.DaysLeft = 0
	if remaining := time.Until(p.Deadline); remaining > 0 {
		p.DaysLeft = int(remaining.Hours() / 24)
	}
}

// AfterFind recomputes derived fields whenever a project is loaded.
func (p *Project) AfterFind(_ *gorm.DB) error {
	p.ComputeDerived()
	return nil
}

// AfterSave keeps derived fields consistent on create and update.
func (p *Project) AfterSave(_ *gorm.DB) error {
	p.ComputeDerived()
	return nil
}

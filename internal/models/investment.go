package models

import "time"

// Investment is a pledge of money by a user toward a project's goal.
// Investments are immutable once created; there is no update or delete
// endpoint, a pledge is bookkeeping only.
type Investment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Message   *string   `json:"message" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	ProjectID uint `json:"project_id" gorm:"not null;index"`
	UserID    uint `json:"user_id" gorm:"not null;index"`

	Project *Project `json:"-" gorm:"foreignKey:ProjectID"`
	User    *User    `json:"-" gorm:"foreignKey:UserID"`
}

package models

import "time"

// Review is a rated comment a user leaves on a project. A user may review
// the same project more than once; reviews are immutable once created.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Rating    int       `json:"rating" gorm:"not null;default:5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	ProjectID uint `json:"project_id" gorm:"not null;index"`
	UserID    uint `json:"user_id" gorm:"not null;index"`

	Project *Project `json:"-" gorm:"foreignKey:ProjectID"`
	User    *User    `json:"-" gorm:"foreignKey:UserID"`
}

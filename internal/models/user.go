package models

import "time"

// User represents a registered platform user who can create projects,
// invest in them and leave reviews.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	FullName  *string   `json:"full_name" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Projects    []Project    `json:"-" gorm:"foreignKey:CreatorID"`
	Investments []Investment `json:"-" gorm:"foreignKey:UserID"`
	Reviews     []Review     `json:"-" gorm:"foreignKey:UserID"`
}

package models

// Category is a named grouping used to classify projects.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`

	Projects []Project `json:"-" gorm:"foreignKey:CategoryID"`
}

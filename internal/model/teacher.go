package model

import "time"

// Teacher authors comments on assignments.
type Teacher struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"size:128;not null;uniqueIndex"`
	HashedPassword string    `json:"-" gorm:"size:255;not null;default:''"` // empty when created implicitly by a comment
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	Comments []Comment `json:"-" gorm:"foreignKey:TeacherID;constraint:OnDelete:SET NULL"`
}

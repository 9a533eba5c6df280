package model

import "time"

// Student owns submitted assignments.
type Student struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"size:128;not null;uniqueIndex"`
	HashedPassword string    `json:"-" gorm:"size:255;not null;default:''"` // Never expose in JSON
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	Assignments []Assignment `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

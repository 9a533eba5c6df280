package model

import "time"

// Assignment is a file submitted by a student. It is never updated after creation.
type Assignment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StudentID   uint      `json:"student_id" gorm:"not null;index"`
	Subject     string    `json:"subject" gorm:"size:256;not null"`
	Description *string   `json:"description" gorm:"type:text"`
	FilePath    string    `json:"file_path" gorm:"size:512;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`

	// Relations
	Student  *Student  `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Comments []Comment `json:"comments" gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
}

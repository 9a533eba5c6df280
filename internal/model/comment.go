package model

import "time"

// Comment is a teacher's remark on an assignment.
// TeacherName is kept so the comment stays attributed after the teacher row is gone.
type Comment struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	AssignmentID uint      `json:"assignment_id" gorm:"not null;index"`
	TeacherID    *uint     `json:"teacher_id" gorm:"index"`
	TeacherName  string    `json:"teacher_name" gorm:"size:128;not null"`
	Comment      string    `json:"comment" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Assignment *Assignment `json:"-" gorm:"foreignKey:AssignmentID"`
	Teacher    *Teacher    `json:"-" gorm:"foreignKey:TeacherID"`
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"classdrop/internal/model"
)

// AssignmentRepository defines assignment and comment persistence operations.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.Assignment) error
	FindByID(ctx context.Context, id uint) (*model.Assignment, error)
	List(ctx context.Context) ([]model.Assignment, error)
	ListByStudentName(ctx context.Context, name string) ([]model.Assignment, error)
	AddComment(ctx context.Context, assignmentID uint, teacherName, text string) (*model.Comment, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository.
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Student").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		})
}

// Create creates a new assignment.
func (r *assignmentRepository) Create(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

// FindByID finds an assignment by ID along with its student and comments.
func (r *assignmentRepository) FindByID(ctx context.Context, id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	if err := r.withRelations(ctx).Where("assignments.id = ?", id).First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// List returns every assignment, newest first.
func (r *assignmentRepository) List(ctx context.Context) ([]model.Assignment, error) {
	var assignments []model.Assignment
	if err := r.withRelations(ctx).
		Order("assignments.created_at DESC, assignments.id DESC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListByStudentName returns the assignments of the named student, newest first.
func (r *assignmentRepository) ListByStudentName(ctx context.Context, name string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	if err := r.withRelations(ctx).
		Joins("JOIN students ON students.id = assignments.student_id").
		Where("students.name = ?", name).
		Order("assignments.created_at DESC, assignments.id DESC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// AddComment records a comment in one transaction: the assignment must exist
// (gorm.ErrRecordNotFound otherwise), the teacher row is ensured, then the
// comment is inserted referencing it.
func (r *assignmentRepository) AddComment(ctx context.Context, assignmentID uint, teacherName, text string) (*model.Comment, error) {
	var comment *model.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assignment model.Assignment
		if err := tx.Select("id").Where("id = ?", assignmentID).First(&assignment).Error; err != nil {
			return err
		}

		txPrincipals := &principalRepository{db: tx}
		teacher, err := txPrincipals.Ensure(ctx, teacherName, model.RoleTeacher)
		if err != nil {
			return err
		}

		teacherID := teacher.ID()
		comment = &model.Comment{
			AssignmentID: assignment.ID,
			TeacherID:    &teacherID,
			TeacherName:  teacher.Name(),
			Comment:      text,
		}
		return tx.Create(comment).Error
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"classdrop/internal/cache"
	apperrors "classdrop/internal/errors"
	"classdrop/internal/model"
	"classdrop/internal/repository"
)

const (
	// AssignmentListCacheKey holds the cached full listing. Anything that
	// changes assignments or comments outside this service must delete it.
	AssignmentListCacheKey = "assignments:all"
	assignmentListCacheTTL = 30 * time.Second
)

// AssignmentService handles submissions and teacher comments.
type AssignmentService interface {
	Submit(ctx context.Context, student *model.Student, subject string, description *string, fileRef string) (*model.Assignment, error)
	List(ctx context.Context) ([]model.Assignment, error)
	ListByStudent(ctx context.Context, name string) ([]model.Assignment, error)
	Get(ctx context.Context, id uint) (*model.Assignment, error)
	AddComment(ctx context.Context, assignmentID uint, teacherName, text string) (*model.Comment, error)
}

type assignmentService struct {
	repo  repository.AssignmentRepository
	cache *cache.Client
}

// NewAssignmentService creates a new assignment service. cache may be nil.
func NewAssignmentService(repo repository.AssignmentRepository, cache *cache.Client) AssignmentService {
	return &assignmentService{repo: repo, cache: cache}
}

// Submit records an assignment for an authenticated student.
func (s *assignmentService) Submit(ctx context.Context, student *model.Student, subject string, description *string, fileRef string) (*model.Assignment, error) {
	assignment := &model.Assignment{
		StudentID:   student.ID,
		Subject:     subject,
		Description: description,
		FilePath:    fileRef,
	}
	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}
	assignment.Student = student

	_ = s.cache.Delete(ctx, AssignmentListCacheKey)
	return assignment, nil
}

// List returns all assignments newest first.
func (s *assignmentService) List(ctx context.Context) ([]model.Assignment, error) {
	var cached []model.Assignment
	if s.cache.GetJSON(ctx, AssignmentListCacheKey, &cached) {
		return cached, nil
	}

	assignments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	_ = s.cache.SetJSON(ctx, AssignmentListCacheKey, assignments, assignmentListCacheTTL)
	return assignments, nil
}

// ListByStudent returns the named student's assignments newest first.
func (s *assignmentService) ListByStudent(ctx context.Context, name string) ([]model.Assignment, error) {
	assignments, err := s.repo.ListByStudentName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list assignments of %s: %w", name, err)
	}
	return assignments, nil
}

// Get returns one assignment or ErrNotFound.
func (s *assignmentService) Get(ctx context.Context, id uint) (*model.Assignment, error) {
	assignment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	return assignment, nil
}

// AddComment attaches a comment by teacherName, creating the teacher row when
// absent. Returns ErrNotFound for an unknown assignment.
func (s *assignmentService) AddComment(ctx context.Context, assignmentID uint, teacherName, text string) (*model.Comment, error) {
	comment, err := s.repo.AddComment(ctx, assignmentID, teacherName, text)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("add comment: %w", err)
	}

	_ = s.cache.Delete(ctx, AssignmentListCacheKey)
	return comment, nil
}

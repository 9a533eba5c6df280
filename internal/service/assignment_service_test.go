package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "classdrop/internal/errors"
	"classdrop/internal/model"
)

func TestAssignmentService_Submit(t *testing.T) {
	mockRepo := new(MockAssignmentRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Assignment) bool {
		return a.StudentID == 1 && a.Subject == "Math" && a.Description == nil && a.FilePath == "uploads/x.txt"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Assignment).ID = 1
	}).Return(nil)

	student := &model.Student{ID: 1, Name: "alice"}
	assignment, err := NewAssignmentService(mockRepo, nil).Submit(context.Background(), student, "Math", nil, "uploads/x.txt")
	require.NoError(t, err)
	assert.Equal(t, uint(1), assignment.ID)
	assert.Equal(t, "alice", assignment.Student.Name)
	mockRepo.AssertExpectations(t)
}

func TestAssignmentService_SubmitFailure(t *testing.T) {
	mockRepo := new(MockAssignmentRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := NewAssignmentService(mockRepo, nil).Submit(context.Background(), &model.Student{ID: 1}, "Math", nil, "f")
	assert.Error(t, err)
}

func TestAssignmentService_Get(t *testing.T) {
	mockRepo := new(MockAssignmentRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Assignment{ID: 1, Subject: "Math"}, nil)
	mockRepo.On("FindByID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)
	svc := NewAssignmentService(mockRepo, nil)

	got, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Math", got.Subject)

	_, err = svc.Get(context.Background(), 2)
	assert.Equal(t, apperrors.ErrNotFound, err)
}

func TestAssignmentService_List(t *testing.T) {
	items := []model.Assignment{{ID: 2, Subject: "Art"}, {ID: 1, Subject: "Math"}}
	mockRepo := new(MockAssignmentRepository)
	mockRepo.On("List", mock.Anything).Return(items, nil)
	mockRepo.On("ListByStudentName", mock.Anything, "alice").Return(items[1:], nil)
	svc := NewAssignmentService(mockRepo, nil)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, items, first)

	mine, err := svc.ListByStudent(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestAssignmentService_AddComment(t *testing.T) {
	teacherID := uint(9)
	mockRepo := new(MockAssignmentRepository)
	mockRepo.On("AddComment", mock.Anything, uint(1), "mrsmith", "Good job").
		Return(&model.Comment{ID: 1, AssignmentID: 1, TeacherID: &teacherID, TeacherName: "mrsmith", Comment: "Good job"}, nil)
	mockRepo.On("AddComment", mock.Anything, uint(5), "mrsmith", "Hi").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("AddComment", mock.Anything, uint(6), "mrsmith", "Hi").Return(nil, errors.New("deadlock"))
	svc := NewAssignmentService(mockRepo, nil)

	comment, err := svc.AddComment(context.Background(), 1, "mrsmith", "Good job")
	require.NoError(t, err)
	assert.Equal(t, "mrsmith", comment.TeacherName)

	_, err = svc.AddComment(context.Background(), 5, "mrsmith", "Hi")
	assert.Equal(t, apperrors.ErrNotFound, err)

	_, err = svc.AddComment(context.Background(), 6, "mrsmith", "Hi")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

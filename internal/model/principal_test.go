package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleTeacher.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}

func TestPrincipal_Accessors(t *testing.T) {
	s := NewStudentPrincipal(&Student{ID: 3, Name: "alice", HashedPassword: "h1"})
	assert.Equal(t, RoleStudent, s.Role)
	assert.Equal(t, uint(3), s.ID())
	assert.Equal(t, "alice", s.Name())
	assert.Equal(t, "h1", s.PasswordHash())

	tc := NewTeacherPrincipal(&Teacher{ID: 7, Name: "mrsmith"})
	assert.Equal(t, RoleTeacher, tc.Role)
	assert.Equal(t, uint(7), tc.ID())
	assert.Equal(t, "mrsmith", tc.Name())
	assert.Empty(t, tc.PasswordHash())

	empty := &Principal{}
	assert.Zero(t, empty.ID())
	assert.Empty(t, empty.Name())
}

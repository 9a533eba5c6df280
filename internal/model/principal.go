package model

// Role identifies which namespace a principal belongs to.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// Principal is an identity tagged with its role.
// Exactly one of Student or Teacher is set, matching Role.
type Principal struct {
	Role    Role
	Student *Student
	Teacher *Teacher
}

// NewStudentPrincipal wraps a student record.
func NewStudentPrincipal(s *Student) *Principal {
	return &Principal{Role: RoleStudent, Student: s}
}

// NewTeacherPrincipal wraps a teacher record.
func NewTeacherPrincipal(t *Teacher) *Principal {
	return &Principal{Role: RoleTeacher, Teacher: t}
}

// ID returns the primary key of the underlying record.
func (p *Principal) ID() uint {
	switch {
	case p.Student != nil:
		return p.Student.ID
	case p.Teacher != nil:
		return p.Teacher.ID
	}
	return 0
}

// Name returns the unique name of the underlying record.
func (p *Principal) Name() string {
	switch {
	case p.Student != nil:
		return p.Student.Name
	case p.Teacher != nil:
		return p.Teacher.Name
	}
	return ""
}

// PasswordHash returns the stored digest, empty for principals created without a password.
func (p *Principal) PasswordHash() string {
	switch {
	case p.Student != nil:
		return p.Student.HashedPassword
	case p.Teacher != nil:
		return p.Teacher.HashedPassword
	}
	return ""
}

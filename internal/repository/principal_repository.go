package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"classdrop/internal/model"
)

// PrincipalRepository defines persistence of students and teachers.
// Each role is a separate namespace backed by its own table.
type PrincipalRepository interface {
	Create(ctx context.Context, principal *model.Principal) error
	FindByName(ctx context.Context, name string, role model.Role) (*model.Principal, error)
	Ensure(ctx context.Context, name string, role model.Role) (*model.Principal, error)
	Claim(ctx context.Context, name string, role model.Role, hashedPassword string) (*model.Principal, error)
	Delete(ctx context.Context, name string, role model.Role) error
}

type principalRepository struct {
	db *gorm.DB
}

// NewPrincipalRepository creates a new principal repository.
func NewPrincipalRepository(db *gorm.DB) PrincipalRepository {
	return &principalRepository{db: db}
}

// Create inserts the record matching principal.Role.
// A taken name yields gorm.ErrDuplicatedKey.
func (r *principalRepository) Create(ctx context.Context, principal *model.Principal) error {
	switch {
	case principal.Role == model.RoleStudent && principal.Student != nil:
		return r.db.WithContext(ctx).Create(principal.Student).Error
	case principal.Role == model.RoleTeacher && principal.Teacher != nil:
		return r.db.WithContext(ctx).Create(principal.Teacher).Error
	default:
		return fmt.Errorf("create principal: invalid role %q", principal.Role)
	}
}

// FindByName finds a principal by exact name within role.
func (r *principalRepository) FindByName(ctx context.Context, name string, role model.Role) (*model.Principal, error) {
	switch role {
	case model.RoleStudent:
		var student model.Student
		if err := r.db.WithContext(ctx).Where("name = ?", name).First(&student).Error; err != nil {
			return nil, err
		}
		return model.NewStudentPrincipal(&student), nil
	case model.RoleTeacher:
		var teacher model.Teacher
		if err := r.db.WithContext(ctx).Where("name = ?", name).First(&teacher).Error; err != nil {
			return nil, err
		}
		return model.NewTeacherPrincipal(&teacher), nil
	default:
		return nil, fmt.Errorf("find principal: invalid role %q", role)
	}
}

// Ensure returns the principal named name, creating a passwordless one if absent.
// Concurrent callers converge on the same row.
func (r *principalRepository) Ensure(ctx context.Context, name string, role model.Role) (*model.Principal, error) {
	existing, err := r.FindByName(ctx, name, role)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var record interface{}
	switch role {
	case model.RoleStudent:
		record = &model.Student{Name: name}
	case model.RoleTeacher:
		record = &model.Teacher{Name: name}
	default:
		return nil, fmt.Errorf("ensure principal: invalid role %q", role)
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(record).Error; err != nil {
		return nil, err
	}
	return r.FindByName(ctx, name, role)
}

// Claim ensures the principal exists and sets its password, in one transaction.
// A principal that already has a password yields gorm.ErrDuplicatedKey.
func (r *principalRepository) Claim(ctx context.Context, name string, role model.Role, hashedPassword string) (*model.Principal, error) {
	var claimed *model.Principal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &principalRepository{db: tx}
		principal, err := txRepo.Ensure(ctx, name, role)
		if err != nil {
			return err
		}

		var table interface{} = &model.Student{}
		if role == model.RoleTeacher {
			table = &model.Teacher{}
		}
		res := tx.Model(table).
			Where("id = ? AND hashed_password = ?", principal.ID(), "").
			Update("hashed_password", hashedPassword)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrDuplicatedKey
		}

		claimed, err = txRepo.FindByName(ctx, name, role)
		return err
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

// Delete removes a principal. The database cascades to owned assignments
// and detaches authored comments.
func (r *principalRepository) Delete(ctx context.Context, name string, role model.Role) error {
	var res *gorm.DB
	switch role {
	case model.RoleStudent:
		res = r.db.WithContext(ctx).Where("name = ?", name).Delete(&model.Student{})
	case model.RoleTeacher:
		res = r.db.WithContext(ctx).Where("name = ?", name).Delete(&model.Teacher{})
	default:
		return fmt.Errorf("delete principal: invalid role %q", role)
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

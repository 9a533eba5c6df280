package auth

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "classdrop/internal/errors"
	"classdrop/internal/model"
)

// PrincipalFinder resolves a name within a role namespace.
type PrincipalFinder interface {
	FindByName(ctx context.Context, name string, role model.Role) (*model.Principal, error)
}

// Guard turns a token into an existing principal of a required role.
type Guard struct {
	tokens *JWTService
	finder PrincipalFinder
}

// NewGuard creates a guard backed by the token service and a principal lookup.
func NewGuard(tokens *JWTService, finder PrincipalFinder) *Guard {
	return &Guard{tokens: tokens, finder: finder}
}

// Check returns the underlying reason a token is rejected for role, or the principal.
// Callers that talk to clients must collapse rejections; RequireRole does that.
// A failing lookup is returned wrapped and is not a rejection.
func (g *Guard) Check(ctx context.Context, token string, role model.Role) (*model.Principal, error) {
	claims, err := g.tokens.Verify(token, role)
	if err != nil {
		return nil, err
	}
	principal, err := g.finder.FindByName(ctx, claims.Subject, role)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no %s named %q", apperrors.ErrUnauthenticated, role, claims.Subject)
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", role, err)
	}
	if principal == nil || principal.Role != role {
		return nil, apperrors.ErrUnauthenticated
	}
	return principal, nil
}

// RequireRole is Check with every rejection reported as ErrUnauthenticated.
// Lookup failures pass through.
func (g *Guard) RequireRole(ctx context.Context, token string, role model.Role) (*model.Principal, error) {
	principal, err := g.Check(ctx, token, role)
	if err != nil {
		if IsRejection(err) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, err
	}
	return principal, nil
}

// IsRejection reports whether err from Check means the token was refused, as
// opposed to the principal lookup failing.
func IsRejection(err error) bool {
	return errors.Is(err, ErrTokenInvalid) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrWrongRole) ||
		errors.Is(err, apperrors.ErrUnauthenticated)
}

// RequireStudent resolves token to an existing student.
func (g *Guard) RequireStudent(ctx context.Context, token string) (*model.Student, error) {
	p, err := g.RequireRole(ctx, token, model.RoleStudent)
	if err != nil {
		return nil, err
	}
	return p.Student, nil
}

// RequireTeacher resolves token to an existing teacher.
func (g *Guard) RequireTeacher(ctx context.Context, token string) (*model.Teacher, error) {
	p, err := g.RequireRole(ctx, token, model.RoleTeacher)
	if err != nil {
		return nil, err
	}
	return p.Teacher, nil
}

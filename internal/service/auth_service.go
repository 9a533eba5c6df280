package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"classdrop/internal/auth"
	apperrors "classdrop/internal/errors"
	"classdrop/internal/model"
	"classdrop/internal/repository"
)

// AuthService handles registration, login and principal lookup for both roles.
type AuthService interface {
	Register(ctx context.Context, name, password string, role model.Role) (*model.Principal, error)
	Login(ctx context.Context, name, password string, role model.Role) (accessToken string, principal *model.Principal, err error)
	IssueToken(principal *model.Principal) (string, error)
	FindByName(ctx context.Context, name string, role model.Role) (*model.Principal, error)
}

type authService struct {
	principals repository.PrincipalRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(principals repository.PrincipalRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		principals: principals,
		jwtService: jwtService,
	}
}

// Register creates a principal with a hashed password, or sets the password of
// a passwordless one. Names are unique per role.
func (s *authService) Register(ctx context.Context, name, password string, role model.Role) (*model.Principal, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("register: invalid role %q", role)
	}
	if len(password) > auth.MaxPasswordBytes {
		return nil, apperrors.ErrPasswordTooLong
	}

	existing, err := s.principals.FindByName(ctx, name, role)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check %s existence: %w", role, err)
	}
	// a passwordless teacher left behind by a comment can still be registered
	if existing != nil && existing.PasswordHash() != "" {
		return nil, apperrors.ErrAlreadyExists
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	principal, err := s.principals.Claim(ctx, name, role, hashed)
	if err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("register %s: %w", role, err)
	}

	return principal, nil
}

// Login verifies credentials and returns an access token.
// Unknown names and wrong passwords produce the same error.
func (s *authService) Login(ctx context.Context, name, password string, role model.Role) (string, *model.Principal, error) {
	principal, err := s.principals.FindByName(ctx, name, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find %s: %w", role, err)
	}

	if !auth.CheckPassword(password, principal.PasswordHash()) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.IssueToken(principal)
	if err != nil {
		return "", nil, err
	}
	return accessToken, principal, nil
}

// IssueToken signs an access token for principal with the configured lifetime.
func (s *authService) IssueToken(principal *model.Principal) (string, error) {
	token, err := s.jwtService.Issue(principal.Name(), principal.Role, 0)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}

// FindByName looks up a principal within role.
func (s *authService) FindByName(ctx context.Context, name string, role model.Role) (*model.Principal, error) {
	return s.principals.FindByName(ctx, name, role)
}

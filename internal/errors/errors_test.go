package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"already exists", ErrAlreadyExists, http.StatusConflict, "ALREADY_EXISTS"},
		{"wrapped already exists", fmt.Errorf("register student: %w", ErrAlreadyExists), http.StatusConflict, "ALREADY_EXISTS"},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"not found", ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"password too long", fmt.Errorf("register: %w", ErrPasswordTooLong), http.StatusBadRequest, "PASSWORD_TOO_LONG"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestMapErrorToHTTP_HidesInternalDetails(t *testing.T) {
	got := MapErrorToHTTP(errors.New("dial tcp 10.0.0.3:3306: refused"))
	assert.Equal(t, "internal server error", got.ToErrorResponse().Error)
}

func TestUnauthenticated_IsUniform(t *testing.T) {
	a := Unauthenticated().ToErrorResponse()
	b := MapErrorToHTTP(fmt.Errorf("guard: %w", ErrUnauthenticated)).ToErrorResponse()
	assert.Equal(t, a, b)
	assert.Equal(t, "could not validate credentials", a.Error)
}

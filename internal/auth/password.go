package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "classdrop/internal/errors"
)

const bcryptCost = 10

// MaxPasswordBytes is the longest password bcrypt accepts, in bytes.
const MaxPasswordBytes = 72

// HashPassword returns a salted bcrypt digest of plain.
// The limit is counted in bytes, so multibyte characters count several times.
func HashPassword(plain string) (string, error) {
	if len(plain) > MaxPasswordBytes {
		return "", apperrors.ErrPasswordTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches digest.
// An empty or malformed digest never matches.
func CheckPassword(plain, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

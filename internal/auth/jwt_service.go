package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"classdrop/internal/model"
)

// DefaultTokenTTL applies when neither the caller nor the config sets a lifetime.
const DefaultTokenTTL = 15 * time.Minute

var (
	// ErrTokenInvalid is returned when a token cannot be decoded or its signature does not verify.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned when a token is verified at or after its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed is returned when a token lacks the subject, role or expiry claim.
	ErrTokenMalformed = errors.New("malformed token")
	// ErrWrongRole is returned when the token's role differs from the expected one.
	ErrWrongRole = errors.New("token issued for another role")
)

// Claims represents JWT claims. Subject carries the principal name.
type Claims struct {
	Type model.Role `json:"type"`
	jwt.RegisteredClaims
}

// TokenConfig configures a JWTService.
type TokenConfig struct {
	Secret []byte
	// TTL is the lifetime used when Issue is called without one.
	TTL time.Duration
	// Now is the clock used for issuing and verifying; time.Now when nil.
	Now func() time.Time
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTService creates a new JWT service from cfg.
func NewJWTService(cfg TokenConfig) *JWTService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &JWTService{
		secret: cfg.Secret,
		ttl:    ttl,
		now:    now,
		// expiry is checked against s.now rather than the library clock
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Issue signs a token for the given name and role, valid for ttl.
// A non-positive ttl falls back to the configured lifetime.
func (s *JWTService) Issue(name string, role model.Role, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	now := s.now()
	claims := &Claims{
		Type: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature, expiry, required claims and role, in that order.
// It does not consult storage.
func (s *JWTService) Verify(tokenString string, expected model.Role) (*Claims, error) {
	claims := &Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.ExpiresAt == nil {
		return nil, ErrTokenMalformed
	}
	if !s.now().Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}
	if claims.Subject == "" || claims.Type == "" {
		return nil, ErrTokenMalformed
	}
	if claims.Type != expected {
		return nil, ErrWrongRole
	}

	return claims, nil
}

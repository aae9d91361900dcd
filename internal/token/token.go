package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eduhub-platform/backend/internal/domain"
)

var (
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenMalformed   = errors.New("token malformed")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// Claims is the identity data embedded in an access token.
type Claims struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity converts verified claims back into a request identity.
func (c *Claims) Identity() domain.Identity {
	return domain.Identity{
		ID:    c.Subject,
		Email: c.Email,
		Role:  c.Role,
	}
}

// Service issues and verifies HMAC-signed access tokens. The signing secret
// is fixed at construction and immutable for the process lifetime; both
// Issue and Verify are pure functions of the secret, their input, and the
// current time.
type Service struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewService creates a token service with the given secret and issuer.
func NewService(secret, issuer string) *Service {
	return &Service{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue produces a signed token for the identity, valid for ttl from now.
func (s *Service) Issue(identity domain.Identity, ttl time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		Email: identity.Email,
		Role:  identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token string and returns the embedded
// claims unchanged. It never consults a store: a stale role inside a still
// valid token is only corrected by the refresh flow.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// Package token issues and verifies the signed session tokens carried
// in the session cookie. Verification is stateless: signature and
// expiry alone decide validity, no storage lookup is involved.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"job-tracker/internal/model"
)

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs an HS256 token carrying the principal id as subject.
func (s *Service) Issue(principalID string) (string, error) {
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   principalID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify returns the principal id encoded in a valid token. Failures
// are one of model.ErrTokenMalformed, model.ErrTokenExpired or
// model.ErrTokenInvalid; signature integrity is checked before expiry,
// and the HMAC comparison inside jwt is constant-time.
func (s *Service) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)

	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "", model.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", model.ErrTokenExpired
	case err != nil, parsed == nil, !parsed.Valid:
		return "", model.ErrTokenInvalid
	}

	if claims.Subject == "" {
		return "", model.ErrTokenInvalid
	}

	return claims.Subject, nil
}

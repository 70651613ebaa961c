package signup

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const formTokenAudience = "snapgram-signup"

var errInvalidFormToken = errors.New("invalid form token")

type formClaims struct {
	jwt.RegisteredClaims
}

// formTokens signs and verifies the token binding a browser to a form session.
type formTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func newFormTokens(secret []byte, ttl time.Duration, now func() time.Time) (formTokens, error) {
	if len(secret) == 0 {
		generated := make([]byte, 32)
		if _, err := rand.Read(generated); err != nil {
			return formTokens{}, fmt.Errorf("generate form secret: %w", err)
		}
		secret = generated
	}
	if ttl <= 0 {
		ttl = DefaultFormTTL
	}
	if now == nil {
		now = time.Now
	}
	return formTokens{secret: secret, ttl: ttl, now: now}, nil
}

func (t formTokens) issue(formID string) (string, error) {
	now := t.now()
	claims := formClaims{RegisteredClaims: jwt.RegisteredClaims{
		ID:        formID,
		Audience:  jwt.ClaimStrings{formTokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign form token: %w", err)
	}
	return signed, nil
}

// verify returns the form id carried by raw.
func (t formTokens) verify(raw string) (string, error) {
	if raw == "" {
		return "", errInvalidFormToken
	}
	claims := &formClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(formTokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errInvalidFormToken, err)
	}
	if claims.ID == "" {
		return "", errInvalidFormToken
	}
	return claims.ID, nil
}

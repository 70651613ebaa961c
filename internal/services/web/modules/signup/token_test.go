package signup

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestFormTokensRoundTrip(t *testing.T) {
	t.Parallel()

	tokens, err := newFormTokens([]byte("secret"), time.Minute, newFakeClock().Now)
	if err != nil {
		t.Fatalf("newFormTokens() error = %v", err)
	}
	raw, err := tokens.issue("form-1")
	if err != nil {
		t.Fatalf("issue() error = %v", err)
	}
	if strings.Count(raw, ".") != 2 {
		t.Fatalf("token = %q, want a compact JWT", raw)
	}
	formID, err := tokens.verify(raw)
	if err != nil {
		t.Fatalf("verify() error = %v", err)
	}
	if formID != "form-1" {
		t.Fatalf("verify() = %q, want %q", formID, "form-1")
	}
}

func TestFormTokensRejectInvalidTokens(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	tokens, err := newFormTokens([]byte("secret"), time.Minute, clock.Now)
	if err != nil {
		t.Fatalf("newFormTokens() error = %v", err)
	}
	other, err := newFormTokens([]byte("other"), time.Minute, clock.Now)
	if err != nil {
		t.Fatalf("newFormTokens() error = %v", err)
	}
	foreign, err := other.issue("form-1")
	if err != nil {
		t.Fatalf("issue() error = %v", err)
	}
	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		ID:        "form-1",
		Audience:  jwt.ClaimStrings{formTokenAudience},
		ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Minute)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}
	wrongAudience, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        "form-1",
		Audience:  jwt.ClaimStrings{"elsewhere"},
		ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Minute)),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	for name, raw := range map[string]string{
		"empty":          "",
		"garbage":        "not-a-token",
		"foreign secret": foreign,
		"alg none":       noneToken,
		"wrong audience": wrongAudience,
	} {
		if _, err := tokens.verify(raw); !errors.Is(err, errInvalidFormToken) {
			t.Fatalf("%s: verify() error = %v, want errInvalidFormToken", name, err)
		}
	}
}

func TestFormTokensExpire(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	tokens, err := newFormTokens([]byte("secret"), time.Minute, clock.Now)
	if err != nil {
		t.Fatalf("newFormTokens() error = %v", err)
	}
	raw, err := tokens.issue("form-1")
	if err != nil {
		t.Fatalf("issue() error = %v", err)
	}
	clock.Advance(2 * time.Minute)
	if _, err := tokens.verify(raw); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("verify() error = %v, want expired", err)
	}
}

func TestNewFormTokensGeneratesSecret(t *testing.T) {
	t.Parallel()

	tokens, err := newFormTokens(nil, 0, nil)
	if err != nil {
		t.Fatalf("newFormTokens() error = %v", err)
	}
	if len(tokens.secret) != 32 {
		t.Fatalf("secret length = %d, want 32", len(tokens.secret))
	}
	if tokens.ttl != DefaultFormTTL {
		t.Fatalf("ttl = %s, want %s", tokens.ttl, DefaultFormTTL)
	}
}

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lawconnect/case-management/internal/core/domain"
)

// DefaultTokenTTL is the token lifetime used when none is configured.
const DefaultTokenTTL = time.Hour

// TokenClaims is the verified content of an identity token.
type TokenClaims struct {
	Username string
	Role     string
}

// TokenService issues and verifies HMAC-SHA256 signed identity tokens. The
// signing key is a process-wide shared secret loaded from configuration.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token whose subject is the username, carrying the
// role claim and expiring TTL after issuance.
func (t *TokenService) Issue(username, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(t.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// Verify parses and validates a token and returns its claims. Malformed,
// tampered, and expired tokens all yield domain.ErrInvalidToken.
func (t *TokenService) Verify(token string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	return &TokenClaims{Username: sub, Role: role}, nil
}

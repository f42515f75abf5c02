package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/pdfgenie-client/internal/model"
)

// JWT implements TokenInspector for JWT access tokens.
// Signatures are never verified: the client holds no key and only needs
// the expiry to avoid sending a token the backend would reject anyway.
type JWT struct {
	parser *jwt.Parser
}

var _ model.TokenInspector = (*JWT)(nil)

// NewJWT creates a new JWT inspector.
func NewJWT() *JWT {
	return &JWT{parser: jwt.NewParser()}
}

// Expiry returns the exp claim of the token.
// Opaque tokens and tokens without exp report false.
func (j *JWT) Expiry(tokenString string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := j.parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired reports whether the token carries an exp claim in the past.
func Expired(inspector model.TokenInspector, tokenString string, now time.Time) bool {
	exp, ok := inspector.Expiry(tokenString)
	if !ok {
		return false
	}
	return !now.Before(exp)
}

package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of token claims the console displays. The token is
// never validated locally; the remote API is the sole judge of validity.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// DecodeClaims extracts display claims from a bearer token without verifying
// its signature. A malformed token yields the zero value and false, never a
// panic.
func DecodeClaims(token string) (Claims, bool) {
	if token == "" {
		return Claims{}, false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Claims{}, false
	}

	out := Claims{}
	if v, ok := claims["userId"].(string); ok {
		out.UserID = v
	}
	if v, ok := claims["email"].(string); ok {
		out.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		out.Role = v
	}
	return out, true
}

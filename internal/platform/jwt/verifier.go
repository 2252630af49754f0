package jwtmw

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any verification failure: malformed token,
// bad signature, wrong signing method or expired claims.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the identity claims embedded in an issued token.
type Claims struct {
	UserID string
	Email  string
}

// Verifier defines the interface for JWT token verification.
type Verifier interface {
	// Verify checks the token signature and expiry and returns the embedded
	// identity claims.
	Verify(tokenStr string) (*Claims, error)
}

// verifier implements the Verifier interface.
type verifier struct {
	secret []byte
}

// NewVerifier creates a new JWT verifier with the provided secret.
// The secret is injected at construction rather than read from the
// environment on each request.
func NewVerifier(secret string) Verifier {
	return &verifier{secret: []byte(secret)}
}

// Verify parses and validates the token. Expiry is checked by the jwt
// library against the exp claim.
func (v *verifier) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	out := &Claims{}
	if sub, ok := claims["sub"].(string); ok {
		out.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	return out, nil
}

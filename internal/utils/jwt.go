// Package utils provides password hashing and session-token helpers shared by
// the handlers and middleware.
package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, expiry, or malformed claims. Callers get no more detail than
// that, matching the single "Invalid token" response on the wire.
var ErrInvalidToken = errors.New("invalid session token")

// SessionToken is a signed HS256 credential returned to the client. Sessions
// are fully stateless: nothing is stored server-side and the token is the only
// proof of identity until Exp passes.
type SessionToken struct {
	Token string    // serialized JWT
	Exp   time.Time // UTC expiration time
}

// Identity is the decoded content of a verified session token.
type Identity struct {
	UserID uint64
	Email  string
}

// NewSessionToken builds and signs an HS256 JWT for a user. Claims carry the
// user id as the subject plus the email, issue time and expiry.
func NewSessionToken(secret string, userID uint64, email string, ttlDays int) (SessionToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(userID, 10),
		"email": email,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies a raw token against the secret and returns the
// identity it encodes. Verification is pure: calling it twice with the same
// unexpired token yields the same identity and touches no state.
func ParseSessionToken(secret, raw string) (Identity, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	var id Identity
	switch sub := claims["sub"].(type) {
	case string:
		n, err := strconv.ParseUint(sub, 10, 64)
		if err != nil {
			return Identity{}, ErrInvalidToken
		}
		id.UserID = n
	case float64:
		id.UserID = uint64(sub)
	default:
		return Identity{}, ErrInvalidToken
	}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if id.UserID == 0 {
		return Identity{}, ErrInvalidToken
	}
	return id, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials identifies the caller for the duration of one request. It is
// threaded through context.Context explicitly; nothing in this codebase
// reads an ambient global token.
type Credentials struct {
	UserID string
	Token  string // raw bearer token, forwarded to the recipe catalog
}

// Claims is the JWT payload we accept.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// ErrUnauthorized is returned for missing, malformed or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

type ctxKey struct{}

// WithCredentials attaches credentials to a context.
func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, ctxKey{}, creds)
}

// FromContext retrieves the request credentials.
func FromContext(ctx context.Context) (Credentials, bool) {
	creds, ok := ctx.Value(ctxKey{}).(Credentials)
	return creds, ok
}

// Verifier validates bearer tokens against a shared signing key.
type Verifier struct {
	key []byte
}

// NewVerifier creates a Verifier for the given HMAC signing key.
func NewVerifier(key []byte) *Verifier {
	return &Verifier{key: key}
}

// Verify parses and validates a raw bearer token, returning the caller's
// credentials.
func (v *Verifier) Verify(token string) (Credentials, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil || !parsed.Valid {
		return Credentials{}, ErrUnauthorized
	}
	if claims.UserID == "" {
		return Credentials{}, ErrUnauthorized
	}
	return Credentials{UserID: claims.UserID, Token: token}, nil
}

// FromRequest extracts and verifies the Authorization header of an HTTP
// request.
func (v *Verifier) FromRequest(r *http.Request) (Credentials, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return Credentials{}, ErrUnauthorized
	}
	return v.Verify(token)
}

// Sign issues a token for the given user. Used by tests and by the telegram
// bot when acting on behalf of a linked user.
func (v *Verifier) Sign(userID string) (string, error) {
	claims := &Claims{UserID: userID}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

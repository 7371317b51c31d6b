package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// TokenID identifies a session token
type TokenID string

// TokenSecret is the secret half of a session token pair
type TokenSecret string

// String returns the string representation of TokenID
func (t TokenID) String() string {
	return string(t)
}

// Validate checks if the TokenID is valid
func (t TokenID) Validate() error {
	if t == "" {
		return goerr.New("token ID cannot be empty")
	}
	return nil
}

// String returns the string representation of TokenSecret
func (t TokenSecret) String() string {
	return string(t)
}

// Validate checks if the TokenSecret is valid
func (t TokenSecret) Validate() error {
	if t == "" {
		return goerr.New("token secret cannot be empty")
	}
	return nil
}

// TokenTTL is the lifetime of a browser session
const TokenTTL = 24 * time.Hour

// Token is a server-side browser session created after a successful sign-in
type Token struct {
	ID        TokenID
	Secret    TokenSecret
	Sub       string
	Email     string
	Name      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewToken creates a session token for the given identity
func NewToken(sub, email, name string) *Token {
	now := time.Now()
	return &Token{
		ID:        TokenID(uuid.NewString()),
		Secret:    TokenSecret(uuid.NewString()),
		Sub:       sub,
		Email:     email,
		Name:      name,
		CreatedAt: now,
		ExpiresAt: now.Add(TokenTTL),
	}
}

// NewAnonymousToken returns a token used in no-auth development mode
func NewAnonymousToken(email string) *Token {
	token := NewToken("anonymous", email, "Anonymous User")
	token.ExpiresAt = token.CreatedAt.Add(365 * 24 * time.Hour)
	return token
}

// Validate checks the token fields
func (t *Token) Validate() error {
	if err := t.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid token")
	}
	if err := t.Secret.Validate(); err != nil {
		return goerr.Wrap(err, "invalid token")
	}
	if t.Email == "" {
		return goerr.New("token email cannot be empty", goerr.V("id", t.ID))
	}
	return nil
}

// Expired reports whether the token is past its expiry
func (t *Token) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

type ctxTokenKey struct{}

// ContextWithToken returns a context carrying the session token
func ContextWithToken(ctx context.Context, token *Token) context.Context {
	return context.WithValue(ctx, ctxTokenKey{}, token)
}

// TokenFromContext returns the session token stored in the context, if any
func TokenFromContext(ctx context.Context) (*Token, bool) {
	token, ok := ctx.Value(ctxTokenKey{}).(*Token)
	return token, ok
}

package interfaces

import (
	"context"
	"errors"

	"github.com/a11y-lab/statements/pkg/domain/model/auth"
)

// ErrTokenNotFound is returned when a session token does not exist
var ErrTokenNotFound = errors.New("token not found")

// SessionStore persists browser session tokens. Domain records all live in
// the content backend; sessions are the only state this application owns.
type SessionStore interface {
	PutToken(ctx context.Context, token *auth.Token) error
	GetToken(ctx context.Context, tokenID auth.TokenID) (*auth.Token, error)
	DeleteToken(ctx context.Context, tokenID auth.TokenID) error
}

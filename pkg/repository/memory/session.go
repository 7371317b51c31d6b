package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/a11y-lab/statements/pkg/domain/interfaces"
	"github.com/a11y-lab/statements/pkg/domain/model/auth"
)

// SessionStore is an in-memory session token store. Sessions do not survive a
// restart, which only forces a re-login.
type SessionStore struct {
	mu     sync.RWMutex
	tokens map[auth.TokenID]*auth.Token
}

var _ interfaces.SessionStore = &SessionStore{}

// New creates an empty session store
func New() *SessionStore {
	return &SessionStore{
		tokens: make(map[auth.TokenID]*auth.Token),
	}
}

func (s *SessionStore) PutToken(ctx context.Context, token *auth.Token) error {
	if err := token.Validate(); err != nil {
		return goerr.Wrap(err, "invalid token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token.ID] = token
	return nil
}

func (s *SessionStore) GetToken(ctx context.Context, tokenID auth.TokenID) (*auth.Token, error) {
	if err := tokenID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid token ID")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[tokenID]
	if !ok {
		return nil, interfaces.ErrTokenNotFound
	}

	return token, nil
}

func (s *SessionStore) DeleteToken(ctx context.Context, tokenID auth.TokenID) error {
	if err := tokenID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid token ID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[tokenID]; !ok {
		return interfaces.ErrTokenNotFound
	}

	delete(s.tokens, tokenID)
	return nil
}

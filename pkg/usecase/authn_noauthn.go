package usecase

import (
	"context"

	"github.com/a11y-lab/statements/pkg/domain/model/auth"
)

// NoAuthnUseCase skips authentication entirely and acts as a fixed user.
// Development only.
type NoAuthnUseCase struct {
	token *auth.Token
}

var _ AuthUseCaseInterface = &NoAuthnUseCase{}

// NewNoAuthnUseCase creates an authentication bypass acting as the given email
func NewNoAuthnUseCase(email string) *NoAuthnUseCase {
	return &NoAuthnUseCase{
		token: auth.NewAnonymousToken(email),
	}
}

// IsNoAuthn returns true
func (uc *NoAuthnUseCase) IsNoAuthn() bool {
	return true
}

// GetAuthURL returns the application root since there is no OAuth dance
func (uc *NoAuthnUseCase) GetAuthURL(state string) string {
	return "/"
}

// HandleCallback returns the fixed token
func (uc *NoAuthnUseCase) HandleCallback(ctx context.Context, code string) (*auth.Token, error) {
	return uc.token, nil
}

// ValidateToken returns the fixed token regardless of input
func (uc *NoAuthnUseCase) ValidateToken(ctx context.Context, tokenID auth.TokenID, tokenSecret auth.TokenSecret) (*auth.Token, error) {
	return uc.token, nil
}

// Logout is a no-op
func (uc *NoAuthnUseCase) Logout(ctx context.Context, tokenID auth.TokenID) error {
	return nil
}

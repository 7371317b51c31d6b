package usecase

import (
	"context"

	"github.com/a11y-lab/statements/pkg/domain/interfaces"
	"github.com/a11y-lab/statements/pkg/domain/model/auth"
)

// AuthUseCaseInterface abstracts the authentication flow so the HTTP layer
// can run against either the real Entra flow or the no-auth development mode
type AuthUseCaseInterface interface {
	GetAuthURL(state string) string
	HandleCallback(ctx context.Context, code string) (*auth.Token, error)
	ValidateToken(ctx context.Context, tokenID auth.TokenID, tokenSecret auth.TokenSecret) (*auth.Token, error)
	Logout(ctx context.Context, tokenID auth.TokenID) error
	IsNoAuthn() bool
}

// UseCases bundles the application's use cases
type UseCases struct {
	client interfaces.ContentClient

	User      *UserUseCase
	Dashboard *DashboardUseCase
	Auth      AuthUseCaseInterface
}

// Option is a functional option for UseCases
type Option func(*UseCases)

// WithAuth sets the authentication use case
func WithAuth(auth AuthUseCaseInterface) Option {
	return func(uc *UseCases) {
		uc.Auth = auth
	}
}

// Client returns the underlying content client
func (uc *UseCases) Client() interfaces.ContentClient {
	return uc.client
}

// New creates the use case bundle on top of a content client
func New(client interfaces.ContentClient, opts ...Option) *UseCases {
	uc := &UseCases{
		client: client,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.User = NewUserUseCase(client)
	uc.Dashboard = NewDashboardUseCase(client)

	return uc
}

package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/a11y-lab/statements/pkg/domain/interfaces"
	"github.com/a11y-lab/statements/pkg/usecase"
)

// Entra is the Microsoft Entra ID single sign-on configuration
type Entra struct {
	tenantID     string
	clientID     string
	clientSecret string
	noAuthEmail  string
}

func (x *Entra) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "entra-tenant-id",
			Usage:       "Entra ID tenant (directory) ID",
			Category:    "Authentication",
			Sources:     cli.EnvVars("STATEMENTS_ENTRA_TENANT_ID"),
			Destination: &x.tenantID,
		},
		&cli.StringFlag{
			Name:        "entra-client-id",
			Usage:       "Entra ID application (client) ID",
			Category:    "Authentication",
			Sources:     cli.EnvVars("STATEMENTS_ENTRA_CLIENT_ID"),
			Destination: &x.clientID,
		},
		&cli.StringFlag{
			Name:        "entra-client-secret",
			Usage:       "Entra ID client secret",
			Category:    "Authentication",
			Sources:     cli.EnvVars("STATEMENTS_ENTRA_CLIENT_SECRET"),
			Destination: &x.clientSecret,
		},
		&cli.StringFlag{
			Name:        "no-auth",
			Usage:       "Skip authentication and run as the specified email (development only). Example: --no-auth=dev@example.com",
			Category:    "Authentication",
			Sources:     cli.EnvVars("STATEMENTS_NO_AUTH"),
			Destination: &x.noAuthEmail,
		},
	}
}

func (x Entra) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("tenant-id", x.tenantID),
		slog.String("client-id", x.clientID),
		slog.Int("client-secret.len", len(x.clientSecret)),
		slog.Bool("no-auth", x.noAuthEmail != ""),
	)
}

// IsNoAuthMode returns true if the authentication bypass is enabled
func (x *Entra) IsNoAuthMode() bool {
	return x.noAuthEmail != ""
}

// Configure creates the authentication use case. baseURL is the externally
// reachable address of this application; the OAuth callback is derived from it.
func (x *Entra) Configure(sessions interfaces.SessionStore, baseURL string) (usecase.AuthUseCaseInterface, error) {
	if x.noAuthEmail != "" {
		if x.tenantID != "" || x.clientID != "" {
			slog.Warn("--no-auth is set, ignoring Entra OAuth configuration")
		}
		return usecase.NewNoAuthnUseCase(x.noAuthEmail), nil
	}

	if x.tenantID == "" || x.clientID == "" || x.clientSecret == "" || baseURL == "" {
		return nil, goerr.New("Entra configuration is required: set --entra-tenant-id, --entra-client-id, --entra-client-secret and --base-url, or use --no-auth")
	}

	callbackURL := baseURL + "/auth/callback"
	return usecase.NewAuthUseCase(sessions, x.tenantID, x.clientID, x.clientSecret, callbackURL), nil
}

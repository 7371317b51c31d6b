package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/a11y-lab/statements/pkg/service/strapi"
)

// Content is the content-backend configuration
type Content struct {
	baseURL  string
	apiToken string
}

func (x *Content) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "content-base-url",
			Usage:       "Base URL of the content backend",
			Category:    "Content backend",
			Value:       "http://localhost:1337",
			Sources:     cli.EnvVars("STATEMENTS_CONTENT_BASE_URL"),
			Destination: &x.baseURL,
		},
		&cli.StringFlag{
			Name:        "content-api-token",
			Usage:       "Bearer token for the content backend API",
			Category:    "Content backend",
			Sources:     cli.EnvVars("STATEMENTS_CONTENT_API_TOKEN"),
			Destination: &x.apiToken,
		},
	}
}

func (x Content) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base-url", x.baseURL),
		slog.Int("api-token.len", len(x.apiToken)),
	)
}

// BaseURL returns the configured backend base URL
func (x *Content) BaseURL() string {
	return x.baseURL
}

// Configure creates the content API client
func (x *Content) Configure() (*strapi.Client, error) {
	var opts []strapi.Option
	if x.apiToken != "" {
		opts = append(opts, strapi.WithAPIToken(x.apiToken))
	}
	return strapi.New(x.baseURL, opts...)
}

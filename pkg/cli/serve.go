package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/a11y-lab/statements/pkg/cli/config"
	httpctrl "github.com/a11y-lab/statements/pkg/controller/http"
	"github.com/a11y-lab/statements/pkg/repository/memory"
	"github.com/a11y-lab/statements/pkg/usecase"
	"github.com/a11y-lab/statements/pkg/utils/logging"
)

func cmdServe(version string) *cli.Command {
	var addr string
	var baseURL string
	var contentCfg config.Content
	var entraCfg config.Entra
	var statementCfg config.Statement
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("STATEMENTS_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Externally reachable base URL of this application (e.g., https://statements.example.com)",
			Sources:     cli.EnvVars("STATEMENTS_BASE_URL"),
			Destination: &baseURL,
		},
	}
	flags = append(flags, contentCfg.Flags()...)
	flags = append(flags, entraCfg.Flags()...)
	flags = append(flags, statementCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			sentryCloser, err := sentryCfg.Configure(version)
			if err != nil {
				return goerr.Wrap(err, "failed to configure sentry")
			}
			defer sentryCloser()

			if err := statementCfg.Configure(); err != nil {
				return goerr.Wrap(err, "failed to load statement defaults")
			}

			client, err := contentCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to create content API client")
			}

			sessions := memory.New()
			authUC, err := entraCfg.Configure(sessions, baseURL)
			if err != nil {
				return goerr.Wrap(err, "failed to configure authentication")
			}

			if entraCfg.IsNoAuthMode() {
				logging.Default().Warn("Running in no-auth mode (development only)")
			} else {
				logging.Default().Info("Entra authentication enabled", "entra", entraCfg)
			}

			uc := usecase.New(client, usecase.WithAuth(authUC))

			httpHandler, err := httpctrl.New(uc,
				httpctrl.WithStatementDefaults(httpctrl.StatementDefaults{
					Organisation:     statementCfg.Defaults.Organisation,
					ContactEmail:     statementCfg.Defaults.ContactEmail,
					ConformanceLevel: statementCfg.Defaults.ConformanceLevel,
					WCAGVersion:      statementCfg.Defaults.WCAGVersion,
				}),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server",
					"addr", addr,
					"content", contentCfg,
					"statement", statementCfg,
					"sentry", sentryCfg,
				)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}

package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/a11y-lab/statements/pkg/domain/types"
)

// Statement holds the organisation-wide accessibility-statement defaults,
// loaded from a TOML file
type Statement struct {
	path string

	Defaults  StatementDefaults   `toml:"defaults"`
	Templates []StatementTemplate `toml:"template"`
}

// StatementDefaults are the fallback values used when a service has no
// statement setting of its own
type StatementDefaults struct {
	Organisation     string `toml:"organisation"`
	ContactEmail     string `toml:"contact_email"`
	ConformanceLevel string `toml:"conformance_level"`
	WCAGVersion      string `toml:"wcag_version"`
}

// StatementTemplate declares a statement template type the organisation uses
type StatementTemplate struct {
	Type             string `toml:"type"`
	ConformanceLevel string `toml:"conformance_level"`
	WCAGVersion      string `toml:"wcag_version"`
}

// Validate checks the template declaration
func (t *StatementTemplate) Validate() error {
	if t.Type == "" {
		return goerr.New("template type is required")
	}
	if err := types.ConformanceLevel(t.ConformanceLevel).Validate(); err != nil {
		return goerr.Wrap(err, "invalid template", goerr.V("type", t.Type))
	}
	if err := types.WCAGVersion(t.WCAGVersion).Validate(); err != nil {
		return goerr.Wrap(err, "invalid template", goerr.V("type", t.Type))
	}
	return nil
}

func (x *Statement) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "statement-config",
			Usage:       "Path to statement defaults TOML file",
			Category:    "Statements",
			Sources:     cli.EnvVars("STATEMENTS_STATEMENT_CONFIG"),
			Destination: &x.path,
		},
	}
}

func (x Statement) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
		slog.Int("templates", len(x.Templates)),
	)
}

// Validate checks the loaded configuration
func (x *Statement) Validate() error {
	if err := types.ConformanceLevel(x.Defaults.ConformanceLevel).Validate(); err != nil {
		return goerr.Wrap(err, "invalid statement defaults")
	}
	if err := types.WCAGVersion(x.Defaults.WCAGVersion).Validate(); err != nil {
		return goerr.Wrap(err, "invalid statement defaults")
	}

	seen := make(map[string]bool)
	for _, tmpl := range x.Templates {
		if err := tmpl.Validate(); err != nil {
			return err
		}
		if seen[tmpl.Type] {
			return goerr.New("duplicate template type", goerr.V("type", tmpl.Type))
		}
		seen[tmpl.Type] = true
	}

	return nil
}

// Configure loads and validates the statement defaults. When no file is
// configured the zero defaults are used.
func (x *Statement) Configure() error {
	if x.path == "" {
		return nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(x.path)
	if err != nil {
		return goerr.Wrap(err, "failed to read statement config", goerr.V("path", x.path))
	}

	if err := toml.Unmarshal(data, x); err != nil {
		return goerr.Wrap(err, "failed to parse statement config", goerr.V("path", x.path))
	}

	if err := x.Validate(); err != nil {
		return goerr.Wrap(err, "statement config validation failed", goerr.V("path", x.path))
	}

	return nil
}

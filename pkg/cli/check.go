package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/a11y-lab/statements/pkg/cli/config"
	"github.com/a11y-lab/statements/pkg/domain/interfaces"
)

// cmdCheck verifies connectivity to the content backend by listing every
// resource collection and printing a per-collection result
func cmdCheck() *cli.Command {
	var contentCfg config.Content

	return &cli.Command{
		Name:  "check",
		Usage: "Check connectivity to the content backend",
		Flags: contentCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := contentCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to create content API client")
			}

			fmt.Printf("Checking content backend at %s\n\n", contentCfg.BaseURL())

			checks := []struct {
				name string
				run  func(context.Context, interfaces.ContentClient) (int, error)
			}{
				{"services", func(ctx context.Context, c interfaces.ContentClient) (int, error) {
					records, err := c.ListServices(ctx)
					return len(records), err
				}},
				{"issues", func(ctx context.Context, c interfaces.ContentClient) (int, error) {
					records, err := c.ListIssues(ctx)
					return len(records), err
				}},
				{"issue-comments", func(ctx context.Context, c interfaces.ContentClient) (int, error) {
					records, err := c.ListIssueComments(ctx)
					return len(records), err
				}},
				{"service-urls", func(ctx context.Context, c interfaces.ContentClient) (int, error) {
					records, err := c.ListServiceURLs(ctx)
					return len(records), err
				}},
				{"statement-templates", func(ctx context.Context, c interfaces.ContentClient) (int, error) {
					records, err := c.ListStatementTemplates(ctx)
					return len(records), err
				}},
				{"statement-settings", func(ctx context.Context, c interfaces.ContentClient) (int, error) {
					records, err := c.ListStatementSettings(ctx)
					return len(records), err
				}},
				{"users", func(ctx context.Context, c interfaces.ContentClient) (int, error) {
					records, err := c.ListUsers(ctx)
					return len(records), err
				}},
			}

			ok := color.New(color.FgGreen, color.Bold)
			fail := color.New(color.FgRed, color.Bold)

			var failures int
			for _, check := range checks {
				count, err := check.run(ctx, client)
				if err != nil {
					fail.Printf("  FAIL")
					fmt.Printf("  %-22s %v\n", check.name, err)
					failures++
					continue
				}
				ok.Printf("  OK")
				fmt.Printf("    %-22s %d records\n", check.name, count)
			}

			fmt.Println()
			if failures > 0 {
				return goerr.New("content backend check failed", goerr.V("failures", failures))
			}
			fmt.Println("All checks passed")
			return nil
		},
	}
}

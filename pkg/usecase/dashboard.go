package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/a11y-lab/statements/pkg/domain/interfaces"
	"github.com/a11y-lab/statements/pkg/domain/model"
	"github.com/a11y-lab/statements/pkg/domain/types"
)

// recentLimit caps the recent-record lists on the dashboard
const recentLimit = 5

// DashboardUseCase aggregates counts for the dashboard view
type DashboardUseCase struct {
	client interfaces.ContentClient
}

// NewDashboardUseCase creates a DashboardUseCase
func NewDashboardUseCase(client interfaces.ContentClient) *DashboardUseCase {
	return &DashboardUseCase{client: client}
}

// Build fetches services and issues concurrently and derives the counts
func (uc *DashboardUseCase) Build(ctx context.Context) (*model.Dashboard, error) {
	var services []model.Service
	var issues []model.Issue

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		services, err = uc.client.ListServices(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		issues, err = uc.client.ListIssues(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to load dashboard data")
	}

	dashboard := &model.Dashboard{
		TotalServices:  len(services),
		TotalIssues:    len(issues),
		RecentServices: services[:min(len(services), recentLimit)],
		RecentIssues:   issues[:min(len(issues), recentLimit)],
	}
	for _, issue := range issues {
		switch issue.State {
		case types.IssueStateOpen:
			dashboard.OpenIssues++
		case types.IssueStateClosed:
			dashboard.ClosedIssues++
		}
	}

	return dashboard, nil
}

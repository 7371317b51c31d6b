package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/a11y-lab/statements/pkg/domain/model"
	"github.com/a11y-lab/statements/pkg/domain/types"
	"github.com/a11y-lab/statements/pkg/usecase"
)

func TestDashboardBuild(t *testing.T) {
	client := &fakeClient{
		services: []model.Service{
			{ID: 1, Name: "Tax portal", ServiceID: 42},
			{ID: 2, Name: "Benefits portal", ServiceID: 43},
		},
		issues: []model.Issue{
			{ID: 1, Title: "Missing alt text", State: types.IssueStateOpen},
			{ID: 2, Title: "Low contrast", State: types.IssueStateClosed},
			{ID: 3, Title: "No focus outline", State: types.IssueStateOpen},
		},
	}

	uc := usecase.NewDashboardUseCase(client)
	dashboard, err := uc.Build(context.Background())
	gt.NoError(t, err).Required()

	gt.Value(t, dashboard.TotalServices).Equal(2)
	gt.Value(t, dashboard.TotalIssues).Equal(3)
	gt.Value(t, dashboard.OpenIssues).Equal(2)
	gt.Value(t, dashboard.ClosedIssues).Equal(1)
	gt.Array(t, dashboard.RecentServices).Length(2)
	gt.Array(t, dashboard.RecentIssues).Length(3)
}

func TestDashboardBuildCapsRecentLists(t *testing.T) {
	client := &fakeClient{}
	for i := 0; i < 8; i++ {
		client.services = append(client.services, model.Service{
			ID:        int64(i + 1),
			Name:      fmt.Sprintf("Service %d", i+1),
			ServiceID: int64(100 + i),
		})
		client.issues = append(client.issues, model.Issue{
			ID:    int64(i + 1),
			Title: fmt.Sprintf("Issue %d", i+1),
			State: types.IssueStateOpen,
		})
	}

	uc := usecase.NewDashboardUseCase(client)
	dashboard, err := uc.Build(context.Background())
	gt.NoError(t, err).Required()

	gt.Value(t, dashboard.TotalServices).Equal(8)
	gt.Array(t, dashboard.RecentServices).Length(5)
	gt.Array(t, dashboard.RecentIssues).Length(5)
}

func TestDashboardBuildEmpty(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeClient{})
	dashboard, err := uc.Build(context.Background())
	gt.NoError(t, err).Required()

	gt.Value(t, dashboard.TotalServices).Equal(0)
	gt.Value(t, dashboard.OpenIssues).Equal(0)
	gt.Array(t, dashboard.RecentServices).Length(0)
}

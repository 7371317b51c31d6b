package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/a11y-lab/statements/pkg/domain/model"
	"github.com/a11y-lab/statements/pkg/domain/types"
)

func TestServiceValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		service := &model.Service{Name: "Tax portal", ServiceID: 42}
		gt.NoError(t, service.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		service := &model.Service{ServiceID: 42}
		gt.Error(t, service.Validate())
	})

	t.Run("missing service ID", func(t *testing.T) {
		service := &model.Service{Name: "Tax portal"}
		gt.Error(t, service.Validate())
	})
}

func TestIssueValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		issue := &model.Issue{Title: "Missing alt text", State: types.IssueStateOpen}
		gt.NoError(t, issue.Validate())
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		issue := &model.Issue{Title: "Missing alt text", State: types.IssueStateClosed}
		gt.NoError(t, issue.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		issue := &model.Issue{State: types.IssueStateOpen}
		gt.Error(t, issue.Validate())
	})

	t.Run("invalid state", func(t *testing.T) {
		issue := &model.Issue{Title: "Missing alt text", State: "pending"}
		gt.Error(t, issue.Validate())
	})

	t.Run("invalid source", func(t *testing.T) {
		issue := &model.Issue{Title: "Missing alt text", State: types.IssueStateOpen, Source: "rumor"}
		gt.Error(t, issue.Validate())
	})
}

func TestUserAdmin(t *testing.T) {
	admin := true
	notAdmin := false

	cases := []struct {
		name string
		user *model.User
		want bool
	}{
		{"flag set", &model.User{IsAdministrator: &admin}, true},
		{"flag false", &model.User{IsAdministrator: &notAdmin}, false},
		{"flag absent", &model.User{}, false},
		{"nil user", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, tc.user.Admin()).Equal(tc.want)
		})
	}
}

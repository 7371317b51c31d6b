package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/a11y-lab/statements/pkg/domain/interfaces"
	"github.com/a11y-lab/statements/pkg/domain/model"
	"github.com/a11y-lab/statements/pkg/usecase"
)

// fakeClient backs the use case tests with an in-memory user table. Methods
// not overridden here panic through the embedded nil interface, which is fine:
// a test reaching them is a test with the wrong expectations.
type fakeClient struct {
	interfaces.ContentClient

	users   []model.User
	creates int
	updates int

	services []model.Service
	issues   []model.Issue
}

func (c *fakeClient) FindUserByEmail(ctx context.Context, email string) (*model.User, int64, error) {
	for i := range c.users {
		if strings.EqualFold(c.users[i].Email, email) {
			return &c.users[i], c.users[i].ID, nil
		}
	}
	return nil, 0, nil
}

func (c *fakeClient) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	c.creates++
	created := *user
	created.ID = int64(len(c.users) + 1)
	c.users = append(c.users, created)
	return &created, nil
}

func (c *fakeClient) UpdateUser(ctx context.Context, id int64, user *model.User) (*model.User, error) {
	c.updates++
	for i := range c.users {
		if c.users[i].ID == id {
			updated := *user
			updated.ID = id
			c.users[i] = updated
			return &updated, nil
		}
	}
	return user, nil
}

func (c *fakeClient) ListServices(ctx context.Context) ([]model.Service, error) {
	return c.services, nil
}

func (c *fakeClient) ListIssues(ctx context.Context) ([]model.Issue, error) {
	return c.issues, nil
}

func TestEnsureUserCreatesOnFirstSignIn(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	uc := usecase.NewUserUseCase(client)

	user, err := uc.EnsureUser(ctx, "andy.jones@example.com", "Andy", "Jones", "oid-123")
	gt.NoError(t, err).Required()

	gt.Value(t, client.creates).Equal(1)
	gt.Value(t, client.updates).Equal(0)
	gt.Value(t, user.Username).Equal("andy.jones@example.com")
	gt.Value(t, user.Email).Equal("andy.jones@example.com")
	gt.Value(t, user.FirstName).Equal("Andy")
	gt.Value(t, user.LastName).Equal("Jones")
	gt.Value(t, user.EntraID).Equal("oid-123")
	gt.Value(t, user.Provider).Equal(model.UserProvider)
}

func TestEnsureUserIsIdempotent(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	uc := usecase.NewUserUseCase(client)

	_, err := uc.EnsureUser(ctx, "andy.jones@example.com", "Andy", "Jones", "oid-123")
	gt.NoError(t, err).Required()

	// A second sign-in with identical claims must not write anything
	_, err = uc.EnsureUser(ctx, "andy.jones@example.com", "Andy", "Jones", "oid-123")
	gt.NoError(t, err).Required()

	gt.Value(t, client.creates).Equal(1)
	gt.Value(t, client.updates).Equal(0)
}

func TestEnsureUserUpdatesChangedFields(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{
		users: []model.User{{
			ID:        3,
			Email:     "andy.jones@example.com",
			Username:  "andy.jones@example.com",
			FirstName: "Andy",
			LastName:  "Smith",
		}},
	}
	uc := usecase.NewUserUseCase(client)

	user, err := uc.EnsureUser(ctx, "andy.jones@example.com", "Andy", "Jones", "oid-123")
	gt.NoError(t, err).Required()

	gt.Value(t, client.creates).Equal(0)
	gt.Value(t, client.updates).Equal(1)
	gt.Value(t, user.FirstName).Equal("Andy")
	gt.Value(t, user.LastName).Equal("Jones")
	gt.Value(t, user.EntraID).Equal("oid-123")
}

func TestEnsureUserKeepsExistingFieldsWhenClaimEmpty(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{
		users: []model.User{{
			ID:        3,
			Email:     "andy.jones@example.com",
			FirstName: "Andrew",
			LastName:  "Jones",
			EntraID:   "oid-123",
		}},
	}
	uc := usecase.NewUserUseCase(client)

	// Empty claims never blank out fields the backend already has
	user, err := uc.EnsureUser(ctx, "andy.jones@example.com", "", "", "oid-123")
	gt.NoError(t, err).Required()

	gt.Value(t, client.updates).Equal(0)
	gt.Value(t, user.FirstName).Equal("Andrew")
	gt.Value(t, user.LastName).Equal("Jones")
}

func TestEnsureUserMatchesEmailCaseInsensitively(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{
		users: []model.User{{
			ID:        3,
			Email:     "Andy.Jones@Example.com",
			FirstName: "Andy",
			LastName:  "Jones",
			EntraID:   "oid-123",
		}},
	}
	uc := usecase.NewUserUseCase(client)

	_, err := uc.EnsureUser(ctx, "ANDY.JONES@EXAMPLE.COM", "Andy", "Jones", "oid-123")
	gt.NoError(t, err).Required()

	gt.Value(t, client.creates).Equal(0)
	gt.Value(t, client.updates).Equal(0)
}

func TestGetByEmail(t *testing.T) {
	ctx := context.Background()
	admin := true
	client := &fakeClient{
		users: []model.User{{
			ID:              5,
			Email:           "admin@example.com",
			IsAdministrator: &admin,
		}},
	}
	uc := usecase.NewUserUseCase(client)

	user, err := uc.GetByEmail(ctx, "admin@example.com")
	gt.NoError(t, err).Required()
	gt.Bool(t, user.Admin()).True()

	missing, err := uc.GetByEmail(ctx, "nobody@example.com")
	gt.NoError(t, err)
	gt.Bool(t, missing == nil).True()
}

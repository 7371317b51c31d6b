package strapi

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/a11y-lab/statements/pkg/domain/model"
	"github.com/a11y-lab/statements/pkg/utils/logging"
)

// The users-permissions plugin does not follow the envelope conventions of
// the other endpoints: list responses are bare arrays of flat objects, and
// create/update expect flat bodies with plugin-specific fields. Treat this as
// a backend quirk, not a generalizable contract.

// defaultRoleID is the "Authenticated" role in the users-permissions plugin
const defaultRoleID = 1

type userCreateRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	EntraID   string `json:"entraId"`
	Provider  string `json:"provider"`
	Confirmed bool   `json:"confirmed"`
	Blocked   bool   `json:"blocked"`
	Role      int    `json:"role"`
}

type userUpdateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	EntraID   string `json:"entraId"`
	Email     string `json:"email"`
}

// ListUsers fetches all user records
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	return list[model.User](ctx, c, kindUsers)
}

// GetUser fetches one user record by its numeric id
func (c *Client) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return get[model.User](ctx, c, kindUsers, id)
}

// FindUserByEmail resolves a user record and its numeric id by email. It
// first asks the backend for an exact match; because the backend's filter has
// proven unreliable it falls back to scanning the full user list for a
// case-insensitive match. A miss returns (nil, 0, nil), not an error.
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*model.User, int64, error) {
	if user, id, ok := c.findUserExact(ctx, email); ok {
		return user, id, nil
	}

	logging.From(ctx).Debug("exact email filter found nothing, scanning full user list",
		"email", email)

	users, err := c.ListUsers(ctx)
	if err != nil {
		return nil, 0, goerr.Wrap(err, "failed to list users for email scan", goerr.V("email", email))
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], users[i].ID, nil
		}
	}

	return nil, 0, nil
}

// findUserExact queries the backend's exact-match email filter. Any failure
// along the way is swallowed so the caller proceeds to the full-list scan.
func (c *Client) findUserExact(ctx context.Context, email string) (*model.User, int64, bool) {
	query := url.Values{
		"filters[email][$eq]": []string{email},
		"populate":            []string{"*"},
	}

	status, body, err := c.do(ctx, http.MethodGet, "/api/"+kindUsers, query, nil)
	observeRequest(kindUsers, http.MethodGet, status)
	if err != nil || !success(status) {
		return nil, 0, false
	}

	// Plain array first (users-permissions format), wrapped format second
	var users []model.User
	if jsonErr := json.Unmarshal(body, &users); jsonErr == nil {
		if len(users) == 0 {
			return nil, 0, false
		}
		return &users[0], users[0].ID, true
	}

	var outer struct {
		Data []wireEntry `json:"data"`
	}
	if jsonErr := json.Unmarshal(body, &outer); jsonErr != nil || len(outer.Data) == 0 {
		return nil, 0, false
	}

	var user model.User
	if jsonErr := json.Unmarshal(outer.Data[0].Attributes, &user); jsonErr != nil {
		return nil, 0, false
	}
	id := user.ID
	if id == 0 {
		// The numeric id may live on the wrapper rather than the record
		id = outer.Data[0].ID
	}
	return &user, id, true
}

// CreateUser registers a new user through the users-permissions plugin. The
// plugin requires a password even for SSO-managed accounts, so a random one
// is generated and discarded.
func (c *Client) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	password, err := randomPassword()
	if err != nil {
		return nil, err
	}

	reqBody := userCreateRequest{
		Username:  user.Username,
		Email:     user.Email,
		Password:  password,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		EntraID:   user.EntraID,
		Provider:  "local",
		Confirmed: true,
		Blocked:   false,
		Role:      defaultRoleID,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode user create request")
	}

	status, respBody, err := c.do(ctx, http.MethodPost, "/api/"+kindUsers, nil, body)
	observeRequest(kindUsers, http.MethodPost, status)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, goerr.Wrap(ErrRequestFailed, "user create request failed",
			goerr.V("email", user.Email),
			goerr.V(StatusKey, status),
			goerr.V(BodyKey, truncate(respBody)),
		)
	}

	var created model.User
	if err := decodeRecord(respBody, &created); err != nil {
		logging.From(ctx).Warn("undecodable user create response, returning submitted record",
			"email", user.Email, "error", err)
		return user, nil
	}
	return &created, nil
}

// UpdateUser puts changed profile fields to an existing user record
func (c *Client) UpdateUser(ctx context.Context, id int64, user *model.User) (*model.User, error) {
	reqBody := userUpdateRequest{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		EntraID:   user.EntraID,
		Email:     user.Email,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode user update request")
	}

	status, respBody, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), nil, body)
	observeRequest(kindUsers, http.MethodPut, status)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, goerr.Wrap(ErrRequestFailed, "user update request failed",
			goerr.V(RecordKey, id),
			goerr.V(StatusKey, status),
			goerr.V(BodyKey, truncate(respBody)),
		)
	}

	var updated model.User
	if err := decodeRecord(respBody, &updated); err != nil {
		logging.From(ctx).Warn("undecodable user update response, returning submitted record",
			"record_id", id, "error", err)
		return user, nil
	}
	return &updated, nil
}

// DeleteUser removes a user record
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.remove(ctx, kindUsers, id)
}

func randomPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", goerr.Wrap(err, "failed to generate random password")
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

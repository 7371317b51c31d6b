package strapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/a11y-lab/statements/pkg/domain/model"
	"github.com/a11y-lab/statements/pkg/utils/logging"
	"github.com/a11y-lab/statements/pkg/utils/safe"
)

// Resource kinds as they appear in backend paths
const (
	kindServices           = "services"
	kindIssues             = "issues"
	kindIssueComments      = "issue-comments"
	kindServiceURLs        = "service-urls"
	kindStatementTemplates = "statement-templates"
	kindStatementSettings  = "statement-settings"
	kindUsers              = "users"
)

// Client talks to the content backend over HTTPS. All calls are one-shot
// request/response with no retry; a shared connection pool is reused across
// requests.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// Option is a functional option for Client
type Option func(*Client)

// WithAPIToken sets the bearer token attached to every request
func WithAPIToken(token string) Option {
	return func(c *Client) {
		c.apiToken = token
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a content API client for the given base URL
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.New("content API base URL is required")
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// do issues a single HTTP call and returns the status code and body. Only
// transport-level failures produce an error here; status handling is left to
// the caller since get-by-id treats non-success as "not found".
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) (int, []byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "failed to create request", goerr.V("endpoint", endpoint))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, goerr.Wrap(ErrRequestFailed, "transport error",
			goerr.V("endpoint", endpoint),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(ctx, resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, goerr.Wrap(err, "failed to read response body", goerr.V("endpoint", endpoint))
	}

	logging.From(ctx).Debug("content API call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
	)

	return resp.StatusCode, respBody, nil
}

func success(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// statusErr picks the sentinel for a non-success status. Only a 404 means
// the record does not exist; anything else is a failed request.
func statusErr(status int) error {
	if status == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrRequestFailed
}

var populateAll = url.Values{"populate": []string{"*"}}

// list fetches all records of a kind. An empty result is not an error.
func list[T any](ctx context.Context, c *Client, kind string) ([]T, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/api/"+kind, populateAll, nil)
	observeRequest(kind, http.MethodGet, status)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, goerr.Wrap(ErrRequestFailed, "list request failed",
			goerr.V(KindKey, kind),
			goerr.V(StatusKey, status),
			goerr.V(BodyKey, truncate(body)),
		)
	}

	return decodeRecordList[T](body)
}

// get fetches one record by id. A 404 means "not found"; any other
// non-success status is a request failure.
func get[T any](ctx context.Context, c *Client, kind string, id int64) (*T, error) {
	path := fmt.Sprintf("/api/%s/%d", kind, id)
	status, body, err := c.do(ctx, http.MethodGet, path, populateAll, nil)
	observeRequest(kind, http.MethodGet, status)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, goerr.Wrap(statusErr(status), "get request returned non-success status",
			goerr.V(KindKey, kind),
			goerr.V(RecordKey, id),
			goerr.V(StatusKey, status),
		)
	}

	var record T
	if err := decodeRecord(body, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// create posts a new record. When the response envelope cannot be decoded the
// submitted record is returned unchanged rather than failing the operation.
func create[T any](ctx context.Context, c *Client, kind string, record *T) (*T, error) {
	body, err := encodeEnvelope(record)
	if err != nil {
		return nil, err
	}

	status, respBody, err := c.do(ctx, http.MethodPost, "/api/"+kind, nil, body)
	observeRequest(kind, http.MethodPost, status)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, goerr.Wrap(ErrRequestFailed, "create request failed",
			goerr.V(KindKey, kind),
			goerr.V(StatusKey, status),
			goerr.V(BodyKey, truncate(respBody)),
		)
	}

	var created T
	if err := decodeRecord(respBody, &created); err != nil {
		logging.From(ctx).Warn("undecodable create response, returning submitted record",
			"kind", kind, "error", err)
		return record, nil
	}
	return &created, nil
}

// update puts changed fields to an existing record. Decode failures fall back
// to the submitted record like create.
func update[T any](ctx context.Context, c *Client, kind string, id int64, record *T) (*T, error) {
	body, err := encodeEnvelope(record)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/api/%s/%d", kind, id)
	status, respBody, err := c.do(ctx, http.MethodPut, path, nil, body)
	observeRequest(kind, http.MethodPut, status)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, goerr.Wrap(statusErr(status), "update request failed",
			goerr.V(KindKey, kind),
			goerr.V(RecordKey, id),
			goerr.V(StatusKey, status),
			goerr.V(BodyKey, truncate(respBody)),
		)
	}

	var updated T
	if err := decodeRecord(respBody, &updated); err != nil {
		logging.From(ctx).Warn("undecodable update response, returning submitted record",
			"kind", kind, "record_id", id, "error", err)
		return record, nil
	}
	return &updated, nil
}

// remove deletes a record by id
func (c *Client) remove(ctx context.Context, kind string, id int64) error {
	path := fmt.Sprintf("/api/%s/%d", kind, id)
	status, body, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	observeRequest(kind, http.MethodDelete, status)
	if err != nil {
		return err
	}
	if !success(status) {
		return goerr.Wrap(statusErr(status), "delete request failed",
			goerr.V(KindKey, kind),
			goerr.V(RecordKey, id),
			goerr.V(StatusKey, status),
			goerr.V(BodyKey, truncate(body)),
		)
	}
	return nil
}

// Services

func (c *Client) ListServices(ctx context.Context) ([]model.Service, error) {
	return list[model.Service](ctx, c, kindServices)
}

func (c *Client) GetService(ctx context.Context, id int64) (*model.Service, error) {
	return get[model.Service](ctx, c, kindServices, id)
}

func (c *Client) CreateService(ctx context.Context, service *model.Service) (*model.Service, error) {
	return create(ctx, c, kindServices, service)
}

func (c *Client) UpdateService(ctx context.Context, id int64, service *model.Service) (*model.Service, error) {
	return update(ctx, c, kindServices, id, service)
}

func (c *Client) DeleteService(ctx context.Context, id int64) error {
	return c.remove(ctx, kindServices, id)
}

// Issues

func (c *Client) ListIssues(ctx context.Context) ([]model.Issue, error) {
	return list[model.Issue](ctx, c, kindIssues)
}

func (c *Client) GetIssue(ctx context.Context, id int64) (*model.Issue, error) {
	return get[model.Issue](ctx, c, kindIssues, id)
}

func (c *Client) CreateIssue(ctx context.Context, issue *model.Issue) (*model.Issue, error) {
	return create(ctx, c, kindIssues, issue)
}

func (c *Client) UpdateIssue(ctx context.Context, id int64, issue *model.Issue) (*model.Issue, error) {
	return update(ctx, c, kindIssues, id, issue)
}

func (c *Client) DeleteIssue(ctx context.Context, id int64) error {
	return c.remove(ctx, kindIssues, id)
}

// Issue comments

func (c *Client) ListIssueComments(ctx context.Context) ([]model.IssueComment, error) {
	return list[model.IssueComment](ctx, c, kindIssueComments)
}

func (c *Client) GetIssueComment(ctx context.Context, id int64) (*model.IssueComment, error) {
	return get[model.IssueComment](ctx, c, kindIssueComments, id)
}

func (c *Client) CreateIssueComment(ctx context.Context, comment *model.IssueComment) (*model.IssueComment, error) {
	return create(ctx, c, kindIssueComments, comment)
}

func (c *Client) UpdateIssueComment(ctx context.Context, id int64, comment *model.IssueComment) (*model.IssueComment, error) {
	return update(ctx, c, kindIssueComments, id, comment)
}

func (c *Client) DeleteIssueComment(ctx context.Context, id int64) error {
	return c.remove(ctx, kindIssueComments, id)
}

// Service URLs

func (c *Client) ListServiceURLs(ctx context.Context) ([]model.ServiceURL, error) {
	return list[model.ServiceURL](ctx, c, kindServiceURLs)
}

func (c *Client) GetServiceURL(ctx context.Context, id int64) (*model.ServiceURL, error) {
	return get[model.ServiceURL](ctx, c, kindServiceURLs, id)
}

func (c *Client) CreateServiceURL(ctx context.Context, serviceURL *model.ServiceURL) (*model.ServiceURL, error) {
	return create(ctx, c, kindServiceURLs, serviceURL)
}

func (c *Client) UpdateServiceURL(ctx context.Context, id int64, serviceURL *model.ServiceURL) (*model.ServiceURL, error) {
	return update(ctx, c, kindServiceURLs, id, serviceURL)
}

func (c *Client) DeleteServiceURL(ctx context.Context, id int64) error {
	return c.remove(ctx, kindServiceURLs, id)
}

// Statement templates

func (c *Client) ListStatementTemplates(ctx context.Context) ([]model.StatementTemplate, error) {
	return list[model.StatementTemplate](ctx, c, kindStatementTemplates)
}

func (c *Client) GetStatementTemplate(ctx context.Context, id int64) (*model.StatementTemplate, error) {
	return get[model.StatementTemplate](ctx, c, kindStatementTemplates, id)
}

func (c *Client) CreateStatementTemplate(ctx context.Context, template *model.StatementTemplate) (*model.StatementTemplate, error) {
	return create(ctx, c, kindStatementTemplates, template)
}

func (c *Client) UpdateStatementTemplate(ctx context.Context, id int64, template *model.StatementTemplate) (*model.StatementTemplate, error) {
	return update(ctx, c, kindStatementTemplates, id, template)
}

func (c *Client) DeleteStatementTemplate(ctx context.Context, id int64) error {
	return c.remove(ctx, kindStatementTemplates, id)
}

// Statement settings

func (c *Client) ListStatementSettings(ctx context.Context) ([]model.StatementSetting, error) {
	return list[model.StatementSetting](ctx, c, kindStatementSettings)
}

func (c *Client) GetStatementSetting(ctx context.Context, id int64) (*model.StatementSetting, error) {
	return get[model.StatementSetting](ctx, c, kindStatementSettings, id)
}

func (c *Client) CreateStatementSetting(ctx context.Context, setting *model.StatementSetting) (*model.StatementSetting, error) {
	return create(ctx, c, kindStatementSettings, setting)
}

func (c *Client) UpdateStatementSetting(ctx context.Context, id int64, setting *model.StatementSetting) (*model.StatementSetting, error) {
	return update(ctx, c, kindStatementSettings, id, setting)
}

func (c *Client) DeleteStatementSetting(ctx context.Context, id int64) error {
	return c.remove(ctx, kindStatementSettings, id)
}

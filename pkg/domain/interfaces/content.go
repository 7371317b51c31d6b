package interfaces

import (
	"context"

	"github.com/a11y-lab/statements/pkg/domain/model"
)

// ContentClient is the full surface of the content backend. The concrete
// implementation lives in pkg/service/strapi; use cases and handlers depend
// only on this interface.
type ContentClient interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	GetService(ctx context.Context, id int64) (*model.Service, error)
	CreateService(ctx context.Context, service *model.Service) (*model.Service, error)
	UpdateService(ctx context.Context, id int64, service *model.Service) (*model.Service, error)
	DeleteService(ctx context.Context, id int64) error

	ListIssues(ctx context.Context) ([]model.Issue, error)
	GetIssue(ctx context.Context, id int64) (*model.Issue, error)
	CreateIssue(ctx context.Context, issue *model.Issue) (*model.Issue, error)
	UpdateIssue(ctx context.Context, id int64, issue *model.Issue) (*model.Issue, error)
	DeleteIssue(ctx context.Context, id int64) error

	ListIssueComments(ctx context.Context) ([]model.IssueComment, error)
	GetIssueComment(ctx context.Context, id int64) (*model.IssueComment, error)
	CreateIssueComment(ctx context.Context, comment *model.IssueComment) (*model.IssueComment, error)
	UpdateIssueComment(ctx context.Context, id int64, comment *model.IssueComment) (*model.IssueComment, error)
	DeleteIssueComment(ctx context.Context, id int64) error

	ListServiceURLs(ctx context.Context) ([]model.ServiceURL, error)
	GetServiceURL(ctx context.Context, id int64) (*model.ServiceURL, error)
	CreateServiceURL(ctx context.Context, serviceURL *model.ServiceURL) (*model.ServiceURL, error)
	UpdateServiceURL(ctx context.Context, id int64, serviceURL *model.ServiceURL) (*model.ServiceURL, error)
	DeleteServiceURL(ctx context.Context, id int64) error

	ListStatementTemplates(ctx context.Context) ([]model.StatementTemplate, error)
	GetStatementTemplate(ctx context.Context, id int64) (*model.StatementTemplate, error)
	CreateStatementTemplate(ctx context.Context, template *model.StatementTemplate) (*model.StatementTemplate, error)
	UpdateStatementTemplate(ctx context.Context, id int64, template *model.StatementTemplate) (*model.StatementTemplate, error)
	DeleteStatementTemplate(ctx context.Context, id int64) error

	ListStatementSettings(ctx context.Context) ([]model.StatementSetting, error)
	GetStatementSetting(ctx context.Context, id int64) (*model.StatementSetting, error)
	CreateStatementSetting(ctx context.Context, setting *model.StatementSetting) (*model.StatementSetting, error)
	UpdateStatementSetting(ctx context.Context, id int64, setting *model.StatementSetting) (*model.StatementSetting, error)
	DeleteStatementSetting(ctx context.Context, id int64) error

	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	FindUserByEmail(ctx context.Context, email string) (*model.User, int64, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

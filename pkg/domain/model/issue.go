package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/a11y-lab/statements/pkg/domain/types"
)

// Issue is an accessibility issue recorded against a service
type Issue struct {
	ID                 int64             `json:"id,omitempty"`
	Title              string            `json:"title"`
	Description        string            `json:"description,omitempty"`
	State              types.IssueState  `json:"state"`
	Source             types.IssueSource `json:"source,omitempty"`
	DateIdentified     *time.Time        `json:"dateIdentified,omitempty"`
	PlanToFix          *bool             `json:"planToFix,omitempty"`
	PlanToFixDate      *time.Time        `json:"planToFixDate,omitempty"`
	ReasonForNotFixing string            `json:"reasonForNotFixing,omitempty"`
	Origin             types.IssueOrigin `json:"howAdded,omitempty"`
	CreatedAt          time.Time         `json:"createdAt,omitempty"`
	UpdatedAt          time.Time         `json:"updatedAt,omitempty"`
	PublishedAt        *time.Time        `json:"publishedAt,omitempty"`

	ServiceID    *int64         `json:"serviceId,omitempty"`
	AssignedToID *int64         `json:"assignedToId,omitempty"`
	Comments     []IssueComment `json:"issueComments,omitempty"`
}

// Validate checks required fields before the record is submitted to the backend
func (i *Issue) Validate() error {
	if i.Title == "" {
		return goerr.New("issue title is required")
	}
	if err := i.State.Validate(); err != nil {
		return goerr.Wrap(err, "invalid issue state", goerr.V("title", i.Title))
	}
	if err := i.Source.Validate(); err != nil {
		return goerr.Wrap(err, "invalid issue source", goerr.V("title", i.Title))
	}
	if err := i.Origin.Validate(); err != nil {
		return goerr.Wrap(err, "invalid issue origin", goerr.V("title", i.Title))
	}
	return nil
}

// IssueComment is a comment attached to an issue
type IssueComment struct {
	ID          int64      `json:"id,omitempty"`
	Content     string     `json:"content,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	IssueID     *int64     `json:"issueId,omitempty"`
	AuthorID    *int64     `json:"authorId,omitempty"`
}

package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Service is a government service that carries an accessibility statement.
// The record is owned by the content backend; this application only holds a
// transient copy per request.
type Service struct {
	ID          int64      `json:"id,omitempty"`
	ServiceID   int64      `json:"serviceId"`
	Name        string     `json:"name"`
	FipsID      string     `json:"fipsId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`

	URLs     []ServiceURL       `json:"serviceUrls,omitempty"`
	Issues   []Issue            `json:"issues,omitempty"`
	Settings []StatementSetting `json:"statementSettings,omitempty"`
}

// Validate checks required fields before the record is submitted to the backend
func (s *Service) Validate() error {
	if s.Name == "" {
		return goerr.New("service name is required")
	}
	if s.ServiceID == 0 {
		return goerr.New("service ID is required", goerr.V("name", s.Name))
	}
	return nil
}

// ServiceURL is a URL covered by a service's accessibility statement
type ServiceURL struct {
	ID          int64      `json:"id,omitempty"`
	URL         string     `json:"url,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	ServiceID   *int64     `json:"serviceId,omitempty"`
}

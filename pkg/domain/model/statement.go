package model

import (
	"time"

	"github.com/a11y-lab/statements/pkg/domain/types"
)

// StatementTemplate is a reusable accessibility-statement template
type StatementTemplate struct {
	ID               int64                  `json:"id,omitempty"`
	Type             string                 `json:"type,omitempty"`
	Content          string                 `json:"content,omitempty"`
	ConformanceLevel types.ConformanceLevel `json:"conformanceLevel,omitempty"`
	WCAGVersion      types.WCAGVersion      `json:"wcagVersion,omitempty"`
	CreatedAt        time.Time              `json:"createdAt,omitempty"`
	UpdatedAt        time.Time              `json:"updatedAt,omitempty"`
	PublishedAt      *time.Time             `json:"publishedAt,omitempty"`
}

// StatementSetting is a per-service key/value statement setting
type StatementSetting struct {
	ID          int64      `json:"id,omitempty"`
	Setting     string     `json:"setting,omitempty"`
	Value       string     `json:"value,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	ServiceID   *int64     `json:"serviceId,omitempty"`
}

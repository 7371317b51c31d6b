package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// IssueState represents the open/closed state of an accessibility issue
type IssueState string

const (
	IssueStateOpen   IssueState = "open"
	IssueStateClosed IssueState = "closed"
)

// Validate checks if the IssueState is valid
func (s IssueState) Validate() error {
	switch s {
	case IssueStateOpen, IssueStateClosed:
		return nil
	}
	return goerr.New("invalid issue state", goerr.V("state", s))
}

// String returns the string representation of IssueState
func (s IssueState) String() string {
	return string(s)
}

// IssueSource represents how an issue was identified
type IssueSource string

const (
	IssueSourceManualTesting    IssueSource = "manual-testing"
	IssueSourceAutomatedTesting IssueSource = "automated-testing"
	IssueSourceAudit            IssueSource = "audit"
	IssueSourceComplaint        IssueSource = "complaint"
	IssueSourceFeedback         IssueSource = "feedback"
)

// Validate checks if the IssueSource is valid. An empty source is allowed
// since the backend treats the field as optional.
func (s IssueSource) Validate() error {
	switch s {
	case "", IssueSourceManualTesting, IssueSourceAutomatedTesting,
		IssueSourceAudit, IssueSourceComplaint, IssueSourceFeedback:
		return nil
	}
	return goerr.New("invalid issue source", goerr.V("source", s))
}

// String returns the string representation of IssueSource
func (s IssueSource) String() string {
	return string(s)
}

// IssueOrigin represents the channel through which an issue record entered the system
type IssueOrigin string

const (
	IssueOriginAPI    IssueOrigin = "api"
	IssueOriginImport IssueOrigin = "import"
	IssueOriginManual IssueOrigin = "manual"
)

// Validate checks if the IssueOrigin is valid. Empty is allowed.
func (o IssueOrigin) Validate() error {
	switch o {
	case "", IssueOriginAPI, IssueOriginImport, IssueOriginManual:
		return nil
	}
	return goerr.New("invalid issue origin", goerr.V("origin", o))
}

// String returns the string representation of IssueOrigin
func (o IssueOrigin) String() string {
	return string(o)
}

package model

// Dashboard aggregates counts and recent records for the dashboard view
type Dashboard struct {
	TotalServices  int
	TotalIssues    int
	OpenIssues     int
	ClosedIssues   int
	RecentServices []Service
	RecentIssues   []Issue
}

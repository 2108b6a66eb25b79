package report

import "github.com/temirov/automation-reporter/internal/enhancement"

// WorkspaceStatus describes the overall state reported for the workspace.
type WorkspaceStatus string

// Supported workspace statuses.
const (
	WorkspaceStatusEnhanced WorkspaceStatus = WorkspaceStatus("enhanced")
)

// Report summarizes the workspace automation state for one generation call.
type Report struct {
	WorkspaceStatus    WorkspaceStatus       `json:"workspace_status" yaml:"workspace_status"`
	TotalRepositories  int                   `json:"total_repositories" yaml:"total_repositories"`
	AutomationFeatures []string              `json:"automation_features" yaml:"automation_features"`
	RecentEnhancements enhancement.RunResult `json:"recent_enhancements" yaml:"recent_enhancements"`
	NextImprovements   []string              `json:"next_improvements" yaml:"next_improvements"`
}

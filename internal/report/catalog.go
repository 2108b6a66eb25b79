package report

import "strings"

const (
	workspaceStatusConfigurationKeyConstant    = "workspace_status"
	automationFeaturesConfigurationKeyConstant = "automation_features"
	nextImprovementsConfigurationKeyConstant   = "next_improvements"
	configurationKeySeparatorConstant          = "."
)

// CatalogConfiguration holds the static report content merged with live pipeline results.
type CatalogConfiguration struct {
	WorkspaceStatus    string   `mapstructure:"workspace_status"`
	AutomationFeatures []string `mapstructure:"automation_features"`
	NextImprovements   []string `mapstructure:"next_improvements"`
}

// DefaultAutomationFeatures lists the capabilities reported as available.
func DefaultAutomationFeatures() []string {
	return []string{
		"Multi-account GitHub synchronization",
		"Intelligent commit message generation",
		"Automated CI/CD pipeline creation",
		"Security and compliance checking",
		"Performance monitoring",
		"Error recovery mechanisms",
	}
}

// DefaultNextImprovements lists the planned improvements.
func DefaultNextImprovements() []string {
	return []string{
		"Machine learning-based change prediction",
		"Automated code review integration",
		"Advanced conflict resolution",
		"Workspace health scoring",
		"Automated documentation generation",
	}
}

// DefaultCatalogConfiguration returns the default report catalog.
func DefaultCatalogConfiguration() CatalogConfiguration {
	return CatalogConfiguration{
		WorkspaceStatus:    string(WorkspaceStatusEnhanced),
		AutomationFeatures: DefaultAutomationFeatures(),
		NextImprovements:   DefaultNextImprovements(),
	}
}

// DefaultCatalogConfigurationValues returns catalog defaults keyed beneath the provided prefix.
func DefaultCatalogConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCatalogConfiguration()
	return map[string]any{
		joinConfigurationKey(prefix, workspaceStatusConfigurationKeyConstant):    defaults.WorkspaceStatus,
		joinConfigurationKey(prefix, automationFeaturesConfigurationKeyConstant): defaults.AutomationFeatures,
		joinConfigurationKey(prefix, nextImprovementsConfigurationKeyConstant):   defaults.NextImprovements,
	}
}

// Sanitize trims entries, drops blanks and defaults an empty workspace status.
func (configuration CatalogConfiguration) Sanitize() CatalogConfiguration {
	sanitized := CatalogConfiguration{
		WorkspaceStatus:    strings.TrimSpace(configuration.WorkspaceStatus),
		AutomationFeatures: sanitizeEntries(configuration.AutomationFeatures),
		NextImprovements:   sanitizeEntries(configuration.NextImprovements),
	}
	if len(sanitized.WorkspaceStatus) == 0 {
		sanitized.WorkspaceStatus = string(WorkspaceStatusEnhanced)
	}
	return sanitized
}

func sanitizeEntries(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for _, entry := range raw {
		trimmed := strings.TrimSpace(entry)
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}

func joinConfigurationKey(prefix string, key string) string {
	trimmedPrefix := strings.TrimSpace(prefix)
	if len(trimmedPrefix) == 0 {
		return key
	}
	return trimmedPrefix + configurationKeySeparatorConstant + key
}

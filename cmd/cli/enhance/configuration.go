package enhance

import "github.com/temirov/automation-reporter/internal/enhancement"

// CommandConfiguration captures persisted settings for the enhancement steps.
// An empty step list selects the built-in catalog.
type CommandConfiguration struct {
	Steps []enhancement.StepDefinition `mapstructure:"steps"`
}

// Sanitize returns a copy whose step definitions no longer share storage with the decoded configuration.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := CommandConfiguration{Steps: make([]enhancement.StepDefinition, 0, len(configuration.Steps))}
	for _, definition := range configuration.Steps {
		definition.Features = append([]string{}, definition.Features...)
		sanitized.Steps = append(sanitized.Steps, definition)
	}
	return sanitized
}

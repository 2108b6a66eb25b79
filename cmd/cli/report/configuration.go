package report

import (
	"strings"

	"github.com/temirov/automation-reporter/internal/report"
)

const (
	formatConfigurationKeyConstant    = "format"
	configurationKeySeparatorConstant = "."
)

// CommandConfiguration captures persisted settings for the report command.
type CommandConfiguration struct {
	Format  report.Format               `mapstructure:"format"`
	Catalog report.CatalogConfiguration `mapstructure:",squash"`
}

// DefaultCommandConfiguration returns baseline settings for the report command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Format:  report.FormatMarkdown,
		Catalog: report.DefaultCatalogConfiguration(),
	}
}

// DefaultConfigurationValues produces Viper defaults for the report command beneath the provided root key.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	values := report.DefaultCatalogConfigurationValues(rootKey)
	formatKey := formatConfigurationKeyConstant
	if trimmedRootKey := strings.TrimSpace(rootKey); len(trimmedRootKey) > 0 {
		formatKey = trimmedRootKey + configurationKeySeparatorConstant + formatConfigurationKeyConstant
	}
	values[formatKey] = string(defaults.Format)
	return values
}

// Sanitize normalizes report command settings.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := CommandConfiguration{
		Format:  configuration.Format,
		Catalog: configuration.Catalog.Sanitize(),
	}
	if len(strings.TrimSpace(string(sanitized.Format))) == 0 {
		sanitized.Format = report.FormatMarkdown
	}
	return sanitized
}

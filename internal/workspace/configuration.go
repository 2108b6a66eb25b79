package workspace

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	pathutils "github.com/temirov/automation-reporter/internal/utils/path"
)

const (
	defaultWorkspaceRootConstant         = "~"
	defaultLogFileNameConstant           = "automation.log"
	rootConfigurationKeyConstant         = "root"
	logFileConfigurationKeyConstant      = "log_file"
	repositoriesConfigurationKeyConstant = "repositories"
	configurationKeySeparatorConstant    = "."
	workspaceRootRequiredMessageConstant = "workspace root must be provided"
	duplicateRepositoryTemplateConstant  = "workspace repository %s is listed more than once"
)

// Configuration captures the workspace root, the log file location, and the repository list.
type Configuration struct {
	Root         string   `mapstructure:"root"`
	LogFile      string   `mapstructure:"log_file"`
	Repositories []string `mapstructure:"repositories"`
}

// DefaultRepositories returns the repositories managed in the default workspace.
func DefaultRepositories() []string {
	return []string{
		"UAVarPrior",
		"FuGEP",
		"GenomicLightning",
		"TransMet",
		"genomics-workspace",
	}
}

// DefaultConfiguration provides the baseline workspace configuration.
func DefaultConfiguration() Configuration {
	return Configuration{
		Root:         defaultWorkspaceRootConstant,
		LogFile:      defaultLogFileNameConstant,
		Repositories: DefaultRepositories(),
	}
}

// DefaultConfigurationValues returns configuration defaults keyed beneath the provided prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		joinConfigurationKey(prefix, rootConfigurationKeyConstant):         defaults.Root,
		joinConfigurationKey(prefix, logFileConfigurationKeyConstant):      defaults.LogFile,
		joinConfigurationKey(prefix, repositoriesConfigurationKeyConstant): defaults.Repositories,
	}
}

// Sanitize trims values, expands home directory shortcuts and applies defaults to unset fields.
// A nil expander leaves tilde-prefixed roots untouched.
func (configuration Configuration) Sanitize(homeExpander *pathutils.HomeExpander) Configuration {
	sanitized := Configuration{
		Root:         strings.TrimSpace(configuration.Root),
		LogFile:      strings.TrimSpace(configuration.LogFile),
		Repositories: sanitizeRepositories(configuration.Repositories),
	}

	if homeExpander != nil {
		sanitized.Root = homeExpander.Expand(sanitized.Root)
		sanitized.LogFile = homeExpander.Expand(sanitized.LogFile)
	}
	if len(sanitized.LogFile) == 0 {
		sanitized.LogFile = defaultLogFileNameConstant
	}

	return sanitized
}

// Validate reports a missing root and repositories listed more than once.
func (configuration Configuration) Validate() error {
	if len(strings.TrimSpace(configuration.Root)) == 0 {
		return errors.New(workspaceRootRequiredMessageConstant)
	}
	seenRepositories := make(map[string]struct{}, len(configuration.Repositories))
	for _, repository := range configuration.Repositories {
		if _, duplicate := seenRepositories[repository]; duplicate {
			return fmt.Errorf(duplicateRepositoryTemplateConstant, repository)
		}
		seenRepositories[repository] = struct{}{}
	}
	return nil
}

// LogFilePath resolves the event log location. Relative log files live under the workspace root.
func (configuration Configuration) LogFilePath() string {
	logFile := configuration.LogFile
	if len(logFile) == 0 {
		logFile = defaultLogFileNameConstant
	}
	if filepath.IsAbs(logFile) {
		return filepath.Clean(logFile)
	}
	return filepath.Join(configuration.Root, logFile)
}

// RepositoryCount reports how many repositories the workspace manages.
func (configuration Configuration) RepositoryCount() int {
	return len(configuration.Repositories)
}

// RepositoryNames returns a copy of the repository list.
func (configuration Configuration) RepositoryNames() []string {
	return append([]string{}, configuration.Repositories...)
}

func sanitizeRepositories(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for _, candidate := range raw {
		trimmed := strings.TrimSpace(candidate)
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

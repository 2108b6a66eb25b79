package enhance

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/automation-reporter/internal/enhancement"
	"github.com/temirov/automation-reporter/internal/ui"
	"github.com/temirov/automation-reporter/internal/utils"
	"github.com/temirov/automation-reporter/internal/workspace"
)

const (
	pipelineConfiguredMessageConstant = "enhancement pipeline configured"
	logFieldEventLogConstant          = "event_log"
	logFieldConfigurationFileConstant = "config_file"
	logFieldStepCountConstant         = "configured_step_count"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// PipelineOptions describes the pipeline a command needs.
type PipelineOptions struct {
	LogFilePath          string
	Definitions          []enhancement.StepDefinition
	Logger               *zap.Logger
	HumanReadableLogging bool
}

// PipelineFactory constructs the enhancement pipeline for a command run.
type PipelineFactory func(options PipelineOptions) (*enhancement.Pipeline, error)

// AssembleWorkspacePipeline builds the enhancement pipeline writing to the requested event log.
// Human-readable logging attaches a console observer reporting step progress.
func AssembleWorkspacePipeline(options PipelineOptions) (*enhancement.Pipeline, error) {
	assemblyOptions := enhancement.AssemblyOptions{
		LogFilePath: options.LogFilePath,
		Definitions: options.Definitions,
		Logger:      options.Logger,
	}
	if options.HumanReadableLogging {
		assemblyOptions.Observer = ui.NewConsoleStepEventLogger(options.Logger)
	}
	return enhancement.AssemblePipeline(assemblyOptions)
}

// ResolveEventLogPath prefers the event log path attached to the command context and falls back
// to the path derived from the workspace configuration.
func ResolveEventLogPath(command *cobra.Command, configuration workspace.Configuration) string {
	if command != nil {
		contextAccessor := utils.NewCommandContextAccessor()
		if logFilePath, available := contextAccessor.LogFilePath(command.Context()); available {
			if trimmedPath := strings.TrimSpace(logFilePath); len(trimmedPath) > 0 {
				return trimmedPath
			}
		}
	}
	return configuration.LogFilePath()
}

// BuildCommandPipeline resolves the event log for the command and constructs its pipeline.
func BuildCommandPipeline(command *cobra.Command, factory PipelineFactory, options PipelineOptions, configuration workspace.Configuration) (*enhancement.Pipeline, string, error) {
	options.LogFilePath = ResolveEventLogPath(command, configuration)

	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	configurationFilePath := ""
	if command != nil {
		configurationFilePath, _ = utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context())
	}
	logger.Debug(
		pipelineConfiguredMessageConstant,
		zap.String(logFieldEventLogConstant, options.LogFilePath),
		zap.String(logFieldConfigurationFileConstant, configurationFilePath),
		zap.Int(logFieldStepCountConstant, len(options.Definitions)),
	)

	if factory == nil {
		factory = AssembleWorkspacePipeline
	}
	pipeline, pipelineError := factory(options)
	return pipeline, options.LogFilePath, pipelineError
}

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

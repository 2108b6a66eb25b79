package report

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/automation-reporter/cmd/cli/enhance"
	"github.com/temirov/automation-reporter/internal/report"
	"github.com/temirov/automation-reporter/internal/workspace"
)

const (
	commandUseConstant                   = "report"
	commandShortDescriptionConstant      = "Run the enhancement steps and render the workspace automation report"
	commandLongDescriptionConstant       = "report runs every enhancement step, then renders the workspace automation report as Markdown, YAML, or JSON."
	formatFlagNameConstant               = "format"
	formatFlagDescriptionConstant        = "Report format (markdown, yaml, or json)"
	workspaceConfigurationMissingMessage = "workspace configuration unavailable"
	pipelineConstructionErrorTemplate    = "unable to construct enhancement pipeline: %w"
	generatorConstructionErrorTemplate   = "unable to construct report generator: %w"
	reportGenerationErrorTemplate        = "report generation failed: %w"
	reportRenderErrorTemplate            = "unable to render report: %w"
)

// CommandBuilder assembles the report command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	WorkspaceProvider            func() workspace.Configuration
	ConfigurationProvider        func() CommandConfiguration
	EnhancementProvider          func() enhance.CommandConfiguration
	PipelineFactory              enhance.PipelineFactory
}

// Build constructs the report command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	command.Flags().String(formatFlagNameConstant, "", formatFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if builder.WorkspaceProvider == nil {
		return errors.New(workspaceConfigurationMissingMessage)
	}
	workspaceConfiguration := builder.WorkspaceProvider()

	commandConfiguration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		commandConfiguration = builder.ConfigurationProvider()
	}
	commandConfiguration = commandConfiguration.Sanitize()

	format := commandConfiguration.Format
	if command.Flags().Changed(formatFlagNameConstant) {
		formatFlagValue, _ := command.Flags().GetString(formatFlagNameConstant)
		parsedFormat, parseError := report.ParseFormat(formatFlagValue)
		if parseError != nil {
			return parseError
		}
		format = parsedFormat
	}

	renderer, rendererError := report.NewRenderer(format)
	if rendererError != nil {
		return rendererError
	}

	logger := resolveLogger(builder.LoggerProvider)
	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}

	enhancementConfiguration := enhance.CommandConfiguration{}
	if builder.EnhancementProvider != nil {
		enhancementConfiguration = builder.EnhancementProvider()
	}
	enhancementConfiguration = enhancementConfiguration.Sanitize()

	pipeline, _, pipelineError := enhance.BuildCommandPipeline(command, builder.PipelineFactory, enhance.PipelineOptions{
		Definitions:          enhancementConfiguration.Steps,
		Logger:               logger,
		HumanReadableLogging: humanReadableLogging,
	}, workspaceConfiguration)
	if pipelineError != nil {
		return fmt.Errorf(pipelineConstructionErrorTemplate, pipelineError)
	}

	generator, generatorError := report.NewGenerator(report.GeneratorDependencies{
		Runner:       pipeline,
		Repositories: workspaceConfiguration.RepositoryNames(),
		Catalog:      commandConfiguration.Catalog,
		Logger:       logger,
	})
	if generatorError != nil {
		return fmt.Errorf(generatorConstructionErrorTemplate, generatorError)
	}

	generatedReport, generateError := generator.Generate()
	if generateError != nil {
		return fmt.Errorf(reportGenerationErrorTemplate, generateError)
	}

	if renderError := renderer.Render(command.OutOrStdout(), generatedReport); renderError != nil {
		return fmt.Errorf(reportRenderErrorTemplate, renderError)
	}
	return nil
}

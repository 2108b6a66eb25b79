package enhance

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/automation-reporter/internal/workspace"
)

const (
	commandUseConstant                   = "enhance"
	commandShortDescriptionConstant      = "Run every enhancement step and record its event"
	commandLongDescriptionConstant       = "enhance runs the enhancement steps in order, appending one event per step to the workspace log, and prints the resulting statuses."
	workspaceConfigurationMissingMessage = "workspace configuration unavailable"
	pipelineConstructionErrorTemplate    = "unable to construct enhancement pipeline: %w"
	pipelineExecutionErrorTemplate       = "enhancement run failed: %w"
	resultsHeaderConstant                = "Enhancement Results:"
	resultLineTemplateConstant           = "  %s: %s\n"
	logFileLineTemplateConstant          = "Events appended to %s\n"
)

// CommandBuilder assembles the enhance command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	WorkspaceProvider            func() workspace.Configuration
	ConfigurationProvider        func() CommandConfiguration
	PipelineFactory              PipelineFactory
}

// Build constructs the enhance command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if builder.WorkspaceProvider == nil {
		return errors.New(workspaceConfigurationMissingMessage)
	}
	workspaceConfiguration := builder.WorkspaceProvider()

	commandConfiguration := CommandConfiguration{}
	if builder.ConfigurationProvider != nil {
		commandConfiguration = builder.ConfigurationProvider()
	}
	commandConfiguration = commandConfiguration.Sanitize()

	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}

	pipeline, logFilePath, pipelineError := BuildCommandPipeline(command, builder.PipelineFactory, PipelineOptions{
		Definitions:          commandConfiguration.Steps,
		Logger:               resolveLogger(builder.LoggerProvider),
		HumanReadableLogging: humanReadableLogging,
	}, workspaceConfiguration)
	if pipelineError != nil {
		return fmt.Errorf(pipelineConstructionErrorTemplate, pipelineError)
	}

	runResult, runError := pipeline.RunAll()
	if runError != nil {
		return fmt.Errorf(pipelineExecutionErrorTemplate, runError)
	}

	output := command.OutOrStdout()
	fmt.Fprintln(output, resultsHeaderConstant)
	for _, entry := range runResult.Entries() {
		fmt.Fprintf(output, resultLineTemplateConstant, entry.StepIdentifier, entry.StatusMessage)
	}
	fmt.Fprintf(output, logFileLineTemplateConstant, logFilePath)

	return nil
}

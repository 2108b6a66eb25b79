package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/automation-reporter/cmd/cli/enhance"
	reportcmd "github.com/temirov/automation-reporter/cmd/cli/report"
	"github.com/temirov/automation-reporter/internal/utils"
	pathutils "github.com/temirov/automation-reporter/internal/utils/path"
	"github.com/temirov/automation-reporter/internal/workspace"
)

const (
	applicationNameConstant                  = "automation-reporter"
	applicationShortDescriptionConstant      = "Record workspace automation enhancements and report on them"
	applicationLongDescriptionConstant       = "automation-reporter runs the workspace enhancement steps, appends their events to a JSON lines log, and renders a summary report."
	configFileFlagNameConstant               = "config"
	configFileFlagUsageConstant              = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                 = "log-level"
	logLevelFlagUsageConstant                = "Override the configured log level."
	logFormatFlagNameConstant                = "log-format"
	logFormatFlagUsageConstant               = "Override the configured log format (structured or console)."
	workspaceRootFlagNameConstant            = "workspace-root"
	workspaceRootFlagUsageConstant           = "Override the configured workspace root directory."
	commonConfigurationKeyConstant           = "common"
	commonLogLevelConfigKeyConstant          = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant         = commonConfigurationKeyConstant + ".log_format"
	workspaceConfigurationKeyConstant        = "workspace"
	reportConfigurationKeyConstant           = "report"
	environmentPrefixConstant                = "AUTOMATION_REPORTER"
	configurationNameConstant                = "config"
	configurationTypeConstant                = "yaml"
	configurationInitializedMessageConstant  = "configuration initialized"
	configurationLogLevelFieldConstant       = "log_level"
	configurationLogFormatFieldConstant      = "log_format"
	configurationFileFieldConstant           = "config_file"
	configurationWorkspaceRootFieldConstant  = "workspace_root"
	configurationEventLogFieldConstant       = "event_log"
	configurationRepositoryCountField        = "repository_count"
	configurationLoadErrorTemplateConstant   = "unable to load configuration: %w"
	workspaceValidationErrorTemplateConstant = "invalid workspace configuration: %w"
	loggerCreationErrorTemplateConstant      = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant          = "unable to flush logger: %w"
	rootCommandInfoMessageConstant           = "automation-reporter CLI executed"
	rootCommandDebugMessageConstant          = "automation-reporter CLI diagnostics"
	logFieldCommandNameConstant              = "command_name"
	logFieldArgumentCountConstant            = "argument_count"
	logFieldArgumentsConstant                = "arguments"
	loggerNotInitializedMessageConstant      = "logger not initialized"
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common      ApplicationCommonConfiguration `mapstructure:"common"`
	Workspace   workspace.Configuration        `mapstructure:"workspace"`
	Enhancement enhance.CommandConfiguration   `mapstructure:"enhancement"`
	Report      reportcmd.CommandConfiguration `mapstructure:"report"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand            *cobra.Command
	configurationLoader    *utils.ConfigurationLoader
	loggerFactory          *utils.LoggerFactory
	homeExpander           *pathutils.HomeExpander
	logger                 *zap.Logger
	configuration          ApplicationConfiguration
	configurationMetadata  utils.LoadedConfiguration
	configurationFilePath  string
	logLevelFlagValue      string
	logFormatFlagValue     string
	workspaceRootFlagValue string
	commandContextAccessor utils.CommandContextAccessor
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		utils.DefaultConfigurationSearchPaths(applicationNameConstant),
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader:    configurationLoader,
		loggerFactory:          utils.NewLoggerFactory(),
		homeExpander:           pathutils.NewHomeExpander(),
		logger:                 zap.NewNop(),
		commandContextAccessor: utils.NewCommandContextAccessor(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runRootCommand(command, arguments)
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.workspaceRootFlagValue, workspaceRootFlagNameConstant, "", workspaceRootFlagUsageConstant)

	enhanceBuilder := enhance.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		WorkspaceProvider: func() workspace.Configuration {
			return application.configuration.Workspace
		},
		ConfigurationProvider: func() enhance.CommandConfiguration {
			return application.configuration.Enhancement
		},
	}
	enhanceCommand, enhanceBuildError := enhanceBuilder.Build()
	if enhanceBuildError == nil {
		cobraCommand.AddCommand(enhanceCommand)
	}

	reportBuilder := reportcmd.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		WorkspaceProvider: func() workspace.Configuration {
			return application.configuration.Workspace
		},
		ConfigurationProvider: func() reportcmd.CommandConfiguration {
			return application.configuration.Report
		},
		EnhancementProvider: func() enhance.CommandConfiguration {
			return application.configuration.Enhancement
		},
	}
	reportCommand, reportBuildError := reportBuilder.Build()
	if reportBuildError == nil {
		cobraCommand.AddCommand(reportCommand)
	}

	application.rootCommand = cobraCommand

	return application
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelInfo),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatStructured),
	}
	for configurationKey, configurationValue := range workspace.DefaultConfigurationValues(workspaceConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}
	for configurationKey, configurationValue := range reportcmd.DefaultConfigurationValues(reportConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	if application.persistentFlagChanged(command, workspaceRootFlagNameConstant) {
		application.configuration.Workspace.Root = application.workspaceRootFlagValue
	}

	application.configuration.Workspace = application.configuration.Workspace.Sanitize(application.homeExpander)
	if validationError := application.configuration.Workspace.Validate(); validationError != nil {
		return fmt.Errorf(workspaceValidationErrorTemplateConstant, validationError)
	}
	application.configuration.Enhancement = application.configuration.Enhancement.Sanitize()
	application.configuration.Report = application.configuration.Report.Sanitize()

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
		zap.String(configurationWorkspaceRootFieldConstant, application.configuration.Workspace.Root),
		zap.String(configurationEventLogFieldConstant, application.configuration.Workspace.LogFilePath()),
		zap.Int(configurationRepositoryCountField, application.configuration.Workspace.RepositoryCount()),
	)

	if command != nil {
		updatedContext := application.commandContextAccessor.WithConfigurationFilePath(
			command.Context(),
			application.configurationMetadata.ConfigFileUsed,
		)
		updatedContext = application.commandContextAccessor.WithLogFilePath(
			updatedContext,
			application.configuration.Workspace.LogFilePath(),
		)
		command.SetContext(updatedContext)
		if rootCommand := command.Root(); rootCommand != nil {
			rootCommand.SetContext(updatedContext)
		}
	}

	return nil
}

func (application *Application) humanReadableLoggingEnabled() bool {
	logFormatValue := strings.TrimSpace(application.configuration.Common.LogFormat)
	return strings.EqualFold(logFormatValue, string(utils.LogFormatConsole))
}

func (application *Application) runRootCommand(command *cobra.Command, arguments []string) error {
	if application.logger == nil {
		return errors.New(loggerNotInitializedMessageConstant)
	}

	application.logger.Info(
		rootCommandInfoMessageConstant,
		zap.String(logFieldCommandNameConstant, command.Name()),
		zap.Int(logFieldArgumentCountConstant, len(arguments)),
	)

	application.logger.Debug(
		rootCommandDebugMessageConstant,
		zap.Strings(logFieldArgumentsConstant, arguments),
	)

	return command.Help()
}

func (application *Application) flushLogger() error {
	return application.syncLoggerInstance(application.logger)
}

func (application *Application) syncLoggerInstance(logger *zap.Logger) error {
	if logger == nil {
		return nil
	}

	syncError := logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	case errors.Is(syncError, syscall.ENOTTY):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	rootCommand := command.Root()
	if rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}

		if flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}

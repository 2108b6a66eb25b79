package utils_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"

	"github.com/temirov/automation-reporter/internal/utils"
)

const (
	testEnvironmentPrefixConstant                     = "TESTREPORTER"
	testCommonSectionKeyConstant                      = "common"
	testLogLevelKeyConstant                           = testCommonSectionKeyConstant + ".log_level"
	testRepositoriesKeyConstant                       = "workspace.repositories"
	testFormatKeyConstant                             = "report.format"
	testDefaultLogLevelConstant                       = "info"
	testConfiguredLogLevelConstant                    = "debug"
	testOverriddenLogLevelConstant                    = "error"
	testFileLogLevelConstant                          = "warn"
	testConfigFileNameConstant                        = "config.yaml"
	testConfigContentTemplateConstant                 = "common:\n  log_level: %s\n"
	testCaseEmbeddedMessageConstant                   = "embedded configuration merges"
	testCaseDefaultsMessageConstant                   = "defaults are applied"
	testCaseFileMessageConstant                       = "config file overrides defaults"
	testCaseEnvironmentMessageConstant                = "environment overrides file"
	testConfigurationNameConstant                     = "config"
	testConfigurationTypeConstant                     = "yaml"
	configurationLoaderSubtestNameTemplateConstant    = "%d_%s"
	testEmbeddedLogLevelConstant                      = "debug"
	testApplicationNameConstant                       = "automation-reporter"
	testXDGConfigHomeDirectoryNameConstant            = "config"
	testCaseSearchPathWorkingDirectoryMessageConstant = "searches working directory"
	testCaseSearchPathUserDirectoryMessageConstant    = "searches user configuration directory"
	testEmbeddedListConfigurationConstant             = "workspace:\n  repositories:\n    - UAVarPrior\n    - FuGEP\nreport:\n  format: markdown\n"
	testUnsupportedFormatValueConstant                = "pdf"
	unsupportedFixtureFormatMessageConstant           = "unsupported fixture format"
)

type configurationFixture struct {
	Common    configurationCommonFixture    `mapstructure:"common"`
	Workspace configurationWorkspaceFixture `mapstructure:"workspace"`
	Report    configurationReportFixture    `mapstructure:"report"`
}

type configurationCommonFixture struct {
	LogLevel string `mapstructure:"log_level"`
}

type configurationWorkspaceFixture struct {
	Repositories []string `mapstructure:"repositories"`
}

type configurationReportFixture struct {
	Format fixtureFormat `mapstructure:"format"`
}

type fixtureFormat string

func (format *fixtureFormat) UnmarshalText(text []byte) error {
	normalized := strings.ToLower(strings.TrimSpace(string(text)))
	switch normalized {
	case "markdown", "yaml", "json":
		*format = fixtureFormat(normalized)
		return nil
	default:
		return errors.New(unsupportedFixtureFormatMessageConstant)
	}
}

func environmentVariableName(configurationKey string) string {
	return fmt.Sprintf("%s_%s", testEnvironmentPrefixConstant, strings.ToUpper(strings.ReplaceAll(configurationKey, ".", "_")))
}

func TestConfigurationLoaderLoadConfiguration(testInstance *testing.T) {
	testCases := []struct {
		name                string
		embeddedLogLevel    string
		fileLogLevel        string
		environmentLogLevel string
		expectedLogLevel    string
	}{
		{
			name:             testCaseEmbeddedMessageConstant,
			embeddedLogLevel: testEmbeddedLogLevelConstant,
			expectedLogLevel: testEmbeddedLogLevelConstant,
		},
		{
			name:             testCaseDefaultsMessageConstant,
			embeddedLogLevel: testDefaultLogLevelConstant,
			expectedLogLevel: testDefaultLogLevelConstant,
		},
		{
			name:             testCaseFileMessageConstant,
			embeddedLogLevel: testDefaultLogLevelConstant,
			fileLogLevel:     testConfiguredLogLevelConstant,
			expectedLogLevel: testConfiguredLogLevelConstant,
		},
		{
			name:                testCaseEnvironmentMessageConstant,
			embeddedLogLevel:    testDefaultLogLevelConstant,
			fileLogLevel:        testFileLogLevelConstant,
			environmentLogLevel: testOverriddenLogLevelConstant,
			expectedLogLevel:    testOverriddenLogLevelConstant,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(configurationLoaderSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			tempDirectory := testInstance.TempDir()
			configurationFilePath := ""
			if len(testCase.fileLogLevel) > 0 {
				configurationFilePath = filepath.Join(tempDirectory, testConfigFileNameConstant)
				configurationContent := fmt.Sprintf(testConfigContentTemplateConstant, testCase.fileLogLevel)
				require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(configurationContent), 0o600))
			}

			if len(testCase.environmentLogLevel) > 0 {
				testInstance.Setenv(environmentVariableName(testLogLevelKeyConstant), testCase.environmentLogLevel)
			}

			configurationLoader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{tempDirectory})
			configurationLoader.SetEmbeddedConfiguration([]byte(fmt.Sprintf(testConfigContentTemplateConstant, testCase.embeddedLogLevel)), testConfigurationTypeConstant)

			defaultValues := map[string]any{
				testLogLevelKeyConstant: testDefaultLogLevelConstant,
			}

			loadedConfiguration := configurationFixture{}
			metadata, loadError := configurationLoader.LoadConfiguration(configurationFilePath, defaultValues, &loadedConfiguration)
			require.NoError(testInstance, loadError)
			require.Equal(testInstance, testCase.expectedLogLevel, loadedConfiguration.Common.LogLevel)

			if len(configurationFilePath) > 0 {
				require.Equal(testInstance, configurationFilePath, metadata.ConfigFileUsed)
			} else {
				require.Empty(testInstance, metadata.ConfigFileUsed)
			}
		})
	}
}

func TestConfigurationLoaderDecodesEnvironmentLists(testInstance *testing.T) {
	testInstance.Setenv(environmentVariableName(testRepositoriesKeyConstant), "TransMet,genomics-workspace")
	testInstance.Setenv(environmentVariableName(testFormatKeyConstant), " YAML ")

	configurationLoader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{testInstance.TempDir()})
	configurationLoader.SetEmbeddedConfiguration([]byte(testEmbeddedListConfigurationConstant), testConfigurationTypeConstant)

	loadedConfiguration := configurationFixture{}
	_, loadError := configurationLoader.LoadConfiguration("", nil, &loadedConfiguration)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, []string{"TransMet", "genomics-workspace"}, loadedConfiguration.Workspace.Repositories)
	require.Equal(testInstance, fixtureFormat("yaml"), loadedConfiguration.Report.Format)
}

func TestConfigurationLoaderRejectsInvalidTextValues(testInstance *testing.T) {
	testInstance.Setenv(environmentVariableName(testFormatKeyConstant), testUnsupportedFormatValueConstant)

	configurationLoader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, []string{testInstance.TempDir()})
	configurationLoader.SetEmbeddedConfiguration([]byte(testEmbeddedListConfigurationConstant), testConfigurationTypeConstant)

	loadedConfiguration := configurationFixture{}
	_, loadError := configurationLoader.LoadConfiguration("", nil, &loadedConfiguration)
	require.Error(testInstance, loadError)
	require.Contains(testInstance, loadError.Error(), unsupportedFixtureFormatMessageConstant)
}

func TestConfigurationLoaderReportsMissingExplicitFile(testInstance *testing.T) {
	configurationLoader := utils.NewConfigurationLoader(testConfigurationNameConstant, testConfigurationTypeConstant, testEnvironmentPrefixConstant, nil)

	loadedConfiguration := configurationFixture{}
	_, loadError := configurationLoader.LoadConfiguration(filepath.Join(testInstance.TempDir(), testConfigFileNameConstant), nil, &loadedConfiguration)
	require.Error(testInstance, loadError)
}

func TestConfigurationLoaderSearchPaths(testInstance *testing.T) {
	testCases := []struct {
		name                         string
		configurationDirectorySelect func(workingDirectoryPath string, userConfigurationDirectoryPath string) string
	}{
		{
			name: testCaseSearchPathWorkingDirectoryMessageConstant,
			configurationDirectorySelect: func(workingDirectoryPath string, userConfigurationDirectoryPath string) string {
				return workingDirectoryPath
			},
		},
		{
			name: testCaseSearchPathUserDirectoryMessageConstant,
			configurationDirectorySelect: func(workingDirectoryPath string, userConfigurationDirectoryPath string) string {
				return userConfigurationDirectoryPath
			},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(configurationLoaderSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			workingDirectoryPath := testInstance.TempDir()
			xdgConfigHomeDirectoryPath := filepath.Join(testInstance.TempDir(), testXDGConfigHomeDirectoryNameConstant)

			testInstance.Cleanup(xdg.Reload)
			testInstance.Setenv("XDG_CONFIG_HOME", xdgConfigHomeDirectoryPath)
			xdg.Reload()

			defaultSearchPaths := utils.DefaultConfigurationSearchPaths(testApplicationNameConstant)
			require.Len(testInstance, defaultSearchPaths, 2)
			userConfigurationDirectoryPath := defaultSearchPaths[1]
			require.Equal(testInstance, filepath.Join(xdgConfigHomeDirectoryPath, testApplicationNameConstant), userConfigurationDirectoryPath)

			selectedConfigurationDirectoryPath := testCase.configurationDirectorySelect(workingDirectoryPath, userConfigurationDirectoryPath)
			require.NoError(testInstance, os.MkdirAll(selectedConfigurationDirectoryPath, 0o755))

			configurationFilePath := filepath.Join(selectedConfigurationDirectoryPath, testConfigFileNameConstant)
			configurationContent := fmt.Sprintf(testConfigContentTemplateConstant, testConfiguredLogLevelConstant)
			require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(configurationContent), 0o600))

			configurationLoader := utils.NewConfigurationLoader(
				testConfigurationNameConstant,
				testConfigurationTypeConstant,
				testEnvironmentPrefixConstant,
				[]string{workingDirectoryPath, userConfigurationDirectoryPath},
			)

			defaultValues := map[string]any{
				testLogLevelKeyConstant: testDefaultLogLevelConstant,
			}

			loadedConfiguration := configurationFixture{}
			metadata, loadError := configurationLoader.LoadConfiguration("", defaultValues, &loadedConfiguration)
			require.NoError(testInstance, loadError)
			require.Equal(testInstance, testConfiguredLogLevelConstant, loadedConfiguration.Common.LogLevel)
			require.Equal(testInstance, configurationFilePath, metadata.ConfigFileUsed)
		})
	}
}

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	environmentKeySeparatorOldConstant              = "."
	environmentKeySeparatorNewConstant              = "_"
	environmentListSeparatorConstant                = ","
	workingDirectorySearchPathConstant              = "."
	configurationReadErrorTemplateConstant          = "failed to read configuration: %w"
	configurationUnmarshalErrorTemplateConstant     = "failed to parse configuration: %w"
	embeddedConfigurationMergeErrorTemplateConstant = "failed to merge embedded configuration: %w"
)

// ConfigurationLoader wraps Viper to layer embedded defaults, configuration files, and environment overrides.
type ConfigurationLoader struct {
	configurationName         string
	configurationType         string
	environmentPrefix         string
	searchPaths               []string
	environmentKeyReplacer    *strings.Replacer
	embeddedConfiguration     []byte
	embeddedConfigurationType string
}

// LoadedConfiguration surfaces metadata about the resolved configuration.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// DefaultConfigurationSearchPaths lists the working directory followed by the user configuration directory for the application.
func DefaultConfigurationSearchPaths(applicationName string) []string {
	return []string{
		workingDirectorySearchPathConstant,
		filepath.Join(xdg.ConfigHome, applicationName),
	}
}

// NewConfigurationLoader creates a loader that searches known paths and respects an environment prefix.
func NewConfigurationLoader(configurationName string, configurationType string, environmentPrefix string, searchPaths []string) *ConfigurationLoader {
	return &ConfigurationLoader{
		configurationName:      configurationName,
		configurationType:      configurationType,
		environmentPrefix:      environmentPrefix,
		searchPaths:            append([]string{}, searchPaths...),
		environmentKeyReplacer: strings.NewReplacer(environmentKeySeparatorOldConstant, environmentKeySeparatorNewConstant),
	}
}

// SetEmbeddedConfiguration stores configuration data merged before user-provided configuration files.
func (loader *ConfigurationLoader) SetEmbeddedConfiguration(configurationData []byte, configurationType string) {
	if loader == nil {
		return
	}

	loader.embeddedConfigurationType = strings.TrimSpace(configurationType)
	loader.embeddedConfiguration = append([]byte(nil), configurationData...)
}

// LoadConfiguration populates targetConfiguration from embedded data, defaults, configuration files, and environment variables.
// Environment values destined for list fields are split on commas, and fields implementing encoding.TextUnmarshaler decode from strings.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, targetConfiguration any) (LoadedConfiguration, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigName(loader.configurationName)
	viperInstance.SetConfigType(loader.configurationType)

	if len(loader.embeddedConfiguration) > 0 {
		if len(loader.embeddedConfigurationType) > 0 {
			viperInstance.SetConfigType(loader.embeddedConfigurationType)
		}
		if mergeError := viperInstance.MergeConfig(bytes.NewReader(loader.embeddedConfiguration)); mergeError != nil {
			return LoadedConfiguration{}, fmt.Errorf(embeddedConfigurationMergeErrorTemplateConstant, mergeError)
		}
		viperInstance.SetConfigType(loader.configurationType)
	}

	for _, searchPath := range loader.searchPaths {
		viperInstance.AddConfigPath(searchPath)
	}

	viperInstance.SetEnvPrefix(loader.environmentPrefix)
	viperInstance.SetEnvKeyReplacer(loader.environmentKeyReplacer)
	viperInstance.AutomaticEnv()

	for defaultKey, defaultValue := range defaultValues {
		viperInstance.SetDefault(defaultKey, defaultValue)
	}

	if len(strings.TrimSpace(configurationFilePath)) > 0 {
		viperInstance.SetConfigFile(configurationFilePath)
	}

	if readError := viperInstance.MergeInConfig(); readError != nil {
		var notFoundError viper.ConfigFileNotFoundError
		if !errors.As(readError, &notFoundError) {
			return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, readError)
		}
	}

	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(environmentListSeparatorConstant),
	))
	if unmarshalError := viperInstance.Unmarshal(targetConfiguration, decodeHook); unmarshalError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationUnmarshalErrorTemplateConstant, unmarshalError)
	}

	return LoadedConfiguration{ConfigFileUsed: viperInstance.ConfigFileUsed()}, nil
}

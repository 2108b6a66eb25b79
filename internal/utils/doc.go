// Package utils exposes reusable helpers consumed by the automation reporter commands.
//
// It houses ConfigurationLoader, which layers embedded defaults, configuration
// files, and environment variables through Viper, and LoggerFactory, which builds
// zap loggers for structured or console diagnostics.
package utils

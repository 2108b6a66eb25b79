package utils

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logLevelDebugStringConstant          = "debug"
	logLevelInfoStringConstant           = "info"
	logLevelWarnStringConstant           = "warn"
	logLevelErrorStringConstant          = "error"
	logFormatStructuredStringConstant    = "structured"
	logFormatConsoleStringConstant       = "console"
	jsonZapEncodingStringConstant        = "json"
	consoleZapEncodingStringConstant     = "console"
	standardErrorOutputPathConstant      = "stderr"
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Exported log format constants for reuse across packages.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
)

// LoggerFactory builds zap.Logger instances writing diagnostics to standard error.
type LoggerFactory struct{}

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// CreateLogger produces a zap.Logger honoring the requested log level and format.
// Structured loggers emit JSON; console loggers emit compact human-readable lines without stack traces.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	zapLogLevel, levelExists := logLevelMapping[LogLevel(strings.ToLower(strings.TrimSpace(string(requestedLogLevel))))]
	if !levelExists {
		return nil, fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLogLevel)
	}

	var configuration zap.Config
	switch LogFormat(strings.ToLower(strings.TrimSpace(string(requestedLogFormat)))) {
	case LogFormatStructured:
		configuration = zap.NewProductionConfig()
		configuration.Encoding = jsonZapEncodingStringConstant
		configuration.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case LogFormatConsole:
		configuration = zap.NewDevelopmentConfig()
		configuration.Encoding = consoleZapEncodingStringConstant
		configuration.Development = false
		configuration.DisableCaller = true
		configuration.DisableStacktrace = true
		configuration.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, fmt.Errorf(unsupportedLogFormatTemplateConstant, requestedLogFormat)
	}

	configuration.Level = zap.NewAtomicLevelAt(zapLogLevel)
	configuration.OutputPaths = []string{standardErrorOutputPathConstant}
	configuration.ErrorOutputPaths = []string{standardErrorOutputPathConstant}

	return configuration.Build()
}

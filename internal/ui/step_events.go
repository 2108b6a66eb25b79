package ui

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/automation-reporter/internal/enhancement"
)

const (
	stepStartedMessageTemplateConstant   = "Running %s"
	stepCompletedMessageTemplateConstant = "Completed %s"
	stepStatusSuffixTemplateConstant     = ": %s"
	stepFailedMessageTemplateConstant    = "%s failed: %s"
	unknownFailureMessageConstant        = "unknown error"
	unnamedStepLabelConstant             = "unnamed step"
	emptyStringConstant                  = ""
)

// StepEventFormatter builds human-readable messages for enhancement step lifecycle events.
type StepEventFormatter struct{}

// BuildStartedMessage formats the message describing a step about to run.
func (formatter StepEventFormatter) BuildStartedMessage(stepIdentifier string) string {
	return fmt.Sprintf(stepStartedMessageTemplateConstant, formatter.formatStepLabel(stepIdentifier))
}

// BuildCompletedMessage formats the message describing a finished step and its status.
func (formatter StepEventFormatter) BuildCompletedMessage(result enhancement.StepResult) string {
	baseMessage := fmt.Sprintf(stepCompletedMessageTemplateConstant, formatter.formatStepLabel(result.StepIdentifier))
	return baseMessage + formatter.formatStatusSuffix(result.StatusMessage)
}

// BuildFailureMessage formats the message describing a step failure.
func (formatter StepEventFormatter) BuildFailureMessage(stepIdentifier string, failure error) string {
	failureMessage := unknownFailureMessageConstant
	if failure != nil {
		failureMessage = failure.Error()
	}
	return fmt.Sprintf(stepFailedMessageTemplateConstant, formatter.formatStepLabel(stepIdentifier), failureMessage)
}

func (formatter StepEventFormatter) formatStepLabel(stepIdentifier string) string {
	trimmedIdentifier := strings.TrimSpace(stepIdentifier)
	if len(trimmedIdentifier) == 0 {
		return unnamedStepLabelConstant
	}
	return trimmedIdentifier
}

func (formatter StepEventFormatter) formatStatusSuffix(statusMessage string) string {
	trimmedStatus := strings.TrimSpace(statusMessage)
	if len(trimmedStatus) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(stepStatusSuffixTemplateConstant, trimmedStatus)
}

// ConsoleStepEventLogger renders step lifecycle events using a zap logger configured for human-readable output.
type ConsoleStepEventLogger struct {
	logger    *zap.Logger
	formatter StepEventFormatter
}

// NewConsoleStepEventLogger constructs a console event logger backed by the provided zap logger.
func NewConsoleStepEventLogger(logger *zap.Logger) *ConsoleStepEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleStepEventLogger{logger: logger, formatter: StepEventFormatter{}}
}

// StepStarted implements enhancement.StepEventObserver by logging step start notifications.
func (eventLogger *ConsoleStepEventLogger) StepStarted(stepIdentifier string) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildStartedMessage(stepIdentifier))
}

// StepCompleted implements enhancement.StepEventObserver by logging step completion notifications.
func (eventLogger *ConsoleStepEventLogger) StepCompleted(result enhancement.StepResult) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildCompletedMessage(result))
}

// StepFailed implements enhancement.StepEventObserver by logging step failures.
func (eventLogger *ConsoleStepEventLogger) StepFailed(stepIdentifier string, failure error) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Error(eventLogger.formatter.BuildFailureMessage(stepIdentifier, failure))
}

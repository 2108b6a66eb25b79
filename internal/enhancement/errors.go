package enhancement

import (
	"errors"
	"fmt"
)

const (
	logWriteErrorTemplateConstant         = "unable to append %s event to %s: %v"
	logWriteErrorUnknownComponentConstant = "enhancement"
	stepExecutionErrorTemplateConstant    = "enhancement step %s failed after %d completed steps: %v"
	eventFeaturesRequiredMessageConstant  = "enhancement event requires at least one feature"
	eventFeatureEmptyMessageConstant      = "enhancement event features must be non-empty"
	stepStatusMessageEmptyMessageConstant = "enhancement step returned an empty status message"
)

var (
	errEventFeaturesRequired = errors.New(eventFeaturesRequiredMessageConstant)
	errEventFeatureEmpty     = errors.New(eventFeatureEmptyMessageConstant)
	errStepStatusEmpty       = errors.New(stepStatusMessageEmptyMessageConstant)
)

// LogWriteError reports that an enhancement event could not be appended to the event log.
type LogWriteError struct {
	LogPath   string
	Component string
	Cause     error
}

// Error describes the failed append.
func (logWriteError LogWriteError) Error() string {
	component := logWriteError.Component
	if len(component) == 0 {
		component = logWriteErrorUnknownComponentConstant
	}
	return fmt.Sprintf(logWriteErrorTemplateConstant, component, logWriteError.LogPath, logWriteError.Cause)
}

// Unwrap exposes the underlying storage or encoding failure.
func (logWriteError LogWriteError) Unwrap() error {
	return logWriteError.Cause
}

// StepExecutionError reports the step that aborted a pipeline run.
type StepExecutionError struct {
	StepIdentifier string
	StepIndex      int
	CompletedSteps int
	Cause          error
}

// Error describes the failed step along with the number of steps that completed before it.
func (stepError StepExecutionError) Error() string {
	return fmt.Sprintf(stepExecutionErrorTemplateConstant, stepError.StepIdentifier, stepError.CompletedSteps, stepError.Cause)
}

// Unwrap exposes the step failure, typically a LogWriteError.
func (stepError StepExecutionError) Unwrap() error {
	return stepError.Cause
}

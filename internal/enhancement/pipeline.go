package enhancement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	pipelineStepsRequiredMessageConstant    = "enhancement pipeline requires at least one step"
	pipelineNilStepTemplateConstant         = "enhancement pipeline step %d is nil"
	pipelineEmptyIdentifierTemplateConstant = "enhancement pipeline step %d has an empty identifier"
	pipelineDuplicateIdentifierTemplate     = "enhancement pipeline defines duplicate step identifier %s"
	pipelineRunStartedMessageConstant       = "enhancement pipeline started"
	pipelineRunCompletedMessageConstant     = "enhancement pipeline completed"
	pipelineRunAbortedMessageConstant       = "enhancement pipeline aborted"
	pipelineStepStartedMessageConstant      = "enhancement step started"
	pipelineStepCompletedMessageConstant    = "enhancement step completed"
	logFieldRunIdentifierConstant           = "run_id"
	logFieldStepIdentifierConstant          = "step_id"
	logFieldStepIndexConstant               = "step_index"
	logFieldStepCountConstant               = "step_count"
	logFieldCompletedStepsConstant          = "completed_steps"
	logFieldStatusMessageConstant           = "status"
)

// PipelineDependencies configures collaborators used while running the pipeline.
type PipelineDependencies struct {
	Logger                *zap.Logger
	Observer              StepEventObserver
	RunIdentifierProvider func() string
}

// Pipeline runs registered steps strictly in registration order.
type Pipeline struct {
	steps                 []Step
	logger                *zap.Logger
	observer              StepEventObserver
	runIdentifierProvider func() string
}

// NewPipeline registers the provided steps. Identifiers must be non-empty and unique.
func NewPipeline(steps []Step, dependencies PipelineDependencies) (*Pipeline, error) {
	if len(steps) == 0 {
		return nil, errors.New(pipelineStepsRequiredMessageConstant)
	}

	seenIdentifiers := make(map[string]struct{}, len(steps))
	for stepIndex, step := range steps {
		if step == nil {
			return nil, fmt.Errorf(pipelineNilStepTemplateConstant, stepIndex)
		}
		identifier := step.Identifier()
		if len(strings.TrimSpace(identifier)) == 0 {
			return nil, fmt.Errorf(pipelineEmptyIdentifierTemplateConstant, stepIndex)
		}
		if _, duplicate := seenIdentifiers[identifier]; duplicate {
			return nil, fmt.Errorf(pipelineDuplicateIdentifierTemplate, identifier)
		}
		seenIdentifiers[identifier] = struct{}{}
	}

	pipeline := &Pipeline{
		steps:                 append([]Step{}, steps...),
		logger:                dependencies.Logger,
		observer:              dependencies.Observer,
		runIdentifierProvider: dependencies.RunIdentifierProvider,
	}
	if pipeline.logger == nil {
		pipeline.logger = zap.NewNop()
	}
	if pipeline.observer == nil {
		pipeline.observer = noopStepEventObserver{}
	}
	if pipeline.runIdentifierProvider == nil {
		pipeline.runIdentifierProvider = uuid.NewString
	}

	return pipeline, nil
}

// StepIdentifiers lists registered step identifiers in execution order.
func (pipeline *Pipeline) StepIdentifiers() []string {
	identifiers := make([]string, 0, len(pipeline.steps))
	for _, step := range pipeline.steps {
		identifiers = append(identifiers, step.Identifier())
	}
	return identifiers
}

// RunAll executes every step and returns one status per step.
//
// The first failing step aborts the run. The returned error is a StepExecutionError wrapping the
// step failure and the partial results are discarded. Events appended by steps that completed
// before the failure remain in the event log.
func (pipeline *Pipeline) RunAll() (RunResult, error) {
	runLogger := pipeline.logger.With(zap.String(logFieldRunIdentifierConstant, pipeline.runIdentifierProvider()))
	runLogger.Info(pipelineRunStartedMessageConstant, zap.Int(logFieldStepCountConstant, len(pipeline.steps)))

	entries := make([]StepResult, 0, len(pipeline.steps))
	for stepIndex, step := range pipeline.steps {
		stepIdentifier := step.Identifier()
		pipeline.observer.StepStarted(stepIdentifier)
		runLogger.Debug(pipelineStepStartedMessageConstant, zap.String(logFieldStepIdentifierConstant, stepIdentifier), zap.Int(logFieldStepIndexConstant, stepIndex))

		stepResult, stepError := step.Run()
		if stepError == nil && len(strings.TrimSpace(stepResult.StatusMessage)) == 0 {
			stepError = errStepStatusEmpty
		}
		if stepError != nil {
			pipeline.observer.StepFailed(stepIdentifier, stepError)
			runLogger.Error(
				pipelineRunAbortedMessageConstant,
				zap.String(logFieldStepIdentifierConstant, stepIdentifier),
				zap.Int(logFieldCompletedStepsConstant, len(entries)),
				zap.Error(stepError),
			)
			return RunResult{}, StepExecutionError{
				StepIdentifier: stepIdentifier,
				StepIndex:      stepIndex,
				CompletedSteps: len(entries),
				Cause:          stepError,
			}
		}

		stepResult.StepIdentifier = stepIdentifier
		entries = append(entries, stepResult)
		pipeline.observer.StepCompleted(stepResult)
		runLogger.Debug(pipelineStepCompletedMessageConstant, zap.String(logFieldStepIdentifierConstant, stepIdentifier), zap.String(logFieldStatusMessageConstant, stepResult.StatusMessage))
	}

	runLogger.Info(pipelineRunCompletedMessageConstant, zap.Int(logFieldCompletedStepsConstant, len(entries)))
	return RunResult{entries: entries}, nil
}

package enhancement

import "go.uber.org/zap"

// AssemblyOptions describes the collaborators needed to build a pipeline over a JSON lines event log.
type AssemblyOptions struct {
	LogFilePath string
	Definitions []StepDefinition
	Clock       Clock
	Logger      *zap.Logger
	Observer    StepEventObserver
}

// AssemblePipeline builds the event log, binds each definition to it and registers the steps.
// The default catalog is used when no definitions are supplied.
func AssemblePipeline(options AssemblyOptions) (*Pipeline, error) {
	eventLog, eventLogError := NewJSONLEventLog(options.LogFilePath)
	if eventLogError != nil {
		return nil, eventLogError
	}

	definitions := options.Definitions
	if len(definitions) == 0 {
		definitions = DefaultStepDefinitions()
	}

	steps, stepsError := BuildSteps(definitions, eventLog, options.Clock)
	if stepsError != nil {
		return nil, stepsError
	}

	return NewPipeline(steps, PipelineDependencies{Logger: options.Logger, Observer: options.Observer})
}

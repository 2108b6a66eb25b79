package enhancement

// StepEventObserver receives lifecycle notifications for pipeline step execution.
type StepEventObserver interface {
	// StepStarted notifies observers that a step is about to run.
	StepStarted(stepIdentifier string)
	// StepCompleted notifies observers that a step finished and supplies its result.
	StepCompleted(result StepResult)
	// StepFailed reports a step failure that aborts the run.
	StepFailed(stepIdentifier string, failure error)
}

type noopStepEventObserver struct{}

func (noopStepEventObserver) StepStarted(string) {}

func (noopStepEventObserver) StepCompleted(StepResult) {}

func (noopStepEventObserver) StepFailed(string, error) {}

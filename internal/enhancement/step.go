package enhancement

import (
	"errors"
	"fmt"
	"strings"
)

const (
	stepIdentifierRequiredMessageConstant = "enhancement step identifier must be provided"
	stepComponentRequiredTemplateConstant = "enhancement step %s requires a component name"
	stepStatusRequiredTemplateConstant    = "enhancement step %s requires a status message"
	stepFeaturesRequiredTemplateConstant  = "enhancement step %s requires at least one feature"
	stepFeatureEmptyTemplateConstant      = "enhancement step %s defines an empty feature at position %d"
	stepEventLogRequiredMessageConstant   = "enhancement step requires an event log"
)

// StepResult captures the status reported by a single step execution.
type StepResult struct {
	StepIdentifier string
	StatusMessage  string
}

// Step is a runnable enhancement unit that records one event per run.
type Step interface {
	Identifier() string
	Run() (StepResult, error)
}

// StepDefinition describes a catalog enhancement: its identifier, the component recorded in the
// event log, the status reported to callers, and the features recorded with the event.
type StepDefinition struct {
	Identifier    string   `mapstructure:"id"`
	Component     string   `mapstructure:"component"`
	StatusMessage string   `mapstructure:"status"`
	Features      []string `mapstructure:"features"`
}

// Validate ensures the definition can produce a well-formed event and a non-empty status.
func (definition StepDefinition) Validate() error {
	identifier := strings.TrimSpace(definition.Identifier)
	if len(identifier) == 0 {
		return errors.New(stepIdentifierRequiredMessageConstant)
	}
	if len(strings.TrimSpace(definition.Component)) == 0 {
		return fmt.Errorf(stepComponentRequiredTemplateConstant, identifier)
	}
	if len(strings.TrimSpace(definition.StatusMessage)) == 0 {
		return fmt.Errorf(stepStatusRequiredTemplateConstant, identifier)
	}
	if len(definition.Features) == 0 {
		return fmt.Errorf(stepFeaturesRequiredTemplateConstant, identifier)
	}
	for featureIndex, feature := range definition.Features {
		if len(strings.TrimSpace(feature)) == 0 {
			return fmt.Errorf(stepFeatureEmptyTemplateConstant, identifier, featureIndex)
		}
	}
	return nil
}

// CatalogStep runs a fixed StepDefinition against an event log.
type CatalogStep struct {
	definition StepDefinition
	eventLog   EventLog
	clock      Clock
}

// NewCatalogStep validates the definition and binds it to the event log.
func NewCatalogStep(definition StepDefinition, eventLog EventLog, clock Clock) (*CatalogStep, error) {
	if eventLog == nil {
		return nil, errors.New(stepEventLogRequiredMessageConstant)
	}
	if validationError := definition.Validate(); validationError != nil {
		return nil, validationError
	}
	if clock == nil {
		clock = SystemClock{}
	}

	boundDefinition := StepDefinition{
		Identifier:    strings.TrimSpace(definition.Identifier),
		Component:     definition.Component,
		StatusMessage: definition.StatusMessage,
		Features:      append([]string{}, definition.Features...),
	}

	return &CatalogStep{definition: boundDefinition, eventLog: eventLog, clock: clock}, nil
}

// Identifier returns the key under which the step reports its status.
func (step *CatalogStep) Identifier() string {
	return step.definition.Identifier
}

// Component returns the component name recorded in the event log.
func (step *CatalogStep) Component() string {
	return step.definition.Component
}

// Run appends the step's event and returns its status. Event log failures are returned unchanged.
func (step *CatalogStep) Run() (StepResult, error) {
	event := newImplementedEvent(step.clock.Now(), step.definition.Component, step.definition.Features)
	if appendError := step.eventLog.Append(event); appendError != nil {
		return StepResult{}, appendError
	}

	return StepResult{
		StepIdentifier: step.definition.Identifier,
		StatusMessage:  step.definition.StatusMessage,
	}, nil
}

// BuildSteps binds each definition to the event log, preserving order.
func BuildSteps(definitions []StepDefinition, eventLog EventLog, clock Clock) ([]Step, error) {
	steps := make([]Step, 0, len(definitions))
	for definitionIndex := range definitions {
		step, stepError := NewCatalogStep(definitions[definitionIndex], eventLog, clock)
		if stepError != nil {
			return nil, stepError
		}
		steps = append(steps, step)
	}
	return steps, nil
}

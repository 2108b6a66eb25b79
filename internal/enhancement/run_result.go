package enhancement

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

const (
	yamlStringTagConstant = "!!str"
	yamlMapTagConstant    = "!!map"
)

// RunResult maps step identifiers to status messages in registration order.
type RunResult struct {
	entries []StepResult
}

// Len reports the number of recorded steps.
func (result RunResult) Len() int {
	return len(result.entries)
}

// Keys returns step identifiers in registration order.
func (result RunResult) Keys() []string {
	keys := make([]string, 0, len(result.entries))
	for _, entry := range result.entries {
		keys = append(keys, entry.StepIdentifier)
	}
	return keys
}

// Status returns the status message recorded for the step identifier.
func (result RunResult) Status(stepIdentifier string) (string, bool) {
	for _, entry := range result.entries {
		if entry.StepIdentifier == stepIdentifier {
			return entry.StatusMessage, true
		}
	}
	return "", false
}

// Entries returns a copy of the recorded step results.
func (result RunResult) Entries() []StepResult {
	return append([]StepResult{}, result.entries...)
}

// MarshalJSON encodes the result as a JSON object whose keys keep registration order.
func (result RunResult) MarshalJSON() ([]byte, error) {
	var objectBuffer bytes.Buffer
	objectBuffer.WriteByte('{')
	for entryIndex, entry := range result.entries {
		if entryIndex > 0 {
			objectBuffer.WriteByte(',')
		}
		keyBytes, keyError := marshalJSONString(entry.StepIdentifier)
		if keyError != nil {
			return nil, keyError
		}
		valueBytes, valueError := marshalJSONString(entry.StatusMessage)
		if valueError != nil {
			return nil, valueError
		}
		objectBuffer.Write(keyBytes)
		objectBuffer.WriteByte(':')
		objectBuffer.Write(valueBytes)
	}
	objectBuffer.WriteByte('}')
	return objectBuffer.Bytes(), nil
}

// MarshalYAML encodes the result as a YAML mapping whose keys keep registration order.
func (result RunResult) MarshalYAML() (any, error) {
	mappingNode := &yaml.Node{Kind: yaml.MappingNode, Tag: yamlMapTagConstant}
	for _, entry := range result.entries {
		mappingNode.Content = append(
			mappingNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: yamlStringTagConstant, Value: entry.StepIdentifier},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: yamlStringTagConstant, Value: entry.StatusMessage},
		)
	}
	return mappingNode, nil
}

func marshalJSONString(value string) ([]byte, error) {
	var valueBuffer bytes.Buffer
	encoder := json.NewEncoder(&valueBuffer)
	encoder.SetEscapeHTML(false)
	if encodeError := encoder.Encode(value); encodeError != nil {
		return nil, encodeError
	}
	return bytes.TrimRight(valueBuffer.Bytes(), "\n"), nil
}

// NewRunResult builds a RunResult from step results already in registration order.
func NewRunResult(entries ...StepResult) RunResult {
	return RunResult{entries: append([]StepResult{}, entries...)}
}

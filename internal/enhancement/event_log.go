package enhancement

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	eventLogDirectoryPermissionsConstant = 0o755
	eventLogFilePermissionsConstant      = 0o644
	eventLogPathRequiredMessageConstant  = "event log path must be provided"
	eventLogShortWriteMessageConstant    = "event log accepted a partial record"
)

var errEventLogShortWrite = errors.New(eventLogShortWriteMessageConstant)

// EventLog appends enhancement events to durable storage.
type EventLog interface {
	Append(event Event) error
}

// JSONLEventLog appends events as newline-delimited JSON records to a single file.
type JSONLEventLog struct {
	path  string
	mutex sync.Mutex
}

// NewJSONLEventLog constructs an event log writing to the provided file path.
func NewJSONLEventLog(logFilePath string) (*JSONLEventLog, error) {
	trimmedPath := strings.TrimSpace(logFilePath)
	if len(trimmedPath) == 0 {
		return nil, errors.New(eventLogPathRequiredMessageConstant)
	}
	return &JSONLEventLog{path: filepath.Clean(trimmedPath)}, nil
}

// Path reports the file receiving appended events.
func (eventLog *JSONLEventLog) Path() string {
	return eventLog.path
}

// Append serializes the event and writes it as one line with a single append-mode write.
func (eventLog *JSONLEventLog) Append(event Event) error {
	record, encodeError := encodeEventRecord(event)
	if encodeError != nil {
		return eventLog.wrapError(event, encodeError)
	}

	eventLog.mutex.Lock()
	defer eventLog.mutex.Unlock()

	if directoryError := os.MkdirAll(filepath.Dir(eventLog.path), eventLogDirectoryPermissionsConstant); directoryError != nil {
		return eventLog.wrapError(event, directoryError)
	}

	logFile, openError := os.OpenFile(eventLog.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, eventLogFilePermissionsConstant)
	if openError != nil {
		return eventLog.wrapError(event, openError)
	}

	bytesWritten, writeError := logFile.Write(record)
	closeError := logFile.Close()
	switch {
	case writeError != nil:
		return eventLog.wrapError(event, writeError)
	case bytesWritten != len(record):
		return eventLog.wrapError(event, errEventLogShortWrite)
	case closeError != nil:
		return eventLog.wrapError(event, closeError)
	}

	return nil
}

func (eventLog *JSONLEventLog) wrapError(event Event, cause error) error {
	return LogWriteError{LogPath: eventLog.path, Component: event.Component, Cause: cause}
}

func encodeEventRecord(event Event) ([]byte, error) {
	if len(event.Features) == 0 {
		return nil, errEventFeaturesRequired
	}
	for _, feature := range event.Features {
		if len(strings.TrimSpace(feature)) == 0 {
			return nil, errEventFeatureEmpty
		}
	}

	var recordBuffer bytes.Buffer
	encoder := json.NewEncoder(&recordBuffer)
	encoder.SetEscapeHTML(false)
	if encodeError := encoder.Encode(event); encodeError != nil {
		return nil, encodeError
	}

	return recordBuffer.Bytes(), nil
}

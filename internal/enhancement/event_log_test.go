package enhancement_test

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/automation-reporter/internal/enhancement"
)

const (
	testLogFileNameConstant             = "automation.log"
	testBlockingFileNameConstant        = "blocker"
	testNestedDirectoryNameConstant     = "nested"
	testComponentNameConstant           = "Commit Message Enhancement"
	testSecondComponentNameConstant     = "Error Handling"
	testEmojiFeatureConstant            = "🏷️  Smart tagging based on file content"
	testMarkupFeatureConstant           = "Detect <script> & friends"
	testTimestampConstant               = "2025-01-02T03:04:05.678901"
	testConcurrentWriterCountConstant   = 8
	testConcurrentAppendCountConstant   = 25
	testEventLogSubtestTemplateConstant = "%d_%s"
)

type fixedClock struct {
	moment time.Time
}

func (clock fixedClock) Now() time.Time {
	return clock.moment
}

func newTestClock() fixedClock {
	return fixedClock{moment: time.Date(2025, time.January, 2, 3, 4, 5, 678901000, time.Local)}
}

func readEventLog(testInstance *testing.T, logFilePath string) []enhancement.Event {
	testInstance.Helper()

	logFile, openError := os.Open(logFilePath)
	require.NoError(testInstance, openError)
	defer logFile.Close()

	events := []enhancement.Event{}
	scanner := bufio.NewScanner(logFile)
	for scanner.Scan() {
		var event enhancement.Event
		require.NoError(testInstance, json.Unmarshal(scanner.Bytes(), &event))
		events = append(events, event)
	}
	require.NoError(testInstance, scanner.Err())
	return events
}

func TestJSONLEventLogAppendWritesRecords(testInstance *testing.T) {
	logFilePath := filepath.Join(testInstance.TempDir(), testLogFileNameConstant)
	eventLog, constructionError := enhancement.NewJSONLEventLog(logFilePath)
	require.NoError(testInstance, constructionError)
	require.Equal(testInstance, logFilePath, eventLog.Path())

	firstEvent := enhancement.Event{
		Timestamp: testTimestampConstant,
		Component: testComponentNameConstant,
		Features:  []string{testEmojiFeatureConstant, testMarkupFeatureConstant},
		Status:    enhancement.EventStatusImplemented,
	}
	secondEvent := enhancement.Event{
		Timestamp: testTimestampConstant,
		Component: testSecondComponentNameConstant,
		Features:  []string{testMarkupFeatureConstant},
		Status:    enhancement.EventStatusImplemented,
	}

	require.NoError(testInstance, eventLog.Append(firstEvent))
	require.NoError(testInstance, eventLog.Append(secondEvent))

	require.Equal(testInstance, []enhancement.Event{firstEvent, secondEvent}, readEventLog(testInstance, logFilePath))

	rawContent, readError := os.ReadFile(logFilePath)
	require.NoError(testInstance, readError)
	require.True(testInstance, strings.HasSuffix(string(rawContent), "\n"))
	require.Contains(testInstance, string(rawContent), testEmojiFeatureConstant)
	require.Contains(testInstance, string(rawContent), testMarkupFeatureConstant)
	require.True(testInstance, strings.HasPrefix(string(rawContent), `{"timestamp":"`+testTimestampConstant+`","component":"`))
}

func TestJSONLEventLogCreatesParentDirectories(testInstance *testing.T) {
	logFilePath := filepath.Join(testInstance.TempDir(), testNestedDirectoryNameConstant, testNestedDirectoryNameConstant, testLogFileNameConstant)
	eventLog, constructionError := enhancement.NewJSONLEventLog(logFilePath)
	require.NoError(testInstance, constructionError)

	appendError := eventLog.Append(enhancement.Event{
		Timestamp: testTimestampConstant,
		Component: testComponentNameConstant,
		Features:  []string{testEmojiFeatureConstant},
		Status:    enhancement.EventStatusImplemented,
	})
	require.NoError(testInstance, appendError)
	require.Len(testInstance, readEventLog(testInstance, logFilePath), 1)
}

func TestJSONLEventLogAppendFailures(testInstance *testing.T) {
	testCases := []struct {
		name         string
		prepare      func(testInstance *testing.T) string
		features     []string
		expectedFile bool
	}{
		{
			name: "parent_path_is_a_file",
			prepare: func(testInstance *testing.T) string {
				blockingFilePath := filepath.Join(testInstance.TempDir(), testBlockingFileNameConstant)
				require.NoError(testInstance, os.WriteFile(blockingFilePath, []byte("occupied"), 0o600))
				return filepath.Join(blockingFilePath, testLogFileNameConstant)
			},
			features: []string{testEmojiFeatureConstant},
		},
		{
			name: "log_path_is_a_directory",
			prepare: func(testInstance *testing.T) string {
				directoryPath := filepath.Join(testInstance.TempDir(), testLogFileNameConstant)
				require.NoError(testInstance, os.MkdirAll(directoryPath, 0o755))
				return directoryPath
			},
			features: []string{testEmojiFeatureConstant},
		},
		{
			name: "empty_feature_list",
			prepare: func(testInstance *testing.T) string {
				return filepath.Join(testInstance.TempDir(), testLogFileNameConstant)
			},
			features: nil,
		},
		{
			name: "blank_feature",
			prepare: func(testInstance *testing.T) string {
				return filepath.Join(testInstance.TempDir(), testLogFileNameConstant)
			},
			features: []string{testEmojiFeatureConstant, "   "},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testEventLogSubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			logFilePath := testCase.prepare(testInstance)
			eventLog, constructionError := enhancement.NewJSONLEventLog(logFilePath)
			require.NoError(testInstance, constructionError)

			appendError := eventLog.Append(enhancement.Event{
				Timestamp: testTimestampConstant,
				Component: testComponentNameConstant,
				Features:  testCase.features,
				Status:    enhancement.EventStatusImplemented,
			})
			require.Error(testInstance, appendError)

			var logWriteError enhancement.LogWriteError
			require.True(testInstance, errors.As(appendError, &logWriteError))
			require.Equal(testInstance, logFilePath, logWriteError.LogPath)
			require.Equal(testInstance, testComponentNameConstant, logWriteError.Component)
			require.Error(testInstance, errors.Unwrap(appendError))
			require.Contains(testInstance, appendError.Error(), testComponentNameConstant)
		})
	}
}

func TestJSONLEventLogConcurrentAppendsKeepRecordsIntact(testInstance *testing.T) {
	logFilePath := filepath.Join(testInstance.TempDir(), testLogFileNameConstant)
	eventLog, constructionError := enhancement.NewJSONLEventLog(logFilePath)
	require.NoError(testInstance, constructionError)

	longFeature := strings.Repeat(testEmojiFeatureConstant, 64)

	var waitGroup sync.WaitGroup
	appendErrors := make(chan error, testConcurrentWriterCountConstant*testConcurrentAppendCountConstant)
	for writerIndex := 0; writerIndex < testConcurrentWriterCountConstant; writerIndex++ {
		waitGroup.Add(1)
		go func(writerIndex int) {
			defer waitGroup.Done()
			for appendIndex := 0; appendIndex < testConcurrentAppendCountConstant; appendIndex++ {
				appendErrors <- eventLog.Append(enhancement.Event{
					Timestamp: testTimestampConstant,
					Component: fmt.Sprintf("writer-%d", writerIndex),
					Features:  []string{longFeature, fmt.Sprintf("append-%d", appendIndex)},
					Status:    enhancement.EventStatusImplemented,
				})
			}
		}(writerIndex)
	}
	waitGroup.Wait()
	close(appendErrors)

	for appendError := range appendErrors {
		require.NoError(testInstance, appendError)
	}

	events := readEventLog(testInstance, logFilePath)
	require.Len(testInstance, events, testConcurrentWriterCountConstant*testConcurrentAppendCountConstant)
	for _, event := range events {
		require.Equal(testInstance, longFeature, event.Features[0])
	}
}

func TestNewJSONLEventLogRequiresPath(testInstance *testing.T) {
	eventLog, constructionError := enhancement.NewJSONLEventLog("   ")
	require.Error(testInstance, constructionError)
	require.Nil(testInstance, eventLog)
}

func TestFormatTimestampUsesMicrosecondPrecision(testInstance *testing.T) {
	require.Equal(testInstance, testTimestampConstant, enhancement.FormatTimestamp(newTestClock().Now()))
}

package enhancement

import "time"

const (
	eventTimestampLayoutConstant = "2006-01-02T15:04:05.000000"
)

// EventStatus enumerates the lifecycle states recorded for enhancement events.
type EventStatus string

// Supported event statuses.
const (
	EventStatusImplemented EventStatus = EventStatus("implemented")
)

// Event models a single enhancement record persisted to the event log.
type Event struct {
	Timestamp string      `json:"timestamp"`
	Component string      `json:"component"`
	Features  []string    `json:"features"`
	Status    EventStatus `json:"status"`
}

// Clock abstracts time-dependent functionality for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the standard library.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FormatTimestamp renders an event timestamp as local ISO-8601 time with microsecond precision.
func FormatTimestamp(moment time.Time) string {
	return moment.Format(eventTimestampLayoutConstant)
}

func newImplementedEvent(moment time.Time, component string, features []string) Event {
	return Event{
		Timestamp: FormatTimestamp(moment),
		Component: component,
		Features:  append([]string{}, features...),
		Status:    EventStatusImplemented,
	}
}

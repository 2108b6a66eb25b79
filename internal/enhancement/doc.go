// Package enhancement implements the enhancement pipeline used by the
// automation reporter.
//
// It exposes EventLog for the append-only JSON lines record of enhancement
// events, Step and CatalogStep for the runnable enhancement units, and Pipeline
// for executing registered steps in order and collecting their statuses.
package enhancement

// Package ui provides helpers for formatting human-readable console output.
//
// The helpers translate enhancement step events into concise messages so that
// pipeline progress stays readable for CLI users while detailed telemetry
// continues to flow through structured loggers.
package ui

// Package workspace describes the workspace the automation reporter operates on:
// its root directory, the repositories it contains, and the location of the
// enhancement event log.
package workspace

// Package report assembles workspace automation reports.
//
// Generator runs the enhancement pipeline and merges its statuses with the
// configured catalog and repository count. Renderer implementations encode the
// resulting Report as Markdown, YAML, or JSON.
package report

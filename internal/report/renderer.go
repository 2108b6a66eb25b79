package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"gopkg.in/yaml.v3"
)

const (
	formatMarkdownStringConstant           = "markdown"
	formatYAMLStringConstant               = "yaml"
	formatJSONStringConstant               = "json"
	unsupportedFormatTemplateConstant      = "unsupported report format: %s"
	yamlIndentConstant                     = 2
	jsonIndentConstant                     = "  "
	markdownTitleConstant                  = "Workspace Automation Report"
	markdownPropertyHeaderConstant         = "Property"
	markdownValueHeaderConstant            = "Value"
	markdownWorkspaceStatusLabelConstant   = "Workspace Status"
	markdownRepositoriesLabelConstant      = "Total Repositories"
	markdownEnhancementsHeadingConstant    = "Recent Enhancements"
	markdownStepHeaderConstant             = "Step"
	markdownStatusHeaderConstant           = "Status"
	markdownFeaturesHeadingConstant        = "Available Features"
	markdownImprovementsHeadingConstant    = "Planned Improvements"
	markdownEmptySectionMessageConstant    = "None."
	markdownStepIdentifierTemplateConstant = "`%s`"
)

// Format identifies a report encoding.
type Format string

// Supported report formats.
const (
	FormatMarkdown Format = Format(formatMarkdownStringConstant)
	FormatYAML     Format = Format(formatYAMLStringConstant)
	FormatJSON     Format = Format(formatJSONStringConstant)
)

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf(unsupportedFormatTemplateConstant, raw)
	}
}

// UnmarshalText lets configuration decoding validate format names.
func (format *Format) UnmarshalText(text []byte) error {
	parsed, parseError := ParseFormat(string(text))
	if parseError != nil {
		return parseError
	}
	*format = parsed
	return nil
}

// Renderer writes a report to an output stream.
type Renderer interface {
	Render(writer io.Writer, generatedReport Report) error
}

// NewRenderer returns the renderer for the requested format.
func NewRenderer(format Format) (Renderer, error) {
	switch format {
	case FormatMarkdown:
		return markdownRenderer{}, nil
	case FormatYAML:
		return yamlRenderer{}, nil
	case FormatJSON:
		return jsonRenderer{}, nil
	default:
		return nil, fmt.Errorf(unsupportedFormatTemplateConstant, format)
	}
}

type markdownRenderer struct{}

func (markdownRenderer) Render(writer io.Writer, generatedReport Report) error {
	document := markdown.NewMarkdown(writer)

	document.H1(markdownTitleConstant)
	document.PlainText("")
	document.Table(markdown.TableSet{
		Header: []string{markdownPropertyHeaderConstant, markdownValueHeaderConstant},
		Rows: [][]string{
			{markdownWorkspaceStatusLabelConstant, string(generatedReport.WorkspaceStatus)},
			{markdownRepositoriesLabelConstant, strconv.Itoa(generatedReport.TotalRepositories)},
		},
	})
	document.PlainText("")

	document.H2(markdownEnhancementsHeadingConstant)
	document.PlainText("")
	if generatedReport.RecentEnhancements.Len() == 0 {
		document.PlainText(markdownEmptySectionMessageConstant)
	} else {
		rows := make([][]string, 0, generatedReport.RecentEnhancements.Len())
		for _, entry := range generatedReport.RecentEnhancements.Entries() {
			rows = append(rows, []string{fmt.Sprintf(markdownStepIdentifierTemplateConstant, entry.StepIdentifier), entry.StatusMessage})
		}
		document.Table(markdown.TableSet{
			Header: []string{markdownStepHeaderConstant, markdownStatusHeaderConstant},
			Rows:   rows,
		})
	}
	document.PlainText("")

	writeMarkdownList(document, markdownFeaturesHeadingConstant, generatedReport.AutomationFeatures)
	writeMarkdownList(document, markdownImprovementsHeadingConstant, generatedReport.NextImprovements)

	return document.Build()
}

func writeMarkdownList(document *markdown.Markdown, heading string, entries []string) {
	document.H2(heading)
	document.PlainText("")
	if len(entries) == 0 {
		document.PlainText(markdownEmptySectionMessageConstant)
	} else {
		document.BulletList(entries...)
	}
	document.PlainText("")
}

type yamlRenderer struct{}

func (yamlRenderer) Render(writer io.Writer, generatedReport Report) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(yamlIndentConstant)
	if encodeError := encoder.Encode(generatedReport); encodeError != nil {
		return encodeError
	}
	return encoder.Close()
}

type jsonRenderer struct{}

func (jsonRenderer) Render(writer io.Writer, generatedReport Report) error {
	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", jsonIndentConstant)
	return encoder.Encode(generatedReport)
}

// Package output provides formatters for cheat sheet tables and lint reports.
package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/reglet-dev/ariasheet/internal/application/ports"
)

// ErrUnsupportedResult is returned when a format cannot represent a result,
// for example a role table as SARIF.
var ErrUnsupportedResult = errors.New("result not supported by this format")

// FormatterFactory creates formatters by format name.
type FormatterFactory struct{}

// NewFormatterFactory creates a new formatter factory.
func NewFormatterFactory() *FormatterFactory {
	return &FormatterFactory{}
}

// Create returns a formatter for the given format name.
func (f *FormatterFactory) Create(
	format string,
	writer io.Writer,
	options ports.FormatterOptions,
) (ports.OutputFormatter, error) {
	switch format {
	case "table":
		return NewTableFormatter(writer, options.Color), nil
	case "json":
		return NewJSONFormatter(writer, options.Indent), nil
	case "yaml":
		return NewYAMLFormatter(writer), nil
	case "markdown":
		return NewMarkdownFormatter(writer), nil
	case "sarif":
		return NewSARIFFormatter(writer, options.ToolVersion), nil
	default:
		return nil, fmt.Errorf(
			"unknown format: %s (supported: %v)",
			format, f.SupportedFormats(),
		)
	}
}

// SupportedFormats returns list of available format names.
func (f *FormatterFactory) SupportedFormats() []string {
	return []string{"table", "json", "yaml", "markdown", "sarif"}
}

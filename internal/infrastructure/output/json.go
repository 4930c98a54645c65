package output

import (
	"encoding/json"
	"io"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
)

// JSONFormatter writes results as JSON documents.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

func (f *JSONFormatter) FormatElements(resp *dto.ElementTableResponse) error {
	return f.write(resp)
}

// FormatMatrix writes the same document as FormatElements.
func (f *JSONFormatter) FormatMatrix(resp *dto.ElementTableResponse) error {
	return f.write(resp)
}

// FormatPermittedRoles writes the same document as FormatElements; the role
// flags are part of every row.
func (f *JSONFormatter) FormatPermittedRoles(resp *dto.ElementTableResponse) error {
	return f.write(resp)
}

func (f *JSONFormatter) FormatRoles(resp *dto.RoleTableResponse) error {
	return f.write(resp)
}

func (f *JSONFormatter) FormatLookup(resp *dto.LookupResponse) error {
	return f.write(resp)
}

// FormatLint writes one report as an object and several as an array.
func (f *JSONFormatter) FormatLint(reports []*entities.LintReport) error {
	if len(reports) == 1 {
		return f.write(reports[0])
	}
	return f.write(reports)
}

func (f *JSONFormatter) write(v any) error {
	var data []byte
	var err error

	if f.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	if _, err := f.writer.Write(data); err != nil {
		return err
	}

	// Add newline for better terminal output
	_, err = f.writer.Write([]byte("\n"))
	return err
}

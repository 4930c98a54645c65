package output

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
)

// YAMLFormatter writes results as YAML documents.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

func (f *YAMLFormatter) FormatElements(resp *dto.ElementTableResponse) error {
	return f.write(resp)
}

func (f *YAMLFormatter) FormatMatrix(resp *dto.ElementTableResponse) error {
	return f.write(resp)
}

func (f *YAMLFormatter) FormatPermittedRoles(resp *dto.ElementTableResponse) error {
	return f.write(resp)
}

func (f *YAMLFormatter) FormatRoles(resp *dto.RoleTableResponse) error {
	return f.write(resp)
}

func (f *YAMLFormatter) FormatLookup(resp *dto.LookupResponse) error {
	return f.write(resp)
}

func (f *YAMLFormatter) FormatLint(reports []*entities.LintReport) error {
	return f.write(reports)
}

func (f *YAMLFormatter) write(v any) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
)

// MarkdownFormatter renders results as GitHub flavored markdown tables.
type MarkdownFormatter struct {
	writer io.Writer
}

// NewMarkdownFormatter creates a new markdown formatter.
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w}
}

func (f *MarkdownFormatter) FormatElements(resp *dto.ElementTableResponse) error {
	var rows [][]string
	for _, row := range resp.Table.Rows {
		rows = append(rows, []string{code(rowLabel(row)), implicitRole(row)})
	}
	return f.write(elementsTitle(resp), []string{"Element", "Implicit role"}, rows)
}

func (f *MarkdownFormatter) FormatMatrix(resp *dto.ElementTableResponse) error {
	headers := []string{"Element"}
	for _, prop := range resp.Table.Props {
		headers = append(headers, code(prop.Name))
	}
	var rows [][]string
	for _, row := range resp.Table.Rows {
		cells := []string{code(rowLabel(row))}
		for _, cell := range row.Props {
			cells = append(cells, cell.Status.Symbol()+" "+cell.Label())
		}
		rows = append(rows, cells)
	}
	return f.write(elementsTitle(resp), headers, rows)
}

func (f *MarkdownFormatter) FormatPermittedRoles(resp *dto.ElementTableResponse) error {
	var rows [][]string
	for _, row := range resp.Table.Rows {
		rows = append(rows, []string{code(rowLabel(row)), implicitRole(row), permittedRoles(resp.Table, row)})
	}
	return f.write(elementsTitle(resp), []string{"Element", "Implicit role", "Permitted roles"}, rows)
}

func (f *MarkdownFormatter) FormatRoles(resp *dto.RoleTableResponse) error {
	headers := []string{"Role"}
	for _, prop := range resp.Table.Props {
		headers = append(headers, code(prop.Name))
	}
	var rows [][]string
	for _, row := range resp.Table.Rows {
		cells := []string{row.Name}
		for _, o := range row.Props {
			cells = append(cells, o.String())
		}
		rows = append(rows, cells)
	}
	title := fmt.Sprintf("WAI-ARIA %s roles (dataset %s)", resp.Table.Version, resp.DatasetVersion)
	return f.write(title, headers, rows)
}

func (f *MarkdownFormatter) FormatLookup(resp *dto.LookupResponse) error {
	var rows [][]string
	for _, variant := range resp.Variants {
		for _, cell := range variant.Properties {
			rows = append(rows, []string{
				code(resp.Element + variant.Condition), code(cell.Property),
				symbolFor(cell.Verdict) + " " + cell.Label,
			})
		}
	}
	return f.write(fmt.Sprintf("%s in WAI-ARIA %s", code(resp.Element), resp.Version),
		[]string{"Element", "Property", "Status"}, rows)
}

func (f *MarkdownFormatter) FormatLint(reports []*entities.LintReport) error {
	var rows [][]string
	for _, report := range reports {
		for _, finding := range report.Findings {
			rows = append(rows, []string{
				fmt.Sprintf("%s:%d:%d", report.Source, finding.Line, finding.Column),
				string(finding.Level), code(finding.Rule), finding.Message,
			})
		}
	}
	return f.write("Lint findings", []string{"Location", "Level", "Rule", "Message"}, rows)
}

func (f *MarkdownFormatter) write(title string, headers []string, rows [][]string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)

	writeRow(&b, headers)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(&b, sep)
	for _, row := range rows {
		writeRow(&b, row)
	}

	_, err := io.WriteString(f.writer, b.String())
	return err
}

func writeRow(b *strings.Builder, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	fmt.Fprintf(b, "| %s |\n", strings.Join(escaped, " | "))
}

func code(s string) string {
	return "`" + s + "`"
}

func elementsTitle(resp *dto.ElementTableResponse) string {
	return fmt.Sprintf("WAI-ARIA %s: %d Elements (%d Patterns), dataset %s",
		resp.Table.Version, resp.Elements, resp.Patterns, resp.DatasetVersion)
}

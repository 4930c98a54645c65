package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

var (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorGray   = lipgloss.Color("8")
)

// TableFormatter renders results as terminal tables.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool

	renderer *lipgloss.Renderer
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer, color bool) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: color,
		renderer:    lipgloss.NewRenderer(w),
	}
}

// style returns a style with the foreground set when color is enabled.
func (f *TableFormatter) style(c lipgloss.Color) lipgloss.Style {
	s := f.renderer.NewStyle()
	if f.EnableColor {
		s = s.Foreground(c)
	}
	return s
}

func (f *TableFormatter) verdictStyle(v values.Verdict) lipgloss.Style {
	switch v {
	case values.VerdictAllowed:
		return f.style(colorGreen)
	case values.VerdictWarning:
		return f.style(colorYellow)
	default:
		return f.style(colorRed)
	}
}

func (f *TableFormatter) newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.style(colorGray)).
		Headers(headers...)
}

// FormatElements lists the element variants with their implicit role and
// verdict counts.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatElements(resp *dto.ElementTableResponse) error {
	t := f.newTable("Element", "Implicit role", "Allowed", "Warning", "Disallowed")
	for _, row := range resp.Table.Rows {
		counts := map[values.Verdict]int{}
		for _, cell := range row.Props {
			counts[cell.Status.Verdict()]++
		}
		t.Row(rowLabel(row), implicitRole(row),
			fmt.Sprint(counts[values.VerdictAllowed]),
			fmt.Sprint(counts[values.VerdictWarning]),
			fmt.Sprint(counts[values.VerdictDisallowed]))
	}

	fmt.Fprintln(f.writer, t.Render())
	f.footer(resp)
	return nil
}

// FormatMatrix renders the element x property matrix with one mark per cell.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatMatrix(resp *dto.ElementTableResponse) error {
	headers := []string{"Element"}
	for _, prop := range resp.Table.Props {
		headers = append(headers, strings.TrimPrefix(prop.Name, "aria-"))
	}

	rows := resp.Table.Rows
	t := f.newTable(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 || row >= len(rows) {
				return f.renderer.NewStyle().Padding(0, 1)
			}
			return f.verdictStyle(rows[row].Props[col-1].Status.Verdict()).Padding(0, 1)
		})
	for _, row := range rows {
		cells := []string{rowLabel(row)}
		for _, cell := range row.Props {
			cells = append(cells, cell.Status.Symbol())
		}
		t.Row(cells...)
	}

	fmt.Fprintln(f.writer, t.Render())
	fmt.Fprintf(f.writer, "%s allowed  %s warning  %s disallowed\n",
		values.StatusGlobal.Symbol(), values.StatusDeprecated.Symbol(), values.StatusNoAria.Symbol())
	f.footer(resp)
	return nil
}

// FormatPermittedRoles lists the roles each element variant may take.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatPermittedRoles(resp *dto.ElementTableResponse) error {
	t := f.newTable("Element", "Implicit role", "Permitted roles")
	for _, row := range resp.Table.Rows {
		t.Row(rowLabel(row), implicitRole(row), permittedRoles(resp.Table, row))
	}

	fmt.Fprintln(f.writer, t.Render())
	f.footer(resp)
	return nil
}

// FormatRoles lists, per role, the properties it owns.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatRoles(resp *dto.RoleTableResponse) error {
	t := f.newTable("Role", "Required", "Owned", "Deprecated")
	for _, row := range resp.Table.Rows {
		byOwnership := map[entities.Ownership][]string{}
		for i, o := range row.Props {
			byOwnership[o] = append(byOwnership[o], resp.Table.Props[i].Name)
		}
		name := row.Name
		if row.Abstract {
			name += " (abstract)"
		}
		t.Row(name,
			strings.Join(byOwnership[entities.OwnedRequired], " "),
			strings.Join(byOwnership[entities.Owned], " "),
			strings.Join(byOwnership[entities.OwnedDeprecated], " "))
	}

	fmt.Fprintln(f.writer, t.Render())
	fmt.Fprintf(f.writer, "%d Roles | WAI-ARIA %s | dataset %s\n",
		len(resp.Table.Rows), resp.Table.Version, resp.DatasetVersion)
	return nil
}

// FormatLookup prints one table per element variant.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatLookup(resp *dto.LookupResponse) error {
	for i, variant := range resp.Variants {
		if i > 0 {
			fmt.Fprintln(f.writer)
		}
		title := resp.Element
		if variant.Condition != "" {
			title += " " + variant.Condition
		}
		role := variant.ImplicitRole
		if role == "" {
			role = "none"
		}
		fmt.Fprintf(f.writer, "%s (implicit role: %s, WAI-ARIA %s)\n", title, role, resp.Version)

		cells := variant.Properties
		t := f.newTable("Property", "", "Status").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow || col != 1 || row >= len(cells) {
					return f.renderer.NewStyle().Padding(0, 1)
				}
				return f.verdictStyle(cells[row].Verdict).Padding(0, 1)
			})
		for _, cell := range cells {
			t.Row(cell.Property, symbolFor(cell.Verdict), cell.Label)
		}
		fmt.Fprintln(f.writer, t.Render())
	}
	return nil
}

// FormatLint prints findings as compiler style lines followed by a summary.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatLint(reports []*entities.LintReport) error {
	errs, warnings := 0, 0
	for _, report := range reports {
		for _, finding := range report.Findings {
			level := f.style(colorYellow).Render(string(finding.Level))
			if finding.Level == entities.LevelError {
				level = f.style(colorRed).Render(string(finding.Level))
			}
			fmt.Fprintf(f.writer, "%s:%d:%d: %s: %s [%s]\n",
				report.Source, finding.Line, finding.Column, level, finding.Message, finding.Rule)
		}
		errs += report.Errors()
		warnings += report.Warnings()
	}

	summary := fmt.Sprintf("%d file(s) checked: %d error(s), %d warning(s)", len(reports), errs, warnings)
	if errs == 0 {
		summary = f.style(colorGreen).Render(summary)
	}
	fmt.Fprintln(f.writer, summary)
	return nil
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) footer(resp *dto.ElementTableResponse) {
	fmt.Fprintf(f.writer, "%d Elements (%d Patterns) | WAI-ARIA %s | dataset %s\n",
		resp.Elements, resp.Patterns, resp.Table.Version, resp.DatasetVersion)
}

// rowLabel renders a row as its tag name followed by its condition selector.
func rowLabel(row entities.ElementRow) string {
	label := row.Name.String()
	if row.Condition != "" {
		label += row.Condition
	}
	if row.Deprecated {
		label += " (deprecated)"
	}
	return label
}

func implicitRole(row entities.ElementRow) string {
	if row.ImplicitRole == "" {
		return "none"
	}
	return row.ImplicitRole
}

// permittedRoles lists the concrete roles a row permits; abstract roles are
// never usable in markup.
func permittedRoles(t entities.ElementTable, row entities.ElementRow) string {
	var names []string
	for i, ok := range row.Roles {
		if ok && !t.Roles[i].Abstract {
			names = append(names, t.Roles[i].Name)
		}
	}
	switch {
	case len(names) == 0:
		return "none"
	case len(names) == countConcrete(t.Roles):
		return "any"
	default:
		return strings.Join(names, ", ")
	}
}

func countConcrete(roles []entities.RoleHeader) int {
	n := 0
	for _, r := range roles {
		if !r.Abstract {
			n++
		}
	}
	return n
}

func symbolFor(v values.Verdict) string {
	switch v {
	case values.VerdictAllowed:
		return values.StatusGlobal.Symbol()
	case values.VerdictWarning:
		return values.StatusDeprecated.Symbol()
	default:
		return values.StatusNoAria.Symbol()
	}
}

package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
)

const (
	sarifToolName = "ariasheet"
	sarifToolURI  = "https://github.com/reglet-dev/ariasheet"
)

// lintRules describes every rule the linter can report, in a stable order.
var lintRules = []struct {
	id          string
	description string
	level       entities.FindingLevel
}{
	{entities.RulePropDisallowed, "The aria-* attribute is not allowed on this element", entities.LevelError},
	{entities.RulePropDiscouraged, "The aria-* attribute is allowed but discouraged on this element", entities.LevelWarning},
	{entities.RulePropUnknown, "The aria-* attribute is not defined by WAI-ARIA", entities.LevelError},
	{entities.RuleRoleNotAllowed, "The role is not permitted on this element", entities.LevelError},
	{entities.RuleRoleUnknown, "The role is not defined by WAI-ARIA", entities.LevelError},
	{entities.RuleRoleRedundant, "The role repeats the element's implicit role", entities.LevelWarning},
}

// SARIFFormatter writes lint reports as SARIF 2.1.0 JSON. Tables have no
// SARIF representation.
//
// Usage:
//
//	formatter := output.NewSARIFFormatter(os.Stdout, version.Version)
//	if err := formatter.FormatLint(reports); err != nil {
//	    log.Fatal(err)
//	}
type SARIFFormatter struct {
	writer      io.Writer
	toolVersion string
	cwd         string
}

// NewSARIFFormatter creates a new SARIF formatter.
func NewSARIFFormatter(writer io.Writer, toolVersion string) *SARIFFormatter {
	cwd, _ := os.Getwd() // Best effort, ignore error
	return &SARIFFormatter{
		writer:      writer,
		toolVersion: toolVersion,
		cwd:         cwd,
	}
}

func (f *SARIFFormatter) FormatElements(*dto.ElementTableResponse) error {
	return fmt.Errorf("sarif: element table: %w", ErrUnsupportedResult)
}

func (f *SARIFFormatter) FormatMatrix(*dto.ElementTableResponse) error {
	return fmt.Errorf("sarif: element matrix: %w", ErrUnsupportedResult)
}

func (f *SARIFFormatter) FormatPermittedRoles(*dto.ElementTableResponse) error {
	return fmt.Errorf("sarif: permitted roles: %w", ErrUnsupportedResult)
}

func (f *SARIFFormatter) FormatRoles(*dto.RoleTableResponse) error {
	return fmt.Errorf("sarif: role table: %w", ErrUnsupportedResult)
}

func (f *SARIFFormatter) FormatLookup(*dto.LookupResponse) error {
	return fmt.Errorf("sarif: lookup: %w", ErrUnsupportedResult)
}

// FormatLint writes all reports as a single SARIF run.
func (f *SARIFFormatter) FormatLint(reports []*entities.LintReport) error {
	report := sarif.NewReport()

	run := sarif.NewRunWithInformationURI(sarifToolName, sarifToolURI)
	if f.toolVersion != "" {
		run.Tool.Driver.Version = &f.toolVersion
	}
	f.addRules(run)

	for _, lint := range reports {
		uri := f.normalizeURI(lint.Source)
		for _, finding := range lint.Findings {
			run.AddResult(f.mapFinding(uri, lint, finding))
		}
	}

	report.AddRun(run)

	if err := report.Write(f.writer); err != nil {
		return fmt.Errorf("failed to write SARIF output: %w", err)
	}
	_, err := f.writer.Write([]byte("\n"))
	return err
}

func (f *SARIFFormatter) addRules(run *sarif.Run) {
	for _, r := range lintRules {
		description := r.description
		rule := sarif.NewReportingDescriptor().WithID(r.id)
		rule.WithName(r.id)
		rule.WithShortDescription(&sarif.MultiformatMessageString{
			Text: &description,
		})
		rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{
			Level: string(r.level),
		})
		run.Tool.Driver.AddRule(rule)
	}
}

func (f *SARIFFormatter) mapFinding(uri string, lint *entities.LintReport, finding entities.Finding) *sarif.Result {
	result := sarif.NewRuleResult(finding.Rule)
	result.Level = string(finding.Level)
	result.Message = sarif.NewTextMessage(finding.Message)

	region := sarif.NewRegion().WithStartLine(finding.Line)
	if finding.Column > 0 {
		region.WithStartColumn(finding.Column)
	}
	pLoc := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithURI(uri)).
		WithRegion(region)
	result.Locations = []*sarif.Location{sarif.NewLocation().WithPhysicalLocation(pLoc)}

	props := sarif.NewPropertyBag()
	props.Add("element", finding.Element)
	props.Add("attribute", finding.Attribute)
	props.Add("ariaVersion", lint.Version.String())
	if finding.Condition != "" {
		props.Add("condition", finding.Condition)
	}
	if finding.Status != nil {
		props.Add("status", finding.Status.String())
	}
	result.WithProperties(props)

	return result
}

// normalizeURI converts a file path to a SARIF-compliant URI, relative to
// the working directory when possible.
func (f *SARIFFormatter) normalizeURI(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}

	if f.cwd != "" {
		if rel, err := filepath.Rel(f.cwd, abs); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return "file://" + filepath.ToSlash(abs)
}

package entities

import (
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

// Tag is one start tag of an HTML document.
type Tag struct {
	Name   string
	Attrs  []TagAttr
	Line   int
	Column int
}

// TagAttr is an attribute as written in the document.
type TagAttr struct {
	Name  string
	Value string
}

// AttrMap returns the attributes keyed by name. The first occurrence wins,
// as in HTML parsing.
func (t *Tag) AttrMap() map[string]string {
	m := make(map[string]string, len(t.Attrs))
	for _, a := range t.Attrs {
		if _, ok := m[a.Name]; !ok {
			m[a.Name] = a.Value
		}
	}
	return m
}

// FindingLevel is the severity of a lint finding.
type FindingLevel string

const (
	LevelError   FindingLevel = "error"
	LevelWarning FindingLevel = "warning"
)

// Lint rule identifiers, stable for SARIF consumers.
const (
	RulePropDisallowed  = "aria-prop-disallowed"
	RulePropDiscouraged = "aria-prop-discouraged"
	RulePropUnknown     = "aria-prop-unknown"
	RuleRoleNotAllowed  = "role-not-permitted"
	RuleRoleUnknown     = "role-unknown"
	RuleRoleRedundant   = "role-redundant"
)

// Finding is one problem reported for a document.
type Finding struct {
	Rule      string             `json:"rule" yaml:"rule"`
	Level     FindingLevel       `json:"level" yaml:"level"`
	Line      int                `json:"line" yaml:"line"`
	Column    int                `json:"column,omitempty" yaml:"column,omitempty"`
	Element   string             `json:"element" yaml:"element"`
	Condition string             `json:"condition,omitempty" yaml:"condition,omitempty"`
	Attribute string             `json:"attribute" yaml:"attribute"`
	Status    *values.PropStatus `json:"status,omitempty" yaml:"status,omitempty"`
	Message   string             `json:"message" yaml:"message"`
}

// LintReport is the outcome of checking one document.
type LintReport struct {
	Source   string             `json:"source" yaml:"source"`
	Version  values.ARIAVersion `json:"version" yaml:"version"`
	Tags     int                `json:"tags" yaml:"tags"`
	Findings []Finding          `json:"findings" yaml:"findings"`
}

// Errors counts error level findings.
func (r *LintReport) Errors() int {
	return r.count(LevelError)
}

// Warnings counts warning level findings.
func (r *LintReport) Warnings() int {
	return r.count(LevelWarning)
}

// HasErrors reports whether the document failed the check.
func (r *LintReport) HasErrors() bool {
	return r.Errors() > 0
}

func (r *LintReport) count(level FindingLevel) int {
	n := 0
	for _, f := range r.Findings {
		if f.Level == level {
			n++
		}
	}
	return n
}

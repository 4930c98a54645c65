package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/ariasheet/internal/domain/entities"
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

func tag(name string, line int, attrs ...string) entities.Tag {
	t := entities.Tag{Name: name, Line: line}
	for i := 0; i+1 < len(attrs); i += 2 {
		t.Attrs = append(t.Attrs, entities.TagAttr{Name: attrs[i], Value: attrs[i+1]})
	}
	return t
}

func newFixtureLinter(t *testing.T) *Linter {
	t.Helper()
	table := NewSpecTransformer(loadFixture(t)).ElementTable(values.ARIA12)
	return NewLinter(&table)
}

func Test_Linter_RowFor(t *testing.T) {
	l := newFixtureLinter(t)

	tests := []struct {
		name      string
		tag       entities.Tag
		condition string
	}{
		{"base", tag("input", 1, "type", "text"), ""},
		{"checkbox", tag("input", 1, "type", "checkbox"), "[type=checkbox]"},
		{"submit", tag("input", 1, "type", "submit"), "[type=button], [type=submit]"},
		{"empty_alt", tag("img", 1, "alt", ""), `[alt=""]`},
		{"svg_local_name", tag("circle", 1), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := l.RowFor(&tt.tag)
			require.True(t, ok)
			assert.Equal(t, tt.condition, row.Condition)
		})
	}

	unknown := tag("my-widget", 1)
	_, ok := l.RowFor(&unknown)
	assert.False(t, ok)
}

func Test_Linter_Check(t *testing.T) {
	l := newFixtureLinter(t)

	findings := l.Check([]entities.Tag{
		tag("img", 1, "src", "a.png", "alt", "logo", "aria-label", "Logo"),
		tag("p", 2, "aria-hidden", "true"),
		tag("input", 3, "type", "submit", "aria-disabled", "true"),
		tag("div", 4, "aria-bogus", "x"),
		tag("h1", 5, "role", "button"),
		tag("img", 6, "role", "link"),
		tag("a", 7, "href", "/", "role", "link"),
		tag("div", 8, "role", "nosuchrole"),
		tag("my-widget", 9, "aria-bogus", "x"),
	})

	type summary struct {
		rule  string
		level entities.FindingLevel
		line  int
	}
	var got []summary
	for _, f := range findings {
		got = append(got, summary{f.Rule, f.Level, f.Line})
	}

	assert.Equal(t, []summary{
		{entities.RulePropDisallowed, entities.LevelError, 2},
		{entities.RulePropDiscouraged, entities.LevelWarning, 3},
		{entities.RulePropUnknown, entities.LevelError, 4},
		{entities.RuleRoleNotAllowed, entities.LevelError, 5},
		{entities.RuleRoleRedundant, entities.LevelWarning, 7},
		{entities.RuleRoleUnknown, entities.LevelError, 8},
	}, got)

	require.NotNil(t, findings[0].Status)
	assert.Equal(t, values.StatusNoAria, *findings[0].Status)
	assert.Equal(t, "[type=button], [type=submit]", findings[1].Condition)
	assert.Contains(t, findings[1].Message, "NOT RECOMMENDED")
}

func Test_LintReport_Counts(t *testing.T) {
	report := entities.LintReport{Findings: []entities.Finding{
		{Level: entities.LevelError},
		{Level: entities.LevelWarning},
		{Level: entities.LevelWarning},
	}}
	assert.Equal(t, 1, report.Errors())
	assert.Equal(t, 2, report.Warnings())
	assert.True(t, report.HasErrors())
}

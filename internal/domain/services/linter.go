package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/reglet-dev/ariasheet/internal/domain/entities"
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

// Linter checks document tags against one element table.
type Linter struct {
	table *entities.ElementTable

	mu        sync.Mutex
	selectors map[string]*Selector
}

// NewLinter creates a linter for a version's element table.
func NewLinter(table *entities.ElementTable) *Linter {
	return &Linter{
		table:     table,
		selectors: make(map[string]*Selector),
	}
}

// Check returns the findings for the tags, in document order.
// Elements the table does not know are skipped.
func (l *Linter) Check(tags []entities.Tag) []entities.Finding {
	var findings []entities.Finding
	for i := range tags {
		findings = append(findings, l.checkTag(&tags[i])...)
	}
	return findings
}

// RowFor picks the row describing a tag: the first conditional pattern whose
// selector matches, else the element's base row.
func (l *Linter) RowFor(tag *entities.Tag) (*entities.ElementRow, bool) {
	rows := l.table.RowsFor(strings.ToLower(tag.Name))
	if len(rows) == 0 {
		return nil, false
	}

	subject := SelectorSubject{Tag: tag.Name, Attrs: tag.AttrMap()}
	for i := range rows {
		if !rows[i].IsConditional() {
			continue
		}
		if sel := l.compiled(rows[i].Condition); sel != nil && sel.Matches(subject) {
			return &rows[i], true
		}
	}
	for i := range rows {
		if !rows[i].IsConditional() {
			return &rows[i], true
		}
	}
	return &rows[0], true
}

// compiled returns a cached selector, nil for selectors that cannot be
// evaluated on a single tag.
func (l *Linter) compiled(source string) *Selector {
	l.mu.Lock()
	defer l.mu.Unlock()

	if sel, ok := l.selectors[source]; ok {
		return sel
	}
	sel, err := CompileSelector(source)
	if err != nil {
		sel = nil
	}
	l.selectors[source] = sel
	return sel
}

func (l *Linter) checkTag(tag *entities.Tag) []entities.Finding {
	row, ok := l.RowFor(tag)
	if !ok {
		return nil
	}

	var findings []entities.Finding
	finding := func(rule string, level entities.FindingLevel, attr, msg string) entities.Finding {
		return entities.Finding{
			Rule:      rule,
			Level:     level,
			Line:      tag.Line,
			Column:    tag.Column,
			Element:   row.Name.String(),
			Condition: row.Condition,
			Attribute: attr,
			Message:   msg,
		}
	}

	seen := make(map[string]bool, len(tag.Attrs))
	for _, attr := range tag.Attrs {
		name := strings.ToLower(attr.Name)
		if seen[name] {
			continue
		}
		seen[name] = true

		switch {
		case strings.HasPrefix(name, "aria-"):
			idx := l.table.PropIndex(name)
			if idx < 0 {
				findings = append(findings, finding(entities.RulePropUnknown, entities.LevelError, name,
					fmt.Sprintf("%s is not a WAI-ARIA %s attribute", name, l.table.Version)))
				continue
			}
			cell := row.Props[idx]
			var f entities.Finding
			switch cell.Status.Verdict() {
			case values.VerdictDisallowed:
				f = finding(entities.RulePropDisallowed, entities.LevelError, name,
					fmt.Sprintf("%s is not allowed on %s: %s", name, describeRow(row), cell.Label()))
			case values.VerdictWarning:
				f = finding(entities.RulePropDiscouraged, entities.LevelWarning, name,
					fmt.Sprintf("%s on %s: %s", name, describeRow(row), cell.Label()))
			default:
				continue
			}
			status := cell.Status
			f.Status = &status
			findings = append(findings, f)

		case name == "role":
			findings = append(findings, l.checkRoles(row, attr.Value, finding)...)
		}
	}
	return findings
}

func (l *Linter) checkRoles(
	row *entities.ElementRow,
	value string,
	finding func(rule string, level entities.FindingLevel, attr, msg string) entities.Finding,
) []entities.Finding {
	var findings []entities.Finding
	for _, role := range strings.Fields(strings.ToLower(value)) {
		idx := l.table.RoleIndex(role)
		switch {
		case idx < 0:
			findings = append(findings, finding(entities.RuleRoleUnknown, entities.LevelError, "role",
				fmt.Sprintf("%q is not a WAI-ARIA %s role", role, l.table.Version)))
		case role == row.ImplicitRole:
			findings = append(findings, finding(entities.RuleRoleRedundant, entities.LevelWarning, "role",
				fmt.Sprintf("%q is already the implicit role of %s", role, describeRow(row))))
		case !row.Roles[idx]:
			findings = append(findings, finding(entities.RuleRoleNotAllowed, entities.LevelError, "role",
				fmt.Sprintf("role %q is not permitted on %s", role, describeRow(row))))
		}
	}
	return findings
}

func describeRow(row *entities.ElementRow) string {
	return "<" + row.Name.String() + row.Condition + ">"
}

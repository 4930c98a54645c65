package entities

import (
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

// PropHeader is a column of the element x property table.
type PropHeader struct {
	Name   string `json:"name" yaml:"name"`
	Global bool   `json:"global,omitempty" yaml:"global,omitempty"`
}

// RoleHeader is a column of the element x role table.
type RoleHeader struct {
	Name     string `json:"name" yaml:"name"`
	Abstract bool   `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}

// PropCell is the classification of one property for one row.
// Ref carries the role or attribute name named by the status, if any.
type PropCell struct {
	Status values.PropStatus `json:"status" yaml:"status"`
	Ref    string            `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// Label returns the human readable cell text.
func (c PropCell) Label() string {
	return c.Status.Describe(c.Ref)
}

// ElementRow is one element variant: the element itself or one of its
// conditional patterns.
type ElementRow struct {
	Name values.ElementName `json:"name" yaml:"name"`
	// Condition is the raw condition selector, empty for the base row
	Condition string `json:"condition,omitempty" yaml:"condition,omitempty"`
	// Selectors is Condition split into its top-level selectors
	Selectors    []string   `json:"selectors,omitempty" yaml:"selectors,omitempty"`
	Deprecated   bool       `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	ImplicitRole string     `json:"implicitRole,omitempty" yaml:"implicitRole,omitempty"`
	Props        []PropCell `json:"props" yaml:"props"`
	Roles        []bool     `json:"roles" yaml:"roles"`
}

// IsConditional reports whether the row is a conditional pattern.
func (r *ElementRow) IsConditional() bool {
	return r.Condition != ""
}

// ElementTable is the element x property and element x role matrix for one
// ARIA version.
type ElementTable struct {
	Version values.ARIAVersion `json:"version" yaml:"version"`
	Props   []PropHeader       `json:"props" yaml:"props"`
	Roles   []RoleHeader       `json:"roles" yaml:"roles"`
	Rows    []ElementRow       `json:"rows" yaml:"rows"`
}

// PropIndex returns the column of a property, or -1.
func (t *ElementTable) PropIndex(name string) int {
	for i := range t.Props {
		if t.Props[i].Name == name {
			return i
		}
	}
	return -1
}

// RoleIndex returns the column of a role, or -1.
func (t *ElementTable) RoleIndex(name string) int {
	for i := range t.Roles {
		if t.Roles[i].Name == name {
			return i
		}
	}
	return -1
}

// RowsFor returns the base row followed by the conditional rows of an
// element, matching either the display name or the local tag name.
func (t *ElementTable) RowsFor(tag string) []ElementRow {
	var rows []ElementRow
	for _, row := range t.Rows {
		if row.Name.String() == tag {
			rows = append(rows, row)
		}
	}
	if len(rows) > 0 {
		return rows
	}
	for _, row := range t.Rows {
		if row.Name.Matches(tag) {
			rows = append(rows, row)
		}
	}
	return rows
}

// Ownership is a role x property cell.
type Ownership int

const (
	NotOwned Ownership = iota
	Owned
	OwnedRequired
	OwnedDeprecated
)

// String returns the ownership name
func (o Ownership) String() string {
	switch o {
	case Owned:
		return "owned"
	case OwnedRequired:
		return "required"
	case OwnedDeprecated:
		return "deprecated"
	default:
		return "-"
	}
}

// RoleRow is one role of the role x property table.
type RoleRow struct {
	Name     string      `json:"name" yaml:"name"`
	Abstract bool        `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Props    []Ownership `json:"props" yaml:"props"`
}

// RoleTable is the role x property ownership matrix for one ARIA version.
type RoleTable struct {
	Version values.ARIAVersion `json:"version" yaml:"version"`
	Props   []PropHeader       `json:"props" yaml:"props"`
	Rows    []RoleRow          `json:"rows" yaml:"rows"`
}

// Sheet is the complete cheat sheet across all supported versions.
type Sheet struct {
	DatasetVersion string         `json:"datasetVersion" yaml:"datasetVersion"`
	Elements       []ElementTable `json:"elements" yaml:"elements"`
	Roles          []RoleTable    `json:"roles" yaml:"roles"`
}

// ElementTable returns the element table of a version.
func (s *Sheet) ElementTable(version values.ARIAVersion) (*ElementTable, bool) {
	for i := range s.Elements {
		if s.Elements[i].Version == version {
			return &s.Elements[i], true
		}
	}
	return nil, false
}

// RoleTable returns the role table of a version.
func (s *Sheet) RoleTable(version values.ARIAVersion) (*RoleTable, bool) {
	for i := range s.Roles {
		if s.Roles[i].Version == version {
			return &s.Roles[i], true
		}
	}
	return nil, false
}

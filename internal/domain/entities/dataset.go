// Package entities contains domain entities for the cheat sheet domain model.
// These are pure domain types with NO infrastructure dependencies.
package entities

import (
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

// UnknownDatasetVersion is reported when the dataset ships without a version.
const UnknownDatasetVersion = "unknown"

// Dataset is the upstream HTML spec snapshot the cheat sheet is computed from.
// This is an aggregate root: elements and ARIA definitions are only reachable
// through it.
//
// Invariants:
// - Dataset is immutable once loaded
// - Elements keep upstream order (duplicates are resolved by the transformer)
type Dataset struct {
	// Version is the upstream package version, not part of index.json
	Version string `json:"-"`

	Specs []Element   `json:"specs"`
	Def   Definitions `json:"def"`
}

// Definitions holds the shared definitions block ("def") of the dataset.
type Definitions struct {
	ARIA map[string]ARIADefinition `json:"#aria"`
}

// ARIADefinition lists the properties and roles of one ARIA version.
type ARIADefinition struct {
	Props         []AriaProperty `json:"props"`
	Roles         []Role         `json:"roles"`
	GraphicsRoles []Role         `json:"graphicsRoles"`
}

// ARIA returns the definitions for a version; missing versions yield an
// empty definition so callers never branch on absence.
func (d *Dataset) ARIA(version values.ARIAVersion) ARIADefinition {
	if d.Def.ARIA == nil {
		return ARIADefinition{}
	}
	return d.Def.ARIA[version.String()]
}

// HasARIA reports whether the dataset defines the version at all.
func (d *Dataset) HasARIA(version values.ARIAVersion) bool {
	_, ok := d.Def.ARIA[version.String()]
	return ok
}

// ElementCount returns the number of upstream element entries.
func (d *Dataset) ElementCount() int {
	return len(d.Specs)
}

// FindElement returns the first element with the given upstream name.
func (d *Dataset) FindElement(name string) (*Element, bool) {
	for i := range d.Specs {
		if d.Specs[i].Name == name {
			return &d.Specs[i], true
		}
	}
	return nil, false
}

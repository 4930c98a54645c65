package entities

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

// PropertiesKind tags the shape of a permitted-properties rule.
type PropertiesKind int

const (
	// PropertiesUnrestricted means no rule: implicit-role rules apply
	PropertiesUnrestricted PropertiesKind = iota
	// PropertiesNone is the upstream `false`: no aria-* attributes allowed
	PropertiesNone
	// PropertiesRules is an object rule with allow/deny lists and flags
	PropertiesRules
)

// PermittedProperties is the tagged union of the upstream permitted-properties
// shapes (absent, false, or a rule object).
type PermittedProperties struct {
	Kind PropertiesKind

	// Global allows global properties despite the presence of a rule object
	Global bool
	// Role overrides the basis role(s) used for ownership lookups
	Role BasisRole
	// Only is the explicit allow-list
	Only []string
	// Without is the exclusion list, in upstream order
	Without []Exclusion
}

// IsNone reports the "no aria-* attributes" sentinel.
func (p PermittedProperties) IsNone() bool {
	return p.Kind == PropertiesNone
}

// DisablesGlobal reports whether global properties are not applicable.
// Any rule object disables globals unless it sets global explicitly.
func (p PermittedProperties) DisablesGlobal() bool {
	return p.Kind == PropertiesRules && !p.Global
}

// Excluded returns the exclusion entry for a property, if listed.
func (p PermittedProperties) Excluded(prop string) (*Exclusion, bool) {
	for i := range p.Without {
		if p.Without[i].Name == prop {
			return &p.Without[i], true
		}
	}
	return nil, false
}

// AllowsOnly reports whether the property is on the explicit allow-list.
func (p PermittedProperties) AllowsOnly(prop string) bool {
	for _, name := range p.Only {
		if name == prop {
			return true
		}
	}
	return false
}

type rawPermittedProperties struct {
	Global  bool        `json:"global,omitempty"`
	Role    BasisRole   `json:"role,omitempty"`
	Only    []namedItem `json:"only,omitempty"`
	Without []Exclusion `json:"without,omitempty"`
	Legacy  []Exclusion `json:"whithout,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler
func (p *PermittedProperties) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("true")):
		*p = PermittedProperties{Kind: PropertiesUnrestricted}
		return nil
	case bytes.Equal(data, []byte("false")):
		*p = PermittedProperties{Kind: PropertiesNone}
		return nil
	}

	var raw rawPermittedProperties
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid permitted properties: %w", err)
	}

	only := make([]string, 0, len(raw.Only))
	for _, item := range raw.Only {
		only = append(only, item.Name)
	}

	*p = PermittedProperties{
		Kind:    PropertiesRules,
		Global:  raw.Global,
		Role:    raw.Role,
		Only:    only,
		Without: append(raw.Without, raw.Legacy...),
	}
	return nil
}

// BasisRole is the upstream `role` field of a permitted-properties rule:
// `true` (use the implicit role), a role name, or a list of role names.
type BasisRole struct {
	Implicit bool
	Names    []string
}

// IsSet reports whether the rule overrides the basis role at all.
func (b BasisRole) IsSet() bool {
	return b.Implicit || len(b.Names) > 0
}

// UnmarshalJSON implements json.Unmarshaler
func (b *BasisRole) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*b = BasisRole{}
		return nil
	case bytes.Equal(data, []byte("true")):
		*b = BasisRole{Implicit: true}
		return nil
	}

	var names StringList
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("invalid basis role: %w", err)
	}
	*b = BasisRole{Names: names}
	return nil
}

// ExclusionType is the severity tier of an exclusion entry.
type ExclusionType string

const (
	ExclusionNotRecommended ExclusionType = "not-recommended"
	ExclusionShouldNot      ExclusionType = "should-not"
	ExclusionMustNot        ExclusionType = "must-not"
)

// Status maps the tier onto its property status.
func (t ExclusionType) Status() values.PropStatus {
	switch t {
	case ExclusionNotRecommended:
		return values.StatusNotRecommended
	case ExclusionShouldNot:
		return values.StatusShouldNot
	default:
		return values.StatusMustNot
	}
}

// Exclusion marks a property as unwanted on an element.
type Exclusion struct {
	Type  ExclusionType `json:"type"`
	Name  string        `json:"name"`
	Value string        `json:"value,omitempty"`
	Alt   *Alternative  `json:"alt,omitempty"`
}

// Alternative is the suggested replacement for an excluded property.
type Alternative struct {
	Method string `json:"method"`
	Target string `json:"target"`
}

// Suggestion returns the alternative attribute name, or empty.
func (e Exclusion) Suggestion() string {
	if e.Alt == nil {
		return ""
	}
	return e.Alt.Target
}

// RolesKind tags the shape of a permitted-roles rule.
type RolesKind int

const (
	// RolesAbsent means no rule was declared: nothing is permitted
	RolesAbsent RolesKind = iota
	// RolesBool permits all or no roles
	RolesBool
	// RolesList permits the named roles only
	RolesList
	// RolesAAM permits roles per accessibility API mapping namespace
	RolesAAM
)

// PermittedRoles is the tagged union of the upstream permitted-roles shapes.
type PermittedRoles struct {
	Kind RolesKind

	All         bool
	Names       []PermittedRole
	CoreAAM     bool
	GraphicsAAM bool
}

// PermittedRole is an entry of an explicit permitted-roles list.
type PermittedRole struct {
	Name       string `json:"name"`
	Deprecated bool   `json:"deprecated,omitempty"`
}

type rawAAM struct {
	CoreAAM     bool `json:"core-aam"`
	GraphicsAAM bool `json:"graphics-aam"`
}

// UnmarshalJSON implements json.Unmarshaler
func (r *PermittedRoles) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = PermittedRoles{Kind: RolesAbsent}
		return nil
	case bytes.Equal(data, []byte("true")):
		*r = PermittedRoles{Kind: RolesBool, All: true}
		return nil
	case bytes.Equal(data, []byte("false")):
		*r = PermittedRoles{Kind: RolesBool}
		return nil
	case len(data) > 0 && data[0] == '[':
		var items []namedItem
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("invalid permitted roles list: %w", err)
		}
		names := make([]PermittedRole, 0, len(items))
		for _, item := range items {
			names = append(names, PermittedRole{Name: item.Name, Deprecated: item.Deprecated})
		}
		*r = PermittedRoles{Kind: RolesList, Names: names}
		return nil
	}

	var aam rawAAM
	if err := json.Unmarshal(data, &aam); err != nil {
		return fmt.Errorf("invalid permitted roles: %w", err)
	}
	*r = PermittedRoles{Kind: RolesAAM, CoreAAM: aam.CoreAAM, GraphicsAAM: aam.GraphicsAAM}
	return nil
}

// namedItem decodes list entries that are either "name" or {"name": ...}.
type namedItem struct {
	Name       string
	Deprecated bool
}

// UnmarshalJSON implements json.Unmarshaler
func (n *namedItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &n.Name)
	}
	var obj struct {
		Name       string `json:"name"`
		Deprecated bool   `json:"deprecated"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	n.Name, n.Deprecated = obj.Name, obj.Deprecated
	return nil
}

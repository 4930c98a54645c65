package entities

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

// ImplicitRole decodes the upstream implicit role, which is a role name or false.
type ImplicitRole string

// UnmarshalJSON implements json.Unmarshaler
func (r *ImplicitRole) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("false")) || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid implicit role: %w", err)
	}
	*r = ImplicitRole(s)
	return nil
}

// ARIARules is one block of ARIA rules. Nil fields are "not declared", which
// matters when a version block overrides the base block.
type ARIARules struct {
	ImplicitRole     *ImplicitRole                                  `json:"implicitRole,omitempty"`
	PermittedRoles   *PermittedRoles                                `json:"permittedRoles,omitempty"`
	Properties       *PermittedProperties                           `json:"properties,omitempty"`
	NamingProhibited *bool                                          `json:"namingProhibited,omitempty"`
	Conditions       *orderedmap.OrderedMap[string, ConditionRules] `json:"conditions,omitempty"`
}

// ConditionRules are the overrides that apply when an element matches a selector.
type ConditionRules struct {
	ImplicitRole     *ImplicitRole        `json:"implicitRole,omitempty"`
	PermittedRoles   *PermittedRoles      `json:"permittedRoles,omitempty"`
	Properties       *PermittedProperties `json:"properties,omitempty"`
	NamingProhibited *bool                `json:"namingProhibited,omitempty"`
}

// ElementARIA holds the base rules and the per-version override blocks.
type ElementARIA struct {
	ARIARules
	Versions map[values.ARIAVersion]ARIARules `json:"-"`
}

// UnmarshalJSON implements json.Unmarshaler
func (a *ElementARIA) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &a.ARIARules); err != nil {
		return err
	}

	var blocks map[string]json.RawMessage
	if err := json.Unmarshal(data, &blocks); err != nil {
		return err
	}

	a.Versions = nil
	for _, version := range values.SupportedARIAVersions() {
		raw, ok := blocks[version.String()]
		if !ok {
			continue
		}
		var rules ARIARules
		if err := json.Unmarshal(raw, &rules); err != nil {
			return fmt.Errorf("aria rules for version %s: %w", version, err)
		}
		if a.Versions == nil {
			a.Versions = make(map[values.ARIAVersion]ARIARules)
		}
		a.Versions[version] = rules
	}
	return nil
}

// Resolution is the version-resolved ARIA view of an element.
type Resolution struct {
	ImplicitRole     string
	PermittedRoles   PermittedRoles
	Properties       PermittedProperties
	NamingProhibited bool
	Conditions       []Condition
}

// Condition is one selector-scoped override, in upstream order.
type Condition struct {
	Selector       string
	ImplicitRole   string
	PermittedRoles PermittedRoles
	// Properties is nil when the condition inherits the element's rule
	Properties       *PermittedProperties
	NamingProhibited bool
}

// Resolve merges the version block over the base block: a field declared in
// the version block wins, otherwise the base value is used.
func (a *ElementARIA) Resolve(version values.ARIAVersion) Resolution {
	override := a.Versions[version]

	implicitRole := pick(override.ImplicitRole, a.ImplicitRole)
	permittedRoles := pick(override.PermittedRoles, a.PermittedRoles)
	properties := pick(override.Properties, a.Properties)
	naming := pick(override.NamingProhibited, a.NamingProhibited)
	conditions := pick(override.Conditions, a.Conditions)

	res := Resolution{}
	if implicitRole != nil {
		res.ImplicitRole = string(*implicitRole)
	}
	if permittedRoles != nil {
		res.PermittedRoles = *permittedRoles
	}
	if properties != nil {
		res.Properties = *properties
	}
	if naming != nil {
		res.NamingProhibited = *naming
	}
	if conditions != nil {
		for pair := conditions.Oldest(); pair != nil; pair = pair.Next() {
			res.Conditions = append(res.Conditions, newCondition(pair.Key, pair.Value))
		}
	}
	return res
}

func newCondition(selector string, rules ConditionRules) Condition {
	cond := Condition{
		Selector:   selector,
		Properties: rules.Properties,
	}
	if rules.ImplicitRole != nil {
		cond.ImplicitRole = string(*rules.ImplicitRole)
	}
	if rules.PermittedRoles != nil {
		cond.PermittedRoles = *rules.PermittedRoles
	}
	if rules.NamingProhibited != nil {
		cond.NamingProhibited = *rules.NamingProhibited
	}
	return cond
}

func pick[T any](override, base *T) *T {
	if override != nil {
		return override
	}
	return base
}

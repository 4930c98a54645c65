package services

import (
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

// Variant is the resolved ARIA context of one table row: the element itself
// or one of its conditional patterns.
type Variant struct {
	ImplicitRole string
	Properties   entities.PermittedProperties
	Attributes   []entities.HTMLAttribute
}

// PropertyClassifier assigns exactly one status to each (variant, property)
// pair. Role names missing from the role list degrade to "not owned".
type PropertyClassifier struct {
	roles map[string]*entities.Role
}

// NewPropertyClassifier creates a classifier over a version's role list.
func NewPropertyClassifier(roles []entities.Role) *PropertyClassifier {
	index := make(map[string]*entities.Role, len(roles))
	for i := range roles {
		if _, ok := index[roles[i].Name]; !ok {
			index[roles[i].Name] = &roles[i]
		}
	}
	return &PropertyClassifier{roles: index}
}

// Classify evaluates the rules in priority order; the first rule that
// applies decides the cell.
func (c *PropertyClassifier) Classify(prop entities.AriaProperty, v Variant) entities.PropCell {
	rules := v.Properties

	if rules.IsNone() {
		return entities.PropCell{Status: values.StatusNoAria}
	}

	if excl, ok := rules.Excluded(prop.Name); ok {
		return entities.PropCell{Status: excl.Type.Status(), Ref: excl.Suggestion()}
	}

	if rules.AllowsOnly(prop.Name) {
		return entities.PropCell{Status: values.StatusOnly}
	}

	if prop.IsGlobal {
		if rules.DisablesGlobal() {
			return entities.PropCell{Status: values.StatusNoGlobal}
		}
		if owned, ok := c.owned(v.ImplicitRole, prop.Name); ok && owned.Deprecated {
			return entities.PropCell{Status: values.StatusDeprecated, Ref: v.ImplicitRole}
		}
		return entities.PropCell{Status: values.StatusGlobal}
	}

	if attr, ok := equivalentAttr(prop, v.Attributes); ok {
		return entities.PropCell{Status: values.StatusImplicitAttr, Ref: attr}
	}

	for _, basis := range basisRoles(rules, v.ImplicitRole) {
		owned, ok := c.owned(basis, prop.Name)
		if !ok {
			continue
		}
		switch {
		case owned.Deprecated:
			return entities.PropCell{Status: values.StatusDeprecated, Ref: basis}
		case owned.Required:
			return entities.PropCell{Status: values.StatusRequired, Ref: basis}
		case basis == v.ImplicitRole:
			return entities.PropCell{Status: values.StatusImplicitRole}
		default:
			return entities.PropCell{Status: values.StatusExplicitRole, Ref: basis}
		}
	}

	return entities.PropCell{Status: values.StatusNotOwned}
}

func (c *PropertyClassifier) owned(role, prop string) (*entities.OwnedProperty, bool) {
	if role == "" {
		return nil, false
	}
	r, ok := c.roles[role]
	if !ok {
		return nil, false
	}
	return r.Owned(prop)
}

// equivalentAttr returns the first native attribute equivalent to the
// property that the variant actually has.
func equivalentAttr(prop entities.AriaProperty, attrs []entities.HTMLAttribute) (string, bool) {
	for _, eq := range prop.EquivalentHTMLAttrs {
		for _, attr := range attrs {
			if attr.Name == eq.HTMLAttrName {
				return eq.HTMLAttrName, true
			}
		}
	}
	return "", false
}

// basisRoles returns the roles whose ownership decides non-global properties.
func basisRoles(rules entities.PermittedProperties, implicitRole string) []string {
	if rules.Kind == entities.PropertiesRules && rules.Role.IsSet() {
		if rules.Role.Implicit {
			if implicitRole == "" {
				return nil
			}
			return []string{implicitRole}
		}
		return rules.Role.Names
	}
	if implicitRole == "" {
		return nil
	}
	return []string{implicitRole}
}

// RolePermitted reports whether a permitted-roles rule allows a role.
// An absent rule permits nothing.
func RolePermitted(rule entities.PermittedRoles, role string) bool {
	switch rule.Kind {
	case entities.RolesBool:
		return rule.All
	case entities.RolesList:
		for _, permitted := range rule.Names {
			if permitted.Name == role {
				return true
			}
		}
		return false
	case entities.RolesAAM:
		if entities.IsGraphicsRole(role) {
			return rule.GraphicsAAM
		}
		return rule.CoreAAM
	default:
		return false
	}
}

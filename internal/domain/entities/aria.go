package entities

import "strings"

// AriaProperty describes one aria-* state or property.
type AriaProperty struct {
	Name                string               `json:"name"`
	Type                string               `json:"type,omitempty"`
	IsGlobal            bool                 `json:"isGlobal,omitempty"`
	Deprecated          bool                 `json:"deprecated,omitempty"`
	EquivalentHTMLAttrs []EquivalentHTMLAttr `json:"equivalentHtmlAttrs,omitempty"`
}

// EquivalentHTMLAttr is a native HTML attribute that implies the property.
type EquivalentHTMLAttr struct {
	HTMLAttrName          string `json:"htmlAttrName"`
	Value                 string `json:"value,omitempty"`
	IsNotStrictEquivalent bool   `json:"isNotStrictEquivalent,omitempty"`
}

// Role is a WAI-ARIA role definition.
type Role struct {
	Name            string          `json:"name"`
	IsAbstract      bool            `json:"isAbstract,omitempty"`
	OwnedProperties []OwnedProperty `json:"ownedProperties,omitempty"`
}

// OwnedProperty associates a property with a role.
type OwnedProperty struct {
	Name       string `json:"name"`
	Inherited  bool   `json:"inherited,omitempty"`
	Required   bool   `json:"required,omitempty"`
	Deprecated bool   `json:"deprecated,omitempty"`
}

// Owned returns the role's ownership record for the property, if any.
func (r *Role) Owned(prop string) (*OwnedProperty, bool) {
	for i := range r.OwnedProperties {
		if r.OwnedProperties[i].Name == prop {
			return &r.OwnedProperties[i], true
		}
	}
	return nil, false
}

// IsGraphics reports whether the role belongs to the Graphics ARIA module.
func (r *Role) IsGraphics() bool {
	return IsGraphicsRole(r.Name)
}

// IsGraphicsRole reports whether a role name has the graphics prefix.
func IsGraphicsRole(name string) bool {
	return strings.HasPrefix(name, "graphics-")
}

// Named is implemented by every upstream descriptor that is identified by name.
type Named interface {
	GetName() string
}

func (p AriaProperty) GetName() string { return p.Name }
func (r Role) GetName() string         { return r.Name }
func (e Element) GetName() string      { return e.Name }

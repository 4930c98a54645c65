package values

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ElementName is an HTML or SVG tag name as displayed in the cheat sheet.
// Namespaced upstream names like "svg:circle" are shown as "svg|circle",
// the CSS namespace selector form.
type ElementName struct {
	value string
}

// NewElementName normalizes an upstream element name.
func NewElementName(name string) (ElementName, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ElementName{}, fmt.Errorf("element name cannot be empty")
	}
	return ElementName{value: strings.Replace(name, ":", "|", 1)}, nil
}

// MustNewElementName creates an ElementName or panics
func MustNewElementName(name string) ElementName {
	n, err := NewElementName(name)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the display form
func (n ElementName) String() string {
	return n.value
}

// Local returns the name without its namespace prefix.
func (n ElementName) Local() string {
	if i := strings.IndexByte(n.value, '|'); i >= 0 {
		return n.value[i+1:]
	}
	return n.value
}

// IsSVG reports whether the element lives in the SVG namespace.
func (n ElementName) IsSVG() bool {
	return strings.HasPrefix(n.value, "svg|")
}

// Matches reports whether a tag name from a document refers to this element.
// Document tags carry no namespace prefix, so "circle" matches "svg|circle".
func (n ElementName) Matches(tag string) bool {
	tag = strings.ToLower(tag)
	return n.value == tag || n.Local() == tag
}

// ReferenceURL returns the ARIA in HTML (or SVG AAM) anchor for the element.
func (n ElementName) ReferenceURL() string {
	if n.IsSVG() {
		return "https://www.w3.org/TR/svg-aam-1.0/#details-id-" + n.Local()
	}
	return "https://w3c.github.io/html-aria/#el-" + n.value
}

// MarshalJSON implements json.Marshaler
func (n ElementName) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", n.value)), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (n *ElementName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid element name: %w", err)
	}
	parsed, err := NewElementName(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// UnmarshalYAML implements yaml.InterfaceUnmarshaler
func (n *ElementName) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := NewElementName(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler
func (n ElementName) MarshalYAML() (interface{}, error) {
	return n.value, nil
}

package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Element is one HTML or SVG element entry of the dataset.
type Element struct {
	Name       string               `json:"name"`
	Deprecated bool                 `json:"deprecated,omitempty"`
	Obsolete   Flag                 `json:"obsolete,omitempty"`
	Attributes map[string]Attribute `json:"attributes,omitempty"`
	ARIA       ElementARIA          `json:"aria"`
}

// IsDeprecated is true for deprecated or obsolete elements.
func (e *Element) IsDeprecated() bool {
	return e.Deprecated || bool(e.Obsolete)
}

// HTMLAttribute is an element attribute together with its name.
type HTMLAttribute struct {
	Name      string
	Condition StringList
}

// AppliesTo reports whether the attribute is available under a condition
// selector. Attributes without a condition apply everywhere.
func (a HTMLAttribute) AppliesTo(selector string) bool {
	if len(a.Condition) == 0 {
		return true
	}
	return a.Condition.Contains(selector)
}

// HTMLAttributes returns the element's own attributes.
func (e *Element) HTMLAttributes() []HTMLAttribute {
	attrs := make([]HTMLAttribute, 0, len(e.Attributes))
	for name, a := range e.Attributes {
		attrs = append(attrs, HTMLAttribute{Name: name, Condition: a.Condition})
	}
	return attrs
}

// Attribute is the subset of the upstream attribute spec the cheat sheet needs.
type Attribute struct {
	Condition StringList `json:"condition,omitempty"`
}

// Flag decodes upstream flags that are either a boolean or an object
// carrying details (for example obsolete: {"alt": "..."}).
type Flag bool

// UnmarshalJSON implements json.Unmarshaler
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*f = false
	case bytes.Equal(data, []byte("true")):
		*f = true
	case len(data) > 0 && (data[0] == '{' || data[0] == '"'):
		*f = true
	default:
		return fmt.Errorf("invalid flag value: %s", data)
	}
	return nil
}

// StringList decodes a value that is either a single string or a list of strings.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("expected string or list of strings: %w", err)
	}
	*l = list
	return nil
}

// Contains reports whether s is in the list.
func (l StringList) Contains(s string) bool {
	for _, item := range l {
		if item == s {
			return true
		}
	}
	return false
}

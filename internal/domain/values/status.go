package values

import (
	"fmt"
	"strings"
)

// PropStatus classifies the relationship between one element variant and one
// aria-* property. The numeric codes are stable and appear in JSON output.
type PropStatus int

const (
	// StatusNoAria means the element allows no aria-* attributes at all
	StatusNoAria PropStatus = 0
	// StatusNoGlobal means global aria-* attributes are not applicable here
	StatusNoGlobal PropStatus = 1
	// StatusDeprecated means the property is deprecated for the basis role
	StatusDeprecated PropStatus = 2
	// StatusImplicitAttr means a native HTML attribute already expresses it
	StatusImplicitAttr PropStatus = 3
	// StatusNotOwned means no basis role owns the property
	StatusNotOwned PropStatus = 4
	// StatusNotRecommended comes from a "not-recommended" exclusion
	StatusNotRecommended PropStatus = 5
	// StatusShouldNot comes from a "should-not" exclusion
	StatusShouldNot PropStatus = 6
	// StatusMustNot comes from a "must-not" exclusion
	StatusMustNot PropStatus = 7
	// StatusOnly means the property is on the element's explicit allow-list
	StatusOnly PropStatus = 8
	// StatusGlobal means the property is allowed as a global property
	StatusGlobal PropStatus = 9
	// StatusImplicitRole means the implicit role owns the property
	StatusImplicitRole PropStatus = 10
	// StatusExplicitRole means an explicit basis role owns the property
	StatusExplicitRole PropStatus = 11
	// StatusRequired means the basis role requires the property
	StatusRequired PropStatus = 12
)

// Verdict is the coarse reading of a PropStatus used for colouring and lint levels.
type Verdict string

const (
	VerdictAllowed    Verdict = "allowed"
	VerdictWarning    Verdict = "warning"
	VerdictDisallowed Verdict = "disallowed"
)

var statusNames = [...]string{
	StatusNoAria:         "no-aria",
	StatusNoGlobal:       "no-global",
	StatusDeprecated:     "deprecated",
	StatusImplicitAttr:   "implicit-attr",
	StatusNotOwned:       "not-owned",
	StatusNotRecommended: "not-recommended",
	StatusShouldNot:      "should-not",
	StatusMustNot:        "must-not",
	StatusOnly:           "only",
	StatusGlobal:         "global",
	StatusImplicitRole:   "implicit-role",
	StatusExplicitRole:   "explicit-role",
	StatusRequired:       "required",
}

// AllStatuses returns every status in code order.
func AllStatuses() []PropStatus {
	out := make([]PropStatus, len(statusNames))
	for i := range statusNames {
		out[i] = PropStatus(i)
	}
	return out
}

// ParsePropStatus parses a status from its name or its numeric code.
func ParsePropStatus(s string) (PropStatus, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range statusNames {
		if s == name || s == fmt.Sprint(i) {
			return PropStatus(i), nil
		}
	}
	return 0, fmt.Errorf("invalid property status: %q", s)
}

// String returns the stable name of the status.
func (s PropStatus) String() string {
	if err := s.Validate(); err != nil {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// Code returns the numeric status code
func (s PropStatus) Code() int {
	return int(s)
}

// Validate returns an error if the status value is out of range
func (s PropStatus) Validate() error {
	if s < StatusNoAria || s > StatusRequired {
		return fmt.Errorf("invalid property status: %d", int(s))
	}
	return nil
}

// Verdict maps the status to allowed, warning or disallowed.
func (s PropStatus) Verdict() Verdict {
	switch s {
	case StatusOnly, StatusGlobal, StatusImplicitRole, StatusExplicitRole, StatusRequired:
		return VerdictAllowed
	case StatusDeprecated, StatusImplicitAttr, StatusNotRecommended, StatusShouldNot:
		return VerdictWarning
	default:
		return VerdictDisallowed
	}
}

// IsAllowed returns true if the property may be used on the element variant
func (s PropStatus) IsAllowed() bool {
	return s.Verdict() == VerdictAllowed
}

// Symbol returns the cheat sheet mark for the status.
func (s PropStatus) Symbol() string {
	switch s.Verdict() {
	case VerdictAllowed:
		return "✔"
	case VerdictWarning:
		return "⚠"
	default:
		return "✘"
	}
}

// Describe renders the human label for a cell; ref is the role or attribute
// name carried by the cell, if any.
func (s PropStatus) Describe(ref string) string {
	switch s {
	case StatusNoAria:
		return "No aria-*"
	case StatusNoGlobal:
		return "No global aria-*"
	case StatusDeprecated:
		return "Deprecated"
	case StatusImplicitAttr:
		if ref == "" {
			return "Implicit"
		}
		return fmt.Sprintf("Implicit (use the %q attr)", ref)
	case StatusNotOwned:
		return "Role has not"
	case StatusNotRecommended:
		return "NOT RECOMMENDED"
	case StatusShouldNot:
		return "SHOULD NOT"
	case StatusMustNot:
		return "MUST NOT"
	case StatusOnly:
		return "Allowed Only"
	case StatusGlobal:
		return "As Global"
	case StatusImplicitRole:
		return "By Implicit Role"
	case StatusExplicitRole:
		return fmt.Sprintf("By the %s role", ref)
	case StatusRequired:
		return fmt.Sprintf("REQUIRED (By the %s role)", ref)
	default:
		return fmt.Sprintf("%d: %s", int(s), ref)
	}
}

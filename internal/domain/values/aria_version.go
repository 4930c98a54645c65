package values

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ARIAVersion identifies a WAI-ARIA specification version.
type ARIAVersion string

const (
	// ARIA11 is WAI-ARIA 1.1
	ARIA11 ARIAVersion = "1.1"
	// ARIA12 is WAI-ARIA 1.2
	ARIA12 ARIAVersion = "1.2"
)

// DefaultARIAVersion is used when nothing else is configured.
const DefaultARIAVersion = ARIA12

// SupportedARIAVersions returns the supported versions, newest first.
func SupportedARIAVersions() []ARIAVersion {
	return []ARIAVersion{ARIA12, ARIA11}
}

// NewARIAVersion parses loose forms such as "1.2", "v1.2" or "1.2.0".
func NewARIAVersion(s string) (ARIAVersion, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultARIAVersion, nil
	}

	v, err := semver.NewVersion(s)
	if err != nil {
		return "", fmt.Errorf("invalid ARIA version %q: %w", s, err)
	}

	version := ARIAVersion(fmt.Sprintf("%d.%d", v.Major(), v.Minor()))
	if err := version.Validate(); err != nil {
		return "", err
	}
	return version, nil
}

// MustNewARIAVersion parses a version or panics
func MustNewARIAVersion(s string) ARIAVersion {
	v, err := NewARIAVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the string representation
func (v ARIAVersion) String() string {
	return string(v)
}

// Validate returns an error if the version is not supported
func (v ARIAVersion) Validate() error {
	for _, supported := range SupportedARIAVersions() {
		if v == supported {
			return nil
		}
	}
	return fmt.Errorf("unsupported ARIA version: %q (supported: %s, %s)", string(v), ARIA12, ARIA11)
}

// IsNewerThan orders versions by their semantic version.
func (v ARIAVersion) IsNewerThan(other ARIAVersion) bool {
	a, errA := semver.NewVersion(string(v))
	b, errB := semver.NewVersion(string(other))
	if errA != nil || errB != nil {
		return false
	}
	return a.GreaterThan(b)
}

// RoleURL returns the specification anchor for a role in this version.
// Graphics roles live in the Graphics ARIA module.
func (v ARIAVersion) RoleURL(role string) string {
	if role == "" {
		return ""
	}
	if strings.HasPrefix(role, "graphics-") {
		return "https://w3c.github.io/graphics-aria/#" + role
	}
	return fmt.Sprintf("https://www.w3.org/TR/wai-aria-%s/#%s", v, role)
}

// PropURL returns the specification anchor for an aria-* property.
func (v ARIAVersion) PropURL(prop string) string {
	return fmt.Sprintf("https://www.w3.org/TR/wai-aria-%s/#%s", v, prop)
}

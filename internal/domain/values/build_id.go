package values

import (
	"fmt"

	"github.com/google/uuid"
)

// BuildID uniquely identifies one site build. It is stamped into the build
// manifest so that deployed artifacts can be traced back to a run.
type BuildID struct {
	value uuid.UUID
}

// NewBuildID creates a new random build ID
func NewBuildID() BuildID {
	return BuildID{value: uuid.New()}
}

// ParseBuildID parses a string into a BuildID
func ParseBuildID(s string) (BuildID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return BuildID{}, fmt.Errorf("invalid build ID: %w", err)
	}
	return BuildID{value: id}, nil
}

// String returns the string representation
func (b BuildID) String() string {
	return b.value.String()
}

// IsZero returns true if this is the zero value
func (b BuildID) IsZero() bool {
	return b.value == uuid.Nil
}

// Equals checks if two BuildIDs are equal
func (b BuildID) Equals(other BuildID) bool {
	return b.value == other.value
}

// MarshalJSON implements json.Marshaler
func (b BuildID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.value.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (b *BuildID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 {
		return fmt.Errorf("invalid build ID JSON")
	}
	s = s[1 : len(s)-1]

	id, err := ParseBuildID(s)
	if err != nil {
		return err
	}
	*b = id
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler
func (b BuildID) MarshalYAML() (interface{}, error) {
	return b.value.String(), nil
}

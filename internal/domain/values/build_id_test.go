package values

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewBuildID(t *testing.T) {
	id1 := NewBuildID()
	id2 := NewBuildID()

	assert.False(t, id1.IsZero(), "new ID should not be zero")
	assert.False(t, id1.Equals(id2), "two new IDs should be different")
}

func Test_ParseBuildID(t *testing.T) {
	valid := "123e4567-e89b-12d3-a456-426614174000"

	id, err := ParseBuildID(valid)
	require.NoError(t, err)
	assert.Equal(t, valid, id.String())

	_, err = ParseBuildID("not-a-uuid")
	assert.Error(t, err)
}

func Test_BuildID_JSONRoundTrip(t *testing.T) {
	id := NewBuildID()

	data, err := json.Marshal(id)
	require.NoError(t, err)

	var decoded BuildID
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, id.Equals(decoded))
}

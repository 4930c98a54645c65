package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewARIAVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    ARIAVersion
		wantErr bool
	}{
		{"1.2", ARIA12, false},
		{"1.1", ARIA11, false},
		{"v1.2", ARIA12, false},
		{"1.1.0", ARIA11, false},
		{"", DefaultARIAVersion, false},
		{"1.3", "", true},
		{"latest", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewARIAVersion(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_ARIAVersion_Ordering(t *testing.T) {
	versions := SupportedARIAVersions()
	require.Len(t, versions, 2)
	assert.Equal(t, ARIA12, versions[0])
	assert.True(t, ARIA12.IsNewerThan(ARIA11))
	assert.False(t, ARIA11.IsNewerThan(ARIA12))
}

func Test_ARIAVersion_RoleURL(t *testing.T) {
	assert.Equal(t, "https://www.w3.org/TR/wai-aria-1.1/#button", ARIA11.RoleURL("button"))
	assert.Equal(t, "https://w3c.github.io/graphics-aria/#graphics-symbol", ARIA12.RoleURL("graphics-symbol"))
	assert.Empty(t, ARIA12.RoleURL(""))
}

func Test_MustNewARIAVersion_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNewARIAVersion("9.9") })
}

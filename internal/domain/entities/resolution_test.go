package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

const anchorElement = `{
	"name": "a",
	"attributes": {
		"href": {},
		"download": {"condition": "[href]"}
	},
	"aria": {
		"implicitRole": false,
		"permittedRoles": true,
		"conditions": {
			"[href]": {
				"implicitRole": "link",
				"permittedRoles": ["button", "checkbox"]
			},
			":not([href])": {
				"implicitRole": "generic"
			}
		},
		"1.1": {
			"conditions": {
				"[href]": {"implicitRole": "link"}
			}
		}
	}
}`

func decodeElement(t *testing.T, raw string) Element {
	t.Helper()
	var el Element
	require.NoError(t, json.Unmarshal([]byte(raw), &el))
	return el
}

func Test_ElementARIA_Resolve_Base(t *testing.T) {
	el := decodeElement(t, anchorElement)

	res := el.ARIA.Resolve(values.ARIA12)
	assert.Empty(t, res.ImplicitRole)
	assert.Equal(t, RolesBool, res.PermittedRoles.Kind)
	assert.True(t, res.PermittedRoles.All)
	assert.Equal(t, PropertiesUnrestricted, res.Properties.Kind)

	require.Len(t, res.Conditions, 2)
	assert.Equal(t, "[href]", res.Conditions[0].Selector)
	assert.Equal(t, "link", res.Conditions[0].ImplicitRole)
	assert.Equal(t, RolesList, res.Conditions[0].PermittedRoles.Kind)
	assert.Nil(t, res.Conditions[0].Properties)
	assert.Equal(t, ":not([href])", res.Conditions[1].Selector)
	assert.Equal(t, "generic", res.Conditions[1].ImplicitRole)
	assert.Equal(t, RolesAbsent, res.Conditions[1].PermittedRoles.Kind)
}

func Test_ElementARIA_Resolve_VersionOverride(t *testing.T) {
	el := decodeElement(t, anchorElement)

	res := el.ARIA.Resolve(values.ARIA11)
	// fields not declared in the 1.1 block come from the base block
	assert.True(t, res.PermittedRoles.All)
	require.Len(t, res.Conditions, 1)
	assert.Equal(t, "link", res.Conditions[0].ImplicitRole)
	assert.Equal(t, RolesAbsent, res.Conditions[0].PermittedRoles.Kind)
}

func Test_ElementARIA_Resolve_ImplicitRoleOverride(t *testing.T) {
	el := decodeElement(t, `{
		"name": "hgroup",
		"aria": {
			"implicitRole": "group",
			"properties": false,
			"1.1": {"implicitRole": false, "properties": {"global": true}}
		}
	}`)

	res12 := el.ARIA.Resolve(values.ARIA12)
	assert.Equal(t, "group", res12.ImplicitRole)
	assert.True(t, res12.Properties.IsNone())

	res11 := el.ARIA.Resolve(values.ARIA11)
	assert.Empty(t, res11.ImplicitRole)
	assert.Equal(t, PropertiesRules, res11.Properties.Kind)
	assert.True(t, res11.Properties.Global)
}

func Test_Element_Flags(t *testing.T) {
	el := decodeElement(t, `{"name": "acronym", "obsolete": {"alt": "abbr"}, "aria": {"implicitRole": false}}`)
	assert.True(t, el.IsDeprecated())

	el = decodeElement(t, `{"name": "div", "aria": {"implicitRole": "generic"}}`)
	assert.False(t, el.IsDeprecated())
}

func Test_HTMLAttribute_AppliesTo(t *testing.T) {
	el := decodeElement(t, anchorElement)

	byName := map[string]HTMLAttribute{}
	for _, attr := range el.HTMLAttributes() {
		byName[attr.Name] = attr
	}
	require.Len(t, byName, 2)
	assert.True(t, byName["href"].AppliesTo("[href]"))
	assert.True(t, byName["download"].AppliesTo("[href]"))
	assert.False(t, byName["download"].AppliesTo(":not([href])"))
}

func Test_StringList_UnmarshalJSON(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`"[a]"`), &l))
	assert.Equal(t, StringList{"[a]"}, l)

	require.NoError(t, json.Unmarshal([]byte(`["[a]", "[b]"]`), &l))
	assert.True(t, l.Contains("[b]"))

	assert.Error(t, json.Unmarshal([]byte(`12`), &l))
}

package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PropStatus_Codes(t *testing.T) {
	statuses := AllStatuses()
	require.Len(t, statuses, 13)

	for i, s := range statuses {
		assert.Equal(t, i, s.Code())
		assert.NoError(t, s.Validate())
	}
}

func Test_PropStatus_Validate_Invalid(t *testing.T) {
	assert.Error(t, PropStatus(-1).Validate())
	assert.Error(t, PropStatus(13).Validate())
	assert.Equal(t, "status(42)", PropStatus(42).String())
}

func Test_PropStatus_Verdict(t *testing.T) {
	tests := []struct {
		status  PropStatus
		verdict Verdict
	}{
		{StatusNoAria, VerdictDisallowed},
		{StatusNoGlobal, VerdictDisallowed},
		{StatusDeprecated, VerdictWarning},
		{StatusImplicitAttr, VerdictWarning},
		{StatusNotOwned, VerdictDisallowed},
		{StatusNotRecommended, VerdictWarning},
		{StatusShouldNot, VerdictWarning},
		{StatusMustNot, VerdictDisallowed},
		{StatusOnly, VerdictAllowed},
		{StatusGlobal, VerdictAllowed},
		{StatusImplicitRole, VerdictAllowed},
		{StatusExplicitRole, VerdictAllowed},
		{StatusRequired, VerdictAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.verdict, tt.status.Verdict())
			assert.Equal(t, tt.verdict == VerdictAllowed, tt.status.IsAllowed())
		})
	}
}

func Test_PropStatus_Symbol(t *testing.T) {
	assert.Equal(t, "✔", StatusGlobal.Symbol())
	assert.Equal(t, "⚠", StatusShouldNot.Symbol())
	assert.Equal(t, "✘", StatusMustNot.Symbol())
}

func Test_PropStatus_Describe(t *testing.T) {
	assert.Equal(t, "REQUIRED (By the slider role)", StatusRequired.Describe("slider"))
	assert.Equal(t, "By the button role", StatusExplicitRole.Describe("button"))
	assert.Equal(t, `Implicit (use the "checked" attr)`, StatusImplicitAttr.Describe("checked"))
	assert.Equal(t, "Implicit", StatusImplicitAttr.Describe(""))
	assert.Equal(t, "As Global", StatusGlobal.Describe(""))
}

func Test_ParsePropStatus(t *testing.T) {
	s, err := ParsePropStatus("must-not")
	require.NoError(t, err)
	assert.Equal(t, StatusMustNot, s)

	s, err = ParsePropStatus(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, StatusRequired, s)

	_, err = ParsePropStatus("bogus")
	assert.Error(t, err)
}

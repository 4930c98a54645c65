package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SplitSelector(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"[href]", []string{"[href]"}},
		{"[type=button], [type=submit]", []string{"[type=button]", "[type=submit]"}},
		{`[alt=""]`, []string{`[alt=""]`}},
		{":not([href], [name])", []string{":not([href], [name])"}},
		{`[title="a, b"],[lang]`, []string{`[title="a, b"]`, "[lang]"}},
		{"", nil},
		// an unterminated string keeps the rest of the input as written
		{`[a="unterminated`, []string{`[a="unterminated`}},
		{`[lang], [a="open`, []string{"[lang]", `[a="open`}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSelector(tt.in))
		})
	}
}

func Test_Selector_Matches(t *testing.T) {
	tests := []struct {
		selector string
		attrs    map[string]string
		want     bool
	}{
		{"[href]", map[string]string{"href": "/"}, true},
		{"[href]", map[string]string{}, false},
		{`[alt=""]`, map[string]string{"alt": ""}, true},
		{`[alt=""]`, map[string]string{"alt": "logo"}, false},
		{"[type=button], [type=submit]", map[string]string{"type": "submit"}, true},
		{"[type=checkbox]", map[string]string{"type": "radio"}, false},
		{"[type=checkbox i]", map[string]string{"type": "CheckBox"}, true},
		{":not([href])", map[string]string{}, true},
		{":not([href])", map[string]string{"href": "#"}, false},
		{"[class~=nav]", map[string]string{"class": "main nav"}, true},
		{"[lang|=en]", map[string]string{"lang": "en-GB"}, true},
		{"[src^=https]", map[string]string{"src": "https://x"}, true},
		{"[src$='.png']", map[string]string{"src": "a.png"}, true},
		{"[src*=cdn]", map[string]string{"src": "//cdn/x"}, true},
		{":is([href], [name])", map[string]string{"name": "x"}, true},
		{"input[type=image]", map[string]string{"type": "image"}, true},
		{".primary", map[string]string{"class": "btn primary"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			sel, err := CompileSelector(tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel.Matches(SelectorSubject{Tag: "input", Attrs: tt.attrs}))
		})
	}
}

func Test_CompileSelector_Unsupported(t *testing.T) {
	for _, sel := range []string{
		"figure > figcaption",
		"article header",
		":has(figcaption)",
		"[href",
		"",
	} {
		t.Run(sel, func(t *testing.T) {
			_, err := CompileSelector(sel)
			assert.ErrorIs(t, err, ErrUnsupportedSelector)
		})
	}
}

func Test_CompileSelector_AttributeOperators(t *testing.T) {
	subject := SelectorSubject{Tag: "a", Attrs: map[string]string{
		"rel":  "noopener external",
		"lang": "en-US",
		"href": "https://example.com/page.pdf",
	}}

	tests := []struct {
		selector string
		want     bool
	}{
		{"[rel~=external]", true},
		{"[rel~=extern]", false},
		{"[lang|=en]", true},
		{"[href^=https]", true},
		{"[href$=pdf]", true},
		{"[href*=example]", true},
		{"[href*=nowhere]", false},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			sel, err := CompileSelector(tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel.Matches(subject))
		})
	}
}

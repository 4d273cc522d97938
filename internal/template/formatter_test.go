// Package template tests variable extraction and substitution under both grammars.
package template

// file: internal/template/formatter_test.go

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsValidName_WellFormedNames_Accepted covers the accepted identifier shapes.
func TestIsValidName_WellFormedNames_Accepted(t *testing.T) {
	for _, name := range []string{"user", "_private", "var123", "CamelCase", "_", "a"} {
		assert.True(t, IsValidName(name), "Name %q should be valid.", name)
	}
}

// TestIsValidName_MalformedNames_Rejected covers rejected identifier shapes.
func TestIsValidName_MalformedNames_Rejected(t *testing.T) {
	for _, name := range []string{"", "123", "var-name", "var name", "var.name", "日本語"} {
		assert.False(t, IsValidName(name), "Name %q should be invalid.", name)
	}
}

// TestNew_KnownStyles_Succeed verifies the closed style set.
func TestNew_KnownStyles_Succeed(t *testing.T) {
	brace, err := New(StyleBrace)
	require.NoError(t, err, "Brace style should be known.")
	require.NotNil(t, brace)

	dollar, err := New(StyleDollar)
	require.NoError(t, err, "Dollar style should be known.")
	require.NotNil(t, dollar)
}

// TestNew_UnknownStyle_Fails verifies unknown styles are rejected at construction.
func TestNew_UnknownStyle_Fails(t *testing.T) {
	_, err := New(Style("percent"))
	require.Error(t, err, "Unknown style should be rejected.")
	assert.Contains(t, err.Error(), "unknown formatter style")
}

func mustFormatter(t *testing.T, style Style) Formatter {
	t.Helper()
	f, err := New(style)
	require.NoError(t, err)
	return f
}

// TestBraceFormatter_Extract_FindsVariables verifies basic brace extraction.
func TestBraceFormatter_Extract_FindsVariables(t *testing.T) {
	f := mustFormatter(t, StyleBrace)

	names, err := f.Extract("Hello {user} from {project}")
	require.NoError(t, err)
	assert.Len(t, names, 2)
	assert.Contains(t, names, "user")
	assert.Contains(t, names, "project")
}

// TestBraceFormatter_Extract_EdgeCases covers escapes, duplicates and unterminated markers.
func TestBraceFormatter_Extract_EdgeCases(t *testing.T) {
	f := mustFormatter(t, StyleBrace)

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"escaped braces yield no variable", "Use {{var}} here", nil},
		{"duplicates collapse", "{a} and {a} and {a}", []string{"a"}},
		{"empty token is ignored", "nothing {} here", nil},
		{"unterminated marker is discarded", "start {abc", nil},
		{"plain text", "no variables at all", nil},
		{"lone closing brace is plain text", "end} of it", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			names, err := f.Extract(tc.content)
			require.NoError(t, err)
			assert.Len(t, names, len(tc.want))
			for _, n := range tc.want {
				assert.Contains(t, names, n)
			}
		})
	}
}

// TestBraceFormatter_Extract_InvalidName_Fails verifies malformed tokens abort extraction.
func TestBraceFormatter_Extract_InvalidName_Fails(t *testing.T) {
	f := mustFormatter(t, StyleBrace)

	_, err := f.Extract("Hello {123}")
	require.Error(t, err, "A numeric-leading token should abort extraction.")

	nameErr, ok := AsInvalidNameError(err)
	require.True(t, ok, "Error should carry the InvalidNameError kind.")
	assert.Equal(t, "123", nameErr.Name, "The offending token should be reported.")
}

// TestBraceFormatter_Format_Substitutes verifies value substitution and escapes.
func TestBraceFormatter_Format_Substitutes(t *testing.T) {
	f := mustFormatter(t, StyleBrace)

	tests := []struct {
		name    string
		content string
		values  map[string]string
		want    string
	}{
		{"simple substitution", "Hello {user}!", map[string]string{"user": "Alice"}, "Hello Alice!"},
		{"escape round-trip", "Use {{var}} for variables", nil, "Use {var} for variables"},
		{"closing escape", "{{x}}", nil, "{x}"},
		{"missing value preserved", "{missing}", nil, "{missing}"},
		{"unterminated passthrough", "{abc", nil, "{abc"},
		{"lone closing brace", "a} b", nil, "a} b"},
		{"identity on plain text", "no delimiters here", map[string]string{"x": "y"}, "no delimiters here"},
		{"mixed", "{a}{{b}}{c}", map[string]string{"a": "1"}, "1{b}{c}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Format(tc.content, tc.values))
		})
	}
}

// TestDollarFormatter_Extract_FindsVariables verifies basic dollar extraction.
func TestDollarFormatter_Extract_FindsVariables(t *testing.T) {
	f := mustFormatter(t, StyleDollar)

	names, err := f.Extract("Hello $user from $project")
	require.NoError(t, err)
	assert.Len(t, names, 2)
	assert.Contains(t, names, "user")
	assert.Contains(t, names, "project")
}

// TestDollarFormatter_Extract_EdgeCases covers escapes and bare dollar signs.
func TestDollarFormatter_Extract_EdgeCases(t *testing.T) {
	f := mustFormatter(t, StyleDollar)

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"escaped dollar yields no variable", "costs $$5", nil},
		{"bare dollar before non-identifier", "a $ sign", nil},
		{"token ends at non-identifier", "$user.", []string{"user"}},
		{"token at end of input", "hi $user", []string{"user"}},
		{"underscore names", "$_x and $a_b", []string{"_x", "a_b"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			names, err := f.Extract(tc.content)
			require.NoError(t, err)
			assert.Len(t, names, len(tc.want))
			for _, n := range tc.want {
				assert.Contains(t, names, n)
			}
		})
	}
}

// TestDollarFormatter_Extract_InvalidName_Fails verifies digit-leading tokens abort extraction.
func TestDollarFormatter_Extract_InvalidName_Fails(t *testing.T) {
	f := mustFormatter(t, StyleDollar)

	_, err := f.Extract("price $1x")
	require.Error(t, err, "A digit-leading token should abort extraction.")

	nameErr, ok := AsInvalidNameError(err)
	require.True(t, ok, "Error should carry the InvalidNameError kind.")
	assert.Equal(t, "1x", nameErr.Name)
}

// TestDollarFormatter_Format_SafeSubstitute verifies safe substitution semantics.
func TestDollarFormatter_Format_SafeSubstitute(t *testing.T) {
	f := mustFormatter(t, StyleDollar)

	tests := []struct {
		name    string
		content string
		values  map[string]string
		want    string
	}{
		{"simple substitution", "Hello $user!", map[string]string{"user": "Alice"}, "Hello Alice!"},
		{"missing value preserved", "Hello $user $missing", map[string]string{"user": "Alice"}, "Hello Alice $missing"},
		{"escape round-trip", "$$x", nil, "$x"},
		{"bare dollar preserved", "a $ sign", nil, "a $ sign"},
		{"trailing dollar", "done$", nil, "done$"},
		{"identity on plain text", "no delimiters here", map[string]string{"x": "y"}, "no delimiters here"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Format(tc.content, tc.values))
		})
	}
}

// Package template implements variable extraction and substitution for prompt
// template text. Two delimiter grammars are supported: brace-style ("{name}",
// escaped by doubling) and dollar-style ("$name", escaped by doubling). Both
// operate in a single left-to-right pass with no backtracking.
package template

// file: internal/template/formatter.go

import (
	"github.com/cockroachdb/errors"
)

// Style identifies one of the supported delimiter grammars.
type Style string

// Supported delimiter grammar styles.
const (
	// StyleBrace formats variables as "{name}"; "{{" and "}}" escape literal braces.
	StyleBrace Style = "brace"
	// StyleDollar formats variables as "$name"; "$$" escapes a literal dollar sign.
	StyleDollar Style = "dollar"
)

// Formatter extracts variable names from template content and substitutes
// values into it under one delimiter grammar. Implementations are stateless
// and safe to share across prompts.
type Formatter interface {
	// Extract returns the set of variable names referenced in content.
	// Escape sequences and unterminated markers yield no variables. A
	// malformed variable name aborts extraction with an InvalidNameError.
	Extract(content string) (map[string]struct{}, error)

	// Format substitutes values into content. Substitution is "safe": a
	// placeholder whose name is absent from values is emitted unchanged as
	// literal text, never an error.
	Format(content string, values map[string]string) string
}

// New returns the Formatter for the given style. The set of styles is closed;
// anything else is an error.
func New(style Style) (Formatter, error) {
	switch style {
	case StyleBrace:
		return braceFormatter{}, nil
	case StyleDollar:
		return dollarFormatter{}, nil
	default:
		return nil, errors.Newf("unknown formatter style: %q", style)
	}
}

// IsValidName reports whether name is a well-formed variable name:
// an ASCII letter or underscore followed by ASCII letters, digits or
// underscores.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// isNameChar reports whether c may appear inside a variable name.
func isNameChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// Package template implements variable extraction and substitution for prompt template text.
package template

// file: internal/template/dollar.go

import (
	"strings"
)

// dollarFormatter implements the "$name" grammar. "$$" escapes a literal
// dollar sign. A name token is a maximal run of ASCII alphanumerics and
// underscores; no terminator character is required.
type dollarFormatter struct{}

// Extract implements Formatter.Extract for the dollar grammar.
func (dollarFormatter) Extract(content string) (map[string]struct{}, error) {
	names := make(map[string]struct{})
	for i := 0; i < len(content); i++ {
		if content[i] != '$' {
			continue
		}
		if i+1 < len(content) && content[i+1] == '$' {
			// Literal escape, no variable recorded.
			i++
			continue
		}
		j := i + 1
		for j < len(content) && isNameChar(content[j]) {
			j++
		}
		name := content[i+1 : j]
		if name != "" {
			if !IsValidName(name) {
				return nil, NewInvalidNameError(name)
			}
			names[name] = struct{}{}
		}
		i = j - 1
	}
	return names, nil
}

// Format implements Formatter.Format for the dollar grammar.
func (dollarFormatter) Format(content string, values map[string]string) string {
	var out strings.Builder
	out.Grow(len(content))
	for i := 0; i < len(content); i++ {
		if content[i] != '$' {
			out.WriteByte(content[i])
			continue
		}
		if i+1 < len(content) && content[i+1] == '$' {
			out.WriteByte('$')
			i++
			continue
		}
		j := i + 1
		for j < len(content) && isNameChar(content[j]) {
			j++
		}
		name := content[i+1 : j]
		if name == "" {
			// Bare dollar sign with no identifier following it.
			out.WriteByte('$')
			continue
		}
		if value, ok := values[name]; ok {
			out.WriteString(value)
		} else {
			// Placeholder-preserving: leave the reference intact.
			out.WriteByte('$')
			out.WriteString(name)
		}
		i = j - 1
	}
	return out.String()
}

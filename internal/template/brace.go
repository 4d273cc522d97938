// Package template implements variable extraction and substitution for prompt template text.
package template

// file: internal/template/brace.go

import (
	"strings"
)

// braceFormatter implements the "{name}" grammar. "{{" and "}}" are escapes
// for literal braces. During formatting an unterminated "{name" and any
// placeholder without a value pass through as literal text.
type braceFormatter struct{}

// Extract implements Formatter.Extract for the brace grammar.
func (braceFormatter) Extract(content string) (map[string]struct{}, error) {
	names := make(map[string]struct{})
	for i := 0; i < len(content); i++ {
		if content[i] != '{' {
			continue
		}
		if i+1 < len(content) && content[i+1] == '{' {
			// Literal escape, no variable recorded.
			i++
			continue
		}
		end := strings.IndexByte(content[i+1:], '}')
		if end < 0 {
			// Unterminated marker: the partial token is discarded, not an error.
			break
		}
		name := content[i+1 : i+1+end]
		if name != "" {
			if !IsValidName(name) {
				return nil, NewInvalidNameError(name)
			}
			names[name] = struct{}{}
		}
		i += end + 1
	}
	return names, nil
}

// Format implements Formatter.Format for the brace grammar.
func (braceFormatter) Format(content string, values map[string]string) string {
	var out strings.Builder
	out.Grow(len(content))
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '{':
			if i+1 < len(content) && content[i+1] == '{' {
				out.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(content[i+1:], '}')
			if end < 0 {
				// Unterminated: emit the marker and the rest verbatim.
				out.WriteString(content[i:])
				return out.String()
			}
			name := content[i+1 : i+1+end]
			if value, ok := values[name]; ok {
				out.WriteString(value)
			} else {
				// Placeholder-preserving: leave the reference intact.
				out.WriteByte('{')
				out.WriteString(name)
				out.WriteByte('}')
			}
			i += end + 1
		case '}':
			if i+1 < len(content) && content[i+1] == '}' {
				i++
			}
			out.WriteByte('}')
		default:
			out.WriteByte(content[i])
		}
	}
	return out.String()
}

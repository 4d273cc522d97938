// Package prompt defines the prompt object served over MCP. A Prompt wraps one
// template's content and metadata, reconciles declared argument metadata
// against the variables actually present in the content, and exposes a render
// operation. Prompts are immutable once constructed: construction either fully
// succeeds or the prompt does not exist.
package prompt

// file: internal/prompt/prompt.go

import (
	"sort"

	"github.com/DiscreteTom/shinkuro-go/internal/template"
)

// ArgumentSpec is an argument as declared in a template record's metadata.
// A nil Default marks the argument as required at render time.
type ArgumentSpec struct {
	Name        string
	Description string
	Default     *string
}

// Record is the collaborator contract consumed by this package: one raw
// template record produced by the loader (file scanning and frontmatter
// parsing happen upstream).
type Record struct {
	Name        string
	Title       string
	Description string
	Arguments   []ArgumentSpec
	Content     string
}

// Argument describes one renderable argument of a constructed Prompt.
// Required is derived, never set directly: it is true iff the argument has no
// default value.
type Argument struct {
	Name        string
	Description string
	Required    bool
}

// Prompt is one registered template, ready to render. The argument list is
// fixed at construction: either it mirrors the declared metadata (verified
// against the content) or it was auto-discovered from the content.
type Prompt struct {
	name        string
	title       string
	description string
	arguments   []Argument
	content     string
	defaults    map[string]string
	formatter   template.Formatter
}

// New constructs a Prompt from a template record under the given formatter
// grammar.
//
// With autoDiscover set, the record must not declare any arguments; the
// argument list is built from the variables extracted from the content,
// sorted lexicographically, each required. Otherwise the set of declared
// argument names must exactly equal the extracted set, and declared defaults
// populate the defaults mapping.
func New(rec Record, formatter template.Formatter, autoDiscover bool) (*Prompt, error) {
	extracted, err := formatter.Extract(rec.Content)
	if err != nil {
		return nil, err
	}

	p := &Prompt{
		name:        rec.Name,
		title:       rec.Title,
		description: rec.Description,
		content:     rec.Content,
		defaults:    make(map[string]string),
		formatter:   formatter,
	}

	if autoDiscover {
		if len(rec.Arguments) != 0 {
			return nil, NewArgumentsNotEmptyError(rec.Name)
		}
		names := setToSortedSlice(extracted)
		p.arguments = make([]Argument, 0, len(names))
		for _, name := range names {
			p.arguments = append(p.arguments, Argument{Name: name, Required: true})
		}
		return p, nil
	}

	declared := make(map[string]struct{}, len(rec.Arguments))
	for _, spec := range rec.Arguments {
		if !template.IsValidName(spec.Name) {
			return nil, template.NewInvalidNameError(spec.Name)
		}
		declared[spec.Name] = struct{}{}
	}
	if !setsEqual(extracted, declared) {
		return nil, NewArgumentMismatchError(rec.Name, setToSortedSlice(extracted), setToSortedSlice(declared))
	}

	p.arguments = make([]Argument, 0, len(rec.Arguments))
	for _, spec := range rec.Arguments {
		required := spec.Default == nil
		if spec.Default != nil {
			p.defaults[spec.Name] = *spec.Default
		}
		p.arguments = append(p.arguments, Argument{
			Name:        spec.Name,
			Description: spec.Description,
			Required:    required,
		})
	}
	return p, nil
}

// Name returns the prompt's registry name.
func (p *Prompt) Name() string { return p.name }

// Title returns the prompt's human-readable title.
func (p *Prompt) Title() string { return p.title }

// Description returns the prompt's description.
func (p *Prompt) Description() string { return p.description }

// Arguments returns a copy of the prompt's argument list in declaration order.
func (p *Prompt) Arguments() []Argument {
	out := make([]Argument, len(p.arguments))
	copy(out, p.arguments)
	return out
}

// Render substitutes argument values into the template content. Overrides are
// applied on top of declared defaults (overrides win on collision). The first
// required argument in declaration order without a value fails the render
// with a MissingArgumentError; substitution itself never fails.
func (p *Prompt) Render(overrides map[string]string) (string, error) {
	merged := make(map[string]string, len(p.defaults)+len(overrides))
	for name, value := range p.defaults {
		merged[name] = value
	}
	for name, value := range overrides {
		merged[name] = value
	}

	for _, arg := range p.arguments {
		if !arg.Required {
			continue
		}
		if _, ok := merged[arg.Name]; !ok {
			return "", NewMissingArgumentError(p.name, arg.Name)
		}
	}

	return p.formatter.Format(p.content, merged), nil
}

func setToSortedSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for name := range a {
		if _, ok := b[name]; !ok {
			return false
		}
	}
	return true
}

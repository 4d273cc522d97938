// Package mcp implements the Model Context Protocol server logic for
// serving prompt templates over newline-delimited JSON-RPC 2.0.
package mcp

// file: internal/mcp/registry.go

import (
	"sort"

	"github.com/DiscreteTom/shinkuro-go/internal/logging"
	"github.com/DiscreteTom/shinkuro-go/internal/prompt"
)

// Registry is the immutable set of prompts the server exposes. It is built
// once at startup and only read afterwards, so lookups need no locking.
type Registry struct {
	prompts map[string]*prompt.Prompt
	names   []string
}

// NewRegistry builds a registry from loaded prompts. When two prompts share
// a name the later one wins, matching load order, and the collision is
// logged.
func NewRegistry(prompts []*prompt.Prompt, logger logging.Logger) *Registry {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	log := logger.WithField("component", "registry")

	byName := make(map[string]*prompt.Prompt, len(prompts))
	for _, p := range prompts {
		if _, exists := byName[p.Name()]; exists {
			log.Warn("Duplicate prompt name, keeping the later one.", "name", p.Name())
		}
		byName[p.Name()] = p
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Registry{prompts: byName, names: names}
}

// Get returns the prompt with the given name.
func (r *Registry) Get(name string) (*prompt.Prompt, bool) {
	p, ok := r.prompts[name]
	return p, ok
}

// Names returns all prompt names in lexicographic order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered prompts.
func (r *Registry) Len() int { return len(r.prompts) }

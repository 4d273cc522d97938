// Package mcp implements the Model Context Protocol server logic for
// serving prompt templates over newline-delimited JSON-RPC 2.0.
package mcp

// file: internal/mcp/handlers.go

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/DiscreteTom/shinkuro-go/internal/schema"
)

// handleInitialize answers the initialize request. The advertised protocol
// version and capabilities are fixed. Initialize always succeeds: client
// parameters that fail shape validation are logged, never rejected.
func (s *Server) handleInitialize(_ context.Context, params json.RawMessage) (json.RawMessage, error) {
	if err := s.validator.Validate(schema.TypeInitializeParams, params); err != nil {
		s.logger.Warn("Initialize params failed shape validation, proceeding anyway.", "error", err)
	}

	var req struct {
		ProtocolVersion string         `json:"protocolVersion"`
		ClientInfo      Implementation `json:"clientInfo"`
	}
	// Best effort; shape is already validated.
	_ = json.Unmarshal(params, &req)
	s.logger.Info("Handling initialize request.",
		"clientName", req.ClientInfo.Name,
		"clientProtocolVersion", req.ProtocolVersion)
	if req.ProtocolVersion != "" && req.ProtocolVersion != ProtocolVersion {
		s.logger.Warn("Client requested a different protocol version.",
			"clientRequested", req.ProtocolVersion, "serverVersion", ProtocolVersion)
	}

	result := InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities:    ServerCapabilities{Prompts: PromptsCapability{}},
		ServerInfo:      Implementation{Name: s.name, Version: s.version},
	}
	resultBytes, err := json.Marshal(result)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal initialize result")
	}
	return resultBytes, nil
}

// handleListPrompts answers prompts/list with every registered prompt in
// lexicographic name order. Pagination params are accepted and ignored; the
// whole list always fits in one page. Listing always succeeds.
func (s *Server) handleListPrompts(_ context.Context, params json.RawMessage) (json.RawMessage, error) {
	if err := s.validator.Validate(schema.TypeListPromptsParams, params); err != nil {
		s.logger.Debug("Ignoring unexpected prompts/list params.", "error", err)
	}

	descriptors := make([]PromptDescriptor, 0, s.registry.Len())
	for _, name := range s.registry.Names() {
		p, _ := s.registry.Get(name)
		descriptor := PromptDescriptor{
			Name:        p.Name(),
			Title:       p.Title(),
			Description: p.Description(),
		}
		for _, arg := range p.Arguments() {
			descriptor.Arguments = append(descriptor.Arguments, PromptArgumentDescriptor{
				Name:        arg.Name,
				Description: arg.Description,
				Required:    arg.Required,
			})
		}
		descriptors = append(descriptors, descriptor)
	}

	resultBytes, err := json.Marshal(ListPromptsResult{Prompts: descriptors})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal prompts/list result")
	}
	return resultBytes, nil
}

// handleGetPrompt answers prompts/get by rendering the named prompt with the
// supplied arguments.
func (s *Server) handleGetPrompt(_ context.Context, params json.RawMessage) (json.RawMessage, error) {
	if err := s.validator.Validate(schema.TypeGetPromptParams, params); err != nil {
		return nil, err
	}

	// An absent params member leaves nothing to decode; it falls through to
	// the missing-name check below.
	var req GetPromptParams
	if len(params) != 0 {
		if err := json.Unmarshal(params, &req); err != nil {
			return nil, errors.Wrap(err, "failed to decode prompts/get params")
		}
	}
	if req.Name == "" {
		return nil, NewMissingNameError()
	}

	p, ok := s.registry.Get(req.Name)
	if !ok {
		return nil, NewPromptNotFoundError(req.Name)
	}

	text, err := p.Render(req.Arguments)
	if err != nil {
		return nil, err
	}

	result := GetPromptResult{
		Description: p.Description(),
		Messages: []PromptMessage{
			{Role: "user", Content: TextContent{Type: "text", Text: text}},
		},
	}
	resultBytes, err := json.Marshal(result)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal prompts/get result")
	}
	return resultBytes, nil
}

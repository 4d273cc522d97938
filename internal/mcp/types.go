// Package mcp implements the Model Context Protocol server logic for
// serving prompt templates over newline-delimited JSON-RPC 2.0.
package mcp

// file: internal/mcp/types.go

import "encoding/json"

// Protocol constants.
const (
	// JSONRPCVersion is the only supported JSON-RPC version string.
	JSONRPCVersion = "2.0"
	// ProtocolVersion is the MCP revision this server implements.
	ProtocolVersion = "2025-06-18"
)

// Method names handled by the server.
const (
	MethodInitialize  = "initialize"
	MethodInitialized = "notifications/initialized"
	MethodListPrompts = "prompts/list"
	MethodGetPrompt   = "prompts/get"
)

// Request is an incoming JSON-RPC message. ID stays raw so the exact client
// value (number or string) can be echoed back; a nil ID means the field was
// absent and the message is a notification candidate.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

// Response is an outgoing JSON-RPC message. ID has no omitempty tag on
// purpose: a response must always carry the id member, serialized as JSON
// null when the request had none.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
}

// ErrorObject is the error member of a JSON-RPC error response.
type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Implementation identifies the server to the client.
type Implementation struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// PromptsCapability advertises prompt support. It is intentionally empty:
// this server does not emit list_changed notifications.
type PromptsCapability struct{}

// ServerCapabilities lists the feature sets the server supports.
type ServerCapabilities struct {
	Prompts PromptsCapability `json:"prompts"`
}

// InitializeResult is the payload answering an initialize request.
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      Implementation     `json:"serverInfo"`
}

// PromptArgumentDescriptor describes one argument in a prompt listing.
type PromptArgumentDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

// PromptDescriptor describes one prompt in a prompts/list result.
type PromptDescriptor struct {
	Name        string                     `json:"name"`
	Title       string                     `json:"title,omitempty"`
	Description string                     `json:"description,omitempty"`
	Arguments   []PromptArgumentDescriptor `json:"arguments,omitempty"`
}

// ListPromptsResult is the payload answering a prompts/list request. The
// prompts member is always present, as an empty array when nothing is loaded.
type ListPromptsResult struct {
	Prompts []PromptDescriptor `json:"prompts"`
}

// GetPromptParams are the parameters of a prompts/get request.
type GetPromptParams struct {
	Name      string            `json:"name"`
	Arguments map[string]string `json:"arguments"`
}

// TextContent is the text payload of a prompt message.
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// PromptMessage is one message of a rendered prompt.
type PromptMessage struct {
	Role    string      `json:"role"`
	Content TextContent `json:"content"`
}

// GetPromptResult is the payload answering a prompts/get request.
type GetPromptResult struct {
	Description string          `json:"description,omitempty"`
	Messages    []PromptMessage `json:"messages"`
}

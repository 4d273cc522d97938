// Package mcp implements the Model Context Protocol server logic for
// serving prompt templates over newline-delimited JSON-RPC 2.0.
//
// The server is single-threaded and synchronous: it reads one line, computes
// a response purely in-memory against the read-only registry, writes it, and
// repeats. A malformed line is skipped silently; end of input ends the loop
// normally. The only fatal condition is an I/O failure on the transport
// itself.
package mcp

// file: internal/mcp/server.go

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/DiscreteTom/shinkuro-go/internal/logging"
	"github.com/DiscreteTom/shinkuro-go/internal/mcp/state"
	"github.com/DiscreteTom/shinkuro-go/internal/metrics"
	"github.com/DiscreteTom/shinkuro-go/internal/schema"
	"github.com/DiscreteTom/shinkuro-go/internal/transport"
)

// Server dispatches JSON-RPC requests against a read-only prompt registry.
type Server struct {
	name      string
	version   string
	registry  *Registry
	validator *schema.Validator
	lifecycle *state.Lifecycle
	transport transport.Transport
	collector *metrics.Collector
	logger    logging.Logger
}

// NewServer creates a server for the given registry and transport.
func NewServer(name, version string, registry *Registry, validator *schema.Validator, t transport.Transport, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	return &Server{
		name:      name,
		version:   version,
		registry:  registry,
		validator: validator,
		lifecycle: state.NewLifecycle(logger),
		transport: t,
		collector: metrics.NewCollector(),
		logger:    logger.WithField("component", "mcp_server"),
	}
}

// Run processes messages until the input stream is exhausted or ctx is
// canceled. A closed transport ends the loop normally; any other transport
// failure is returned.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Server loop started.", "prompts", s.registry.Len())
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Context canceled, stopping server loop.")
			return ctx.Err()
		default:
		}

		msgBytes, readErr := s.transport.ReadMessage(ctx)
		if readErr != nil {
			if transport.IsClosedError(readErr) {
				s.logger.Info("Input stream exhausted, stopping server loop.")
				s.logStats()
				return nil
			}
			if errors.Is(readErr, context.Canceled) || errors.Is(readErr, context.DeadlineExceeded) {
				return readErr
			}
			// Oversized or otherwise unreadable message: skip and continue.
			s.logger.Warn("Failed to read message, skipping.", "error", readErr)
			continue
		}

		if err := s.processMessage(ctx, msgBytes); err != nil {
			return errors.Wrap(err, "failed to write response")
		}
	}
}

// processMessage handles one raw line. It returns an error only when writing
// the response fails; every request-level failure becomes an error response.
func (s *Server) processMessage(ctx context.Context, msgBytes []byte) error {
	var req Request
	if err := json.Unmarshal(msgBytes, &req); err != nil || req.Method == "" {
		// Not a request we can answer; the line is dropped by design of the
		// wire contract.
		s.collector.RecordSkippedLine()
		s.logger.Debug("Skipping malformed message line.", "error", err)
		return nil
	}

	s.lifecycle.Observe(ctx, req.Method)

	if req.Method == MethodInitialized {
		s.logger.Debug("Client reported initialization complete.")
		return nil
	}

	resp := s.dispatch(ctx, &req)
	respBytes, err := json.Marshal(resp)
	if err != nil {
		// Should not happen for these payloads; drop the response rather
		// than corrupting the stream.
		s.logger.Error("Failed to marshal response.", "method", req.Method, "error", err)
		return nil
	}
	if err := s.transport.WriteMessage(ctx, respBytes); err != nil {
		s.logger.Error("Failed to write response.",
			"method", req.Method, "error", fmt.Sprintf("%+v", err))
		return err
	}
	return nil
}

// dispatch routes one request to its handler and wraps the outcome in a
// response echoing the request id (JSON null when the request had none).
func (s *Server) dispatch(ctx context.Context, req *Request) *Response {
	resp := &Response{JSONRPC: JSONRPCVersion, ID: req.ID}

	var result json.RawMessage
	var err error
	switch req.Method {
	case MethodInitialize:
		result, err = s.handleInitialize(ctx, req.Params)
	case MethodListPrompts:
		result, err = s.handleListPrompts(ctx, req.Params)
	case MethodGetPrompt:
		result, err = s.handleGetPrompt(ctx, req.Params)
	default:
		err = NewMethodNotFoundError(req.Method)
	}

	if err != nil {
		resp.Error = mapError(err)
		s.collector.RecordRequest(req.Method, true)
		s.logger.Debug("Request failed.",
			"method", req.Method,
			"code", resp.Error.Code,
			"error", err)
		return resp
	}
	resp.Result = result
	s.collector.RecordRequest(req.Method, false)
	return resp
}

// logStats emits a one-line summary of the session's traffic.
func (s *Server) logStats() {
	snap := s.collector.Snapshot()
	s.logger.Info("Session summary.",
		"uptime", snap.Uptime,
		"requests", snap.TotalRequests,
		"failed", snap.FailedRequests,
		"skippedLines", snap.SkippedLines)
}

// Package transport defines the framing layer for MCP messages: reading and
// writing newline-delimited JSON objects over a byte stream. The transport
// deals only in raw lines; JSON parsing and protocol semantics belong to the
// dispatcher above it.
package transport

// file: internal/transport/transport.go

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/DiscreteTom/shinkuro-go/internal/logging"
)

// MaxMessageSize defines the maximum allowed size for a single JSON-RPC
// message in bytes. This helps prevent memory exhaustion from unbounded
// input lines.
const MaxMessageSize = 1024 * 1024 // 1MB.

// Transport is the interface for exchanging raw JSON-RPC message lines.
type Transport interface {
	// ReadMessage reads the next line from the transport, blocking until a
	// line is available or the stream ends. End of input yields a closed
	// transport error (detectable via IsClosedError).
	ReadMessage(ctx context.Context) ([]byte, error)

	// WriteMessage writes one message line to the transport and flushes it.
	WriteMessage(ctx context.Context, message []byte) error

	// Close shuts down the transport, closing the underlying stream if any.
	Close() error
}

// NDJSONTransport implements Transport for newline-delimited JSON over an
// arbitrary reader/writer pair, typically stdin/stdout.
type NDJSONTransport struct {
	reader    *bufio.Reader
	writer    *bufio.Writer
	closer    io.Closer
	logger    logging.Logger
	writeLock sync.Mutex // Ensures atomic line writes.
	closed    bool
	closeLock sync.RWMutex
}

// NewNDJSONTransport creates a transport reading NDJSON messages from reader
// and writing them to writer. closer may be nil when the streams do not need
// closing (stdio).
func NewNDJSONTransport(reader io.Reader, writer io.Writer, closer io.Closer, logger logging.Logger) Transport {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	return &NDJSONTransport{
		reader: bufio.NewReader(reader),
		writer: bufio.NewWriter(writer),
		closer: closer,
		logger: logger.WithField("component", "ndjson_transport"),
	}
}

// ReadMessage implements Transport.ReadMessage. It reads a single line of
// data delimited by a newline character. The read is a plain blocking read:
// end-of-stream is the only way a quiet connection terminates.
func (t *NDJSONTransport) ReadMessage(ctx context.Context) ([]byte, error) {
	t.closeLock.RLock()
	if t.closed {
		t.closeLock.RUnlock()
		return nil, NewClosedError("read")
	}
	t.closeLock.RUnlock()

	if err := ctx.Err(); err != nil {
		return nil, NewClosedError("read")
	}

	var buffer bytes.Buffer
	for {
		line, prefix, err := t.reader.ReadLine()
		if err != nil {
			if err == io.EOF {
				// A partial trailing line without a newline still counts as a message.
				if buffer.Len() > 0 {
					break
				}
				return nil, NewError(ErrTransportClosed, "connection closed by peer", io.EOF)
			}
			return nil, NewError(ErrGeneric, "failed to read message line", err)
		}

		buffer.Write(line)
		if buffer.Len() > MaxMessageSize {
			size := buffer.Len()
			// Drain the rest of the line so the next read starts on a fresh
			// message boundary.
			for prefix {
				rest, p, drainErr := t.reader.ReadLine()
				if drainErr != nil {
					break
				}
				size += len(rest)
				prefix = p
			}
			return nil, NewMessageSizeError(size, MaxMessageSize)
		}
		if !prefix {
			break
		}
	}

	message := buffer.Bytes()
	t.logger.Debug("Received raw message.", "size", len(message))
	return message, nil
}

// WriteMessage implements Transport.WriteMessage. It writes the message
// followed by a newline and flushes, so each response occupies exactly one
// output line.
func (t *NDJSONTransport) WriteMessage(_ context.Context, message []byte) error {
	t.closeLock.RLock()
	if t.closed {
		t.closeLock.RUnlock()
		return NewClosedError("write")
	}
	t.closeLock.RUnlock()

	if len(message) > MaxMessageSize {
		return NewMessageSizeError(len(message), MaxMessageSize)
	}

	t.writeLock.Lock()
	defer t.writeLock.Unlock()

	if _, err := t.writer.Write(message); err != nil {
		return NewError(ErrGeneric, "failed to write message", err)
	}
	if err := t.writer.WriteByte('\n'); err != nil {
		return NewError(ErrGeneric, "failed to write message delimiter", err)
	}
	if err := t.writer.Flush(); err != nil {
		return NewError(ErrGeneric, "failed to flush message", err)
	}

	t.logger.Debug("Wrote message.", "size", len(message))
	return nil
}

// Close implements Transport.Close.
func (t *NDJSONTransport) Close() error {
	t.closeLock.Lock()
	defer t.closeLock.Unlock()

	if t.closed {
		return nil
	}
	t.logger.Info("Closing NDJSON transport.")
	t.closed = true

	if t.closer != nil {
		if err := t.closer.Close(); err != nil {
			return NewError(ErrTransportClosed, "failed to close underlying transport stream", err)
		}
	}
	return nil
}

// Package metrics collects in-process counters about the server's request
// handling. Counters are logged on shutdown; there is no external exposition
// since stdout is reserved for the protocol.
package metrics

// file: internal/metrics/metrics.go

import (
	"runtime"
	"sync"
	"time"
)

// Snapshot is a point-in-time copy of the collected counters.
type Snapshot struct {
	Uptime         time.Duration
	TotalRequests  int
	FailedRequests int
	SkippedLines   int
	ByMethod       map[string]int
	NumGoroutines  int
	MemoryAlloc    uint64
}

// Collector accumulates request counters. Safe for concurrent use.
type Collector struct {
	mu             sync.Mutex
	startTime      time.Time
	totalRequests  int
	failedRequests int
	skippedLines   int
	byMethod       map[string]int
}

// NewCollector creates a collector with the clock started.
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		byMethod:  make(map[string]int),
	}
}

// RecordRequest counts one dispatched request and whether it failed.
func (c *Collector) RecordRequest(method string, failed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totalRequests++
	c.byMethod[method]++
	if failed {
		c.failedRequests++
	}
}

// RecordSkippedLine counts one malformed input line that was dropped.
func (c *Collector) RecordSkippedLine() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skippedLines++
}

// Snapshot returns a copy of the current counters.
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	byMethod := make(map[string]int, len(c.byMethod))
	for method, count := range c.byMethod {
		byMethod[method] = count
	}
	return Snapshot{
		Uptime:         time.Since(c.startTime),
		TotalRequests:  c.totalRequests,
		FailedRequests: c.failedRequests,
		SkippedLines:   c.skippedLines,
		ByMethod:       byMethod,
		NumGoroutines:  runtime.NumGoroutine(),
		MemoryAlloc:    memStats.Alloc,
	}
}

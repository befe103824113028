// Package metrics provides lightweight, lock-free counters for tracking
// what a goenigma run enciphered.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for a goenigma run.
// A nil Collector is safe to use — all methods become no-ops.
type Collector struct {
	letters     atomic.Int64 // enciphered, one rotor step each
	passthrough atomic.Int64 // characters outside the alphabet
	jobsActive  atomic.Int64
	jobsTotal   atomic.Int64
	errorsTotal atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Character metrics ────────────────────────────────────────────────

// LetterEnciphered records one letter sent through the rotors.
func (c *Collector) LetterEnciphered() {
	if c == nil {
		return
	}
	c.letters.Add(1)
}

// PassedThrough records one character copied unchanged.
func (c *Collector) PassedThrough() {
	if c == nil {
		return
	}
	c.passthrough.Add(1)
}

// Letters returns the number of letters enciphered.
func (c *Collector) Letters() int64 {
	if c == nil {
		return 0
	}
	return c.letters.Load()
}

// PassThrough returns the number of characters passed through.
func (c *Collector) PassThrough() int64 {
	if c == nil {
		return 0
	}
	return c.passthrough.Load()
}

// ── Job metrics ──────────────────────────────────────────────────────

// JobStarted increments both the active and total job counters.
func (c *Collector) JobStarted() {
	if c == nil {
		return
	}
	c.jobsActive.Add(1)
	c.jobsTotal.Add(1)
}

// JobFinished decrements the active job counter.
func (c *Collector) JobFinished() {
	if c == nil {
		return
	}
	c.jobsActive.Add(-1)
}

// ActiveJobs returns the number of jobs in flight.
func (c *Collector) ActiveJobs() int64 {
	if c == nil {
		return 0
	}
	return c.jobsActive.Load()
}

// TotalJobs returns the lifetime job count.
func (c *Collector) TotalJobs() int64 {
	if c == nil {
		return 0
	}
	return c.jobsTotal.Load()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime           string `json:"uptime"`
	Letters          int64  `json:"letters"`
	PassThrough      int64  `json:"pass_through"`
	JobsActive       int64  `json:"jobs_active"`
	JobsTotal        int64  `json:"jobs_total"`
	ErrorsTotal      int64  `json:"errors_total"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:      time.Since(c.startTime).Truncate(time.Millisecond).String(),
		Letters:     c.letters.Load(),
		PassThrough: c.passthrough.Load(),
		JobsActive:  c.jobsActive.Load(),
		JobsTotal:   c.jobsTotal.Load(),
		ErrorsTotal: c.errorsTotal.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}

package reconcile

import (
	"fmt"
	"log/slog"
)

// Warner receives non-fatal developer warnings emitted during
// reconciliation, such as badly-cased SVG attribute names. Warnings never
// change the produced output.
type Warner interface {
	Warnf(format string, args ...any)
}

// NopWarner discards all warnings.
type NopWarner struct{}

// Warnf implements Warner.
func (NopWarner) Warnf(string, ...any) {}

// Collector accumulates warnings in order. Not safe for concurrent use.
type Collector struct {
	Warnings []string
}

// Warnf implements Warner.
func (c *Collector) Warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

// Reset clears collected warnings.
func (c *Collector) Reset() {
	c.Warnings = c.Warnings[:0]
}

// SlogWarner forwards warnings to a structured logger.
type SlogWarner struct {
	Logger *slog.Logger
}

// Warnf implements Warner.
func (s SlogWarner) Warnf(format string, args ...any) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn(fmt.Sprintf(format, args...), "component", "reconcile")
}

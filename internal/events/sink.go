// Package events carries per-step execution events to observability sinks.
// Sinks are write-only and never influence control flow.
package events

import "log/slog"

// StepEvent describes the outcome of one executed step.
type StepEvent struct {
	StepNumber int    `json:"step_number"`
	StepText   string `json:"step_text"`
	Kind       string `json:"kind"`
	Status     string `json:"status"` // success, skipped, error, cancelled
	Reason     string `json:"reason,omitempty"`
	TotalSteps int    `json:"total_steps"`
}

// Sink receives execution events. Implementations must not block the
// pipeline for long and must never panic.
type Sink interface {
	StepCompleted(ev StepEvent)
	TierFellThrough(tier, reason string)
	CommandCompleted(success bool)
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) StepCompleted(StepEvent)        {}
func (NopSink) TierFellThrough(string, string) {}
func (NopSink) CommandCompleted(bool)          {}

// LogSink writes events through a structured logger.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) StepCompleted(ev StepEvent) {
	s.Logger.Info("step completed",
		"step", ev.StepNumber,
		"total", ev.TotalSteps,
		"kind", ev.Kind,
		"status", ev.Status,
		"reason", ev.Reason,
	)
}

func (s LogSink) TierFellThrough(tier, reason string) {
	s.Logger.Warn("pipeline tier fell through", "tier", tier, "reason", reason)
}

func (s LogSink) CommandCompleted(success bool) {
	s.Logger.Info("command completed", "success", success)
}

// MultiSink fans events out to several sinks.
type MultiSink []Sink

func (m MultiSink) StepCompleted(ev StepEvent) {
	for _, s := range m {
		s.StepCompleted(ev)
	}
}

func (m MultiSink) TierFellThrough(tier, reason string) {
	for _, s := range m {
		s.TierFellThrough(tier, reason)
	}
}

func (m MultiSink) CommandCompleted(success bool) {
	for _, s := range m {
		s.CommandCompleted(success)
	}
}

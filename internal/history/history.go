// Package history persists executed commands. The core only appends;
// reading back is a reporting concern (the history CLI command).
package history

import (
	"context"
	"time"
)

// StepEntry summarizes one executed step inside a record.
type StepEntry struct {
	Ordinal int    `json:"step"             yaml:"step"`
	Text    string `json:"text"             yaml:"text"`
	Kind    string `json:"kind"             yaml:"kind"`
	Status  string `json:"status"           yaml:"status"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Record captures one executed command.
type Record struct {
	Command   string      `json:"command"   yaml:"command"`
	Steps     []StepEntry `json:"steps"     yaml:"steps"`
	Success   bool        `json:"success"   yaml:"success"`
	Timestamp time.Time   `json:"timestamp" yaml:"timestamp"`
}

// Store is an append-only command log.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Recent(ctx context.Context, limit int) ([]Record, error)
	Close() error
}

// NopStore discards records; used when history is disabled.
type NopStore struct{}

func (NopStore) Append(context.Context, Record) error          { return nil }
func (NopStore) Recent(context.Context, int) ([]Record, error) { return nil, nil }
func (NopStore) Close() error                                  { return nil }

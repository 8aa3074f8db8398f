// Package semantic defines the language-model collaborator contract. The
// core only consumes it: segmentation assistance, target-label extraction,
// and direct action generation. Malformed or empty responses are reported
// as errors and handled upstream as pipeline-tier failures.
package semantic

import (
	"context"
	"errors"

	"github.com/voxctl/voxctl/internal/perception"
)

// ErrEmptyResponse indicates the service returned nothing usable.
var ErrEmptyResponse = errors.New("semantic service returned an empty response")

// Action is one primitive produced by direct generation.
type Action struct {
	Op        string   `json:"op"` // click, type, key, scroll
	X         int      `json:"x,omitempty"`
	Y         int      `json:"y,omitempty"`
	Text      string   `json:"text,omitempty"`
	Keys      []string `json:"keys,omitempty"`
	Direction string   `json:"direction,omitempty"`
	Amount    int      `json:"amount,omitempty"`
}

// Service is the semantic collaborator surface used by the pipeline tiers.
type Service interface {
	// Segment splits an utterance into ordered step strings.
	Segment(ctx context.Context, utterance string) ([]string, error)

	// ExtractLabel returns the target label for one step, optionally
	// grounded on the current candidate texts.
	ExtractLabel(ctx context.Context, step string, candidates []string) (string, error)

	// GenerateActions produces a primitive action script directly from the
	// utterance and the detected candidates, bypassing structured steps.
	GenerateActions(ctx context.Context, utterance string, candidates []perception.Candidate) ([]Action, error)
}

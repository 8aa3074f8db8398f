// Package perception defines the on-screen candidate model and the detector
// contract. The core never performs detection itself; candidates arrive
// from an accessibility reader, an OCR pass, or an object-detection model,
// all behind the Detector interface.
package perception

import "context"

// Detector source labels.
const (
	SourceAccessibility = "ax"
	SourceOCR           = "ocr"
	SourceVision        = "vision"
)

// Candidate is a detected on-screen text/element available for matching.
// Candidates are read-only within a resolution call.
type Candidate struct {
	Text   string `yaml:"text"             json:"text"`
	Bounds [4]int `yaml:"bounds"           json:"bounds"` // [x, y, width, height] in screen points
	Source string `yaml:"source,omitempty" json:"source,omitempty"`
}

// Center returns the candidate's click point.
func (c Candidate) Center() (int, int) {
	return c.Bounds[0] + c.Bounds[2]/2, c.Bounds[1] + c.Bounds[3]/2
}

// Snapshot carries one capture of the screen for detectors that need pixels.
// Accessibility-backed detectors ignore Image and read the live tree.
type Snapshot struct {
	Image  []byte
	Width  int
	Height int
}

// Detector produces the candidate set for one resolution call.
type Detector interface {
	Detect(ctx context.Context, snap Snapshot) ([]Candidate, error)
}

// DetectorFunc adapts a function to the Detector interface.
type DetectorFunc func(ctx context.Context, snap Snapshot) ([]Candidate, error)

func (f DetectorFunc) Detect(ctx context.Context, snap Snapshot) ([]Candidate, error) {
	return f(ctx, snap)
}

package perception

import (
	"context"
	"fmt"
	"strings"

	"github.com/voxctl/voxctl/internal/model"
	"github.com/voxctl/voxctl/internal/platform"
)

// AccessibilityDetector derives candidates from the OS accessibility tree.
// Each labeled leaf element becomes one candidate; container elements only
// contribute when none of their descendants carry text, so the candidate
// list stays at the granularity a user would name.
type AccessibilityDetector struct {
	reader platform.Reader
	opts   platform.ReadOptions
}

// NewAccessibilityDetector wraps a platform reader. opts scopes which
// windows are read (app, window title, pid).
func NewAccessibilityDetector(reader platform.Reader, opts platform.ReadOptions) *AccessibilityDetector {
	return &AccessibilityDetector{reader: reader, opts: opts}
}

// Detect reads the element tree and flattens it into candidates. The
// snapshot is ignored; the accessibility layer is its own source of truth.
func (d *AccessibilityDetector) Detect(ctx context.Context, _ Snapshot) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	elements, err := d.reader.ReadElements(d.opts)
	if err != nil {
		return nil, fmt.Errorf("read elements: %w", err)
	}
	return CandidatesFromElements(elements), nil
}

// CandidatesFromElements converts an element tree into the flat candidate
// list used by the resolver.
func CandidatesFromElements(elements []model.Element) []Candidate {
	var out []Candidate
	for _, el := range elements {
		collectCandidates(el, &out)
	}
	return out
}

func collectCandidates(el model.Element, out *[]Candidate) {
	before := len(*out)
	for _, child := range el.Children {
		collectCandidates(child, out)
	}
	childrenContributed := len(*out) > before

	text := elementText(el)
	if text == "" || childrenContributed {
		return
	}
	if el.Bounds[2] <= 0 || el.Bounds[3] <= 0 {
		return
	}
	*out = append(*out, Candidate{
		Text:   text,
		Bounds: el.Bounds,
		Source: SourceAccessibility,
	})
}

// elementText picks the label a user would refer to: title first, then
// value, then the accessibility description.
func elementText(el model.Element) string {
	for _, s := range []string{el.Title, el.Value, el.Description} {
		if t := strings.TrimSpace(s); t != "" {
			return t
		}
	}
	return ""
}

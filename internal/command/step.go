// Package command turns a raw utterance into an ordered list of atomic
// steps: segmentation, action-kind classification, and target extraction.
package command

// Kind is the closed set of step action kinds.
type Kind string

const (
	// KindKeyCombo is a keyboard combination or single key press.
	KindKeyCombo Kind = "keyboard-combo"
	// KindTyping types literal text, optionally into a named field.
	KindTyping Kind = "typing"
	// KindScroll scrolls the frontmost window.
	KindScroll Kind = "scroll"
	// KindUIAction clicks or otherwise acts on a named on-screen element.
	KindUIAction Kind = "ui-element-action"
	// KindReference acts on the last resolved coordinate ("click it").
	KindReference Kind = "reference-action"
)

// LabelSource records which extraction path produced a step's target label.
// The resolver selects its score table based on it.
type LabelSource string

const (
	// SourceSemantic means the label came from the semantic service.
	SourceSemantic LabelSource = "semantic"
	// SourceHeuristic means the label came from the deterministic extractor.
	SourceHeuristic LabelSource = "heuristic"
)

// Step is one atomic action derived from an utterance. Steps are created by
// the segmenter/classifier/extractor and never mutated afterwards.
type Step struct {
	Ordinal int         `yaml:"step"                json:"step"`
	Text    string      `yaml:"text"                json:"text"`
	Kind    Kind        `yaml:"kind"                json:"kind"`
	Target  string      `yaml:"target,omitempty"    json:"target,omitempty"`
	Source  LabelSource `yaml:"source,omitempty"    json:"source,omitempty"`

	// Kind-specific parameters.
	Keys      []string `yaml:"keys,omitempty"      json:"keys,omitempty"`
	Payload   string   `yaml:"payload,omitempty"   json:"payload,omitempty"`
	Direction string   `yaml:"direction,omitempty" json:"direction,omitempty"`
	Amount    int      `yaml:"amount,omitempty"    json:"amount,omitempty"`
}

// NeedsTarget reports whether executing the step requires resolving a target
// label against on-screen candidates.
func (s Step) NeedsTarget() bool {
	switch s.Kind {
	case KindUIAction:
		return true
	case KindTyping:
		return s.Target != ""
	default:
		return false
	}
}

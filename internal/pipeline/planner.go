// Package pipeline chains resolution tiers: a semantic planner backed by
// the language-model service, a deterministic planner built on the local
// segmenter and classifier, and a direct-generation tier of last resort.
// A tier that cannot produce a plan hands the utterance to the next one.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/voxctl/voxctl/internal/command"
	"github.com/voxctl/voxctl/internal/perception"
	"github.com/voxctl/voxctl/internal/semantic"
)

// Planner turns an utterance into an ordered list of executable steps.
// Returning an error means the whole tier failed and the next tier should
// run; per-step problems are left for the orchestrator to report.
type Planner interface {
	Name() string
	Plan(ctx context.Context, utterance string) ([]command.Step, error)
}

// SemanticPlanner segments and labels steps through the semantic service.
// Labels it produces carry the semantic source, which selects the
// higher-trust score table in the resolver.
type SemanticPlanner struct {
	svc      semantic.Service
	detector perception.Detector
}

// NewSemanticPlanner creates a planner over svc. detector is optional; when
// present, extraction prompts are grounded on the current candidate texts.
func NewSemanticPlanner(svc semantic.Service, detector perception.Detector) *SemanticPlanner {
	return &SemanticPlanner{svc: svc, detector: detector}
}

func (p *SemanticPlanner) Name() string { return "semantic" }

func (p *SemanticPlanner) Plan(ctx context.Context, utterance string) ([]command.Step, error) {
	segs, err := p.svc.Segment(ctx, utterance)
	if err != nil {
		return nil, fmt.Errorf("semantic segmentation: %w", err)
	}
	if len(segs) == 0 {
		return nil, semantic.ErrEmptyResponse
	}

	var texts []string
	if p.detector != nil {
		if cands, err := p.detector.Detect(ctx, perception.Snapshot{}); err == nil {
			texts = make([]string, 0, len(cands))
			for _, c := range cands {
				texts = append(texts, c.Text)
			}
		}
	}

	steps := make([]command.Step, 0, len(segs))
	for i, seg := range segs {
		st := command.Classify(i+1, seg)
		st.Source = command.SourceSemantic
		if st.Kind == command.KindUIAction || (st.Kind == command.KindTyping && st.Target != "") {
			label, err := p.svc.ExtractLabel(ctx, seg, texts)
			switch {
			case errors.Is(err, semantic.ErrEmptyResponse):
				// Keep whatever the classifier found, at heuristic trust.
				st.Source = command.SourceHeuristic
				if st.Target == "" {
					if tgt, terr := command.ExtractTarget(st); terr == nil {
						st.Target = tgt
					}
				}
			case err != nil:
				return nil, fmt.Errorf("semantic label extraction: %w", err)
			default:
				st.Target = label
			}
		}
		steps = append(steps, st)
	}
	return steps, nil
}

// HeuristicPlanner is the deterministic tier: local segmentation,
// classification, and target extraction with no external calls. It cannot
// fail, so it terminates every fallback chain that includes it.
type HeuristicPlanner struct{}

func (HeuristicPlanner) Name() string { return "deterministic" }

func (HeuristicPlanner) Plan(ctx context.Context, utterance string) ([]command.Step, error) {
	steps := command.ClassifySteps(command.Segment(utterance))
	for i := range steps {
		steps[i].Source = command.SourceHeuristic
		if steps[i].Kind == command.KindUIAction && steps[i].Target == "" {
			if tgt, err := command.ExtractTarget(steps[i]); err == nil {
				steps[i].Target = tgt
			}
		}
	}
	return steps, nil
}

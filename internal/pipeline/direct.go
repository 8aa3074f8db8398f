package pipeline

import (
	"context"
	"fmt"

	"github.com/voxctl/voxctl/internal/actions"
	"github.com/voxctl/voxctl/internal/orchestrator"
	"github.com/voxctl/voxctl/internal/perception"
	"github.com/voxctl/voxctl/internal/semantic"
)

// DirectTier is the last-resort tier. It asks the semantic service for a
// raw action script grounded on the detected candidates and dispatches it
// verbatim, bypassing step classification and target resolution entirely.
type DirectTier struct {
	svc      semantic.Service
	detector perception.Detector
	actuator actions.Actuator
	gate     *orchestrator.Gate
}

// DirectOption configures a DirectTier.
type DirectOption func(*DirectTier)

// WithDirectGate sets the dispatch gate. Pass the orchestrator's gate so
// direct-tier scripts and planned commands serialize against each other.
func WithDirectGate(g *orchestrator.Gate) DirectOption {
	return func(d *DirectTier) { d.gate = g }
}

// NewDirectTier creates the direct-generation tier.
func NewDirectTier(svc semantic.Service, detector perception.Detector, actuator actions.Actuator, opts ...DirectOption) *DirectTier {
	d := &DirectTier{svc: svc, detector: detector, actuator: actuator, gate: orchestrator.NewGate()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *DirectTier) Name() string { return "direct" }

// Run generates and dispatches an action script, returning one record per
// action so the command report keeps its per-step shape. The whole script
// dispatches under the gate; generation and detection happen outside it.
func (d *DirectTier) Run(ctx context.Context, sess *orchestrator.Session, utterance string) ([]orchestrator.Record, error) {
	cands, err := d.detector.Detect(ctx, perception.Snapshot{})
	if err != nil {
		return nil, fmt.Errorf("detect candidates: %w", err)
	}
	acts, err := d.svc.GenerateActions(ctx, utterance, cands)
	if err != nil {
		return nil, fmt.Errorf("generate actions: %w", err)
	}
	if len(acts) == 0 {
		return nil, semantic.ErrEmptyResponse
	}

	release, err := d.gate.Acquire(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	records := make([]orchestrator.Record, 0, len(acts))
	for i, a := range acts {
		rec := orchestrator.Record{
			Step:   i + 1,
			Text:   describeAction(a),
			Kind:   a.Op,
			Status: orchestrator.StatusSuccess,
		}
		if ctx.Err() != nil {
			rec.Status = orchestrator.StatusCancelled
			rec.Reason = "command cancelled"
			records = append(records, rec)
			continue
		}
		if err := d.dispatch(ctx, a); err != nil {
			rec.Status = orchestrator.StatusError
			rec.Reason = err.Error()
		}
		records = append(records, rec)
	}
	return records, nil
}

func (d *DirectTier) dispatch(ctx context.Context, a semantic.Action) error {
	switch a.Op {
	case "click":
		return d.actuator.Click(ctx, a.X, a.Y)
	case "type":
		return d.actuator.Type(ctx, a.Text)
	case "key":
		return d.actuator.KeyPress(ctx, a.Keys)
	case "scroll":
		return d.actuator.Scroll(ctx, a.Direction, a.Amount)
	default:
		return fmt.Errorf("unknown action op %q", a.Op)
	}
}

func describeAction(a semantic.Action) string {
	switch a.Op {
	case "click":
		return fmt.Sprintf("click (%d, %d)", a.X, a.Y)
	case "type":
		return fmt.Sprintf("type %q", a.Text)
	case "key":
		return fmt.Sprintf("press %v", a.Keys)
	case "scroll":
		return fmt.Sprintf("scroll %s %d", a.Direction, a.Amount)
	default:
		return a.Op
	}
}

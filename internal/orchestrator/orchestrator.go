// Package orchestrator executes classified steps sequentially against the
// screen, resolving targets through the matcher and dispatching action
// primitives through an actuator.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voxctl/voxctl/internal/actions"
	"github.com/voxctl/voxctl/internal/command"
	"github.com/voxctl/voxctl/internal/events"
	"github.com/voxctl/voxctl/internal/match"
	"github.com/voxctl/voxctl/internal/perception"
)

// Orchestrator runs steps one at a time in order. A step failing never
// aborts the command: later steps still run, because the utterance may
// contain independent actions.
type Orchestrator struct {
	detector perception.Detector
	actuator actions.Actuator
	sink     events.Sink
	gate     *Gate
	matchCfg match.Config
	screen   [2]int
	logger   *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithSink sets the event sink. Defaults to a no-op sink.
func WithSink(s events.Sink) Option {
	return func(o *Orchestrator) { o.sink = s }
}

// WithGate sets the dispatch gate shared across commands.
func WithGate(g *Gate) Option {
	return func(o *Orchestrator) { o.gate = g }
}

// WithMatchConfig overrides the default scoring configuration.
func WithMatchConfig(cfg match.Config) Option {
	return func(o *Orchestrator) { o.matchCfg = cfg }
}

// WithScreen sets the screen size used for directional score bonuses.
func WithScreen(width, height int) Option {
	return func(o *Orchestrator) { o.screen = [2]int{width, height} }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// New creates an Orchestrator around a candidate detector and an actuator.
func New(detector perception.Detector, actuator actions.Actuator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		detector: detector,
		actuator: actuator,
		sink:     events.NopSink{},
		gate:     NewGate(),
		matchCfg: match.DefaultConfig(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Execute dispatches every step in order and returns one Record per step.
// The session gate is held for the whole sequence so a concurrent command
// cannot interleave its primitives. Cancellation via ctx marks the current
// and all remaining steps cancelled without dispatching them.
func (o *Orchestrator) Execute(ctx context.Context, sess *Session, steps []command.Step) ([]Record, error) {
	release, err := o.gate.Acquire(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	records := make([]Record, 0, len(steps))
	for i, st := range steps {
		if ctx.Err() != nil {
			for _, rest := range steps[i:] {
				rec := newRecord(rest, StatusCancelled, "command cancelled")
				records = append(records, rec)
				o.emit(rec, len(steps))
			}
			break
		}
		rec := o.runStep(ctx, sess, st)
		records = append(records, rec)
		o.emit(rec, len(steps))
	}
	return records, nil
}

func (o *Orchestrator) emit(rec Record, total int) {
	o.sink.StepCompleted(events.StepEvent{
		StepNumber: rec.Step,
		StepText:   rec.Text,
		Kind:       rec.Kind,
		Status:     rec.Status,
		Reason:     rec.Reason,
		TotalSteps: total,
	})
}

func (o *Orchestrator) runStep(ctx context.Context, sess *Session, st command.Step) Record {
	switch st.Kind {
	case command.KindKeyCombo:
		if err := o.actuator.KeyPress(ctx, st.Keys); err != nil {
			return newRecord(st, StatusError, err.Error())
		}
		return newRecord(st, StatusSuccess, "")

	case command.KindScroll:
		if err := o.actuator.Scroll(ctx, st.Direction, st.Amount); err != nil {
			return newRecord(st, StatusError, err.Error())
		}
		return newRecord(st, StatusSuccess, "")

	case command.KindTyping:
		if st.NeedsTarget() {
			res, err := o.resolve(ctx, st)
			if err != nil {
				return newRecord(st, StatusError, err.Error())
			}
			if !res.Found {
				return newRecord(st, StatusSkipped, noMatchReason(st.Target))
			}
			x, y := res.Candidate.Center()
			if err := o.actuator.Click(ctx, x, y); err != nil {
				return newRecord(st, StatusError, err.Error())
			}
			sess.setLastCoordinate(x, y)
		}
		if err := o.actuator.Type(ctx, st.Payload); err != nil {
			return newRecord(st, StatusError, err.Error())
		}
		return newRecord(st, StatusSuccess, "")

	case command.KindUIAction:
		res, err := o.resolve(ctx, st)
		if err != nil {
			return newRecord(st, StatusError, err.Error())
		}
		if !res.Found {
			return newRecord(st, StatusSkipped, noMatchReason(st.Target))
		}
		x, y := res.Candidate.Center()
		if err := o.actuator.Click(ctx, x, y); err != nil {
			return newRecord(st, StatusError, err.Error())
		}
		sess.setLastCoordinate(x, y)
		o.logger.Debug("resolved target",
			"label", st.Target, "text", res.Candidate.Text,
			"tier", res.Tier, "score", res.Score)
		return newRecord(st, StatusSuccess, "")

	case command.KindReference:
		coord, ok := sess.LastCoordinate()
		if !ok {
			return newRecord(st, StatusSkipped, "no prior coordinate to reference")
		}
		if err := o.actuator.Click(ctx, coord[0], coord[1]); err != nil {
			return newRecord(st, StatusError, err.Error())
		}
		return newRecord(st, StatusSuccess, "")

	default:
		return newRecord(st, StatusSkipped, fmt.Sprintf("unknown step kind %q", st.Kind))
	}
}

func (o *Orchestrator) resolve(ctx context.Context, st command.Step) (match.Result, error) {
	candidates, err := o.detector.Detect(ctx, perception.Snapshot{
		Width:  o.screen[0],
		Height: o.screen[1],
	})
	if err != nil {
		return match.Result{}, fmt.Errorf("detect candidates: %w", err)
	}
	req := match.Request{
		Label:    st.Target,
		Semantic: st.Source == command.SourceSemantic,
		Screen:   o.screen,
	}
	return match.Resolve(req, candidates, o.matchCfg), nil
}

func noMatchReason(label string) string {
	return fmt.Sprintf("no on-screen element matched %q", label)
}

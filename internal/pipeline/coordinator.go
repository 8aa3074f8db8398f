package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/voxctl/voxctl/internal/command"
	"github.com/voxctl/voxctl/internal/events"
	"github.com/voxctl/voxctl/internal/history"
	"github.com/voxctl/voxctl/internal/orchestrator"
)

// ErrTiersExhausted means every tier fell through without producing a plan.
var ErrTiersExhausted = errors.New("all resolution tiers exhausted")

// Executor runs a planned step sequence. *orchestrator.Orchestrator
// satisfies it.
type Executor interface {
	Execute(ctx context.Context, sess *orchestrator.Session, steps []command.Step) ([]orchestrator.Record, error)
}

// Result is the structured outcome of one command run.
type Result struct {
	Utterance string                `yaml:"utterance" json:"utterance"`
	Tier      string                `yaml:"tier"      json:"tier"`
	Steps     []command.Step        `yaml:"steps"     json:"steps"`
	Records   []orchestrator.Record `yaml:"records"   json:"records"`
	Success   bool                  `yaml:"success"   json:"success"`
}

// Coordinator tries each planner in order and executes the first plan it
// gets. A tier is consulted exactly once per command; there are no
// retries, a failed tier simply yields to the next.
type Coordinator struct {
	planners []Planner
	direct   *DirectTier
	exec     Executor
	sink     events.Sink
	store    history.Store
	logger   *slog.Logger
	now      func() time.Time
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithDirectTier adds the direct-generation tier after all planners.
func WithDirectTier(d *DirectTier) CoordinatorOption {
	return func(c *Coordinator) { c.direct = d }
}

// WithSink sets the event sink.
func WithSink(s events.Sink) CoordinatorOption {
	return func(c *Coordinator) { c.sink = s }
}

// WithHistory sets the command history store.
func WithHistory(st history.Store) CoordinatorOption {
	return func(c *Coordinator) { c.store = st }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) CoordinatorOption {
	return func(c *Coordinator) { c.logger = l }
}

// NewCoordinator creates a Coordinator over the given planners, consulted
// in the order given.
func NewCoordinator(exec Executor, planners []Planner, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		planners: planners,
		exec:     exec,
		sink:     events.NopSink{},
		store:    history.NopStore{},
		logger:   slog.New(slog.DiscardHandler),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run resolves and executes one utterance. The first tier that yields a
// non-empty plan wins; its per-step outcomes are the command's outcomes
// even when some steps fail.
func (c *Coordinator) Run(ctx context.Context, utterance string) (*Result, error) {
	sess := orchestrator.NewSession()

	for _, p := range c.planners {
		steps, err := p.Plan(ctx, utterance)
		if err != nil {
			c.sink.TierFellThrough(p.Name(), err.Error())
			c.logger.Warn("tier fell through", "tier", p.Name(), "err", err)
			continue
		}
		if len(steps) == 0 {
			c.sink.TierFellThrough(p.Name(), "empty plan")
			continue
		}
		records, err := c.exec.Execute(ctx, sess, steps)
		if err != nil {
			return nil, err
		}
		return c.finish(ctx, &Result{
			Utterance: utterance,
			Tier:      p.Name(),
			Steps:     steps,
			Records:   records,
			Success:   orchestrator.Succeeded(records),
		}), nil
	}

	if c.direct != nil {
		records, err := c.direct.Run(ctx, sess, utterance)
		if err != nil {
			c.sink.TierFellThrough(c.direct.Name(), err.Error())
			c.logger.Warn("tier fell through", "tier", c.direct.Name(), "err", err)
			return nil, ErrTiersExhausted
		}
		return c.finish(ctx, &Result{
			Utterance: utterance,
			Tier:      c.direct.Name(),
			Records:   records,
			Success:   orchestrator.Succeeded(records),
		}), nil
	}
	return nil, ErrTiersExhausted
}

func (c *Coordinator) finish(ctx context.Context, res *Result) *Result {
	c.sink.CommandCompleted(res.Success)

	entries := make([]history.StepEntry, 0, len(res.Records))
	for _, r := range res.Records {
		entries = append(entries, history.StepEntry{
			Ordinal: r.Step,
			Text:    r.Text,
			Kind:    r.Kind,
			Status:  r.Status,
			Reason:  r.Reason,
		})
	}
	rec := history.Record{
		Command:   res.Utterance,
		Steps:     entries,
		Success:   res.Success,
		Timestamp: c.now(),
	}
	if err := c.store.Append(ctx, rec); err != nil {
		c.logger.Warn("history append failed", "err", err)
	}
	return res
}

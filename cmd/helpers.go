package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voxctl/voxctl/internal/actions"
	"github.com/voxctl/voxctl/internal/command"
	"github.com/voxctl/voxctl/internal/config"
	"github.com/voxctl/voxctl/internal/events"
	"github.com/voxctl/voxctl/internal/history"
	"github.com/voxctl/voxctl/internal/logging"
	"github.com/voxctl/voxctl/internal/match"
	"github.com/voxctl/voxctl/internal/orchestrator"
	"github.com/voxctl/voxctl/internal/perception"
	"github.com/voxctl/voxctl/internal/pipeline"
	"github.com/voxctl/voxctl/internal/platform"
	"github.com/voxctl/voxctl/internal/semantic"
)

// app bundles the wired components behind the run and serve commands.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	provider *platform.Provider
	detector perception.Detector
	actuator actions.Actuator
	matchCfg match.Config
	store    history.Store
	sink     events.Sink
	coord    *pipeline.Coordinator
}

// heuristicSteps produces the plan the deterministic pipeline tier would.
func heuristicSteps(utterance string) []command.Step {
	steps, _ := pipeline.HeuristicPlanner{}.Plan(context.Background(), utterance)
	return steps
}

// loadConfig parses the environment and applies the --config flag override
// for the scoring file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if path, _ := rootCmd.PersistentFlags().GetString("config"); path != "" {
		cfg.ScoringPath = path
	}
	return cfg, nil
}

// newApp loads configuration and wires the full pipeline against the
// platform backend. extraSinks are appended after the logging sink.
func newApp(extraSinks ...events.Sink) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.SlogLevel())

	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	matchCfg, err := config.LoadScoring(cfg.ScoringPath)
	if err != nil {
		return nil, err
	}

	store, err := openHistory(cfg)
	if err != nil {
		return nil, err
	}

	detector := perception.NewAccessibilityDetector(provider.Reader, platform.ReadOptions{VisibleOnly: true})
	actuator := actions.NewActuator(provider.Inputter)

	sink := events.MultiSink(append([]events.Sink{events.LogSink{Logger: logger}}, extraSinks...))
	width, height := screenExtent(provider)

	// One gate for every dispatch path, so direct-tier scripts serialize
	// against planned commands.
	gate := orchestrator.NewGate()
	orch := orchestrator.New(detector, actuator,
		orchestrator.WithSink(sink),
		orchestrator.WithMatchConfig(matchCfg),
		orchestrator.WithScreen(width, height),
		orchestrator.WithGate(gate),
		orchestrator.WithLogger(logger),
	)

	var planners []pipeline.Planner
	var coordOpts []pipeline.CoordinatorOption
	if cfg.OpenAIAPIKey != "" {
		svc := semantic.NewOpenAIService(semantic.OpenAIConfig{
			BaseURL: cfg.OpenAIBaseURL,
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
		})
		planners = append(planners, pipeline.NewSemanticPlanner(svc, detector))
		coordOpts = append(coordOpts, pipeline.WithDirectTier(
			pipeline.NewDirectTier(svc, detector, actuator, pipeline.WithDirectGate(gate))))
	}
	planners = append(planners, pipeline.HeuristicPlanner{})

	coordOpts = append(coordOpts,
		pipeline.WithSink(sink),
		pipeline.WithHistory(store),
		pipeline.WithLogger(logger),
	)

	return &app{
		cfg:      cfg,
		logger:   logger,
		provider: provider,
		detector: detector,
		actuator: actuator,
		matchCfg: matchCfg,
		store:    store,
		sink:     sink,
		coord:    pipeline.NewCoordinator(orch, planners, coordOpts...),
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("closing history store", "err", err)
	}
}

// openHistory picks the history backend from configuration. Redis wins when
// both are configured; neither set disables history.
func openHistory(cfg config.Config) (history.Store, error) {
	switch {
	case cfg.RedisAddr != "":
		return history.NewRedis(cfg.RedisAddr, "", 0), nil
	case cfg.HistoryPath != "":
		store, err := history.OpenSQLite(cfg.HistoryPath)
		if err != nil {
			return nil, fmt.Errorf("open history db: %w", err)
		}
		return store, nil
	default:
		return history.NopStore{}, nil
	}
}

// screenExtent derives the usable screen size from the visible window
// bounds. Directional score bonuses degrade quietly to zero without it.
func screenExtent(provider *platform.Provider) (int, int) {
	if provider.Reader == nil {
		return 0, 0
	}
	windows, err := provider.Reader.ListWindows(platform.ListOptions{})
	if err != nil {
		return 0, 0
	}
	var width, height int
	for _, w := range windows {
		if right := w.Bounds[0] + w.Bounds[2]; right > width {
			width = right
		}
		if bottom := w.Bounds[1] + w.Bounds[3]; bottom > height {
			height = bottom
		}
	}
	return width, height
}

package events

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsSink exposes step and command outcomes as Prometheus counters.
type MetricsSink struct {
	steps        *prometheus.CounterVec
	fallthroughs *prometheus.CounterVec
	commands     *prometheus.CounterVec
}

// NewMetricsSink registers the counters on reg and returns the sink.
func NewMetricsSink(reg prometheus.Registerer) *MetricsSink {
	s := &MetricsSink{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voxctl",
			Name:      "steps_total",
			Help:      "Executed steps by action kind and outcome status.",
		}, []string{"kind", "status"}),
		fallthroughs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voxctl",
			Name:      "tier_fallthrough_total",
			Help:      "Pipeline tiers that failed and handed off to the next tier.",
		}, []string{"tier"}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voxctl",
			Name:      "commands_total",
			Help:      "Completed commands by outcome.",
		}, []string{"status"}),
	}
	reg.MustRegister(s.steps, s.fallthroughs, s.commands)
	return s
}

func (s *MetricsSink) StepCompleted(ev StepEvent) {
	s.steps.WithLabelValues(ev.Kind, ev.Status).Inc()
}

func (s *MetricsSink) TierFellThrough(tier, _ string) {
	s.fallthroughs.WithLabelValues(tier).Inc()
}

func (s *MetricsSink) CommandCompleted(success bool) {
	status := "failure"
	if success {
		status = "success"
	}
	s.commands.WithLabelValues(status).Inc()
}

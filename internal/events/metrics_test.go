package events

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsSink_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink := NewMetricsSink(reg)

	sink.StepCompleted(StepEvent{Kind: "typing", Status: "success"})
	sink.StepCompleted(StepEvent{Kind: "typing", Status: "success"})
	sink.StepCompleted(StepEvent{Kind: "ui-element-action", Status: "skipped"})
	sink.TierFellThrough("semantic", "boom")
	sink.CommandCompleted(true)
	sink.CommandCompleted(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(sink.steps.WithLabelValues("typing", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.steps.WithLabelValues("ui-element-action", "skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.fallthroughs.WithLabelValues("semantic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.commands.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.commands.WithLabelValues("failure")))
}

func TestMetricsSink_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { NewMetricsSink(reg) })
	require.Panics(t, func() { NewMetricsSink(reg) })
}

func TestMultiSink_FansOut(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetricsSink(reg)
	multi := MultiSink{NopSink{}, metrics}

	multi.StepCompleted(StepEvent{Kind: "scroll", Status: "success"})
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.steps.WithLabelValues("scroll", "success")))
}

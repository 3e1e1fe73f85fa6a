package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/cgraph/internal/adapters/telemetry"
)

func setupMonitor() (*tracetest.SpanRecorder, *trace.TracerProvider) {
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	return sr, tp
}

func attrs(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestOTelTracer_Start(t *testing.T) {
	sr, tp := setupMonitor()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer("test-tracer")
	_, span := tracer.Start(context.Background(), "scenario.initial")
	span.SetAttribute("graph", "wave")
	span.SetAttribute("count", 3)
	span.SetAttribute("evaluations", int64(5))
	span.SetAttribute("result", -0.32727)
	span.SetAttribute("cached", true)
	span.SetAttribute("labels", []string{"pow", "add"})
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "scenario.initial", spans[0].Name())

	got := attrs(spans[0].Attributes())
	assert.Equal(t, "wave", got["graph"].AsString())
	assert.Equal(t, int64(3), got["count"].AsInt64())
	assert.Equal(t, int64(5), got["evaluations"].AsInt64())
	assert.InDelta(t, -0.32727, got["result"].AsFloat64(), 1e-12)
	assert.True(t, got["cached"].AsBool())
	assert.Equal(t, []string{"pow", "add"}, got["labels"].AsStringSlice())
	assert.Equal(t, "{1}", got["other"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tp := setupMonitor()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer("test-tracer")
	_, span := tracer.Start(context.Background(), "scenario.broken")
	span.RecordError(errors.New("boom"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	sr, tp := setupMonitor()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer("test-tracer")

	// Without a recording span there is nothing to attach the event to.
	tracer.EmitPlan(context.Background(), "wave", []string{"initial"})
	assert.Empty(t, sr.Ended())

	ctx, span := tp.Tracer("test").Start(context.Background(), "root")
	tracer.EmitPlan(ctx, "wave", []string{"initial", "bump-x1"})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plan_emitted", events[0].Name)

	got := attrs(events[0].Attributes)
	assert.Equal(t, "wave", got["graph"].AsString())
	assert.Equal(t, []string{"initial", "bump-x1"}, got["scenarios"].AsStringSlice())
}

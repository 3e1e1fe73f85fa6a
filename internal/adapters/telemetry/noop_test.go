package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cgraph/internal/adapters/telemetry"
)

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, newCtx)
	assert.NotNil(t, span)

	tracer.EmitPlan(ctx, "wave", []string{"initial"})
	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

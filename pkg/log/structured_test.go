package log

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zkcost/proof-cost-planner/pkg/runid"
)

func TestOperationTracer(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := NewStructuredLogger(zap.New(core), "test")

	ctx := runid.ToContext(context.Background(), "run-1")
	tracer := logger.WithContext(ctx).Operation("estimate").
		WithString("system", "aztec").
		WithInt("tx_count", 5000).
		Build()

	tracer.Step("resolved_profile").WithFloat("base_ms", 420).Log()
	tracer.Success().WithInt("batches", 10).Log()
	tracer.Error(errors.New("boom")).Log()

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, "operation started", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "estimate", fields["operation"])
	assert.Equal(t, "aztec", fields["system"])
	assert.Equal(t, "run-1", fields["run_id"])
	assert.NotEmpty(t, fields["operation_id"])

	assert.Equal(t, "resolved_profile", entries[1].ContextMap()["step"])
	assert.Equal(t, zap.InfoLevel, entries[2].Level)
	assert.Equal(t, int64(10), entries[2].ContextMap()["batches"])
	assert.Equal(t, zap.ErrorLevel, entries[3].Level)
	assert.Equal(t, "boom", entries[3].ContextMap()["error"])
}

func TestOperationTracer_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	tracer := NewStructuredLogger(zap.New(core), "test").Operation("noop").Build()

	tracer.Step("ignored").Log()
	tracer.Success().Log()
	tracer.Error(errors.New("boom")).Log()

	require.Len(t, logs.All(), 1)
	assert.Equal(t, "operation failed", logs.All()[0].Message)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, ParseLevel("debug").Level())
	assert.Equal(t, zap.WarnLevel, ParseLevel("not-a-level").Level())
}

package log

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zkcost/proof-cost-planner/pkg/runid"
)

// StructuredLogger traces named operations with a consistent set of fields.
type StructuredLogger struct {
	logger *zap.Logger
}

// NewStructuredLogger wraps l under the given name.
func NewStructuredLogger(l *zap.Logger, name string) *StructuredLogger {
	return &StructuredLogger{logger: l.Named(name)}
}

// NewDebugLogger returns a StructuredLogger on top of the global zap logger.
// The global logger is resolved at call time, so zap.ReplaceGlobals must run first.
func NewDebugLogger(name string) *StructuredLogger {
	return NewStructuredLogger(zap.L(), name)
}

// WithContext attaches the run id found in ctx, if any.
func (s *StructuredLogger) WithContext(ctx context.Context) *StructuredLogger {
	if id := runid.FromContext(ctx); id != "" {
		return &StructuredLogger{logger: s.logger.With(zap.String("run_id", id))}
	}
	return s
}

// Operation starts building a trace for the named operation.
func (s *StructuredLogger) Operation(name string) *OperationBuilder {
	return &OperationBuilder{
		logger: s.logger,
		fields: []zap.Field{
			zap.String("operation", name),
			zap.String("operation_id", uuid.NewString()),
		},
	}
}

type OperationBuilder struct {
	logger *zap.Logger
	fields []zap.Field
}

func (b *OperationBuilder) WithString(key, value string) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value))
	return b
}

func (b *OperationBuilder) WithInt(key string, value int) *OperationBuilder {
	b.fields = append(b.fields, zap.Int(key, value))
	return b
}

func (b *OperationBuilder) WithUint64(key string, value uint64) *OperationBuilder {
	b.fields = append(b.fields, zap.Uint64(key, value))
	return b
}

func (b *OperationBuilder) WithFloat(key string, value float64) *OperationBuilder {
	b.fields = append(b.fields, zap.Float64(key, value))
	return b
}

func (b *OperationBuilder) WithUUID(key string, value uuid.UUID) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value.String()))
	return b
}

// Build logs the operation start at debug level and returns its tracer.
func (b *OperationBuilder) Build() *OperationTracer {
	logger := b.logger.With(b.fields...)
	logger.Debug("operation started")
	return &OperationTracer{logger: logger, start: time.Now()}
}

// OperationTracer emits step, success and error events for one operation.
type OperationTracer struct {
	logger *zap.Logger
	start  time.Time
}

func (t *OperationTracer) Step(name string) *Event {
	return &Event{logger: t.logger, level: zap.DebugLevel, msg: "operation step", fields: []zap.Field{zap.String("step", name)}}
}

func (t *OperationTracer) Success() *Event {
	return &Event{logger: t.logger, level: zap.InfoLevel, msg: "operation succeeded", fields: []zap.Field{zap.Duration("elapsed", time.Since(t.start))}}
}

func (t *OperationTracer) Error(err error) *Event {
	return &Event{logger: t.logger, level: zap.ErrorLevel, msg: "operation failed", fields: []zap.Field{zap.Error(err), zap.Duration("elapsed", time.Since(t.start))}}
}

// Event is a single log line of an operation. Nothing is written until Log is called.
type Event struct {
	logger *zap.Logger
	level  zapcore.Level
	msg    string
	fields []zap.Field
}

func (e *Event) WithString(key, value string) *Event {
	e.fields = append(e.fields, zap.String(key, value))
	return e
}

func (e *Event) WithInt(key string, value int) *Event {
	e.fields = append(e.fields, zap.Int(key, value))
	return e
}

func (e *Event) WithFloat(key string, value float64) *Event {
	e.fields = append(e.fields, zap.Float64(key, value))
	return e
}

func (e *Event) Log() {
	if ce := e.logger.Check(e.level, e.msg); ce != nil {
		ce.Write(e.fields...)
	}
}

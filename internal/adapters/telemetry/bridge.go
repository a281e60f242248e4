package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/xcinfo/internal/core/ports"
)

// StageLogger implements sdktrace.SpanProcessor and reports every finished
// span as a debug log line with its duration and attributes.
type StageLogger struct {
	logger ports.Logger
}

// NewStageLogger returns a new StageLogger.
func NewStageLogger(log ports.Logger) *StageLogger {
	return &StageLogger{logger: log}
}

// OnStart does nothing. Stages are reported once they finish.
func (b *StageLogger) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *StageLogger) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s took %s", s.Name(), s.EndTime().Sub(s.StartTime()).Round(time.Microsecond))

	for _, kv := range s.Attributes() {
		fmt.Fprintf(&sb, " %s=%s", kv.Key, kv.Value.Emit())
	}

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "stage failed"
		}
		fmt.Fprintf(&sb, " error=%q", desc)
	}

	b.logger.Debug(sb.String())
}

// ForceFlush does nothing.
func (b *StageLogger) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *StageLogger) Shutdown(_ context.Context) error {
	return nil
}

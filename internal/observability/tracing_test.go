package observability

import (
	"context"
	"errors"
	"testing"
)

func TestDefaultTracingConfig(t *testing.T) {
	cfg := DefaultTracingConfig()
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.ServiceName != "hetio" {
		t.Fatalf("expected service name 'hetio', got %s", cfg.ServiceName)
	}
	if cfg.SampleRate != 1.0 {
		t.Fatalf("expected sample rate 1.0, got %f", cfg.SampleRate)
	}
}

func TestInitTracing_NoEndpoint(t *testing.T) {
	ctx := context.Background()
	tp, err := InitTracing(ctx, &TracingConfig{
		ServiceName: "test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tp == nil {
		t.Fatal("expected non-nil tracer provider")
	}
	if tp.Tracer() == nil {
		t.Fatal("expected non-nil tracer")
	}
	// Should be no-op, shutdown should succeed
	if err := tp.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestInitTracing_NilConfig(t *testing.T) {
	ctx := context.Background()
	tp, err := InitTracing(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tp == nil {
		t.Fatal("expected non-nil tracer provider")
	}
}

func TestStartCompileSpan(t *testing.T) {
	ctx := context.Background()
	ctx, span := StartCompileSpan(ctx, "GiGaD", 2)
	if span == nil {
		t.Fatal("expected non-nil span")
	}
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	span.End()
}

func TestStartQuerySpan(t *testing.T) {
	ctx := context.Background()
	_, span := StartQuerySpan(ctx, "IRF1", "multiple sclerosis", 0.4)
	if span == nil {
		t.Fatal("expected non-nil span")
	}
	RecordQueryResult(span, 142, 0.0326)
	span.End()
}

func TestRecordError(t *testing.T) {
	_, span := StartQuerySpan(context.Background(), "a", "b", 0.4)
	RecordError(span, errors.New("boom"))
	RecordError(span, nil) // no-op
	span.End()
}

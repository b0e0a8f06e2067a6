package metrics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "owl-schedule-service",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler == nil {
		t.Fatalf("expected handler when enabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}

	// Exercise otel-backed recorders to ensure no panic.
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordStoreQuery("file", "day_schedule", OutcomeOK, time.Millisecond, nil)
	rec.RecordStoreQuery("postgres", "team_schedule", OutcomeError, time.Millisecond, errors.New("down"))
	rec.RecordStoreRetry("postgres", "team_schedule")

	if got := rec.Queries("postgres"); got != 1 {
		t.Fatalf("expected in-memory stats alongside otel, got %d", got)
	}
	if got := rec.Snapshot("postgres").Retries; got != 1 {
		t.Fatalf("expected retry counted, got %d", got)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
}

func TestSetupPropagatesPrometheusError(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("prom boom")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected prometheus error")
	}
}

func TestSetupPropagatesOTLPError(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })
	otlpReaderFactory = func(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
		return nil, errors.New("otlp boom")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "localhost:4318"})
	if err == nil {
		t.Fatalf("expected otlp error")
	}
}

func TestSetupPropagatesInstrumentError(t *testing.T) {
	orig := instrumentFactory
	t.Cleanup(func() { instrumentFactory = orig })
	instrumentFactory = func(provider metric.MeterProvider) (*otelInstruments, error) {
		return nil, errors.New("instrument boom")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected instrument error")
	}
}

func TestNilInstrumentsAreSafe(t *testing.T) {
	var o *otelInstruments
	o.recordHTTPRequest("GET", "/", 200, time.Millisecond)
	o.recordStoreQuery("file", "day_schedule", OutcomeOK, time.Millisecond, nil)
	o.recordStoreRetry("postgres", "day_schedule")
}

func TestMillisKeepsFractions(t *testing.T) {
	if got := millis(1500 * time.Microsecond); got != 1.5 {
		t.Fatalf("expected 1.5ms, got %v", got)
	}
}

package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	meterName        = "owl-schedule-service"
	otlpPushInterval = 15 * time.Second
	unitMillis       = "ms"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup builds a meter provider that always exposes a Prometheus scrape
// handler and also pushes to OTLP when an endpoint is configured. A disabled
// config yields an in-memory Recorder, no handler and a no-op shutdown.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = meterName
	}

	readers, handler, err := metricReaders(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	provider, err := newMeterProvider(ctx, cfg.ServiceName, readers)
	if err != nil {
		return nil, nil, nil, err
	}

	inst, err := instrumentFactory(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, nil, fmt.Errorf("create instruments: %w", err)
	}
	return newRecorder(inst), handler, provider.Shutdown, nil
}

func metricReaders(ctx context.Context, cfg TelemetryConfig) ([]sdkmetric.Reader, http.Handler, error) {
	promReader, handler, err := promReaderFactory()
	if err != nil {
		return nil, nil, fmt.Errorf("prometheus exporter: %w", err)
	}
	readers := []sdkmetric.Reader{promReader}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, fmt.Errorf("otlp exporter: %w", err)
		}
		readers = append(readers, otlpReader)
	}
	return readers, handler, nil
}

func newMeterProvider(ctx context.Context, service string, readers []sdkmetric.Reader) (*sdkmetric.MeterProvider, error) {
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(service)))
	if err != nil {
		return nil, fmt.Errorf("metrics resource: %w", err)
	}
	opts := make([]sdkmetric.Option, 0, len(readers)+1)
	for _, r := range readers {
		opts = append(opts, sdkmetric.WithReader(r))
	}
	opts = append(opts, sdkmetric.WithResource(res))
	return sdkmetric.NewMeterProvider(opts...), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	exp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return exp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(otlpPushInterval)), nil
}

type otelInstruments struct {
	ctx              context.Context
	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram
	storeQueries     metric.Int64Counter
	storeErrors      metric.Int64Counter
	storeRetries     metric.Int64Counter
	storeLatencyMs   metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(meterName)
	inst := &otelInstruments{ctx: context.Background()}

	var err error
	counter := func(dst *metric.Int64Counter, name, desc string) {
		if err == nil {
			*dst, err = meter.Int64Counter(name, metric.WithDescription(desc))
		}
	}
	histogram := func(dst *metric.Float64Histogram, name, desc string) {
		if err == nil {
			*dst, err = meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unitMillis))
		}
	}

	counter(&inst.requests, "http_requests_total", "HTTP requests served, by route and status.")
	histogram(&inst.requestLatencyMs, "http_request_duration_ms", "HTTP request latency.")
	counter(&inst.storeQueries, "store_queries_total", "Schedule store queries, by backend, operation and outcome.")
	counter(&inst.storeErrors, "store_query_errors_total", "Schedule store queries that failed.")
	counter(&inst.storeRetries, "store_query_retries_total", "Schedule store queries retried after a backend failure.")
	histogram(&inst.storeLatencyMs, "store_query_duration_ms", "Schedule store query latency.")
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	)
	o.requests.Add(o.ctx, 1, attrs)
	o.requestLatencyMs.Record(o.ctx, millis(duration), attrs)
}

func (o *otelInstruments) recordStoreQuery(backend, operation, outcome string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	base := []attribute.KeyValue{
		attribute.String(AttrBackend, backend),
		attribute.String(AttrOperation, operation),
	}
	withOutcome := metric.WithAttributes(append(base, attribute.String(AttrOutcome, outcome))...)
	o.storeQueries.Add(o.ctx, 1, withOutcome)
	o.storeLatencyMs.Record(o.ctx, millis(duration), withOutcome)
	if err != nil {
		o.storeErrors.Add(o.ctx, 1, metric.WithAttributes(base...))
	}
}

func (o *otelInstruments) recordStoreRetry(backend, operation string) {
	if o == nil {
		return
	}
	o.storeRetries.Add(o.ctx, 1, metric.WithAttributes(
		attribute.String(AttrBackend, backend),
		attribute.String(AttrOperation, operation),
	))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

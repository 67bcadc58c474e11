package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "demoready"

var latencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.2, 0.5, 1, 2.5, 5, 10}

type Provider struct {
	RequestsTotal     metric.Int64Counter
	RequestDuration   metric.Float64Histogram
	RequestsInFlight  metric.Int64UpDownCounter
	CheckDuration     metric.Float64Histogram
	CheckOutcomes     metric.Int64Counter
	ProbeStepDuration metric.Float64Histogram
	registry          *prometheus.Registry
}

func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(meterName)

	p := &Provider{registry: registry}

	if p.RequestsTotal, err = meter.Int64Counter(
		"http_requests",
		metric.WithDescription("Total number of HTTP requests"),
	); err != nil {
		return nil, err
	}

	if p.RequestDuration, err = meter.Float64Histogram(
		"http_request_duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	if p.RequestsInFlight, err = meter.Int64UpDownCounter(
		"http_requests_in_flight",
		metric.WithDescription("Number of HTTP requests currently in flight"),
	); err != nil {
		return nil, err
	}

	if p.CheckDuration, err = meter.Float64Histogram(
		"readiness_check_duration",
		metric.WithDescription("Time taken by a single readiness check"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	if p.CheckOutcomes, err = meter.Int64Counter(
		"readiness_check_outcomes",
		metric.WithDescription("Readiness check results by status"),
	); err != nil {
		return nil, err
	}

	if p.ProbeStepDuration, err = meter.Float64Histogram(
		"probe_step_duration",
		metric.WithDescription("Latency of one performance probe sample"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Provider) RecordCheck(ctx context.Context, name, status string, critical bool, latency time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("check", name),
		attribute.String("status", status),
		attribute.Bool("critical", critical),
	)
	p.CheckOutcomes.Add(ctx, 1, attrs)
	p.CheckDuration.Record(ctx, latency.Seconds(), attrs)
}

func (p *Provider) RecordProbeSample(ctx context.Context, step string, duration time.Duration, failed bool) {
	p.ProbeStepDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("step", step),
		attribute.Bool("error", failed),
	))
}

func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

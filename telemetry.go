package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/peteraglen/saas-api-go-client"

// Metric names.
const (
	MetricRequests        = "api_client.requests"
	MetricRequestDuration = "api_client.request.duration"
)

// Span and metric attributes, following the OpenTelemetry HTTP conventions.
const (
	AttrHTTPMethod     = "http.request.method"
	AttrHTTPStatusCode = "http.response.status_code"
	AttrURLPath        = "url.path"
	AttrServerAddress  = "server.address"
)

type telemetry struct {
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	requests   metric.Int64Counter
	duration   metric.Float64Histogram
	host       string
	basePath   string
}

func newTelemetry(o *Options, baseURL string) (*telemetry, error) {
	tp := o.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	mp := o.meterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}

	meter := mp.Meter(instrumentationName)

	requests, err := meter.Int64Counter(MetricRequests,
		metric.WithDescription("Requests sent, by method and status code"))
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRequests, err)
	}

	duration, err := meter.Float64Histogram(MetricRequestDuration,
		metric.WithDescription("Time from sending a request to reading its response"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricRequestDuration, err)
	}

	t := &telemetry{
		tracer:     tp.Tracer(instrumentationName),
		propagator: propagation.TraceContext{},
		requests:   requests,
		duration:   duration,
	}

	if u, err := url.Parse(baseURL); err == nil {
		t.host = u.Hostname()
		t.basePath = strings.TrimSuffix(u.Path, "/")
	}

	return t, nil
}

// start opens a client span for one request and writes its trace context
// into header.
func (t *telemetry) start(ctx context.Context, method, target string, header http.Header) (context.Context, trace.Span) {
	host, path := t.locate(target)

	ctx, span := t.tracer.Start(ctx, "HTTP "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrHTTPMethod, method),
			attribute.String(AttrURLPath, path),
			attribute.String(AttrServerAddress, host),
		),
	)

	t.propagator.Inject(ctx, propagation.HeaderCarrier(header))

	return ctx, span
}

// locate returns the host and path a request for target goes to. Absolute
// targets carry their own host; relative ones resolve against the base URL.
// Query strings are dropped since they may hold cursors or credentials.
func (t *telemetry) locate(target string) (string, string) {
	u, err := url.Parse(target)
	if err != nil {
		return t.host, t.basePath
	}

	if u.IsAbs() {
		return u.Hostname(), u.Path
	}

	path := u.Path
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return t.host, t.basePath + path
}

// finish records the outcome of a request and ends its span. status is 0
// when no response was received.
func (t *telemetry) finish(ctx context.Context, span trace.Span, method string, status int, err error, elapsed time.Duration) {
	attrs := []attribute.KeyValue{attribute.String(AttrHTTPMethod, method)}
	if status > 0 {
		attrs = append(attrs, attribute.Int(AttrHTTPStatusCode, status))
		span.SetAttributes(attribute.Int(AttrHTTPStatusCode, status))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	t.requests.Add(ctx, 1, metric.WithAttributes(attrs...))
	t.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attrs...))
}

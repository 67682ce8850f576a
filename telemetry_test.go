package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTelemetryTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *tracetest.InMemoryExporter, *sdkmetric.ManualReader) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	client := newTestClient(t, server.URL, WithTracerProvider(tp), WithMeterProvider(mp))

	return client, exporter, reader
}

func spanAttr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTelemetry_Span(t *testing.T) {
	t.Parallel()

	var traceparent string
	client, exporter, _ := newTelemetryTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		traceparent = r.Header.Get("Traceparent")
		_, _ = w.Write([]byte(`{}`))
	})

	if _, err := client.Do(context.Background(), http.MethodGet, "/team.info", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	span := spans[0]
	if span.Name() != "HTTP GET" {
		t.Errorf("unexpected span name %q", span.Name())
	}

	if v, ok := spanAttr(span, AttrHTTPStatusCode); !ok || v.AsInt64() != http.StatusOK {
		t.Errorf("expected status code attribute 200, got %v", v.Emit())
	}

	if v, ok := spanAttr(span, AttrURLPath); !ok || v.AsString() != "/team.info" {
		t.Errorf("expected url.path attribute, got %v", v.Emit())
	}

	if v, ok := spanAttr(span, AttrServerAddress); !ok || v.AsString() != "127.0.0.1" {
		t.Errorf("expected server.address to be the host only, got %v", v.Emit())
	}

	if span.Status().Code == codes.Error {
		t.Errorf("expected span without error status")
	}

	want := span.SpanContext().TraceID().String()
	if len(traceparent) < 36 || traceparent[3:35] != want {
		t.Errorf("expected traceparent carrying trace %s, got %q", want, traceparent)
	}
}

func TestTelemetry_AbsoluteTargetAttributes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	client := newTestClient(t, "https://api.example.com/v1/", WithTracerProvider(tp))

	next := server.URL + "/api/v1/users/u1/factors?after=secret-cursor&limit=2"
	if _, err := client.Do(context.Background(), http.MethodGet, next, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	if v, _ := spanAttr(spans[0], AttrServerAddress); v.AsString() != "127.0.0.1" {
		t.Errorf("expected server.address of the absolute target, got %q", v.AsString())
	}

	if v, _ := spanAttr(spans[0], AttrURLPath); v.AsString() != "/api/v1/users/u1/factors" {
		t.Errorf("expected url.path without query, got %q", v.AsString())
	}
}

func TestTelemetry_Locate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "https://api.example.com:8443/v1/")

	tests := []struct {
		target string
		host   string
		path   string
	}{
		{"/employees/e1/garnishments", "api.example.com", "/v1/employees/e1/garnishments"},
		{"employees/e1?page=2", "api.example.com", "/v1/employees/e1"},
		{"https://other.example.com/items?cursor=abc", "other.example.com", "/items"},
		{"", "api.example.com", "/v1"},
	}

	for _, tt := range tests {
		host, path := client.telemetry.locate(tt.target)
		if host != tt.host || path != tt.path {
			t.Errorf("%q: expected %s %s, got %s %s", tt.target, tt.host, tt.path, host, path)
		}
	}
}

func TestTelemetry_ErrorStatus(t *testing.T) {
	t.Parallel()

	client, exporter, _ := newTelemetryTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	if _, err := client.Do(context.Background(), http.MethodPost, "/api/v1/users", []byte(`{}`), nil); err == nil {
		t.Fatal("expected error")
	}

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	if spans[0].Status().Code != codes.Error {
		t.Errorf("expected error status, got %v", spans[0].Status())
	}

	if v, _ := spanAttr(spans[0], AttrHTTPStatusCode); v.AsInt64() != http.StatusBadGateway {
		t.Errorf("expected status code attribute 502, got %v", v.Emit())
	}
}

func TestTelemetry_Metrics(t *testing.T) {
	t.Parallel()

	client, _, reader := newTelemetryTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	for _, target := range []string{"/a", "/b", "/missing"} {
		_, _ = client.Do(context.Background(), http.MethodGet, target, nil, nil)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	counts := map[int64]int64{}
	sawDuration := false

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch m.Name {
			case MetricRequests:
				sum, ok := m.Data.(metricdata.Sum[int64])
				if !ok {
					t.Fatalf("unexpected data type %T", m.Data)
				}
				for _, dp := range sum.DataPoints {
					status, _ := dp.Attributes.Value(attribute.Key(AttrHTTPStatusCode))
					counts[status.AsInt64()] += dp.Value
				}
			case MetricRequestDuration:
				sawDuration = true
			}
		}
	}

	if counts[http.StatusOK] != 2 || counts[http.StatusNotFound] != 1 {
		t.Errorf("unexpected request counts by status: %v", counts)
	}

	if !sawDuration {
		t.Errorf("expected %s to be recorded", MetricRequestDuration)
	}
}

func TestTelemetry_TransportFailure(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	client := newTestClient(t, "http://127.0.0.1:1", WithTracerProvider(tp))

	if _, err := client.Do(context.Background(), http.MethodGet, "/", nil, nil); err == nil {
		t.Fatal("expected transport error")
	}

	spans := exporter.GetSpans().Snapshots()
	if len(spans) != 1 || spans[0].Status().Code != codes.Error {
		t.Fatalf("expected one failed span, got %d", len(spans))
	}

	if _, ok := spanAttr(spans[0], AttrHTTPStatusCode); ok {
		t.Errorf("expected no status code without a response")
	}
}

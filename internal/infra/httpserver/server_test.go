package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracingMiddlewareAddsSpanToContext(t *testing.T) {
	tp := trace.NewTracerProvider(
		trace.WithSpanProcessor(tracetest.NewSpanRecorder()),
	)
	otel.SetTracerProvider(tp)
	defer tp.Shutdown(context.Background())

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		span := GetSpanFromContext(r)
		if !span.SpanContext().HasSpanID() {
			t.Error("expected a recording span on the request context")
		}
		w.WriteHeader(http.StatusOK)
	})

	middleware := createTracingMiddleware()
	rec := httptest.NewRecorder()
	middleware(testHandler).ServeHTTP(rec, httptest.NewRequest("GET", "/v1/schema", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHealthzReportsVersion(t *testing.T) {
	rec := httptest.NewRecorder()
	getHealthz().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "success" {
		t.Errorf("unexpected status %q", body["status"])
	}
	if body["VERSION"] == "" {
		t.Error("expected VERSION to be reported")
	}
	if body["COMMIT_HASH"] == "" {
		t.Error("expected COMMIT_HASH to be reported")
	}
}

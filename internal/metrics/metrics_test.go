package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew_RegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordHTTPRequest("GET", "/api/courses/", "200", 0.01)
	m.RecordDatasetLoad("primary", "success", 42)
	m.RecordLLMRequest("gemini", "success", 1.5)
	m.RecordLLMFallback("gemini", "groq")
	m.RecordOpenAlexRequest("authors", "success", 0.3)
	m.RecordRateLimiterDrop("ai")

	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/courses/", "200")); got != 1 {
		t.Errorf("http requests = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.CoursesLoaded); got != 42 {
		t.Errorf("courses loaded = %v, want 42", got)
	}
	if got := testutil.ToFloat64(m.LLMFallbacksTotal.WithLabelValues("gemini", "groq")); got != 1 {
		t.Errorf("llm fallbacks = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.RateLimiterDropped.WithLabelValues("ai")); got != 1 {
		t.Errorf("rate limiter drops = %v, want 1", got)
	}
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	_ = New(registry)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	_ = New(registry)
}

package telemetry

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestConfigureHoneycombEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	ConfigureHoneycombEnv("secret", "")

	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != honeycombEndpoint {
		t.Errorf("endpoint = %q, want %q", got, honeycombEndpoint)
	}
	headers := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")
	if !strings.Contains(headers, "x-honeycomb-team=secret") {
		t.Errorf("headers = %q, missing team", headers)
	}
	if !strings.Contains(headers, "x-honeycomb-dataset="+defaultDataset) {
		t.Errorf("headers = %q, missing default dataset", headers)
	}
}

func TestConfigureHoneycombEnvWithoutKey(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	ConfigureHoneycombEnv("", "custom")

	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "" {
		t.Errorf("headers = %q, want unset without an API key", got)
	}
}

func TestTracersWithoutSetup(t *testing.T) {
	ctx := context.Background()

	_, span := Tracer("test").Start(ctx, "noop")
	span.End()

	_, span = NoopTracer().Start(ctx, "noop")
	if span.SpanContext().IsValid() {
		t.Error("no-op tracer produced a valid span context")
	}
	span.End()
}

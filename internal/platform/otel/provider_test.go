package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/hoaxify/internal/platform/otel"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := otel.Setup(context.Background(), "test-service", otel.Config{Enabled: true, SampleRatio: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupNoopWhenDisabled(t *testing.T) {
	cfg := otel.Config{Endpoint: "http://localhost:4318", Enabled: false, SampleRatio: 1}
	shutdown, err := otel.Setup(context.Background(), "test-service", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetupRejectsBadSampleRatio(t *testing.T) {
	cfg := otel.Config{Endpoint: "http://192.0.2.1:4318", Enabled: true, SampleRatio: 2}
	if _, err := otel.Setup(context.Background(), "test-service", cfg); err == nil {
		t.Fatal("expected sample ratio error")
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export happens.
	cfg := otel.Config{Endpoint: "http://192.0.2.1:4318", Enabled: true, SampleRatio: 1}
	shutdown, err := otel.Setup(context.Background(), "test-service", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("HOAXIFY_OTEL_ENDPOINT", "http://collector:4318")
	t.Setenv("HOAXIFY_OTEL_ENABLED", "false")
	t.Setenv("HOAXIFY_OTEL_SAMPLE_RATIO", "0.25")

	cfg, err := otel.ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}
	if cfg.Endpoint != "http://collector:4318" || cfg.Enabled || cfg.SampleRatio != 0.25 {
		t.Fatalf("ConfigFromEnv() = %+v", cfg)
	}
}

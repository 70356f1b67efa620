package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Addr string        `env:"HOAXIFY_TEST_ADDR" envDefault:"localhost:8080"`
	TTL  time.Duration `env:"HOAXIFY_TEST_TTL" envDefault:"30m"`
}

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv("HOAXIFY_TEST_ADDR", "")
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("ParseEnv() error = %v", err)
	}
	if cfg.TTL != 30*time.Minute {
		t.Fatalf("TTL = %v, want %v", cfg.TTL, 30*time.Minute)
	}
}

func TestParseEnvFromUsesGivenEnvironment(t *testing.T) {
	t.Parallel()

	var cfg envTestConfig
	err := ParseEnvFrom(&cfg, map[string]string{"HOAXIFY_TEST_ADDR": "0.0.0.0:9000", "HOAXIFY_TEST_TTL": "90s"})
	if err != nil {
		t.Fatalf("ParseEnvFrom() error = %v", err)
	}
	if cfg.Addr != "0.0.0.0:9000" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, "0.0.0.0:9000")
	}
	if cfg.TTL != 90*time.Second {
		t.Fatalf("TTL = %v, want %v", cfg.TTL, 90*time.Second)
	}
}

func TestParseEnvFromRejectsBadDuration(t *testing.T) {
	t.Parallel()

	var cfg envTestConfig
	err := ParseEnvFrom(&cfg, map[string]string{"HOAXIFY_TEST_TTL": "soon"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("error = %v, want parse env prefix", err)
	}
}

func TestParseEnvRequiresTarget(t *testing.T) {
	t.Parallel()

	if err := ParseEnvFrom(nil, nil); err == nil {
		t.Fatal("expected target error")
	}
}

// Package cmd holds startup helpers shared by service commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/hoaxify/internal/platform/config"
	"github.com/louisbranch/hoaxify/internal/platform/otel"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// ServiceWeb names the browser-facing web service.
const ServiceWeb = "web"

// DotEnvPath is the optional local environment file read before config parsing.
const DotEnvPath = ".env"

// RunOption adjusts RunWithTelemetry.
type RunOption func(*runOptions)

type runOptions struct {
	shutdownTimeout time.Duration
}

// WithShutdownTimeout bounds how long pending spans may take to flush.
func WithShutdownTimeout(timeout time.Duration) RunOption {
	return func(o *runOptions) {
		if timeout > 0 {
			o.shutdownTimeout = timeout
		}
	}
}

// ParseConfig loads .env values and environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if err := config.LoadDotEnv(DotEnvPath); err != nil {
		return err
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry configures tracing from the environment, runs the
// service loop and flushes spans once it returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error, opts ...RunOption) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	options := runOptions{shutdownTimeout: defaultOTelShutdownTimeout}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	otelCfg, err := otel.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("%s telemetry config: %w", service, err)
	}
	shutdown, err := otel.Setup(ctx, service, otelCfg)
	if err != nil {
		return fmt.Errorf("%s telemetry setup: %w", service, err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), options.shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown service=%s err=%v", service, err)
		}
	}()
	return run(ctx)
}

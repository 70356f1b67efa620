// Package web wires the web command's configuration into the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/hoaxify/internal/platform/cmd"
	"github.com/louisbranch/hoaxify/internal/platform/timeouts"
	"github.com/louisbranch/hoaxify/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"HOAXIFY_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	APIBaseURL          string        `env:"HOAXIFY_WEB_API_BASE_URL" envDefault:"http://localhost:8081"`
	FormSessionTTL      time.Duration `env:"HOAXIFY_WEB_FORM_SESSION_TTL" envDefault:"30m"`
	TrustForwardedProto bool          `env:"HOAXIFY_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig reads environment defaults and then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "User API base URL")
	fs.DurationVar(&cfg.FormSessionTTL, "form-session-ttl", cfg.FormSessionTTL, "Idle lifetime of a sign-up form session")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto when marking cookies Secure")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	cfg.HTTPAddr = strings.TrimSpace(cfg.HTTPAddr)
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("http address is required")
	}
	if cfg.FormSessionTTL <= 0 {
		return Config{}, fmt.Errorf("form session ttl must be positive, got %s", cfg.FormSessionTTL)
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			APIBaseURL:          cfg.APIBaseURL,
			FormSessionTTL:      cfg.FormSessionTTL,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	}, entrypoint.WithShutdownTimeout(timeouts.Shutdown))
}

package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/hoaxify/internal/platform/timeouts"
	webapp "github.com/louisbranch/hoaxify/internal/services/web/app"
	"github.com/louisbranch/hoaxify/internal/services/web/integration/userapi"
	module "github.com/louisbranch/hoaxify/internal/services/web/module"
	"github.com/louisbranch/hoaxify/internal/services/web/modules"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/httpx"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/observability"
	"github.com/louisbranch/hoaxify/internal/services/web/routepath"
	webstatic "github.com/louisbranch/hoaxify/internal/services/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr            string
	APIBaseURL          string
	FormSessionTTL      time.Duration
	TrustForwardedProto bool
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	api        *userapi.Client
	closeOnce  sync.Once
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(deps modules.Dependencies) (http.Handler, error) {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	h, err := webapp.Compose(webapp.ComposeInput{
		Modules: modules.DefaultModules(deps),
		Extra: []module.Mount{{
			Prefix:  routepath.StaticPrefix,
			Handler: http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))),
		}},
	})
	if err != nil {
		return nil, err
	}
	return httpx.Chain(h,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	), nil
}

// NewServer validates config and constructs a web server backed by the user
// API at cfg.APIBaseURL.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	api, err := userapi.New(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("init user api client: %w", err)
	}
	handler, err := NewHandler(modules.Dependencies{
		Dependencies: module.Dependencies{
			Registrar: api,
			Activator: api,
		},
		FormSessionTTL:      cfg.FormSessionTTL,
		TrustForwardedProto: cfg.TrustForwardedProto,
	})
	if err != nil {
		_ = api.Close()
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		api: api,
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources. Later calls are no-ops.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		if s.httpServer != nil {
			_ = s.httpServer.Close()
		}
		if s.api != nil {
			_ = s.api.Close()
		}
	})
}

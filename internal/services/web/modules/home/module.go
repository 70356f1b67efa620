// Package home serves the landing page, the health probe and the site-wide
// not-found fallback.
package home

import (
	"net/http"

	module "github.com/louisbranch/hoaxify/internal/services/web/module"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/publichandler"
	"github.com/louisbranch/hoaxify/internal/services/web/routepath"
)

// Module provides root routes.
type Module struct {
	base publichandler.Base
}

// New returns a home module.
func New(opts ...publichandler.Option) Module {
	return Module{base: publichandler.NewBase(opts...)}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "home"
}

// Mount wires home routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

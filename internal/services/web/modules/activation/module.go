// Package activation serves the account activation page.
package activation

import (
	"net/http"

	"github.com/louisbranch/hoaxify/internal/registration"
	module "github.com/louisbranch/hoaxify/internal/services/web/module"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/publichandler"
	"github.com/louisbranch/hoaxify/internal/services/web/routepath"
)

// Module provides activation routes.
type Module struct {
	activator registration.Activator
	base      publichandler.Base
}

// New returns an activation module that activates through activator.
func New(activator registration.Activator, opts ...publichandler.Option) Module {
	return Module{activator: activator, base: publichandler.NewBase(opts...)}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "activation"
}

// Mount wires activation routes under the activation prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base, m.activator))
	return module.Mount{Prefix: routepath.ActivationPrefix, Handler: mux}, nil
}

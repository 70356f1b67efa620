// Package signup serves the sign-up form and keeps one submission controller
// per browser form session.
package signup

import (
	"net/http"
	"time"

	"github.com/louisbranch/hoaxify/internal/registration"
	module "github.com/louisbranch/hoaxify/internal/services/web/module"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/publichandler"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/hoaxify/internal/services/web/routepath"
)

// Settings tunes form session handling.
type Settings struct {
	// SessionTTL is how long an idle form session is remembered. Zero uses
	// DefaultSessionTTL.
	SessionTTL time.Duration
	Cookie     sessioncookie.Policy
}

// Module provides sign-up routes.
type Module struct {
	registrar registration.Registrar
	store     *formStore
	cookies   sessioncookie.Policy
	base      publichandler.Base
}

// New returns a sign-up module that submits through registrar.
func New(registrar registration.Registrar, settings Settings, opts ...publichandler.Option) Module {
	return Module{
		registrar: registrar,
		store:     newFormStore(settings.SessionTTL),
		cookies:   settings.Cookie,
		base:      publichandler.NewBase(opts...),
	}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "signup"
}

// Mount wires sign-up routes under the sign-up prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	store := m.store
	if store == nil {
		store = newFormStore(DefaultSessionTTL)
	}
	registerRoutes(mux, newHandlers(m.base, m.registrar, store, m.cookies))
	return module.Mount{Prefix: routepath.SignupPrefix, Handler: mux}, nil
}

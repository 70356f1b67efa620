package modules

import (
	"github.com/louisbranch/hoaxify/internal/services/web/modules/activation"
	"github.com/louisbranch/hoaxify/internal/services/web/modules/home"
	"github.com/louisbranch/hoaxify/internal/services/web/modules/signup"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/publichandler"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/sessioncookie"
)

// DefaultModules returns the web modules in mount order.
func DefaultModules(deps Dependencies) []Module {
	opts := []publichandler.Option{publichandler.WithLogger(deps.Logger)}
	return []Module{
		home.New(opts...),
		signup.New(deps.Registrar, signup.Settings{
			SessionTTL: deps.FormSessionTTL,
			Cookie:     sessioncookie.Policy{TrustForwardedProto: deps.TrustForwardedProto},
		}, opts...),
		activation.New(deps.Activator, opts...),
	}
}

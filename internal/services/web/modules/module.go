// Package modules defines web module registry helpers.
package modules

import (
	"log"
	"time"

	module "github.com/louisbranch/hoaxify/internal/services/web/module"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the upstream clients and shared settings required to
// compose the web module registry.
type Dependencies struct {
	module.Dependencies

	// FormSessionTTL bounds how long an idle sign-up form is remembered.
	FormSessionTTL time.Duration
	// TrustForwardedProto lets X-Forwarded-Proto mark cookies Secure.
	TrustForwardedProto bool
	// Logger receives handler diagnostics. Nil uses the standard logger.
	Logger *log.Logger
}

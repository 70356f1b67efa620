// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/louisbranch/hoaxify/internal/registration"
)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// Dependencies carries the upstream clients shared by web modules.
type Dependencies struct {
	Registrar registration.Registrar
	Activator registration.Activator
}

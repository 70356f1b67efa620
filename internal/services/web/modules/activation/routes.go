package activation

import (
	"net/http"

	"github.com/louisbranch/hoaxify/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ActivationPattern, h.handlePage)
	mux.HandleFunc(http.MethodPost+" "+routepath.ActivationPattern, h.handleActivate)
	mux.HandleFunc(routepath.ActivationPrefix, h.handleNotFound)
	mux.HandleFunc(routepath.ActivationRoot, h.handleNotFound)
}

package signup

import (
	"net/http"

	"github.com/louisbranch/hoaxify/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Signup, h.handleForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.Signup, h.handleSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.SignupFieldPattern, h.handleField)
	mux.HandleFunc(routepath.SignupPrefix, h.handleNotFound)
}

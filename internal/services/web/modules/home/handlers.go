package home

import (
	"net/http"

	"github.com/louisbranch/hoaxify/internal/services/web/platform/httpx"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/pagerender"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/publichandler"
	webtemplates "github.com/louisbranch/hoaxify/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.ResolveLocalizer(w, r)
	h.WritePage(w, r, pagerender.Page{
		Title:    webtemplates.T(loc, "core.home"),
		Loc:      loc,
		Lang:     lang,
		Fragment: webtemplates.HomePage(loc),
	})
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteHTML(w, http.StatusOK, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}

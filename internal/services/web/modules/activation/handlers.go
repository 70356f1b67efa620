package activation

import (
	"errors"
	"net/http"

	"github.com/louisbranch/hoaxify/internal/registration"
	"github.com/louisbranch/hoaxify/internal/services/web/integration/userapi"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/hoaxify/internal/services/web/platform/i18n"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/pagerender"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/publichandler"
	webtemplates "github.com/louisbranch/hoaxify/internal/services/web/templates"
	"golang.org/x/text/language"
)

type handlers struct {
	publichandler.Base
	activator registration.Activator
}

func newHandlers(base publichandler.Base, activator registration.Activator) handlers {
	return handlers{Base: base, activator: activator}
}

// handlePage renders the pending page; the browser posts back to activate.
func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.ResolveLocalizer(w, r)
	view := pendingView(r.PathValue("token"), loc)
	h.writeView(w, r, loc, lang, view)
}

// handleActivate issues the activation request once and renders the outcome.
func (h handlers) handleActivate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.ResolveLocalizer(w, r)
	attempt := registration.NewActivation(r.PathValue("token"))
	ctx := userapi.WithAcceptLanguage(r.Context(), lang.String())
	state := attempt.Run(ctx, h.activator)

	view := pendingView(attempt.Token(), loc)
	switch state {
	case registration.ActivationActivated:
		view.Status = webtemplates.ActivationStatusActivated
		view.Message = webtemplates.T(loc, "accountActivated")
		h.Logger().Printf("account activation resolved state=%s request_id=%s", state, httpx.RequestIDFrom(r))
	default:
		view.Status = webtemplates.ActivationStatusFailed
		view.Message = webtemplates.T(loc, "accountActivationFailed")
		status := 0
		var transport *registration.TransportFailure
		if errors.As(attempt.Err(), &transport) {
			status = transport.StatusCode
		}
		h.Logger().Printf("account activation failed state=%s status=%d request_id=%s err=%v", state, status, httpx.RequestIDFrom(r), attempt.Err())
	}
	h.writeView(w, r, loc, lang, view)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}

// writeView swaps only the result for HTMX posts and renders the whole page
// otherwise.
func (h handlers) writeView(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, lang language.Tag, view webtemplates.ActivationView) {
	if httpx.WantsFragment(r) && r.Method == http.MethodPost {
		h.WriteFragment(w, r, http.StatusOK, webtemplates.ActivationResult(view))
		return
	}
	h.WritePage(w, r, pagerender.Page{
		Title:    webtemplates.T(loc, "activationTitle"),
		Loc:      loc,
		Lang:     lang,
		Fragment: webtemplates.ActivationPage(view),
	})
}

func pendingView(token string, loc webi18n.Localizer) webtemplates.ActivationView {
	return webtemplates.ActivationView{
		Token:        token,
		Status:       webtemplates.ActivationStatusPending,
		LoadingLabel: webtemplates.T(loc, "core.loading"),
		RetryLabel:   webtemplates.T(loc, "activationRetry"),
	}
}

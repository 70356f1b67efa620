package signup

import (
	"errors"
	"net/http"

	"github.com/louisbranch/hoaxify/internal/registration"
	"github.com/louisbranch/hoaxify/internal/services/web/integration/userapi"
	apperrors "github.com/louisbranch/hoaxify/internal/services/web/platform/errors"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/hoaxify/internal/services/web/platform/i18n"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/pagerender"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/publichandler"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/sessioncookie"
	webtemplates "github.com/louisbranch/hoaxify/internal/services/web/templates"
	"golang.org/x/text/language"
)

type handlers struct {
	publichandler.Base
	registrar registration.Registrar
	store     *formStore
	cookies   sessioncookie.Policy
}

func newHandlers(base publichandler.Base, registrar registration.Registrar, store *formStore, cookies sessioncookie.Policy) handlers {
	return handlers{Base: base, registrar: registrar, store: store, cookies: cookies}
}

// handleForm renders the form for the current session. A finished session
// is replaced by a fresh one unless the request is a locale switch or an
// HTMX poll waiting on that session.
func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.ResolveLocalizer(w, r)
	controller, ok := h.existing(r)
	if ok && controller.Snapshot().State == registration.StateSucceeded &&
		!webi18n.IsLocaleSwitch(r) && !httpx.WantsFragment(r) {
		if id, found := sessioncookie.Read(r); found {
			h.store.delete(id)
		}
		ok = false
	}
	if !ok {
		controller = h.start(w, r)
	}
	h.writeForm(w, r, loc, lang, controller.Snapshot())
}

// handleSubmit applies the posted values and submits the form once.
func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "parse sign-up form", err))
		return
	}
	loc, lang := h.ResolveLocalizer(w, r)
	controller := h.session(w, r)
	syncFields(controller, r, "")

	ctx := userapi.WithAcceptLanguage(r.Context(), lang.String())
	snap, err := controller.Submit(ctx)
	switch {
	case err == nil:
		h.logOutcome(r, snap)
	case errors.Is(err, registration.ErrSubmissionPending),
		errors.Is(err, registration.ErrSubmitted),
		errors.Is(err, registration.ErrCannotSubmit):
		// The current snapshot already shows why nothing was sent.
	default:
		h.WriteError(w, r, err)
		return
	}
	h.writeForm(w, r, loc, lang, snap)
}

// handleField stores one edited field and returns out-of-band updates for
// the feedback slots and the submit button.
func (h handlers) handleField(w http.ResponseWriter, r *http.Request) {
	field, ok := registration.ParseField(r.PathValue("field"))
	if !ok {
		h.WriteError(w, r, apperrors.E(apperrors.KindNotFound, "unknown sign-up field"))
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "parse sign-up field", err))
		return
	}
	loc, _ := h.ResolveLocalizer(w, r)
	controller := h.session(w, r)
	syncFields(controller, r, field)

	snap, err := controller.EditField(field, r.PostForm.Get(string(field)))
	if errors.Is(err, registration.ErrSubmitted) {
		httpx.Retarget(w, "#"+webtemplates.SignupFormID, "outerHTML")
		h.WriteFragment(w, r, http.StatusOK, webtemplates.SignupForm(buildView(snap, loc)))
		return
	}
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WriteFragment(w, r, http.StatusOK, webtemplates.SignupFieldUpdates(buildView(snap, loc)))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}

// writeForm swaps only the form section for HTMX requests and renders the
// whole page otherwise.
func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, lang language.Tag, snap registration.Snapshot) {
	view := buildView(snap, loc)
	if httpx.WantsFragment(r) && r.Method == http.MethodPost {
		h.WriteFragment(w, r, http.StatusOK, webtemplates.SignupForm(view))
		return
	}
	h.WritePage(w, r, pagerender.Page{
		Title:    webtemplates.T(loc, "signUpLink"),
		Loc:      loc,
		Lang:     lang,
		Fragment: webtemplates.SignupPage(view),
	})
}

func (h handlers) existing(r *http.Request) (*registration.Controller, bool) {
	id, ok := sessioncookie.Read(r)
	if !ok {
		return nil, false
	}
	return h.store.get(id)
}

// session returns the live controller for the request, starting a new one
// when the cookie is missing or its session expired.
func (h handlers) session(w http.ResponseWriter, r *http.Request) *registration.Controller {
	if controller, ok := h.existing(r); ok {
		return controller
	}
	return h.start(w, r)
}

func (h handlers) start(w http.ResponseWriter, r *http.Request) *registration.Controller {
	id, controller := h.store.create(h.registrar)
	h.cookies.Write(w, r, id)
	return controller
}

func (h handlers) logOutcome(r *http.Request, snap registration.Snapshot) {
	var transport *registration.TransportFailure
	switch {
	case errors.As(snap.LastErr, &transport):
		h.Logger().Printf("signup submission failed state=%s status=%d request_id=%s err=%v", snap.State, transport.StatusCode, httpx.RequestIDFrom(r), transport)
	case snap.LastErr != nil:
		h.Logger().Printf("signup submission rejected state=%s fields=%d request_id=%s", snap.State, len(snap.Errors), httpx.RequestIDFrom(r))
	default:
		h.Logger().Printf("signup submission resolved state=%s request_id=%s", snap.State, httpx.RequestIDFrom(r))
	}
}

// syncFields copies posted values that differ from the controller's, so a
// form restored by the browser or posted without scripts is not lost.
// skip names a field the caller edits itself.
func syncFields(controller *registration.Controller, r *http.Request, skip registration.Field) {
	current := controller.Snapshot().Fields
	for _, field := range registration.Fields() {
		if field == skip || !r.PostForm.Has(string(field)) {
			continue
		}
		if value := r.PostForm.Get(string(field)); value != current.Value(field) {
			_, _ = controller.EditField(field, value)
		}
	}
}

// Package publichandler provides a shared base for web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across modules.
package publichandler

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/hoaxify/internal/services/web/platform/errors"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/hoaxify/internal/services/web/platform/i18n"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/pagerender"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/weberror"
	"github.com/louisbranch/hoaxify/internal/services/web/routepath"
	"golang.org/x/text/language"
)

// Base provides shared error handling and page rendering. Embed this in
// handler structs to get WritePage, WriteNotFound and WriteError.
type Base struct {
	logger *log.Logger
}

// Option configures a Base.
type Option func(*Base)

// WithLogger sets the logger used for upstream and render failures.
func WithLogger(logger *log.Logger) Option {
	return func(b *Base) { b.logger = logger }
}

// NewBase builds a handler base with the given options.
func NewBase(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Logger returns the configured logger or the standard logger.
func (b Base) Logger() *log.Logger {
	if b.logger == nil {
		return log.Default()
	}
	return b.logger
}

// ResolveLocalizer resolves the request locale, persisting an explicit
// language choice.
func (Base) ResolveLocalizer(w http.ResponseWriter, r *http.Request) (webi18n.Localizer, language.Tag) {
	return webi18n.ResolveLocalizer(w, r)
}

// WritePage renders a page, as a fragment for HTMX swaps and inside the
// layout otherwise.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, page); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteFragment renders component without the layout.
func (b Base) WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, component templ.Component) {
	if err := pagerender.WriteFragment(w, r, statusCode, component); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteNotFound renders the localized 404 page.
func (Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

// WriteError renders a user-safe error response. Server-side failures are
// logged with the request id.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	if status := apperrors.HTTPStatus(err); status >= http.StatusInternalServerError {
		method, path := "-", "-"
		if r != nil && r.URL != nil {
			method, path = r.Method, routepath.LogPath(r.URL.Path)
		}
		b.Logger().Printf("request failed method=%s path=%s status=%d request_id=%s err=%v", method, path, status, httpx.RequestIDFrom(r), err)
	}
	weberror.WriteModuleError(w, r, err)
}

// Package i18n resolves the request locale for web handlers.
package i18n

import (
	"net/http"

	platformi18n "github.com/louisbranch/hoaxify/internal/platform/i18n"
	sharedi18n "github.com/louisbranch/hoaxify/internal/services/shared/i18nhttp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for handlers and templates.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// ResolveTag resolves the request locale and, when it came from the lang
// query param, persists it for the browser session.
func ResolveTag(w http.ResponseWriter, r *http.Request) language.Tag {
	resolved := sharedi18n.Resolve(r)
	if resolved.Persist() {
		sharedi18n.Remember(w, resolved.Tag)
	}
	return resolved.Tag
}

// ResolveLocalizer resolves the request locale and a printer for it.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (Localizer, language.Tag) {
	tag := ResolveTag(w, r)
	return platformi18n.Printer(tag), tag
}

// IsLocaleSwitch reports whether the request carries an explicit lang param.
func IsLocaleSwitch(r *http.Request) bool {
	if r == nil || r.URL == nil {
		return false
	}
	return r.URL.Query().Has(sharedi18n.LangParam)
}

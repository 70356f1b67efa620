package templates

import (
	"net/http"
	"net/url"

	sharedi18n "github.com/louisbranch/hoaxify/internal/services/shared/i18nhttp"
	"golang.org/x/text/language"
)

// LanguageOption represents a supported language option in the UI.
type LanguageOption = sharedi18n.LanguageOption

// LanguageOptions returns the switcher entries for the current request.
func LanguageOptions(r *http.Request, active language.Tag, loc Localizer) []LanguageOption {
	var current *url.URL
	if r != nil {
		current = r.URL
	}
	return sharedi18n.Options(current, active, func(key string) string {
		return T(loc, key)
	})
}

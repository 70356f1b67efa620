package templates

import (
	platformi18n "github.com/louisbranch/hoaxify/internal/platform/i18n"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for web templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates key with loc, or with the default locale when loc is nil.
// Unknown keys render as the key itself.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc == nil {
		loc = platformi18n.Printer(platformi18n.DefaultTag())
	}
	return loc.Sprintf(key, args...)
}

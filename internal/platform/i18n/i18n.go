// Package i18n defines the supported locales and tag matching shared by the
// web surface.
package i18n

import (
	"strings"

	"github.com/louisbranch/hoaxify/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	english = language.MustParse("en")
	persian = language.MustParse("fa")

	supported = []language.Tag{english, persian}
	matcher   = language.NewMatcher(supported)
)

// SupportedTags returns the locales with a translation catalog.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// DefaultTag returns the locale used when nothing else matches.
func DefaultTag() language.Tag {
	return english
}

// ParseTag resolves value to a supported tag. It reports false for blank or
// unparseable input; parseable but unsupported tags match the closest locale.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	return MatchTags([]language.Tag{tag}), true
}

// MatchTags returns the supported tag that best serves the preferences.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[index]
}

// IsRTL reports whether tag is written right to left.
func IsRTL(tag language.Tag) bool {
	base, _ := tag.Base()
	persianBase, _ := persian.Base()
	return base == persianBase
}

// Direction returns the HTML dir attribute value for tag.
func Direction(tag language.Tag) string {
	if IsRTL(tag) {
		return "rtl"
	}
	return "ltr"
}

// Printer returns a message printer backed by the embedded catalogs.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(catalog.Embedded().Catalog()))
}

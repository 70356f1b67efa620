// Package i18nhttp resolves the request locale and builds language switcher
// options for page rendering.
package i18nhttp

import (
	"net/http"
	"net/url"
	"strings"

	platformi18n "github.com/louisbranch/hoaxify/internal/platform/i18n"
	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the language choice for the browser session.
	LangCookieName = "hx_lang"
)

// Source records where a resolved locale came from.
type Source int

const (
	SourceDefault Source = iota
	SourceQuery
	SourceCookie
	SourceHeader
)

func (s Source) String() string {
	switch s {
	case SourceQuery:
		return "query"
	case SourceCookie:
		return "cookie"
	case SourceHeader:
		return "header"
	default:
		return "default"
	}
}

// Resolution is the locale chosen for one request.
type Resolution struct {
	Tag    language.Tag
	Source Source
}

// Persist reports whether the choice should be remembered for the session.
func (r Resolution) Persist() bool {
	return r.Source == SourceQuery
}

// Resolve picks the locale in order: lang query param, session cookie,
// Accept-Language, default.
func Resolve(r *http.Request) Resolution {
	if r == nil {
		return Resolution{Tag: platformi18n.DefaultTag()}
	}
	if tag, ok := platformi18n.ParseTag(r.URL.Query().Get(LangParam)); ok {
		return Resolution{Tag: tag, Source: SourceQuery}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return Resolution{Tag: tag, Source: SourceCookie}
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return Resolution{Tag: platformi18n.MatchTags(tags), Source: SourceHeader}
		}
	}
	return Resolution{Tag: platformi18n.DefaultTag()}
}

// Remember stores tag in a cookie that ends with the browser session.
func Remember(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// Options lists every supported locale for the page at u. label turns a
// catalog key such as core.langFa into display text.
func Options(u *url.URL, active language.Tag, label func(key string) string) []LanguageOption {
	supported := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		text := tag.String()
		if label != nil {
			if resolved := strings.TrimSpace(label(LabelKey(tag))); resolved != "" {
				text = resolved
			}
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  text,
			URL:    SwitchURL(u, tag),
			Active: tag == active,
		})
	}
	return options
}

// SwitchURL returns the path and query of u with the lang param set to tag.
func SwitchURL(u *url.URL, tag language.Tag) string {
	path, query := "/", url.Values{}
	if u != nil {
		if u.Path != "" {
			path = u.Path
		}
		query = u.Query()
	}
	query.Set(LangParam, tag.String())
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// LabelKey returns the catalog key holding the native name of tag.
func LabelKey(tag language.Tag) string {
	base, _ := tag.Base()
	code := base.String()
	if code == "" {
		return ""
	}
	return "core.lang" + strings.ToUpper(code[:1]) + code[1:]
}

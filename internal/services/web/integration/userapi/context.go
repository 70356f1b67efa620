package userapi

import (
	"context"
	"strings"
)

type acceptLanguageKey struct{}

// WithAcceptLanguage attaches the locale forwarded to the API so it can
// localize validation messages.
func WithAcceptLanguage(ctx context.Context, lang string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, acceptLanguageKey{}, strings.TrimSpace(lang))
}

// AcceptLanguage returns the locale stored by WithAcceptLanguage.
func AcceptLanguage(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	lang, _ := ctx.Value(acceptLanguageKey{}).(string)
	return lang
}

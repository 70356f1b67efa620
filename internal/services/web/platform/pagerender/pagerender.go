// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/hoaxify/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/hoaxify/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/hoaxify/internal/services/web/templates"
	"golang.org/x/text/language"
)

// Page describes a page response for both full-document and HTMX flows.
//
// Loc and Lang are resolved from the request when Loc is nil.
type Page struct {
	Title      string
	StatusCode int
	Loc        webi18n.Localizer
	Lang       language.Tag
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes the page fragment alone for HTMX swaps and wraps it in
// the document layout otherwise.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	if httpx.WantsFragment(r) {
		return WriteFragment(w, r, page.StatusCode, fragment)
	}

	loc, lang := page.Loc, page.Lang
	if loc == nil {
		loc, lang = webi18n.ResolveLocalizer(w, r)
	}
	layout := webtemplates.Layout(webtemplates.LayoutData{
		Title:     page.Title,
		Lang:      lang,
		Loc:       loc,
		Languages: webtemplates.LanguageOptions(r, lang, loc),
	})
	return write(w, page.StatusCode, layout, templ.WithChildren(httpx.RequestContext(r), fragment))
}

// WriteFragment writes component without the document layout.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, component templ.Component) error {
	if w == nil {
		return nil
	}
	if component == nil {
		component = emptyComponent{}
	}
	return write(w, statusCode, component, httpx.RequestContext(r))
}

// write renders into a buffer first so a failed render never leaves a
// partial body behind a committed status.
func write(w http.ResponseWriter, statusCode int, component templ.Component, ctx context.Context) error {
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", "HX-Request")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

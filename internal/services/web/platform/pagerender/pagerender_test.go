package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	platformi18n "github.com/louisbranch/hoaxify/internal/platform/i18n"
	"golang.org/x/text/language"
)

func TestWritePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, Page{
		Title:      "Sign Up",
		StatusCode: http.StatusCreated,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected htmx fragment without full document wrapper")
	}
}

func TestWritePageRendersFullDocumentForBoostedRequests(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/signup", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Boosted", "true")
	rr := httptest.NewRecorder()

	if err := WritePage(rr, req, Page{Fragment: textComponent(`<section id="fragment-root">ok</section>`)}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	body := rr.Body.String()
	for _, marker := range []string{"<html", `id="main"`, `id="fragment-root"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWritePageResolvesLocaleFromRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=fa", nil)
	rr := httptest.NewRecorder()

	if err := WritePage(rr, req, Page{Title: "X", StatusCode: http.StatusAccepted}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{`lang="fa"`, `dir="rtl"`, "<title>X | Hoaxify</title>"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
	if len(rr.Result().Cookies()) != 1 {
		t.Fatalf("cookies = %d, want language cookie", len(rr.Result().Cookies()))
	}
}

func TestWritePageUsesProvidedLocalizer(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=fa", nil)
	rr := httptest.NewRecorder()
	tag := language.MustParse("en")

	if err := WritePage(rr, req, Page{Loc: platformi18n.Printer(tag), Lang: tag}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if body := rr.Body.String(); !strings.Contains(body, `lang="en"`) {
		t.Fatalf("body = %q, want lang=en", body)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("provided localizer should not resolve the request locale again")
	}
}

func TestWriteFragmentReturnsRenderErrorWithoutWriting(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	wantErr := errors.New("boom")
	err := WriteFragment(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, failingComponent{err: wantErr})
	if !errors.Is(err, wantErr) {
		t.Fatalf("WriteFragment() error = %v, want %v", err, wantErr)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rr.Body.String())
	}
}

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

type failingComponent struct{ err error }

func (c failingComponent) Render(context.Context, io.Writer) error {
	return c.err
}
